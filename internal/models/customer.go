package models

// Customer is a company/contact record owned by the backend service.
// The id is assigned by the service and omitted when creating.
type Customer struct {
	CustomerID  int    `json:"customerId,omitempty" form:"-"`
	CompanyName string `json:"companyName" form:"companyName" binding:"required"`
	ContactName string `json:"contactName" form:"contactName" binding:"required"`
	PhoneNumber string `json:"phoneNumber" form:"phoneNumber" binding:"required"`
	FaxNumber   string `json:"faxNumber" form:"faxNumber" binding:"required"`
	Country     string `json:"country" form:"country" binding:"required"`
}

// Label renders the customer for selection controls
func (c Customer) Label() string {
	return c.CompanyName + " - " + c.ContactName
}
