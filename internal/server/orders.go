package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/matthieukhl/clientia/internal/api"
	"github.com/matthieukhl/clientia/internal/models"
)

const (
	msgMissingFields     = "Please complete all required fields"
	msgShippedAfterOrder = "Shipped date must be after order date"
	msgLoadCustomers     = "Failed to load the customer list"
)

// orderForm carries the day-granularity inputs as submitted; they are
// widened to full timestamps only when the order is posted.
type orderForm struct {
	CustomerID  int    `form:"customerId"`
	OrderDate   string `form:"orderDate"`
	ShippedDate string `form:"shippedDate"`
}

// stampDate widens a day-granularity input to the full timestamp the
// backend expects, using the current wall-clock time of day.
func stampDate(day string) string {
	if day == "" {
		return ""
	}
	return day + "T" + time.Now().Format("15:04:05")
}

// shippedAfterOrder compares the two inputs at day granularity. The
// stamped time of day is excluded on purpose: it reflects submission
// time and would make same-day orders pass or fail nondeterministically.
func shippedAfterOrder(orderDay, shippedDay string) bool {
	o, err := time.Parse(models.DateLayout, orderDay)
	if err != nil {
		return false
	}
	s, err := time.Parse(models.DateLayout, shippedDay)
	if err != nil {
		return false
	}
	return s.After(o)
}

// orderFormData assembles the template data shared by every render of
// the order creation form, loading the customer list for the selector.
// A load failure surfaces as a banner without blocking the form.
func (s *Server) orderFormData(c *gin.Context, form orderForm) gin.H {
	data := gin.H{
		"Title": "Create Order",
		"Form":  form,
		"Today": time.Now().Format(models.DateLayout),
	}

	if form.OrderDate != "" {
		data["MinShipped"] = form.OrderDate
	} else {
		data["MinShipped"] = data["Today"]
	}

	customers, err := s.customers.ListAll(c.Request.Context())
	if err != nil {
		data["LoadError"] = msgLoadCustomers
	} else {
		data["Customers"] = customers
	}

	return data
}

// createOrderForm renders the empty order creation form.
func (s *Server) createOrderForm(c *gin.Context) {
	c.HTML(http.StatusOK, "order_create.html", s.orderFormData(c, orderForm{}))
}

// createOrder validates and submits a new order. Validation short
// circuits before any create request: first presence of both dates and
// a selected customer, then date ordering.
func (s *Server) createOrder(c *gin.Context) {
	var form orderForm
	_ = c.ShouldBind(&form)

	data := s.orderFormData(c, form)

	if form.OrderDate == "" || form.ShippedDate == "" || form.CustomerID == 0 {
		data["Error"] = msgMissingFields
		c.HTML(http.StatusOK, "order_create.html", data)
		return
	}

	if !shippedAfterOrder(form.OrderDate, form.ShippedDate) {
		data["Error"] = msgShippedAfterOrder
		c.HTML(http.StatusOK, "order_create.html", data)
		return
	}

	order := models.Order{
		CustomerID:  form.CustomerID,
		OrderDate:   stampDate(form.OrderDate),
		ShippedDate: stampDate(form.ShippedDate),
	}

	if _, err := s.orders.Create(c.Request.Context(), order); err != nil {
		data["Error"] = "Failed to create order: " + api.UserMessage(err)
		c.HTML(http.StatusOK, "order_create.html", data)
		return
	}

	data["Success"] = "Order created successfully"
	data["Form"] = orderForm{}
	data["Refresh"] = true
	c.HTML(http.StatusOK, "order_create.html", data)
}
