package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/matthieukhl/clientia/internal/api"
	"github.com/matthieukhl/clientia/internal/models"
)

const (
	msgEnterCountry      = "Please enter a country to search."
	msgSearchFailed      = "Failed to fetch customers. Please try again."
	msgInvalidCustomerID = "Invalid customer id"
	msgNoOrders          = "This customer has no registered orders"
)

// searchPage renders the customer search landing page. Searching is a
// plain GET with a country query param, so the Enter key submits
// natively and clearing is a link back to /.
func (s *Server) searchPage(c *gin.Context) {
	raw, searched := c.GetQuery("country")
	country := strings.TrimSpace(raw)

	data := gin.H{
		"Title":    "Search Customers",
		"Country":  country,
		"Searched": searched,
	}

	if searched && country == "" {
		data["Error"] = msgEnterCountry
		c.HTML(http.StatusOK, "search.html", data)
		return
	}

	if country != "" {
		customers, err := s.customers.SearchByCountry(c.Request.Context(), country)
		switch {
		case err != nil:
			data["Error"] = msgSearchFailed
		case len(customers) == 0:
			data["Error"] = fmt.Sprintf("No customers found for country: %s", country)
		default:
			data["Customers"] = customers
		}
	}

	c.HTML(http.StatusOK, "search.html", data)
}

// customerIDParam resolves the customer id from the route. The routing
// layer has historically exposed it under three names; :id is canonical
// and the others are a migration shim for legacy deep links.
func customerIDParam(c *gin.Context) string {
	for _, name := range []string{"customerId", "id", "customer"} {
		if v := c.Param(name); v != "" {
			return v
		}
		if v := c.Query(name); v != "" {
			return v
		}
	}
	return ""
}

// customerOrdersPage lists a customer's orders, most recently shipped
// first with unshipped orders at the bottom.
func (s *Server) customerOrdersPage(c *gin.Context) {
	data := gin.H{"Title": "Customer Orders"}

	raw := customerIDParam(c)
	id, err := strconv.Atoi(raw)
	if raw == "" || err != nil {
		data["Error"] = msgInvalidCustomerID
		c.HTML(http.StatusOK, "customer_orders.html", data)
		return
	}
	data["CustomerID"] = id

	orders, err := s.orders.GetByCustomerID(c.Request.Context(), id)
	if err != nil {
		data["Error"] = "Failed to fetch orders: " + api.UserMessage(err)
		c.HTML(http.StatusOK, "customer_orders.html", data)
		return
	}

	if len(orders) == 0 {
		data["Message"] = msgNoOrders
		c.HTML(http.StatusOK, "customer_orders.html", data)
		return
	}

	models.SortByShippedDateDesc(orders)
	data["Orders"] = orders
	c.HTML(http.StatusOK, "customer_orders.html", data)
}

// createCustomerForm renders the empty customer creation form.
func (s *Server) createCustomerForm(c *gin.Context) {
	c.HTML(http.StatusOK, "customer_create.html", gin.H{
		"Title": "Create Customer",
		"Form":  models.Customer{},
	})
}

// createCustomer handles the creation form submission. On success the
// form resets and the page navigates back to search after a short delay;
// on failure the submitted values are preserved for correction.
func (s *Server) createCustomer(c *gin.Context) {
	data := gin.H{"Title": "Create Customer"}

	var form models.Customer
	if err := c.ShouldBind(&form); err != nil {
		data["Error"] = msgMissingFields
		data["Form"] = form
		c.HTML(http.StatusOK, "customer_create.html", data)
		return
	}

	if _, err := s.customers.Create(c.Request.Context(), form); err != nil {
		data["Error"] = "Failed to create customer: " + api.UserMessage(err)
		data["Form"] = form
		c.HTML(http.StatusOK, "customer_create.html", data)
		return
	}

	data["Success"] = "Customer created successfully"
	data["Form"] = models.Customer{}
	data["Refresh"] = true
	c.HTML(http.StatusOK, "customer_create.html", data)
}
