package server

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/matthieukhl/clientia/internal/api"
	"github.com/matthieukhl/clientia/internal/models"
)

type Server struct {
	router    *gin.Engine
	client    *api.Client
	customers *api.CustomerService
	orders    *api.OrderService
}

// NewServer creates a new server instance rendering templates from the
// given glob pattern
func NewServer(client *api.Client, customers *api.CustomerService, orders *api.OrderService, templates string) *Server {
	router := gin.Default()
	router.SetFuncMap(template.FuncMap{
		"formatDate": models.FormatDate,
	})
	router.LoadHTMLGlob(templates)

	server := &Server{
		router:    router,
		client:    client,
		customers: customers,
		orders:    orders,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all page and API routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.searchPage)

	customers := s.router.Group("/customers")
	{
		customers.GET("/create", s.createCustomerForm)
		customers.POST("/create", s.createCustomer)
		customers.GET("/:id", s.customerOrdersPage)
	}

	orders := s.router.Group("/orders")
	{
		orders.GET("/create", s.createOrderForm)
		orders.POST("/create", s.createOrder)
	}

	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	// Check backend API health
	if err := s.client.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "backend API unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "clientia",
		"version": "0.1.0",
	})
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
