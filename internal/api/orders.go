package api

import (
	"context"
	"fmt"

	"github.com/matthieukhl/clientia/internal/models"
)

// OrderService maps order operations to backend endpoints, with the same
// log-and-propagate failure policy as CustomerService.
type OrderService struct {
	client *Client
}

// NewOrderService creates an order service over the shared client.
func NewOrderService(client *Client) *OrderService {
	return &OrderService{client: client}
}

// ListAll fetches every order.
func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.client.get(ctx, "/orders/", &orders); err != nil {
		s.client.log.Error("failed to list orders", "error", err)
		return nil, err
	}
	return orders, nil
}

// GetByID fetches a single order.
func (s *OrderService) GetByID(ctx context.Context, id int) (*models.Order, error) {
	var order models.Order
	if err := s.client.get(ctx, fmt.Sprintf("/orders/getById/%d", id), &order); err != nil {
		s.client.log.Error("failed to get order", "id", id, "error", err)
		return nil, err
	}
	return &order, nil
}

// GetByCustomerID fetches a customer's orders in whatever order the
// backend returns them.
func (s *OrderService) GetByCustomerID(ctx context.Context, customerID int) ([]models.Order, error) {
	var orders []models.Order
	if err := s.client.get(ctx, fmt.Sprintf("/orders/customers/%d", customerID), &orders); err != nil {
		s.client.log.Error("failed to get orders by customer", "customerId", customerID, "error", err)
		return nil, err
	}
	return orders, nil
}

// Create posts a new order and returns it with its assigned id.
func (s *OrderService) Create(ctx context.Context, order models.Order) (*models.Order, error) {
	var created models.Order
	if err := s.client.post(ctx, "/orders/save", order, &created); err != nil {
		s.client.log.Error("failed to create order", "error", err)
		return nil, err
	}
	return &created, nil
}

// Delete removes an order, reporting success from the response status.
// No page invokes this yet; it is part of the service contract.
func (s *OrderService) Delete(ctx context.Context, id int) (bool, error) {
	ok, err := s.client.delete(ctx, fmt.Sprintf("/orders/delete/%d", id))
	if err != nil {
		s.client.log.Error("failed to delete order", "id", id, "error", err)
		return false, err
	}
	return ok, nil
}
