package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/matthieukhl/clientia/internal/models"
)

// CustomerService maps customer operations to backend endpoints. Every
// method logs a diagnostic on failure and propagates the error unchanged;
// recovery decisions belong to the caller.
type CustomerService struct {
	client *Client
}

// NewCustomerService creates a customer service over the shared client.
func NewCustomerService(client *Client) *CustomerService {
	return &CustomerService{client: client}
}

// ListAll fetches every customer.
func (s *CustomerService) ListAll(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.client.get(ctx, "/customers/", &customers); err != nil {
		s.client.log.Error("failed to list customers", "error", err)
		return nil, err
	}
	return customers, nil
}

// GetByID fetches a single customer.
func (s *CustomerService) GetByID(ctx context.Context, id int) (*models.Customer, error) {
	var customer models.Customer
	if err := s.client.get(ctx, fmt.Sprintf("/customers/getById/%d", id), &customer); err != nil {
		s.client.log.Error("failed to get customer", "id", id, "error", err)
		return nil, err
	}
	return &customer, nil
}

// SearchByCountry fetches the customers matching a country. Matching
// semantics belong to the backend; no local filtering happens here.
func (s *CustomerService) SearchByCountry(ctx context.Context, country string) ([]models.Customer, error) {
	var customers []models.Customer
	path := "/customers/searchByCountry?country=" + url.QueryEscape(country)
	if err := s.client.get(ctx, path, &customers); err != nil {
		s.client.log.Error("failed to search customers by country", "country", country, "error", err)
		return nil, err
	}
	return customers, nil
}

// Create posts a new customer and returns it with its assigned id.
func (s *CustomerService) Create(ctx context.Context, customer models.Customer) (*models.Customer, error) {
	var created models.Customer
	if err := s.client.post(ctx, "/customers/save", customer, &created); err != nil {
		s.client.log.Error("failed to create customer", "error", err)
		return nil, err
	}
	return &created, nil
}

// Delete removes a customer, reporting success from the response status.
// No page invokes this yet; it is part of the service contract.
func (s *CustomerService) Delete(ctx context.Context, id int) (bool, error) {
	ok, err := s.client.delete(ctx, fmt.Sprintf("/customers/delete/%d", id))
	if err != nil {
		s.client.log.Error("failed to delete customer", "id", id, "error", err)
		return false, err
	}
	return ok, nil
}
