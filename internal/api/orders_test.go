package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/matthieukhl/clientia/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderListAll(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orders/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Order{
			{OrderID: 1, CustomerID: 3, OrderDate: "2024-01-10T09:00:00"},
		})
	})

	service := NewOrderService(testClient(t, mux))
	orders, err := service.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 3, orders[0].CustomerID)
}

func TestOrderGetByID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orders/getById/11", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Order{OrderID: 11, CustomerID: 2})
	})

	service := NewOrderService(testClient(t, mux))
	order, err := service.GetByID(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, 11, order.OrderID)
}

func TestOrderGetByCustomerID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orders/customers/3", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Order{
			{OrderID: 1, CustomerID: 3},
			{OrderID: 2, CustomerID: 3},
		})
	})

	service := NewOrderService(testClient(t, mux))
	orders, err := service.GetByCustomerID(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestOrderCreate(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orders/save", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "orderId")
		assert.Equal(t, "2024-01-10T12:30:00", body["orderDate"])

		json.NewEncoder(w).Encode(models.Order{OrderID: 99, CustomerID: 3})
	})

	service := NewOrderService(testClient(t, mux))
	created, err := service.Create(context.Background(), models.Order{
		CustomerID:  3,
		OrderDate:   "2024-01-10T12:30:00",
		ShippedDate: "2024-01-11T12:30:00",
	})
	require.NoError(t, err)
	assert.Equal(t, 99, created.OrderID)
}

func TestOrderDelete(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orders/delete/8", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	service := NewOrderService(testClient(t, mux))
	ok, err := service.Delete(context.Background(), 8)
	require.NoError(t, err)
	assert.True(t, ok)
}
