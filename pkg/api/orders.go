package api

import (
	"context"
	"net/http"
)

// OrderRequest is the payload for placing an order. AdditionalCosts may be
// zero; the backend treats anything below zero as absent.
type OrderRequest struct {
	RestaurantID    string      `json:"restaurantId"`
	Items           []OrderItem `json:"items"`
	AdditionalCosts Price       `json:"additionalCosts"`
}

// CreateOrder places an order for the authenticated customer. The backend
// computes totals from its current menu prices.
func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodPost, "/orders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CustomerOrders returns the authenticated customer's orders.
func (c *Client) CustomerOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/orders/customer", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
