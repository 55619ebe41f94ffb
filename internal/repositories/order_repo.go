package repositories

import "resto/internal/models"

// OrderRepository defines the interface for order data access. Orders are
// write-once; there is no update or delete.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	ListByCustomer(customerID string) ([]models.Order, error)
}
