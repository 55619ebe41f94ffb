package services

import (
	"fmt"
	"log"
	"time"

	"resto/internal/models"
	"resto/internal/repositories"
	"resto/pkg/events"
)

// OrderEventPublisher publishes order lifecycle events. It is satisfied by
// *events.Client; tests substitute a mock, and a nil publisher disables
// publication entirely.
type OrderEventPublisher interface {
	PublishOrderCreated(event events.OrderCreated) error
}

// OrderService handles business logic for placing and listing orders.
type OrderService struct {
	orderRepo      repositories.OrderRepository
	restaurantRepo repositories.RestaurantRepository
	publisher      OrderEventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, restaurantRepo repositories.RestaurantRepository, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		orderRepo:      orderRepo,
		restaurantRepo: restaurantRepo,
		publisher:      publisher,
	}
}

// OrderRequest is the input to CreateOrder. AdditionalCosts below zero is
// treated as absent and defaults to 0.
type OrderRequest struct {
	RestaurantID    string             `json:"restaurantId" validate:"required"`
	Items           []models.OrderItem `json:"items" validate:"required,min=1,dive"`
	AdditionalCosts models.Price       `json:"additionalCosts"`
}

// CreateOrder places an order for the given customer. Unit prices are
// resolved from the current menu at order time, so later menu edits never
// change what was charged. The stored order satisfies
// total == itemsTotal + additionalCosts.
func (s *OrderService) CreateOrder(customerID string, req OrderRequest) (*models.Order, error) {
	if _, err := s.restaurantRepo.GetByID(req.RestaurantID); err != nil {
		return nil, err
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}

	var itemsTotal models.Price
	processed := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("quantity for food %s must be positive", item.FoodID)
		}
		food, err := s.restaurantRepo.GetFood(item.FoodID)
		if err != nil {
			return nil, fmt.Errorf("food %s not found: %w", item.FoodID, err)
		}
		if food.RestaurantID != req.RestaurantID {
			return nil, fmt.Errorf("food %s does not belong to restaurant %s", item.FoodID, req.RestaurantID)
		}
		processed = append(processed, models.OrderItem{
			FoodID:    item.FoodID,
			Quantity:  item.Quantity,
			UnitPrice: food.Price,
		})
		itemsTotal += food.Price * models.Price(item.Quantity)
	}

	additional := req.AdditionalCosts
	if additional < 0 {
		additional = 0
	}

	order := &models.Order{
		CustomerID:      customerID,
		RestaurantID:    req.RestaurantID,
		Items:           processed,
		ItemsTotal:      itemsTotal,
		AdditionalCosts: additional,
		Total:           itemsTotal + additional,
		CreatedAt:       time.Now(),
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if s.publisher != nil {
		err := s.publisher.PublishOrderCreated(events.OrderCreated{
			OrderID:      order.ID,
			CustomerID:   order.CustomerID,
			RestaurantID: order.RestaurantID,
			Total:        float64(order.Total),
		})
		if err != nil {
			// The order is already committed; a lost event is logged, not fatal.
			log.Printf("Warning: failed to publish order created event for order %s: %v", order.ID, err)
		}
	}

	return order, nil
}

// ListCustomerOrders returns all orders placed by a customer.
func (s *OrderService) ListCustomerOrders(customerID string) ([]models.Order, error) {
	return s.orderRepo.ListByCustomer(customerID)
}
