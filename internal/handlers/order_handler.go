package handlers

import (
	"errors"
	"log"

	"resto/internal/middleware"
	"resto/internal/repositories"
	"resto/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes. All order routes require an
// authenticated session.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	orderRoutes := router.Group("/orders", auth)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/customer", h.HandleGetCustomerOrders)
}

// HandleCreateOrder places an order for the authenticated customer.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req services.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "RestaurantID and at least one item are required for an order.",
		})
	}

	order, err := h.service.CreateOrder(middleware.AccountID(c), req)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		log.Printf("Error creating order: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not create order",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleGetCustomerOrders returns the authenticated customer's orders.
func (h *OrderHandler) HandleGetCustomerOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListCustomerOrders(middleware.AccountID(c))
	if err != nil {
		log.Printf("Error listing customer orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
		})
	}
	return c.JSON(orders)
}
