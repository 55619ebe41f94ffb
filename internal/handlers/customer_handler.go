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

// CustomerHandler handles HTTP requests for the customer address book,
// direct messages, and the reviewed-restaurants listing.
type CustomerHandler struct {
	customerService   *services.CustomerService
	restaurantService *services.RestaurantService
	validate          *validator.Validate
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerService *services.CustomerService, restaurantService *services.RestaurantService) *CustomerHandler {
	return &CustomerHandler{
		customerService:   customerService,
		restaurantService: restaurantService,
		validate:          validator.New(),
	}
}

// RegisterRoutes registers the customer routes. Everything here requires an
// authenticated session.
func (h *CustomerHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	customers := router.Group("/customers", auth)
	customers.Get("/address", h.HandleGetAddresses)
	customers.Post("/address", h.HandleAddAddress)
	customers.Put("/address", h.HandleRenameAddress)
	customers.Delete("/address", h.HandleDeleteAddress)
	customers.Get("/messages", h.HandleGetMessages)
	customers.Get("/restaurants", h.HandleGetReviewedRestaurants)

	router.Post("/messages", auth, h.HandleSendMessage)
}

// HandleGetAddresses returns the customer's address book.
func (h *CustomerHandler) HandleGetAddresses(c *fiber.Ctx) error {
	addresses, err := h.customerService.ListAddresses(middleware.AccountID(c))
	if err != nil {
		log.Printf("Error listing addresses: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve addresses",
		})
	}
	return c.JSON(addresses)
}

// addressRequest is the request body for adding an address.
type addressRequest struct {
	Address string `json:"address" validate:"required,max=255"`
}

// HandleAddAddress appends an address to the customer's address book.
func (h *CustomerHandler) HandleAddAddress(c *fiber.Ctx) error {
	var req addressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Address is required",
		})
	}

	address, err := h.customerService.AddAddress(middleware.AccountID(c), req.Address)
	if err != nil {
		return customerError(c, err, "Could not add address")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"address": address})
}

// renameAddressRequest identifies an address by its current text.
type renameAddressRequest struct {
	OldAddress string `json:"old_address" validate:"required"`
	NewAddress string `json:"new_address" validate:"required,max=255"`
}

// HandleRenameAddress rewrites an address identified by its current text.
func (h *CustomerHandler) HandleRenameAddress(c *fiber.Ctx) error {
	var req renameAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Both old_address and new_address are required",
		})
	}

	err := h.customerService.RenameAddress(middleware.AccountID(c), req.OldAddress, req.NewAddress)
	if err != nil {
		return customerError(c, err, "Could not update address")
	}
	return c.JSON(fiber.Map{"success": true})
}

// deleteAddressRequest identifies an address by its literal text.
type deleteAddressRequest struct {
	Address string `json:"address" validate:"required"`
}

// HandleDeleteAddress removes an address identified by its literal text.
func (h *CustomerHandler) HandleDeleteAddress(c *fiber.Ctx) error {
	var req deleteAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Address is required",
		})
	}

	err := h.customerService.DeleteAddress(middleware.AccountID(c), req.Address)
	if err != nil {
		return customerError(c, err, "Could not delete address")
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleGetMessages returns every message the account sent or received.
func (h *CustomerHandler) HandleGetMessages(c *fiber.Ctx) error {
	messages, err := h.customerService.ListMessages(middleware.AccountID(c))
	if err != nil {
		log.Printf("Error listing messages: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve messages",
		})
	}
	return c.JSON(messages)
}

// sendMessageRequest is the request body for sending a direct message.
type sendMessageRequest struct {
	RecipientID string `json:"recipientId" validate:"required"`
	Content     string `json:"content" validate:"required,max=4000"`
}

// HandleSendMessage stores a direct message from the authenticated account.
func (h *CustomerHandler) HandleSendMessage(c *fiber.Ctx) error {
	var req sendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "RecipientId and content are required",
		})
	}

	message, err := h.customerService.SendMessage(middleware.AccountID(c), req.RecipientID, req.Content)
	if err != nil {
		return customerError(c, err, "Could not send message")
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

// HandleGetReviewedRestaurants lists the restaurants the customer reviewed.
func (h *CustomerHandler) HandleGetReviewedRestaurants(c *fiber.Ctx) error {
	restaurants, err := h.restaurantService.ListReviewedRestaurants(middleware.AccountID(c))
	if err != nil {
		log.Printf("Error listing reviewed restaurants: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve restaurants",
		})
	}
	return c.JSON(restaurants)
}

// customerError maps customer service errors onto HTTP statuses.
func customerError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrDuplicateAddress):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Address already exists",
		})
	default:
		log.Printf("%s: %v", fallback, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fallback,
			"error":   err.Error(),
		})
	}
}
