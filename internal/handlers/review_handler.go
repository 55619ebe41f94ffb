package handlers

import (
	"errors"
	"log"

	"resto/internal/middleware"
	"resto/internal/models"
	"resto/internal/repositories"
	"resto/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests for restaurant reviews.
type ReviewHandler struct {
	service  *services.ReviewService
	validate *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the review routes. Listing a restaurant's reviews
// is public; everything else requires authentication.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Get("/restaurants/:id/reviews", h.HandleGetRestaurantReviews)
	router.Get("/customers/reviews", auth, h.HandleGetCustomerReviews)

	reviewRoutes := router.Group("/reviews", auth)
	reviewRoutes.Post("/", h.HandleCreateReview)
	reviewRoutes.Put("/:id", h.HandleUpdateReview)
	reviewRoutes.Delete("/:id", h.HandleDeleteReview)
}

// HandleGetRestaurantReviews lists the reviews of a restaurant.
func (h *ReviewHandler) HandleGetRestaurantReviews(c *fiber.Ctx) error {
	reviews, err := h.service.ListRestaurantReviews(c.Params("id"))
	if err != nil {
		return reviewError(c, err, "Could not retrieve reviews")
	}
	return c.JSON(reviews)
}

// HandleGetCustomerReviews lists the authenticated customer's reviews.
func (h *ReviewHandler) HandleGetCustomerReviews(c *fiber.Ctx) error {
	reviews, err := h.service.ListCustomerReviews(middleware.AccountID(c))
	if err != nil {
		return reviewError(c, err, "Could not retrieve reviews")
	}
	return c.JSON(reviews)
}

// HandleCreateReview stores a review written by the authenticated customer.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	var review models.Review
	if err := c.BodyParser(&review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Rating must be an integer between 1 and 5",
		})
	}

	created, err := h.service.CreateReview(c.Context(), middleware.AccountID(c), &review)
	if err != nil {
		return reviewError(c, err, "Could not create review")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// reviewUpdateRequest is the request body for editing a review.
type reviewUpdateRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Content string `json:"content" validate:"max=2000"`
}

// HandleUpdateReview edits a review the authenticated customer wrote.
func (h *ReviewHandler) HandleUpdateReview(c *fiber.Ctx) error {
	var req reviewUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Rating must be an integer between 1 and 5",
		})
	}

	review, err := h.service.UpdateReview(middleware.AccountID(c), c.Params("id"), req.Rating, req.Content)
	if err != nil {
		return reviewError(c, err, "Could not update review")
	}
	return c.JSON(review)
}

// HandleDeleteReview removes a review the authenticated customer wrote.
func (h *ReviewHandler) HandleDeleteReview(c *fiber.Ctx) error {
	err := h.service.DeleteReview(c.Context(), middleware.AccountID(c), c.Params("id"))
	if err != nil {
		return reviewError(c, err, "Could not delete review")
	}
	return c.JSON(fiber.Map{"success": true})
}

// reviewError maps review service errors onto HTTP statuses.
func reviewError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrDuplicateReview):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "You have already reviewed this restaurant",
		})
	case errors.Is(err, services.ErrNotOwner):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "You can only modify your own reviews",
		})
	default:
		log.Printf("%s: %v", fallback, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": fallback,
		})
	}
}
