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

// RestaurantHandler handles HTTP requests for restaurant listings, menus,
// and photos.
type RestaurantHandler struct {
	service  *services.RestaurantService
	validate *validator.Validate
}

// NewRestaurantHandler creates a new RestaurantHandler.
func NewRestaurantHandler(service *services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the restaurant routes. Reads are public;
// mutations require an authenticated restaurant-owner account.
func (h *RestaurantHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler, ownerOnly fiber.Handler) {
	r := router.Group("/restaurants")

	r.Get("/", h.HandleGetRestaurants)
	r.Get("/:id", h.HandleGetRestaurant)
	r.Get("/:id/foods", h.HandleGetFoods)
	r.Get("/:id/photos", h.HandleGetPhotos)

	r.Post("/", auth, ownerOnly, h.HandleCreateRestaurant)
	r.Put("/:id", auth, ownerOnly, h.HandleUpdateRestaurant)
	r.Delete("/:id", auth, ownerOnly, h.HandleDeleteRestaurant)

	r.Post("/:id/foods", auth, ownerOnly, h.HandleCreateFood)
	r.Put("/:id/foods/:foodId", auth, ownerOnly, h.HandleUpdateFood)
	r.Delete("/:id/foods/:foodId", auth, ownerOnly, h.HandleDeleteFood)

	r.Post("/:id/photos", auth, ownerOnly, h.HandleUploadPhoto)
	r.Delete("/:id/photos/:photoId", auth, ownerOnly, h.HandleDeletePhoto)
}

// HandleGetRestaurants lists all restaurants.
func (h *RestaurantHandler) HandleGetRestaurants(c *fiber.Ctx) error {
	restaurants, err := h.service.GetAllRestaurants()
	if err != nil {
		log.Printf("Error listing restaurants: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve restaurants",
		})
	}
	return c.JSON(restaurants)
}

// HandleGetRestaurant returns a single restaurant.
func (h *RestaurantHandler) HandleGetRestaurant(c *fiber.Ctx) error {
	restaurant, err := h.service.GetRestaurantByID(c.Params("id"))
	if err != nil {
		return restaurantError(c, err, "Could not retrieve restaurant")
	}
	return c.JSON(restaurant)
}

// HandleCreateRestaurant creates a listing owned by the acting account.
func (h *RestaurantHandler) HandleCreateRestaurant(c *fiber.Ctx) error {
	var restaurant models.Restaurant
	if err := c.BodyParser(&restaurant); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(restaurant); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}
	if err := h.service.CreateRestaurant(middleware.AccountID(c), &restaurant); err != nil {
		log.Printf("Error creating restaurant: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create restaurant",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(restaurant)
}

// HandleUpdateRestaurant modifies a listing.
func (h *RestaurantHandler) HandleUpdateRestaurant(c *fiber.Ctx) error {
	var restaurant models.Restaurant
	if err := c.BodyParser(&restaurant); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	restaurant.ID = c.Params("id")
	if err := h.validate.Struct(restaurant); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}
	if err := h.service.UpdateRestaurant(middleware.AccountID(c), &restaurant); err != nil {
		return restaurantError(c, err, "Could not update restaurant")
	}
	return c.JSON(restaurant)
}

// HandleDeleteRestaurant removes a listing and its menu and photos.
func (h *RestaurantHandler) HandleDeleteRestaurant(c *fiber.Ctx) error {
	if err := h.service.DeleteRestaurant(middleware.AccountID(c), c.Params("id")); err != nil {
		return restaurantError(c, err, "Could not delete restaurant")
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleGetFoods returns the menu of a restaurant.
func (h *RestaurantHandler) HandleGetFoods(c *fiber.Ctx) error {
	foods, err := h.service.ListFoods(c.Params("id"))
	if err != nil {
		return restaurantError(c, err, "Could not retrieve foods")
	}
	return c.JSON(foods)
}

// HandleCreateFood adds a menu entry.
func (h *RestaurantHandler) HandleCreateFood(c *fiber.Ctx) error {
	var food models.FoodItem
	if err := c.BodyParser(&food); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	food.RestaurantID = c.Params("id")
	if err := h.validate.Struct(food); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}
	if err := h.service.CreateFood(middleware.AccountID(c), &food); err != nil {
		return restaurantError(c, err, "Could not create food")
	}
	return c.Status(fiber.StatusCreated).JSON(food)
}

// HandleUpdateFood modifies a menu entry.
func (h *RestaurantHandler) HandleUpdateFood(c *fiber.Ctx) error {
	var food models.FoodItem
	if err := c.BodyParser(&food); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	food.ID = c.Params("foodId")
	food.RestaurantID = c.Params("id")
	if err := h.validate.Struct(food); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}
	if err := h.service.UpdateFood(middleware.AccountID(c), c.Params("id"), &food); err != nil {
		return restaurantError(c, err, "Could not update food")
	}
	return c.JSON(food)
}

// HandleDeleteFood removes a menu entry.
func (h *RestaurantHandler) HandleDeleteFood(c *fiber.Ctx) error {
	err := h.service.DeleteFood(middleware.AccountID(c), c.Params("id"), c.Params("foodId"))
	if err != nil {
		return restaurantError(c, err, "Could not delete food")
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleGetPhotos returns the photos of a restaurant.
func (h *RestaurantHandler) HandleGetPhotos(c *fiber.Ctx) error {
	photos, err := h.service.ListPhotos(c.Params("id"))
	if err != nil {
		return restaurantError(c, err, "Could not retrieve photos")
	}
	return c.JSON(photos)
}

// HandleUploadPhoto stores a base64-encoded photo.
func (h *RestaurantHandler) HandleUploadPhoto(c *fiber.Ctx) error {
	var photo models.RestaurantPhoto
	if err := c.BodyParser(&photo); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	photo.RestaurantID = c.Params("id")
	if err := h.validate.Struct(photo); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Photo payload must be base64 encoded",
		})
	}
	if err := h.service.AddPhoto(middleware.AccountID(c), &photo); err != nil {
		return restaurantError(c, err, "Could not upload photo")
	}
	return c.Status(fiber.StatusCreated).JSON(photo)
}

// HandleDeletePhoto removes a photo.
func (h *RestaurantHandler) HandleDeletePhoto(c *fiber.Ctx) error {
	err := h.service.DeletePhoto(middleware.AccountID(c), c.Params("id"), c.Params("photoId"))
	if err != nil {
		return restaurantError(c, err, "Could not delete photo")
	}
	return c.JSON(fiber.Map{"success": true})
}

// restaurantError maps service errors onto HTTP statuses.
func restaurantError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrNotOwner):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "You do not own this restaurant",
		})
	default:
		log.Printf("%s: %v", fallback, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": fallback,
		})
	}
}
