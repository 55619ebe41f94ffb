package repositories

import "resto/internal/models"

// RestaurantRepository defines the interface for restaurant, menu, and photo
// data access. Menus and photos always hang off a restaurant, so they share
// the aggregate's repository.
type RestaurantRepository interface {
	GetAll() ([]models.Restaurant, error)
	GetByID(id string) (*models.Restaurant, error)
	Create(restaurant *models.Restaurant) error
	Update(restaurant *models.Restaurant) error
	Delete(id string) error

	ListFoods(restaurantID string) ([]models.FoodItem, error)
	GetFood(foodID string) (*models.FoodItem, error)
	CreateFood(food *models.FoodItem) error
	UpdateFood(food *models.FoodItem) error
	DeleteFood(foodID string) error

	ListPhotos(restaurantID string) ([]models.RestaurantPhoto, error)
	GetPhoto(photoID string) (*models.RestaurantPhoto, error)
	CreatePhoto(photo *models.RestaurantPhoto) error
	DeletePhoto(photoID string) error

	// ListReviewedByCustomer returns the restaurants the customer has reviewed.
	ListReviewedByCustomer(customerID string) ([]models.Restaurant, error)
}
