package repositories

import "resto/internal/models"

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByID(id string) (*models.Review, error)
	Update(review *models.Review) error
	Delete(id string) error
	ListByRestaurant(restaurantID string) ([]models.Review, error)
	ListByCustomer(customerID string) ([]models.Review, error)
	GetByCustomerAndRestaurant(customerID, restaurantID string) (*models.Review, error)
	// AverageRating returns the mean rating of a restaurant and the number of
	// reviews it is based on; count 0 means the restaurant is unrated.
	AverageRating(restaurantID string) (float64, int64, error)
}
