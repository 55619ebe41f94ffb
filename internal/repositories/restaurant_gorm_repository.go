package repositories

import (
	"errors"
	"fmt"

	"resto/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMRestaurantRepository is a GORM implementation of RestaurantRepository.
type GORMRestaurantRepository struct {
	db *gorm.DB
}

// NewGORMRestaurantRepository creates a new instance of GORMRestaurantRepository.
func NewGORMRestaurantRepository(db *gorm.DB) *GORMRestaurantRepository {
	return &GORMRestaurantRepository{db: db}
}

// GetAll returns all restaurant listings.
func (r *GORMRestaurantRepository) GetAll() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := r.db.Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	return restaurants, nil
}

// GetByID returns a restaurant by its ID.
func (r *GORMRestaurantRepository) GetByID(id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.First(&restaurant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("restaurant %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get restaurant %s: %w", id, err)
	}
	return &restaurant, nil
}

// Create adds a new restaurant listing.
func (r *GORMRestaurantRepository) Create(restaurant *models.Restaurant) error {
	if restaurant.ID == "" {
		restaurant.ID = uuid.New().String()
	}
	if err := r.db.Create(restaurant).Error; err != nil {
		return fmt.Errorf("failed to create restaurant: %w", err)
	}
	return nil
}

// Update modifies an existing restaurant listing.
func (r *GORMRestaurantRepository) Update(restaurant *models.Restaurant) error {
	res := r.db.Model(&models.Restaurant{}).Where("id = ?", restaurant.ID).Updates(map[string]interface{}{
		"name":         restaurant.Name,
		"category":     restaurant.Category,
		"phone_number": restaurant.PhoneNumber,
		"address":      restaurant.Address,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update restaurant %s: %w", restaurant.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("restaurant %s: %w", restaurant.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a restaurant and its menu and photos.
func (r *GORMRestaurantRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Restaurant{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete restaurant %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("restaurant %s: %w", id, ErrNotFound)
		}
		if err := tx.Delete(&models.FoodItem{}, "restaurant_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete menu of restaurant %s: %w", id, err)
		}
		if err := tx.Delete(&models.RestaurantPhoto{}, "restaurant_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete photos of restaurant %s: %w", id, err)
		}
		return nil
	})
}

// ListFoods returns the menu of a restaurant.
func (r *GORMRestaurantRepository) ListFoods(restaurantID string) ([]models.FoodItem, error) {
	var foods []models.FoodItem
	if err := r.db.Find(&foods, "restaurant_id = ?", restaurantID).Error; err != nil {
		return nil, fmt.Errorf("failed to list foods of restaurant %s: %w", restaurantID, err)
	}
	return foods, nil
}

// GetFood returns a single menu entry by its ID.
func (r *GORMRestaurantRepository) GetFood(foodID string) (*models.FoodItem, error) {
	var food models.FoodItem
	if err := r.db.First(&food, "id = ?", foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("food %s: %w", foodID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get food %s: %w", foodID, err)
	}
	return &food, nil
}

// CreateFood adds a menu entry.
func (r *GORMRestaurantRepository) CreateFood(food *models.FoodItem) error {
	if food.ID == "" {
		food.ID = uuid.New().String()
	}
	if err := r.db.Create(food).Error; err != nil {
		return fmt.Errorf("failed to create food: %w", err)
	}
	return nil
}

// UpdateFood modifies a menu entry.
func (r *GORMRestaurantRepository) UpdateFood(food *models.FoodItem) error {
	res := r.db.Model(&models.FoodItem{}).Where("id = ?", food.ID).Updates(map[string]interface{}{
		"name":  food.Name,
		"price": float64(food.Price),
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update food %s: %w", food.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("food %s: %w", food.ID, ErrNotFound)
	}
	return nil
}

// DeleteFood removes a menu entry.
func (r *GORMRestaurantRepository) DeleteFood(foodID string) error {
	res := r.db.Delete(&models.FoodItem{}, "id = ?", foodID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete food %s: %w", foodID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("food %s: %w", foodID, ErrNotFound)
	}
	return nil
}

// ListPhotos returns the photos of a restaurant.
func (r *GORMRestaurantRepository) ListPhotos(restaurantID string) ([]models.RestaurantPhoto, error) {
	var photos []models.RestaurantPhoto
	if err := r.db.Find(&photos, "restaurant_id = ?", restaurantID).Error; err != nil {
		return nil, fmt.Errorf("failed to list photos of restaurant %s: %w", restaurantID, err)
	}
	return photos, nil
}

// GetPhoto returns a single photo by its ID.
func (r *GORMRestaurantRepository) GetPhoto(photoID string) (*models.RestaurantPhoto, error) {
	var photo models.RestaurantPhoto
	if err := r.db.First(&photo, "id = ?", photoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("photo %s: %w", photoID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get photo %s: %w", photoID, err)
	}
	return &photo, nil
}

// CreatePhoto stores a photo payload.
func (r *GORMRestaurantRepository) CreatePhoto(photo *models.RestaurantPhoto) error {
	if photo.ID == "" {
		photo.ID = uuid.New().String()
	}
	if err := r.db.Create(photo).Error; err != nil {
		return fmt.Errorf("failed to create photo: %w", err)
	}
	return nil
}

// DeletePhoto removes a photo.
func (r *GORMRestaurantRepository) DeletePhoto(photoID string) error {
	res := r.db.Delete(&models.RestaurantPhoto{}, "id = ?", photoID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete photo %s: %w", photoID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("photo %s: %w", photoID, ErrNotFound)
	}
	return nil
}

// ListReviewedByCustomer returns restaurants the customer has reviewed.
func (r *GORMRestaurantRepository) ListReviewedByCustomer(customerID string) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := r.db.
		Joins("JOIN reviews ON reviews.restaurant_id = restaurants.id").
		Where("reviews.customer_id = ? AND reviews.deleted_at IS NULL", customerID).
		Find(&restaurants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reviewed restaurants for customer %s: %w", customerID, err)
	}
	return restaurants, nil
}
