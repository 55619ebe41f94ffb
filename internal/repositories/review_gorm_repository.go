package repositories

import (
	"errors"
	"fmt"

	"resto/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{db: db}
}

// Create stores a new review.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetByID returns a review by its ID.
func (r *GORMReviewRepository) GetByID(id string) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("review %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get review %s: %w", id, err)
	}
	return &review, nil
}

// Update modifies the rating and content of an existing review.
func (r *GORMReviewRepository) Update(review *models.Review) error {
	res := r.db.Model(&models.Review{}).Where("id = ?", review.ID).Updates(map[string]interface{}{
		"rating":  review.Rating,
		"content": review.Content,
		"date":    review.Date,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update review %s: %w", review.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review %s: %w", review.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a review.
func (r *GORMReviewRepository) Delete(id string) error {
	res := r.db.Delete(&models.Review{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete review %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review %s: %w", id, ErrNotFound)
	}
	return nil
}

// ListByRestaurant returns the reviews of a restaurant, newest first.
func (r *GORMReviewRepository) ListByRestaurant(restaurantID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("restaurant_id = ?", restaurantID).Order("date DESC").Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews of restaurant %s: %w", restaurantID, err)
	}
	return reviews, nil
}

// ListByCustomer returns the reviews written by a customer, newest first.
func (r *GORMReviewRepository) ListByCustomer(customerID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("customer_id = ?", customerID).Order("date DESC").Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews of customer %s: %w", customerID, err)
	}
	return reviews, nil
}

// GetByCustomerAndRestaurant returns the customer's review of a restaurant.
func (r *GORMReviewRepository) GetByCustomerAndRestaurant(customerID, restaurantID string) (*models.Review, error) {
	var review models.Review
	err := r.db.First(&review, "customer_id = ? AND restaurant_id = ?", customerID, restaurantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("review by %s for %s: %w", customerID, restaurantID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get review by %s for %s: %w", customerID, restaurantID, err)
	}
	return &review, nil
}

// AverageRating computes the mean rating of a restaurant.
func (r *GORMReviewRepository) AverageRating(restaurantID string) (float64, int64, error) {
	var row struct {
		Avg   float64
		Count int64
	}
	err := r.db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("restaurant_id = ?", restaurantID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to compute rating of restaurant %s: %w", restaurantID, err)
	}
	return row.Avg, row.Count, nil
}
