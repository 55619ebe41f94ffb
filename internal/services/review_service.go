package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"resto/internal/models"
	"resto/internal/repositories"
)

// ReviewMarker is a fast-path duplicate check backed by Redis. A positive
// answer short-circuits the database query; a negative answer is always
// verified against the database.
type ReviewMarker interface {
	Seen(ctx context.Context, customerID, restaurantID string) (bool, error)
	Mark(ctx context.Context, customerID, restaurantID string) error
	Clear(ctx context.Context, customerID, restaurantID string) error
}

// ReviewService handles business logic for restaurant reviews. A customer
// may hold at most one review per restaurant.
type ReviewService struct {
	reviewRepo     repositories.ReviewRepository
	restaurantRepo repositories.RestaurantRepository
	marker         ReviewMarker
}

// NewReviewService creates a new ReviewService. The marker may be nil when
// no Redis instance is configured.
func NewReviewService(reviewRepo repositories.ReviewRepository, restaurantRepo repositories.RestaurantRepository, marker ReviewMarker) *ReviewService {
	return &ReviewService{
		reviewRepo:     reviewRepo,
		restaurantRepo: restaurantRepo,
		marker:         marker,
	}
}

// CreateReview stores a customer's review of a restaurant, rejecting a
// second review of the same restaurant by the same customer.
func (s *ReviewService) CreateReview(ctx context.Context, customerID string, review *models.Review) (*models.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}
	if _, err := s.restaurantRepo.GetByID(review.RestaurantID); err != nil {
		return nil, err
	}

	if s.marker != nil {
		seen, err := s.marker.Seen(ctx, customerID, review.RestaurantID)
		if err != nil {
			log.Printf("Warning: review marker lookup failed: %v", err)
		} else if seen {
			return nil, ErrDuplicateReview
		}
	}

	if existing, err := s.reviewRepo.GetByCustomerAndRestaurant(customerID, review.RestaurantID); err == nil && existing != nil {
		return nil, ErrDuplicateReview
	}

	review.CustomerID = customerID
	review.Date = time.Now()
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if s.marker != nil {
		if err := s.marker.Mark(ctx, customerID, review.RestaurantID); err != nil {
			log.Printf("Warning: failed to set review marker: %v", err)
		}
	}

	return review, nil
}

// UpdateReview modifies a review after verifying the actor wrote it.
func (s *ReviewService) UpdateReview(customerID, reviewID string, rating int, content string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}
	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		return nil, err
	}
	if review.CustomerID != customerID {
		return nil, fmt.Errorf("review %s: %w", reviewID, ErrNotOwner)
	}

	review.Rating = rating
	review.Content = content
	review.Date = time.Now()
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview removes a review after verifying the actor wrote it, and
// clears the duplicate marker so the customer may review again.
func (s *ReviewService) DeleteReview(ctx context.Context, customerID, reviewID string) error {
	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		return err
	}
	if review.CustomerID != customerID {
		return fmt.Errorf("review %s: %w", reviewID, ErrNotOwner)
	}
	if err := s.reviewRepo.Delete(reviewID); err != nil {
		return err
	}
	if s.marker != nil {
		if err := s.marker.Clear(ctx, customerID, review.RestaurantID); err != nil {
			log.Printf("Warning: failed to clear review marker: %v", err)
		}
	}
	return nil
}

// ListRestaurantReviews returns the reviews of a restaurant.
func (s *ReviewService) ListRestaurantReviews(restaurantID string) ([]models.Review, error) {
	if _, err := s.restaurantRepo.GetByID(restaurantID); err != nil {
		return nil, err
	}
	return s.reviewRepo.ListByRestaurant(restaurantID)
}

// ListCustomerReviews returns the reviews written by a customer.
func (s *ReviewService) ListCustomerReviews(customerID string) ([]models.Review, error) {
	return s.reviewRepo.ListByCustomer(customerID)
}

// IsNotFound reports whether err stems from a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, repositories.ErrNotFound)
}
