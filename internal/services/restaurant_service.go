package services

import (
	"fmt"

	"resto/internal/models"
	"resto/internal/repositories"
)

// RestaurantService handles business logic for restaurant listings, menus,
// and photos. Mutations verify ownership against the acting account.
type RestaurantService struct {
	restaurantRepo repositories.RestaurantRepository
	reviewRepo     repositories.ReviewRepository
}

// NewRestaurantService creates a new RestaurantService.
func NewRestaurantService(restaurantRepo repositories.RestaurantRepository, reviewRepo repositories.ReviewRepository) *RestaurantService {
	return &RestaurantService{
		restaurantRepo: restaurantRepo,
		reviewRepo:     reviewRepo,
	}
}

// GetAllRestaurants retrieves all listings with their average ratings.
func (s *RestaurantService) GetAllRestaurants() ([]models.Restaurant, error) {
	restaurants, err := s.restaurantRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range restaurants {
		s.fillRating(&restaurants[i])
	}
	return restaurants, nil
}

// GetRestaurantByID retrieves a single listing with its average rating.
func (s *RestaurantService) GetRestaurantByID(id string) (*models.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	s.fillRating(restaurant)
	return restaurant, nil
}

// fillRating populates the computed Rating field. A restaurant with no
// reviews keeps a nil rating; rating lookups never fail a read.
func (s *RestaurantService) fillRating(restaurant *models.Restaurant) {
	if s.reviewRepo == nil {
		return
	}
	avg, count, err := s.reviewRepo.AverageRating(restaurant.ID)
	if err != nil || count == 0 {
		return
	}
	restaurant.Rating = &avg
}

// CreateRestaurant creates a listing owned by the acting account.
func (s *RestaurantService) CreateRestaurant(ownerID string, restaurant *models.Restaurant) error {
	restaurant.OwnerAccountID = ownerID
	return s.restaurantRepo.Create(restaurant)
}

// UpdateRestaurant modifies a listing after verifying ownership.
func (s *RestaurantService) UpdateRestaurant(actorID string, restaurant *models.Restaurant) error {
	if err := s.requireOwner(actorID, restaurant.ID); err != nil {
		return err
	}
	return s.restaurantRepo.Update(restaurant)
}

// DeleteRestaurant removes a listing after verifying ownership.
func (s *RestaurantService) DeleteRestaurant(actorID, restaurantID string) error {
	if err := s.requireOwner(actorID, restaurantID); err != nil {
		return err
	}
	return s.restaurantRepo.Delete(restaurantID)
}

// ListFoods returns the menu of a restaurant.
func (s *RestaurantService) ListFoods(restaurantID string) ([]models.FoodItem, error) {
	if _, err := s.restaurantRepo.GetByID(restaurantID); err != nil {
		return nil, err
	}
	return s.restaurantRepo.ListFoods(restaurantID)
}

// CreateFood adds a menu entry after verifying ownership.
func (s *RestaurantService) CreateFood(actorID string, food *models.FoodItem) error {
	if err := s.requireOwner(actorID, food.RestaurantID); err != nil {
		return err
	}
	if food.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	return s.restaurantRepo.CreateFood(food)
}

// UpdateFood modifies a menu entry after verifying ownership.
func (s *RestaurantService) UpdateFood(actorID, restaurantID string, food *models.FoodItem) error {
	if err := s.requireOwner(actorID, restaurantID); err != nil {
		return err
	}
	existing, err := s.restaurantRepo.GetFood(food.ID)
	if err != nil {
		return err
	}
	if existing.RestaurantID != restaurantID {
		return fmt.Errorf("food %s: %w", food.ID, repositories.ErrNotFound)
	}
	if food.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	return s.restaurantRepo.UpdateFood(food)
}

// DeleteFood removes a menu entry after verifying ownership.
func (s *RestaurantService) DeleteFood(actorID, restaurantID, foodID string) error {
	if err := s.requireOwner(actorID, restaurantID); err != nil {
		return err
	}
	food, err := s.restaurantRepo.GetFood(foodID)
	if err != nil {
		return err
	}
	if food.RestaurantID != restaurantID {
		return fmt.Errorf("food %s: %w", foodID, repositories.ErrNotFound)
	}
	return s.restaurantRepo.DeleteFood(foodID)
}

// ListPhotos returns the photos of a restaurant.
func (s *RestaurantService) ListPhotos(restaurantID string) ([]models.RestaurantPhoto, error) {
	if _, err := s.restaurantRepo.GetByID(restaurantID); err != nil {
		return nil, err
	}
	return s.restaurantRepo.ListPhotos(restaurantID)
}

// AddPhoto stores a photo after verifying ownership.
func (s *RestaurantService) AddPhoto(actorID string, photo *models.RestaurantPhoto) error {
	if err := s.requireOwner(actorID, photo.RestaurantID); err != nil {
		return err
	}
	return s.restaurantRepo.CreatePhoto(photo)
}

// DeletePhoto removes a photo after verifying ownership.
func (s *RestaurantService) DeletePhoto(actorID, restaurantID, photoID string) error {
	if err := s.requireOwner(actorID, restaurantID); err != nil {
		return err
	}
	photo, err := s.restaurantRepo.GetPhoto(photoID)
	if err != nil {
		return err
	}
	if photo.RestaurantID != restaurantID {
		return fmt.Errorf("photo %s: %w", photoID, repositories.ErrNotFound)
	}
	return s.restaurantRepo.DeletePhoto(photoID)
}

// ListReviewedRestaurants returns the restaurants a customer has reviewed.
func (s *RestaurantService) ListReviewedRestaurants(customerID string) ([]models.Restaurant, error) {
	restaurants, err := s.restaurantRepo.ListReviewedByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	for i := range restaurants {
		s.fillRating(&restaurants[i])
	}
	return restaurants, nil
}

func (s *RestaurantService) requireOwner(actorID, restaurantID string) error {
	restaurant, err := s.restaurantRepo.GetByID(restaurantID)
	if err != nil {
		return err
	}
	if restaurant.OwnerAccountID != actorID {
		return fmt.Errorf("restaurant %s: %w", restaurantID, ErrNotOwner)
	}
	return nil
}
