package repositories

import (
	"fmt"
	"sync"

	"resto/internal/models"

	"github.com/google/uuid"
)

// MockRestaurantRepository is an in-memory implementation of
// RestaurantRepository, used by unit tests that do not need a database.
type MockRestaurantRepository struct {
	restaurants map[string]models.Restaurant
	foods       map[string]models.FoodItem
	photos      map[string]models.RestaurantPhoto
	reviewedBy  map[string][]string // customerID -> restaurant IDs
	mu          sync.RWMutex
}

// NewMockRestaurantRepository creates a new instance of MockRestaurantRepository.
func NewMockRestaurantRepository() *MockRestaurantRepository {
	return &MockRestaurantRepository{
		restaurants: make(map[string]models.Restaurant),
		foods:       make(map[string]models.FoodItem),
		photos:      make(map[string]models.RestaurantPhoto),
		reviewedBy:  make(map[string][]string),
	}
}

// GetAll returns all restaurants.
func (r *MockRestaurantRepository) GetAll() ([]models.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Restaurant, 0, len(r.restaurants))
	for _, rest := range r.restaurants {
		list = append(list, rest)
	}
	return list, nil
}

// GetByID returns a restaurant by its ID.
func (r *MockRestaurantRepository) GetByID(id string) (*models.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rest, ok := r.restaurants[id]
	if !ok {
		return nil, fmt.Errorf("restaurant %s: %w", id, ErrNotFound)
	}
	return &rest, nil
}

// Create adds a new restaurant.
func (r *MockRestaurantRepository) Create(restaurant *models.Restaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if restaurant.ID == "" {
		restaurant.ID = uuid.New().String()
	}
	r.restaurants[restaurant.ID] = *restaurant
	return nil
}

// Update modifies an existing restaurant.
func (r *MockRestaurantRepository) Update(restaurant *models.Restaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.restaurants[restaurant.ID]; !ok {
		return fmt.Errorf("restaurant %s: %w", restaurant.ID, ErrNotFound)
	}
	r.restaurants[restaurant.ID] = *restaurant
	return nil
}

// Delete removes a restaurant together with its menu and photos.
func (r *MockRestaurantRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.restaurants[id]; !ok {
		return fmt.Errorf("restaurant %s: %w", id, ErrNotFound)
	}
	delete(r.restaurants, id)
	for foodID, food := range r.foods {
		if food.RestaurantID == id {
			delete(r.foods, foodID)
		}
	}
	for photoID, photo := range r.photos {
		if photo.RestaurantID == id {
			delete(r.photos, photoID)
		}
	}
	return nil
}

// ListFoods returns the menu of a restaurant.
func (r *MockRestaurantRepository) ListFoods(restaurantID string) ([]models.FoodItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var foods []models.FoodItem
	for _, f := range r.foods {
		if f.RestaurantID == restaurantID {
			foods = append(foods, f)
		}
	}
	return foods, nil
}

// GetFood returns a menu entry by its ID.
func (r *MockRestaurantRepository) GetFood(foodID string) (*models.FoodItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	food, ok := r.foods[foodID]
	if !ok {
		return nil, fmt.Errorf("food %s: %w", foodID, ErrNotFound)
	}
	return &food, nil
}

// CreateFood adds a menu entry.
func (r *MockRestaurantRepository) CreateFood(food *models.FoodItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if food.ID == "" {
		food.ID = uuid.New().String()
	}
	r.foods[food.ID] = *food
	return nil
}

// UpdateFood modifies a menu entry.
func (r *MockRestaurantRepository) UpdateFood(food *models.FoodItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.foods[food.ID]; !ok {
		return fmt.Errorf("food %s: %w", food.ID, ErrNotFound)
	}
	r.foods[food.ID] = *food
	return nil
}

// DeleteFood removes a menu entry.
func (r *MockRestaurantRepository) DeleteFood(foodID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.foods[foodID]; !ok {
		return fmt.Errorf("food %s: %w", foodID, ErrNotFound)
	}
	delete(r.foods, foodID)
	return nil
}

// ListPhotos returns the photos of a restaurant.
func (r *MockRestaurantRepository) ListPhotos(restaurantID string) ([]models.RestaurantPhoto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var photos []models.RestaurantPhoto
	for _, p := range r.photos {
		if p.RestaurantID == restaurantID {
			photos = append(photos, p)
		}
	}
	return photos, nil
}

// GetPhoto returns a photo by its ID.
func (r *MockRestaurantRepository) GetPhoto(photoID string) (*models.RestaurantPhoto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	photo, ok := r.photos[photoID]
	if !ok {
		return nil, fmt.Errorf("photo %s: %w", photoID, ErrNotFound)
	}
	return &photo, nil
}

// CreatePhoto stores a photo payload.
func (r *MockRestaurantRepository) CreatePhoto(photo *models.RestaurantPhoto) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if photo.ID == "" {
		photo.ID = uuid.New().String()
	}
	r.photos[photo.ID] = *photo
	return nil
}

// DeletePhoto removes a photo.
func (r *MockRestaurantRepository) DeletePhoto(photoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.photos[photoID]; !ok {
		return fmt.Errorf("photo %s: %w", photoID, ErrNotFound)
	}
	delete(r.photos, photoID)
	return nil
}

// ListReviewedByCustomer returns restaurants recorded via MarkReviewed.
func (r *MockRestaurantRepository) ListReviewedByCustomer(customerID string) ([]models.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var list []models.Restaurant
	for _, id := range r.reviewedBy[customerID] {
		if rest, ok := r.restaurants[id]; ok {
			list = append(list, rest)
		}
	}
	return list, nil
}

// MarkReviewed records a reviewed restaurant for ListReviewedByCustomer.
func (r *MockRestaurantRepository) MarkReviewed(customerID, restaurantID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviewedBy[customerID] = append(r.reviewedBy[customerID], restaurantID)
}
