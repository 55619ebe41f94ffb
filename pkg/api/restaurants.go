package api

import (
	"context"
	"net/http"
)

// ListRestaurants returns all restaurant listings.
func (c *Client) ListRestaurants(ctx context.Context) ([]Restaurant, error) {
	var restaurants []Restaurant
	if err := c.do(ctx, http.MethodGet, "/restaurants", nil, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

// GetRestaurant returns a single listing.
func (c *Client) GetRestaurant(ctx context.Context, id string) (*Restaurant, error) {
	var restaurant Restaurant
	if err := c.do(ctx, http.MethodGet, "/restaurants/"+id, nil, &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// CreateRestaurant creates a listing owned by the authenticated account.
func (c *Client) CreateRestaurant(ctx context.Context, restaurant Restaurant) (*Restaurant, error) {
	var created Restaurant
	if err := c.do(ctx, http.MethodPost, "/restaurants", restaurant, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateRestaurant modifies a listing the authenticated account owns.
func (c *Client) UpdateRestaurant(ctx context.Context, restaurant Restaurant) (*Restaurant, error) {
	var updated Restaurant
	if err := c.do(ctx, http.MethodPut, "/restaurants/"+restaurant.ID, restaurant, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteRestaurant removes a listing the authenticated account owns.
func (c *Client) DeleteRestaurant(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/restaurants/"+id, nil, nil)
}

// ListFoods returns the menu of a restaurant.
func (c *Client) ListFoods(ctx context.Context, restaurantID string) ([]FoodItem, error) {
	var foods []FoodItem
	if err := c.do(ctx, http.MethodGet, "/restaurants/"+restaurantID+"/foods", nil, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// CreateFood adds a menu entry to a restaurant the account owns.
func (c *Client) CreateFood(ctx context.Context, food FoodItem) (*FoodItem, error) {
	var created FoodItem
	err := c.do(ctx, http.MethodPost, "/restaurants/"+food.RestaurantID+"/foods", food, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateFood modifies a menu entry.
func (c *Client) UpdateFood(ctx context.Context, food FoodItem) (*FoodItem, error) {
	var updated FoodItem
	err := c.do(ctx, http.MethodPut, "/restaurants/"+food.RestaurantID+"/foods/"+food.ID, food, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteFood removes a menu entry.
func (c *Client) DeleteFood(ctx context.Context, restaurantID, foodID string) error {
	return c.do(ctx, http.MethodDelete, "/restaurants/"+restaurantID+"/foods/"+foodID, nil, nil)
}

// ListPhotos returns the photos of a restaurant.
func (c *Client) ListPhotos(ctx context.Context, restaurantID string) ([]Photo, error) {
	var photos []Photo
	if err := c.do(ctx, http.MethodGet, "/restaurants/"+restaurantID+"/photos", nil, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

// UploadPhoto stores a base64-encoded photo on a restaurant the account owns.
func (c *Client) UploadPhoto(ctx context.Context, restaurantID, data string) (*Photo, error) {
	var created Photo
	body := map[string]string{"data": data}
	err := c.do(ctx, http.MethodPost, "/restaurants/"+restaurantID+"/photos", body, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// DeletePhoto removes a photo.
func (c *Client) DeletePhoto(ctx context.Context, restaurantID, photoID string) error {
	return c.do(ctx, http.MethodDelete, "/restaurants/"+restaurantID+"/photos/"+photoID, nil, nil)
}

// ReviewedRestaurants returns the restaurants the authenticated customer
// has reviewed.
func (c *Client) ReviewedRestaurants(ctx context.Context) ([]Restaurant, error) {
	var restaurants []Restaurant
	if err := c.do(ctx, http.MethodGet, "/customers/restaurants", nil, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}
