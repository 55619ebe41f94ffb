package api

import (
	"context"
	"net/http"
)

// RestaurantReviews returns the reviews of a restaurant.
func (c *Client) RestaurantReviews(ctx context.Context, restaurantID string) ([]Review, error) {
	var reviews []Review
	if err := c.do(ctx, http.MethodGet, "/restaurants/"+restaurantID+"/reviews", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// MyReviews returns the reviews written by the authenticated customer.
func (c *Client) MyReviews(ctx context.Context) ([]Review, error) {
	var reviews []Review
	if err := c.do(ctx, http.MethodGet, "/customers/reviews", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview submits a review of a restaurant. The backend rejects a
// second review of the same restaurant by the same customer with 409.
func (c *Client) CreateReview(ctx context.Context, review Review) (*Review, error) {
	var created Review
	if err := c.do(ctx, http.MethodPost, "/reviews", review, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateReview edits a review the authenticated customer wrote.
func (c *Client) UpdateReview(ctx context.Context, reviewID string, rating int, content string) (*Review, error) {
	body := map[string]interface{}{
		"rating":  rating,
		"content": content,
	}
	var updated Review
	if err := c.do(ctx, http.MethodPut, "/reviews/"+reviewID, body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteReview removes a review the authenticated customer wrote.
func (c *Client) DeleteReview(ctx context.Context, reviewID string) error {
	return c.do(ctx, http.MethodDelete, "/reviews/"+reviewID, nil, nil)
}
