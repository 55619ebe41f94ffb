package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReviewMarker is a fast-path check for "has this customer already reviewed
// this restaurant". A miss is never authoritative; the database query is.
type ReviewMarker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReviewMarker creates a marker cache on top of an existing Redis client.
func NewReviewMarker(client *redis.Client, ttl time.Duration) *ReviewMarker {
	return &ReviewMarker{client: client, ttl: ttl}
}

func (m *ReviewMarker) key(customerID, restaurantID string) string {
	return "review:" + customerID + ":" + restaurantID
}

// Seen reports whether a review marker exists for the pair.
func (m *ReviewMarker) Seen(ctx context.Context, customerID, restaurantID string) (bool, error) {
	res, err := m.client.Exists(ctx, m.key(customerID, restaurantID)).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

// Mark records that the customer has reviewed the restaurant.
func (m *ReviewMarker) Mark(ctx context.Context, customerID, restaurantID string) error {
	return m.client.Set(ctx, m.key(customerID, restaurantID), "1", m.ttl).Err()
}

// Clear removes the marker, used when a review is deleted.
func (m *ReviewMarker) Clear(ctx context.Context, customerID, restaurantID string) error {
	return m.client.Del(ctx, m.key(customerID, restaurantID)).Err()
}
