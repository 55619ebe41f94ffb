package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is a customer's rating of a restaurant. A customer may hold at most
// one review per restaurant; edits go through the update endpoint.
type Review struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CustomerID   string    `json:"customerId" gorm:"index:idx_reviews_customer_restaurant;type:varchar(36)"`
	RestaurantID string    `json:"restaurantId" gorm:"index:idx_reviews_customer_restaurant;type:varchar(36)"`
	Rating       int       `json:"rating" validate:"required,min=1,max=5"`
	Content      string    `json:"content" gorm:"type:text" validate:"max=2000"`
	Date         time.Time `json:"date"`
	gorm.Model   `json:"-"`
}
