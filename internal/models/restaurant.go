package models

import "gorm.io/gorm"

// Restaurant is a listing managed by exactly one restaurant-owner account.
// Rating is the average review score and is null until the first review lands.
type Restaurant struct {
	ID             string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name           string   `json:"name" validate:"required,min=2,max=100"`
	Category       string   `json:"category" validate:"omitempty,max=50"`
	PhoneNumber    string   `json:"phoneNumber" validate:"omitempty,max=20"`
	Address        string   `json:"address" validate:"required,max=255"`
	Rating         *float64 `json:"rating" gorm:"-"`
	OwnerAccountID string   `json:"ownerAccountId" gorm:"index;type:varchar(36)"`
	gorm.Model     `json:"-"`
}

// FoodItem is a single menu entry belonging to one restaurant.
type FoodItem struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	RestaurantID string `json:"restaurantId" gorm:"index;type:varchar(36)"`
	Name         string `json:"name" validate:"required,min=1,max=100"`
	Price        Price  `json:"price" validate:"gte=0"`
	gorm.Model   `json:"-"`
}

// RestaurantPhoto holds a base64-encoded image embedded in JSON. Image
// storage proper is out of scope; payloads are treated as opaque strings.
type RestaurantPhoto struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	RestaurantID string `json:"restaurantId" gorm:"index;type:varchar(36)"`
	Data         string `json:"data" gorm:"type:text" validate:"required,base64"`
	gorm.Model   `json:"-"`
}
