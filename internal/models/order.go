package models

import "time"

// OrderItem is a single line of an order. UnitPrice is the food item's price
// at the time the order was placed; later menu edits do not affect it.
type OrderItem struct {
	ID        uint   `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID   string `json:"-" gorm:"index;type:varchar(36)"`
	FoodID    string `json:"foodId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	UnitPrice Price  `json:"unitPrice"`
}

// Order is a customer's order against one restaurant. Orders are immutable
// once created; there is no update or cancellation endpoint.
type Order struct {
	ID              string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CustomerID      string      `json:"customerId" gorm:"index;type:varchar(36)"`
	RestaurantID    string      `json:"restaurantId" gorm:"index;type:varchar(36)"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	ItemsTotal      Price       `json:"itemsTotal"`
	AdditionalCosts Price       `json:"additionalCosts"`
	Total           Price       `json:"total"`
	CreatedAt       time.Time   `json:"createdAt"`
}
