package models

import "gorm.io/gorm"

// Account types distinguish diners from restaurant owners. The type is fixed
// at signup and never changes for the lifetime of the account.
const (
	AccountTypeCustomer   = "customer"
	AccountTypeRestaurant = "restaurant"
)

// User represents a registered account, either a customer or a restaurant owner.
type User struct {
	ID          string `json:"accountId" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username    string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email       string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password    string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	DateOfBirth string `json:"dateOfBirth" gorm:"type:varchar(10)" validate:"omitempty,datetime=2006-01-02"`
	AccountType string `json:"accountType" gorm:"type:varchar(16)" validate:"required,oneof=customer restaurant"`
	gorm.Model  `json:"-"`
}

// IsRestaurantOwner reports whether the account may manage restaurant listings.
func (u *User) IsRestaurantOwner() bool {
	return u.AccountType == AccountTypeRestaurant
}
