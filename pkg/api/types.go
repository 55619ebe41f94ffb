package api

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Price is a decimal amount transported as a two-place decimal string
// ("12.50"). The backend also accepts plain JSON numbers.
type Price float64

// MarshalJSON formats the price as a quoted two-place decimal string.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(p.String())), nil
}

// UnmarshalJSON accepts either a JSON number or a decimal string.
func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*p = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", s, err)
	}
	*p = Price(v)
	return nil
}

// String renders the price with exactly two decimal places.
func (p Price) String() string {
	return strconv.FormatFloat(float64(p), 'f', 2, 64)
}

// User is the account record returned by login.
type User struct {
	AccountID   string `json:"accountId"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	DateOfBirth string `json:"dateOfBirth"`
	AccountType string `json:"accountType"`
}

// IsRestaurantOwner reports whether the account may manage listings.
func (u *User) IsRestaurantOwner() bool {
	return u.AccountType == "restaurant"
}

// Credentials is a successful login response.
type Credentials struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SignupRequest is the registration payload. Registration never establishes
// a session; call Login afterwards.
type SignupRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DateOfBirth string `json:"dateOfBirth"`
	AccountType string `json:"accountType"`
}

// Restaurant is a listing. Rating is nil until the first review lands.
type Restaurant struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	PhoneNumber    string   `json:"phoneNumber"`
	Address        string   `json:"address"`
	Rating         *float64 `json:"rating"`
	OwnerAccountID string   `json:"ownerAccountId"`
}

// FoodItem is a menu entry.
type FoodItem struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurantId"`
	Name         string `json:"name"`
	Price        Price  `json:"price"`
}

// Photo is a base64-encoded restaurant image embedded in JSON.
type Photo struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurantId"`
	Data         string `json:"data"`
}

// OrderItem is a single order line. UnitPrice is fixed at order time.
type OrderItem struct {
	FoodID    string `json:"foodId"`
	Quantity  int    `json:"quantity"`
	UnitPrice Price  `json:"unitPrice"`
}

// Order is an immutable placed order; total == itemsTotal + additionalCosts.
type Order struct {
	ID              string      `json:"id"`
	CustomerID      string      `json:"customerId"`
	RestaurantID    string      `json:"restaurantId"`
	Items           []OrderItem `json:"items"`
	ItemsTotal      Price       `json:"itemsTotal"`
	AdditionalCosts Price       `json:"additionalCosts"`
	Total           Price       `json:"total"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// Review is a customer's rating of a restaurant.
type Review struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customerId"`
	RestaurantID string    `json:"restaurantId"`
	Rating       int       `json:"rating"`
	Content      string    `json:"content"`
	Date         time.Time `json:"date"`
}

// Address is a delivery address, identified on the wire by its text.
type Address struct {
	Text string `json:"address"`
}

// Message is a direct message between two accounts.
type Message struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"senderId"`
	RecipientID string    `json:"recipientId"`
	Content     string    `json:"content"`
	SentAt      time.Time `json:"sentAt"`
}
