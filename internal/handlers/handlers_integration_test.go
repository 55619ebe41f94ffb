package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"testing"

	"resto/internal/handlers"
	"resto/internal/middleware"
	"resto/internal/models"
	"resto/internal/repositories"
	"resto/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp builds a Fiber app over a fresh in-memory SQLite database with
// the same route layout as main.go. Event publishing and the Redis marker
// are disabled.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.FoodItem{},
		&models.RestaurantPhoto{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.Address{},
		&models.Message{},
	)
	require.NoError(t, err)

	userRepo := repositories.NewGORMUserRepository(db)
	restaurantRepo := repositories.NewGORMRestaurantRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)
	customerRepo := repositories.NewGORMCustomerRepository(db)

	authService := services.NewAuthService(userRepo, "test_jwt_secret")
	restaurantService := services.NewRestaurantService(restaurantRepo, reviewRepo)
	orderService := services.NewOrderService(orderRepo, restaurantRepo, nil)
	reviewService := services.NewReviewService(reviewRepo, restaurantRepo, nil)
	customerService := services.NewCustomerService(customerRepo, userRepo)

	app := fiber.New()
	auth := middleware.AuthRequired(authService)
	ownerOnly := middleware.RestaurantOwnerOnly()

	api := app.Group("/api")
	handlers.NewAuthHandler(authService).RegisterRoutes(api)
	handlers.NewRestaurantHandler(restaurantService).RegisterRoutes(api, auth, ownerOnly)
	handlers.NewOrderHandler(orderService).RegisterRoutes(api, auth)
	handlers.NewReviewHandler(reviewService).RegisterRoutes(api, auth)
	handlers.NewCustomerHandler(customerService, restaurantService).RegisterRoutes(api, auth)

	return app
}

// request performs one request against the test app and decodes the JSON
// response body into a generic map.
func request(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}, []byte) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(encoded)
	}
	req, err := http.NewRequest(method, path, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	decoded := map[string]interface{}{}
	_ = json.Unmarshal(raw, &decoded)
	return resp.StatusCode, decoded, raw
}

// signupAndLogin registers an account and logs it in, returning the token
// and the account ID.
func signupAndLogin(t *testing.T, app *fiber.App, username, accountType string) (string, string) {
	t.Helper()

	status, body, _ := request(t, app, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"username":    username,
		"email":       username + "@example.com",
		"password":    "password123",
		"dateOfBirth": "1990-04-01",
		"accountType": accountType,
	})
	require.Equal(t, http.StatusCreated, status, "signup failed: %v", body)
	require.Equal(t, true, body["success"])

	status, body, _ = request(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": username,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, status, "login failed: %v", body)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	user, _ := body["user"].(map[string]interface{})
	require.NotNil(t, user)
	accountID, _ := user["accountId"].(string)
	require.NotEmpty(t, accountID)
	return token, accountID
}

func createRestaurant(t *testing.T, app *fiber.App, token, name string) string {
	t.Helper()
	status, body, _ := request(t, app, http.MethodPost, "/api/restaurants", token, map[string]string{
		"name":        name,
		"category":    "Italian",
		"phoneNumber": "555-0101",
		"address":     "42 Via Roma",
	})
	require.Equal(t, http.StatusCreated, status, "create restaurant failed: %v", body)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	app := setupApp(t)
	signupAndLogin(t, app, "alice", models.AccountTypeCustomer)

	status, body, _ := request(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "alice",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", body["error"])

	// Unknown usernames produce the identical response.
	status, body, _ = request(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "nobody",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", body["error"])
}

func TestSignup_DuplicateUsername(t *testing.T) {
	app := setupApp(t)
	signupAndLogin(t, app, "bob", models.AccountTypeCustomer)

	status, _, _ := request(t, app, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"username":    "bob",
		"email":       "bob2@example.com",
		"password":    "password123",
		"accountType": models.AccountTypeCustomer,
	})
	assert.Equal(t, http.StatusConflict, status)
}

func TestOwnerOnlyRoutes(t *testing.T) {
	app := setupApp(t)
	customerToken, _ := signupAndLogin(t, app, "carla", models.AccountTypeCustomer)

	// Anonymous
	status, _, _ := request(t, app, http.MethodPost, "/api/restaurants", "", map[string]string{
		"name": "Nope", "address": "1 Nowhere",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	// Authenticated customer
	status, _, _ = request(t, app, http.MethodPost, "/api/restaurants", customerToken, map[string]string{
		"name": "Nope", "address": "1 Nowhere",
	})
	assert.Equal(t, http.StatusForbidden, status)

	// Restaurant owner
	ownerToken, _ := signupAndLogin(t, app, "oscar", models.AccountTypeRestaurant)
	createRestaurant(t, app, ownerToken, "Oscar's")
}

func TestFoodRoundTrip(t *testing.T) {
	app := setupApp(t)
	ownerToken, _ := signupAndLogin(t, app, "luigi", models.AccountTypeRestaurant)
	restaurantID := createRestaurant(t, app, ownerToken, "Luigi's")

	status, created, _ := request(t, app, http.MethodPost, "/api/restaurants/"+restaurantID+"/foods", ownerToken, map[string]interface{}{
		"name":  "Margherita",
		"price": "12.5",
	})
	require.Equal(t, http.StatusCreated, status, "create food failed: %v", created)
	foodID, _ := created["id"].(string)
	require.NotEmpty(t, foodID)

	status, _, raw := request(t, app, http.MethodGet, "/api/restaurants/"+restaurantID+"/foods", "", nil)
	require.Equal(t, http.StatusOK, status)

	var foods []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &foods))
	require.Len(t, foods, 1)
	assert.Equal(t, "Margherita", foods[0]["name"])
	// Prices travel as two-place decimal strings.
	assert.Equal(t, "12.50", foods[0]["price"])

	// Deleting the item empties the menu.
	status, _, _ = request(t, app, http.MethodDelete, "/api/restaurants/"+restaurantID+"/foods/"+foodID, ownerToken, nil)
	require.Equal(t, http.StatusOK, status)

	status, _, raw = request(t, app, http.MethodGet, "/api/restaurants/"+restaurantID+"/foods", "", nil)
	require.Equal(t, http.StatusOK, status)
	foods = nil
	require.NoError(t, json.Unmarshal(raw, &foods))
	for _, f := range foods {
		assert.NotEqual(t, foodID, f["id"])
	}
}

func TestFoodMutation_RequiresOwnership(t *testing.T) {
	app := setupApp(t)
	ownerToken, _ := signupAndLogin(t, app, "mario", models.AccountTypeRestaurant)
	otherToken, _ := signupAndLogin(t, app, "wario", models.AccountTypeRestaurant)
	restaurantID := createRestaurant(t, app, ownerToken, "Mario's")

	status, _, _ := request(t, app, http.MethodPost, "/api/restaurants/"+restaurantID+"/foods", otherToken, map[string]interface{}{
		"name":  "Intruder Special",
		"price": 1,
	})
	assert.Equal(t, http.StatusForbidden, status)
}

func TestOrderFlow(t *testing.T) {
	app := setupApp(t)
	ownerToken, _ := signupAndLogin(t, app, "chef", models.AccountTypeRestaurant)
	customerToken, customerID := signupAndLogin(t, app, "diner", models.AccountTypeCustomer)
	restaurantID := createRestaurant(t, app, ownerToken, "Chef's Table")

	status, food, _ := request(t, app, http.MethodPost, "/api/restaurants/"+restaurantID+"/foods", ownerToken, map[string]interface{}{
		"name":  "Tasting Menu",
		"price": 80,
	})
	require.Equal(t, http.StatusCreated, status)
	foodID := food["id"].(string)

	status, order, _ := request(t, app, http.MethodPost, "/api/orders", customerToken, map[string]interface{}{
		"restaurantId": restaurantID,
		"items": []map[string]interface{}{
			{"foodId": foodID, "quantity": 2},
		},
		"additionalCosts": 5,
	})
	require.Equal(t, http.StatusCreated, status, "create order failed: %v", order)
	assert.Equal(t, "160.00", order["itemsTotal"])
	assert.Equal(t, "5.00", order["additionalCosts"])
	assert.Equal(t, "165.00", order["total"])
	assert.Equal(t, customerID, order["customerId"])

	status, _, raw := request(t, app, http.MethodGet, "/api/orders/customer", customerToken, nil)
	require.Equal(t, http.StatusOK, status)
	var orders []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "165.00", orders[0]["total"])
}

func TestReviewFlow(t *testing.T) {
	app := setupApp(t)
	ownerToken, _ := signupAndLogin(t, app, "host", models.AccountTypeRestaurant)
	customerToken, _ := signupAndLogin(t, app, "critic", models.AccountTypeCustomer)
	restaurantID := createRestaurant(t, app, ownerToken, "The Spot")

	status, review, _ := request(t, app, http.MethodPost, "/api/reviews", customerToken, map[string]interface{}{
		"restaurantId": restaurantID,
		"rating":       4,
		"content":      "Great service",
	})
	require.Equal(t, http.StatusCreated, status, "create review failed: %v", review)
	reviewID := review["id"].(string)

	// A second review of the same restaurant is rejected.
	status, _, _ = request(t, app, http.MethodPost, "/api/reviews", customerToken, map[string]interface{}{
		"restaurantId": restaurantID,
		"rating":       5,
	})
	assert.Equal(t, http.StatusConflict, status)

	// The restaurant's rating now reflects the review.
	status, restaurant, _ := request(t, app, http.MethodGet, "/api/restaurants/"+restaurantID, "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 4.0, restaurant["rating"])

	// The reviewed restaurant shows up in the customer's visited list.
	status, _, raw := request(t, app, http.MethodGet, "/api/customers/restaurants", customerToken, nil)
	require.Equal(t, http.StatusOK, status)
	var visited []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &visited))
	require.Len(t, visited, 1)
	assert.Equal(t, restaurantID, visited[0]["id"])

	// Deleting the review frees the customer to review again.
	status, _, _ = request(t, app, http.MethodDelete, "/api/reviews/"+reviewID, customerToken, nil)
	require.Equal(t, http.StatusOK, status)
	status, _, _ = request(t, app, http.MethodPost, "/api/reviews", customerToken, map[string]interface{}{
		"restaurantId": restaurantID,
		"rating":       2,
	})
	assert.Equal(t, http.StatusCreated, status)
}

func TestAddressBook(t *testing.T) {
	app := setupApp(t)
	customerToken, _ := signupAndLogin(t, app, "mover", models.AccountTypeCustomer)

	status, body, _ := request(t, app, http.MethodPost, "/api/customers/address", customerToken, map[string]string{
		"address": "7 Elm Street",
	})
	require.Equal(t, http.StatusCreated, status, "add address failed: %v", body)

	// Duplicate texts collide under the edit/delete-by-text scheme, so they
	// are rejected up front.
	status, _, _ = request(t, app, http.MethodPost, "/api/customers/address", customerToken, map[string]string{
		"address": "7 Elm Street",
	})
	assert.Equal(t, http.StatusConflict, status)

	status, _, _ = request(t, app, http.MethodPut, "/api/customers/address", customerToken, map[string]string{
		"old_address": "7 Elm Street",
		"new_address": "9 Oak Avenue",
	})
	require.Equal(t, http.StatusOK, status)

	status, _, raw := request(t, app, http.MethodGet, "/api/customers/address", customerToken, nil)
	require.Equal(t, http.StatusOK, status)
	var addresses []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &addresses))
	require.Len(t, addresses, 1)
	assert.Equal(t, "9 Oak Avenue", addresses[0]["address"])

	status, _, _ = request(t, app, http.MethodDelete, "/api/customers/address", customerToken, map[string]string{
		"address": "9 Oak Avenue",
	})
	require.Equal(t, http.StatusOK, status)

	status, _, raw = request(t, app, http.MethodGet, "/api/customers/address", customerToken, nil)
	require.Equal(t, http.StatusOK, status)
	addresses = nil
	require.NoError(t, json.Unmarshal(raw, &addresses))
	assert.Empty(t, addresses)
}

func TestMessages(t *testing.T) {
	app := setupApp(t)
	aliceToken, _ := signupAndLogin(t, app, "sender", models.AccountTypeCustomer)
	bobToken, bobID := signupAndLogin(t, app, "receiver", models.AccountTypeCustomer)

	status, message, _ := request(t, app, http.MethodPost, "/api/messages", aliceToken, map[string]string{
		"recipientId": bobID,
		"content":     "Dinner on Friday?",
	})
	require.Equal(t, http.StatusCreated, status, "send message failed: %v", message)

	status, _, raw := request(t, app, http.MethodGet, "/api/customers/messages", bobToken, nil)
	require.Equal(t, http.StatusOK, status)
	var messages []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &messages))
	require.Len(t, messages, 1)
	assert.Equal(t, "Dinner on Friday?", messages[0]["content"])

	// Unknown recipient
	status, _, _ = request(t, app, http.MethodPost, "/api/messages", aliceToken, map[string]string{
		"recipientId": "no-such-account",
		"content":     "hello?",
	})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestPhotoRoundTrip(t *testing.T) {
	app := setupApp(t)
	ownerToken, _ := signupAndLogin(t, app, "shutter", models.AccountTypeRestaurant)
	restaurantID := createRestaurant(t, app, ownerToken, "Photogenic")

	payload := "aGVsbG8gd29ybGQ=" // base64 of "hello world"
	status, photo, _ := request(t, app, http.MethodPost, "/api/restaurants/"+restaurantID+"/photos", ownerToken, map[string]string{
		"data": payload,
	})
	require.Equal(t, http.StatusCreated, status, "upload photo failed: %v", photo)
	photoID := photo["id"].(string)

	status, _, raw := request(t, app, http.MethodGet, "/api/restaurants/"+restaurantID+"/photos", "", nil)
	require.Equal(t, http.StatusOK, status)
	var photos []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &photos))
	require.Len(t, photos, 1)
	assert.Equal(t, payload, photos[0]["data"])

	status, _, _ = request(t, app, http.MethodDelete, "/api/restaurants/"+restaurantID+"/photos/"+photoID, ownerToken, nil)
	require.Equal(t, http.StatusOK, status)
}
