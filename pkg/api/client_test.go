package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"resto/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens struct {
	token string
}

func (s staticTokens) Token() (string, bool) {
	return s.token, s.token != ""
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := api.New(server.URL, api.WithTokenProvider(staticTokens{token: "tok-123"}))
	_, err := client.ListRestaurants(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)

	// No token, no header.
	client = api.New(server.URL, api.WithTokenProvider(staticTokens{}))
	_, err = client.ListRestaurants(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_ErrorMessagePriority(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"error field wins", `{"error":"Invalid credentials","message":"ignored"}`, "Invalid credentials"},
		{"message as fallback", `{"message":"restaurant not found"}`, "restaurant not found"},
		{"status text as last resort", `{}`, "Bad Request"},
		{"non-JSON body", `<html>oops</html>`, "Bad Request"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := api.New(server.URL)
			_, err := client.ListRestaurants(context.Background())
			var apiErr *api.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
			assert.Equal(t, tt.want, apiErr.Message)
		})
	}
}

func TestClient_AuthErrorHook(t *testing.T) {
	status := http.StatusUnauthorized
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"error":"Invalid credentials"}`))
	}))
	defer server.Close()

	client := api.New(server.URL)
	fired := 0
	client.OnAuthError(func() { fired++ })

	_, err := client.ListRestaurants(context.Background())
	assert.True(t, api.IsAuthError(err))
	assert.Equal(t, 1, fired)

	status = http.StatusForbidden
	_, err = client.ListRestaurants(context.Background())
	assert.True(t, api.IsAuthError(err))
	assert.Equal(t, 2, fired)

	// Non-auth failures leave the hook alone.
	status = http.StatusConflict
	_, err = client.ListRestaurants(context.Background())
	assert.False(t, api.IsAuthError(err))
	assert.Equal(t, 2, fired)
}

func TestClient_ConnectionErrors(t *testing.T) {
	// Transport failure: server already closed.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := api.New(server.URL)
	_, err := client.ListRestaurants(context.Background())
	assert.ErrorIs(t, err, api.ErrConnection)
	assert.False(t, api.IsAuthError(err))

	// Parse failure: 200 with a body that is not the expected shape.
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client = api.New(server.URL)
	_, err = client.ListRestaurants(context.Background())
	assert.ErrorIs(t, err, api.ErrConnection)
}

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "password123" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Invalid credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"token":"tok-1","user":{"accountId":"acc-1","username":"alice","accountType":"customer"}}`))
	}))
	defer server.Close()

	client := api.New(server.URL)
	creds, err := client.Login(context.Background(), "alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", creds.Token)
	assert.Equal(t, "acc-1", creds.User.AccountID)
	assert.False(t, creds.User.IsRestaurantOwner())

	_, err = client.Login(context.Background(), "alice", "wrong")
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestClient_FoodPriceWireFormat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		// Prices leave the client as quoted two-place decimals.
		assert.Equal(t, `"12.50"`, string(body["price"]))
		_, _ = w.Write([]byte(`{"id":"food-1","restaurantId":"rest-1","name":"Margherita","price":"12.50"}`))
	}))
	defer server.Close()

	client := api.New(server.URL)
	created, err := client.CreateFood(context.Background(), api.FoodItem{
		RestaurantID: "rest-1",
		Name:         "Margherita",
		Price:        12.5,
	})
	require.NoError(t, err)
	assert.Equal(t, api.Price(12.5), created.Price)
	assert.Equal(t, "12.50", created.Price.String())
}

func TestPrice_UnmarshalAcceptsNumbers(t *testing.T) {
	var food api.FoodItem
	require.NoError(t, json.Unmarshal([]byte(`{"price":7.25}`), &food))
	assert.Equal(t, api.Price(7.25), food.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"price":"7.25"}`), &food))
	assert.Equal(t, api.Price(7.25), food.Price)

	assert.Error(t, json.Unmarshal([]byte(`{"price":"seven"}`), &food))
}
