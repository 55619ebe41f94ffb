package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"resto/pkg/api"
	"resto/pkg/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthAPI is a canned-response stand-in for *api.Client.
type fakeAuthAPI struct {
	loginErr   error
	signupErr  error
	loginCalls int
	creds      api.Credentials
}

func (f *fakeAuthAPI) Login(_ context.Context, username, password string) (*api.Credentials, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	creds := f.creds
	return &creds, nil
}

func (f *fakeAuthAPI) Signup(_ context.Context, _ api.SignupRequest) error {
	return f.signupErr
}

func validCreds() api.Credentials {
	return api.Credentials{
		Token: "tok-abc",
		User: api.User{
			AccountID:   "acc-1",
			Username:    "alice",
			AccountType: "customer",
		},
	}
}

func TestStore_LoginSuccess(t *testing.T) {
	backend := &fakeAuthAPI{creds: validCreds()}
	storage := session.NewMemoryStorage()
	store := session.New(backend, storage)

	assert.Equal(t, session.StateUnknown, store.State())
	require.NoError(t, store.Login(context.Background(), "alice", "password123"))

	assert.Equal(t, session.StateAuthenticated, store.State())
	user := store.Current()
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)

	token, ok := store.Token()
	assert.True(t, ok)
	assert.Equal(t, "tok-abc", token)

	// Both entries are persisted.
	raw, ok, err := storage.GetItem("user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, raw, `"alice"`)
	tokenRaw, ok, err := storage.GetItem("authToken")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-abc", tokenRaw)
}

func TestStore_LoginFailure(t *testing.T) {
	backend := &fakeAuthAPI{loginErr: &api.Error{StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"}}
	storage := session.NewMemoryStorage()
	// Leftover state from an earlier session must not survive a failed login.
	require.NoError(t, storage.SetItem("authToken", "stale"))

	store := session.New(backend, storage)
	err := store.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.True(t, api.IsAuthError(err))

	assert.Equal(t, session.StateAnonymous, store.State())
	assert.Nil(t, store.Current())
	_, ok := store.Token()
	assert.False(t, ok)
	_, ok, _ = storage.GetItem("authToken")
	assert.False(t, ok)
}

func TestStore_LoginMissingToken(t *testing.T) {
	backend := &fakeAuthAPI{creds: api.Credentials{User: api.User{AccountID: "acc-1"}}}
	store := session.New(backend, session.NewMemoryStorage())

	err := store.Login(context.Background(), "alice", "password123")
	assert.ErrorIs(t, err, api.ErrConnection)
	assert.Equal(t, session.StateAnonymous, store.State())
}

func TestStore_RestoreFromStorage(t *testing.T) {
	backend := &fakeAuthAPI{creds: validCreds()}
	storage := session.NewMemoryStorage()

	first := session.New(backend, storage)
	require.NoError(t, first.Login(context.Background(), "alice", "password123"))

	// A second store over the same storage hydrates without a network call.
	second := session.New(backend, storage)
	require.NoError(t, second.Restore())
	assert.Equal(t, 1, backend.loginCalls)
	assert.Equal(t, session.StateAuthenticated, second.State())
	user := second.Current()
	require.NotNil(t, user)
	assert.Equal(t, "acc-1", user.AccountID)
	token, ok := second.Token()
	assert.True(t, ok)
	assert.Equal(t, "tok-abc", token)
}

func TestStore_RestoreEmptyStorage(t *testing.T) {
	store := session.New(&fakeAuthAPI{}, session.NewMemoryStorage())
	require.NoError(t, store.Restore())
	assert.Equal(t, session.StateAnonymous, store.State())
	assert.Nil(t, store.Current())
}

func TestStore_RestoreCorruptUserRecord(t *testing.T) {
	storage := session.NewMemoryStorage()
	require.NoError(t, storage.SetItem("user", "{not json"))
	require.NoError(t, storage.SetItem("authToken", "tok-abc"))

	store := session.New(&fakeAuthAPI{}, storage)
	require.NoError(t, store.Restore())
	assert.Equal(t, session.StateAnonymous, store.State())

	// The corrupt entries are gone.
	_, ok, _ := storage.GetItem("user")
	assert.False(t, ok)
	_, ok, _ = storage.GetItem("authToken")
	assert.False(t, ok)
}

func TestStore_Logout(t *testing.T) {
	backend := &fakeAuthAPI{creds: validCreds()}
	storage := session.NewMemoryStorage()
	store := session.New(backend, storage)
	require.NoError(t, store.Login(context.Background(), "alice", "password123"))

	store.Logout()
	assert.Equal(t, session.StateAnonymous, store.State())
	assert.Nil(t, store.Current())

	// A later restart stays anonymous.
	restarted := session.New(backend, storage)
	require.NoError(t, restarted.Restore())
	assert.Equal(t, session.StateAnonymous, restarted.State())

	// Logging out twice is harmless.
	store.Logout()
	assert.Equal(t, session.StateAnonymous, store.State())
}

func TestStore_Invalidate(t *testing.T) {
	backend := &fakeAuthAPI{creds: validCreds()}
	storage := session.NewMemoryStorage()
	store := session.New(backend, storage)
	require.NoError(t, store.Login(context.Background(), "alice", "password123"))

	store.Invalidate()
	assert.Equal(t, session.StateAnonymous, store.State())
	_, ok, _ := storage.GetItem("authToken")
	assert.False(t, ok)

	// Invalidate on an anonymous session is a no-op.
	store.Invalidate()
	assert.Equal(t, session.StateAnonymous, store.State())
}

func TestStore_InvalidateOnBackendRejection(t *testing.T) {
	// Full loop: the API client reports a 401 through its auth-error hook and
	// the store drops the session.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid or expired token"}`))
	}))
	defer server.Close()

	storage := session.NewMemoryStorage()
	require.NoError(t, storage.SetItem("user", `{"accountId":"acc-1","username":"alice","accountType":"customer"}`))
	require.NoError(t, storage.SetItem("authToken", "stale-token"))

	store := session.New(&fakeAuthAPI{}, storage)
	require.NoError(t, store.Restore())
	require.Equal(t, session.StateAuthenticated, store.State())

	client := api.New(server.URL, api.WithTokenProvider(store))
	client.OnAuthError(store.Invalidate)

	_, err := client.ListRestaurants(context.Background())
	require.True(t, api.IsAuthError(err))

	assert.Equal(t, session.StateAnonymous, store.State())
	_, ok, _ := storage.GetItem("authToken")
	assert.False(t, ok)
}

func TestFileStorage_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session.json")
	storage, err := session.NewFileStorage(path)
	require.NoError(t, err)

	_, ok, err := storage.GetItem("authToken")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, storage.SetItem("authToken", "tok-abc"))
	require.NoError(t, storage.SetItem("user", `{"username":"alice"}`))

	// A fresh handle over the same file sees the data.
	reopened, err := session.NewFileStorage(path)
	require.NoError(t, err)
	value, ok, err := reopened.GetItem("authToken")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-abc", value)

	require.NoError(t, reopened.RemoveItem("authToken"))
	_, ok, err = reopened.GetItem("authToken")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing a missing key is fine.
	require.NoError(t, reopened.RemoveItem("authToken"))
}

func TestFileStorage_SessionPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	storage, err := session.NewFileStorage(path)
	require.NoError(t, err)

	backend := &fakeAuthAPI{creds: validCreds()}
	store := session.New(backend, storage)
	require.NoError(t, store.Login(context.Background(), "alice", "password123"))

	// Simulated restart: new storage handle, new store.
	reopened, err := session.NewFileStorage(path)
	require.NoError(t, err)
	restarted := session.New(backend, reopened)
	require.NoError(t, restarted.Restore())
	assert.Equal(t, session.StateAuthenticated, restarted.State())
	user := restarted.Current()
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
}
