package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminpanel/auth"
	"adminpanel/models"
)

const testSecret = "handler-test-secret"

func newAuthHandler() (*AuthHandler, *fakeUserRepo) {
	repo := &fakeUserRepo{}
	return &AuthHandler{Repo: repo, Secret: testSecret}, repo
}

func TestRegister(t *testing.T) {
	h, repo := newAuthHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", jsonBody(t, map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "secret123",
	}))
	h.Register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	var result struct {
		Token string          `json:"token"`
		User  *models.AppUser `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "alice@example.com", result.User.Email)
	// Registration always creates admins.
	assert.Equal(t, models.RoleAdmin, result.User.Role)

	// The token must carry the stored user's identity.
	claims, err := auth.ParseToken(testSecret, result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)

	// The stored password is a bcrypt hash, not the plaintext.
	require.Len(t, repo.users, 1)
	assert.NotEqual(t, "secret123", repo.users[0].Password)
	assert.NotEmpty(t, repo.users[0].Password)
}

func TestRegisterPasswordNotSerialized(t *testing.T) {
	h, _ := newAuthHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", jsonBody(t, map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "secret123",
	}))
	h.Register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret123")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRegisterMissingFields(t *testing.T) {
	h, _ := newAuthHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", jsonBody(t, map[string]string{
		"email": "alice@example.com",
	}))
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please provide name, email and password", decodeEnvelope(t, rec).Message)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	h, _ := newAuthHandler()

	body := map[string]string{"name": "Alice", "email": "alice@example.com", "password": "secret123"}
	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", jsonBody(t, body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", jsonBody(t, body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User already exists with this email", decodeEnvelope(t, rec).Message)
}

func registerUser(t *testing.T, h *AuthHandler, email, password string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", jsonBody(t, map[string]string{
		"name":     "Alice",
		"email":    email,
		"password": password,
	})))
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestLogin(t *testing.T) {
	h, _ := newAuthHandler()
	registerUser(t, h, "alice@example.com", "secret123")

	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", jsonBody(t, map[string]string{
		"email":    "alice@example.com",
		"password": "secret123",
	})))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Login successful", env.Message)

	var result struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	_, err := auth.ParseToken(testSecret, result.Token)
	assert.NoError(t, err)
}

func TestLoginInvalidCredentials(t *testing.T) {
	h, _ := newAuthHandler()
	registerUser(t, h, "alice@example.com", "secret123")

	// Unknown email and wrong password produce the identical message.
	tests := []map[string]string{
		{"email": "nobody@example.com", "password": "secret123"},
		{"email": "alice@example.com", "password": "wrong"},
	}
	for _, creds := range tests {
		rec := httptest.NewRecorder()
		h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", jsonBody(t, creds)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid credentials", decodeEnvelope(t, rec).Message)
	}
}

func TestLoginMissingFields(t *testing.T) {
	h, _ := newAuthHandler()

	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", jsonBody(t, map[string]string{})))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please provide email and password", decodeEnvelope(t, rec).Message)
}

func TestLogout(t *testing.T) {
	h, _ := newAuthHandler()

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logged out successfully", decodeEnvelope(t, rec).Message)
}
