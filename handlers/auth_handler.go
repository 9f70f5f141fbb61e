package handlers

import (
	"encoding/json"
	"net/http"

	"adminpanel/auth"
	"adminpanel/models"
	"adminpanel/repository"
	"adminpanel/utils/response"

	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	Repo   repository.UserRepository
	Secret string
}

type authResult struct {
	Token string          `json:"token"`
	User  *models.AppUser `json:"user"`
}

// Register creates an admin account and returns a signed token.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if body.Name == "" || body.Email == "" || body.Password == "" {
		response.Error(w, http.StatusBadRequest, "Please provide name, email and password")
		return
	}

	existing, err := h.Repo.GetByEmail(r.Context(), body.Email)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to create user: "+err.Error())
		return
	}
	if existing != nil {
		response.Error(w, http.StatusBadRequest, "User already exists with this email")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to create user: "+err.Error())
		return
	}

	// Registration is only reachable from the admin panel itself.
	user := &models.AppUser{
		Name:     body.Name,
		Email:    body.Email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if err := h.Repo.Create(r.Context(), user); err != nil {
		if err == repository.ErrDuplicate {
			response.Error(w, http.StatusBadRequest, "User already exists with this email")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to create user: "+err.Error())
		return
	}

	token, err := auth.IssueToken(h.Secret, user.ID, user.Role)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to sign token: "+err.Error())
		return
	}

	response.Success(w, http.StatusCreated, "", &authResult{Token: token, User: user})
}

// Login verifies credentials and returns a signed token. The same message is
// used for an unknown email and a wrong password.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if creds.Email == "" || creds.Password == "" {
		response.Error(w, http.StatusBadRequest, "Please provide email and password")
		return
	}

	user, err := h.Repo.GetByEmail(r.Context(), creds.Email)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Login failed: "+err.Error())
		return
	}
	if user == nil {
		response.Error(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := auth.IssueToken(h.Secret, user.ID, user.Role)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to sign token: "+err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Login successful", &authResult{Token: token, User: user})
}

// Logout is a stateless acknowledgment: the client discards its token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Logged out successfully", nil)
}
