package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"adminpanel/auth"
	"adminpanel/models"
	"adminpanel/repository"
	"adminpanel/utils/response"

	"golang.org/x/crypto/bcrypt"
)

type UserHandler struct {
	Repo repository.UserRepository
}

// List returns users matching the search/filter/sort/page parameters.
// Passwords are never serialized.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	q := repository.ParseListQuery(r.URL.Query(), repository.UserSchema)

	users, total, err := h.Repo.List(r.Context(), q)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch users: "+err.Error())
		return
	}

	response.List(w, users, repository.NewPagination(total, q))
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request, id string) {
	user, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch user: "+err.Error())
		return
	}
	if user == nil {
		response.Error(w, http.StatusNotFound, "User not found")
		return
	}
	response.Success(w, http.StatusOK, "", user)
}

// Create adds a user. Unlike registration the role comes from the payload,
// defaulting to "user". The email uniqueness check here is check-then-act;
// the Postgres backend additionally enforces it with a unique index.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if body.Name == "" || body.Email == "" || body.Password == "" {
		response.Error(w, http.StatusBadRequest, "Please provide all required fields")
		return
	}

	existing, err := h.Repo.GetByEmail(r.Context(), body.Email)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to create user: "+err.Error())
		return
	}
	if existing != nil {
		response.Error(w, http.StatusBadRequest, "User already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to create user: "+err.Error())
		return
	}

	role := body.Role
	if role == "" {
		role = models.RoleUser
	}

	user := &models.AppUser{
		Name:     body.Name,
		Email:    body.Email,
		Password: string(hashed),
		Role:     role,
	}
	if err := h.Repo.Create(r.Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			response.Error(w, http.StatusBadRequest, "User already exists")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to create user: "+err.Error())
		return
	}

	response.Success(w, http.StatusCreated, "", user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if body.Name == "" || body.Email == "" {
		response.Error(w, http.StatusBadRequest, "Please provide name and email")
		return
	}

	user, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to update user: "+err.Error())
		return
	}
	if user == nil {
		response.Error(w, http.StatusNotFound, "User not found")
		return
	}

	if body.Email != user.Email {
		existing, err := h.Repo.GetByEmail(r.Context(), body.Email)
		if err != nil {
			response.Error(w, http.StatusInternalServerError, "Failed to update user: "+err.Error())
			return
		}
		if existing != nil {
			response.Error(w, http.StatusBadRequest, "Email already taken")
			return
		}
	}

	user.Name = body.Name
	user.Email = body.Email
	user.Role = body.Role
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if body.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			response.Error(w, http.StatusInternalServerError, "Failed to update user: "+err.Error())
			return
		}
		user.Password = string(hashed)
	}

	if err := h.Repo.Update(r.Context(), user); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.Error(w, http.StatusNotFound, "User not found")
		case errors.Is(err, repository.ErrDuplicate):
			response.Error(w, http.StatusBadRequest, "Email already taken")
		default:
			response.Error(w, http.StatusInternalServerError, "Failed to update user: "+err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "", user)
}

// Delete removes a user. Admins cannot delete their own account.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	user, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to delete user: "+err.Error())
		return
	}
	if user == nil {
		response.Error(w, http.StatusNotFound, "User not found")
		return
	}

	if claims := auth.FromContext(r.Context()); claims != nil && claims.UserID == id {
		response.Error(w, http.StatusBadRequest, "Cannot delete your own account")
		return
	}

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "User not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to delete user: "+err.Error())
		return
	}

	response.Success(w, http.StatusOK, "User deleted successfully", nil)
}
