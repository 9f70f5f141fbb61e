package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"adminpanel/models"
	"adminpanel/repository"
	"adminpanel/utils/response"
)

type CategoryHandler struct {
	Repo repository.CategoryRepository
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := repository.ParseListQuery(r.URL.Query(), repository.CategorySchema)

	categories, total, err := h.Repo.List(r.Context(), q)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch categories: "+err.Error())
		return
	}

	response.List(w, categories, repository.NewPagination(total, q))
}

// Dropdown returns id and name of active categories, sorted by name.
func (h *CategoryHandler) Dropdown(w http.ResponseWriter, r *http.Request) {
	options, err := h.Repo.Active(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch categories: "+err.Error())
		return
	}
	response.Success(w, http.StatusOK, "", options)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request, id string) {
	category, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch category: "+err.Error())
		return
	}
	if category == nil {
		response.Error(w, http.StatusNotFound, "Category not found")
		return
	}
	response.Success(w, http.StatusOK, "", category)
}

// Create adds a category. The name uniqueness check is check-then-act; the
// Postgres backend additionally enforces it with a unique index.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if body.Name == "" {
		response.Error(w, http.StatusBadRequest, "Please provide category name")
		return
	}

	existing, err := h.Repo.GetByName(r.Context(), body.Name)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to create category: "+err.Error())
		return
	}
	if existing != nil {
		response.Error(w, http.StatusBadRequest, "Category already exists")
		return
	}

	status := body.Status
	if status == "" {
		status = models.StatusActive
	}

	category := &models.Category{Name: body.Name, Status: status}
	if err := h.Repo.Create(r.Context(), category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			response.Error(w, http.StatusBadRequest, "Category already exists")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to create category: "+err.Error())
		return
	}

	response.Success(w, http.StatusCreated, "", category)
}

// Update modifies the provided fields; empty fields keep their stored value.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	category, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to update category: "+err.Error())
		return
	}
	if category == nil {
		response.Error(w, http.StatusNotFound, "Category not found")
		return
	}

	if body.Name != "" {
		category.Name = body.Name
	}
	if body.Status != "" {
		category.Status = body.Status
	}

	if err := h.Repo.Update(r.Context(), category); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.Error(w, http.StatusNotFound, "Category not found")
		case errors.Is(err, repository.ErrDuplicate):
			response.Error(w, http.StatusBadRequest, "Category already exists")
		default:
			response.Error(w, http.StatusInternalServerError, "Failed to update category: "+err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "", category)
}

// Delete removes a category. Products referencing it are left untouched and
// keep a dangling reference.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	category, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to delete category: "+err.Error())
		return
	}
	if category == nil {
		response.Error(w, http.StatusNotFound, "Category not found")
		return
	}

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Category not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to delete category: "+err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Category deleted successfully", nil)
}
