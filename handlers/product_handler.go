package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"adminpanel/models"
	"adminpanel/repository"
	"adminpanel/utils/response"
)

type ProductHandler struct {
	Repo repository.ProductRepository
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := repository.ParseListQuery(r.URL.Query(), repository.ProductSchema)

	products, total, err := h.Repo.List(r.Context(), q)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch products: "+err.Error())
		return
	}

	response.List(w, products, repository.NewPagination(total, q))
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request, id string) {
	product, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch product: "+err.Error())
		return
	}
	if product == nil {
		response.Error(w, http.StatusNotFound, "Product not found")
		return
	}
	response.Success(w, http.StatusOK, "", product)
}

// Create adds a product. The category reference is not validated against the
// category collection; a bad id simply yields an empty categoryName on reads.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Price       *float64 `json:"price"`
		Image       string   `json:"image"`
		Category    string   `json:"category"`
		Status      string   `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if body.Title == "" || body.Description == "" || body.Price == nil || body.Category == "" {
		response.Error(w, http.StatusBadRequest, "Please provide all required fields")
		return
	}
	if *body.Price < 0 {
		response.Error(w, http.StatusBadRequest, "Price must be a non-negative number")
		return
	}

	status := body.Status
	if status == "" {
		status = models.StatusActive
	}

	product := &models.Product{
		Title:       body.Title,
		Description: body.Description,
		Price:       *body.Price,
		Image:       body.Image,
		CategoryID:  body.Category,
		Status:      status,
	}
	if err := h.Repo.Create(r.Context(), product); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to create product: "+err.Error())
		return
	}

	// Re-fetch so the response carries the resolved category name.
	created, err := h.Repo.GetByID(r.Context(), product.ID)
	if err != nil || created == nil {
		created = product
	}

	response.Success(w, http.StatusCreated, "", created)
}

// Update modifies the provided fields; omitted fields keep their stored value.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Price       *float64 `json:"price"`
		Image       *string  `json:"image"`
		Category    string   `json:"category"`
		Status      string   `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	product, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to update product: "+err.Error())
		return
	}
	if product == nil {
		response.Error(w, http.StatusNotFound, "Product not found")
		return
	}

	if body.Title != "" {
		product.Title = body.Title
	}
	if body.Description != "" {
		product.Description = body.Description
	}
	if body.Price != nil {
		if *body.Price < 0 {
			response.Error(w, http.StatusBadRequest, "Price must be a non-negative number")
			return
		}
		product.Price = *body.Price
	}
	if body.Image != nil {
		product.Image = *body.Image
	}
	if body.Category != "" {
		product.CategoryID = body.Category
	}
	if body.Status != "" {
		product.Status = body.Status
	}

	if err := h.Repo.Update(r.Context(), product); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Product not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to update product: "+err.Error())
		return
	}

	updated, err := h.Repo.GetByID(r.Context(), id)
	if err != nil || updated == nil {
		updated = product
	}

	response.Success(w, http.StatusOK, "", updated)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	product, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to delete product: "+err.Error())
		return
	}
	if product == nil {
		response.Error(w, http.StatusNotFound, "Product not found")
		return
	}

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Product not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to delete product: "+err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Product deleted successfully", nil)
}
