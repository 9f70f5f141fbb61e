package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"adminpanel/models"
	"adminpanel/repository"
)

// In-memory repositories for handler tests. List honors the same search,
// filter, sort and paging semantics as the real backends.

func matchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func paginate[T any](items []T, q repository.ListQuery) ([]T, int64) {
	total := int64(len(items))
	start := int(q.Skip())
	if start >= len(items) {
		return []T{}, total
	}
	end := start + q.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total
}

type fakeUserRepo struct {
	users []*models.AppUser
	seq   int
}

func (r *fakeUserRepo) List(_ context.Context, q repository.ListQuery) ([]*models.AppUser, int64, error) {
	var out []*models.AppUser
	for _, u := range r.users {
		if !matchesSearch(q.Search, u.Name, u.Email) {
			continue
		}
		if role, ok := q.Filters["role"]; ok && u.Role != role {
			continue
		}
		out = append(out, u)
	}
	sort.SliceStable(out, func(i, j int) bool {
		switch q.Sort {
		case "oldest":
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		case "name-asc":
			return out[i].Name < out[j].Name
		case "name-desc":
			return out[i].Name > out[j].Name
		default:
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
	})
	page, total := paginate(out, q)
	return page, total, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.AppUser, error) {
	for _, u := range r.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.AppUser, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.AppUser) error {
	r.seq++
	user.ID = fmt.Sprintf("user-%d", r.seq)
	user.CreatedAt = time.Now()
	copied := *user
	r.users = append(r.users, &copied)
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.AppUser) error {
	for i, u := range r.users {
		if u.ID == user.ID {
			copied := *user
			r.users[i] = &copied
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeCategoryRepo struct {
	categories []*models.Category
	seq        int
}

func (r *fakeCategoryRepo) List(_ context.Context, q repository.ListQuery) ([]*models.Category, int64, error) {
	var out []*models.Category
	for _, c := range r.categories {
		if !matchesSearch(q.Search, c.Name) {
			continue
		}
		if status, ok := q.Filters["status"]; ok && c.Status != status {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		switch q.Sort {
		case "oldest":
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		case "name-asc":
			return out[i].Name < out[j].Name
		case "name-desc":
			return out[i].Name > out[j].Name
		default:
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
	})
	page, total := paginate(out, q)
	return page, total, nil
}

func (r *fakeCategoryRepo) Active(_ context.Context) ([]*models.CategoryOption, error) {
	var out []*models.CategoryOption
	for _, c := range r.categories {
		if c.Status == models.StatusActive {
			out = append(out, &models.CategoryOption{ID: c.ID, Name: c.Name})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*models.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) GetByName(_ context.Context, name string) (*models.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *models.Category) error {
	r.seq++
	category.ID = fmt.Sprintf("cat-%d", r.seq)
	category.CreatedAt = time.Now()
	copied := *category
	r.categories = append(r.categories, &copied)
	return nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *models.Category) error {
	for i, c := range r.categories {
		if c.ID == category.ID {
			copied := *category
			r.categories[i] = &copied
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeProductRepo struct {
	products      []*models.Product
	categoryNames map[string]string
	seq           int
}

func (r *fakeProductRepo) resolve(p *models.Product) *models.Product {
	copied := *p
	copied.CategoryName = r.categoryNames[p.CategoryID]
	return &copied
}

func (r *fakeProductRepo) List(_ context.Context, q repository.ListQuery) ([]*models.Product, int64, error) {
	var out []*models.Product
	for _, p := range r.products {
		if !matchesSearch(q.Search, p.Title, p.Description) {
			continue
		}
		if status, ok := q.Filters["status"]; ok && p.Status != status {
			continue
		}
		if category, ok := q.Filters["category"]; ok && p.CategoryID != category {
			continue
		}
		out = append(out, r.resolve(p))
	}
	sort.SliceStable(out, func(i, j int) bool {
		switch q.Sort {
		case "oldest":
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		case "name-asc":
			return out[i].Title < out[j].Title
		case "name-desc":
			return out[i].Title > out[j].Title
		case "price-low":
			return out[i].Price < out[j].Price
		case "price-high":
			return out[i].Price > out[j].Price
		default:
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
	})
	page, total := paginate(out, q)
	return page, total, nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return r.resolve(p), nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Create(_ context.Context, product *models.Product) error {
	r.seq++
	product.ID = fmt.Sprintf("prod-%d", r.seq)
	product.CreatedAt = time.Now()
	copied := *product
	copied.CategoryName = ""
	r.products = append(r.products, &copied)
	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *models.Product) error {
	for i, p := range r.products {
		if p.ID == product.ID {
			copied := *product
			copied.CategoryName = ""
			r.products[i] = &copied
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// envelope mirrors the response shape for decoding in tests.
type envelope struct {
	Success    bool                   `json:"success"`
	Message    string                 `json:"message"`
	Data       json.RawMessage        `json:"data"`
	Pagination *repository.Pagination `json:"pagination"`
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}
