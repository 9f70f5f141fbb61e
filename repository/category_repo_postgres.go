package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"adminpanel/models"

	"github.com/google/uuid"
)

type PostgresCategoryRepo struct {
	DB *sql.DB
}

func NewPostgresCategoryRepo(db *sql.DB) *PostgresCategoryRepo {
	return &PostgresCategoryRepo{DB: db}
}

func (r *PostgresCategoryRepo) List(ctx context.Context, q ListQuery) ([]*models.Category, int64, error) {
	where, args := SQLWhere(CategorySchema, q, 1)
	cond := ""
	if where != "" {
		cond = " WHERE " + where
	}

	var total int64
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM category"+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, name, status, created_at
		FROM category%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, cond, SQLOrder(CategorySchema, q), len(args)+1, len(args)+2)

	rows, err := r.DB.QueryContext(ctx, query, append(args, q.Limit, q.Skip())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	categories := []*models.Category{}
	for rows.Next() {
		c := &models.Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Status, &c.CreatedAt); err != nil {
			return nil, 0, err
		}
		categories = append(categories, c)
	}
	return categories, total, rows.Err()
}

func (r *PostgresCategoryRepo) Active(ctx context.Context) ([]*models.CategoryOption, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name
		FROM category
		WHERE status = $1
		ORDER BY name ASC
	`, models.StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*models.CategoryOption{}
	for rows.Next() {
		c := &models.CategoryOption{}
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresCategoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	return r.getOne(ctx, "id", id)
}

func (r *PostgresCategoryRepo) GetByName(ctx context.Context, name string) (*models.Category, error) {
	return r.getOne(ctx, "name", name)
}

func (r *PostgresCategoryRepo) getOne(ctx context.Context, column, value string) (*models.Category, error) {
	category := &models.Category{}
	err := r.DB.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT id, name, status, created_at
		FROM category
		WHERE %s = $1
	`, column), value).Scan(&category.ID, &category.Name, &category.Status, &category.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return category, nil
}

func (r *PostgresCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now().UTC()
	}

	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO category (id, name, status, created_at)
		VALUES ($1, $2, $3, $4)
	`, category.ID, category.Name, category.Status, category.CreatedAt)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *PostgresCategoryRepo) Update(ctx context.Context, category *models.Category) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE category
		SET name = $2, status = $3
		WHERE id = $1
	`, category.ID, category.Name, category.Status)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresCategoryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM category WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
