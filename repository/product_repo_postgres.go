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

type PostgresProductRepo struct {
	DB *sql.DB
}

func NewPostgresProductRepo(db *sql.DB) *PostgresProductRepo {
	return &PostgresProductRepo{DB: db}
}

func (r *PostgresProductRepo) List(ctx context.Context, q ListQuery) ([]*models.Product, int64, error) {
	where, args := SQLWhere(ProductSchema, q, 1)
	cond := ""
	if where != "" {
		cond = " WHERE " + where
	}

	var total int64
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM product"+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, title, description, price, COALESCE(image, ''), COALESCE(category_id, ''), status, created_at
		FROM product%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, cond, SQLOrder(ProductSchema, q), len(args)+1, len(args)+2)

	rows, err := r.DB.QueryContext(ctx, query, append(args, q.Limit, q.Skip())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []*models.Product{}
	for rows.Next() {
		p := &models.Product{}
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Image, &p.CategoryID, &p.Status, &p.CreatedAt); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for _, p := range products {
		r.populateCategory(ctx, p)
	}
	return products, total, nil
}

func (r *PostgresProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	product := &models.Product{}
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, title, description, price, COALESCE(image, ''), COALESCE(category_id, ''), status, created_at
		FROM product
		WHERE id = $1
	`, id).Scan(&product.ID, &product.Title, &product.Description, &product.Price,
		&product.Image, &product.CategoryID, &product.Status, &product.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	r.populateCategory(ctx, product)
	return product, nil
}

// populateCategory resolves the referenced category's name; a dangling
// reference leaves it empty.
func (r *PostgresProductRepo) populateCategory(ctx context.Context, p *models.Product) {
	if p.CategoryID == "" {
		return
	}
	var name string
	err := r.DB.QueryRowContext(ctx, `SELECT name FROM category WHERE id = $1`, p.CategoryID).Scan(&name)
	if err == nil {
		p.CategoryName = name
	}
}

func (r *PostgresProductRepo) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now().UTC()
	}

	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO product (id, title, description, price, image, category_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, product.ID, product.Title, product.Description, product.Price,
		product.Image, product.CategoryID, product.Status, product.CreatedAt)

	return err
}

func (r *PostgresProductRepo) Update(ctx context.Context, product *models.Product) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE product
		SET title = $2, description = $3, price = $4, image = $5, category_id = $6, status = $7
		WHERE id = $1
	`, product.ID, product.Title, product.Description, product.Price,
		product.Image, product.CategoryID, product.Status)

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

func (r *PostgresProductRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM product WHERE id = $1`, id)
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
