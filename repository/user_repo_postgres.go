package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"adminpanel/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PostgresUserRepo struct {
	DB *sql.DB
}

func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{DB: db}
}

// isUniqueViolation reports whether err is a Postgres unique-index violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *PostgresUserRepo) List(ctx context.Context, q ListQuery) ([]*models.AppUser, int64, error) {
	where, args := SQLWhere(UserSchema, q, 1)
	cond := ""
	if where != "" {
		cond = " WHERE " + where
	}

	var total int64
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM app_user"+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, name, email, password, role, created_at
		FROM app_user%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, cond, SQLOrder(UserSchema, q), len(args)+1, len(args)+2)

	rows, err := r.DB.QueryContext(ctx, query, append(args, q.Limit, q.Skip())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := []*models.AppUser{}
	for rows.Next() {
		u := &models.AppUser{}
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.CreatedAt); err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

func (r *PostgresUserRepo) GetByID(ctx context.Context, id string) (*models.AppUser, error) {
	return r.getOne(ctx, "id", id)
}

func (r *PostgresUserRepo) GetByEmail(ctx context.Context, email string) (*models.AppUser, error) {
	return r.getOne(ctx, "email", email)
}

func (r *PostgresUserRepo) getOne(ctx context.Context, column, value string) (*models.AppUser, error) {
	user := &models.AppUser{}
	err := r.DB.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT id, name, email, password, role, created_at
		FROM app_user
		WHERE %s = $1
	`, column), value).Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *PostgresUserRepo) Create(ctx context.Context, user *models.AppUser) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO app_user (id, name, email, password, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, user.ID, user.Name, user.Email, user.Password, user.Role, user.CreatedAt)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *PostgresUserRepo) Update(ctx context.Context, user *models.AppUser) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE app_user
		SET name = $2, email = $3, password = $4, role = $5
		WHERE id = $1
	`, user.ID, user.Name, user.Email, user.Password, user.Role)

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

func (r *PostgresUserRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM app_user WHERE id = $1`, id)
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
