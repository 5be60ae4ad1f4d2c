package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Vedant491/college-fees-api/internal/models"
)

// AdminRepository manages persistence for administrator accounts.
type AdminRepository struct {
	db *sqlx.DB
}

// NewAdminRepository constructs an AdminRepository.
func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// FindByUsername fetches an admin account by username.
func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	const query = `SELECT id, username, password_hash, full_name, last_login, created_at FROM admin WHERE username = $1`
	var admin models.Admin
	if err := r.db.GetContext(ctx, &admin, query, username); err != nil {
		return nil, err
	}
	return &admin, nil
}

// UpdateLastLogin stamps the last successful authentication time.
func (r *AdminRepository) UpdateLastLogin(ctx context.Context, id string, ts time.Time) error {
	const query = `UPDATE admin SET last_login = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, ts); err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}
