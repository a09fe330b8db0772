package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chemical081/nepali-star-buzz-pulse/src/models"
	"github.com/chemical081/nepali-star-buzz-pulse/src/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AdminRepository is the PostgreSQL implementation of repositories.AdminRepository
type AdminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

const adminColumns = `id, username, email, password_hash, role, permissions, created_at, last_login, is_active, created_by`

func scanAdmin(row pgx.Row) (*models.AdminUser, error) {
	admin := &models.AdminUser{}
	var permissions []byte
	err := row.Scan(
		&admin.ID, &admin.Username, &admin.Email, &admin.PasswordHash,
		&admin.Role, &permissions, &admin.CreatedAt, &admin.LastLogin,
		&admin.IsActive, &admin.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	if len(permissions) > 0 {
		if err := json.Unmarshal(permissions, &admin.Permissions); err != nil {
			return nil, fmt.Errorf("failed to decode permission snapshot: %w", err)
		}
	}
	return admin, nil
}

func marshalPermissions(snapshot []string) ([]byte, error) {
	if snapshot == nil {
		snapshot = []string{}
	}
	return json.Marshal(snapshot)
}

// Create inserts a new admin user
func (r *AdminRepository) Create(ctx context.Context, admin *models.AdminUser) error {
	permissions, err := marshalPermissions(admin.Permissions)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO admin_users (id, username, email, password_hash, role, permissions, created_at, is_active, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = r.pool.Exec(ctx, query,
		admin.ID, admin.Username, admin.Email, admin.PasswordHash,
		admin.Role, permissions, admin.CreatedAt, admin.IsActive, admin.CreatedBy,
	)
	return mapError(err)
}

// GetByID retrieves an admin user by id
func (r *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AdminUser, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_users WHERE id = $1`
	admin, err := scanAdmin(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return admin, nil
}

// GetActiveByUsername retrieves an active admin user by username.
// Inactive identities are treated as not found.
func (r *AdminRepository) GetActiveByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_users WHERE username = $1 AND is_active = true`
	admin, err := scanAdmin(r.pool.QueryRow(ctx, query, username))
	if err != nil {
		return nil, mapError(err)
	}
	return admin, nil
}

// List returns all admin users, newest first
func (r *AdminRepository) List(ctx context.Context) ([]*models.AdminUser, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_users ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var admins []*models.AdminUser
	for rows.Next() {
		admin, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		admins = append(admins, admin)
	}
	return admins, rows.Err()
}

// Update persists role, contact, activation, and permission snapshot changes
func (r *AdminRepository) Update(ctx context.Context, admin *models.AdminUser) error {
	permissions, err := marshalPermissions(admin.Permissions)
	if err != nil {
		return err
	}

	query := `
		UPDATE admin_users
		SET username = $1, email = $2, role = $3, permissions = $4, is_active = $5
		WHERE id = $6
	`
	result, err := r.pool.Exec(ctx, query,
		admin.Username, admin.Email, admin.Role, permissions, admin.IsActive, admin.ID,
	)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows)
	}
	return nil
}

// Delete hard-deletes an admin user
func (r *AdminRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM admin_users WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows)
	}
	return nil
}

// UpdateLastLogin records a successful authentication time
func (r *AdminRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.pool.Exec(ctx, `UPDATE admin_users SET last_login = $1 WHERE id = $2`, at, id)
	return mapError(err)
}

// Count returns the total number of admin users
func (r *AdminRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM admin_users`).Scan(&count)
	if err != nil {
		return 0, mapError(err)
	}
	return count, nil
}

// Ensure AdminRepository implements the interface
var _ repositories.AdminRepository = (*AdminRepository)(nil)
