package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Database holds the PostgreSQL connection pool
type Database struct {
	pool *pgxpool.Pool
}

// New creates a new database connection and bootstraps the schema
func New(ctx context.Context, databaseURL string) (*Database, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = 25
	config.MinConns = 5
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	db := &Database{pool: pool}

	if err := db.initializeSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// NewFromPool wraps an existing pool without running schema bootstrap (tests)
func NewFromPool(pool *pgxpool.Pool) *Database {
	return &Database{pool: pool}
}

// Close closes the database connection pool
func (db *Database) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// GetPool returns the connection pool
func (db *Database) GetPool() *pgxpool.Pool {
	return db.pool
}

// initializeSchema reads and executes schema.sql, then runs migrations
func (db *Database) initializeSchema(ctx context.Context) error {
	schemaPath := "schema.sql"

	content, err := os.ReadFile(schemaPath)
	if err != nil {
		content, err = os.ReadFile(filepath.Join(".", schemaPath))
		if err != nil {
			return fmt.Errorf("failed to read schema.sql: %w", err)
		}
	}

	if _, err := db.pool.Exec(ctx, string(content)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	if err := db.runMigrations(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info().Msg("database schema initialized")
	return nil
}

// runMigrations applies incremental changes to databases created by older
// releases. Every statement must stay idempotent.
func (db *Database) runMigrations(ctx context.Context) error {
	// Migration 1: add permission snapshot column to pre-RBAC installs
	if _, err := db.pool.Exec(ctx, `
		ALTER TABLE admin_users
		ADD COLUMN IF NOT EXISTS permissions JSONB NOT NULL DEFAULT '[]';
	`); err != nil {
		return fmt.Errorf("failed to add permissions column: %w", err)
	}

	// Migration 2: ensure role and is_active are set on legacy rows
	result, err := db.pool.Exec(ctx, `
		UPDATE admin_users
		SET
			role = COALESCE(NULLIF(role, ''), 'editor'),
			is_active = COALESCE(is_active, true)
		WHERE role IS NULL OR role = '' OR is_active IS NULL
	`)
	if err != nil {
		log.Warn().Err(err).Msg("migration: failed to backfill admin_users")
	} else if result.RowsAffected() > 0 {
		log.Info().Int64("rows", result.RowsAffected()).Msg("migration: backfilled admin_users")
	}

	// Migration 3: counters on posts created before engagement tracking
	if _, err := db.pool.Exec(ctx, `
		ALTER TABLE posts
		ADD COLUMN IF NOT EXISTS likes INTEGER NOT NULL DEFAULT 0,
		ADD COLUMN IF NOT EXISTS comments INTEGER NOT NULL DEFAULT 0;
	`); err != nil {
		return fmt.Errorf("failed to add post counters: %w", err)
	}

	log.Info().Msg("migrations completed")
	return nil
}

// Health checks if the database is healthy
func (db *Database) Health(ctx context.Context) error {
	if db == nil || db.pool == nil {
		return fmt.Errorf("database connection not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return db.pool.Ping(ctx)
}

// QueryRow executes a query and returns a single row
func (db *Database) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	return db.pool.QueryRow(ctx, sql, args...)
}

// Query executes a query and returns rows
func (db *Database) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return db.pool.Query(ctx, sql, args...)
}

// Exec executes a query without returning rows
func (db *Database) Exec(ctx context.Context, sql string, args ...interface{}) error {
	_, err := db.pool.Exec(ctx, sql, args...)
	return err
}
