package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-sql-driver/mysql"
)

// schema is applied by Migrate. Statements must be idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         BIGINT AUTO_INCREMENT PRIMARY KEY,
		email      VARCHAR(255) NOT NULL UNIQUE,
		auth_hash  VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS generation_events (
		id         BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id    BIGINT NULL,
		length     INT NOT NULL,
		amount     INT NOT NULL,
		flags      VARCHAR(255) NOT NULL,
		outcome    VARCHAR(16) NOT NULL,
		error_code VARCHAR(64) NOT NULL DEFAULT '',
		created_at TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
		INDEX idx_generation_events_user (user_id, created_at)
	)`,
}

// NewDB creates a MySQL connection pool. The DSN is parsed up front so that
// timestamps are always scanned into time.Time.
func NewDB(dsn string) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing database dsn: %w", err)
	}
	cfg.ParseTime = true

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connector: %w", err)
	}

	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

// Migrate creates the tables the API needs.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	slog.Info("database schema ready", "tables", len(schema))
	return nil
}
