package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// MySQLKV implements KV using MySQL. Intended for deployments where
// several kiosks share one database; the access contract is identical to
// SQLite (last write wins, no transactions across keys).
type MySQLKV struct {
	db *sql.DB
}

// NewMySQLKV creates a new MySQL key-value store on an open connection.
func NewMySQLKV(db *sql.DB) (*MySQLKV, error) {
	query := `
	CREATE TABLE IF NOT EXISTS kiosk_state (
		` + "`key`" + ` VARCHAR(64) PRIMARY KEY,
		value MEDIUMTEXT NOT NULL,
		updated_at DATETIME NOT NULL
	)`
	if _, err := db.Exec(query); err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	log.Printf("[MySQLKV] Initialized")
	return &MySQLKV{db: db}, nil
}

// Get retrieves the raw value for key.
func (s *MySQLKV) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kiosk_state WHERE `key` = ?", key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to get %q: %w", key, err)
	}

	return []byte(value), nil
}

// Set overwrites the value for key.
func (s *MySQLKV) Set(ctx context.Context, key string, value []byte) error {
	query := "INSERT INTO kiosk_state (`key`, value, updated_at) VALUES (?, ?, NOW()) " +
		"ON DUPLICATE KEY UPDATE value = VALUES(value), updated_at = NOW()"

	_, err := s.db.ExecContext(ctx, query, key, string(value))
	if err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (s *MySQLKV) Close() error {
	return s.db.Close()
}

// Ensure MySQLKV implements KV
var _ KV = (*MySQLKV)(nil)
