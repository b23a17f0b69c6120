package persistence

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	// registers the "sqlite3" driver with database/sql
	_ "github.com/mattn/go-sqlite3"

	"github.com/spec-kit/staff-service/internal/config"
)

// Sqlite holds the single-file database backing the employee store.
type Sqlite struct {
	DB *sql.DB
}

// NewSqlite opens the database file and ensures the employees schema
// exists. Schema creation is idempotent, safe on every startup.
func NewSqlite(cfg config.SqliteConfig, logger *zap.Logger) (*Sqlite, error) {
	db, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS employees (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			first_name    TEXT    NOT NULL,
			last_name     TEXT    NOT NULL,
			email         TEXT    NOT NULL,
			date_of_birth TIMESTAMP,
			gender_id     INTEGER NOT NULL DEFAULT 0,
			department_id INTEGER NOT NULL DEFAULT 0
		)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create employees table: %w", err)
	}

	logger.Info("opened sqlite store", zap.String("path", cfg.Path))
	return &Sqlite{DB: db}, nil
}

// Close releases the underlying database handle.
func (s *Sqlite) Close() {
	if s != nil && s.DB != nil {
		_ = s.DB.Close()
	}
}
