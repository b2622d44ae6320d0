// Package sqlite provides SQLite database operations for oneiro.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// StoreConfig configures the SQLite store.
type StoreConfig struct {
	Path     string
	MaxConns int
	WALMode  bool
}

// Store wraps the SQLite connection with a prepared-statement cache.
type Store struct {
	db    *sql.DB
	mu    sync.Mutex
	stmts map[string]*sql.Stmt
}

// NewStore opens (creating if necessary) the journal database at cfg.Path
// and applies the schema.
func NewStore(cfg StoreConfig) (*Store, error) {
	dsn := cfg.Path
	if cfg.WALMode {
		dsn += "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Path, err)
	}
	if cfg.MaxConns > 0 {
		db.SetMaxOpenConns(cfg.MaxConns)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.Path, err)
	}

	s := newStoreFromDB(db)
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	log.Debug().Str("path", cfg.Path).Msg("Journal store ready")
	return s, nil
}

// newStoreFromDB wraps an already-open database. Tests use this with
// in-memory databases.
func newStoreFromDB(db *sql.DB) *Store {
	return &Store{db: db, stmts: make(map[string]*sql.Stmt)}
}

// migrate applies the schema. Statements are idempotent.
func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS dreams (
			id INTEGER PRIMARY KEY,
			created_at TEXT NOT NULL,
			created_at_epoch INTEGER NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			tags TEXT NOT NULL DEFAULT '[]',
			lucid INTEGER NOT NULL DEFAULT 0,
			dream_sign TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_dreams_created ON dreams(created_at_epoch)`,
		`CREATE TABLE IF NOT EXISTS daily_logs (
			date TEXT PRIMARY KEY,
			bedtime TEXT NOT NULL,
			wake_time TEXT NOT NULL,
			quality INTEGER NOT NULL,
			wake_feeling TEXT,
			reality_checks INTEGER NOT NULL DEFAULT 0,
			notes TEXT,
			dream_ids TEXT NOT NULL DEFAULT '[]'
		)`,
		`CREATE TABLE IF NOT EXISTS technique_practice (
			id TEXT PRIMARY KEY,
			technique TEXT NOT NULL,
			date TEXT NOT NULL,
			duration_minutes INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			control_level INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_practice_technique ON technique_practice(technique)`,
	}
	for _, q := range stmts {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// GetStmt returns a cached prepared statement for the query.
func (s *Store) GetStmt(query string) (*sql.Stmt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if stmt, ok := s.stmts[query]; ok {
		return stmt, nil
	}
	stmt, err := s.db.Prepare(query)
	if err != nil {
		return nil, err
	}
	s.stmts[query] = stmt
	return stmt, nil
}

// ExecContext executes a statement through the cache.
func (s *Store) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	stmt, err := s.GetStmt(query)
	if err != nil {
		return nil, err
	}
	return stmt.ExecContext(ctx, args...)
}

// QueryContext runs a query through the cache.
func (s *Store) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	stmt, err := s.GetStmt(query)
	if err != nil {
		return nil, err
	}
	return stmt.QueryContext(ctx, args...)
}

// QueryRowContext runs a single-row query through the cache.
func (s *Store) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	stmt, err := s.GetStmt(query)
	if err != nil {
		// Surface the prepare error through the row scan.
		return s.db.QueryRowContext(ctx, query, args...)
	}
	return stmt.QueryRowContext(ctx, args...)
}

// Close releases cached statements and the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	for _, stmt := range s.stmts {
		stmt.Close()
	}
	s.stmts = make(map[string]*sql.Stmt)
	s.mu.Unlock()
	return s.db.Close()
}
