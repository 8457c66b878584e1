// filepath: internal/repository/repository.go
package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"dentahub/internal/config"
	"dentahub/internal/db/migrations"
	"dentahub/internal/logging"

	"github.com/Masterminds/squirrel"
	"github.com/patrickmn/go-cache"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver
)

// latestSchemaVersion must match the highest embedded migration.
const latestSchemaVersion = 2

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Repository owns the single database file handle. It is passed
// explicitly to every service so the single-writer contract is visible
// at call sites and tests can inject a throwaway instance.
type Repository struct {
	Cache   *cache.Cache
	Builder squirrel.StatementBuilderType

	mu     sync.RWMutex
	db     *sql.DB
	dbPath string
}

// DB returns the live database handle. Restore swaps the handle out
// from under running goroutines, so every access goes through here.
func (s *Repository) DB() *sql.DB {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.db
}

// NewRepository opens the SQLite database file and prepares the shared
// cache and query builder.
func NewRepository(cfg *config.Config) (*Repository, error) {
	db, err := openDatabase(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	return &Repository{
		Cache:   cache.New(5*time.Minute, 10*time.Minute),
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		db:      db,
		dbPath:  cfg.Database.Path,
	}, nil
}

// openDatabase opens the SQLite file with the pragmas every connection
// in this application uses: enforced foreign keys, WAL journaling and a
// busy timeout instead of immediate SQLITE_BUSY errors.
func openDatabase(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	// The file handle is process-wide shared mutable state; SQLite is
	// single-writer, so one connection avoids writer contention.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", path, err)
	}
	return db, nil
}

// Close closes the database handle.
func (s *Repository) Close() error {
	return s.DB().Close()
}

// Path returns the on-disk location of the live database file.
func (s *Repository) Path() string {
	return s.dbPath
}

// Reopen re-establishes the database handle with the same pragmas as
// initial startup. Used after a restore copied a backup over the live
// file while the handle was closed.
func (s *Repository) Reopen() error {
	db, err := openDatabase(s.dbPath)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.db = db
	s.mu.Unlock()
	s.Cache.Flush()
	return nil
}

// EnsureSchemaBootstrapped applies all embedded migrations to a fresh
// database. A database that already carries the goose version table is
// left alone; schema changes on existing databases go through the
// explicit `migrate` command.
func (s *Repository) EnsureSchemaBootstrapped() error {
	var name string
	err := s.DB().QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='goose_db_version'").Scan(&name)
	if err == nil {
		logging.Log.Debug("Schema version table present, skipping bootstrap migration")
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}

	logging.Log.Info("Fresh database detected, applying schema migrations...")
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.Up(s.DB(), "."); err != nil {
		return fmt.Errorf("failed to apply schema migrations: %w", err)
	}
	return nil
}

// ValidateSchema verifies the database is at the schema version this
// binary was built against.
func (s *Repository) ValidateSchema() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	version, err := goose.GetDBVersion(s.DB())
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version < latestSchemaVersion {
		return fmt.Errorf("database schema is outdated (have version %d, want %d): run 'dentahub migrate up'", version, latestSchemaVersion)
	}
	return nil
}
