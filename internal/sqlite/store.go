// Package sqlite implements the SQLite storage backend for the mineral
// reference database. The store is read-mostly: queries run against an
// immutable file built by the seed or ingest paths, and the only writers
// are the ingest and model backfill operations.
package sqlite

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/mineraldb/pkg/types"
)

// Compile-time interface check: Store must implement types.Store.
var _ types.Store = (*Store)(nil)

// Store is the SQLite implementation of types.Store. The zero value is not
// usable; construct with New and call Open before querying.
type Store struct {
	mu     sync.RWMutex
	open   bool
	config types.Config
	db     *sql.DB
	log    *zap.Logger
}

// New creates an unopened Store. Call Open with a Config to connect.
func New() *Store {
	return &Store{log: zap.NewNop()}
}

// Open connects the store to the database file described by config.
// It creates the DataDir, applies the schema, and seeds the built-in
// catalog when the minerals table is empty. A read-only open requires an
// existing file and never writes.
func (s *Store) Open(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return types.ErrAlreadyOpen
	}
	if err := config.Validate(); err != nil {
		return err
	}

	path := config.DatabasePath()
	if config.ReadOnly {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("%w: %s", types.ErrDatabaseMissing, path)
		}
	} else if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dsn(path, config.ReadOnly))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	// A single pooled connection keeps the WAL pragmas and any implicit
	// transaction state on one handle.
	db.SetMaxOpenConns(1)

	if !config.ReadOnly {
		if err := applySchema(db); err != nil {
			db.Close()
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	s.db = db
	s.config = config
	s.log = config.Log()
	s.open = true

	if !config.ReadOnly && !config.SkipSeed {
		if err := s.seedIfEmpty(); err != nil {
			s.db = nil
			s.open = false
			db.Close()
			return fmt.Errorf("seed catalog: %w", err)
		}
	}

	return nil
}

// Close releases the database handle. Idempotent: closing a closed store
// succeeds. After Close, all operations return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("close database: %w", err)
		}
		s.db = nil
	}
	s.open = false

	return nil
}

// dsn builds the modernc driver DSN with the connection pragmas applied at
// open time.
func dsn(path string, readOnly bool) string {
	params := url.Values{}
	params.Add("_pragma", "busy_timeout(5000)")
	params.Add("_pragma", "journal_mode(WAL)")
	params.Add("_pragma", "synchronous(NORMAL)")
	// REPLACE conflicts on minerals must fire the FTS delete trigger, or
	// re-ingested rows leave dangling index entries for dead rowids.
	params.Add("_pragma", "recursive_triggers(1)")
	if readOnly {
		params.Add("mode", "ro")
	}
	return "file:" + path + "?" + params.Encode()
}

// applySchema executes all table and index DDL.
func applySchema(db *sql.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("executing %q: %w", ddlName(ddl), err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("executing %q: %w", ddlName(ddl), err)
		}
	}
	return nil
}

// ddlName extracts the first line of a DDL statement for error context.
func ddlName(ddl string) string {
	line, _, _ := strings.Cut(ddl, "\n")
	return line
}

// reading acquires the read lock and verifies the store is open. The caller
// must defer s.mu.RUnlock() on a nil error.
func (s *Store) reading() error {
	s.mu.RLock()
	if !s.open {
		s.mu.RUnlock()
		return types.ErrStoreClosed
	}
	return nil
}

// writing acquires the write lock and verifies the store is open and
// writable. The caller must defer s.mu.Unlock() on a nil error.
func (s *Store) writing() error {
	s.mu.Lock()
	if !s.open {
		s.mu.Unlock()
		return types.ErrStoreClosed
	}
	if s.config.ReadOnly {
		s.mu.Unlock()
		return fmt.Errorf("store is read-only")
	}
	return nil
}

// normalizeID lowercases and trims a caller-supplied identifier. Stored
// slugs are lowercase, so lookups are effectively case-insensitive.
func normalizeID(id string) (string, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return "", types.ErrInvalidID
	}
	return id, nil
}
