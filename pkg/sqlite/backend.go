// Package sqlite provides the public API for the SQLite mineral database
// backend. It exposes the factory function while keeping the implementation
// internal.
package sqlite

import (
	"github.com/mesh-intelligence/mineraldb/internal/sqlite"
	"github.com/mesh-intelligence/mineraldb/pkg/types"
)

// NewStore creates a new SQLite store instance. The store is not connected;
// call Open with a Config to initialize.
//
// Example:
//
//	store := sqlite.NewStore()
//	err := store.Open(types.Config{
//	    DataDir: ".mineraldb-data",
//	})
//	defer store.Close()
func NewStore() types.Store {
	return sqlite.New()
}
