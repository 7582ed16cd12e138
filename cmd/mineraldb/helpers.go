// Shared helpers for mineraldb CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/mineraldb/internal/sqlite"
	"github.com/mesh-intelligence/mineraldb/pkg/types"
)

// storeConfig builds the Store configuration from the resolved directories
// and global flags.
func storeConfig(readOnly bool) (types.Config, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}

	databaseFile := flagDB
	if databaseFile == "" {
		databaseFile = configDatabaseFile
	}

	return types.Config{
		DataDir:      dataDir,
		DatabaseFile: databaseFile,
		ReadOnly:     readOnly,
		Logger:       cliLogger(),
	}, nil
}

// cliLogger returns a debug-level logger when --verbose is set, nil
// otherwise (the store substitutes a no-op logger).
func cliLogger() *zap.Logger {
	if !flagVerbose {
		return nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil
	}
	return logger
}

// attachStore opens the database read-only for query commands. A missing
// database file is created and seeded first, so the query catalog works on
// first run without an explicit init. The caller must defer store.Close().
func attachStore() (*sqlite.Store, error) {
	config, err := storeConfig(true)
	if err != nil {
		return nil, err
	}

	store := sqlite.New()
	err = store.Open(config)
	if errors.Is(err, types.ErrDatabaseMissing) {
		if err := seedDatabase(config); err != nil {
			return nil, err
		}
		err = store.Open(config)
	}
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// attachWritableStore opens the database read-write for the build, export,
// and init commands.
func attachWritableStore() (*sqlite.Store, error) {
	config, err := storeConfig(false)
	if err != nil {
		return nil, err
	}

	store := sqlite.New()
	if err := store.Open(config); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// seedDatabase creates and seeds a fresh database file, then closes it.
func seedDatabase(config types.Config) error {
	config.ReadOnly = false
	store := sqlite.New()
	if err := store.Open(config); err != nil {
		return fmt.Errorf("create database: %w", err)
	}
	return store.Close()
}

// printJSON writes a value as indented JSON to stdout.
func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal JSON:", err)
		os.Exit(exitSysError)
	}
	fmt.Println(string(out))
}

// fail prints a system error and exits.
func fail(context string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", context, err)
	os.Exit(exitSysError)
}

// isNotFound reports whether the error wraps ErrNotFound or ErrInvalidID.
func isNotFound(err error) bool {
	return errors.Is(err, types.ErrNotFound) || errors.Is(err, types.ErrInvalidID)
}

// presetName returns the display name of a preset, falling back to the id.
func presetName(store types.Store, id string) string {
	preset, err := store.GetPreset(id)
	if err != nil {
		return id
	}
	if name, ok := preset["name"].(string); ok {
		return name
	}
	return id
}

// originTag renders the bracketed origin annotation for non-natural
// entries, empty for natural ones.
func originTag(preset map[string]any) string {
	origin, _ := preset["origin"].(string)
	if origin == "" || origin == types.OriginNatural {
		return ""
	}
	return fmt.Sprintf(" [%s]", origin)
}
