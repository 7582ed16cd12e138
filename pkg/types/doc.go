// Package types defines the Store interface, entity types, parsing helpers,
// and standard error types for the mineraldb reference dataset.
package types
