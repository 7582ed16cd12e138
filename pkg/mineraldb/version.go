// Package mineraldb holds module-level metadata shared by the CLI and
// downstream consumers.
package mineraldb

// Version is the current mineraldb release.
const Version = "0.3.0"

// ModulePath is the canonical module path.
const ModulePath = "github.com/mesh-intelligence/mineraldb"
