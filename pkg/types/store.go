package types

import "errors"

// Store defines the query surface over the mineral reference database.
// Callers Open a store with a Config, query it, and Close it when done.
// The dataset is read-mostly: PutModels and IngestYAML are the only write
// paths, and they must not run concurrently with readers on the same file.
type Store interface {
	// Open connects the store to the database file described by config.
	// Creates the DataDir and seeds the built-in catalog when the file is
	// new, unless config.ReadOnly or config.SkipSeed. Returns
	// ErrAlreadyOpen when called on an open store and ErrDatabaseMissing
	// for a read-only open without an existing file.
	Open(config Config) error

	// Close releases the database handle. Idempotent: closing a closed
	// store succeeds. After Close, every operation returns ErrStoreClosed.
	Close() error

	// GetPreset returns the preset projection of the entry with the given
	// id. Lookup lowercases the id and matches the stored slug exactly.
	// Returns ErrNotFound when unknown.
	GetPreset(id string) (map[string]any, error)

	// GetMineral is GetPreset returning the structured entity instead of
	// the projection.
	GetMineral(id string) (*Mineral, error)

	// ListPresets returns entry ids, sorted. An empty category selects
	// every entry; otherwise the category names either a curated tag
	// category or a crystal system. An unknown category yields an empty
	// slice, not an error.
	ListPresets(category string) ([]string, error)

	// ListPresetCategories returns the curated tag categories plus the
	// distinct crystal systems present in the data, sorted.
	ListPresetCategories() ([]string, error)

	// SearchPresets returns ids of entries matching the query across
	// name, chemistry, locality, and description text. The query is
	// literal text: quotes, wildcards, and SQL metacharacters never fault
	// and never modify data. Zero matches yield an empty slice.
	SearchPresets(query string) ([]string, error)

	// FilterMinerals returns the entries satisfying every constraint in
	// opts, ordered by id. An inverted range yields an empty result, not
	// an error.
	FilterMinerals(opts FilterOptions) ([]*Mineral, error)

	// GetPresetsByForm returns ids of entries whose forms list contains
	// the given form, matched case-insensitively as a substring of each
	// listed form name.
	GetPresetsByForm(form string) ([]string, error)

	// CountPresets returns the total entry count via a count-only query.
	CountPresets() (int, error)

	// Model accessors read the pre-rendered payloads for one entry.
	// An unknown id returns ErrNotFound; a known entry without generated
	// models returns the zero value and a nil error.
	ModelSVG(id string) (string, error)
	ModelSTL(id string) ([]byte, error)
	ModelGLTF(id string) (string, error)
	ModelsGeneratedAt(id string) (string, error)

	// PutModels stores the model payloads for an existing entry,
	// replacing any previous set. Returns ErrNotFound for an unknown id.
	PutModels(id string, models ModelSet) error

	// FindByRI returns entries whose refractive index range overlaps
	// ri +/- tolerance, sorted by closeness to ri.
	FindByRI(ri, tolerance float64) ([]*Mineral, error)

	// FindBySG is FindByRI over specific gravity.
	FindBySG(sg, tolerance float64) ([]*Mineral, error)

	// ListShapeFactors returns the cut shape factors for carat estimation.
	ListShapeFactors() ([]ShapeFactor, error)

	// ListVolumeFactors returns the volume factors for rough estimation.
	ListVolumeFactors() ([]VolumeFactor, error)

	// ListThresholds returns the classification bands of a category,
	// ordered by ascending lower bound.
	ListThresholds(category string) ([]Threshold, error)

	// Classify returns the level of the band containing value. Returns
	// ErrNotFound when the category is unknown or no band matches.
	Classify(category string, value float64) (string, error)

	// ListHeatTreatable returns entries carrying heat treatment
	// temperature data, ordered by id.
	ListHeatTreatable() ([]*Mineral, error)

	// ListSynthetics returns synthetic families, optionally narrowed to
	// one growth method.
	ListSynthetics(growthMethod string) ([]*MineralFamily, error)

	// ListSimulants returns simulant families, optionally narrowed to
	// those imitating the given natural species.
	ListSimulants(target string) ([]*MineralFamily, error)

	// Counterparts returns the synthetic and simulant family ids
	// imitating the given natural species.
	Counterparts(id string) (Counterparts, error)

	// ListByOrigin returns family ids with the given origin.
	ListByOrigin(origin string) ([]string, error)

	// GetFamily returns the family with the given id. Lookup lowercases
	// the id. Returns ErrNotFound when unknown.
	GetFamily(id string) (*MineralFamily, error)

	// IngestYAML loads mineral definitions from a directory of YAML
	// files into the database. See the ingest documentation for the two
	// accepted document formats.
	IngestYAML(dir string) (IngestStats, error)

	// ExportYAML writes one YAML file per entry into dir and returns the
	// file count.
	ExportYAML(dir string) (int, error)

	// BuildInfo returns the database build metadata (schema version,
	// build id, build timestamp).
	BuildInfo() (map[string]string, error)
}

// FilterOptions narrows FilterMinerals. Zero-valued fields impose no
// constraint; the pointer bounds distinguish unset from zero.
type FilterOptions struct {
	System           string   // crystal system name
	MinHardness      *float64 // inclusive lower Mohs bound
	MaxHardness      *float64 // inclusive upper Mohs bound
	MinRI            *float64 // refractive index window lower bound
	MaxRI            *float64 // refractive index window upper bound
	HasBirefringence bool     // only entries with a birefringence value
	HasTwin          bool     // only entries with a twin law
	Origin           string   // origin classification
}

// Store lifecycle and lookup errors.
var (
	ErrNotFound        = errors.New("not found")
	ErrStoreClosed     = errors.New("store is closed")
	ErrAlreadyOpen     = errors.New("store is already open")
	ErrDatabaseMissing = errors.New("database file does not exist")
	ErrInvalidID       = errors.New("invalid mineral id")
)
