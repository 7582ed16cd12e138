// This file implements the core preset lookup, listing, and filter queries.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mesh-intelligence/mineraldb/pkg/types"
)

// GetPreset returns the preset projection of one entry, or ErrNotFound.
func (s *Store) GetPreset(id string) (map[string]any, error) {
	mineral, err := s.GetMineral(id)
	if err != nil {
		return nil, err
	}
	return mineral.Preset(), nil
}

// GetMineral returns the structured entry for an id, or ErrNotFound.
func (s *Store) GetMineral(id string) (*types.Mineral, error) {
	if err := s.reading(); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	return s.getMineralLocked(id)
}

// getMineralLocked looks up one mineral. The caller must hold the read lock.
func (s *Store) getMineralLocked(id string) (*types.Mineral, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRow("SELECT "+mineralColumns+" FROM minerals WHERE id = ?", id)
	mineral, err := scanMineral(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting mineral %s: %w", id, err)
	}
	return mineral, nil
}

// ListPresets returns entry ids, sorted. An empty category selects all
// entries. A non-empty category resolves first as a curated tag category,
// then as a crystal system; an unknown category yields an empty slice.
func (s *Store) ListPresets(category string) ([]string, error) {
	if err := s.reading(); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	if category == "" {
		return s.queryIDs("SELECT id FROM minerals ORDER BY id")
	}

	category = strings.ToLower(strings.TrimSpace(category))

	ids, err := s.categoryPresets(category)
	if err != nil {
		return nil, err
	}
	if len(ids) > 0 {
		sort.Strings(ids)
		return ids, nil
	}

	return s.queryIDs("SELECT id FROM minerals WHERE system = ? ORDER BY id", category)
}

// categoryPresets reads the curated preset list of a tag category. An
// unknown category yields an empty slice.
func (s *Store) categoryPresets(name string) ([]string, error) {
	var presetsJSON string
	err := s.db.QueryRow("SELECT presets_json FROM categories WHERE name = ?", name).Scan(&presetsJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("getting category %s: %w", name, err)
	}

	var ids []string
	if err := json.Unmarshal([]byte(presetsJSON), &ids); err != nil || ids == nil {
		// A malformed curated list is "no data", same as the list columns.
		return []string{}, nil
	}
	return ids, nil
}

// ListPresetCategories returns the curated tag categories plus the distinct
// crystal systems present in the data, sorted and deduplicated.
func (s *Store) ListPresetCategories() ([]string, error) {
	if err := s.reading(); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	systems, err := s.queryIDs("SELECT DISTINCT system FROM minerals WHERE system IS NOT NULL")
	if err != nil {
		return nil, err
	}
	curated, err := s.queryIDs("SELECT name FROM categories")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(systems)+len(curated))
	categories := make([]string, 0, len(systems)+len(curated))
	for _, c := range append(systems, curated...) {
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// FilterMinerals returns entries satisfying every supplied criterion,
// ordered by id. Omitted criteria impose no constraint; an inverted range
// yields an empty result, not an error.
func (s *Store) FilterMinerals(opts types.FilterOptions) ([]*types.Mineral, error) {
	if err := s.reading(); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	if invertedRange(opts.MinHardness, opts.MaxHardness) || invertedRange(opts.MinRI, opts.MaxRI) {
		return []*types.Mineral{}, nil
	}

	query := "SELECT " + mineralColumns + " FROM minerals"
	var conditions []string
	var args []any

	if opts.System != "" {
		conditions = append(conditions, "system = ?")
		args = append(args, strings.ToLower(opts.System))
	}
	if opts.Origin != "" {
		conditions = append(conditions, "origin = ?")
		args = append(args, strings.ToLower(opts.Origin))
	}
	if opts.HasBirefringence {
		conditions = append(conditions, "birefringence IS NOT NULL")
	}
	if opts.HasTwin {
		conditions = append(conditions, "twin_law IS NOT NULL AND twin_law != ''")
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("filtering minerals: %w", err)
	}
	defer rows.Close()

	results := []*types.Mineral{}
	for rows.Next() {
		mineral, err := scanMineral(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating mineral: %w", err)
		}
		if !matchesRanges(mineral, opts) {
			continue
		}
		results = append(results, mineral)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating minerals: %w", err)
	}
	return results, nil
}

// matchesRanges applies the hardness and RI window criteria. Stored values
// go through the shared range parsing, so "5-7" compares by its lower bound
// and numeric windows use the stored min/max columns when present.
func matchesRanges(m *types.Mineral, opts types.FilterOptions) bool {
	if opts.MinHardness != nil || opts.MaxHardness != nil {
		hardness := types.ParseHardness(m.HardnessText)
		if opts.MinHardness != nil && hardness < *opts.MinHardness {
			return false
		}
		if opts.MaxHardness != nil && hardness > *opts.MaxHardness {
			return false
		}
	}

	if opts.MinRI != nil || opts.MaxRI != nil {
		lo, hi, ok := riBounds(m)
		if !ok {
			return false
		}
		if opts.MinRI != nil && hi < *opts.MinRI {
			return false
		}
		if opts.MaxRI != nil && lo > *opts.MaxRI {
			return false
		}
	}

	return true
}

// riBounds resolves an entry's refractive index window from the numeric
// columns, falling back to the stored text.
func riBounds(m *types.Mineral) (lo, hi float64, ok bool) {
	if m.RIMin != nil && m.RIMax != nil {
		return *m.RIMin, *m.RIMax, true
	}
	if m.RI != nil {
		return types.ParseRange(*m.RI)
	}
	return 0, 0, false
}

// sgBounds resolves an entry's specific gravity window.
func sgBounds(m *types.Mineral) (lo, hi float64, ok bool) {
	if m.SGMin != nil && m.SGMax != nil {
		return *m.SGMin, *m.SGMax, true
	}
	if m.SG != nil {
		return types.ParseRange(*m.SG)
	}
	return 0, 0, false
}

func invertedRange(min, max *float64) bool {
	return min != nil && max != nil && *min > *max
}

// GetPresetsByForm returns ids of entries whose forms list contains the
// given form, matched case-insensitively as a substring of each listed
// form name.
func (s *Store) GetPresetsByForm(form string) ([]string, error) {
	if err := s.reading(); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	form = strings.ToLower(strings.TrimSpace(form))
	if form == "" {
		return []string{}, nil
	}

	rows, err := s.db.Query("SELECT id, forms_json FROM minerals ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying forms: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		var formsJSON sql.NullString
		if err := rows.Scan(&id, &formsJSON); err != nil {
			return nil, fmt.Errorf("scanning forms: %w", err)
		}
		for _, f := range decodeList(formsJSON) {
			if strings.Contains(strings.ToLower(f), form) {
				ids = append(ids, id)
				break
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating forms: %w", err)
	}
	return ids, nil
}

// CountPresets returns the total entry count via a count-only query.
func (s *Store) CountPresets() (int, error) {
	if err := s.reading(); err != nil {
		return 0, err
	}
	defer s.mu.RUnlock()

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM minerals").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting minerals: %w", err)
	}
	return count, nil
}

// queryIDs runs a single-column string query and collects the results.
func (s *Store) queryIDs(query string, args ...any) ([]string, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying ids: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ids: %w", err)
	}
	return ids, nil
}
