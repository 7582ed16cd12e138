// This file implements the family queries: origin classification, synthetic
// and simulant lookups, and the counterpart mapping between natural species
// and the lab-grown material imitating them.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/mineraldb/pkg/types"
)

// GetFamily returns the family with the given id, or ErrNotFound.
func (s *Store) GetFamily(id string) (*types.MineralFamily, error) {
	if err := s.reading(); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRow("SELECT "+familyColumns+" FROM families WHERE id = ?", id)
	family, err := scanFamily(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting family %s: %w", id, err)
	}
	return family, nil
}

// ListSynthetics returns synthetic families, optionally narrowed to one
// growth method.
func (s *Store) ListSynthetics(growthMethod string) ([]*types.MineralFamily, error) {
	if err := s.reading(); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	if growthMethod != "" {
		return s.queryFamilies(
			"SELECT "+familyColumns+" FROM families WHERE origin = ? AND growth_method = ? ORDER BY id",
			types.OriginSynthetic, strings.ToLower(growthMethod))
	}
	return s.queryFamilies(
		"SELECT "+familyColumns+" FROM families WHERE origin = ? ORDER BY id",
		types.OriginSynthetic)
}

// ListSimulants returns simulant families, optionally narrowed to those
// imitating the given natural species.
func (s *Store) ListSimulants(target string) ([]*types.MineralFamily, error) {
	if err := s.reading(); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	families, err := s.queryFamilies(
		"SELECT "+familyColumns+" FROM families WHERE origin = ? ORDER BY id",
		types.OriginSimulant)
	if err != nil || target == "" {
		return families, err
	}

	target = strings.ToLower(strings.TrimSpace(target))
	matched := []*types.MineralFamily{}
	for _, f := range families {
		if simulantTargets(f, target) {
			matched = append(matched, f)
		}
	}
	return matched, nil
}

// simulantTargets reports whether a simulant family imitates the given
// natural species, checking both the counterpart id and the target list.
func simulantTargets(f *types.MineralFamily, target string) bool {
	if f.NaturalCounterpartID != nil && strings.ToLower(*f.NaturalCounterpartID) == target {
		return true
	}
	for _, t := range f.TargetMinerals {
		if strings.ToLower(t) == target {
			return true
		}
	}
	return false
}

// Counterparts returns the synthetic and simulant family ids imitating the
// given natural species. A known species without counterparts yields empty
// slices, not an error; an id matching neither a family nor a mineral is
// ErrNotFound.
func (s *Store) Counterparts(id string) (types.Counterparts, error) {
	if err := s.reading(); err != nil {
		return types.Counterparts{}, err
	}
	defer s.mu.RUnlock()

	id, err := normalizeID(id)
	if err != nil {
		return types.Counterparts{}, err
	}

	var known int
	err = s.db.QueryRow(`SELECT
        (SELECT COUNT(*) FROM families WHERE id = ?) +
        (SELECT COUNT(*) FROM minerals WHERE id = ?)`, id, id).Scan(&known)
	if err != nil {
		return types.Counterparts{}, fmt.Errorf("checking id %s: %w", id, err)
	}
	if known == 0 {
		return types.Counterparts{}, types.ErrNotFound
	}

	synthetics, err := s.queryIDs(
		"SELECT id FROM families WHERE origin = ? AND natural_counterpart_id = ? ORDER BY id",
		types.OriginSynthetic, id)
	if err != nil {
		return types.Counterparts{}, err
	}

	simulants, err := s.queryFamilies(
		"SELECT "+familyColumns+" FROM families WHERE origin = ? ORDER BY id",
		types.OriginSimulant)
	if err != nil {
		return types.Counterparts{}, err
	}
	simulantIDs := []string{}
	for _, f := range simulants {
		if simulantTargets(f, id) {
			simulantIDs = append(simulantIDs, f.ID)
		}
	}

	return types.Counterparts{Synthetics: synthetics, Simulants: simulantIDs}, nil
}

// ListByOrigin returns family ids with the given origin, sorted.
func (s *Store) ListByOrigin(origin string) ([]string, error) {
	if err := s.reading(); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	return s.queryIDs("SELECT id FROM families WHERE origin = ? ORDER BY id",
		strings.ToLower(strings.TrimSpace(origin)))
}

// queryFamilies runs a family query and hydrates every row.
func (s *Store) queryFamilies(query string, args ...any) ([]*types.MineralFamily, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying families: %w", err)
	}
	defer rows.Close()

	families := []*types.MineralFamily{}
	for rows.Next() {
		family, err := scanFamily(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating family: %w", err)
		}
		families = append(families, family)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating families: %w", err)
	}
	return families, nil
}
