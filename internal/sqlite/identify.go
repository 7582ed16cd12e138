// This file implements the identification calculators: probe an observed
// refractive index or specific gravity against each entry's stored range
// and rank the overlaps by closeness.
package sqlite

import (
	"fmt"
	"math"
	"sort"

	"github.com/mesh-intelligence/mineraldb/pkg/types"
)

// FindByRI returns entries whose refractive index range overlaps
// ri +/- tolerance, sorted by the distance of the range midpoint from the
// probe value.
func (s *Store) FindByRI(ri, tolerance float64) ([]*types.Mineral, error) {
	return s.findByWindow(ri, tolerance, riBounds)
}

// FindBySG is FindByRI over specific gravity.
func (s *Store) FindBySG(sg, tolerance float64) ([]*types.Mineral, error) {
	return s.findByWindow(sg, tolerance, sgBounds)
}

// findByWindow scans every entry, keeps those whose bounds overlap the
// probe window, and orders them by midpoint distance.
func (s *Store) findByWindow(value, tolerance float64, bounds func(*types.Mineral) (float64, float64, bool)) ([]*types.Mineral, error) {
	if err := s.reading(); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT " + mineralColumns + " FROM minerals ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying minerals: %w", err)
	}
	defer rows.Close()

	type candidate struct {
		mineral  *types.Mineral
		distance float64
	}
	var candidates []candidate

	for rows.Next() {
		mineral, err := scanMineral(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating mineral: %w", err)
		}
		lo, hi, ok := bounds(mineral)
		if !ok {
			continue
		}
		if hi < value-tolerance || lo > value+tolerance {
			continue
		}
		candidates = append(candidates, candidate{
			mineral:  mineral,
			distance: math.Abs((lo+hi)/2 - value),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating minerals: %w", err)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	results := make([]*types.Mineral, len(candidates))
	for i, c := range candidates {
		results[i] = c.mineral
	}
	return results, nil
}

// ListHeatTreatable returns entries carrying heat treatment temperature
// data, ordered by id.
func (s *Store) ListHeatTreatable() ([]*types.Mineral, error) {
	if err := s.reading(); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT " + mineralColumns + ` FROM minerals
        WHERE heat_treatment_temp_min IS NOT NULL OR heat_treatment_temp_max IS NOT NULL
        ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying heat treatable minerals: %w", err)
	}
	defer rows.Close()

	results := []*types.Mineral{}
	for rows.Next() {
		mineral, err := scanMineral(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating mineral: %w", err)
		}
		results = append(results, mineral)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating minerals: %w", err)
	}
	return results, nil
}
