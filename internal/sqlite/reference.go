// This file implements the gemmological reference table accessors: cut
// shape factors, volume factors, classification thresholds, and the build
// metadata stamped at seed time.
package sqlite

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/mineraldb/pkg/types"
)

// ListShapeFactors returns the cut shape factors for carat estimation,
// ordered by id.
func (s *Store) ListShapeFactors() ([]types.ShapeFactor, error) {
	if err := s.reading(); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, factor, description FROM shape_factors ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying shape factors: %w", err)
	}
	defer rows.Close()

	factors := []types.ShapeFactor{}
	for rows.Next() {
		var f types.ShapeFactor
		if err := rows.Scan(&f.ID, &f.Name, &f.Factor, &f.Description); err != nil {
			return nil, fmt.Errorf("scanning shape factor: %w", err)
		}
		factors = append(factors, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shape factors: %w", err)
	}
	return factors, nil
}

// ListVolumeFactors returns the volume factors for rough estimation,
// ordered by id.
func (s *Store) ListVolumeFactors() ([]types.VolumeFactor, error) {
	if err := s.reading(); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, factor FROM volume_factors ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying volume factors: %w", err)
	}
	defer rows.Close()

	factors := []types.VolumeFactor{}
	for rows.Next() {
		var f types.VolumeFactor
		if err := rows.Scan(&f.ID, &f.Name, &f.Factor); err != nil {
			return nil, fmt.Errorf("scanning volume factor: %w", err)
		}
		factors = append(factors, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating volume factors: %w", err)
	}
	return factors, nil
}

// ListThresholds returns the classification bands of a category, ordered
// by ascending lower bound. An unknown category yields an empty slice.
func (s *Store) ListThresholds(category string) ([]types.Threshold, error) {
	if err := s.reading(); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	return s.queryThresholds(category)
}

func (s *Store) queryThresholds(category string) ([]types.Threshold, error) {
	rows, err := s.db.Query(`SELECT category, level, min_value, max_value, description
        FROM thresholds WHERE category = ? ORDER BY min_value`,
		strings.ToLower(strings.TrimSpace(category)))
	if err != nil {
		return nil, fmt.Errorf("querying thresholds: %w", err)
	}
	defer rows.Close()

	thresholds := []types.Threshold{}
	for rows.Next() {
		var (
			t      types.Threshold
			maxVal *float64
			desc   *string
		)
		if err := rows.Scan(&t.Category, &t.Level, &t.MinValue, &maxVal, &desc); err != nil {
			return nil, fmt.Errorf("scanning threshold: %w", err)
		}
		t.MaxValue = maxVal
		if desc != nil {
			t.Description = *desc
		}
		thresholds = append(thresholds, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating thresholds: %w", err)
	}
	return thresholds, nil
}

// Classify returns the level of the band containing value: min_value is
// inclusive, max_value exclusive, and a NULL max_value leaves the band
// open-ended. ErrNotFound when the category is unknown or no band matches.
func (s *Store) Classify(category string, value float64) (string, error) {
	if err := s.reading(); err != nil {
		return "", err
	}
	defer s.mu.RUnlock()

	thresholds, err := s.queryThresholds(category)
	if err != nil {
		return "", err
	}
	for _, t := range thresholds {
		if value < t.MinValue {
			continue
		}
		if t.MaxValue == nil || value < *t.MaxValue {
			return t.Level, nil
		}
	}
	return "", types.ErrNotFound
}

// BuildInfo returns the database build metadata stamped at seed or ingest
// time.
func (s *Store) BuildInfo() (map[string]string, error) {
	if err := s.reading(); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT key, value FROM database_info")
	if err != nil {
		return nil, fmt.Errorf("querying database info: %w", err)
	}
	defer rows.Close()

	info := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scanning database info: %w", err)
		}
		info[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating database info: %w", err)
	}
	return info, nil
}
