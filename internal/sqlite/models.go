// This file implements the mineral_models side table accessors. Absence is
// two-level: an unknown mineral is ErrNotFound, while a known mineral
// without generated models reads as zero values. The only writer is the
// offline backfill path.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/mineraldb/pkg/types"
)

// ModelSVG returns the pre-rendered SVG markup for one entry.
func (s *Store) ModelSVG(id string) (string, error) {
	models, err := s.getModels(id)
	if err != nil {
		return "", err
	}
	if models.SVG == nil {
		return "", nil
	}
	return *models.SVG, nil
}

// ModelSTL returns the binary STL payload for one entry.
func (s *Store) ModelSTL(id string) ([]byte, error) {
	models, err := s.getModels(id)
	if err != nil {
		return nil, err
	}
	return models.STL, nil
}

// ModelGLTF returns the glTF JSON text for one entry.
func (s *Store) ModelGLTF(id string) (string, error) {
	models, err := s.getModels(id)
	if err != nil {
		return "", err
	}
	if models.GLTF == nil {
		return "", nil
	}
	return *models.GLTF, nil
}

// ModelsGeneratedAt returns the RFC 3339 generation timestamp for one
// entry's models.
func (s *Store) ModelsGeneratedAt(id string) (string, error) {
	models, err := s.getModels(id)
	if err != nil {
		return "", err
	}
	if models.GeneratedAt == nil {
		return "", nil
	}
	return *models.GeneratedAt, nil
}

// getModels reads the model set for one entry. The LEFT JOIN anchors on the
// minerals table so an unknown id and an ungenerated model set stay
// distinguishable: the former is ErrNoRows, the latter scans as NULLs.
func (s *Store) getModels(id string) (types.ModelSet, error) {
	if err := s.reading(); err != nil {
		return types.ModelSet{}, err
	}
	defer s.mu.RUnlock()

	id, err := normalizeID(id)
	if err != nil {
		return types.ModelSet{}, err
	}

	var (
		svg, gltf, generatedAt sql.NullString
		stl                    []byte
	)
	err = s.db.QueryRow(`SELECT mm.svg, mm.stl, mm.gltf, mm.generated_at
        FROM minerals m
        LEFT JOIN mineral_models mm ON mm.mineral_id = m.id
        WHERE m.id = ?`, id).
		Scan(&svg, &stl, &gltf, &generatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.ModelSet{}, types.ErrNotFound
		}
		return types.ModelSet{}, fmt.Errorf("getting models for %s: %w", id, err)
	}

	return types.ModelSet{
		SVG:         strPtr(svg),
		STL:         stl,
		GLTF:        strPtr(gltf),
		GeneratedAt: strPtr(generatedAt),
	}, nil
}

// PutModels stores the model payloads for an existing entry, replacing any
// previous set. Returns ErrNotFound for an unknown id.
func (s *Store) PutModels(id string, models types.ModelSet) error {
	if err := s.writing(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	id, err := normalizeID(id)
	if err != nil {
		return err
	}

	var exists int
	err = s.db.QueryRow("SELECT 1 FROM minerals WHERE id = ?", id).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.ErrNotFound
		}
		return fmt.Errorf("checking mineral %s: %w", id, err)
	}

	_, err = s.db.Exec(`INSERT OR REPLACE INTO mineral_models
        (mineral_id, svg, stl, gltf, generated_at) VALUES (?, ?, ?, ?, ?)`,
		id, nullStr(models.SVG), models.STL, nullStr(models.GLTF), nullStr(models.GeneratedAt))
	if err != nil {
		return fmt.Errorf("storing models for %s: %w", id, err)
	}
	return nil
}

// nullStr maps a nil pointer to a NULL column value.
func nullStr(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}
