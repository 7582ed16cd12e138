package sqlite

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ExportYAML writes one <id>.yaml per mineral into dir, each file holding
// the preset projection without the id key. Files land atomically so a
// failed export never leaves truncated documents behind.
func (s *Store) ExportYAML(dir string) (int, error) {
	if err := s.reading(); err != nil {
		return 0, err
	}
	defer s.mu.RUnlock()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("creating export directory: %w", err)
	}

	ids, err := s.queryIDs("SELECT id FROM minerals ORDER BY id")
	if err != nil {
		return 0, err
	}

	count := 0
	for _, id := range ids {
		m, err := s.getMineralLocked(id)
		if err != nil {
			return count, err
		}
		preset := m.Preset()
		delete(preset, "id")

		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(preset); err != nil {
			return count, fmt.Errorf("encoding %s: %w", id, err)
		}
		if err := enc.Close(); err != nil {
			return count, fmt.Errorf("encoding %s: %w", id, err)
		}

		path := filepath.Join(dir, id+".yaml")
		if err := atomic.WriteFile(path, &buf); err != nil {
			return count, fmt.Errorf("writing %s: %w", path, err)
		}
		count++
	}

	s.log.Debug("export complete", zap.String("dir", dir), zap.Int("files", count))
	return count, nil
}
