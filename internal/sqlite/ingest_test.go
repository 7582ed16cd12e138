// Tests for the YAML ingest and export paths.
package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/mineraldb/pkg/types"
)

// setupEmptyStore opens an unseeded store for ingest tests.
func setupEmptyStore(t *testing.T) *Store {
	t.Helper()

	s := New()
	err := s.Open(types.Config{DataDir: t.TempDir(), SkipSeed: true})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// writeYAML drops one fixture document into dir.
func writeYAML(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

const corundumFamilyYAML = `name: Corundum
crystal_system: Trigonal
origin: natural
point_group: "-3m"
chemistry: Al2O3
hardness: "9"
sg: "3.95-4.05"
ri: "1.760-1.770"
lustre: vitreous
forms:
  - hexagonal prism
localities:
  - Myanmar
  - Sri Lanka
expressions:
  - slug: default
    cdl: "trigonal[-3m]:{0001}@0.8 + {11-20}@1.0"
  - slug: tabular
    name: Tabular
    cdl: "trigonal[-3m]:{0001}@1.4 + {11-20}@1.0"
    forms:
      - tabular
    note: flattened habit
`

const haliteYAML = `name: Halite
cdl: "cubic[m3m]:{100}@1.0"
system: Cubic
point_group: m3m
chemistry: NaCl
hardness: "2-2.5"
description: Cubic rock salt
sg: "2.17"
ri: "1.544"
colors:
  - colorless
  - orange
`

func TestIngestYAML_FamilyFormat(t *testing.T) {
	s := setupEmptyStore(t)
	dir := t.TempDir()
	writeYAML(t, dir, "corundum.yaml", corundumFamilyYAML)

	stats, err := s.IngestYAML(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Families)
	assert.Equal(t, 2, stats.Expressions)
	assert.Equal(t, 0, stats.Legacy)

	// The default slug keeps the bare family id and name.
	base, err := s.GetMineral("corundum")
	require.NoError(t, err)
	assert.Equal(t, "Corundum", base.Name)
	assert.Equal(t, types.SystemTrigonal, base.System)
	assert.Equal(t, "-3m", base.PointGroup)
	assert.Equal(t, 9.0, base.Hardness)
	assert.Equal(t, []string{"hexagonal prism"}, base.Forms)
	require.NotNil(t, base.RIMin)
	assert.Equal(t, 1.760, *base.RIMin)

	// Non-default slugs compose id and name and override family fields.
	tabular, err := s.GetMineral("corundum-tabular")
	require.NoError(t, err)
	assert.Equal(t, "Corundum (Tabular)", tabular.Name)
	assert.Equal(t, []string{"tabular"}, tabular.Forms)
	require.NotNil(t, tabular.Note)
	assert.Equal(t, "flattened habit", *tabular.Note)

	family, err := s.GetFamily("corundum")
	require.NoError(t, err)
	assert.Equal(t, types.OriginNatural, family.Origin)
	require.NotNil(t, family.SGMin)
	assert.Equal(t, 3.95, *family.SGMin)
	require.NotNil(t, family.HardnessMin)
	assert.Equal(t, 9.0, *family.HardnessMin)
}

func TestIngestYAML_FlatFormat(t *testing.T) {
	s := setupEmptyStore(t)
	dir := t.TempDir()
	writeYAML(t, dir, "halite.yaml", haliteYAML)

	stats, err := s.IngestYAML(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Legacy)
	assert.Equal(t, 0, stats.Families)

	m, err := s.GetMineral("halite")
	require.NoError(t, err)
	assert.Equal(t, "Halite", m.Name)
	assert.Equal(t, types.SystemCubic, m.System)
	assert.Equal(t, "2-2.5", m.HardnessText)
	assert.Equal(t, 2.0, m.Hardness)
	assert.Equal(t, types.OriginNatural, m.Origin, "missing origin defaults to natural")
	require.NotNil(t, m.SGMin)
	assert.Equal(t, 2.17, *m.SGMin)
}

func TestIngestYAML_OriginDirectories(t *testing.T) {
	s := setupEmptyStore(t)
	dir := t.TempDir()
	writeYAML(t, dir, "halite.yaml", haliteYAML)
	writeYAML(t, filepath.Join(dir, "synthetics"), "lab-halite.yaml", `name: Lab Halite
cdl: "cubic[m3m]:{100}@1.0"
system: Cubic
point_group: m3m
chemistry: NaCl
hardness: "2"
growth_method: solution
`)

	stats, err := s.IngestYAML(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Legacy)

	m, err := s.GetMineral("lab-halite")
	require.NoError(t, err)
	assert.Equal(t, types.OriginSynthetic, m.Origin, "subdirectory forces origin")
}

func TestIngestYAML_InvalidPointGroup(t *testing.T) {
	s := setupEmptyStore(t)
	dir := t.TempDir()
	writeYAML(t, dir, "bogus.yaml", `name: Bogus
cdl: "cubic[m3m]:{100}@1.0"
system: Cubic
point_group: 5m
chemistry: X
`)

	_, err := s.IngestYAML(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidPointGroup)

	// The failed ingest rolled back entirely.
	count, err := s.CountPresets()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestIngestYAML_SearchableAfterIngest(t *testing.T) {
	s := setupEmptyStore(t)
	dir := t.TempDir()
	writeYAML(t, dir, "halite.yaml", haliteYAML)

	_, err := s.IngestYAML(dir)
	require.NoError(t, err)

	ids, err := s.SearchPresets("rock salt")
	require.NoError(t, err)
	assert.Contains(t, ids, "halite")
}

func TestIngestYAML_StampsBuildInfo(t *testing.T) {
	s := setupEmptyStore(t)
	dir := t.TempDir()
	writeYAML(t, dir, "halite.yaml", haliteYAML)

	_, err := s.IngestYAML(dir)
	require.NoError(t, err)

	info, err := s.BuildInfo()
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, info["schema_version"])
	assert.NotEmpty(t, info["build_id"])
}

func TestExportYAML(t *testing.T) {
	s := setupStore(t)
	dir := filepath.Join(t.TempDir(), "export")

	count, err := s.ExportYAML(dir)
	require.NoError(t, err)
	assert.Equal(t, len(seedMinerals), count)

	data, err := os.ReadFile(filepath.Join(dir, "diamond.yaml"))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, "Diamond", doc["name"])
	assert.Equal(t, "cubic", doc["system"])
	_, hasID := doc["id"]
	assert.False(t, hasID, "the id lives in the file name, not the document")
}

func TestExportYAML_RoundTrip(t *testing.T) {
	s := setupStore(t)
	dir := filepath.Join(t.TempDir(), "export")

	_, err := s.ExportYAML(dir)
	require.NoError(t, err)

	fresh := setupEmptyStore(t)
	stats, err := fresh.IngestYAML(dir)
	require.NoError(t, err)
	assert.Equal(t, len(seedMinerals), stats.Legacy)

	want, err := s.GetMineral("ruby")
	require.NoError(t, err)
	got, err := fresh.GetMineral("ruby")
	require.NoError(t, err)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.CDL, got.CDL)
	assert.Equal(t, want.HardnessText, got.HardnessText)
	assert.Equal(t, want.SG, got.SG)
	assert.Equal(t, want.Localities, got.Localities)
}

const pyriteRevisedYAML = `name: Pyrite
cdl: "cubic[m3]:{210}@1.0"
system: Cubic
point_group: m3
chemistry: FeS2
hardness: "6-6.5"
description: Pyritohedral crystals, brass metallic
localities:
  - Elba
`

// Re-ingesting an existing id must replace its search index entry, not
// leave one pointing at the dead row.
func TestIngestYAML_ReplaceReindexesSearch(t *testing.T) {
	s := setupStore(t)
	dir := t.TempDir()
	writeYAML(t, dir, "pyrite.yaml", pyriteRevisedYAML)

	_, err := s.IngestYAML(dir)
	require.NoError(t, err)

	s.mu.RLock()
	defer s.mu.RUnlock()

	stale, err := s.searchLocked("peru")
	require.NoError(t, err)
	assert.NotContains(t, stale.ids, "pyrite", "replaced row still indexed under its old locality")

	fresh, err := s.searchLocked("elba")
	require.NoError(t, err)
	assert.Equal(t, strategyFTS, fresh.strategy)
	assert.Contains(t, fresh.ids, "pyrite")
}
