// Tests for preset lookup, listing, filtering, and form queries over the
// built-in catalog.
package sqlite

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/mineraldb/pkg/types"
)

func TestGetPreset(t *testing.T) {
	s := setupStore(t)

	preset, err := s.GetPreset("diamond")
	require.NoError(t, err)

	assert.Equal(t, "diamond", preset["id"])
	assert.Equal(t, "Diamond", preset["name"])
	assert.Equal(t, "cubic", preset["system"])
	assert.Equal(t, "m3m", preset["point_group"])
	assert.Equal(t, "C", preset["chemistry"])

	// Single-value numeric text projects as float64.
	assert.Equal(t, 10.0, preset["hardness"])
	assert.Equal(t, 3.52, preset["sg"])
	assert.Equal(t, 2.417, preset["ri"])

	// Nil scalars are omitted, never present as nil.
	for key, value := range preset {
		assert.NotNil(t, value, "preset key %q must not be nil", key)
	}
	_, hasBirefringence := preset["birefringence"]
	assert.False(t, hasBirefringence, "diamond is isotropic")
}

func TestGetPreset_RangeTextStaysString(t *testing.T) {
	s := setupStore(t)

	preset, err := s.GetPreset("ruby")
	require.NoError(t, err)
	assert.Equal(t, "3.97-4.05", preset["sg"])
	assert.Equal(t, "1.762-1.770", preset["ri"])
	assert.Equal(t, 9.0, preset["hardness"])
}

// Species entries carry the plain species name, matching their family row.
func TestGetPreset_QuartzName(t *testing.T) {
	s := setupStore(t)

	preset, err := s.GetPreset("quartz")
	require.NoError(t, err)
	assert.Equal(t, "Quartz", preset["name"])

	family, err := s.GetFamily("quartz")
	require.NoError(t, err)
	assert.Equal(t, "Quartz", family.Name)
}

func TestGetPreset_CaseInsensitive(t *testing.T) {
	s := setupStore(t)

	upper, err := s.GetPreset("DIAMOND")
	require.NoError(t, err)
	lower, err := s.GetPreset("diamond")
	require.NoError(t, err)
	if diff := cmp.Diff(lower, upper); diff != "" {
		t.Errorf("preset mismatch (-lower +upper):\n%s", diff)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	s := setupStore(t)

	_, err := s.GetPreset("unobtainium")
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = s.GetPreset("")
	assert.ErrorIs(t, err, types.ErrInvalidID)
}

func TestGetMineral(t *testing.T) {
	s := setupStore(t)

	m, err := s.GetMineral("ruby")
	require.NoError(t, err)

	assert.Equal(t, "ruby", m.ID)
	assert.Equal(t, types.SystemTrigonal, m.System)
	assert.Equal(t, "-3m", m.PointGroup)
	assert.Equal(t, "9", m.HardnessText)
	assert.Equal(t, 9.0, m.Hardness)
	assert.Equal(t, types.OriginNatural, m.Origin)
	require.NotNil(t, m.Birefringence)
	assert.Equal(t, 0.008, *m.Birefringence)
	assert.NotEmpty(t, m.Localities)
	assert.NotEmpty(t, m.Inclusions)
}

func TestGetMineral_ListsNeverNil(t *testing.T) {
	s := setupStore(t)

	// Pyrite seeds without treatments or inclusions lists.
	m, err := s.GetMineral("pyrite")
	require.NoError(t, err)
	assert.NotNil(t, m.Treatments)
	assert.Empty(t, m.Treatments)
	assert.NotNil(t, m.Inclusions)
}

func TestListPresets_All(t *testing.T) {
	s := setupStore(t)

	ids, err := s.ListPresets("")
	require.NoError(t, err)

	count, err := s.CountPresets()
	require.NoError(t, err)
	assert.Len(t, ids, count)
	assert.True(t, sort.StringsAreSorted(ids), "ids must be sorted")
	assert.Contains(t, ids, "diamond")
	assert.Contains(t, ids, "moissanite")
}

func TestListPresets_System(t *testing.T) {
	s := setupStore(t)

	ids, err := s.ListPresets("cubic")
	require.NoError(t, err)
	assert.Contains(t, ids, "diamond")
	assert.Contains(t, ids, "fluorite")
	assert.Contains(t, ids, "spinel")
	assert.NotContains(t, ids, "ruby")

	// Category lookup lowercases its argument.
	upper, err := s.ListPresets("Cubic")
	require.NoError(t, err)
	assert.Equal(t, ids, upper)
}

func TestListPresets_CuratedCategory(t *testing.T) {
	s := setupStore(t)

	ids, err := s.ListPresets("twins")
	require.NoError(t, err)
	want := []string{"albite", "amethyst", "calcite", "fluorite", "orthoclase", "pyrite", "quartz", "spinel"}
	assert.Equal(t, want, ids)
}

func TestListPresets_Unknown(t *testing.T) {
	s := setupStore(t)

	ids, err := s.ListPresets("plasma")
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestListPresets_CategorySubsetOfAll(t *testing.T) {
	s := setupStore(t)

	all, err := s.ListPresets("")
	require.NoError(t, err)
	inAll := make(map[string]bool, len(all))
	for _, id := range all {
		inAll[id] = true
	}

	categories, err := s.ListPresetCategories()
	require.NoError(t, err)
	for _, c := range categories {
		ids, err := s.ListPresets(c)
		require.NoError(t, err)
		for _, id := range ids {
			assert.True(t, inAll[id], "category %q id %q missing from full listing", c, id)
		}
	}
}

func TestListPresetCategories(t *testing.T) {
	s := setupStore(t)

	categories, err := s.ListPresetCategories()
	require.NoError(t, err)
	assert.True(t, sort.StringsAreSorted(categories))
	assert.Contains(t, categories, "twins")
	assert.Contains(t, categories, "cubic")
	assert.Contains(t, categories, "trigonal")
	assert.NotContains(t, categories, "amorphous", "no amorphous entries in the seed")

	seen := make(map[string]bool, len(categories))
	for _, c := range categories {
		assert.False(t, seen[c], "duplicate category %q", c)
		seen[c] = true
	}
}

func TestFilterMinerals_System(t *testing.T) {
	s := setupStore(t)

	results, err := s.FilterMinerals(types.FilterOptions{System: "tetragonal"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "zircon", results[0].ID)
}

func TestFilterMinerals_Hardness(t *testing.T) {
	s := setupStore(t)

	min := 9.0
	results, err := s.FilterMinerals(types.FilterOptions{MinHardness: &min})
	require.NoError(t, err)

	ids := make([]string, len(results))
	for i, m := range results {
		ids[i] = m.ID
	}
	assert.ElementsMatch(t, []string{
		"diamond", "moissanite", "ruby", "sapphire",
		"synthetic-diamond", "synthetic-ruby",
	}, ids)
	assert.True(t, sort.StringsAreSorted(ids), "results ordered by id")
}

func TestFilterMinerals_HardnessRangeLowerBound(t *testing.T) {
	s := setupStore(t)

	// "7.5-8" compares by its lower bound, so emerald passes MaxHardness 7.5.
	max := 7.5
	results, err := s.FilterMinerals(types.FilterOptions{System: "hexagonal", MaxHardness: &max})
	require.NoError(t, err)

	ids := make([]string, len(results))
	for i, m := range results {
		ids[i] = m.ID
	}
	assert.Contains(t, ids, "emerald")
	assert.Contains(t, ids, "aquamarine")
	assert.NotContains(t, ids, "moissanite")
}

func TestFilterMinerals_InvertedRange(t *testing.T) {
	s := setupStore(t)

	lo, hi := 9.0, 7.0
	results, err := s.FilterMinerals(types.FilterOptions{MinHardness: &lo, MaxHardness: &hi})
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)

	results, err = s.FilterMinerals(types.FilterOptions{MinRI: &lo, MaxRI: &hi})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFilterMinerals_RIWindow(t *testing.T) {
	s := setupStore(t)

	min, max := 2.4, 2.5
	results, err := s.FilterMinerals(types.FilterOptions{MinRI: &min, MaxRI: &max})
	require.NoError(t, err)

	ids := make([]string, len(results))
	for i, m := range results {
		ids[i] = m.ID
	}
	assert.ElementsMatch(t, []string{"diamond", "synthetic-diamond"}, ids)
}

func TestFilterMinerals_Flags(t *testing.T) {
	s := setupStore(t)

	twinned, err := s.FilterMinerals(types.FilterOptions{HasTwin: true})
	require.NoError(t, err)
	for _, m := range twinned {
		require.NotNil(t, m.TwinLaw, "%s has no twin law", m.ID)
	}

	birefringent, err := s.FilterMinerals(types.FilterOptions{HasBirefringence: true})
	require.NoError(t, err)
	for _, m := range birefringent {
		require.NotNil(t, m.Birefringence, "%s has no birefringence", m.ID)
	}

	synthetic, err := s.FilterMinerals(types.FilterOptions{Origin: types.OriginSynthetic})
	require.NoError(t, err)
	ids := make([]string, len(synthetic))
	for i, m := range synthetic {
		ids[i] = m.ID
	}
	assert.ElementsMatch(t, []string{"synthetic-diamond", "synthetic-ruby"}, ids)
}

func TestGetPresetsByForm(t *testing.T) {
	s := setupStore(t)

	ids, err := s.GetPresetsByForm("octahedron")
	require.NoError(t, err)
	assert.Contains(t, ids, "diamond")
	assert.Contains(t, ids, "fluorite")
	assert.Contains(t, ids, "spinel")
	assert.NotContains(t, ids, "ruby")

	// Case-insensitive substring match against each listed form.
	upper, err := s.GetPresetsByForm("OCTAHEDRON")
	require.NoError(t, err)
	assert.Equal(t, ids, upper)

	prism, err := s.GetPresetsByForm("prism")
	require.NoError(t, err)
	assert.Contains(t, prism, "ruby", "matches 'hexagonal prism'")

	none, err := s.GetPresetsByForm("icosahedron")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestCountPresets(t *testing.T) {
	s := setupStore(t)

	count, err := s.CountPresets()
	require.NoError(t, err)
	assert.Equal(t, len(seedMinerals), count)
}
