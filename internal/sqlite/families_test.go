// Tests for the family queries: origin classification, synthetics,
// simulants, and counterpart mapping.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/mineraldb/pkg/types"
)

func TestGetFamily(t *testing.T) {
	s := setupStore(t)

	f, err := s.GetFamily("ruby")
	require.NoError(t, err)
	assert.Equal(t, "Ruby", f.Name)
	assert.Equal(t, types.SystemTrigonal, f.CrystalSystem)
	assert.Equal(t, types.OriginNatural, f.Origin)
	require.NotNil(t, f.MineralGroup)
	assert.Equal(t, "corundum", *f.MineralGroup)
	require.NotNil(t, f.HardnessMin)
	assert.Equal(t, 9.0, *f.HardnessMin)
}

func TestGetFamily_Synthetic(t *testing.T) {
	s := setupStore(t)

	f, err := s.GetFamily("synthetic-ruby")
	require.NoError(t, err)
	assert.Equal(t, types.OriginSynthetic, f.Origin)
	require.NotNil(t, f.GrowthMethod)
	assert.Equal(t, "flame_fusion", *f.GrowthMethod)
	require.NotNil(t, f.NaturalCounterpartID)
	assert.Equal(t, "ruby", *f.NaturalCounterpartID)
	require.NotNil(t, f.YearFirstProduced)
	assert.Equal(t, 1902, *f.YearFirstProduced)
}

func TestGetFamily_NotFound(t *testing.T) {
	s := setupStore(t)

	_, err := s.GetFamily("unobtainium")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestListSynthetics(t *testing.T) {
	s := setupStore(t)

	all, err := s.ListSynthetics("")
	require.NoError(t, err)
	ids := familyIDs(all)
	assert.ElementsMatch(t, []string{
		"synthetic-ruby", "synthetic-ruby-flux", "synthetic-sapphire",
		"synthetic-diamond", "synthetic-diamond-cvd", "synthetic-emerald",
		"synthetic-quartz",
	}, ids)
	for _, f := range all {
		assert.Equal(t, types.OriginSynthetic, f.Origin)
	}
}

func TestListSynthetics_ByGrowthMethod(t *testing.T) {
	s := setupStore(t)

	flux, err := s.ListSynthetics("flux")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"synthetic-ruby-flux", "synthetic-emerald"}, familyIDs(flux))

	cvd, err := s.ListSynthetics("cvd")
	require.NoError(t, err)
	assert.Equal(t, []string{"synthetic-diamond-cvd"}, familyIDs(cvd))

	none, err := s.ListSynthetics("czochralski")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListSimulants(t *testing.T) {
	s := setupStore(t)

	all, err := s.ListSimulants("")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"cubic-zirconia", "moissanite"}, familyIDs(all))

	diamond, err := s.ListSimulants("diamond")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"cubic-zirconia", "moissanite"}, familyIDs(diamond))

	emerald, err := s.ListSimulants("emerald")
	require.NoError(t, err)
	assert.Empty(t, emerald)
}

func TestCounterparts(t *testing.T) {
	s := setupStore(t)

	c, err := s.Counterparts("diamond")
	require.NoError(t, err)
	assert.Equal(t, []string{"synthetic-diamond", "synthetic-diamond-cvd"}, c.Synthetics)
	assert.Equal(t, []string{"cubic-zirconia", "moissanite"}, c.Simulants)
}

func TestCounterparts_SyntheticsOnly(t *testing.T) {
	s := setupStore(t)

	c, err := s.Counterparts("ruby")
	require.NoError(t, err)
	assert.Equal(t, []string{"synthetic-ruby", "synthetic-ruby-flux"}, c.Synthetics)
	assert.Empty(t, c.Simulants)
}

func TestCounterparts_None(t *testing.T) {
	s := setupStore(t)

	c, err := s.Counterparts("quartz")
	require.NoError(t, err)
	assert.Equal(t, []string{"synthetic-quartz"}, c.Synthetics)
	assert.NotNil(t, c.Simulants)
	assert.Empty(t, c.Simulants)
}

func TestCounterparts_UnknownID(t *testing.T) {
	s := setupStore(t)

	_, err := s.Counterparts("adamantium")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestCounterparts_MineralOnlyID(t *testing.T) {
	s := setupStore(t)

	// Pyrite has a mineral row but no family row: a known id, just one
	// without counterparts.
	c, err := s.Counterparts("pyrite")
	require.NoError(t, err)
	assert.Empty(t, c.Synthetics)
	assert.Empty(t, c.Simulants)
}

func TestListByOrigin(t *testing.T) {
	s := setupStore(t)

	natural, err := s.ListByOrigin(types.OriginNatural)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"diamond", "ruby", "sapphire", "emerald", "quartz"}, natural)

	simulants, err := s.ListByOrigin(types.OriginSimulant)
	require.NoError(t, err)
	assert.Equal(t, []string{"cubic-zirconia", "moissanite"}, simulants)

	composites, err := s.ListByOrigin(types.OriginComposite)
	require.NoError(t, err)
	assert.NotNil(t, composites)
	assert.Empty(t, composites)
}

func familyIDs(families []*types.MineralFamily) []string {
	ids := make([]string, len(families))
	for i, f := range families {
		ids[i] = f.ID
	}
	return ids
}
