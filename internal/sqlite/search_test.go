// Tests for the two-strategy preset search.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchPresets_Name(t *testing.T) {
	s := setupStore(t)

	ids, err := s.SearchPresets("ruby")
	require.NoError(t, err)
	assert.Contains(t, ids, "ruby")
	assert.Contains(t, ids, "synthetic-ruby")
	assert.NotContains(t, ids, "diamond")
}

func TestSearchPresets_Chemistry(t *testing.T) {
	s := setupStore(t)

	ids, err := s.SearchPresets("Al2O3")
	require.NoError(t, err)
	assert.Contains(t, ids, "ruby")
	assert.Contains(t, ids, "sapphire")
}

func TestSearchPresets_Description(t *testing.T) {
	s := setupStore(t)

	ids, err := s.SearchPresets("corundum")
	require.NoError(t, err)
	assert.Contains(t, ids, "ruby")
	assert.Contains(t, ids, "sapphire")
}

func TestSearchPresets_Locality(t *testing.T) {
	s := setupStore(t)

	ids, err := s.SearchPresets("myanmar")
	require.NoError(t, err)
	assert.Contains(t, ids, "ruby")
	assert.Contains(t, ids, "spinel")
}

func TestSearchPresets_CaseInsensitive(t *testing.T) {
	s := setupStore(t)

	lower, err := s.SearchPresets("quartz")
	require.NoError(t, err)
	upper, err := s.SearchPresets("QUARTZ")
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
	assert.Contains(t, lower, "quartz")
}

func TestSearchPresets_NoMatch(t *testing.T) {
	s := setupStore(t)

	ids, err := s.SearchPresets("unobtainium")
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestSearchPresets_Empty(t *testing.T) {
	s := setupStore(t)

	ids, err := s.SearchPresets("   ")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

// Metacharacter queries stay literal: they never fault, never act as
// wildcards, and never modify data.
func TestSearchPresets_LiteralQueries(t *testing.T) {
	s := setupStore(t)

	queries := []string{
		`ruby"`,
		`"ruby`,
		`ruby OR diamond`,
		`ruby*`,
		`%`,
		`_`,
		`'; DROP TABLE minerals; --`,
		`\`,
	}
	for _, q := range queries {
		ids, err := s.SearchPresets(q)
		require.NoError(t, err, "query %q must not fault", q)
		assert.NotNil(t, ids, "query %q", q)
	}

	// The wildcard probes above must not have matched everything.
	ids, err := s.SearchPresets("%")
	require.NoError(t, err)
	assert.Empty(t, ids, "LIKE wildcard must be escaped")

	count, err := s.CountPresets()
	require.NoError(t, err)
	assert.Equal(t, len(seedMinerals), count, "search must never modify data")
}

// The indexed strategy must serve locality queries itself: the fallback
// scan is for degraded indexes, not the normal path.
func TestSearchLocked_LocalityViaFTS(t *testing.T) {
	s := setupStore(t)

	s.mu.RLock()
	defer s.mu.RUnlock()

	result, err := s.searchLocked("myanmar")
	require.NoError(t, err)
	assert.Equal(t, strategyFTS, result.strategy)
	assert.Contains(t, result.ids, "ruby")
}

func TestSearchLike_Locality(t *testing.T) {
	s := setupStore(t)

	s.mu.RLock()
	defer s.mu.RUnlock()

	ids, err := s.searchLike("myanmar")
	require.NoError(t, err)
	assert.Contains(t, ids, "ruby")
}

func TestFTSLiteral(t *testing.T) {
	assert.Equal(t, `"ruby"`, ftsLiteral("ruby"))
	assert.Equal(t, `"say ""red"""`, ftsLiteral(`say "red"`))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `\\`, escapeLike(`\`))
}
