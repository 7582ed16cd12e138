package presets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/mineraldb/pkg/sqlite"
	"github.com/mesh-intelligence/mineraldb/pkg/types"
)

func setupViews(t *testing.T) (*Presets, *Categories) {
	t.Helper()

	store := sqlite.NewStore()
	require.NoError(t, store.Open(types.Config{DataDir: t.TempDir()}))
	t.Cleanup(func() { store.Close() })
	return New(store)
}

func TestPresets_Get(t *testing.T) {
	p, _ := setupViews(t)

	preset, err := p.Get("diamond")
	require.NoError(t, err)
	assert.Equal(t, "Diamond", preset["name"])
	assert.Equal(t, 10.0, preset["hardness"])

	_, err = p.Get("unobtainium")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestPresets_GetDefault(t *testing.T) {
	p, _ := setupViews(t)

	def := map[string]any{"name": "fallback"}
	got := p.GetDefault("unobtainium", def)
	assert.Equal(t, "fallback", got["name"])

	got = p.GetDefault("ruby", def)
	assert.Equal(t, "Ruby", got["name"])
}

func TestPresets_ContainsAndLen(t *testing.T) {
	p, _ := setupViews(t)

	assert.True(t, p.Contains("garnet"))
	assert.False(t, p.Contains("unobtainium"))

	// Contains agrees with Get and Len with Keys.
	for _, id := range p.Keys() {
		assert.True(t, p.Contains(id))
	}
	assert.Equal(t, len(p.Keys()), p.Len())
}

func TestPresets_Iteration(t *testing.T) {
	p, _ := setupViews(t)

	keys := p.Keys()
	values := p.Values()
	items := p.Items()
	require.Equal(t, len(keys), len(values))
	require.Equal(t, len(keys), len(items))

	for i, item := range items {
		assert.Equal(t, keys[i], item.Key)
		assert.Equal(t, keys[i], item.Value["id"])
	}

	var ranged []string
	for id, preset := range p.All() {
		ranged = append(ranged, id)
		assert.Equal(t, id, preset["id"])
	}
	assert.Equal(t, keys, ranged)
}

func TestPresets_AllEarlyBreak(t *testing.T) {
	p, _ := setupViews(t)

	count := 0
	for range p.All() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestCategories_Get(t *testing.T) {
	_, c := setupViews(t)

	ids, err := c.Get("twins")
	require.NoError(t, err)
	assert.Contains(t, ids, "fluorite")

	ids, err = c.Get("cubic")
	require.NoError(t, err)
	assert.Contains(t, ids, "diamond")

	_, err = c.Get("plasma")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestCategories_GetDefault(t *testing.T) {
	_, c := setupViews(t)

	got := c.GetDefault("plasma", []string{"fallback"})
	assert.Equal(t, []string{"fallback"}, got)
}

func TestCategories_Contains(t *testing.T) {
	_, c := setupViews(t)

	assert.True(t, c.Contains("twins"))
	assert.True(t, c.Contains("TWINS"))
	assert.True(t, c.Contains("Cubic"))
	assert.False(t, c.Contains("plasma"))
}

func TestCategories_Keys(t *testing.T) {
	_, c := setupViews(t)

	keys := c.Keys()
	assert.Equal(t, len(keys), c.Len())
	assert.Contains(t, keys, "twins")
	assert.Contains(t, keys, "trigonal")
}
