// Tests for the pre-rendered model accessors and the backfill write path.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/mineraldb/pkg/types"
)

func TestModels_UngeneratedEntry(t *testing.T) {
	s := setupStore(t)

	// A known entry without generated models yields zero values, nil error.
	svg, err := s.ModelSVG("diamond")
	require.NoError(t, err)
	assert.Empty(t, svg)

	stl, err := s.ModelSTL("diamond")
	require.NoError(t, err)
	assert.Nil(t, stl)

	gltf, err := s.ModelGLTF("diamond")
	require.NoError(t, err)
	assert.Empty(t, gltf)

	generated, err := s.ModelsGeneratedAt("diamond")
	require.NoError(t, err)
	assert.Empty(t, generated)
}

func TestModels_UnknownEntry(t *testing.T) {
	s := setupStore(t)

	_, err := s.ModelSVG("unobtainium")
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = s.ModelSTL("unobtainium")
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = s.ModelGLTF("unobtainium")
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = s.ModelsGeneratedAt("unobtainium")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestPutModels(t *testing.T) {
	s := setupStore(t)

	svg := "<svg><polygon points='0,0 1,1 0,1'/></svg>"
	gltf := `{"asset":{"version":"2.0"}}`
	generatedAt := "2026-08-30T12:00:00Z"
	set := types.ModelSet{
		SVG:         &svg,
		STL:         []byte{0x01, 0x02, 0x03},
		GLTF:        &gltf,
		GeneratedAt: &generatedAt,
	}
	require.NoError(t, s.PutModels("diamond", set))

	gotSVG, err := s.ModelSVG("diamond")
	require.NoError(t, err)
	assert.Equal(t, svg, gotSVG)

	gotSTL, err := s.ModelSTL("diamond")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, gotSTL)

	gotGLTF, err := s.ModelGLTF("diamond")
	require.NoError(t, err)
	assert.Equal(t, gltf, gotGLTF)

	gotAt, err := s.ModelsGeneratedAt("diamond")
	require.NoError(t, err)
	assert.Equal(t, generatedAt, gotAt)
}

func TestPutModels_Replace(t *testing.T) {
	s := setupStore(t)

	first := "<svg>first</svg>"
	require.NoError(t, s.PutModels("ruby", types.ModelSet{SVG: &first}))

	second := "<svg>second</svg>"
	require.NoError(t, s.PutModels("ruby", types.ModelSet{SVG: &second}))

	got, err := s.ModelSVG("ruby")
	require.NoError(t, err)
	assert.Equal(t, second, got)

	// The replacement dropped the fields the new set does not carry.
	stl, err := s.ModelSTL("ruby")
	require.NoError(t, err)
	assert.Nil(t, stl)
}

func TestPutModels_UnknownEntry(t *testing.T) {
	s := setupStore(t)

	svg := "<svg/>"
	err := s.PutModels("unobtainium", types.ModelSet{SVG: &svg})
	assert.ErrorIs(t, err, types.ErrNotFound)
}
