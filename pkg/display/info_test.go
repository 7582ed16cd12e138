package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/mineraldb/pkg/types"
)

type fakeSource struct {
	presets map[string]map[string]any
}

func (f *fakeSource) GetPreset(id string) (map[string]any, error) {
	p, ok := f.presets[id]
	if !ok {
		return nil, types.ErrNotFound
	}
	return p, nil
}

func testSource() *fakeSource {
	return &fakeSource{presets: map[string]map[string]any{
		"ruby": {
			"id":                "ruby",
			"name":              "Ruby",
			"chemistry":         "Al2O3",
			"system":            "trigonal",
			"hardness":          9.0,
			"sg":                4.0,
			"ri":                "1.762-1.770",
			"optical_character": "Uniaxial -",
			"birefringence":     0.008,
			"pleochroism":       "Strong: purplish-red / orangy-red",
		},
	}}
}

func TestInfoPropertiesProfileOrder(t *testing.T) {
	props, err := InfoProperties(testSource(), "ruby", "fga")
	require.NoError(t, err)

	// The fga profile lists eight keys; cleavage is absent on the record
	// and must be omitted rather than rendered empty.
	keys := make([]string, len(props))
	for i, p := range props {
		keys[i] = p.Key
	}
	assert.Equal(t, []string{
		"name", "ri", "sg", "hardness",
		"optical_character", "birefringence", "pleochroism",
	}, keys)

	assert.Equal(t, "Name", props[0].Label)
	assert.Equal(t, "Ruby", props[0].Format())
	assert.Equal(t, "SG", props[2].Label)
	assert.Equal(t, "4.00", props[2].Format())
	assert.Equal(t, "9", props[3].Format())
}

func TestInfoPropertiesCommaKeys(t *testing.T) {
	props, err := InfoProperties(testSource(), "ruby", "name, hardness, nosuchkey")
	require.NoError(t, err)

	require.Len(t, props, 2)
	assert.Equal(t, "name", props[0].Key)
	assert.Equal(t, "hardness", props[1].Key)
}

func TestInfoPropertiesUnknownID(t *testing.T) {
	_, err := InfoProperties(testSource(), "nonexistent_mineral", "basic")
	assert.ErrorIs(t, err, types.ErrNotFound)
}
