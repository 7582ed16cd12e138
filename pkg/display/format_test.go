package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
		want  string
	}{
		{name: "nil renders empty", key: "sg", value: nil, want: ""},
		{name: "sg two decimals", key: "sg", value: 4.0, want: "4.00"},
		{name: "sg keeps precision", key: "sg", value: 3.52, want: "3.52"},
		{name: "sg range text unchanged", key: "sg", value: "3.95-4.30", want: "3.95-4.30"},
		{name: "integral hardness no decimal point", key: "hardness", value: 9, want: "9"},
		{name: "integral hardness float", key: "hardness", value: 9.0, want: "9"},
		{name: "fractional hardness", key: "hardness", value: 6.5, want: "6.5"},
		{name: "hardness range text unchanged", key: "hardness", value: "5-7", want: "5-7"},
		{name: "ri three decimals", key: "ri", value: 2.417, want: "2.417"},
		{name: "trailing zeros trimmed", key: "birefringence", value: 0.01, want: "0.01"},
		{name: "dispersion", key: "dispersion", value: 0.044, want: "0.044"},
		{name: "year", key: "year_first_produced", value: 1902, want: "1902"},
		{name: "short list joins", key: "colors", value: []string{"Red", "Pink"}, want: "Red, Pink"},
		{name: "three element list joins fully", key: "colors", value: []string{"A", "B", "C"}, want: "A, B, C"},
		{name: "long list truncates", key: "localities", value: []string{"A", "B", "C", "D"}, want: "A, B, C..."},
		{name: "any-typed list", key: "forms", value: []any{"cube", "octahedron"}, want: "cube, octahedron"},
		{name: "plain string", key: "lustre", value: "Adamantine", want: "Adamantine"},
		{name: "bool via sprint", key: "is_primary", value: true, want: "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.key, tt.value))
		})
	}
}

func TestGroups(t *testing.T) {
	groups := Groups()
	assert.Contains(t, groups, "basic")
	assert.Contains(t, groups, "fga")
	assert.Contains(t, groups, "full")
	assert.Contains(t, groups, "synthetic")
	assert.IsIncreasing(t, groups)
}
