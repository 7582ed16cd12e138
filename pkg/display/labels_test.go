package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{key: "sg", want: "SG"},
		{key: "ri", want: "RI"},
		{key: "cdl", want: "CDL"},
		{key: "chemistry", want: "Formula"},
		{key: "description", want: "Habit"},
		{key: "birefringence", want: "Biref."},
		{key: "optical_character", want: "Optical"},
		{key: "point_group", want: "Point Group"},
		{key: "heat_treatment_temp_min", want: "Heat Treat Min (°C)"},
		{key: "natural_counterpart_id", want: "Natural Counterpart"},
		{key: "diagnostic_synthetic_features", want: "Diagnostic Features (Synthetic)"},
		// Keys without a curated label humanize instead of failing.
		{key: "unknown_key", want: "Unknown Key"},
		{key: "twin_law", want: "Twin Law"},
		{key: "note", want: "Note"},
		{key: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(tt.key))
		})
	}
}
