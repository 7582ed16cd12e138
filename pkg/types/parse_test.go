package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHardness(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "range takes lower bound", input: "5-7", want: 5.0},
		{name: "decimal", input: "6.5", want: 6.5},
		{name: "integer", input: "7", want: 7.0},
		{name: "unparseable", input: "not-a-number", want: 0.0},
		{name: "empty", input: "", want: 0.0},
		{name: "spaced range", input: "6 - 7", want: 6.0},
		{name: "decimal range", input: "6.5-7.5", want: 6.5},
		{name: "ten", input: "10", want: 10.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseHardness(tt.input))
		})
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantLo float64
		wantHi float64
		wantOK bool
	}{
		{name: "range", input: "1.54-1.55", wantLo: 1.54, wantHi: 1.55, wantOK: true},
		{name: "single value", input: "2.417", wantLo: 2.417, wantHi: 2.417, wantOK: true},
		{name: "integer", input: "4", wantLo: 4, wantHi: 4, wantOK: true},
		{name: "spaced range", input: "3.50 - 4.30", wantLo: 3.5, wantHi: 4.3, wantOK: true},
		{name: "text", input: "varies", wantOK: false},
		{name: "half range", input: "1.54-", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi, ok := ParseRange(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantLo, lo)
				assert.Equal(t, tt.wantHi, hi)
			}
		})
	}
}
