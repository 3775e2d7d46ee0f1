package settings

import (
	"testing"

	"lumiere/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		hex  string
		want models.HSLColor
	}{
		{"#ffffff", models.HSLColor{H: 0, S: 0, L: 100}},
		{"#000000", models.HSLColor{H: 0, S: 0, L: 0}},
		{"#ff0000", models.HSLColor{H: 0, S: 100, L: 50}},
		{"#00ff00", models.HSLColor{H: 120, S: 100, L: 50}},
		{"#0000ff", models.HSLColor{H: 240, S: 100, L: 50}},
		{"808080", models.HSLColor{H: 0, S: 0, L: 50}}, // leading # optional
	}
	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			got, err := ParseHex(tt.hex)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHexRejectsInvalid(t *testing.T) {
	for _, hex := range []string{"", "#fff", "#gggggg", "#ff00", "#ff0000ff", "red"} {
		t.Run(hex, func(t *testing.T) {
			_, err := ParseHex(hex)
			assert.Error(t, err)
		})
	}
}

func TestFormatHex(t *testing.T) {
	tests := []struct {
		c    models.HSLColor
		want string
	}{
		{models.HSLColor{H: 0, S: 0, L: 100}, "#ffffff"},
		{models.HSLColor{H: 0, S: 0, L: 0}, "#000000"},
		{models.HSLColor{H: 0, S: 100, L: 50}, "#ff0000"},
		{models.HSLColor{H: 120, S: 100, L: 50}, "#00ff00"},
		{models.HSLColor{H: 240, S: 100, L: 50}, "#0000ff"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatHex(tt.c))
	}
}

func TestHexHSLRoundTrip(t *testing.T) {
	// Rounding to whole HSL degrees/percents loses at most a unit per RGB
	// channel, so a parse/format cycle must land within one step.
	colors := []string{"#1a2b3c", "#e91e63", "#4caf50", "#ffeb3b", "#9c27b0", "#f5deb3"}
	for _, hex := range colors {
		t.Run(hex, func(t *testing.T) {
			hsl, err := ParseHex(hex)
			require.NoError(t, err)

			back, err := ParseHex(FormatHex(hsl))
			require.NoError(t, err)

			assert.InDelta(t, hsl.H, back.H, 1.5)
			assert.InDelta(t, hsl.S, back.S, 1.5)
			assert.InDelta(t, hsl.L, back.L, 1.5)
		})
	}
}

func TestValidateHSL(t *testing.T) {
	assert.NoError(t, ValidateHSL(models.HSLColor{H: 359, S: 100, L: 100}))
	assert.NoError(t, ValidateHSL(models.HSLColor{H: 0, S: 0, L: 0}))

	assert.Error(t, ValidateHSL(models.HSLColor{H: 360, S: 50, L: 50}))
	assert.Error(t, ValidateHSL(models.HSLColor{H: -1, S: 50, L: 50}))
	assert.Error(t, ValidateHSL(models.HSLColor{H: 10, S: 101, L: 50}))
	assert.Error(t, ValidateHSL(models.HSLColor{H: 10, S: 50, L: -0.5}))
}
