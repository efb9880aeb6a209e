package stars

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounts(t *testing.T) {
	testCases := []struct {
		name   string
		rating float64
		full   int
		half   int
		empty  int
	}{
		{"zero", 0, 0, 0, 5},
		{"just under half", 2.49, 2, 0, 3},
		{"exact half", 4.5, 4, 1, 0},
		{"high fraction is half not full", 4.8, 4, 1, 0},
		{"low fraction", 4.2, 4, 0, 1},
		{"whole", 3, 3, 0, 2},
		{"max", 5, 5, 0, 0},
		{"negative clamps to zero", -2, 0, 0, 5},
		{"above max clamps", 7.5, 5, 0, 0},
		{"nan is zero", math.NaN(), 0, 0, 5},
		{"positive infinity", math.Inf(1), 5, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			full, half, empty := Counts(tc.rating)
			assert.Equal(t, tc.full, full, "full")
			assert.Equal(t, tc.half, half, "half")
			assert.Equal(t, tc.empty, empty, "empty")
		})
	}
}

func TestGlyphsOrder(t *testing.T) {
	assert.Equal(t, []Glyph{Full, Full, Full, Full, Half}, Glyphs(4.9))
	assert.Equal(t, []Glyph{Full, Full, Empty, Empty, Empty}, Glyphs(2.1))
	assert.Equal(t, []Glyph{Half, Empty, Empty, Empty, Empty}, Glyphs(0.5))
}

func TestGlyphClasses(t *testing.T) {
	assert.Equal(t, "fas fa-star", Full.Icon())
	assert.Equal(t, "fas fa-star-half-alt", Half.Icon())
	assert.Equal(t, "far fa-star", Empty.Icon())

	assert.Equal(t, "text-warning", Full.Tone())
	assert.Equal(t, "text-warning", Half.Tone())
	assert.Equal(t, "text-secondary", Empty.Tone())

	assert.Equal(t, "half", Half.String())
	assert.Equal(t, "unknown", Glyph(9).String())
}
