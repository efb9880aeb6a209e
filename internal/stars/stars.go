// Package stars turns a numeric rating into a fixed row of five glyphs.
package stars

import "math"

// Total is the number of glyphs in every row.
const Total = 5

// Glyph is one position in a star row.
type Glyph int

const (
	Full Glyph = iota
	Half
	Empty
)

// String returns the glyph name.
func (g Glyph) String() string {
	switch g {
	case Full:
		return "full"
	case Half:
		return "half"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

// Icon returns the icon-font class for the glyph.
func (g Glyph) Icon() string {
	switch g {
	case Full:
		return "fas fa-star"
	case Half:
		return "fas fa-star-half-alt"
	default:
		return "far fa-star"
	}
}

// Tone returns the text color class wrapping the glyph.
func (g Glyph) Tone() string {
	if g == Empty {
		return "text-secondary"
	}
	return "text-warning"
}

// Clamp limits a rating to [0, Total]. NaN is treated as 0.
func Clamp(rating float64) float64 {
	switch {
	case math.IsNaN(rating), rating < 0:
		return 0
	case rating > Total:
		return Total
	}
	return rating
}

// Counts splits a rating into full, half and empty glyph counts.
// A half glyph is used when the fractional part is at least 0.5;
// ratings are never rounded up to the next full star.
func Counts(rating float64) (full, half, empty int) {
	r := Clamp(rating)
	full = int(math.Floor(r))
	if math.Mod(r, 1) >= 0.5 {
		half = 1
	}
	empty = Total - full - half
	return full, half, empty
}

// Glyphs returns the row for rating: full glyphs, then at most one half
// glyph, then empty glyphs. The result always has Total entries.
func Glyphs(rating float64) []Glyph {
	full, half, empty := Counts(rating)

	row := make([]Glyph, 0, Total)
	for i := 0; i < full; i++ {
		row = append(row, Full)
	}
	if half == 1 {
		row = append(row, Half)
	}
	for i := 0; i < empty; i++ {
		row = append(row, Empty)
	}
	return row
}
