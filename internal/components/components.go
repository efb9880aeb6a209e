// Package components renders catalog records as Bootstrap card markup.
//
// Every renderer is a templ.Component so callers can stream it into any
// writer or collect it with RenderString. Text and attribute values are
// always HTML-escaped.
package components

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/a-h/templ"

	"github.com/conneroisu/shelfpage/internal/catalog"
	"github.com/conneroisu/shelfpage/internal/stars"
)

const (
	// DefaultCoverBase is the placeholder image service prefix.
	DefaultCoverBase = "https://via.placeholder.com/150x220"
	// FallbackCoverHex replaces a malformed cover color.
	FallbackCoverHex = "CCCCCC"
	coverForeground  = "FFFFFF"
)

// RenderString renders c into a string.
func RenderString(ctx context.Context, c templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// join concatenates the output of each component in order.
func join(parts []templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, p := range parts {
			if err := p.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// Stars renders the five-glyph rating row.
func Stars(rating float64) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		for _, g := range stars.Glyphs(rating) {
			b.WriteString(`<span class="`)
			b.WriteString(g.Tone())
			b.WriteString(` me-1"><i class="`)
			b.WriteString(g.Icon())
			b.WriteString(`"></i></span>`)
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// FormatPrice prints a price with exactly two fraction digits.
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}

// FormatRating prints a rating in its shortest form, 4.8 as "4.8" and 5 as "5".
func FormatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64)
}

// componentUnescaper restores the marks URI components leave unescaped.
var componentUnescaper = strings.NewReplacer(
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// CoverText is the placeholder caption: whitespace becomes '+', then the
// result is escaped as a URI component, so the '+' signs arrive as %2B.
func CoverText(title string) string {
	plussed := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '+'
		}
		return r
	}, title)
	return componentUnescaper.Replace(url.QueryEscape(plussed))
}

// CoverURL builds the placeholder cover image URL for b.
func CoverURL(base string, b catalog.Book) string {
	if base == "" {
		base = DefaultCoverBase
	}
	hex, ok := catalog.HexDigits(b.CoverColor)
	if !ok {
		hex = FallbackCoverHex
	}
	return strings.TrimRight(base, "/") + "/" + hex + "/" + coverForeground + "?text=" + CoverText(b.Title)
}
