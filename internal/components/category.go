package components

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/conneroisu/shelfpage/internal/catalog"
)

// CategoryCardClass marks each rendered category card.
const CategoryCardClass = "category-card"

// ColorAttr carries a card's original color so hover-out can restore it.
const ColorAttr = "data-color"

// CategoryCard renders one category as a grid column holding a card.
func CategoryCard(c catalog.Category) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		color := templ.EscapeString(c.Color)

		var b strings.Builder
		b.WriteString(`<div class="col-6 col-md-4 col-lg-3 mb-4">`)
		b.WriteString(`<div class="` + CategoryCardClass + ` card text-center p-3 shadow-sm h-100" ` + ColorAttr + `="` + color + `">`)
		b.WriteString(`<div class="card-body">`)
		b.WriteString(`<i class="` + templ.EscapeString(c.Icon) + ` fa-2x mb-3" style="color: ` + color + `;"></i>`)
		b.WriteString(`<h5 class="card-title">` + templ.EscapeString(c.Title) + `</h5>`)
		b.WriteString(`<p class="card-text text-muted">` + strconv.Itoa(c.Count) + `+ Books</p>`)
		b.WriteString(`</div></div></div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// CategoryList renders every category in order.
func CategoryList(cs []catalog.Category) templ.Component {
	parts := make([]templ.Component, 0, len(cs))
	for _, c := range cs {
		parts = append(parts, CategoryCard(c))
	}
	return join(parts)
}
