package components

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/conneroisu/shelfpage/internal/catalog"
)

// BookCardClass marks each rendered bestseller card.
const BookCardClass = "book-card"

// BookCard renders one bestseller. coverBase is the placeholder image
// service prefix; empty means DefaultCoverBase.
func BookCard(book catalog.Book, coverBase string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := templ.EscapeString(book.Title)

		var b strings.Builder
		b.WriteString(`<div class="col-6 col-md-4 col-lg-2-5 mb-4">`)
		b.WriteString(`<div class="` + BookCardClass + ` card h-100 shadow-sm text-center">`)
		b.WriteString(`<img src="` + templ.EscapeString(CoverURL(coverBase, book)) + `" class="card-img-top p-3" alt="Book Cover: ` + title + `">`)
		b.WriteString(`<div class="card-body p-2">`)
		b.WriteString(`<h6 class="card-title mb-1">` + title + `</h6>`)
		b.WriteString(`<p class="card-text text-muted small mb-1">By ` + templ.EscapeString(book.Author) + `</p>`)
		b.WriteString(`<div class="d-flex justify-content-center align-items-center mb-2">`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if err := Stars(book.Rating).Render(ctx, w); err != nil {
			return err
		}

		b.Reset()
		b.WriteString(`<span class="small text-muted">` + FormatRating(book.Rating) + `</span>`)
		b.WriteString(`</div>`)
		b.WriteString(`<span class="fw-bold text-primary">$` + FormatPrice(book.Price) + `</span>`)
		b.WriteString(`</div></div></div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// BestsellerList renders every book in order.
func BestsellerList(books []catalog.Book, coverBase string) templ.Component {
	parts := make([]templ.Component, 0, len(books))
	for _, book := range books {
		parts = append(parts, BookCard(book, coverBase))
	}
	return join(parts)
}
