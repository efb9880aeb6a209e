// Package page is the landing page script: on the ready signal it renders
// the category shelf and the bestseller table into their containers, binds
// the category hover effect, and wires the hero search box.
package page

import (
	"context"
	"io"

	"github.com/conneroisu/shelfpage/internal/catalog"
	"github.com/conneroisu/shelfpage/internal/components"
	"github.com/conneroisu/shelfpage/internal/dom"
	"github.com/conneroisu/shelfpage/internal/logging"
)

// DefaultHighlightColor is the icon color while a category card is hovered.
const DefaultHighlightColor = "#fff"

// Selectors lists, per region, a primary selector followed by fallbacks.
type Selectors struct {
	Categories   []string
	Bestsellers  []string
	SearchInput  []string
	SearchButton []string
}

// DefaultSelectors returns the selectors of the stock host page.
func DefaultSelectors() Selectors {
	return Selectors{
		Categories:   []string{"#categories", ".categories-section .row"},
		Bestsellers:  []string{"#bestsellers", ".bestsellers-section .row"},
		SearchInput:  []string{"#taskInput", ".hero-section .form-control"},
		SearchButton: []string{"#addTaskBtn", ".hero-section .btn-primary"},
	}
}

// Options configures a Page. Zero values fall back to defaults.
type Options struct {
	Selectors      Selectors
	HighlightColor string
	CoverBase      string
	Categories     []catalog.Category
	Books          []catalog.Book
	Notifier       Notifier
	Logger         logging.Logger
}

// Host is the document a Page scripts.
type Host interface {
	Finder
	OnReady(fn func())
}

// Page binds catalog rendering and interactions to one document.
type Page struct {
	host     Host
	opts     Options
	logger   logging.Logger
	notifier Notifier
}

// New validates the catalog and returns a Page for host. The catalog
// defaults to the built-in tables.
func New(host Host, opts Options) (*Page, error) {
	if opts.Categories == nil {
		opts.Categories = catalog.Categories()
	}
	if opts.Books == nil {
		opts.Books = catalog.Bestsellers()
	}
	if err := catalog.Validate(opts.Categories, opts.Books); err != nil {
		return nil, err
	}

	defaults := DefaultSelectors()
	if len(opts.Selectors.Categories) == 0 {
		opts.Selectors.Categories = defaults.Categories
	}
	if len(opts.Selectors.Bestsellers) == 0 {
		opts.Selectors.Bestsellers = defaults.Bestsellers
	}
	if len(opts.Selectors.SearchInput) == 0 {
		opts.Selectors.SearchInput = defaults.SearchInput
	}
	if len(opts.Selectors.SearchButton) == 0 {
		opts.Selectors.SearchButton = defaults.SearchButton
	}
	if opts.HighlightColor == "" {
		opts.HighlightColor = DefaultHighlightColor
	}
	if opts.CoverBase == "" {
		opts.CoverBase = components.DefaultCoverBase
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	logger = logger.WithComponent("page")

	notifier := opts.Notifier
	if notifier == nil {
		notifier = LogNotifier{Logger: logger}
	}

	return &Page{host: host, opts: opts, logger: logger, notifier: notifier}, nil
}

// Mount registers the ready-time render and wires the search box. It
// reports whether the search box was found.
func (p *Page) Mount(ctx context.Context) bool {
	p.host.OnReady(func() {
		p.logger.Info(ctx, "DOM loaded. Rendering dynamic content...")
		p.RenderCategories(ctx)
		p.RenderBestsellers(ctx)
	})

	return WireSearch(ctx, p.host, p.opts.Selectors.SearchInput, p.opts.Selectors.SearchButton, p.notifier, p.logger)
}

// RenderCategories fills the category container and binds hover effects
// on the new cards. A missing container is a silent no-op.
func (p *Page) RenderCategories(ctx context.Context) bool {
	container, ok := p.host.Find(p.opts.Selectors.Categories...)
	if !ok {
		p.logger.Debug(ctx, "Category container not found", "selectors", p.opts.Selectors.Categories)
		return false
	}

	markup, err := components.RenderString(ctx, components.CategoryList(p.opts.Categories))
	if err != nil {
		p.logger.Error(ctx, err, "Category render failed")
		return false
	}
	container.SetInnerHTML(markup)

	bound := p.bindCategoryHover(container)
	p.logger.Debug(ctx, "Categories rendered", "count", len(p.opts.Categories), "hover_bound", bound)
	return true
}

// bindCategoryHover swaps each card's icon to the highlight color on
// mouseover and restores the card's data-color on mouseout. The color is
// read from the attribute when binding; a missing one restores blank.
func (p *Page) bindCategoryHover(container *dom.Element) int {
	cards := container.QueryAll("." + components.CategoryCardClass)
	for _, card := range cards {
		icon, hasIcon := card.Query("i")
		color, _ := card.Attr(components.ColorAttr)

		card.AddEventListener(dom.EventMouseOver, func(dom.Event) {
			if hasIcon {
				icon.SetStyle("color", p.opts.HighlightColor)
			}
		})
		card.AddEventListener(dom.EventMouseOut, func(dom.Event) {
			if hasIcon {
				icon.SetStyle("color", color)
			}
		})
	}
	return len(cards)
}

// RenderBestsellers fills the bestseller container. A missing container
// is a silent no-op.
func (p *Page) RenderBestsellers(ctx context.Context) bool {
	container, ok := p.host.Find(p.opts.Selectors.Bestsellers...)
	if !ok {
		p.logger.Debug(ctx, "Bestseller container not found", "selectors", p.opts.Selectors.Bestsellers)
		return false
	}

	markup, err := components.RenderString(ctx, components.BestsellerList(p.opts.Books, p.opts.CoverBase))
	if err != nil {
		p.logger.Error(ctx, err, "Bestseller render failed")
		return false
	}
	container.SetInnerHTML(markup)

	p.logger.Debug(ctx, "Bestsellers rendered", "count", len(p.opts.Books))
	return true
}

// Load parses source, mounts a Page on it and fires the ready signal.
func Load(ctx context.Context, source io.Reader, opts Options) (*dom.Document, error) {
	doc, err := dom.Parse(source)
	if err != nil {
		return nil, err
	}

	p, err := New(doc, opts)
	if err != nil {
		return nil, err
	}

	p.Mount(ctx)
	doc.Ready()
	return doc, nil
}
