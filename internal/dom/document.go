// Package dom is a small in-memory document model for the landing page.
//
// A Document wraps a parsed HTML tree (goquery over x/net/html) and adds the
// pieces a page script relies on: locating optional elements by a list of
// selectors, replacing an element's contents, inline style access, and a
// synchronous event listener registry with a one-shot ready signal.
//
// A Document is not safe for concurrent use. Listeners run to completion
// inside Dispatch, in registration order. Events do not bubble.
package dom

import (
	"bytes"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	shelferrors "github.com/conneroisu/shelfpage/internal/errors"
)

// Document is a parsed page plus its listener registry.
type Document struct {
	doc       *goquery.Document
	listeners map[*html.Node]map[EventType][]Listener
	ready     []func()
	fired     bool
}

// Parse reads a full HTML page.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, shelferrors.NewIOError(shelferrors.ErrCodeParseFailed, "cannot parse host page", err)
	}
	return &Document{
		doc:       doc,
		listeners: make(map[*html.Node]map[EventType][]Listener),
	}, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Find returns the first element matched by the first selector that
// matches anything. Later selectors are fallbacks. ok is false when none
// match; an invalid selector simply matches nothing.
func (d *Document) Find(selectors ...string) (*Element, bool) {
	for _, sel := range selectors {
		if strings.TrimSpace(sel) == "" {
			continue
		}
		if found := d.doc.Find(sel).First(); found.Length() > 0 {
			return &Element{doc: d, sel: found}, true
		}
	}
	return nil, false
}

// QueryAll returns every element matching selector in document order.
func (d *Document) QueryAll(selector string) []*Element {
	return d.wrap(d.doc.Find(selector))
}

func (d *Document) wrap(s *goquery.Selection) []*Element {
	out := make([]*Element, 0, s.Length())
	s.Each(func(_ int, item *goquery.Selection) {
		out = append(out, &Element{doc: d, sel: item})
	})
	return out
}

// OnReady registers fn to run when Ready fires. Registering after the
// signal has fired does nothing, matching a page that has already loaded.
func (d *Document) OnReady(fn func()) {
	if fn == nil || d.fired {
		return
	}
	d.ready = append(d.ready, fn)
}

// Ready fires the ready signal once, running listeners in registration
// order. It reports whether this call fired the signal.
func (d *Document) Ready() bool {
	if d.fired {
		return false
	}
	d.fired = true

	pending := d.ready
	d.ready = nil
	for _, fn := range pending {
		fn()
	}
	return true
}

// Loaded reports whether Ready has fired.
func (d *Document) Loaded() bool {
	return d.fired
}

// Root returns the goquery selection for the whole document.
func (d *Document) Root() *goquery.Selection {
	return d.doc.Selection
}

// Render writes the whole page.
func (d *Document) Render(w io.Writer) error {
	for _, n := range d.doc.Nodes {
		if err := html.Render(w, n); err != nil {
			return shelferrors.NewIOError(shelferrors.ErrCodeRenderFailed, "cannot render page", err)
		}
	}
	return nil
}

// HTML returns the whole page as a string.
func (d *Document) HTML() (string, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// forget drops listeners for every node under n, n excluded.
func (d *Document) forget(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		delete(d.listeners, c)
		d.forget(c)
	}
}
