package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Element is one node of a Document.
type Element struct {
	doc *Document
	sel *goquery.Selection
}

// Node returns the underlying html node.
func (e *Element) Node() *html.Node {
	return e.sel.Get(0)
}

// Attr returns an attribute value.
func (e *Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// SetAttr sets an attribute value.
func (e *Element) SetAttr(name, value string) {
	e.sel.SetAttr(name, value)
}

// HasClass reports whether the element carries class.
func (e *Element) HasClass(class string) bool {
	return e.sel.HasClass(class)
}

// Text returns the combined text content.
func (e *Element) Text() string {
	return e.sel.Text()
}

// InnerHTML returns the serialized children.
func (e *Element) InnerHTML() string {
	out, err := e.sel.Html()
	if err != nil {
		return ""
	}
	return out
}

// SetInnerHTML replaces the element's children with markup. Listeners
// attached to the old children are dropped with them.
func (e *Element) SetInnerHTML(markup string) {
	e.doc.forget(e.Node())
	e.sel.SetHtml(markup)
}

// AppendHTML parses markup and adds it after the element's last child.
func (e *Element) AppendHTML(markup string) {
	e.sel.AppendHtml(markup)
}

// Query returns the first descendant matching selector.
func (e *Element) Query(selector string) (*Element, bool) {
	found := e.sel.Find(selector).First()
	if found.Length() == 0 {
		return nil, false
	}
	return &Element{doc: e.doc, sel: found}, true
}

// QueryAll returns every descendant matching selector.
func (e *Element) QueryAll(selector string) []*Element {
	return e.doc.wrap(e.sel.Find(selector))
}

// Value returns a form control's current value.
func (e *Element) Value() string {
	v, _ := e.sel.Attr("value")
	return v
}

// SetValue sets a form control's current value.
func (e *Element) SetValue(v string) {
	e.sel.SetAttr("value", v)
}

// Style returns one inline style property, or "" when unset.
func (e *Element) Style(property string) string {
	raw, _ := e.sel.Attr("style")
	for _, d := range parseStyle(raw) {
		if d.property == property {
			return d.value
		}
	}
	return ""
}

// SetStyle sets one inline style property. An empty value removes it.
func (e *Element) SetStyle(property, value string) {
	raw, _ := e.sel.Attr("style")
	decls := parseStyle(raw)

	out := decls[:0]
	replaced := false
	for _, d := range decls {
		if d.property != property {
			out = append(out, d)
			continue
		}
		if value != "" && !replaced {
			out = append(out, declaration{property: property, value: value})
			replaced = true
		}
	}
	if value != "" && !replaced {
		out = append(out, declaration{property: property, value: value})
	}

	if len(out) == 0 {
		e.sel.RemoveAttr("style")
		return
	}
	e.sel.SetAttr("style", formatStyle(out))
}

type declaration struct {
	property string
	value    string
}

// parseStyle splits an inline style attribute into declarations.
func parseStyle(raw string) []declaration {
	var decls []declaration
	for _, part := range strings.Split(raw, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.TrimSpace(value)
		if prop == "" {
			continue
		}
		decls = append(decls, declaration{property: prop, value: value})
	}
	return decls
}

func formatStyle(decls []declaration) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.property+": "+d.value+";")
	}
	return strings.Join(parts, " ")
}
