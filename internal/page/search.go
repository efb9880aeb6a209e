package page

import (
	"context"
	"fmt"
	"strings"

	"github.com/conneroisu/shelfpage/internal/dom"
	"github.com/conneroisu/shelfpage/internal/logging"
)

// EmptyQueryMessage is shown when the search box is blank.
const EmptyQueryMessage = "Please enter a search query."

// SearchMessage is the acknowledgment shown for query.
func SearchMessage(query string) string {
	return fmt.Sprintf(`Searching for: "%s"... (Imagine a search results page here!)`, query)
}

// Finder locates an optional element by a primary selector and fallbacks.
type Finder interface {
	Find(selectors ...string) (*dom.Element, bool)
}

// WireSearch attaches the search handlers. The button's click reads and
// trims the input; a non-empty query is acknowledged and the input cleared,
// an empty one gets a prompt. Enter in the input clicks the button. If
// either element is missing nothing is wired and WireSearch returns false.
func WireSearch(ctx context.Context, doc Finder, inputSelectors, buttonSelectors []string, notifier Notifier, logger logging.Logger) bool {
	input, hasInput := doc.Find(inputSelectors...)
	button, hasButton := doc.Find(buttonSelectors...)
	if !hasInput || !hasButton {
		if logger != nil {
			logger.Debug(ctx, "Search box not found, skipping wiring",
				"input_found", hasInput,
				"button_found", hasButton)
		}
		return false
	}
	if notifier == nil {
		notifier = LogNotifier{Logger: logger}
	}

	button.AddEventListener(dom.EventClick, func(dom.Event) {
		query := strings.TrimSpace(input.Value())
		if query == "" {
			notifier.Alert(ctx, EmptyQueryMessage)
			return
		}
		notifier.Alert(ctx, SearchMessage(query))
		input.SetValue("")
	})

	input.AddEventListener(dom.EventKeyPress, func(ev dom.Event) {
		if ev.Key == dom.KeyEnter {
			button.Click()
		}
	})

	return true
}
