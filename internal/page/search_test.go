package page

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/shelfpage/internal/dom"
	"github.com/conneroisu/shelfpage/internal/logging"
)

func wiredSearch(t *testing.T) (*dom.Element, *dom.Element, *RecordingNotifier) {
	t.Helper()

	doc, err := dom.Parse(DefaultHost())
	require.NoError(t, err)

	notifier := &RecordingNotifier{}
	sel := DefaultSelectors()
	require.True(t, WireSearch(context.Background(), doc, sel.SearchInput, sel.SearchButton, notifier, logging.NewNopLogger()))

	input, ok := doc.Find(sel.SearchInput...)
	require.True(t, ok)
	button, ok := doc.Find(sel.SearchButton...)
	require.True(t, ok)
	return input, button, notifier
}

func TestSearchAcknowledgesAndClears(t *testing.T) {
	input, button, notifier := wiredSearch(t)

	input.SetValue("  Dune ")
	button.Click()

	require.Len(t, notifier.Messages, 1)
	assert.Equal(t, `Searching for: "Dune"... (Imagine a search results page here!)`, notifier.Last())
	assert.Equal(t, "", input.Value())
}

func TestSearchEmptyQueryPrompts(t *testing.T) {
	input, button, notifier := wiredSearch(t)

	input.SetValue("   ")
	button.Click()

	assert.Equal(t, []string{EmptyQueryMessage}, notifier.Messages)
	assert.Equal(t, "   ", input.Value())
}

func TestSearchEnterKeyClicks(t *testing.T) {
	input, _, notifier := wiredSearch(t)

	input.SetValue("Bruja Born")
	input.PressKey("a")
	assert.Empty(t, notifier.Messages)

	input.PressKey(dom.KeyEnter)
	assert.Equal(t, SearchMessage("Bruja Born"), notifier.Last())
	assert.Equal(t, "", input.Value())
}

func TestSearchQuotesAreKeptVerbatim(t *testing.T) {
	input, button, notifier := wiredSearch(t)

	input.SetValue(`the "silent" code`)
	button.Click()
	assert.Equal(t, `Searching for: "the "silent" code"... (Imagine a search results page here!)`, notifier.Last())
}

func TestSearchSkippedWithoutElements(t *testing.T) {
	testCases := []struct {
		name string
		html string
	}{
		{"no input", `<html><body><button id="addTaskBtn">Go</button></body></html>`},
		{"no button", `<html><body><input id="taskInput"></body></html>`},
		{"neither", `<html><body></body></html>`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := dom.ParseString(tc.html)
			require.NoError(t, err)

			notifier := &RecordingNotifier{}
			sel := DefaultSelectors()
			assert.False(t, WireSearch(context.Background(), doc, sel.SearchInput, sel.SearchButton, notifier, nil))

			if button, ok := doc.Find(sel.SearchButton...); ok {
				assert.Equal(t, 0, button.Click())
			}
			assert.Empty(t, notifier.Messages)
		})
	}
}

func TestNotifiers(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	WriterNotifier{W: &buf}.Alert(ctx, "hello")
	assert.Equal(t, "hello\n", buf.String())

	var got string
	NotifierFunc(func(_ context.Context, msg string) { got = msg }).Alert(ctx, "fn")
	assert.Equal(t, "fn", got)

	var logBuf bytes.Buffer
	logger := logging.NewLogger(&logging.LoggerConfig{Level: logging.LevelInfo, Output: &logBuf})
	LogNotifier{Logger: logger}.Alert(ctx, "logged")
	assert.Contains(t, logBuf.String(), "message=logged")

	assert.NotPanics(t, func() { LogNotifier{}.Alert(ctx, "dropped") })
	assert.Equal(t, "", (&RecordingNotifier{}).Last())
}
