package accessibility

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/shelfpage/internal/page"
)

func audit(t *testing.T, markup string) *Report {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return Audit(doc.Selection, nil)
}

func rules(r *Report) []string {
	out := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		out = append(out, v.Rule)
	}
	return out
}

func TestAuditFlagsBrokenMarkup(t *testing.T) {
	report := audit(t, `<html><head></head><body>
<img src="cover.png">
<input id="q" type="text">
<button class="btn"></button>
<i class="fas fa-star"></i>
</body></html>`)

	assert.Equal(t, []string{
		"missing-alt-text",
		"missing-form-label",
		"missing-button-text",
		"missing-page-title",
		"missing-lang",
		"icon-not-hidden",
	}, rules(report))
	assert.True(t, report.HasErrors())
	assert.Equal(t, 3, report.Counts[SeverityError])
	assert.Equal(t, 2, report.Counts[SeverityWarning])
	assert.Equal(t, 1, report.Counts[SeverityInfo])

	assert.Equal(t, "input#q", report.Violations[1].Selector)
	assert.Equal(t, "button.btn", report.Violations[2].Selector)
	assert.Equal(t, Criteria1_1_1, report.Violations[0].Criteria)
}

func TestAuditAcceptsLabelledMarkup(t *testing.T) {
	report := audit(t, `<html lang="en"><head><title>Shop</title></head><body>
<img src="spacer.png" alt="">
<label for="q">Search</label><input id="q">
<label>Email <input type="email"></label>
<input type="hidden" name="token">
<button aria-label="Close"><i class="fas fa-xmark" aria-hidden="true"></i></button>
<button>Search</button>
</body></html>`)

	assert.Empty(t, report.Violations)
	assert.False(t, report.HasErrors())
}

func TestAuditRenderedLandingPage(t *testing.T) {
	doc, err := page.Load(context.Background(), page.DefaultHost(), page.Options{})
	require.NoError(t, err)

	report := Audit(doc.Root(), nil)
	assert.False(t, report.HasErrors(), "violations: %v", report.Violations)
	assert.Zero(t, report.Counts[SeverityWarning])
	// Category icons plus five star glyphs per bestseller.
	assert.Equal(t, 8+8*5, report.Counts[SeverityInfo])
}

func TestAuditCustomRules(t *testing.T) {
	only := []Rule{DefaultRules()[0]}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<img src="a"><button></button>`))
	require.NoError(t, err)

	report := Audit(doc.Selection, only)
	assert.Equal(t, []string{"missing-alt-text"}, rules(report))
}
