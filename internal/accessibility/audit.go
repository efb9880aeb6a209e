// Package accessibility checks rendered pages against a small set of WCAG
// rules that apply to the landing page's markup.
package accessibility

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Rule inspects a document and returns its violations.
type Rule struct {
	ID       string
	Severity ViolationSeverity
	Criteria WCAGCriteria
	HelpURL  string
	Check    func(root *goquery.Selection) []Finding
}

// Finding is one failing element for a rule.
type Finding struct {
	Element *goquery.Selection
	Message string
}

// DefaultRules returns the rules Audit runs.
func DefaultRules() []Rule {
	return []Rule{
		{
			ID:       "missing-alt-text",
			Severity: SeverityError,
			Criteria: Criteria1_1_1,
			HelpURL:  "https://dequeuniversity.com/rules/axe/4.4/image-alt",
			Check:    checkImageAlt,
		},
		{
			ID:       "missing-form-label",
			Severity: SeverityError,
			Criteria: Criteria3_3_2,
			HelpURL:  "https://dequeuniversity.com/rules/axe/4.4/label",
			Check:    checkFormLabels,
		},
		{
			ID:       "missing-button-text",
			Severity: SeverityError,
			Criteria: Criteria4_1_2,
			HelpURL:  "https://dequeuniversity.com/rules/axe/4.4/button-name",
			Check:    checkButtonText,
		},
		{
			ID:       "missing-page-title",
			Severity: SeverityWarning,
			Criteria: Criteria2_4_2,
			HelpURL:  "https://dequeuniversity.com/rules/axe/4.4/document-title",
			Check:    checkTitle,
		},
		{
			ID:       "missing-lang",
			Severity: SeverityWarning,
			Criteria: Criteria3_1_1,
			HelpURL:  "https://dequeuniversity.com/rules/axe/4.4/html-has-lang",
			Check:    checkLang,
		},
		{
			ID:       "icon-not-hidden",
			Severity: SeverityInfo,
			Criteria: Criteria1_1_1,
			HelpURL:  "https://fontawesome.com/docs/web/dig-deeper/accessibility",
			Check:    checkDecorativeIcons,
		},
	}
}

// Audit runs rules against root, or DefaultRules when rules is nil.
func Audit(root *goquery.Selection, rules []Rule) *Report {
	if rules == nil {
		rules = DefaultRules()
	}

	report := &Report{Counts: make(map[ViolationSeverity]int)}
	for _, rule := range rules {
		for _, f := range rule.Check(root) {
			report.Violations = append(report.Violations, Violation{
				Rule:     rule.ID,
				Severity: rule.Severity,
				Criteria: rule.Criteria,
				Selector: describe(f.Element),
				Message:  f.Message,
				HelpURL:  rule.HelpURL,
			})
			report.Counts[rule.Severity]++
		}
	}
	return report
}

func checkImageAlt(root *goquery.Selection) []Finding {
	var out []Finding
	root.Find("img").Each(func(_ int, img *goquery.Selection) {
		if role, _ := img.Attr("role"); role == "presentation" || role == "none" {
			return
		}
		// An empty alt marks a decorative image and passes.
		if _, ok := img.Attr("alt"); !ok {
			out = append(out, Finding{img, "Image missing alt attribute"})
		}
	})
	return out
}

func checkFormLabels(root *goquery.Selection) []Finding {
	var out []Finding
	root.Find("input, select, textarea").Each(func(_ int, field *goquery.Selection) {
		if typ, _ := field.Attr("type"); typ == "hidden" || typ == "submit" || typ == "button" {
			return
		}
		if accessibleName(field) != "" {
			return
		}
		if id, ok := field.Attr("id"); ok && id != "" {
			if root.Find(`label[for="` + id + `"]`).Length() > 0 {
				return
			}
		}
		if field.ParentsFiltered("label").Length() > 0 {
			return
		}
		out = append(out, Finding{field, "Form field has no label"})
	})
	return out
}

func checkButtonText(root *goquery.Selection) []Finding {
	var out []Finding
	root.Find("button").Each(func(_ int, btn *goquery.Selection) {
		if strings.TrimSpace(btn.Text()) == "" && accessibleName(btn) == "" {
			out = append(out, Finding{btn, "Button has no discernible text"})
		}
	})
	return out
}

func checkTitle(root *goquery.Selection) []Finding {
	title := root.Find("head title").First()
	if title.Length() == 0 || strings.TrimSpace(title.Text()) == "" {
		return []Finding{{root.Find("head").First(), "Document has no title"}}
	}
	return nil
}

func checkLang(root *goquery.Selection) []Finding {
	html := root.Find("html").First()
	if lang, _ := html.Attr("lang"); strings.TrimSpace(lang) == "" {
		return []Finding{{html, "The html element has no lang attribute"}}
	}
	return nil
}

func checkDecorativeIcons(root *goquery.Selection) []Finding {
	var out []Finding
	root.Find(`i[class*="fa-"]`).Each(func(_ int, icon *goquery.Selection) {
		if !isHidden(icon) && accessibleName(icon) == "" {
			out = append(out, Finding{icon, "Icon font glyph is announced by screen readers; add aria-hidden=\"true\""})
		}
	})
	return out
}

func accessibleName(s *goquery.Selection) string {
	for _, attr := range []string{"aria-label", "aria-labelledby", "title"} {
		if v, ok := s.Attr(attr); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func isHidden(s *goquery.Selection) bool {
	v, _ := s.Attr("aria-hidden")
	return v == "true"
}

// describe renders a short tag#id.class selector for s.
func describe(s *goquery.Selection) string {
	if s == nil || s.Length() == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(goquery.NodeName(s))
	if id, ok := s.Attr("id"); ok && id != "" {
		b.WriteString("#" + id)
	}
	if class, ok := s.Attr("class"); ok {
		for _, c := range strings.Fields(class) {
			b.WriteString("." + c)
		}
	}
	return b.String()
}
