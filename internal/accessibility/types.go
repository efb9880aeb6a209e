package accessibility

// WCAGCriteria is a WCAG 2.1 success criterion number.
type WCAGCriteria string

const (
	Criteria1_1_1 WCAGCriteria = "1.1.1" // Non-text Content
	Criteria2_4_2 WCAGCriteria = "2.4.2" // Page Titled
	Criteria3_1_1 WCAGCriteria = "3.1.1" // Language of Page
	Criteria3_3_2 WCAGCriteria = "3.3.2" // Labels or Instructions
	Criteria4_1_2 WCAGCriteria = "4.1.2" // Name, Role, Value
)

// ViolationSeverity represents the severity level of an accessibility violation.
type ViolationSeverity string

const (
	SeverityError   ViolationSeverity = "error"
	SeverityWarning ViolationSeverity = "warning"
	SeverityInfo    ViolationSeverity = "info"
)

// Violation is one issue found on the page.
type Violation struct {
	Rule     string            `json:"rule"`
	Severity ViolationSeverity `json:"severity"`
	Criteria WCAGCriteria      `json:"wcag"`
	Selector string            `json:"selector"`
	Message  string            `json:"message"`
	HelpURL  string            `json:"help_url"`
}

// Report summarizes an audit.
type Report struct {
	Violations []Violation                `json:"violations"`
	Counts     map[ViolationSeverity]int `json:"counts"`
}

// HasErrors reports whether any violation is error severity.
func (r *Report) HasErrors() bool {
	return r.Counts[SeverityError] > 0
}
