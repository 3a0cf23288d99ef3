// Package intel holds the lead-intelligence primitives: signal extraction,
// lead scoring, and status classification. Everything here is a pure function
// so the session pipeline stays deterministic and replayable.
package intel

import "strings"

type Strength string

const (
	StrengthLow    Strength = "low"
	StrengthMedium Strength = "medium"
	StrengthHigh   Strength = "high"
)

// Indicator names emitted by Extract.
const (
	IndicatorBudget   = "budget_inquiry"
	IndicatorTimeline = "timeline_mentioned"
	IndicatorBusiness = "business_inquiry"
)

// Signals is the extractor output for a single utterance.
type Signals struct {
	Indicators []string `json:"indicators,omitempty"`
	Strength   Strength `json:"strength"`
}

var (
	budgetTerms   = []string{"budget", "cost", "price", "investment"}
	timelineTerms = []string{"when", "timeline", "urgent", "asap", "deadline", "next week", "next month"}
	intentPhrases = []string{"need help", "looking for", "want to"}
	orgTerms      = []string{"company", "business", "enterprise", "team"}
)

// Extract scans one utterance for lexical lead cues. Case-insensitive,
// no side effects; the same utterance always yields the same signals.
// High-intent phrasing wins the strength label, but indicators from every
// matched category accumulate independently.
func Extract(utterance string) Signals {
	lower := strings.ToLower(strings.TrimSpace(utterance))
	out := Signals{Strength: StrengthLow}
	if lower == "" {
		return out
	}

	if containsAny(lower, budgetTerms) {
		out.Indicators = append(out.Indicators, IndicatorBudget)
		out.Strength = StrengthMedium
	}
	if containsAny(lower, timelineTerms) {
		out.Indicators = append(out.Indicators, IndicatorTimeline)
		out.Strength = StrengthMedium
	}
	if containsAny(lower, intentPhrases) {
		out.Strength = StrengthHigh
	}
	if containsAny(lower, orgTerms) {
		out.Indicators = append(out.Indicators, IndicatorBusiness)
	}
	return out
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
