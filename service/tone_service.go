package service

import "strings"

// Tone categories, in the order they are scanned.
const (
	ToneCategoryShaming         = "shaming"
	ToneCategoryJudgmental      = "judgmental"
	ToneCategoryNegativeFraming = "negative_framing"
	ToneCategoryComparison      = "comparison"
	ToneCategoryPressure        = "pressure"

	ToneSeverityHigh   = "high"
	ToneSeverityMedium = "medium"
)

var tonePhrases = []struct {
	category string
	severity string
	phrases  []string
}{
	{
		category: ToneCategoryShaming,
		severity: ToneSeverityHigh,
		phrases: []string{
			"you should be ashamed", "shame on you", "embarrassing",
			"irresponsible", "reckless spending", "careless with money",
			"your own fault", "you only have yourself to blame",
		},
	},
	{
		category: ToneCategoryJudgmental,
		severity: ToneSeverityHigh,
		phrases: []string{
			"bad with money", "terrible habits", "poor choices",
			"wasting money", "you failed", "financially illiterate",
			"you clearly don't", "lazy",
		},
	},
	{
		category: ToneCategoryNegativeFraming,
		severity: ToneSeverityMedium,
		phrases: []string{
			"you'll never", "hopeless", "drowning in debt",
			"out of control", "disaster", "doomed", "spiral",
		},
	},
	{
		category: ToneCategoryComparison,
		severity: ToneSeverityMedium,
		phrases: []string{
			"everyone else", "unlike most people", "people your age",
			"normal people", "falling behind your peers", "worse than average",
		},
	},
	{
		category: ToneCategoryPressure,
		severity: ToneSeverityMedium,
		phrases: []string{
			"act now", "don't wait", "last chance", "limited time",
			"before it's too late", "you must", "immediately or",
		},
	},
}

// ToneViolation is one flagged phrase in one field.
type ToneViolation struct {
	Phrase   string `json:"phrase"`
	Category string `json:"category"`
	Severity string `json:"severity"`
	Field    string `json:"field"`
}

// ToneValidationResult reports every violation found, not just the first.
type ToneValidationResult struct {
	IsValid    bool            `json:"is_valid"`
	Violations []ToneViolation `json:"violations"`
}

// ToneContent holds the text fields subject to validation. Empty fields are
// skipped.
type ToneContent struct {
	Title       string
	Description string
	Rationale   string
}

// ToneService is the lexical guardrail for dynamically generated text.
// Pre-authored catalog content is vetted before it ships and is not
// re-validated per request.
type ToneService struct{}

func NewToneService() *ToneService {
	return &ToneService{}
}

// ValidateContent scans each field case-insensitively against the phrase
// lists. Any hit is a violation.
func (s *ToneService) ValidateContent(content ToneContent) ToneValidationResult {
	result := ToneValidationResult{IsValid: true, Violations: []ToneViolation{}}

	fields := []struct {
		name string
		text string
	}{
		{"title", content.Title},
		{"description", content.Description},
		{"rationale", content.Rationale},
	}

	for _, field := range fields {
		if field.text == "" {
			continue
		}
		lowered := strings.ToLower(field.text)
		for _, group := range tonePhrases {
			for _, phrase := range group.phrases {
				if strings.Contains(lowered, phrase) {
					result.IsValid = false
					result.Violations = append(result.Violations, ToneViolation{
						Phrase:   phrase,
						Category: group.category,
						Severity: group.severity,
						Field:    field.name,
					})
				}
			}
		}
	}
	return result
}
