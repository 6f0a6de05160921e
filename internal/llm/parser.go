package llm

import (
	"regexp"
	"strings"

	"github.com/sevigo/code-sage/internal/core"
)

var (
	// Everything after the first "Summary:" up to the first following
	// "Suggestions:" or the end of the reply.
	summaryRegex = regexp.MustCompile(`(?is)Summary:(.*?)(Suggestions:|$)`)
	// Everything after the first "Suggestions:".
	suggestionsRegex = regexp.MustCompile(`(?is)Suggestions:(.*)`)
	lineBreakRegex   = regexp.MustCompile(`\n|\r`)
)

// ParseReview extracts the summary and suggestions from a raw model reply.
// The two sections are scanned independently and a missing label leaves the
// matching field empty; parsing never fails.
//
// Every non-blank line after "Suggestions:" becomes a suggestion, list markers
// included. That also captures the example code block and closing
// recommendation the prompt asks for.
func ParseReview(raw string) *core.ReviewResult {
	result := core.NewReviewResult()

	if m := summaryRegex.FindStringSubmatch(raw); m != nil {
		result.Summary = strings.TrimSpace(m[1])
	}

	if m := suggestionsRegex.FindStringSubmatch(raw); m != nil {
		for _, line := range lineBreakRegex.Split(m[1], -1) {
			if line = strings.TrimSpace(line); line != "" {
				result.Suggestions = append(result.Suggestions, line)
			}
		}
	}

	return result
}

// hasSections reports whether raw carries both section labels.
func hasSections(raw string) bool {
	return summaryRegex.MatchString(raw) && suggestionsRegex.MatchString(raw)
}
