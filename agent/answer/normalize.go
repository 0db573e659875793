// Package answer owns the structured contract between the curator model and
// the rendering stage, plus the defensive repair pass for the output
// deviations language models are known for.
package answer

import (
	"regexp"
	"strings"
)

var (
	openingFence = regexp.MustCompile("(?m)^```(?:json)?\\s*")
	closingFence = regexp.MustCompile("(?m)\\s*```$")

	// Bare scripting-language literals in place of JSON ones. A blind token
	// rewrite, deliberately: this repairs known model deviations before the
	// parse, it is not a parser extension.
	pyTrue  = regexp.MustCompile(`\bTrue\b`)
	pyFalse = regexp.MustCompile(`\bFalse\b`)
	pyNone  = regexp.MustCompile(`\bNone\b`)
)

// Normalize strips markdown code-fence wrappers and rewrites Python-style
// True/False/None tokens to their JSON forms.
func Normalize(raw string) string {
	cleaned := openingFence.ReplaceAllString(raw, "")
	cleaned = closingFence.ReplaceAllString(cleaned, "")
	cleaned = pyTrue.ReplaceAllString(cleaned, "true")
	cleaned = pyFalse.ReplaceAllString(cleaned, "false")
	cleaned = pyNone.ReplaceAllString(cleaned, "null")
	return strings.TrimSpace(cleaned)
}
