package evals

import (
	"fmt"
	"strings"
)

const minResponseLength = 100

// RuleChecks runs the deterministic checks over a rendered response. Keys map
// to pass/fail; failing keys name the violated rule.
func RuleChecks(response string, c Case) map[string]bool {
	results := map[string]bool{
		"non_empty":                  len(strings.TrimSpace(response)) > minResponseLength,
		"valid_html":                 strings.Contains(strings.ToLower(response), "<html"),
		"no_description_placeholder": !strings.Contains(response, "Description not available"),
		"no_hours_placeholder":       !strings.Contains(response, "Hours: Not available"),
	}

	for _, banned := range c.MustNotContain {
		key := banned
		if len(key) > 30 {
			key = key[:30]
		}
		results[fmt.Sprintf("not_contains:%s", key)] = !strings.Contains(response, banned)
	}

	return results
}

// AllPassed reports whether every rule check held.
func AllPassed(results map[string]bool) bool {
	for _, ok := range results {
		if !ok {
			return false
		}
	}
	return true
}
