package answer

import (
	"encoding/json"
	"fmt"
	"strings"

	contractx "github.com/paxbot/curator-agent/agent/contract"
)

// Decode normalizes raw model output and parses it as a QueryResult. The
// second return is the cleaned text; when ok is false the caller passes that
// text through unrendered instead of failing the turn.
func Decode(raw string) (contractx.QueryResult, string, bool) {
	cleaned := Normalize(raw)

	var result contractx.QueryResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return contractx.QueryResult{}, cleaned, false
	}
	if err := Validate(&result); err != nil {
		return contractx.QueryResult{}, cleaned, false
	}
	return result, cleaned, true
}

// Validate enforces the schema's omission rules in place: required name and
// address per restaurant, at most five restaurants, and a features map
// holding only true-valued keys.
func Validate(result *contractx.QueryResult) error {
	if result == nil {
		return fmt.Errorf("%w: nil result", contractx.ErrValidation)
	}
	if strings.TrimSpace(result.Message) == "" && len(result.Restaurants) == 0 {
		return fmt.Errorf("%w: empty message and no restaurants", contractx.ErrSchemaViolation)
	}
	if len(result.Restaurants) > contractx.MaxRestaurants {
		result.Restaurants = result.Restaurants[:contractx.MaxRestaurants]
	}

	for i := range result.Restaurants {
		r := &result.Restaurants[i]
		if strings.TrimSpace(r.Name) == "" {
			return fmt.Errorf("%w: restaurant %d has no name", contractx.ErrSchemaViolation, i)
		}
		if strings.TrimSpace(r.Address) == "" {
			return fmt.Errorf("%w: restaurant %q has no address", contractx.ErrSchemaViolation, r.Name)
		}
		// Only true-valued capability keys may survive; false keys are the
		// producer writing placeholders in disguise.
		for key, val := range r.Features {
			if !val {
				delete(r.Features, key)
			}
		}
		if len(r.Features) == 0 {
			r.Features = nil
		}
	}
	return nil
}
