package evals

import (
	"context"
	"errors"
	"strings"
	"testing"

	contractx "github.com/paxbot/curator-agent/agent/contract"
)

func TestRuleChecksPassOnGoodResponse(t *testing.T) {
	t.Parallel()

	response := "<html><body>" + strings.Repeat("A fine recommendation. ", 10) + "</body></html>"
	results := RuleChecks(response, Case{Name: "basic"})
	if !AllPassed(results) {
		t.Fatalf("expected all checks to pass: %v", results)
	}
}

func TestRuleChecksCatchPlaceholders(t *testing.T) {
	t.Parallel()

	response := "<html>" + strings.Repeat("x", 120) + "Description not available</html>"
	results := RuleChecks(response, Case{Name: "basic"})
	if results["no_description_placeholder"] {
		t.Fatal("description placeholder must fail its check")
	}

	response = "<html>" + strings.Repeat("x", 120) + "Hours: Not available</html>"
	results = RuleChecks(response, Case{Name: "basic"})
	if results["no_hours_placeholder"] {
		t.Fatal("hours placeholder must fail its check")
	}
}

func TestRuleChecksShortOrNonHTML(t *testing.T) {
	t.Parallel()

	results := RuleChecks("too short", Case{Name: "basic"})
	if results["non_empty"] {
		t.Fatal("short responses must fail non_empty")
	}
	if results["valid_html"] {
		t.Fatal("plain text must fail valid_html")
	}
}

func TestRuleChecksMustNotContain(t *testing.T) {
	t.Parallel()

	c := Case{
		Name:           "wheelchair",
		MustNotContain: []string{"Wheelchair Accessible Entrance: Not available"},
	}
	response := "<html>" + strings.Repeat("x", 120) + "Wheelchair Accessible Entrance: Not available</html>"
	results := RuleChecks(response, c)
	if AllPassed(results) {
		t.Fatal("banned substring must fail the check")
	}

	key := "not_contains:" + c.MustNotContain[0][:30]
	if passed, present := results[key]; !present || passed {
		t.Fatalf("expected failing %q entry, got %v", key, results)
	}
}

func TestParseVerdict(t *testing.T) {
	t.Parallel()

	v := parseVerdict("1. The response meets the criteria.\n2. Nothing violates them.\nVERDICT: PASS")
	if !v.Passed {
		t.Fatal("expected pass")
	}
	if !strings.Contains(v.Reason, "meets the criteria") {
		t.Fatalf("unexpected reason: %q", v.Reason)
	}

	v = parseVerdict("One venue lacks confirmed access.\nVERDICT: FAIL")
	if v.Passed {
		t.Fatal("expected fail")
	}

	v = parseVerdict("verdict: pass")
	if !v.Passed {
		t.Fatal("verdict matching must be case-insensitive")
	}
}

func TestCasesCoverScriptedScenarios(t *testing.T) {
	t.Parallel()

	names := map[string]bool{}
	for _, c := range Cases() {
		if c.Name == "" || c.Query == "" || c.Criteria == "" {
			t.Fatalf("incomplete case: %+v", c)
		}
		names[c.Name] = true
	}
	for _, want := range []string{"basic_query", "wheelchair_access", "no_location", "specific_time", "followup_with_quoted_context"} {
		if !names[want] {
			t.Fatalf("missing case %q", want)
		}
	}
}

type fakeCurator struct {
	response string
	err      error
}

func (f *fakeCurator) Respond(ctx context.Context, userMessage string, history []contractx.Exchange) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestRunnerRespondRendersValidJSON(t *testing.T) {
	t.Parallel()

	r := &Runner{curator: &fakeCurator{
		response: `{"message": "Found one.", "restaurants": [{"name": "Spot", "address": "1 Main St"}]}`,
	}}

	got := r.respond(context.Background(), Case{Name: "basic"})
	if !strings.Contains(strings.ToLower(got), "<html") {
		t.Fatalf("expected rendered HTML, got %q", got)
	}
	if !strings.Contains(got, "Spot") {
		t.Fatalf("expected restaurant content, got %q", got)
	}
}

func TestRunnerRespondPassesThroughNonJSON(t *testing.T) {
	t.Parallel()

	r := &Runner{curator: &fakeCurator{response: "Could you share your location?"}}
	got := r.respond(context.Background(), Case{Name: "no_location"})
	if got != "Could you share your location?" {
		t.Fatalf("unexpected passthrough: %q", got)
	}
}

func TestRunnerRespondCuratorFailure(t *testing.T) {
	t.Parallel()

	r := &Runner{curator: &fakeCurator{err: errors.New("model down")}}
	if got := r.respond(context.Background(), Case{Name: "basic"}); got != "" {
		t.Fatalf("expected empty response on failure, got %q", got)
	}
}
