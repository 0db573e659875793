// Package evals runs scripted scenario checks against the live curator:
// rule-based checks over the rendered output plus a model judge scoring each
// response against per-case criteria.
package evals

// Case is one scripted scenario with judge criteria and optional banned
// substrings for the rendered output.
type Case struct {
	Name           string
	Query          string
	Criteria       string
	MustNotContain []string
}

func Cases() []Case {
	return []Case{
		{
			Name:  "basic_query",
			Query: "Find Italian restaurants in San Francisco",
			Criteria: "User asked for Italian restaurants in San Francisco. " +
				"Response should contain at least 3 Italian restaurants located in San Francisco.",
		},
		{
			Name:  "wheelchair_access",
			Query: "Find coffee shops in San Bruno with wheelchair access",
			Criteria: "User specifically asked for wheelchair accessible coffee shops. " +
				"Every restaurant recommended must have confirmed wheelchair access. " +
				"Any restaurant showing wheelchair access as unavailable or unknown is a FAIL.",
			MustNotContain: []string{"Wheelchair Accessible Entrance: Not available"},
		},
		{
			Name:  "no_location",
			Query: "Find me good Italian restaurants",
			Criteria: "User did not provide a location. " +
				"Response should ask the user for their location and NOT recommend specific restaurants.",
		},
		{
			Name:  "specific_time",
			Query: "Find restaurants in San Francisco open on Sunday at 8pm",
			Criteria: "User asked for restaurants open on Sunday at 8pm. " +
				"Only restaurants confirmed open on Sunday evening should be recommended. " +
				"Any restaurant with unknown or missing hours should NOT be included.",
		},
		{
			Name: "followup_with_quoted_context",
			Query: "any with wheelchair access?\n\n" +
				"---------- Forwarded message ---------\n" +
				"Find coffee shops in San Bruno that serve breakfast",
			Criteria: "This is a follow-up email. The previous context asked for coffee shops in San Bruno. " +
				"Response should either: (a) recommend coffee shops in San Bruno with confirmed wheelchair access, " +
				"OR (b) clearly state no matching restaurants were found. Both are acceptable outcomes. " +
				"FAIL only if it recommends restaurants without confirmed wheelchair access.",
			MustNotContain: []string{"Wheelchair Accessible Entrance: Not available"},
		},
	}
}
