package evals

import (
	"context"
	"fmt"

	answerx "github.com/paxbot/curator-agent/agent/answer"
	contractx "github.com/paxbot/curator-agent/agent/contract"
	renderx "github.com/paxbot/curator-agent/agent/render"
	"github.com/rs/zerolog/log"
)

// Result is the full record of one evaluated case.
type Result struct {
	Case           string
	Status         string
	Rules          map[string]bool
	Judge          Verdict
	ResponseLength int
}

// Runner drives each case through the same pipeline the server uses: curator
// turn, normalize, decode, render, with passthrough on decode failure.
type Runner struct {
	curator contractx.Curator
	judge   *Judge
}

func NewRunner(curator contractx.Curator, judge *Judge) (*Runner, error) {
	if curator == nil {
		return nil, fmt.Errorf("curator is required")
	}
	if judge == nil {
		return nil, fmt.Errorf("judge is required")
	}
	return &Runner{curator: curator, judge: judge}, nil
}

// Run evaluates every case and returns per-case results. A curator failure
// on one case marks that case failed and moves on.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	cases := Cases()
	results := make([]Result, 0, len(cases))

	for _, c := range cases {
		response := r.respond(ctx, c)

		rules := RuleChecks(response, c)
		verdict, err := r.judge.Score(ctx, c, response)
		if err != nil {
			return nil, fmt.Errorf("case %s: %w", c.Name, err)
		}

		status := "FAIL"
		if AllPassed(rules) && verdict.Passed {
			status = "PASS"
		}

		results = append(results, Result{
			Case:           c.Name,
			Status:         status,
			Rules:          rules,
			Judge:          verdict,
			ResponseLength: len(response),
		})
	}

	return results, nil
}

// respond runs one case turn and renders the output. Each case gets a fresh
// context with no session history.
func (r *Runner) respond(ctx context.Context, c Case) string {
	raw, err := r.curator.Respond(ctx, c.Query, nil)
	if err != nil {
		log.Warn().Err(err).Str("case", c.Name).Msg("curator turn failed")
		return ""
	}

	result, cleaned, ok := answerx.Decode(raw)
	if !ok {
		return cleaned
	}

	html, err := renderx.Render(result)
	if err != nil {
		log.Warn().Err(err).Str("case", c.Name).Msg("render failed")
		return cleaned
	}
	return html
}

// Passed counts the cases whose status is PASS.
func Passed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Status == "PASS" {
			n++
		}
	}
	return n
}
