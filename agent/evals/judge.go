package evals

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	openaisdk "github.com/openai/openai-go"
)

// Verdict is the judge's assessment of one response.
type Verdict struct {
	Passed bool
	Reason string
}

// Judge scores responses against case criteria with a chat model.
type Judge struct {
	client *openaisdk.Client
	model  string
}

func NewJudge(client *openaisdk.Client, model string) (*Judge, error) {
	if client == nil {
		return nil, fmt.Errorf("judge client is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("judge model is required")
	}
	return &Judge{client: client, model: model}, nil
}

var (
	htmlTags   = regexp.MustCompile(`<[^>]+>`)
	multiSpace = regexp.MustCompile(`\s{2,}`)
)

const maxJudgedChars = 4000

const judgePromptFormat = `You are strictly evaluating an AI restaurant recommendation agent.

User query:
%s

Agent response (may be truncated):
%s

Evaluation criteria:
%s

Think step by step:
1. Does the response meet the criteria above? Explain briefly.
2. If any part of the response violates the criteria, explain what.

Then on the LAST line, write only: VERDICT: PASS or VERDICT: FAIL

Be strict. If any single restaurant in the response violates the criteria, it is a FAIL.`

// Score asks the judge model for a verdict on one response. The response is
// flattened to plain text first so the judge reads content, not markup.
func (j *Judge) Score(ctx context.Context, c Case, response string) (Verdict, error) {
	if strings.TrimSpace(response) == "" {
		return Verdict{Passed: false, Reason: "empty response from agent"}, nil
	}

	plain := htmlTags.ReplaceAllString(response, " ")
	plain = strings.TrimSpace(multiSpace.ReplaceAllString(plain, " "))
	if len(plain) > maxJudgedChars {
		plain = plain[:maxJudgedChars]
	}

	prompt := fmt.Sprintf(judgePromptFormat, c.Query, plain, c.Criteria)

	resp, err := j.client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(j.model),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.UserMessage(prompt),
		},
	})
	if err != nil {
		return Verdict{}, fmt.Errorf("judge completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Verdict{}, fmt.Errorf("judge returned no choices")
	}

	return parseVerdict(resp.Choices[0].Message.Content), nil
}

// parseVerdict reads the verdict off the last line; everything that is not a
// verdict line becomes the reason.
func parseVerdict(text string) Verdict {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	var reasons []string
	for _, line := range lines {
		if !strings.HasPrefix(strings.ToUpper(strings.TrimSpace(line)), "VERDICT") {
			reasons = append(reasons, strings.TrimSpace(line))
		}
	}

	last := strings.ToUpper(strings.TrimSpace(lines[len(lines)-1]))
	return Verdict{
		Passed: strings.Contains(last, "VERDICT: PASS"),
		Reason: strings.TrimSpace(strings.Join(reasons, " ")),
	}
}
