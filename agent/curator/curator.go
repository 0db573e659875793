// Package curator implements the language-model side of the pipeline: one
// user message in, one final text (ideally schema-conformant JSON) out, with
// the places tool available in between.
package curator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	contractx "github.com/paxbot/curator-agent/agent/contract"
	promptx "github.com/paxbot/curator-agent/agent/prompt"
	toolx "github.com/paxbot/curator-agent/agent/tool"
	placesx "github.com/paxbot/curator-agent/agent/places"
)

// maxToolRounds bounds the tool loop; the curator normally needs one round.
const maxToolRounds = 4

type Curator struct {
	runner       compose.Runnable[map[string]any, *schema.Message]
	executor     toolx.Executor
	allowedTools map[string]struct{}
}

var _ contractx.Curator = (*Curator)(nil)

// New compiles the curator graph against the given chat model and binds the
// places finder as the get_restaurants tool.
func New(ctx context.Context, chatModel einomodel.ToolCallingChatModel, finder placesx.Finder) (*Curator, error) {
	prompts := promptx.LoadPromptSet()

	tools, executor := toolx.BuildCatalog(finder)
	toolModel, err := chatModel.WithTools(tools)
	if err != nil {
		return nil, fmt.Errorf("%w: bind tools: %v", contractx.ErrModelInvoke, err)
	}

	runner, err := compileCuratorGraph(ctx, toolModel, prompts.Curator)
	if err != nil {
		return nil, err
	}

	allowed := make(map[string]struct{}, len(tools))
	for _, t := range tools {
		if t == nil || strings.TrimSpace(t.Name) == "" {
			continue
		}
		allowed[t.Name] = struct{}{}
	}

	return &Curator{
		runner:       runner,
		executor:     executor,
		allowedTools: allowed,
	}, nil
}

// Respond dispatches the user message and loops over tool invocations until
// the model produces final text. An exhausted loop or an empty final message
// ends in ErrNoResponse, never a hang.
func (c *Curator) Respond(ctx context.Context, userMessage string, history []contractx.Exchange) (string, error) {
	if strings.TrimSpace(userMessage) == "" {
		return "", fmt.Errorf("%w: user message is required", contractx.ErrValidation)
	}

	var toolResults []contractx.ToolResult
	for round := 0; round <= maxToolRounds; round++ {
		msg, err := c.invoke(ctx, userMessage, history, toolResults)
		if err != nil {
			return "", err
		}
		if msg == nil {
			return "", fmt.Errorf("%w: model returned no message", contractx.ErrNoResponse)
		}

		if len(msg.ToolCalls) == 0 {
			content := strings.TrimSpace(msg.Content)
			if content == "" {
				return "", fmt.Errorf("%w: final message carries no text", contractx.ErrNoResponse)
			}
			return content, nil
		}

		reqs, err := toToolRequests(msg.ToolCalls)
		if err != nil {
			return "", err
		}
		results, err := c.execute(ctx, reqs)
		if err != nil {
			return "", err
		}
		toolResults = append(toolResults, results...)
	}

	return "", fmt.Errorf("%w: tool loop exhausted after %d rounds", contractx.ErrNoResponse, maxToolRounds)
}

func (c *Curator) invoke(
	ctx context.Context,
	userMessage string,
	history []contractx.Exchange,
	toolResults []contractx.ToolResult,
) (*schema.Message, error) {
	payload := map[string]any{
		"user_message": userMessage,
	}
	if len(history) > 0 {
		payload["previous_turns"] = history
	}
	if len(toolResults) > 0 {
		payload["tool_results"] = toolResults
	}

	input, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal curator payload: %v", contractx.ErrValidation, err)
	}

	msg, err := c.runner.Invoke(ctx, map[string]any{
		"input": string(input),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: curator invoke: %v", contractx.ErrModelInvoke, err)
	}
	return msg, nil
}

func (c *Curator) execute(ctx context.Context, reqs []contractx.ToolRequest) ([]contractx.ToolResult, error) {
	results := make([]contractx.ToolResult, 0, len(reqs))
	for _, req := range reqs {
		if _, ok := c.allowedTools[req.Tool]; !ok {
			return nil, fmt.Errorf("%w: tool=%s is not allowed", contractx.ErrSchemaViolation, req.Tool)
		}
		res, err := c.executor(ctx, req.Tool, req.Args)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func toToolRequests(calls []schema.ToolCall) ([]contractx.ToolRequest, error) {
	reqs := make([]contractx.ToolRequest, 0, len(calls))
	for _, call := range calls {
		tool := strings.TrimSpace(call.Function.Name)
		if tool == "" {
			return nil, fmt.Errorf("%w: tool call name is empty", contractx.ErrSchemaViolation)
		}

		args := map[string]any{}
		rawArgs := strings.TrimSpace(call.Function.Arguments)
		if rawArgs != "" {
			if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
				return nil, fmt.Errorf("%w: invalid tool args for tool=%s: %v", contractx.ErrSchemaViolation, tool, err)
			}
		}
		reqs = append(reqs, contractx.ToolRequest{Tool: tool, Args: args})
	}
	return reqs, nil
}
