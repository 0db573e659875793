package curator

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	contractx "github.com/paxbot/curator-agent/agent/contract"
	placesx "github.com/paxbot/curator-agent/agent/places"
)

type fakeToolCallingModel struct {
	responses []*schema.Message
	err       error
	idx       int
	inputs    [][]*schema.Message
}

func (f *fakeToolCallingModel) Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error) {
	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return nil, f.err
	}
	if f.idx >= len(f.responses) {
		return nil, errors.New("no fake response left")
	}
	msg := f.responses[f.idx]
	f.idx++
	return msg, nil
}

func (f *fakeToolCallingModel) Stream(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not implemented in fake model")
}

func (f *fakeToolCallingModel) WithTools(tools []*schema.ToolInfo) (einomodel.ToolCallingChatModel, error) {
	return f, nil
}

type fakeFinder struct {
	result placesx.PlaceResult
	inputs []placesx.SearchInput
}

func (f *fakeFinder) Search(ctx context.Context, in placesx.SearchInput) placesx.PlaceResult {
	f.inputs = append(f.inputs, in)
	return f.result
}

func toolCallMessage(name, args string) *schema.Message {
	return &schema.Message{
		Role: schema.Assistant,
		ToolCalls: []schema.ToolCall{
			{Function: schema.FunctionCall{Name: name, Arguments: args}},
		},
	}
}

func TestRespondDirectAnswer(t *testing.T) {
	t.Parallel()

	fake := &fakeToolCallingModel{
		responses: []*schema.Message{
			{Role: schema.Assistant, Content: `{"message": "Please share your location.", "restaurants": []}`},
		},
	}

	c, err := New(context.Background(), fake, &fakeFinder{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got, err := c.Respond(context.Background(), "find me good Italian restaurants", nil)
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if !strings.Contains(got, "Please share your location.") {
		t.Fatalf("unexpected response: %q", got)
	}
}

func TestRespondRunsToolLoop(t *testing.T) {
	t.Parallel()

	finder := &fakeFinder{
		result: placesx.PlaceResult{
			Status:  placesx.StatusOK,
			Results: []placesx.PlaceRecord{{Name: "Trattoria", FormattedAddress: "1 Main St"}},
		},
	}
	fake := &fakeToolCallingModel{
		responses: []*schema.Message{
			toolCallMessage("get_restaurants", `{"query": "Italian", "location": "San Francisco, CA"}`),
			{Role: schema.Assistant, Content: `{"message": "Found one.", "restaurants": [{"name": "Trattoria", "address": "1 Main St"}]}`},
		},
	}

	c, err := New(context.Background(), fake, finder)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got, err := c.Respond(context.Background(), "Find Italian restaurants in San Francisco", nil)
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if !strings.Contains(got, "Trattoria") {
		t.Fatalf("unexpected response: %q", got)
	}

	if len(finder.inputs) != 1 {
		t.Fatalf("expected one tool search, got %d", len(finder.inputs))
	}
	if finder.inputs[0].Location != "San Francisco, CA" {
		t.Fatalf("unexpected search input: %+v", finder.inputs[0])
	}

	// The second model round must carry the tool results back.
	if len(fake.inputs) != 2 {
		t.Fatalf("expected two model rounds, got %d", len(fake.inputs))
	}
	var sawResults bool
	for _, msg := range fake.inputs[1] {
		if strings.Contains(msg.Content, "tool_results") && strings.Contains(msg.Content, "Trattoria") {
			sawResults = true
		}
	}
	if !sawResults {
		t.Fatal("tool results missing from the follow-up payload")
	}
}

func TestRespondRejectsUnknownToolCall(t *testing.T) {
	t.Parallel()

	fake := &fakeToolCallingModel{
		responses: []*schema.Message{
			toolCallMessage("rm_rf", `{}`),
		},
	}

	c, err := New(context.Background(), fake, &fakeFinder{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = c.Respond(context.Background(), "hello", nil)
	if !errors.Is(err, contractx.ErrSchemaViolation) {
		t.Fatalf("expected ErrSchemaViolation, got %v", err)
	}
}

func TestRespondEmptyFinalIsNoResponse(t *testing.T) {
	t.Parallel()

	fake := &fakeToolCallingModel{
		responses: []*schema.Message{
			{Role: schema.Assistant, Content: "   "},
		},
	}

	c, err := New(context.Background(), fake, &fakeFinder{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = c.Respond(context.Background(), "hello", nil)
	if !errors.Is(err, contractx.ErrNoResponse) {
		t.Fatalf("expected ErrNoResponse, got %v", err)
	}
}

func TestRespondToolLoopBounded(t *testing.T) {
	t.Parallel()

	var responses []*schema.Message
	for i := 0; i <= maxToolRounds; i++ {
		responses = append(responses, toolCallMessage("get_restaurants", `{"query": "pizza"}`))
	}
	fake := &fakeToolCallingModel{responses: responses}

	c, err := New(context.Background(), fake, &fakeFinder{result: placesx.PlaceResult{Status: placesx.StatusZeroResults}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = c.Respond(context.Background(), "hello", nil)
	if !errors.Is(err, contractx.ErrNoResponse) {
		t.Fatalf("expected ErrNoResponse after loop exhaustion, got %v", err)
	}
}

func TestRespondEmptyMessage(t *testing.T) {
	t.Parallel()

	c, err := New(context.Background(), &fakeToolCallingModel{}, &fakeFinder{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = c.Respond(context.Background(), "   ", nil)
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestRespondIncludesHistory(t *testing.T) {
	t.Parallel()

	fake := &fakeToolCallingModel{
		responses: []*schema.Message{
			{Role: schema.Assistant, Content: "fine"},
		},
	}

	c, err := New(context.Background(), fake, &fakeFinder{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	history := []contractx.Exchange{{Query: "coffee in San Bruno", Response: "here are three"}}
	if _, err := c.Respond(context.Background(), "any with wheelchair access?", history); err != nil {
		t.Fatalf("Respond() error = %v", err)
	}

	var sawHistory bool
	for _, msg := range fake.inputs[0] {
		if strings.Contains(msg.Content, "previous_turns") && strings.Contains(msg.Content, "coffee in San Bruno") {
			sawHistory = true
		}
	}
	if !sawHistory {
		t.Fatal("history missing from the model payload")
	}
}

func TestPayloadIsValidJSON(t *testing.T) {
	t.Parallel()

	fake := &fakeToolCallingModel{
		responses: []*schema.Message{
			{Role: schema.Assistant, Content: "ok"},
		},
	}

	c, err := New(context.Background(), fake, &fakeFinder{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := c.Respond(context.Background(), `a "quoted" question`, nil); err != nil {
		t.Fatalf("Respond() error = %v", err)
	}

	var userContent string
	for _, msg := range fake.inputs[0] {
		if msg.Role == schema.User {
			userContent = msg.Content
		}
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(userContent), &payload); err != nil {
		t.Fatalf("user payload is not valid JSON: %v", err)
	}
	if payload["user_message"] != `a "quoted" question` {
		t.Fatalf("unexpected payload: %v", payload)
	}
}
