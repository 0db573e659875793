package contract

import "context"

// Curator is the language-model collaborator: free text in, final text out.
// The orchestrator never looks inside; tool use happens behind this boundary.
type Curator interface {
	Respond(ctx context.Context, userMessage string, history []Exchange) (string, error)
}

// Exchange is one prior turn handed back to the curator for context reuse.
type Exchange struct {
	Query    string `json:"query"`
	Response string `json:"response"`
}

// ToolGateway executes tool requests emitted by the curator model.
type ToolGateway interface {
	Execute(ctx context.Context, reqs []ToolRequest) ([]ToolResult, error)
}
