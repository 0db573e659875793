package contract

// RestaurantAnswer is a single recommendation as emitted by the curator model.
// Optional fields are omitted entirely when the source place record lacks
// them; placeholder strings are a contract violation on the producing side.
type RestaurantAnswer struct {
	Name        string          `json:"name"`
	Address     string          `json:"address"`
	Rating      *float64        `json:"rating,omitempty"`
	Description string          `json:"description,omitempty"`
	Hours       []string        `json:"hours,omitempty"`
	Website     string          `json:"website,omitempty"`
	Features    map[string]bool `json:"features,omitempty"`
	Highlights  []string        `json:"highlights,omitempty"`
}

// QueryResult is the structured contract between the curator model and the
// rendering stage: one message plus at most five restaurants.
type QueryResult struct {
	Message     string             `json:"message"`
	Restaurants []RestaurantAnswer `json:"restaurants"`
}

const MaxRestaurants = 5

type ToolRequest struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args,omitempty"`
}

type ToolResult struct {
	Tool   string `json:"tool"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// TurnRequest is one inbound user turn as received by the orchestrator.
type TurnRequest struct {
	Query     string
	Location  string
	SessionID string
	UserID    string
}

// TurnOutcome classifies how a turn terminated.
type TurnOutcome string

const (
	OutcomeRendered    TurnOutcome = "rendered"
	OutcomePassthrough TurnOutcome = "passthrough"
	OutcomeNoResponse  TurnOutcome = "no_response"
)

// TurnResult carries the final user-facing payload for a turn.
type TurnResult struct {
	Response  string
	SessionID string
	Outcome   TurnOutcome
}
