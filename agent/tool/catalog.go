package tool

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"
	contractx "github.com/paxbot/curator-agent/agent/contract"
	placesx "github.com/paxbot/curator-agent/agent/places"
)

// Executor runs one tool request. Tool failures are reported in-band via
// ToolResult.Error; the error return is reserved for infrastructure faults.
type Executor func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error)

// BuildCatalog returns the tool infos exposed to the curator model together
// with the executor backing them.
func BuildCatalog(finder placesx.Finder) ([]*schema.ToolInfo, Executor) {
	return infos(), NewExecutor(finder)
}

func NewExecutor(finder placesx.Finder) Executor {
	return func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error) {
		switch tool {
		case ToolGetRestaurants:
			return executeGetRestaurants(ctx, finder, tool, args), nil
		default:
			return contractx.ToolResult{
				Tool:  tool,
				Error: fmt.Sprintf("tool=%s is unavailable", tool),
			}, nil
		}
	}
}

func infos() []*schema.ToolInfo {
	return []*schema.ToolInfo{
		{
			Name: ToolGetRestaurants,
			Desc: "Search for restaurants via the places API. The only source of restaurant facts; never invent data.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"place_id": {Type: schema.String, Desc: "Direct place identifier lookup, bypasses search"},
				"query":    {Type: schema.String, Desc: "Cuisine or venue type, e.g. 'Italian restaurants'"},
				"location": {Type: schema.String, Desc: "City or area, e.g. 'San Francisco, CA'"},
				"place_type": {
					Type: schema.String,
					Desc: "Venue category, defaults to 'restaurant'",
				},
				"max_results": {Type: schema.Integer, Desc: "Result cap, defaults to 5"},
				"wheelchair_accessible": {
					Type: schema.Boolean,
					Desc: "Set true when the user requires wheelchair access; non-accessible venues are dropped",
				},
				"meal": {
					Type: schema.String,
					Desc: "Requested meal: breakfast, lunch, dinner, or brunch; venues not serving it are dropped",
				},
				"open_day": {
					Type: schema.String,
					Desc: "Weekday name the venue must be open, e.g. 'Sunday'",
				},
				"open_time": {
					Type: schema.String,
					Desc: "Clock time the venue must be open, e.g. '8pm'; requires open_day",
				},
			}),
		},
	}
}
