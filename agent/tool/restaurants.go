package tool

import (
	"context"
	"fmt"

	contractx "github.com/paxbot/curator-agent/agent/contract"
	filterx "github.com/paxbot/curator-agent/agent/filter"
	placesx "github.com/paxbot/curator-agent/agent/places"
)

const ToolGetRestaurants = "get_restaurants"

// executeGetRestaurants looks up candidate places, then enforces the stated
// hard constraints on the raw records before they reach the model. The model
// restates these constraints in its answer, but enforcement happens here.
func executeGetRestaurants(ctx context.Context, finder placesx.Finder, tool string, args map[string]any) contractx.ToolResult {
	in := placesx.SearchInput{
		PlaceID:   stringArg(args, "place_id"),
		Query:     stringArg(args, "query"),
		Location:  stringArg(args, "location"),
		PlaceType: stringArg(args, "place_type"),
	}
	if n, ok := intArg(args, "max_results"); ok {
		in.MaxResults = n
	}

	if in.PlaceID == "" && in.Query == "" && in.Location == "" {
		return contractx.ToolResult{
			Tool:  tool,
			Error: "at least one of place_id, query, or location is required",
		}
	}

	criteria, err := criteriaFromArgs(args)
	if err != nil {
		return contractx.ToolResult{Tool: tool, Error: err.Error()}
	}

	result := finder.Search(ctx, in)
	if result.Status == placesx.StatusOK {
		result.Results = filterx.Apply(criteria, result.Results, contractx.MaxRestaurants)
		if len(result.Results) == 0 {
			result.Status = placesx.StatusZeroResults
		}
	}
	return contractx.ToolResult{Tool: tool, Result: result}
}

func criteriaFromArgs(args map[string]any) (filterx.Criteria, error) {
	var c filterx.Criteria

	c.WheelchairAccessible = boolArg(args, "wheelchair_accessible")

	if raw := stringArg(args, "meal"); raw != "" {
		meal, ok := filterx.ParseMeal(raw)
		if !ok {
			return c, fmt.Errorf("meal=%s is not one of breakfast, lunch, dinner, brunch", raw)
		}
		c.Meals = append(c.Meals, meal)
	}

	window, ok := filterx.ParseWindow(stringArg(args, "open_day"), stringArg(args, "open_time"))
	if !ok {
		return c, fmt.Errorf("open_day/open_time could not be parsed")
	}
	c.OpenAt = window

	return c, nil
}

func stringArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func boolArg(args map[string]any, key string) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return false
}

func intArg(args map[string]any, key string) (int, bool) {
	switch v := args[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}
