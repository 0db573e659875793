package places

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	DefaultPlaceType  = "restaurant"
	DefaultMaxResults = 5
)

// SearchInput is the tool-facing request shape. PlaceID bypasses search.
type SearchInput struct {
	PlaceID    string
	Query      string
	Location   string
	PlaceType  string
	MaxResults int
}

// Finder is the search surface the tool layer depends on.
type Finder interface {
	Search(ctx context.Context, in SearchInput) PlaceResult
}

// searchClient is what Gateway needs from the wire client; narrowed for tests.
type searchClient interface {
	TextSearch(ctx context.Context, query string) (string, []PlaceRecord, string, error)
	Details(ctx context.Context, placeID string) (string, PlaceRecord, string, error)
}

// Gateway adapts the Places client to the tool contract. Every failure mode
// terminates in a tagged PlaceResult; callers never see an error value.
type Gateway struct {
	client searchClient
}

func NewGateway(client *Client) *Gateway {
	return &Gateway{client: client}
}

func (g *Gateway) Search(ctx context.Context, in SearchInput) PlaceResult {
	if placeID := strings.TrimSpace(in.PlaceID); placeID != "" {
		return g.lookup(ctx, placeID)
	}

	placeType := strings.TrimSpace(in.PlaceType)
	if placeType == "" {
		placeType = DefaultPlaceType
	}
	maxResults := in.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	// Single free-text query from the non-empty parts, in fixed order.
	parts := make([]string, 0, 3)
	for _, p := range []string{in.Query, placeType, in.Location} {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	searchQuery := strings.Join(parts, " ")

	status, results, errMsg, err := g.client.TextSearch(ctx, searchQuery)
	if err != nil {
		log.Error().Err(err).Str("query", searchQuery).Msg("places text search failed")
		return PlaceResult{Status: StatusError, Results: []PlaceRecord{}, ErrorMessage: err.Error()}
	}
	if status != StatusOK {
		return PlaceResult{Status: status, Results: []PlaceRecord{}, ErrorMessage: errMsg}
	}

	if len(results) > maxResults {
		results = results[:maxResults]
	}

	detailed := make([]PlaceRecord, 0, len(results))
	for _, basic := range results {
		if basic.PlaceID == "" {
			detailed = append(detailed, basic)
			continue
		}
		detailStatus, detail, _, err := g.client.Details(ctx, basic.PlaceID)
		if err != nil || detailStatus != StatusOK {
			// Detail lookup failures degrade to the basic search record
			// instead of failing the batch.
			log.Warn().
				Str("place_id", basic.PlaceID).
				Str("status", detailStatus).
				Msg("place detail lookup failed, using basic record")
			detailed = append(detailed, basic)
			continue
		}
		if detail.PlaceID == "" {
			detail.PlaceID = basic.PlaceID
		}
		detailed = append(detailed, detail)
	}

	return PlaceResult{Status: StatusOK, Results: detailed}
}

func (g *Gateway) lookup(ctx context.Context, placeID string) PlaceResult {
	status, record, errMsg, err := g.client.Details(ctx, placeID)
	if err != nil {
		log.Error().Err(err).Str("place_id", placeID).Msg("place lookup failed")
		return PlaceResult{Status: StatusError, Results: []PlaceRecord{}, ErrorMessage: err.Error()}
	}
	if status != StatusOK {
		return PlaceResult{Status: status, Results: []PlaceRecord{}, ErrorMessage: errMsg}
	}
	if record.PlaceID == "" {
		record.PlaceID = placeID
	}
	return PlaceResult{Status: StatusOK, Results: []PlaceRecord{record}}
}
