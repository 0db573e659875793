package places

import (
	"bytes"
	"encoding/json"
)

// PlaceRecord is one venue as returned by the Places web service. Capability
// flags are pointers: a nil flag means the API did not report the capability,
// which is never the same as false for filtering purposes.
type PlaceRecord struct {
	PlaceID          string  `json:"place_id,omitempty"`
	Name             string  `json:"name"`
	FormattedAddress string  `json:"formatted_address,omitempty"`
	Geometry         *Geometry `json:"geometry,omitempty"`
	Rating           *float64  `json:"rating,omitempty"`
	UserRatingsTotal int       `json:"user_ratings_total,omitempty"`
	PriceLevel       *int      `json:"price_level,omitempty"`
	Website          string    `json:"website,omitempty"`
	PhoneNumber      string    `json:"formatted_phone_number,omitempty"`
	BusinessStatus   string    `json:"business_status,omitempty"`

	Reservable            *bool `json:"reservable,omitempty"`
	ServesBreakfast       *bool `json:"serves_breakfast,omitempty"`
	ServesLunch           *bool `json:"serves_lunch,omitempty"`
	ServesDinner          *bool `json:"serves_dinner,omitempty"`
	ServesBrunch          *bool `json:"serves_brunch,omitempty"`
	ServesVegetarianFood  *bool `json:"serves_vegetarian_food,omitempty"`
	ServesWine            *bool `json:"serves_wine,omitempty"`
	ServesBeer            *bool `json:"serves_beer,omitempty"`
	Takeout               *bool `json:"takeout,omitempty"`
	CurbsidePickup        *bool `json:"curbside_pickup,omitempty"`
	WheelchairAccessible  *bool `json:"wheelchair_accessible_entrance,omitempty"`

	OpeningHours        *OpeningHours     `json:"opening_hours,omitempty"`
	CurrentOpeningHours *OpeningHours     `json:"current_opening_hours,omitempty"`
	EditorialSummary    *EditorialSummary `json:"editorial_summary,omitempty"`
}

type Geometry struct {
	Location LatLng `json:"location"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// OpeningHours carries the ordered Monday..Sunday weekday text entries.
type OpeningHours struct {
	OpenNow     *bool    `json:"open_now,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

// EditorialSummary accepts either the structured {"overview": ...} object or
// a bare string; the upstream API has emitted both shapes.
type EditorialSummary struct {
	Overview string `json:"overview"`
}

func (e *EditorialSummary) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		e.Overview = s
		return nil
	}
	type alias EditorialSummary
	var a alias
	if err := json.Unmarshal(trimmed, &a); err != nil {
		return err
	}
	*e = EditorialSummary(a)
	return nil
}

// WeekdayText prefers current hours over the static schedule.
func (r *PlaceRecord) WeekdayText() []string {
	if r.CurrentOpeningHours != nil && len(r.CurrentOpeningHours.WeekdayText) > 0 {
		return r.CurrentOpeningHours.WeekdayText
	}
	if r.OpeningHours != nil {
		return r.OpeningHours.WeekdayText
	}
	return nil
}

// Summary returns the editorial overview text, if any.
func (r *PlaceRecord) Summary() string {
	if r.EditorialSummary == nil {
		return ""
	}
	return r.EditorialSummary.Overview
}

// PlaceResult is the tagged result handed to the curator model's tool call.
// Status is "OK" on success; any other value carries an ErrorMessage and an
// empty result list.
type PlaceResult struct {
	Status       string        `json:"status"`
	Results      []PlaceRecord `json:"results"`
	ErrorMessage string        `json:"error_message,omitempty"`
}

const (
	StatusOK          = "OK"
	StatusZeroResults = "ZERO_RESULTS"
	StatusError       = "ERROR"
)
