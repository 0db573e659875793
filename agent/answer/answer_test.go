package answer

import (
	"encoding/json"
	"strings"
	"testing"

	contractx "github.com/paxbot/curator-agent/agent/contract"
)

func TestNormalizeStripsCodeFences(t *testing.T) {
	t.Parallel()

	raw := "```json\n{\"message\": \"hi\", \"restaurants\": []}\n```"
	got := Normalize(raw)
	want := `{"message": "hi", "restaurants": []}`
	if got != want {
		t.Fatalf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeRepairsScriptingLiterals(t *testing.T) {
	t.Parallel()

	raw := `{"features": {"takeout": True, "reservable": False}, "rating": None}`
	got := Normalize(raw)
	want := `{"features": {"takeout": true, "reservable": false}, "rating": null}`
	if got != want {
		t.Fatalf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeLeavesLiteralsInsideWordsAlone(t *testing.T) {
	t.Parallel()

	raw := `{"message": "TrueNorth Cafe serves NoneSuch pie"}`
	if got := Normalize(raw); got != raw {
		t.Fatalf("Normalize() altered embedded words: %q", got)
	}
}

func TestDecodeValidPayload(t *testing.T) {
	t.Parallel()

	raw := "```json\n" + `{
		"message": "Found two spots",
		"restaurants": [
			{"name": "Trattoria Contadina", "address": "1800 Mason St", "rating": 4.5,
			 "features": {"serves_dinner": True, "takeout": False}}
		]
	}` + "\n```"

	result, _, ok := Decode(raw)
	if !ok {
		t.Fatal("Decode() failed on a valid payload")
	}
	if result.Message != "Found two spots" {
		t.Fatalf("unexpected message: %q", result.Message)
	}
	if len(result.Restaurants) != 1 {
		t.Fatalf("expected 1 restaurant, got %d", len(result.Restaurants))
	}

	r := result.Restaurants[0]
	if r.Rating == nil || *r.Rating != 4.5 {
		t.Fatalf("unexpected rating: %v", r.Rating)
	}
	if !r.Features["serves_dinner"] {
		t.Fatal("expected serves_dinner feature kept")
	}
	if _, present := r.Features["takeout"]; present {
		t.Fatal("false feature keys must be dropped")
	}
}

func TestDecodeFallsBackToCleanedText(t *testing.T) {
	t.Parallel()

	raw := "```\nSorry, I could not find anything.\n```"
	_, cleaned, ok := Decode(raw)
	if ok {
		t.Fatal("Decode() should fail on non-JSON text")
	}
	if cleaned != "Sorry, I could not find anything." {
		t.Fatalf("unexpected cleaned text: %q", cleaned)
	}
}

func TestDecodeRejectsMissingRequiredFields(t *testing.T) {
	t.Parallel()

	raw := `{"message": "hi", "restaurants": [{"name": "", "address": "1 Main St"}]}`
	if _, _, ok := Decode(raw); ok {
		t.Fatal("Decode() should reject a restaurant without a name")
	}

	raw = `{"message": "hi", "restaurants": [{"name": "Spot", "address": ""}]}`
	if _, _, ok := Decode(raw); ok {
		t.Fatal("Decode() should reject a restaurant without an address")
	}
}

func TestDecodeRejectsEmptyResult(t *testing.T) {
	t.Parallel()

	if _, _, ok := Decode(`{"message": "", "restaurants": []}`); ok {
		t.Fatal("Decode() should reject an empty message with no restaurants")
	}
}

func TestDecodeTruncatesOverLongList(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	sb.WriteString(`{"message": "many", "restaurants": [`)
	for i := 0; i < 7; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(`{"name": "Spot", "address": "1 Main St"}`)
	}
	sb.WriteString(`]}`)

	result, _, ok := Decode(sb.String())
	if !ok {
		t.Fatal("Decode() failed on a truncatable payload")
	}
	if len(result.Restaurants) != contractx.MaxRestaurants {
		t.Fatalf("expected %d restaurants, got %d", contractx.MaxRestaurants, len(result.Restaurants))
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	rating := 4.2
	original := contractx.QueryResult{
		Message: "One pick",
		Restaurants: []contractx.RestaurantAnswer{
			{
				Name:     "The Spot",
				Address:  "1 Main St",
				Rating:   &rating,
				Hours:    []string{"Monday: 9:00 AM – 5:00 PM"},
				Features: map[string]bool{"reservable": true},
			},
		},
	}

	emitted, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	decoded, _, ok := Decode("```json\n" + string(emitted) + "\n```")
	if !ok {
		t.Fatal("Decode() failed on round-tripped payload")
	}
	if decoded.Message != original.Message {
		t.Fatalf("message mismatch: %q", decoded.Message)
	}
	if len(decoded.Restaurants) != 1 || decoded.Restaurants[0].Name != "The Spot" {
		t.Fatalf("restaurants mismatch: %v", decoded.Restaurants)
	}
	if !decoded.Restaurants[0].Features["reservable"] {
		t.Fatal("features mismatch after round trip")
	}
}
