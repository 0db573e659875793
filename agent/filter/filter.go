package filter

import (
	"sort"

	placesx "github.com/paxbot/curator-agent/agent/places"
)

// Apply keeps only the records satisfying every criterion, then truncates to
// the result cap ranked by descending rating. The sort is stable: equal
// ratings keep their original (search relevance) order.
func Apply(c Criteria, records []placesx.PlaceRecord, cap int) []placesx.PlaceRecord {
	kept := make([]placesx.PlaceRecord, 0, len(records))
	for _, r := range records {
		if satisfies(c, r) {
			kept = append(kept, r)
		}
	}

	if cap > 0 && len(kept) > cap {
		sort.SliceStable(kept, func(i, j int) bool {
			return ratingOf(kept[i]) > ratingOf(kept[j])
		})
		kept = kept[:cap]
	}
	return kept
}

func satisfies(c Criteria, r placesx.PlaceRecord) bool {
	if c.empty() {
		return true
	}

	if c.WheelchairAccessible && !flagTrue(r.WheelchairAccessible) {
		return false
	}

	for _, meal := range c.Meals {
		if !flagTrue(mealFlag(r, meal)) {
			return false
		}
	}

	if c.OpenAt != nil {
		weekdayText := r.WeekdayText()
		if len(weekdayText) == 0 {
			// No hours data: never included for a time-specific query.
			return false
		}
		if !openDuring(weekdayText, *c.OpenAt) {
			return false
		}
	}
	return true
}

// flagTrue treats a missing capability flag as absent, never as satisfied.
func flagTrue(flag *bool) bool {
	return flag != nil && *flag
}

func mealFlag(r placesx.PlaceRecord, meal Meal) *bool {
	switch meal {
	case MealBreakfast:
		return r.ServesBreakfast
	case MealLunch:
		return r.ServesLunch
	case MealDinner:
		return r.ServesDinner
	case MealBrunch:
		return r.ServesBrunch
	default:
		return nil
	}
}

func ratingOf(r placesx.PlaceRecord) float64 {
	if r.Rating == nil {
		return 0
	}
	return *r.Rating
}
