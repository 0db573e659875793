// Package filter enforces the user's hard constraints on raw place records:
// every stated criterion must hold, and a record that cannot prove a
// criterion (missing flag, missing hours) is excluded rather than kept.
package filter

import "time"

// Meal names one of the serves_* capability flags.
type Meal string

const (
	MealBreakfast Meal = "breakfast"
	MealLunch     Meal = "lunch"
	MealDinner    Meal = "dinner"
	MealBrunch    Meal = "brunch"
)

// TimeWindow is a requested visiting time. Minute is minutes since midnight
// local to the venue; a negative Minute means "any time that day".
type TimeWindow struct {
	Day    time.Weekday
	Minute int
}

// Criteria is the set of hard constraints extracted from the user's query.
// The zero value passes every record through.
type Criteria struct {
	WheelchairAccessible bool
	Meals                []Meal
	OpenAt               *TimeWindow
}

func (c Criteria) empty() bool {
	return !c.WheelchairAccessible && len(c.Meals) == 0 && c.OpenAt == nil
}
