package filter

import (
	"strings"
	"time"
)

// ParseMeal maps a meal name to its serves_* criterion.
func ParseMeal(s string) (Meal, bool) {
	switch Meal(strings.ToLower(strings.TrimSpace(s))) {
	case MealBreakfast:
		return MealBreakfast, true
	case MealLunch:
		return MealLunch, true
	case MealDinner:
		return MealDinner, true
	case MealBrunch:
		return MealBrunch, true
	default:
		return "", false
	}
}

// ParseDay maps a weekday name to its time.Weekday.
func ParseDay(s string) (time.Weekday, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if name == strings.ToLower(d.String()) {
			return d, true
		}
	}
	return 0, false
}

// ParseClock reads a clock time like "8pm", "8:30 PM", or "20:00" and
// returns minutes since midnight.
func ParseClock(s string) (int, bool) {
	return parseClock(s)
}

// ParseWindow builds the open-at criterion from a day name and an optional
// clock time. An empty day yields no criterion; a day with an empty or
// unparsable clock means "any time that day".
func ParseWindow(day, clock string) (*TimeWindow, bool) {
	if strings.TrimSpace(day) == "" {
		return nil, true
	}
	d, ok := ParseDay(day)
	if !ok {
		return nil, false
	}

	minute := -1
	if strings.TrimSpace(clock) != "" {
		m, ok := ParseClock(clock)
		if !ok {
			return nil, false
		}
		minute = m
	}
	return &TimeWindow{Day: d, Minute: minute}, true
}
