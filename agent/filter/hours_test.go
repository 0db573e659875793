package filter

import (
	"testing"
	"time"
)

func TestOpenDuringBasicRange(t *testing.T) {
	t.Parallel()

	weekdayText := []string{
		"Monday: 11:30 AM – 10:00 PM",
		"Sunday: 5:00 PM – 11:00 PM",
	}

	if !openDuring(weekdayText, TimeWindow{Day: time.Sunday, Minute: 20 * 60}) {
		t.Fatal("8pm Sunday should be inside 5:00 PM – 11:00 PM")
	}
	if openDuring(weekdayText, TimeWindow{Day: time.Sunday, Minute: 12 * 60}) {
		t.Fatal("noon Sunday should be outside 5:00 PM – 11:00 PM")
	}
	if openDuring(weekdayText, TimeWindow{Day: time.Tuesday, Minute: 12 * 60}) {
		t.Fatal("a day with no entry is not confirmed open")
	}
}

func TestOpenDuringClosedAndAllDay(t *testing.T) {
	t.Parallel()

	if openDuring([]string{"Sunday: Closed"}, TimeWindow{Day: time.Sunday, Minute: 12 * 60}) {
		t.Fatal("closed day must not match")
	}
	if !openDuring([]string{"Sunday: Open 24 hours"}, TimeWindow{Day: time.Sunday, Minute: 3 * 60}) {
		t.Fatal("open 24 hours must match any time")
	}
}

func TestOpenDuringOvernightRange(t *testing.T) {
	t.Parallel()

	weekdayText := []string{"Friday: 5:00 PM – 1:00 AM"}

	if !openDuring(weekdayText, TimeWindow{Day: time.Friday, Minute: 23 * 60}) {
		t.Fatal("11pm should be inside an overnight range")
	}
	if !openDuring(weekdayText, TimeWindow{Day: time.Friday, Minute: 30}) {
		t.Fatal("00:30 should be inside an overnight range")
	}
	if openDuring(weekdayText, TimeWindow{Day: time.Friday, Minute: 12 * 60}) {
		t.Fatal("noon should be outside an overnight range")
	}
}

func TestOpenDuringMultipleRanges(t *testing.T) {
	t.Parallel()

	weekdayText := []string{"Saturday: 11:00 AM – 2:00 PM, 5:00 PM – 9:00 PM"}

	if !openDuring(weekdayText, TimeWindow{Day: time.Saturday, Minute: 12 * 60}) {
		t.Fatal("lunch window should match the first range")
	}
	if !openDuring(weekdayText, TimeWindow{Day: time.Saturday, Minute: 18 * 60}) {
		t.Fatal("dinner window should match the second range")
	}
	if openDuring(weekdayText, TimeWindow{Day: time.Saturday, Minute: 15 * 60}) {
		t.Fatal("the gap between ranges should not match")
	}
}

func TestOpenDuringDayOnlyRequest(t *testing.T) {
	t.Parallel()

	weekdayText := []string{"Monday: 9:00 AM – 5:00 PM"}

	if !openDuring(weekdayText, TimeWindow{Day: time.Monday, Minute: -1}) {
		t.Fatal("day-only request should match any open day")
	}
	if openDuring([]string{"Monday: Closed"}, TimeWindow{Day: time.Monday, Minute: -1}) {
		t.Fatal("day-only request must not match a closed day")
	}
}

func TestOpenDuringUnparsableEntryExcludes(t *testing.T) {
	t.Parallel()

	if openDuring([]string{"Sunday: Hours not posted"}, TimeWindow{Day: time.Sunday, Minute: 12 * 60}) {
		t.Fatal("unparsable hours must resolve to exclusion")
	}
}

func TestParseClock(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"8pm", 20 * 60, true},
		{"8:30 PM", 20*60 + 30, true},
		{"12 AM", 0, true},
		{"12:15 PM", 12*60 + 15, true},
		{"20:00", 20 * 60, true},
		{"11:30 AM", 11*60 + 30, true},
		{"25:00", 0, false},
		{"soon", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseClock(tc.in)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Fatalf("ParseClock(%q) = (%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseWindow(t *testing.T) {
	t.Parallel()

	w, ok := ParseWindow("Sunday", "8pm")
	if !ok || w == nil || w.Day != time.Sunday || w.Minute != 20*60 {
		t.Fatalf("ParseWindow(Sunday, 8pm) = (%v, %v)", w, ok)
	}

	w, ok = ParseWindow("friday", "")
	if !ok || w == nil || w.Day != time.Friday || w.Minute != -1 {
		t.Fatalf("ParseWindow(friday, ) = (%v, %v)", w, ok)
	}

	w, ok = ParseWindow("", "8pm")
	if !ok || w != nil {
		t.Fatalf("empty day should mean no criterion, got (%v, %v)", w, ok)
	}

	if _, ok := ParseWindow("someday", ""); ok {
		t.Fatal("unknown day name should fail")
	}
}

func TestParseMeal(t *testing.T) {
	t.Parallel()

	if m, ok := ParseMeal(" Dinner "); !ok || m != MealDinner {
		t.Fatalf("ParseMeal(Dinner) = (%v, %v)", m, ok)
	}
	if _, ok := ParseMeal("supper"); ok {
		t.Fatal("unknown meal should fail")
	}
}
