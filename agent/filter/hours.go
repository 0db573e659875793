package filter

import (
	"strings"
	"time"
)

// openDuring reports whether the weekday text entries confirm the venue is
// open for the requested window. Entries look like
// "Monday: 11:30 AM – 10:00 PM" (possibly several comma-separated ranges,
// "Closed", or "Open 24 hours"). Anything that cannot be parsed counts as
// not confirmed: ambiguity resolves to exclusion for time-specific queries.
func openDuring(weekdayText []string, window TimeWindow) bool {
	entry, ok := dayEntry(weekdayText, window.Day)
	if !ok {
		return false
	}

	spec := strings.TrimSpace(entry)
	if spec == "" || strings.EqualFold(spec, "closed") {
		return false
	}
	if strings.EqualFold(spec, "open 24 hours") {
		return true
	}

	ranges := parseClockRanges(spec)
	if len(ranges) == 0 {
		return false
	}
	if window.Minute < 0 {
		// Day-only request: any open range that day is enough.
		return true
	}
	for _, r := range ranges {
		if r.covers(window.Minute) {
			return true
		}
	}
	return false
}

// dayEntry finds the entry for the requested weekday by its name prefix and
// returns the text after the "Day:" label.
func dayEntry(weekdayText []string, day time.Weekday) (string, bool) {
	prefix := day.String() + ":"
	for _, line := range weekdayText {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(strings.ToLower(trimmed), strings.ToLower(prefix)) {
			return strings.TrimSpace(trimmed[len(prefix):]), true
		}
	}
	return "", false
}

type clockRange struct {
	start int // minutes since midnight
	end   int // may be <= start for ranges crossing midnight
}

func (r clockRange) covers(minute int) bool {
	if r.start == r.end {
		return false
	}
	if r.end > r.start {
		return minute >= r.start && minute < r.end
	}
	// Overnight range, e.g. 5:00 PM – 1:00 AM.
	return minute >= r.start || minute < r.end
}

// parseClockRanges parses comma-separated "h:mm AM – h:mm PM" ranges. The
// separator may be an en dash, em dash, or hyphen, with or without spaces.
func parseClockRanges(spec string) []clockRange {
	var ranges []clockRange
	for _, part := range strings.Split(spec, ",") {
		start, end, ok := splitRange(part)
		if !ok {
			continue
		}
		startMin, ok := parseClock(start)
		if !ok {
			continue
		}
		endMin, ok := parseClock(end)
		if !ok {
			continue
		}
		ranges = append(ranges, clockRange{start: startMin, end: endMin})
	}
	return ranges
}

func splitRange(part string) (string, string, bool) {
	for _, sep := range []string{"–", "—", "-"} {
		if idx := strings.Index(part, sep); idx > 0 {
			return part[:idx], part[idx+len(sep):], true
		}
	}
	return "", "", false
}

// parseClock reads one "h:mm AM" style clock time; minutes and the space
// before the meridiem are optional, and the unicode narrow spaces the API
// emits are tolerated.
func parseClock(raw string) (int, bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == ' ' {
			return ' '
		}
		return r
	}, s)
	s = strings.ReplaceAll(s, " ", "")

	meridiem := ""
	switch {
	case strings.HasSuffix(s, "AM"):
		meridiem = "AM"
		s = strings.TrimSuffix(s, "AM")
	case strings.HasSuffix(s, "PM"):
		meridiem = "PM"
		s = strings.TrimSuffix(s, "PM")
	}

	hourPart := s
	minute := 0
	if idx := strings.Index(s, ":"); idx >= 0 {
		hourPart = s[:idx]
		minutePart := s[idx+1:]
		m, ok := atoi(minutePart)
		if !ok || m < 0 || m > 59 {
			return 0, false
		}
		minute = m
	}

	hour, ok := atoi(hourPart)
	if !ok || hour < 0 || hour > 23 {
		return 0, false
	}

	switch meridiem {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 12 {
			hour += 12
		}
	}
	return hour*60 + minute, true
}

func atoi(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
