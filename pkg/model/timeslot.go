package model

import (
	"fmt"
	"strings"
)

const minutesPerDay = 24 * 60

// TimeSlot is one weekly recurring session: a day of the week and a
// half-open interval [Start, End) in minutes since midnight.
// Slots never span midnight.
type TimeSlot struct {
	Day   Day
	Start int
	End   int
}

// NewTimeSlot builds a slot and enforces 0 <= start < end <= 1440.
func NewTimeSlot(day Day, start, end int) (TimeSlot, error) {
	if day < Monday || day > Sunday {
		return TimeSlot{}, fmt.Errorf("invalid day %d", int(day))
	}
	if start < 0 || start >= end || end > minutesPerDay {
		return TimeSlot{}, fmt.Errorf("invalid time range %s-%s: start must precede end within a single day", formatMinutes(start), formatMinutes(end))
	}
	return TimeSlot{Day: day, Start: start, End: end}, nil
}

// ParseSlot parses a session of the form "DAY HH:MM-HH:MM", e.g. "TUE 13:00-15:00".
func ParseSlot(session string) (TimeSlot, error) {
	fields := strings.Fields(strings.TrimSpace(session))
	if len(fields) != 2 {
		return TimeSlot{}, fmt.Errorf("malformed session %q: expected \"DAY HH:MM-HH:MM\"", session)
	}
	day, err := ParseDay(fields[0])
	if err != nil {
		return TimeSlot{}, fmt.Errorf("malformed session %q: %v", session, err)
	}
	startToken, endToken, ok := strings.Cut(fields[1], "-")
	if !ok {
		return TimeSlot{}, fmt.Errorf("malformed session %q: missing \"-\" in time range", session)
	}
	start, err := parseClock(startToken)
	if err != nil {
		return TimeSlot{}, fmt.Errorf("malformed session %q: %v", session, err)
	}
	end, err := parseClock(endToken)
	if err != nil {
		return TimeSlot{}, fmt.Errorf("malformed session %q: %v", session, err)
	}
	slot, err := NewTimeSlot(day, start, end)
	if err != nil {
		return TimeSlot{}, fmt.Errorf("malformed session %q: %v", session, err)
	}
	return slot, nil
}

func parseClock(token string) (int, error) {
	var hours, minutes int
	if _, err := fmt.Sscanf(token, "%d:%d", &hours, &minutes); err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", token)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", token)
	}
	return hours*60 + minutes, nil
}

func formatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func (slot TimeSlot) String() string {
	return fmt.Sprintf("%v %s-%s", slot.Day, formatMinutes(slot.Start), formatMinutes(slot.End))
}

// OverlapMinutes returns the length of the intersection of the two slots,
// 0 when they are on different days, disjoint, or only touch at an endpoint.
func (slot TimeSlot) OverlapMinutes(other TimeSlot) int {
	if slot.Day != other.Day {
		return 0
	}
	latestStart := max(slot.Start, other.Start)
	earliestEnd := min(slot.End, other.End)
	return max(0, earliestEnd-latestStart)
}

// GapMinutes returns the minutes between the earlier slot's end and the
// later slot's start. The second return value is false when the slots fall
// on different days, in which case no gap constraint applies.
func (slot TimeSlot) GapMinutes(other TimeSlot) (int, bool) {
	if slot.Day != other.Day {
		return 0, false
	}
	if slot.Start <= other.Start {
		return other.Start - slot.End, true
	}
	return slot.Start - other.End, true
}
