package model

import (
	"fmt"
	"strings"
)

// Day is a day of the week, Monday first.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayTokens = [...]string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

func (day Day) String() string {
	if day < Monday || day > Sunday {
		return fmt.Sprintf("Day(%d)", int(day))
	}
	return dayTokens[day]
}

// ParseDay parses a three-letter day token ("MON".."SUN", case-insensitive).
func ParseDay(token string) (Day, error) {
	normalized := strings.ToUpper(strings.TrimSpace(token))
	for i, candidate := range dayTokens {
		if candidate == normalized {
			return Day(i), nil
		}
	}
	return 0, configurationErrorf("unrecognized day %q: allowed values are %v", token, dayTokens)
}

// ParseDays parses a list of day tokens, preserving order.
func ParseDays(tokens []string) ([]Day, error) {
	days := make([]Day, 0, len(tokens))
	for _, token := range tokens {
		day, err := ParseDay(token)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}
