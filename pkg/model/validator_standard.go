package model

import (
	"github.com/samber/lo"
)

type scheduleValidatorStandard struct {
	constraints    Constraints
	allowedOverlap int
	minTravelGap   int
}

// session pairs a slot with the entry it belongs to, so pairwise checks can
// compare locations and skip a class's own two sessions.
type session struct {
	slot  TimeSlot
	entry int // index of the owning entry within the group
}

func (validator *scheduleValidatorStandard) Valid(group CandidateGroup) bool {
	if !validator.requiredPresent(group) {
		return false
	}
	if !validator.creditsSufficient(group) {
		return false
	}

	sessions := flattenSessions(group)
	for _, current := range sessions {
		if validator.constraints.Blocked(current.slot.Day) {
			return false
		}
	}

	for i := range sessions {
		for j := i + 1; j < len(sessions); j++ {
			if !validator.pairAcceptable(group, sessions[i], sessions[j]) {
				return false
			}
		}
	}
	return true
}

func (validator *scheduleValidatorStandard) requiredPresent(group CandidateGroup) bool {
	names := lo.Map(group, func(entry ClassEntry, _ int) string {
		return entry.Name
	})
	return lo.EveryBy(validator.constraints.RequiredNames, func(required string) bool {
		return lo.Contains(names, required)
	})
}

func (validator *scheduleValidatorStandard) creditsSufficient(group CandidateGroup) bool {
	return Schedule(group).TotalCredits() >= validator.constraints.MinCredits
}

// pairAcceptable applies the overlap and travel-gap rules to one unordered
// pair of sessions. An overlap of exactly allowedOverlap minutes is
// tolerated, and a gap of exactly minTravelGap minutes is enough; the gap
// rule only applies across different locations, never within one building.
func (validator *scheduleValidatorStandard) pairAcceptable(group CandidateGroup, a, b session) bool {
	// A class's own two sessions come from the catalog author and are
	// presumed non-conflicting.
	if a.entry == b.entry {
		return true
	}

	overlap := a.slot.OverlapMinutes(b.slot)
	if overlap > validator.allowedOverlap {
		return false
	}

	if group[a.entry].Location != group[b.entry].Location && overlap == 0 {
		if gap, sameDay := a.slot.GapMinutes(b.slot); sameDay && gap < validator.minTravelGap {
			return false
		}
	}
	return true
}

func flattenSessions(group CandidateGroup) []session {
	sessions := make([]session, 0, 2*len(group))
	for i, entry := range group {
		for _, slot := range entry.Slots {
			sessions = append(sessions, session{slot: slot, entry: i})
		}
	}
	return sessions
}
