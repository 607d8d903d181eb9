package model

type scheduleValidator interface {
	// Checks whether the group satisfies every constraint and time rule:
	// required classes present, credit floor met, no session on a blocked
	// day, no same-day pair overlapping beyond the allowed tolerance, and
	// enough travel time between same-day sessions at different locations
	Valid(group CandidateGroup) bool
}

func newScheduleValidator(constraints Constraints, allowedOverlap, minTravelGap int) scheduleValidator {
	return &scheduleValidatorStandard{
		constraints:    constraints,
		allowedOverlap: allowedOverlap,
		minTravelGap:   minTravelGap,
	}
}
