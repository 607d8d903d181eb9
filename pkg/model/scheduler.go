package model

// Default tolerance, in minutes, for overlapping sessions and for travel
// time between same-day sessions at different locations.
const (
	DefaultAllowedOverlap = 30
	DefaultMinTravelGap   = 30
)

// Scheduler produces every valid combination of a fixed number of classes
// from a catalog.
type Scheduler interface {
	// Generate enumerates every k-sized combination of catalog entries and
	// returns the ones that satisfy the constraints and time rules, in
	// discovery order (lexicographic over catalog positions). Generating
	// twice from the same inputs yields the same sequence. Returns a
	// ConfigurationError before enumeration starts when k is out of range
	// or a required class is not in the catalog; zero results is a normal
	// outcome, not an error.
	Generate(catalog Catalog, k int, constraints Constraints) ([]Schedule, error)

	// Verify reports whether a single schedule satisfies the constraints
	// and time rules.
	Verify(schedule Schedule, constraints Constraints) bool
}

type combinationScheduler struct {
	allowedOverlap int
	minTravelGap   int
}

// NewCombinationScheduler builds a Scheduler with explicit overlap and
// travel-gap tolerances in minutes (see DefaultAllowedOverlap and
// DefaultMinTravelGap).
func NewCombinationScheduler(allowedOverlap, minTravelGap int) Scheduler {
	return &combinationScheduler{
		allowedOverlap: allowedOverlap,
		minTravelGap:   minTravelGap,
	}
}

func (scheduler *combinationScheduler) Generate(catalog Catalog, k int, constraints Constraints) ([]Schedule, error) {
	if k <= 0 {
		return nil, configurationErrorf("class count must be positive, got %d", k)
	}
	if k > len(catalog) {
		return nil, configurationErrorf("class count %d exceeds catalog size %d", k, len(catalog))
	}
	if err := constraints.Validate(catalog); err != nil {
		return nil, err
	}

	validator := newScheduleValidator(constraints, scheduler.allowedOverlap, scheduler.minTravelGap)
	schedules := make([]Schedule, 0)
	for group := range Combinations(catalog, k, constraints) {
		if validator.Valid(group) {
			schedules = append(schedules, Schedule(group))
		}
	}
	return schedules, nil
}

func (scheduler *combinationScheduler) Verify(schedule Schedule, constraints Constraints) bool {
	validator := newScheduleValidator(constraints, scheduler.allowedOverlap, scheduler.minTravelGap)
	return validator.Valid(CandidateGroup(schedule))
}
