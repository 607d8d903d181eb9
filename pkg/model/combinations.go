package model

import (
	"iter"

	"github.com/samber/lo"
)

// Combinations returns the lazy sequence of every k-sized combination of
// catalog entries, ordered lexicographically over catalog positions. The
// sequence is finite and restartable: ranging over it again replays the
// same combinations. A k outside [1, len(catalog)] yields an empty sequence.
//
// Branches that can no longer contain every required name are cut early.
// This never changes which groups the validator ultimately accepts, it only
// avoids emitting groups the required-name check would reject anyway.
func Combinations(catalog Catalog, k int, constraints Constraints) iter.Seq[CandidateGroup] {
	// Required names may arrive with repeats; counting a position twice
	// would overstate how many picks a branch still needs.
	names := catalog.Names()
	requiredPositions := lo.Uniq(lo.FilterMap(constraints.RequiredNames, func(name string, _ int) (int, bool) {
		position := lo.IndexOf(names, name)
		return position, position >= 0
	}))

	return func(yield func(CandidateGroup) bool) {
		if k <= 0 || k > len(catalog) {
			return
		}
		selected := make([]int, 0, k)
		combinations(catalog, k, requiredPositions, 0, selected, yield)
	}
}

func combinations(catalog Catalog, k int, requiredPositions []int, start int, selected []int, yield func(CandidateGroup) bool) bool {
	remaining := k - len(selected)
	missing := lo.CountBy(requiredPositions, func(position int) bool {
		return !lo.Contains(selected, position)
	})
	if missing > remaining {
		return true
	}
	for _, position := range requiredPositions {
		// A required entry behind the cursor that was not picked can never
		// join this branch.
		if position < start && !lo.Contains(selected, position) {
			return true
		}
	}

	if len(selected) == k {
		group := make(CandidateGroup, 0, k)
		for _, position := range selected {
			group = append(group, catalog[position])
		}
		return yield(group)
	}

	for position := start; position <= len(catalog)-remaining; position++ {
		selected = append(selected, position)
		proceed := combinations(catalog, k, requiredPositions, position+1, selected, yield)
		selected = selected[:len(selected)-1]
		if !proceed {
			return false
		}
	}
	return true
}
