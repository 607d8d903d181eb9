package model

import (
	"fmt"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

// catalogOfSize builds n conflict-free single-slot classes named C0..Cn-1.
func catalogOfSize(t *testing.T, n int) Catalog {
	t.Helper()
	catalog := make(Catalog, 0, n)
	for i := range n {
		day := Day(i % 7)
		start := 8*60 + (i/7)*120
		slot, err := NewTimeSlot(day, start, start+60)
		if err != nil {
			t.Fatalf("cannot build slot %d: %v", i, err)
		}
		catalog = append(catalog, ClassEntry{
			Name:     fmt.Sprintf("C%d", i),
			Slots:    []TimeSlot{slot},
			Location: "Main",
			Credits:  3,
		})
	}
	return catalog
}

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}

func collectGroups(catalog Catalog, k int, constraints Constraints) []CandidateGroup {
	groups := make([]CandidateGroup, 0)
	for group := range Combinations(catalog, k, constraints) {
		groups = append(groups, group)
	}
	return groups
}

func TestCombinations(t *testing.T) {
	catalog := catalogOfSize(t, 6)

	t.Run("Lexicographic order over catalog positions", func(t *testing.T) {
		groups := collectGroups(catalog, 2, Constraints{})

		expected := [][]string{
			{"C0", "C1"}, {"C0", "C2"}, {"C0", "C3"}, {"C0", "C4"}, {"C0", "C5"},
			{"C1", "C2"}, {"C1", "C3"}, {"C1", "C4"}, {"C1", "C5"},
			{"C2", "C3"}, {"C2", "C4"}, {"C2", "C5"},
			{"C3", "C4"}, {"C3", "C5"},
			{"C4", "C5"},
		}
		actual := lo.Map(groups, func(group CandidateGroup, _ int) []string {
			return lo.Map(group, func(entry ClassEntry, _ int) string { return entry.Name })
		})
		assert.Equal(t, expected, actual)
	})

	t.Run("Out of range counts yield nothing", func(t *testing.T) {
		assert.Empty(t, collectGroups(catalog, 0, Constraints{}))
		assert.Empty(t, collectGroups(catalog, -3, Constraints{}))
		assert.Empty(t, collectGroups(catalog, len(catalog)+1, Constraints{}))
	})

	t.Run("Whole catalog", func(t *testing.T) {
		groups := collectGroups(catalog, len(catalog), Constraints{})
		assert.Len(t, groups, 1)
		assert.Len(t, groups[0], len(catalog))
	})

	t.Run("Restartable", func(t *testing.T) {
		sequence := Combinations(catalog, 3, Constraints{})

		first := make([]CandidateGroup, 0)
		for group := range sequence {
			first = append(first, group)
		}
		second := make([]CandidateGroup, 0)
		for group := range sequence {
			second = append(second, group)
		}
		assert.Equal(t, first, second)
	})

	t.Run("Early break stops enumeration", func(t *testing.T) {
		visited := 0
		for range Combinations(catalog, 2, Constraints{}) {
			visited++
			if visited == 3 {
				break
			}
		}
		assert.Equal(t, 3, visited)
	})

	t.Run("Repeated required names count once", func(t *testing.T) {
		constraints := Constraints{RequiredNames: []string{"C0", "C0"}}

		groups := collectGroups(catalog, 1, constraints)

		assert.Len(t, groups, 1)
		assert.Equal(t, "C0", groups[0][0].Name)

		// A repeat never tightens the prune below what the validator accepts
		groups = collectGroups(catalog, 2, Constraints{RequiredNames: []string{"C1", "C3", "C1"}})
		assert.Len(t, groups, 1)
	})

	t.Run("Required names prune branches without changing acceptance", func(t *testing.T) {
		constraints := Constraints{RequiredNames: []string{"C2", "C4"}}
		groups := collectGroups(catalog, 3, constraints)

		// Every emitted group carries both required classes, and every
		// unpruned combination is still present: C(6,3) restricted to
		// supersets of {C2, C4} leaves C(4,1) groups.
		assert.Len(t, groups, 4)
		for _, group := range groups {
			names := lo.Map(group, func(entry ClassEntry, _ int) string { return entry.Name })
			assert.Subset(t, names, []string{"C2", "C4"})
		}
	})
}
