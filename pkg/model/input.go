package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// ClassEntry is one class offered by the catalog: a unique name, one or two
// weekly sessions, the building it is taught in, and its credit count.
// Entries are immutable once the catalog is built.
type ClassEntry struct {
	Name     string
	Slots    []TimeSlot
	Location string
	Credits  int
}

// Catalog is the ordered, name-unique list of classes a run chooses from.
type Catalog []ClassEntry

// Names returns the class names in catalog order.
func (catalog Catalog) Names() []string {
	return lo.Map(catalog, func(entry ClassEntry, _ int) string {
		return entry.Name
	})
}

// Constraints narrow which combinations are acceptable. BlockedDays and
// RequiredNames behave as sets; MinCredits of 0 disables the credit floor.
type Constraints struct {
	BlockedDays   []Day
	RequiredNames []string
	MinCredits    int
}

// Blocked reports whether the day is excluded from all schedules.
func (constraints Constraints) Blocked(day Day) bool {
	return lo.Contains(constraints.BlockedDays, day)
}

// Validate checks the constraints against the catalog they will be applied
// to: every blocked day must be a real day and every required name must
// identify a catalog entry.
func (constraints Constraints) Validate(catalog Catalog) error {
	for _, day := range constraints.BlockedDays {
		if day < Monday || day > Sunday {
			return configurationErrorf("unrecognized blocked day %d: days range from %v to %v", int(day), Monday, Sunday)
		}
	}
	names := catalog.Names()
	for _, required := range constraints.RequiredNames {
		if !lo.Contains(names, required) {
			return configurationErrorf("required class %q is not in the catalog", required)
		}
	}
	if constraints.MinCredits < 0 {
		return configurationErrorf("minimum credits must not be negative, got %d", constraints.MinCredits)
	}
	return nil
}

// CandidateGroup is one untested combination of k distinct classes, in
// catalog index order. It borrows the catalog's entries and only lives for
// the duration of one enumeration pass.
type CandidateGroup []ClassEntry

// Schedule is a candidate group that passed validation.
type Schedule []ClassEntry

// TotalCredits sums the credit counts of the schedule's classes.
func (schedule Schedule) TotalCredits() int {
	return lo.SumBy(schedule, func(entry ClassEntry) int {
		return entry.Credits
	})
}

// ConfigurationError reports run parameters that can never produce a
// meaningful result, such as an out-of-range class count or a required
// class missing from the catalog. It is always fatal to the run.
type ConfigurationError struct {
	message string
}

func (err ConfigurationError) Error() string {
	return err.message
}

func configurationErrorf(format string, args ...any) ConfigurationError {
	return ConfigurationError{message: fmt.Sprintf(format, args...)}
}

type RawClass struct {
	Name     string
	Sessions []string
	Location string
	Credits  int
}

type RawCatalog struct {
	Classes []RawClass
}

// CatalogFromJSON loads a catalog from a JSON file of the form
// {"classes": [{"name": ..., "sessions": ["MON 08:00-10:00", ...], "location": ..., "credits": ...}]}.
func CatalogFromJSON(file string) (Catalog, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return nil, err
	}

	var rawCatalog RawCatalog
	if err := mapstructure.Decode(inputJson, &rawCatalog); err != nil {
		return nil, err
	}
	return ProcessRawCatalog(rawCatalog)
}

// ProcessRawCatalog converts raw classes into a validated Catalog: sessions
// are parsed through the slot grammar, every class must carry one or two
// sessions and a non-negative credit count, and names must be unique.
func ProcessRawCatalog(rawCatalog RawCatalog) (Catalog, error) {
	catalog := make(Catalog, 0, len(rawCatalog.Classes))
	seen := make(map[string]bool)
	for _, rawClass := range rawCatalog.Classes {
		if rawClass.Name == "" {
			return nil, fmt.Errorf("class with empty name")
		}
		if seen[rawClass.Name] {
			return nil, fmt.Errorf("duplicate class %q: catalog names must be unique", rawClass.Name)
		}
		seen[rawClass.Name] = true

		if len(rawClass.Sessions) < 1 || len(rawClass.Sessions) > 2 {
			return nil, fmt.Errorf("class %q must have one or two sessions, got %d", rawClass.Name, len(rawClass.Sessions))
		}
		slots := make([]TimeSlot, 0, len(rawClass.Sessions))
		for _, session := range rawClass.Sessions {
			slot, err := ParseSlot(session)
			if err != nil {
				return nil, fmt.Errorf("class %q: %v", rawClass.Name, err)
			}
			slots = append(slots, slot)
		}
		if rawClass.Credits < 0 {
			return nil, fmt.Errorf("class %q: credits must not be negative, got %d", rawClass.Name, rawClass.Credits)
		}

		catalog = append(catalog, ClassEntry{
			Name:     rawClass.Name,
			Slots:    slots,
			Location: rawClass.Location,
			Credits:  rawClass.Credits,
		})
	}
	return catalog, nil
}
