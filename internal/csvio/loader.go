// Package csvio loads class catalogs from CSV files with the columns
// name, date1, date2, location, credits. Each dateN cell is either empty
// or a session of the form "DAY HH:MM-HH:MM".
package csvio

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog"

	"github.com/vawerekax/schedgen/pkg/model"
)

type catalogRow struct {
	Name     string `csv:"name"`
	Date1    string `csv:"date1"`
	Date2    string `csv:"date2"`
	Location string `csv:"location"`
	Credits  string `csv:"credits"`
}

// RowError identifies the catalog record that failed to parse. Record is
// 1-based over data records, so record 1 is the first line after the header.
type RowError struct {
	Record int
	Field  string
	Err    error
}

func (err *RowError) Error() string {
	return fmt.Sprintf("record %d: field %q: %v", err.Record, err.Field, err.Err)
}

func (err *RowError) Unwrap() error {
	return err.Err
}

// Loader reads catalogs from disk. By default the first malformed record
// aborts the load; a lenient loader instead logs and skips malformed
// records, which a caller must opt into explicitly.
type Loader struct {
	lenient bool
	logger  zerolog.Logger
}

func NewLoader(lenient bool, logger zerolog.Logger) *Loader {
	return &Loader{
		lenient: lenient,
		logger:  logger.With().Str("component", "catalog_loader").Logger(),
	}
}

// LoadCatalog parses the CSV file at path into a catalog, preserving row
// order. Duplicate class names and rows without any session are malformed.
func (loader *Loader) LoadCatalog(path string) (model.Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open catalog file: %w", err)
	}
	defer file.Close()

	rows := []*catalogRow{}
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("cannot parse catalog file %s: %w", path, err)
	}

	catalog := make(model.Catalog, 0, len(rows))
	seen := make(map[string]int)
	for i, row := range rows {
		record := i + 1
		entry, rowErr := convertRow(row, record)
		if rowErr == nil {
			if previous, duplicate := seen[entry.Name]; duplicate {
				rowErr = &RowError{
					Record: record,
					Field:  "name",
					Err:    fmt.Errorf("duplicate class %q (first seen in record %d)", entry.Name, previous),
				}
			}
		}
		if rowErr != nil {
			if !loader.lenient {
				return nil, rowErr
			}
			loader.logger.Warn().Int("record", rowErr.Record).Str("field", rowErr.Field).
				Err(rowErr.Err).Msg("skipping malformed catalog record")
			continue
		}
		seen[entry.Name] = record
		catalog = append(catalog, entry)
	}
	return catalog, nil
}

func convertRow(row *catalogRow, record int) (model.ClassEntry, *RowError) {
	name := strings.TrimSpace(row.Name)
	if name == "" {
		return model.ClassEntry{}, &RowError{Record: record, Field: "name", Err: fmt.Errorf("class name is empty")}
	}

	slots := make([]model.TimeSlot, 0, 2)
	for _, date := range []struct {
		field string
		value string
	}{
		{"date1", row.Date1},
		{"date2", row.Date2},
	} {
		// An empty date cell means the class has no second session, not a
		// placeholder slot.
		if strings.TrimSpace(date.value) == "" {
			continue
		}
		slot, err := model.ParseSlot(date.value)
		if err != nil {
			return model.ClassEntry{}, &RowError{Record: record, Field: date.field, Err: err}
		}
		slots = append(slots, slot)
	}
	if len(slots) == 0 {
		return model.ClassEntry{}, &RowError{Record: record, Field: "date1", Err: fmt.Errorf("class %q has no sessions", name)}
	}

	credits, err := strconv.Atoi(strings.TrimSpace(row.Credits))
	if err != nil || credits < 0 {
		return model.ClassEntry{}, &RowError{
			Record: record,
			Field:  "credits",
			Err:    fmt.Errorf("credits must be a non-negative integer, got %q", row.Credits),
		}
	}

	return model.ClassEntry{
		Name:     name,
		Slots:    slots,
		Location: strings.TrimSpace(row.Location),
		Credits:  credits,
	}, nil
}
