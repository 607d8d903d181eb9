// Package render draws accepted schedules onto a weekly grid, one
// spreadsheet per schedule, numbered by discovery order.
package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/tealeg/xlsx/v3"

	"github.com/vawerekax/schedgen/pkg/model"
)

// Grid rows are half-hour steps; the window defaults to a school day and
// widens when a session falls outside it.
const (
	gridStep           = 30
	defaultWindowStart = 8 * 60  // 08:00
	defaultWindowEnd   = 20 * 60 // 20:00
)

type GridRenderer struct {
	outDir string
	logger zerolog.Logger
}

func NewGridRenderer(outDir string, logger zerolog.Logger) *GridRenderer {
	return &GridRenderer{
		outDir: outDir,
		logger: logger.With().Str("component", "grid_renderer").Logger(),
	}
}

// RenderAll writes one grid file per schedule and returns the written paths
// in schedule order.
func (renderer *GridRenderer) RenderAll(schedules []model.Schedule) ([]string, error) {
	if err := os.MkdirAll(renderer.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create output directory: %w", err)
	}
	paths := make([]string, 0, len(schedules))
	for i, schedule := range schedules {
		path, err := renderer.Render(schedule, i)
		if err != nil {
			return paths, err
		}
		renderer.logger.Debug().Str("path", path).Msg("rendered schedule")
		paths = append(paths, path)
	}
	return paths, nil
}

// Render writes the schedule at the given zero-based discovery index to
// schedule_<index+1>.xlsx inside the output directory.
func (renderer *GridRenderer) Render(schedule model.Schedule, index int) (string, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(fmt.Sprintf("Schedule %d", index+1))
	if err != nil {
		return "", err
	}

	windowStart, windowEnd := window(schedule)

	header := sheet.AddRow()
	header.AddCell() // corner above the time column
	for day := model.Monday; day <= model.Sunday; day++ {
		header.AddCell().SetString(day.String())
	}

	rows := (windowEnd - windowStart) / gridStep
	grid := make([][]*xlsx.Cell, rows)
	for i := range rows {
		row := sheet.AddRow()
		row.AddCell().SetString(clockLabel(windowStart + i*gridStep))
		grid[i] = make([]*xlsx.Cell, int(model.Sunday)+1)
		for day := model.Monday; day <= model.Sunday; day++ {
			grid[i][day] = row.AddCell()
		}
	}

	for _, entry := range schedule {
		for _, slot := range entry.Slots {
			first := (slot.Start - windowStart) / gridStep
			last := (slot.End - windowStart - 1) / gridStep
			cell := grid[first][slot.Day]
			label := fmt.Sprintf("%s @%s", entry.Name, entry.Location)
			// Tolerated overlaps can land two sessions in one cell
			if cell.Value != "" {
				label = cell.Value + " / " + label
			}
			cell.SetString(label)
			if last > first {
				grid[first][slot.Day].Merge(0, last-first)
			}
		}
	}

	path := filepath.Join(renderer.outDir, fmt.Sprintf("schedule_%d.xlsx", index+1))
	if err := file.Save(path); err != nil {
		return "", fmt.Errorf("cannot write %s: %w", path, err)
	}
	return path, nil
}

// window returns the grid's time bounds, snapped to the grid step.
func window(schedule model.Schedule) (int, int) {
	start, end := defaultWindowStart, defaultWindowEnd
	for _, entry := range schedule {
		for _, slot := range entry.Slots {
			if slot.Start < start {
				start = slot.Start
			}
			if slot.End > end {
				end = slot.End
			}
		}
	}
	start = (start / gridStep) * gridStep
	end = ((end + gridStep - 1) / gridStep) * gridStep
	return start, end
}

func clockLabel(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
