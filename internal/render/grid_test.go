package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/tealeg/xlsx/v3"

	"github.com/vawerekax/schedgen/pkg/model"
)

func sampleSchedule(t *testing.T, sessions ...string) model.Schedule {
	t.Helper()
	schedule := make(model.Schedule, 0, len(sessions))
	for i, session := range sessions {
		slot, err := model.ParseSlot(session)
		if err != nil {
			t.Fatalf("cannot parse session %q: %v", session, err)
		}
		schedule = append(schedule, model.ClassEntry{
			Name:     []string{"Math", "Physics", "Chemistry"}[i%3],
			Slots:    []model.TimeSlot{slot},
			Location: "A",
			Credits:  3,
		})
	}
	return schedule
}

func TestRenderAll(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "schedules")
	renderer := NewGridRenderer(outDir, zerolog.Nop())

	schedules := []model.Schedule{
		sampleSchedule(t, "MON 08:00-10:00", "TUE 09:00-11:00"),
		sampleSchedule(t, "WED 13:00-15:00"),
	}

	paths, err := renderer.RenderAll(schedules)

	assert.Nil(t, err)
	assert.Equal(t, []string{
		filepath.Join(outDir, "schedule_1.xlsx"),
		filepath.Join(outDir, "schedule_2.xlsx"),
	}, paths)
	for _, path := range paths {
		_, err := os.Stat(path)
		assert.Nil(t, err, "expected %s to exist", path)
	}
}

func TestRenderGridContent(t *testing.T) {
	outDir := t.TempDir()
	renderer := NewGridRenderer(outDir, zerolog.Nop())

	path, err := renderer.Render(sampleSchedule(t, "MON 08:00-10:00"), 0)
	assert.Nil(t, err)

	file, err := xlsx.OpenFile(path)
	assert.Nil(t, err)
	sheet, ok := file.Sheet["Schedule 1"]
	if !ok {
		t.Fatalf("sheet missing from %s", path)
	}

	header, err := sheet.Cell(0, 1)
	assert.Nil(t, err)
	assert.Equal(t, "MON", header.Value)

	// 08:00 is the first grid row inside the default window
	cell, err := sheet.Cell(1, int(model.Monday)+1)
	assert.Nil(t, err)
	assert.Equal(t, "Math @A", cell.Value)

	label, err := sheet.Cell(1, 0)
	assert.Nil(t, err)
	assert.Equal(t, "08:00", label.Value)
}

func TestRenderSharedCellKeepsBothLabels(t *testing.T) {
	renderer := NewGridRenderer(t.TempDir(), zerolog.Nop())

	// Overlap within tolerance: both sessions start in the 08:00 cell
	schedule := model.Schedule{
		{
			Name:     "Math",
			Slots:    []model.TimeSlot{{Day: model.Monday, Start: 8 * 60, End: 9 * 60}},
			Location: "A",
			Credits:  3,
		},
		{
			Name:     "Physics",
			Slots:    []model.TimeSlot{{Day: model.Monday, Start: 8*60 + 20, End: 10 * 60}},
			Location: "B",
			Credits:  3,
		},
	}

	path, err := renderer.Render(schedule, 0)
	assert.Nil(t, err)

	file, err := xlsx.OpenFile(path)
	assert.Nil(t, err)
	sheet := file.Sheet["Schedule 1"]

	cell, err := sheet.Cell(1, int(model.Monday)+1)
	assert.Nil(t, err)
	assert.Contains(t, cell.Value, "Math @A")
	assert.Contains(t, cell.Value, "Physics @B")
}

func TestRenderWidensWindow(t *testing.T) {
	renderer := NewGridRenderer(t.TempDir(), zerolog.Nop())

	// 06:30 is outside the default school-day window
	path, err := renderer.Render(sampleSchedule(t, "MON 06:30-08:00"), 0)
	assert.Nil(t, err)

	file, err := xlsx.OpenFile(path)
	assert.Nil(t, err)
	sheet := file.Sheet["Schedule 1"]

	label, err := sheet.Cell(1, 0)
	assert.Nil(t, err)
	assert.Equal(t, "06:30", label.Value)
}
