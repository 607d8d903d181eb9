// Benchmark harness: measures enumeration and validation throughput over
// synthetic catalogs of growing size and writes the results as CSV.
package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/vawerekax/schedgen/pkg/model"
)

var catalogSizes = []int{10, 14, 18, 22}

const classesPerSchedule = 5

func main() {
	writer := csv.NewWriter(os.Stdout)
	defer writer.Flush()
	if err := writer.Write([]string{"catalog_size", "count", "candidates", "schedules", "millis"}); err != nil {
		log.Fatal(err)
	}

	scheduler := model.NewCombinationScheduler(model.DefaultAllowedOverlap, model.DefaultMinTravelGap)
	for _, size := range catalogSizes {
		catalog := syntheticCatalog(size)

		candidates := 0
		for range model.Combinations(catalog, classesPerSchedule, model.Constraints{}) {
			candidates++
		}

		start := time.Now()
		schedules, err := scheduler.Generate(catalog, classesPerSchedule, model.Constraints{})
		if err != nil {
			log.Fatal(err)
		}
		elapsed := time.Since(start)

		record := []string{
			strconv.Itoa(size),
			strconv.Itoa(classesPerSchedule),
			strconv.Itoa(candidates),
			strconv.Itoa(len(schedules)),
			strconv.FormatInt(elapsed.Milliseconds(), 10),
		}
		if err := writer.Write(record); err != nil {
			log.Fatal(err)
		}
	}
}

// syntheticCatalog spreads classes over weekday mornings and afternoons in
// two buildings so that a realistic fraction of combinations conflict.
func syntheticCatalog(size int) model.Catalog {
	catalog := make(model.Catalog, 0, size)
	for i := range size {
		day := model.Day(i % 5)
		start := 8*60 + (i%4)*150
		first, err := model.NewTimeSlot(day, start, start+120)
		if err != nil {
			log.Fatal(err)
		}
		second, err := model.NewTimeSlot(model.Day((i+2)%5), start, start+120)
		if err != nil {
			log.Fatal(err)
		}

		location := "North"
		if i%3 == 0 {
			location = "South"
		}
		catalog = append(catalog, model.ClassEntry{
			Name:     fmt.Sprintf("Class-%02d", i),
			Slots:    []model.TimeSlot{first, second},
			Location: location,
			Credits:  3 + i%3,
		})
	}
	return catalog
}
