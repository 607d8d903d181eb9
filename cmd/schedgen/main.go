package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vawerekax/schedgen/internal/config"
	"github.com/vawerekax/schedgen/internal/csvio"
	"github.com/vawerekax/schedgen/internal/render"
	"github.com/vawerekax/schedgen/pkg/model"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot load configuration")
	}

	if err := newRootCommand(cfg, logger).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	var (
		blockTokens   []string
		requiredNames []string
	)

	cmd := &cobra.Command{
		Use:   "schedgen <catalog> <count>",
		Short: "Generate every valid combination of classes from a catalog",
		Long: `schedgen enumerates every combination of <count> classes from the given
catalog (CSV with columns name,date1,date2,location,credits, or JSON) and
keeps the combinations whose sessions do not conflict: overlaps within the
allowed tolerance, enough travel time between different locations, nothing
on a blocked day, and all forcibly included classes present.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("count must be an integer, got %q", args[1])
			}

			blockedDays, err := model.ParseDays(blockTokens)
			if err != nil {
				return err
			}
			constraints := model.Constraints{
				BlockedDays:   blockedDays,
				RequiredNames: requiredNames,
				MinCredits:    cfg.MinCredits,
			}

			catalog, err := loadCatalog(args[0], cfg.Lenient, logger)
			if err != nil {
				return err
			}

			scheduler := model.NewCombinationScheduler(cfg.AllowedOverlap, cfg.MinTravelGap)
			schedules, err := scheduler.Generate(catalog, count, constraints)
			if err != nil {
				return err
			}

			report(cmd, schedules)

			if cfg.Render && len(schedules) > 0 {
				renderer := render.NewGridRenderer(cfg.OutputDir, logger)
				paths, err := renderer.RenderAll(schedules)
				if err != nil {
					return err
				}
				cmd.Printf("Rendered %d schedule(s) to %s.\n", len(paths), cfg.OutputDir)
			}
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.Flags().StringSliceVar(&blockTokens, "block", nil, "days to block, e.g. --block MON,TUE")
	cmd.Flags().StringSliceVar(&requiredNames, "include", nil, "class names to forcibly include in every schedule")
	cmd.Flags().IntVar(&cfg.AllowedOverlap, "overlap", cfg.AllowedOverlap, "maximum tolerated overlap between two sessions, in minutes")
	cmd.Flags().IntVar(&cfg.MinTravelGap, "gap", cfg.MinTravelGap, "minimum travel time between same-day sessions at different locations, in minutes")
	cmd.Flags().IntVar(&cfg.MinCredits, "min-credits", cfg.MinCredits, "minimum total credits per schedule (0 disables the floor)")
	cmd.Flags().StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "directory for rendered schedule grids")
	cmd.Flags().BoolVar(&cfg.Render, "render", cfg.Render, "render each accepted schedule to a weekly grid file")
	cmd.Flags().BoolVar(&cfg.Lenient, "lenient", cfg.Lenient, "skip malformed catalog rows instead of aborting")
	return cmd
}

func loadCatalog(path string, lenient bool, logger zerolog.Logger) (model.Catalog, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return model.CatalogFromJSON(path)
	}
	return csvio.NewLoader(lenient, logger).LoadCatalog(path)
}

func report(cmd *cobra.Command, schedules []model.Schedule) {
	cmd.Printf("Found %d valid schedule(s).\n\n", len(schedules))
	if len(schedules) == 0 {
		cmd.Println("No combination satisfies the given constraints. Try relaxing blocked days,")
		cmd.Println("forced inclusions, or the overlap and travel-gap tolerances.")
		return
	}
	for i, schedule := range schedules {
		cmd.Printf("Schedule %d (%d credits):\n", i+1, schedule.TotalCredits())
		for _, entry := range schedule {
			for _, slot := range entry.Slots {
				cmd.Printf("  %s at %s on %v from %s to %s\n",
					entry.Name, entry.Location, slot.Day,
					clock(slot.Start), clock(slot.End))
			}
		}
		cmd.Println()
	}
}

func clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
