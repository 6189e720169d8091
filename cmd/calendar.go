package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kilianp07/taskplan/config"
	"github.com/kilianp07/taskplan/core/calendar"
)

var calendarDate string

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Inspect the working-day calendar of a configuration",
	Long: "calendar checks a date against the configured holidays and weekend rule\n" +
		"without running a full plan, so a degenerate configuration can be caught early.",
	RunE: runCalendar,
}

func init() {
	calendarCmd.Flags().StringVarP(&calendarDate, "date", "d", "", "date to inspect (2006-01-02, defaults to the configured start date)")
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	plannerCfg, err := cfg.Planner.Planner()
	if err != nil {
		return fmt.Errorf("planner config: %w", err)
	}

	day := plannerCfg.StartDate
	if calendarDate != "" {
		day, err = time.Parse("2006-01-02", calendarDate)
		if err != nil {
			return fmt.Errorf("date %q: %w", calendarDate, err)
		}
	}
	if day.IsZero() {
		return errors.New("no date given and no start date configured")
	}

	holidays := calendar.NewHolidaySet(plannerCfg.Holidays...)
	out := cmd.OutOrStdout()
	switch {
	case calendar.IsHoliday(day, holidays):
		fmt.Fprintf(out, "%s is a holiday\n", day.Format("2006-01-02"))
	case !plannerCfg.IncludeWeekends && calendar.IsWeekend(day):
		fmt.Fprintf(out, "%s falls on a weekend\n", day.Format("2006-01-02"))
	default:
		fmt.Fprintf(out, "%s is a working day\n", day.Format("2006-01-02"))
		return nil
	}

	next, err := calendar.NextWorkingDay(day, holidays, plannerCfg.IncludeWeekends)
	if err != nil {
		if errors.Is(err, calendar.ErrNoWorkingDay) {
			return errors.New("not all days can be holidays: no working day available in the next year")
		}
		return err
	}
	fmt.Fprintf(out, "next working day: %s\n", next.Format("2006-01-02"))
	return nil
}
