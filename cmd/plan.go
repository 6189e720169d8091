package cmd

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kilianp07/taskplan/config"
	"github.com/kilianp07/taskplan/core/calendar"
	coremetrics "github.com/kilianp07/taskplan/core/metrics"
	"github.com/kilianp07/taskplan/core/model"
	"github.com/kilianp07/taskplan/core/planner"
	"github.com/kilianp07/taskplan/infra/logger"
	_ "github.com/kilianp07/taskplan/infra/metrics" // register metrics sinks
	"github.com/kilianp07/taskplan/internal/taskfile"
)

var (
	tasksPath  string
	planOutput string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute a schedule from a task list",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&tasksPath, "tasks", "t", "tasks.yaml", "task list file (yaml or json)")
	planCmd.Flags().StringVarP(&planOutput, "output", "o", "table", "output format: table, json or csv")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.SetLevel(cfg.Logging.Level)
	logg := logger.New("plan-command")

	plannerCfg, err := cfg.Planner.Planner()
	if err != nil {
		return fmt.Errorf("planner config: %w", err)
	}

	tasks, err := taskfile.Load(tasksPath, logg)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	planID := uuid.NewString()
	began := time.Now()
	sched, err := planner.Schedule(tasks, plannerCfg)
	if err != nil {
		if errors.Is(err, calendar.ErrNoWorkingDay) {
			return errors.New("not all days can be holidays: no working day available in the next year")
		}
		return err
	}
	elapsed := time.Since(began)

	sum := planner.Summarize(sched, plannerCfg)
	logg.Debugw("plan computed", map[string]any{
		"plan_id": planID,
		"tasks":   sum.Tasks,
		"elapsed": elapsed.String(),
	})
	logg.Infof("plan %s: %d tasks, %.1fh over %d working days (%s to %s)",
		planID, sum.Tasks, sum.TotalEffort, sum.WorkingDays,
		sum.Start.Format("2006-01-02"), sum.End.Format("2006-01-02"))

	if err := recordMetrics(cfg, planID, sched, sum, elapsed); err != nil {
		logg.Errorf("metrics: %v", err)
	}

	return renderSchedule(cmd.OutOrStdout(), sched, planOutput)
}

func recordMetrics(cfg *config.Config, planID string, sched []model.ScheduledTask,
	sum planner.Summary, elapsed time.Duration,
) error {
	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return err
	}
	evs := make([]coremetrics.TaskScheduleEvent, len(sched))
	for i, s := range sched {
		evs[i] = coremetrics.TaskScheduleEvent{
			PlanID:   planID,
			TaskID:   s.ID,
			Name:     s.Name,
			Effort:   s.Effort,
			Start:    s.Start,
			End:      s.End,
			SpanDays: s.SpanDays(),
		}
	}
	if err := sink.RecordTasks(evs); err != nil {
		return err
	}
	return sink.RecordPlan(coremetrics.PlanEvent{
		PlanID:      planID,
		Tasks:       sum.Tasks,
		TotalEffort: sum.TotalEffort,
		Start:       sum.Start,
		End:         sum.End,
		Elapsed:     elapsed,
	})
}

func renderSchedule(w io.Writer, sched []model.ScheduledTask, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sched)
	case "csv":
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"id", "name", "effort_hours", "start", "end"}); err != nil {
			return err
		}
		for _, s := range sched {
			rec := []string{
				s.ID,
				s.Name,
				strconv.FormatFloat(s.Effort, 'f', -1, 64),
				s.Start.Format("2006-01-02"),
				s.End.Format("2006-01-02"),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case "table":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tEFFORT\tSTART\tEND")
		for _, s := range sched {
			fmt.Fprintf(tw, "%s\t%.1fh\t%s\t%s\n",
				s.Name, s.Effort, s.Start.Format("2006-01-02"), s.End.Format("2006-01-02"))
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
