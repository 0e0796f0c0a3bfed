package main

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"time"

	"caengine/internal/config"
	"caengine/internal/core"
	"caengine/internal/metrics"
	"caengine/internal/sweep"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var sweepFlags *config.Flags

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run a preset over a grid of options and seeds in parallel",
	Example: `  ca-run sweep -p mold -n 200 --vary neighbor_chance=0.0001,0.001 --vary radius=2,3 --seeds 1,2,3
  ca-run sweep -p forest --vary ignite_heat=1,2,3 --top 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		run, err := sweepFlags.Resolve()
		if err != nil {
			return err
		}
		if run.Steps == 0 {
			run.Steps = defaultRunSteps
		}
		vary, _ := cmd.Flags().GetStringArray("vary")
		seeds, _ := cmd.Flags().GetInt64Slice("seeds")
		workers, _ := cmd.Flags().GetInt("workers")
		top, _ := cmd.Flags().GetInt("top")
		dumpMetrics, _ := cmd.Flags().GetBool("metrics")

		plan := sweep.Plan{
			Preset: run.Preset,
			Base:   run.PresetOptions(),
			Vary:   map[string][]string{},
			Seeds:  seeds,
			Extent: run.Extent,
			Pitch:  run.Pitch,
			Steps:  run.Steps,
		}
		if len(plan.Seeds) == 0 {
			plan.Seeds = []int64{run.Seed}
		}
		for _, v := range vary {
			key, values, ok := strings.Cut(v, "=")
			if !ok || key == "" || values == "" {
				return fmt.Errorf("--vary %q: want key=v1,v2,...", v)
			}
			plan.Vary[key] = strings.Split(values, ",")
		}

		logger := newLogger(cmd)
		defer logger.Sync()

		reg := prometheus.NewRegistry()
		var obs sweep.ObserverFunc
		if dumpMetrics {
			m, err := metrics.New(reg)
			if err != nil {
				return err
			}
			obs = func(rule string) core.Observer { return m.Observer(rule) }
		}

		start := time.Now()
		results := sweep.Run(cmd.Context(), plan, workers, obs, logger)
		logger.Info("sweep finished", zap.Int("results", len(results)), zap.Duration("elapsed", time.Since(start)))

		tbl := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(borderStyle).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			}).
			Headers("RANK", "RUN", "COVERAGE", "GENERATIONS", "ELAPSED", "JOB")
		for i, r := range results {
			if top > 0 && i >= top {
				break
			}
			status := fmt.Sprintf("%.4f", r.Coverage)
			if r.Err != nil {
				status = "error: " + r.Err.Error()
			}
			tbl.Row(strconv.Itoa(i+1), r.ID.String(), status, strconv.FormatUint(r.Generations, 10), r.Elapsed.Round(time.Millisecond).String(), r.Job.String())
		}
		fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
		if dumpMetrics {
			return metrics.Dump(cmd.OutOrStdout(), reg)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepFlags = config.BindFlags(sweepCmd.Flags())
	sweepCmd.Flags().StringArray("vary", nil, "option to sweep as key=v1,v2,... (repeatable)")
	sweepCmd.Flags().Int64Slice("seeds", nil, "seeds to run every combination with (default: --seed)")
	sweepCmd.Flags().Int("workers", runtime.NumCPU(), "number of worker goroutines")
	sweepCmd.Flags().Int("top", 0, "only print the best N results (0 = all)")
	sweepCmd.Flags().Bool("metrics", false, "print prometheus metrics after the sweep")
}
