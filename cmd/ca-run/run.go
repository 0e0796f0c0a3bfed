package main

import (
	"fmt"
	"time"

	"caengine/internal/config"
	"caengine/internal/core"
	"caengine/internal/metrics"
	"caengine/internal/render"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultRunSteps = 100

var runFlags *config.Flags

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute generations headless and optionally export the final frame",
	RunE: func(cmd *cobra.Command, args []string) error {
		run, err := runFlags.Resolve()
		if err != nil {
			return err
		}
		if run.Steps == 0 {
			run.Steps = defaultRunSteps
		}
		pngPath, _ := cmd.Flags().GetString("png")
		dumpMetrics, _ := cmd.Flags().GetBool("metrics")

		logger := newLogger(cmd)
		defer logger.Sync()

		rule, err := run.Rule()
		if err != nil {
			return err
		}

		opts := run.EngineOptions()
		opts.Logger = logger
		reg := prometheus.NewRegistry()
		if dumpMetrics {
			m, err := metrics.New(reg)
			if err != nil {
				return err
			}
			opts.Observer = m.Observer(rule.Name())
		}

		surface := render.NewPixelSurface(run.Extent, run.Extent)
		eng, err := core.New(surface, opts)
		if err != nil {
			return err
		}
		if err := eng.SetRule(rule); err != nil {
			return err
		}

		start := time.Now()
		for n := 0; n < run.Steps; n++ {
			if err := eng.Step(); err != nil {
				return err
			}
		}
		elapsed := time.Since(start)
		logger.Info("run finished",
			zap.String("rule", rule.Name()),
			zap.Uint64("generations", eng.Generation()),
			zap.Int64("seed", run.Seed),
			zap.Duration("elapsed", elapsed))

		if pngPath != "" {
			if err := surface.SavePNG(pngPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, generation %d)\n", pngPath, run.Extent, run.Extent, eng.Generation())
		}
		if dumpMetrics {
			return metrics.Dump(cmd.OutOrStdout(), reg)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runFlags = config.BindFlags(runCmd.Flags())
	runCmd.Flags().String("png", "", "write the final frame to this PNG file")
	runCmd.Flags().Bool("metrics", false, "print prometheus metrics after the run")
}
