package main

import (
	"caengine/internal/config"
	"caengine/internal/core"
	"caengine/internal/term"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiFlags *config.Flags

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Watch and control a preset in the terminal",
	Long:  `Renders the grid with one terminal cell per automaton cell. Keys: space start/stop, n step, r reset, s reseed, tab next preset, [ ] speed, q quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		run, err := tuiFlags.Resolve()
		if err != nil {
			return err
		}
		logger := newLogger(cmd)
		defer logger.Sync()

		rule, err := run.Rule()
		if err != nil {
			return err
		}
		surface := term.NewSurface(run.Extent/run.Pitch, run.Extent/run.Pitch, run.Pitch)
		opts := run.EngineOptions()
		opts.Logger = logger
		eng, err := core.New(surface, opts)
		if err != nil {
			return err
		}
		if err := eng.SetRule(rule); err != nil {
			return err
		}
		model := term.NewModel(eng, surface, core.PresetKeys(), run.Seed, logger)
		autostart, _ := cmd.Flags().GetBool("start")
		if autostart {
			eng.Start()
		}
		_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiFlags = config.BindFlags(tuiCmd.Flags())
	tuiCmd.Flags().Bool("start", false, "start the clock immediately")
}
