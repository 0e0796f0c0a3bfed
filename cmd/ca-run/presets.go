package main

import (
	"fmt"
	"slices"
	"strings"

	"caengine/internal/core"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	keyStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	paramStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List registered presets and their default options",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		presets := core.Presets()
		for _, key := range core.PresetKeys() {
			r := presets[key]
			fmt.Fprintf(out, "%s  %s\n", keyStyle.Render(key), r.Name())
			vals := r.Parameters().Values()
			if len(vals) == 0 {
				continue
			}
			keys := make([]string, 0, len(vals))
			for k := range vals {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			pairs := make([]string, len(keys))
			for i, k := range keys {
				pairs[i] = k + "=" + vals[k]
			}
			fmt.Fprintln(out, paramStyle.Render("    "+strings.Join(pairs, " ")))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
