package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/five82/christoffel/internal/config"
	"github.com/five82/christoffel/internal/logtail"
)

var levelColors = map[string]string{
	"DEBUG": "#6272A4",
	"INFO":  "#4169E1",
	"WARN":  "#E5A50A",
	"ERROR": "#E01B24",
}

func newLogCmd(root *rootFlags) *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Print the tail of the activity log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			path := cfg.LogPath()
			raw, err := logtail.Read(path, lines)
			if err != nil {
				return fmt.Errorf("read activity log: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(raw) == 0 {
				fmt.Fprintf(out, "No activity yet (%s)\n", path)
				return nil
			}

			r := lipgloss.NewRenderer(out)
			for _, line := range raw {
				rec, ok := logtail.Parse(line)
				if !ok {
					fmt.Fprintln(out, line)
					continue
				}
				fmt.Fprintln(out, formatRecord(r, rec))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of lines to show (0 for all)")
	return cmd
}

// formatRecord renders rec with its level colored for the renderer's
// terminal. Plain writers get the same text with no escape codes.
func formatRecord(r *lipgloss.Renderer, rec logtail.Record) string {
	level := rec.Level
	if color, ok := levelColors[level]; ok {
		level = r.NewStyle().Foreground(lipgloss.Color(color)).Bold(true).Render(level)
	}
	styled := rec
	styled.Level = level
	return styled.String()
}
