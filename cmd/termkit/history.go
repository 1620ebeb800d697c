package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jask/termkit/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent console task runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")

		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.Recent(cmd.Context(), limit)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(runs) == 0 {
			fmt.Fprintln(out, "No runs recorded.")
			return nil
		}
		fmt.Fprintln(out, renderRuns(runs, cfg.Console.TimestampFormat))
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func renderRuns(runs []history.Run, tsFormat string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("FINISHED", "RESULT", "FAILED", "LINES", "DURATION", "RUN").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, r := range runs {
		t.Row(
			r.FinishedAt.Local().Format(tsFormat),
			strconv.FormatBool(r.Result),
			strconv.FormatBool(r.Failed),
			strconv.Itoa(r.Lines),
			r.Duration().Round(time.Millisecond).String(),
			r.ID,
		)
	}
	return t.String()
}
