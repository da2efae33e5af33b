// internal/cli/history.go
//
// `history`: prints recent recorded solves and aggregate stats.

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func historyCmd(a *app) *cobra.Command {
	var limit int
	var grids bool

	c := &cobra.Command{
		Use:   "history",
		Short: "List recorded solves",
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := a.history()
			if err != nil {
				return err
			}
			defer h.Close()

			results, err := h.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			stats, err := h.Stats(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "no solves recorded")
				return nil
			}

			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{
					r.FinishedAt.Local().Format("2006-01-02 15:04"),
					r.Mode,
					r.Status,
					r.Word,
					strconv.Itoa(r.Attempts),
					strings.Join(r.Guesses, " "),
				})
			}
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("FINISHED", "MODE", "STATUS", "WORD", "ATTEMPTS", "GUESSES").
				Rows(rows...)
			fmt.Fprintln(out, t.String())

			if grids {
				for _, r := range results {
					fmt.Fprintf(out, "\n%s %s\n%s\n", r.Status, r.Word, r.Grid)
				}
			}
			fmt.Fprintf(out, "played %d  solved %d  average attempts %.2f\n",
				stats.Played, stats.Solved, stats.AverageAttempts)
			return nil
		},
	}
	c.Flags().IntVar(&limit, "limit", 20, "number of solves to list")
	c.Flags().BoolVar(&grids, "grids", false, "print the emoji grid of each solve")
	return c
}
