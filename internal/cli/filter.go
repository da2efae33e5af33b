// internal/cli/filter.go
//
// `filter`: one-shot candidate listing.
// Replays guess/pattern pairs into a fresh state and prints what survives.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

func filterCmd(a *app) *cobra.Command {
	var guesses, patterns []string
	var limit int

	c := &cobra.Command{
		Use:   "filter",
		Short: "Print the candidates left after some rounds",
		Example: `  wordle-solver filter --guess ADIEU --pattern YBBYB
  wordle-solver filter --guess ADIEU --pattern 23323 --guess CRANE --pattern YGGBG`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(guesses) != len(patterns) {
				return fmt.Errorf("%d guesses but %d patterns", len(guesses), len(patterns))
			}
			st := solver.NewState()
			for i, g := range guesses {
				fb, err := solver.ParsePattern(patterns[i])
				if err != nil {
					return err
				}
				if _, err := st.Ingest(g, fb); err != nil {
					return err
				}
			}

			lx, err := a.lexicon()
			if err != nil {
				return err
			}
			cands := solver.Filter(lx.Dictionary(), st)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d candidates\n", len(cands))
			for i, w := range cands {
				if limit > 0 && i >= limit {
					fmt.Fprintf(out, "... %d more\n", len(cands)-limit)
					break
				}
				fmt.Fprintln(out, w)
			}
			return nil
		},
	}
	c.Flags().StringArrayVar(&guesses, "guess", nil, "guessed word (repeatable, paired with --pattern)")
	c.Flags().StringArrayVar(&patterns, "pattern", nil, "feedback for the guess: G/Y/B or 1/2/3 per letter")
	c.Flags().IntVar(&limit, "limit", 0, "print at most this many candidates")
	return c
}
