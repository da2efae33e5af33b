// internal/cli/simulate.go
//
// `simulate`: the solver plays against a known answer.
// Feedback is scored locally, the lexicon acts as oracle, and the result is
// recorded with mode "simulate" unless --no-history is set.

package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/render"
	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func simulateCmd(a *app) *cobra.Command {
	var useDaily, all, noHistory bool
	var date string

	c := &cobra.Command{
		Use:   "simulate [answer]",
		Short: "Let the solver play against a known answer",
		Long: `Plays a full solve with feedback scored against the answer.
Without an answer a random one is chosen; --daily uses the answer of the day
and --all plays every eligible dictionary word and prints a summary.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lx, err := a.lexicon()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if all {
				return simulateAll(cmd, a, lx, out)
			}

			var answer string
			switch {
			case len(args) == 1:
				answer = args[0]
			case useDaily:
				day := time.Now()
				if date != "" {
					if day, err = time.Parse("2006-01-02", date); err != nil {
						return fmt.Errorf("--date: %w", err)
					}
				}
				answer = daily.Answer(day, a.cfg.DailySalt, lx.Answers())
				fmt.Fprintf(out, "Daily %s (#%d)\n", daily.DateKey(day), daily.PuzzleNumber(day))
			default:
				answer = lx.RandomAnswer()
			}

			sess, o, err := playOne(cmd, a, lx, answer, render.NewTerminal(out))
			if err != nil {
				return err
			}
			render.NewTerminal(out).Outcome(o)
			if o.Status != session.StatusSolved {
				fmt.Fprintf(out, "The answer was %s\n", strings.ToUpper(answer))
			}
			if !noHistory {
				recordResult(a, cmd, sess, "simulate")
			}
			return nil
		},
	}
	c.Flags().BoolVar(&useDaily, "daily", false, "play the answer of the day")
	c.Flags().StringVar(&date, "date", "", "day for --daily (YYYY-MM-DD, default today)")
	c.Flags().BoolVar(&all, "all", false, "play every eligible dictionary word and summarise")
	c.Flags().BoolVar(&noHistory, "no-history", false, "do not record the solve")
	a.sessionFlags(c)
	return c
}

// playOne runs a session against answer, confirming guesses with the allowed list.
func playOne(cmd *cobra.Command, a *app, lx *words.Lexicon, answer string, r session.Renderer) (*session.Session, session.Outcome, error) {
	g, err := game.New(answer, a.cfg.MaxAttempts)
	if err != nil {
		return nil, session.Outcome{}, err
	}
	sess, err := session.New(a.cfg.Session(), lx.Dictionary())
	if err != nil {
		return nil, session.Outcome{}, err
	}
	o, err := sess.Run(cmd.Context(), session.Collaborators{
		Feedback: g,
		Oracle:   lx.Oracle(),
		Renderer: r,
	})
	return sess, o, err
}

// simulateAll plays every answer and prints a distribution of attempts.
// History is not recorded.
func simulateAll(cmd *cobra.Command, a *app, lx *words.Lexicon, out io.Writer) error {
	if prev := zerolog.GlobalLevel(); prev < zerolog.WarnLevel {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		defer zerolog.SetGlobalLevel(prev)
	}

	dist := make([]int, a.cfg.MaxAttempts+1)
	var exhausted, noCandidates, solvedAttempts int
	var missed []string
	answers := lx.Answers()
	for _, ans := range answers {
		_, o, err := playOne(cmd, a, lx, ans, session.Discard)
		if err != nil {
			return fmt.Errorf("simulate %s: %w", ans, err)
		}
		switch o.Status {
		case session.StatusSolved:
			dist[o.Attempts]++
			solvedAttempts += o.Attempts
		case session.StatusFailedExhausted:
			exhausted++
			missed = append(missed, ans)
		case session.StatusFailedNoCandidates:
			noCandidates++
			missed = append(missed, ans)
		}
	}

	solved := len(answers) - exhausted - noCandidates
	fmt.Fprintf(out, "played %d  solved %d  exhausted %d  no-candidates %d\n",
		len(answers), solved, exhausted, noCandidates)
	if solved > 0 {
		fmt.Fprintf(out, "average attempts %.2f\n", float64(solvedAttempts)/float64(solved))
	}
	for i := 1; i < len(dist); i++ {
		fmt.Fprintf(out, "%d: %s %d\n", i, strings.Repeat("#", bar(dist[i], len(answers))), dist[i])
	}
	if len(missed) > 0 {
		fmt.Fprintf(out, "missed: %s\n", strings.Join(missed, " "))
	}
	log.Info().Int("played", len(answers)).Int("solved", solved).Msg("simulation finished")
	return nil
}

// bar scales n of total to at most 40 columns.
func bar(n, total int) int {
	if total == 0 || n == 0 {
		return 0
	}
	return max(1, n*40/total)
}
