// internal/cli/solve.go
//
// `solve`: interactive session.
// Feedback and word-list answers come from the terminal (huh form or plain
// lines). Each round is rendered and the finished solve is recorded unless
// --no-history is set.

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/history"
	"github.com/robalobadob/wordle/apps/go-solver/internal/prompt"
	"github.com/robalobadob/wordle/apps/go-solver/internal/render"
	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
)

func solveCmd(a *app) *cobra.Command {
	var oracle string
	var noHistory bool

	c := &cobra.Command{
		Use:   "solve",
		Short: "Solve a puzzle interactively, reporting feedback for each guess",
		Long: `Proposes a guess each round and asks for the colour of every letter:
  1 = correct spot (green), 2 = wrong spot (yellow), 3 = not in the word (grey).
Positions already solved are filled in automatically.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lx, err := a.lexicon()
			if err != nil {
				return err
			}
			sess, err := session.New(a.cfg.Session(), lx.Dictionary())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			p := newPrompter(cmd.InOrStdin(), out, a.cfg.Prompt)
			collab := session.Collaborators{
				Feedback: p,
				Oracle:   p,
				Renderer: render.NewTerminal(out),
			}
			switch oracle {
			case "prompt":
			case "list":
				collab.Oracle = lx.Oracle()
			default:
				return fmt.Errorf("unknown oracle %q (want prompt or list)", oracle)
			}

			o, err := sess.Run(cmd.Context(), collab)
			if err != nil {
				return err
			}
			render.NewTerminal(out).Outcome(o)

			if !noHistory {
				recordResult(a, cmd, sess, "interactive")
			}
			return nil
		},
	}
	c.Flags().StringVar(&oracle, "oracle", "prompt", `how candidate words are confirmed: "prompt" asks, "list" uses the allowed-guess list`)
	c.Flags().BoolVar(&noHistory, "no-history", false, "do not record the solve")
	a.sessionFlags(c)
	return c
}

// newPrompter uses prompt.New for real files and line prompts otherwise.
func newPrompter(in io.Reader, out io.Writer, style string) prompt.Prompter {
	if f, ok := in.(*os.File); ok {
		return prompt.New(f, out, style)
	}
	return prompt.NewLines(in, out)
}

// recordResult writes a finished session to history. Failures are logged only.
func recordResult(a *app, cmd *cobra.Command, sess *session.Session, mode string) {
	h, err := a.history()
	if err != nil {
		log.Warn().Err(err).Msg("open history")
		return
	}
	defer h.Close()
	res := history.ResultFrom(sess, mode, render.EmojiGrid(sess.Rounds()))
	if err := h.Record(cmd.Context(), res); err != nil {
		log.Warn().Err(err).Msg("record history")
	}
}
