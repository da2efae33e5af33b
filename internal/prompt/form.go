// internal/prompt/form.go
//
// Interactive terminal prompts built on huh forms.

package prompt

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// Prompter is both halves of the human side of a solve.
type Prompter interface {
	session.FeedbackProvider
	session.Oracle
}

// Form asks through huh select and confirm fields.
type Form struct {
	in  io.Reader
	out io.Writer
}

// NewForm runs huh forms over in and out.
func NewForm(in io.Reader, out io.Writer) *Form { return &Form{in: in, out: out} }

func feedbackOptions() []huh.Option[solver.Feedback] {
	return []huh.Option[solver.Feedback]{
		huh.NewOption("1) in the word, correct spot", solver.Correct),
		huh.NewOption("2) in the word, wrong spot", solver.Present),
		huh.NewOption("3) not in the word", solver.Absent),
	}
}

// Feedback shows one select per unpinned letter of p.Guess in a single form.
// Pinned positions come back as correct.
func (f *Form) Feedback(ctx context.Context, p session.Prompt) ([solver.WordLength]solver.Feedback, error) {
	var fb [solver.WordLength]solver.Feedback
	var fields []huh.Field
	for i := 0; i < solver.WordLength; i++ {
		if p.Solved[i] {
			fb[i] = solver.Correct
			continue
		}
		fb[i] = solver.Absent
		fields = append(fields, huh.NewSelect[solver.Feedback]().
			Title(fmt.Sprintf("%c? (position %d)", p.Guess[i], i+1)).
			Options(feedbackOptions()...).
			Value(&fb[i]))
	}
	if len(fields) == 0 {
		return fb, nil
	}

	group := huh.NewGroup(fields...).Title(fmt.Sprintf("Guess %d: %s", p.Attempt, p.Guess))
	if err := f.run(ctx, group); err != nil {
		return fb, err
	}
	return fb, nil
}

// Confirm asks whether word is an accepted guess.
func (f *Form) Confirm(ctx context.Context, word string) (bool, error) {
	var ok bool
	field := huh.NewConfirm().
		Title(fmt.Sprintf("Is %s in the Wordle word list?", strings.ToUpper(word))).
		Affirmative("Yes").
		Negative("No").
		Value(&ok)
	if err := f.run(ctx, huh.NewGroup(field)); err != nil {
		return false, err
	}
	return ok, nil
}

func (f *Form) run(ctx context.Context, g *huh.Group) error {
	return huh.NewForm(g).
		WithInput(f.in).
		WithOutput(f.out).
		RunWithContext(ctx)
}

// Style selects the prompt implementation.
const (
	StyleAuto  = "auto"
	StyleForm  = "form"
	StyleLines = "lines"
)

// New returns huh forms when in is a terminal (or style is "form") and line
// prompts otherwise.
func New(in *os.File, out io.Writer, style string) Prompter {
	switch style {
	case StyleForm:
		return NewForm(in, out)
	case StyleLines:
		return NewLines(in, out)
	}
	if isTerminal(in) {
		return NewForm(in, out)
	}
	return NewLines(in, out)
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
