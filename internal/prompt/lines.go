// internal/prompt/lines.go
//
// Line-oriented prompts for a human player.
// Used when stdin is not a terminal (pipes, scripts, tests): one answer per line.
//
// Feedback: one line per unsolved position, 1/2/3 (or g/y/b, correct/present/absent).
// Pinned positions are printed as "X?: 1" and not asked.
// Membership: "Y/N" per candidate word.

package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// ErrNoInput is returned when the input ends before an answer is read.
var ErrNoInput = errors.New("input closed")

// Lines asks for feedback and membership one line at a time.
type Lines struct {
	r *bufio.Reader
	w io.Writer
}

// NewLines reads answers from r and writes questions to w.
func NewLines(r io.Reader, w io.Writer) *Lines {
	return &Lines{r: bufio.NewReader(r), w: w}
}

// Feedback asks for each letter of p.Guess in turn, repeating until it reads
// 1, 2 or 3. Pinned positions are answered as correct without asking.
func (l *Lines) Feedback(ctx context.Context, p session.Prompt) ([solver.WordLength]solver.Feedback, error) {
	var fb [solver.WordLength]solver.Feedback

	fmt.Fprintf(l.w, "\nGuess Number %d: %s\n", p.Attempt, p.Guess)
	fmt.Fprintln(l.w, "---------------------")
	fmt.Fprintln(l.w, "Is the letter:")
	fmt.Fprintln(l.w, " 1) In the word and in the correct spot?")
	fmt.Fprintln(l.w, " 2) In the word but in the wrong spot?")
	fmt.Fprintln(l.w, " 3) Not in the word in any spot?")

	for i := 0; i < solver.WordLength; i++ {
		letter := p.Guess[i : i+1]
		if p.Solved[i] {
			fmt.Fprintf(l.w, "%s?: 1\n", letter)
			fb[i] = solver.Correct
			continue
		}
		for {
			line, err := l.ask(ctx, letter+"?: ")
			if err != nil {
				return fb, err
			}
			f, err := solver.ParseFeedback(line)
			if err == nil {
				fb[i] = f
				break
			}
			fmt.Fprintln(l.w, "Enter 1, 2 or 3.")
		}
	}
	return fb, nil
}

// Confirm asks whether word is an accepted guess.
func (l *Lines) Confirm(ctx context.Context, word string) (bool, error) {
	fmt.Fprintf(l.w, "\nIs the word: %s in the Wordle word list?\n", strings.ToUpper(word))
	for {
		line, err := l.ask(ctx, "Y/N: ")
		if err != nil {
			return false, err
		}
		switch strings.ToUpper(line) {
		case "Y", "YES":
			return true, nil
		case "N", "NO":
			return false, nil
		}
	}
}

// ask writes the prompt and reads one trimmed line.
func (l *Lines) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(l.w, prompt)
	line, err := l.r.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
