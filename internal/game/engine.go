// internal/game/engine.go
//
// Scoring engine for a game against a known answer.
// Responsibilities:
//   - Create games with a fixed row count.
//   - Validate and score guesses with the classic two-pass Wordle algorithm.
//   - Track state transitions: playing → won/lost.
//   - Act as a session.FeedbackProvider so the solver can play unattended.

package game

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

var ErrGameFinished = errors.New("game finished")

// New constructs a game for answer with the given number of rows.
// rows <= 0 means the default of 6.
func New(answer string, rows int) (*Game, error) {
	ans, err := solver.NormalizeGuess(answer)
	if err != nil {
		return nil, fmt.Errorf("answer: %w", err)
	}
	if rows <= 0 {
		rows = session.DefaultMaxAttempts
	}
	return &Game{
		ID:      randomID(),
		Answer:  ans,
		Rows:    rows,
		Guesses: []string{},
	}, nil
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns the per-letter feedback and the new state ("playing"/"won"/"lost").
func (g *Game) ApplyGuess(guess string) ([solver.WordLength]solver.Feedback, string, error) {
	var none [solver.WordLength]solver.Feedback
	if g.Finished {
		return none, g.state(), ErrGameFinished
	}
	gs, err := solver.NormalizeGuess(guess)
	if err != nil {
		return none, g.state(), err
	}

	fb := Score(g.Answer, gs)
	g.Guesses = append(g.Guesses, gs)

	if allCorrect(fb) {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return fb, g.state(), nil
}

// Feedback implements session.FeedbackProvider by scoring the prompted guess.
// Feedback for pinned positions is computed like any other; the session
// ignores it.
func (g *Game) Feedback(ctx context.Context, p session.Prompt) ([solver.WordLength]solver.Feedback, error) {
	if err := ctx.Err(); err != nil {
		var none [solver.WordLength]solver.Feedback
		return none, err
	}
	fb, _, err := g.ApplyGuess(p.Guess)
	return fb, err
}

// state reports a coarse string representation of the current game state.
func (g *Game) state() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// Score implements the standard Wordle two-pass scoring algorithm.
// Both words must be five uppercase letters.
//
// Pass 1:
//   - Mark exact matches Correct.
//   - Count remaining (non-matching) answer letters.
//
// Pass 2:
//   - For each other guess letter: if an unused answer letter remains, mark
//     Present and use it up; otherwise mark Absent.
func Score(answer, guess string) [solver.WordLength]solver.Feedback {
	var res [solver.WordLength]solver.Feedback
	answer, guess = strings.ToUpper(answer), strings.ToUpper(guess)
	if len(answer) != solver.WordLength || len(guess) != solver.WordLength {
		return res
	}

	var counts [solver.AlphabetSize]int

	for i := 0; i < solver.WordLength; i++ {
		if guess[i] == answer[i] {
			res[i] = solver.Correct
		} else if j := idx(answer[i]); j >= 0 {
			counts[j]++
		}
	}

	for i := 0; i < solver.WordLength; i++ {
		if res[i] == solver.Correct {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && counts[j] > 0 {
			res[i] = solver.Present
			counts[j]--
		} else {
			res[i] = solver.Absent
		}
	}
	return res
}

// idx maps an uppercase ASCII letter to 0..25, -1 otherwise.
func idx(c byte) int {
	if c < 'A' || c > 'Z' {
		return -1
	}
	return int(c - 'A')
}

func allCorrect(fb [solver.WordLength]solver.Feedback) bool {
	for _, f := range fb {
		if f != solver.Correct {
			return false
		}
	}
	return true
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
