// internal/session/types.go
//
// Type definitions for a solving session.
// Defines:
//   - Config: opening guess and attempt cap.
//   - Status: playing → solved / failed.
//   - Round: one ingested attempt (guess, feedback, tiles).
//   - Collaborators: feedback provider, membership oracle, renderer.

package session

import (
	"context"
	"errors"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

const (
	DefaultOpeningGuess = "ADIEU"
	DefaultMaxAttempts  = 6
)

var (
	ErrNoCandidates = errors.New("no candidates remain")
	ErrFinished     = errors.New("session finished")
	ErrNoGuess      = errors.New("no guess proposed")
	ErrFixedOpening = errors.New("opening guess cannot be rejected")
)

// Config holds the tunables of a session.
type Config struct {
	OpeningGuess string `json:"openingGuess" yaml:"opening_guess"`
	MaxAttempts  int    `json:"maxAttempts" yaml:"max_attempts"`
}

// DefaultConfig returns {ADIEU, 6}.
func DefaultConfig() Config {
	return Config{OpeningGuess: DefaultOpeningGuess, MaxAttempts: DefaultMaxAttempts}
}

// Status is the lifecycle state of a session.
type Status string

const (
	StatusPlaying            Status = "playing"
	StatusSolved             Status = "solved"
	StatusFailedExhausted    Status = "failed_exhausted"
	StatusFailedNoCandidates Status = "failed_no_candidates"
)

// Terminal reports whether no further attempts will be made.
func (s Status) Terminal() bool { return s != StatusPlaying }

// Round records one ingested attempt.
type Round struct {
	Attempt  int                                `json:"attempt"`
	Guess    string                             `json:"guess"`
	Feedback [solver.WordLength]solver.Feedback `json:"feedback"`
	Tiles    [solver.WordLength]solver.Tile     `json:"tiles"`
}

// Outcome is the result of a finished session.
type Outcome struct {
	Status   Status  `json:"status"`
	Word     string  `json:"word,omitempty"`
	Attempts int     `json:"attempts"`
	Rounds   []Round `json:"rounds"`
}

// Prompt is what a feedback provider is asked about.
type Prompt struct {
	Attempt int
	Guess   string
	// Solved marks positions already pinned; their feedback is ignored and
	// providers need not ask for it.
	Solved [solver.WordLength]bool
}

// FeedbackProvider supplies one feedback value per position of a guess.
type FeedbackProvider interface {
	Feedback(ctx context.Context, p Prompt) ([solver.WordLength]solver.Feedback, error)
}

// FeedbackFunc adapts a function to FeedbackProvider.
type FeedbackFunc func(ctx context.Context, p Prompt) ([solver.WordLength]solver.Feedback, error)

func (f FeedbackFunc) Feedback(ctx context.Context, p Prompt) ([solver.WordLength]solver.Feedback, error) {
	return f(ctx, p)
}

// Oracle answers whether a word is accepted as a guess by the game.
type Oracle interface {
	Confirm(ctx context.Context, word string) (bool, error)
}

// OracleFunc adapts a function to Oracle.
type OracleFunc func(ctx context.Context, word string) (bool, error)

func (f OracleFunc) Confirm(ctx context.Context, word string) (bool, error) { return f(ctx, word) }

// AcceptAll confirms every word.
var AcceptAll Oracle = OracleFunc(func(context.Context, string) (bool, error) { return true, nil })

// Renderer consumes the tiles of each ingested round. Display only.
type Renderer interface {
	Render(r Round)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(r Round)

func (f RendererFunc) Render(r Round) { f(r) }

// Discard ignores every round.
var Discard Renderer = RendererFunc(func(Round) {})

// Collaborators bundles the external parties Run talks to.
// Nil Oracle means AcceptAll; nil Renderer means Discard.
type Collaborators struct {
	Feedback FeedbackProvider
	Oracle   Oracle
	Renderer Renderer
}
