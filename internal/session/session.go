// internal/session/session.go
//
// Session control for one solve.
// Responsibilities:
//   - Propose guesses: the fixed opening guess first, then the first candidate
//     the membership oracle confirms.
//   - Ingest feedback into the constraint state and re-filter the pool.
//   - Track transitions: playing → solved / failed_exhausted / failed_no_candidates.
//
// A Session is single-owner and not safe for concurrent use; the HTTP layer
// serialises access through the store.

package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// Session is the state of one solve.
type Session struct {
	ID        string
	CreatedAt time.Time

	cfg        Config
	dictionary []string
	state      solver.State
	candidates []string
	attempt    int
	status     Status
	guess      string // proposed for the current attempt, "" until NextGuess
	cursor     int    // next candidate to offer the oracle in this attempt
	rounds     []Round
}

// New starts a session over dictionary. The dictionary is read, never modified.
func New(cfg Config, dictionary []string) (*Session, error) {
	if cfg.OpeningGuess == "" {
		cfg.OpeningGuess = DefaultOpeningGuess
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	opening, err := solver.NormalizeGuess(cfg.OpeningGuess)
	if err != nil {
		return nil, fmt.Errorf("opening guess: %w", err)
	}
	cfg.OpeningGuess = opening

	st := solver.NewState()
	return &Session{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		cfg:        cfg,
		dictionary: dictionary,
		state:      st,
		candidates: solver.Filter(dictionary, st),
		attempt:    1,
		status:     StatusPlaying,
	}, nil
}

// Status reports the lifecycle state.
func (s *Session) Status() Status { return s.status }

// Attempt reports the current attempt number, starting at 1.
func (s *Session) Attempt() int { return s.attempt }

// Guess reports the guess proposed for the current attempt, if any.
func (s *Session) Guess() string { return s.guess }

// Candidates returns the current candidate pool. Callers must not modify it.
func (s *Session) Candidates() []string { return s.candidates }

// State returns a copy of the constraint state.
func (s *Session) State() solver.State { return s.state.Clone() }

// Rounds returns the ingested rounds so far.
func (s *Session) Rounds() []Round {
	out := make([]Round, len(s.rounds))
	copy(out, s.rounds)
	return out
}

// NextGuess proposes the guess for the current attempt.
// Attempt 1 always uses the opening guess. Later attempts walk the pool in
// order and take the first word the oracle confirms. Calling NextGuess again
// before Submit returns the same guess. When the pool runs out without a
// confirmation the session ends with StatusFailedNoCandidates.
func (s *Session) NextGuess(ctx context.Context, oracle Oracle) (string, error) {
	if s.status.Terminal() {
		return "", ErrFinished
	}
	if s.guess != "" {
		return s.guess, nil
	}
	if s.attempt == 1 {
		s.guess = s.cfg.OpeningGuess
		return s.guess, nil
	}
	if oracle == nil {
		oracle = AcceptAll
	}
	for s.cursor < len(s.candidates) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		w, err := solver.NormalizeGuess(s.candidates[s.cursor])
		s.cursor++
		if err != nil {
			continue
		}
		ok, err := oracle.Confirm(ctx, w)
		if err != nil {
			return "", fmt.Errorf("confirm %s: %w", w, err)
		}
		if ok {
			s.guess = w
			return w, nil
		}
		log.Debug().Str("session", s.ID).Str("word", w).Msg("oracle rejected candidate")
	}
	s.status = StatusFailedNoCandidates
	return "", ErrNoCandidates
}

// Reject discards the current guess because the game would not accept it.
// The next NextGuess resumes after it in the pool.
func (s *Session) Reject() error {
	if s.status.Terminal() {
		return ErrFinished
	}
	if s.guess == "" {
		return ErrNoGuess
	}
	if s.attempt == 1 {
		return ErrFixedOpening
	}
	s.guess = ""
	return nil
}

// Submit ingests feedback for the current guess and advances the session.
func (s *Session) Submit(fb [solver.WordLength]solver.Feedback) (Round, error) {
	if s.status.Terminal() {
		return Round{}, ErrFinished
	}
	if s.guess == "" {
		return Round{}, ErrNoGuess
	}

	tiles, err := s.state.Ingest(s.guess, fb)
	if err != nil {
		return Round{}, err
	}
	if rep := solver.RepeatedLetters(s.guess, fb); len(rep) > 0 {
		log.Warn().Str("session", s.ID).Str("guess", s.guess).Str("letters", string(rep)).
			Msg("repeated letters with mixed feedback are not reconciled")
	}
	if s.state.Contradictory() {
		log.Warn().Str("session", s.ID).Msg("feedback left a position with no possible letters")
	}

	r := Round{Attempt: s.attempt, Guess: s.guess, Feedback: fb, Tiles: tiles}
	s.rounds = append(s.rounds, r)
	s.guess = ""
	s.cursor = 0

	log.Debug().Str("session", s.ID).Int("attempt", r.Attempt).Str("guess", r.Guess).
		Str("pattern", solver.Pattern(fb)).Msg("round ingested")

	s.candidates = solver.Filter(s.dictionary, s.state)
	switch {
	case s.state.Solved():
		s.status = StatusSolved
	case len(s.candidates) == 0:
		s.status = StatusFailedNoCandidates
	case s.attempt >= s.cfg.MaxAttempts:
		s.status = StatusFailedExhausted
	default:
		s.attempt++
	}
	return r, nil
}

// Outcome summarises the session. Word is set only when solved.
func (s *Session) Outcome() Outcome {
	o := Outcome{Status: s.status, Attempts: s.attempt, Rounds: s.Rounds()}
	if s.status == StatusSolved {
		o.Word, _ = s.state.Word()
	}
	return o
}

// Run drives the session to a terminal state.
func (s *Session) Run(ctx context.Context, c Collaborators) (Outcome, error) {
	if c.Feedback == nil {
		return Outcome{}, errors.New("session: no feedback provider")
	}
	if c.Renderer == nil {
		c.Renderer = Discard
	}

	for !s.status.Terminal() {
		if err := ctx.Err(); err != nil {
			return s.Outcome(), err
		}
		guess, err := s.NextGuess(ctx, c.Oracle)
		if errors.Is(err, ErrNoCandidates) {
			break
		}
		if err != nil {
			return s.Outcome(), err
		}

		fb, err := c.Feedback.Feedback(ctx, Prompt{
			Attempt: s.attempt,
			Guess:   guess,
			Solved:  s.state.SolvedMask(),
		})
		if err != nil {
			return s.Outcome(), fmt.Errorf("feedback for %s: %w", guess, err)
		}
		r, err := s.Submit(fb)
		if err != nil {
			return s.Outcome(), err
		}
		c.Renderer.Render(r)
	}

	o := s.Outcome()
	log.Info().Str("session", s.ID).Str("status", string(o.Status)).Str("word", o.Word).
		Int("attempts", o.Attempts).Msg("session finished")
	return o, nil
}

// Snapshot is a read-only view of a session for callers outside the package.
type Snapshot struct {
	ID         string       `json:"sessionId"`
	Status     Status       `json:"status"`
	Attempt    int          `json:"attempt"`
	Guess      string       `json:"guess,omitempty"`
	Word       string       `json:"word,omitempty"`
	Remaining  int          `json:"remaining"`
	State      solver.State `json:"state"`
	Rounds     []Round      `json:"rounds"`
	CreatedAt  time.Time    `json:"createdAt"`
	Candidates []string     `json:"candidates,omitempty"`
}

// Snapshot returns a copy of the session's observable state. At most
// limit candidates are included; limit <= 0 includes none.
func (s *Session) Snapshot(limit int) Snapshot {
	snap := Snapshot{
		ID:        s.ID,
		Status:    s.status,
		Attempt:   s.attempt,
		Guess:     s.guess,
		Remaining: len(s.candidates),
		State:     s.state.Clone(),
		Rounds:    s.Rounds(),
		CreatedAt: s.CreatedAt,
	}
	if s.status == StatusSolved {
		snap.Word, _ = s.state.Word()
	}
	if limit > 0 {
		n := min(limit, len(s.candidates))
		snap.Candidates = append([]string(nil), s.candidates[:n]...)
	}
	return snap
}
