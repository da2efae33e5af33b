// internal/solver/state.go
//
// Constraint state accumulated from feedback.
// Responsibilities:
//   - Track, per position, the letters still possible there.
//   - Track letters known to occur somewhere in the word.
//   - Apply one round of feedback for a guess (Ingest).
//
// Known limitation: repeated letters inside a guess are not reconciled.
// "SPEED" scored with one E present and one E absent removes E everywhere
// even though E is required. Callers can detect this with RepeatedLetters.

package solver

import (
	"errors"
	"fmt"
	"strings"
)

// WordLength is the number of letters in every guess.
const WordLength = 5

var (
	ErrInvalidFeedback = errors.New("invalid feedback")
	ErrInvalidGuess    = errors.New("invalid guess")
)

// State is the knowledge gathered from all feedback so far.
type State struct {
	Possible [WordLength]LetterSet `json:"possible"`
	Required LetterSet             `json:"required"`
}

// NewState returns the state of a fresh session: every letter possible at
// every position and nothing required.
func NewState() State {
	var st State
	for p := range st.Possible {
		st.Possible[p] = FullAlphabet()
	}
	return st
}

// Clone returns a deep copy.
func (st State) Clone() State {
	var out State
	for p := range st.Possible {
		out.Possible[p] = st.Possible[p].Clone()
	}
	out.Required = st.Required.Clone()
	return out
}

// Solved reports whether every position is pinned to a single letter.
func (st State) Solved() bool {
	for p := range st.Possible {
		if st.Possible[p].Len() != 1 {
			return false
		}
	}
	return true
}

// SolvedMask reports, per position, whether it is pinned.
func (st State) SolvedMask() [WordLength]bool {
	var m [WordLength]bool
	for p := range st.Possible {
		m[p] = st.Possible[p].Len() == 1
	}
	return m
}

// Word returns the resolved word once Solved.
func (st State) Word() (string, bool) {
	b := make([]byte, WordLength)
	for p := range st.Possible {
		c, ok := st.Possible[p].Only()
		if !ok {
			return "", false
		}
		b[p] = c
	}
	return string(b), true
}

// Contradictory reports whether some position has no letters left.
// No dictionary word can match such a state.
func (st State) Contradictory() bool {
	for p := range st.Possible {
		if st.Possible[p].Len() == 0 {
			return true
		}
	}
	return false
}

// Ingest applies one round of feedback for guess.
//
// Per position i:
//   - pinned before this round: treated as Correct whatever fb[i] holds;
//   - Correct: Possible[i] collapses to {guess[i]}, the letter becomes required;
//   - Present: guess[i] is removed from Possible[i], the letter becomes required;
//   - Absent: guess[i] is removed from every position, pinned ones included.
//
// Feedback for unpinned positions is validated before the state is touched, so an error leaves
// st unchanged. The returned tiles are the display colours for this round.
func (st *State) Ingest(guess string, fb [WordLength]Feedback) ([WordLength]Tile, error) {
	var tiles [WordLength]Tile

	g, err := NormalizeGuess(guess)
	if err != nil {
		return tiles, err
	}
	// Pinned is decided once, before this round's Absent removals.
	pinned := st.SolvedMask()
	for i, f := range fb {
		if !pinned[i] && !f.Valid() {
			return tiles, fmt.Errorf("%w at position %d: %d", ErrInvalidFeedback, i, uint8(f))
		}
	}

	for i := 0; i < WordLength; i++ {
		c := g[i]
		if pinned[i] {
			tiles[i] = TileGreen
			continue
		}
		switch fb[i] {
		case Correct:
			st.Possible[i] = LetterSetOf(c)
			st.Required.Add(c)
		case Present:
			st.Possible[i].Remove(c)
			st.Required.Add(c)
		case Absent:
			for p := range st.Possible {
				st.Possible[p].Remove(c)
			}
		}
		tiles[i] = fb[i].Tile()
	}
	return tiles, nil
}

// NormalizeGuess trims and uppercases s and checks it is five ASCII letters.
func NormalizeGuess(s string) (string, error) {
	g := strings.ToUpper(strings.TrimSpace(s))
	if len(g) != WordLength {
		return "", fmt.Errorf("%w: %q must have %d letters", ErrInvalidGuess, s, WordLength)
	}
	for i := 0; i < len(g); i++ {
		if g[i] < 'A' || g[i] > 'Z' {
			return "", fmt.Errorf("%w: %q must be letters A-Z", ErrInvalidGuess, s)
		}
	}
	return g, nil
}

// RepeatedLetters returns the letters that occur more than once in guess
// with differing feedback. Ingest does not reconcile these; callers should
// flag them.
func RepeatedLetters(guess string, fb [WordLength]Feedback) []byte {
	g := strings.ToUpper(guess)
	if len(g) != WordLength {
		return nil
	}
	var out []byte
	var seen LetterSet
	for i := 0; i < WordLength; i++ {
		if seen.Contains(g[i]) {
			continue
		}
		for j := i + 1; j < WordLength; j++ {
			if g[j] == g[i] && fb[j] != fb[i] {
				out = append(out, g[i])
				seen.Add(g[i])
				break
			}
		}
	}
	return out
}
