// internal/solver/feedback.go
//
// Feedback and Tile types.
// Feedback is what the player reports for one letter of a guess; Tile is the
// colour shown for it. The numeric values of Correct/Present/Absent match the
// 1/2/3 menu used by the interactive prompt.

package solver

import (
	"fmt"
	"strings"
)

// Feedback is the tri-state result reported for one letter of a guess.
// The zero value is not a valid kind.
type Feedback uint8

const (
	Correct Feedback = iota + 1 // letter belongs exactly at this position
	Present                     // letter is in the word, not at this position
	Absent                      // letter does not occur in the word
)

// Valid reports whether f is one of Correct, Present or Absent.
func (f Feedback) Valid() bool { return f >= Correct && f <= Absent }

func (f Feedback) String() string {
	switch f {
	case Correct:
		return "correct"
	case Present:
		return "present"
	case Absent:
		return "absent"
	}
	return fmt.Sprintf("feedback(%d)", uint8(f))
}

// Tile maps feedback onto its display colour.
func (f Feedback) Tile() Tile {
	switch f {
	case Correct:
		return TileGreen
	case Present:
		return TileYellow
	}
	return TileBlack
}

// MarshalText encodes f by name.
func (f Feedback) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFeedback, uint8(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText accepts anything ParseFeedback does.
func (f *Feedback) UnmarshalText(text []byte) error {
	v, err := ParseFeedback(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// ParseFeedback reads one feedback value.
// Accepted (case-insensitive): 1/2/3, c/p/a, g/y/b and the full names
// correct/present/absent, green/yellow/black, hit/miss.
func ParseFeedback(s string) (Feedback, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "c", "g", "correct", "green", "hit":
		return Correct, nil
	case "2", "p", "y", "present", "yellow":
		return Present, nil
	case "3", "a", "b", "x", "absent", "black", "miss":
		return Absent, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFeedback, s)
}

// ParsePattern reads five feedback values written as single characters,
// e.g. "BYBGB" or "32313". Spaces are ignored.
func ParsePattern(s string) ([WordLength]Feedback, error) {
	var out [WordLength]Feedback
	compact := strings.Join(strings.Fields(s), "")
	if len(compact) != WordLength {
		return out, fmt.Errorf("%w: pattern %q must have %d marks", ErrInvalidFeedback, s, WordLength)
	}
	for i := 0; i < WordLength; i++ {
		f, err := ParseFeedback(compact[i : i+1])
		if err != nil {
			return out, fmt.Errorf("position %d: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}

// Pattern is the inverse of ParsePattern using G/Y/B letters.
func Pattern(fb [WordLength]Feedback) string {
	var b strings.Builder
	for _, f := range fb {
		switch f {
		case Correct:
			b.WriteByte('G')
		case Present:
			b.WriteByte('Y')
		case Absent:
			b.WriteByte('B')
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}

// Tile is the display colour of one position of one attempt.
type Tile string

const (
	TileGreen  Tile = "green"
	TileYellow Tile = "yellow"
	TileBlack  Tile = "black"
)
