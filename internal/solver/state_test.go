package solver

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func without(letters string) string {
	var b strings.Builder
	for i := 0; i < len(alphabet); i++ {
		if !strings.ContainsRune(letters, rune(alphabet[i])) {
			b.WriteByte(alphabet[i])
		}
	}
	return b.String()
}

func TestNewState(t *testing.T) {
	st := NewState()
	for p := 0; p < WordLength; p++ {
		assert.Equal(t, alphabet, st.Possible[p].Letters(), "position %d", p)
	}
	assert.Equal(t, 0, st.Required.Len())
	assert.False(t, st.Solved())
}

func TestIngest_OpeningScenario(t *testing.T) {
	st := NewState()
	tiles, err := st.Ingest("ADIEU", [5]Feedback{Absent, Present, Absent, Correct, Absent})
	require.NoError(t, err)

	assert.Equal(t, [5]Tile{TileBlack, TileYellow, TileBlack, TileGreen, TileBlack}, tiles)
	assert.Equal(t, without("AIU"), st.Possible[0].Letters())
	assert.Equal(t, without("ADIU"), st.Possible[1].Letters())
	assert.Equal(t, without("AIU"), st.Possible[2].Letters())
	assert.Equal(t, "E", st.Possible[3].Letters())
	assert.Equal(t, without("AIU"), st.Possible[4].Letters())
	assert.Equal(t, "DE", st.Required.Letters())
}

func TestIngest_SkipsPinnedPositions(t *testing.T) {
	st := NewState()
	_, err := st.Ingest("CRANE", [5]Feedback{Correct, Absent, Absent, Absent, Absent})
	require.NoError(t, err)
	require.Equal(t, "C", st.Possible[0].Letters())

	// Position 0 is pinned: its feedback is ignored and shown green.
	tiles, err := st.Ingest("SPOIL", [5]Feedback{Absent, Present, Absent, Absent, Absent})
	require.NoError(t, err)
	assert.Equal(t, TileGreen, tiles[0])
	assert.Equal(t, "C", st.Possible[0].Letters())
	assert.True(t, st.Possible[1].Contains('S'), "skipped position does not strip its letter")
	assert.False(t, st.Possible[1].Contains('P'))
	assert.False(t, st.Possible[4].Contains('O'))
	assert.Equal(t, "CP", st.Required.Letters())
}

func TestIngest_AbsentReachesPinnedPositions(t *testing.T) {
	st := NewState()
	_, err := st.Ingest("SPEED", [5]Feedback{Absent, Absent, Correct, Absent, Absent})
	require.NoError(t, err)

	// The second E is absent and the engine does not reconcile repeats:
	// E is stripped from the pinned position as well.
	assert.Equal(t, 0, st.Possible[2].Len())
	assert.True(t, st.Contradictory())
	assert.Equal(t, "E", st.Required.Letters())
	assert.Equal(t, []byte{'E'}, RepeatedLetters("SPEED", [5]Feedback{Absent, Absent, Correct, Absent, Absent}))
}

func TestIngest_PinnedPositionNotRepinnedInSameRound(t *testing.T) {
	st := NewState()
	_, err := st.Ingest("ABCDX", [5]Feedback{Absent, Absent, Absent, Absent, Correct})
	require.NoError(t, err)
	require.Equal(t, "X", st.Possible[4].Letters())

	// X is reported absent at position 0, which strips the pinned X; the
	// Correct W at position 4 is still ignored because it was pinned.
	tiles, err := st.Ingest("XFGHW", [5]Feedback{Absent, Absent, Absent, Absent, Correct})
	require.NoError(t, err)
	assert.Equal(t, TileGreen, tiles[4])
	assert.False(t, st.Possible[4].Contains('W'))
	assert.Equal(t, 0, st.Possible[4].Len())
	assert.False(t, st.Required.Contains('W'))
}

func TestIngest_PinnedPositionAcceptsAnyFeedback(t *testing.T) {
	st := NewState()
	_, err := st.Ingest("CRANE", [5]Feedback{Correct, Absent, Absent, Absent, Absent})
	require.NoError(t, err)

	tiles, err := st.Ingest("CHOSE", [5]Feedback{0, Absent, Absent, Absent, Absent})
	require.NoError(t, err)
	assert.Equal(t, TileGreen, tiles[0])
	assert.Equal(t, "C", st.Possible[0].Letters())
	assert.False(t, st.Possible[1].Contains('H'))

	// Unpinned positions are still validated.
	before := st.Clone()
	_, err = st.Ingest("CHOSE", [5]Feedback{0, Absent, 0, Absent, Absent})
	assert.ErrorIs(t, err, ErrInvalidFeedback)
	assert.Empty(t, cmp.Diff(before.Possible[3].Letters(), st.Possible[3].Letters()))
}

func TestIngest_CorrectReexpandsRemovedLetter(t *testing.T) {
	st := NewState()
	_, err := st.Ingest("ABBEY", [5]Feedback{Present, Absent, Absent, Absent, Absent})
	require.NoError(t, err)
	require.False(t, st.Possible[0].Contains('A'))

	_, err = st.Ingest("ADORN", [5]Feedback{Correct, Absent, Absent, Absent, Absent})
	require.NoError(t, err)
	assert.Equal(t, "A", st.Possible[0].Letters())
}

func TestIngest_InvalidFeedbackLeavesStateUntouched(t *testing.T) {
	st := NewState()
	before := st.Clone()

	_, err := st.Ingest("ADIEU", [5]Feedback{Absent, Absent, 0, Absent, Absent})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidFeedback))
	for p := range st.Possible {
		assert.True(t, before.Possible[p].Equal(st.Possible[p]), "position %d changed", p)
	}

	_, err = st.Ingest("ADIEU", [5]Feedback{Absent, Absent, Feedback(9), Absent, Absent})
	assert.ErrorIs(t, err, ErrInvalidFeedback)
}

func TestIngest_InvalidGuess(t *testing.T) {
	st := NewState()
	for _, g := range []string{"", "ADIE", "ADIEUX", "AD1EU", "ÅDIEU"} {
		_, err := st.Ingest(g, [5]Feedback{Absent, Absent, Absent, Absent, Absent})
		assert.ErrorIs(t, err, ErrInvalidGuess, "guess %q", g)
	}
}

func TestIngest_LowercaseGuess(t *testing.T) {
	st := NewState()
	_, err := st.Ingest("crane", [5]Feedback{Correct, Correct, Correct, Correct, Correct})
	require.NoError(t, err)
	w, ok := st.Word()
	require.True(t, ok)
	assert.Equal(t, "CRANE", w)
}

func TestSolvedDetection(t *testing.T) {
	st := NewState()
	_, err := st.Ingest("CRANE", [5]Feedback{Correct, Correct, Correct, Correct, Correct})
	require.NoError(t, err)

	require.True(t, st.Solved())
	assert.Equal(t, [5]bool{true, true, true, true, true}, st.SolvedMask())
	w, ok := st.Word()
	require.True(t, ok)
	assert.Equal(t, "CRANE", w)
	assert.Equal(t, []string{"crane"}, Filter([]string{"crane"}, st))

	partial := NewState()
	_, err = partial.Ingest("CRANE", [5]Feedback{Correct, Correct, Absent, Correct, Correct})
	require.NoError(t, err)
	assert.False(t, partial.Solved())
	_, ok = partial.Word()
	assert.False(t, ok)
	assert.Equal(t, [5]bool{true, true, false, true, true}, partial.SolvedMask())
}

func TestMonotonicShrink(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	kinds := []Feedback{Correct, Present, Absent}

	for run := 0; run < 300; run++ {
		st := NewState()
		for round := 0; round < 6; round++ {
			guess := make([]byte, WordLength)
			var fb [WordLength]Feedback
			for i := range guess {
				guess[i] = alphabet[rng.Intn(len(alphabet))]
				fb[i] = kinds[rng.Intn(len(kinds))]
			}

			before := st.Clone()
			_, err := st.Ingest(string(guess), fb)
			require.NoError(t, err)

			for p := 0; p < WordLength; p++ {
				if before.Possible[p].Len() != 1 {
					continue
				}
				for _, c := range []byte(st.Possible[p].Letters()) {
					require.True(t, before.Possible[p].Contains(c),
						"run %d round %d: pinned position %d gained %c", run, round, p, c)
				}
			}
			for _, c := range []byte(before.Required.Letters()) {
				require.True(t, st.Required.Contains(c), "run %d round %d: required lost %c", run, round, c)
			}
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	st := NewState()
	cp := st.Clone()
	_, err := st.Ingest("ADIEU", [5]Feedback{Absent, Absent, Absent, Absent, Absent})
	require.NoError(t, err)
	assert.Equal(t, alphabet, cp.Possible[0].Letters())
	if diff := cmp.Diff(without("ADEIU"), st.Possible[0].Letters()); diff != "" {
		t.Errorf("possible[0] mismatch (-want +got):\n%s", diff)
	}
}

func TestRepeatedLetters(t *testing.T) {
	cases := []struct {
		guess string
		fb    [5]Feedback
		want  []byte
	}{
		{"ADIEU", [5]Feedback{Absent, Absent, Absent, Absent, Absent}, nil},
		{"SPEED", [5]Feedback{Absent, Absent, Present, Present, Absent}, nil},
		{"SPEED", [5]Feedback{Absent, Absent, Present, Absent, Absent}, []byte{'E'}},
		{"LLAMA", [5]Feedback{Correct, Absent, Present, Absent, Absent}, []byte{'L', 'A'}},
		{"abc", [5]Feedback{}, nil},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, RepeatedLetters(c.guess, c.fb), "%s %v", c.guess, c.fb)
	}
}
