package solver

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEligible(t *testing.T) {
	cases := []struct {
		word string
		want bool
	}{
		{"apple", true},
		{"Apple", false},
		{"APPLE", false},
		{"BERRY", false},
		{"appl", false},
		{"apples", false},
		{"", false},
		{"éclat", true},
		{"Éclat", false},
		{"a-b-c", true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Eligible(c.word), "Eligible(%q)", c.word)
	}
}

func TestFilter_EligibilityOnFreshState(t *testing.T) {
	got := Filter([]string{"APPLE", "Apple", "BERRY", "apple"}, NewState())
	assert.Equal(t, []string{"apple"}, got)
}

func TestFilter_RequiredLetterMissing(t *testing.T) {
	st := NewState()
	st.Required.Add('Z')
	got := Filter([]string{"apple", "crane", "adieu"}, st)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_PreservesOrderAndDuplicates(t *testing.T) {
	dict := []string{"stone", "crane", "Paris", "trace", "crane", "react", "cater"}
	st := NewState()
	_, err := st.Ingest("ADIEU", [5]Feedback{Present, Absent, Absent, Present, Absent})
	require.NoError(t, err)

	got := Filter(dict, st)
	if diff := cmp.Diff([]string{"crane", "trace", "crane", "react"}, got); diff != "" {
		t.Errorf("Filter mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	dict := []string{"crane", "trace", "cater", "react", "caret", "Crane", "tracer"}
	st := NewState()
	_, err := st.Ingest("CRATE", [5]Feedback{Present, Present, Present, Present, Present})
	require.NoError(t, err)

	first := Filter(dict, st)
	second := Filter(dict, st)
	assert.Equal(t, first, second)
}

func TestFilter_NonLetterEntries(t *testing.T) {
	assert.Empty(t, Filter([]string{"a-b-c", "ab cd", "12345", "ab\tcd"}, NewState()))
}

// matchesByHand restates the candidate rule with plain maps.
func matchesByHand(w string, possible [5]map[byte]bool, required map[byte]bool) bool {
	if len(w) != 5 || (w[0] >= 'A' && w[0] <= 'Z') {
		return false
	}
	u := strings.ToUpper(w)
	for c := range required {
		if !strings.Contains(u, string(c)) {
			return false
		}
	}
	for i := 0; i < 5; i++ {
		if !possible[i][u[i]] {
			return false
		}
	}
	return true
}

func TestFilter_AgreesWithHandWrittenRule(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	letters := "abcdefgh" // small alphabet so matches are common

	randomWord := func() string {
		b := make([]byte, 5)
		for i := range b {
			b[i] = letters[rng.Intn(len(letters))]
		}
		if rng.Intn(10) == 0 {
			b[0] -= 'a' - 'A'
		}
		return string(b)
	}

	for run := 0; run < 200; run++ {
		var possible [5]map[byte]bool
		st := State{}
		for p := 0; p < 5; p++ {
			possible[p] = map[byte]bool{}
			for i := 0; i < 8; i++ {
				if rng.Intn(3) > 0 {
					c := byte('A' + i)
					possible[p][c] = true
					st.Possible[p].Add(c)
				}
			}
		}
		required := map[byte]bool{}
		for i := 0; i < rng.Intn(3); i++ {
			c := byte('A' + rng.Intn(8))
			required[c] = true
			st.Required.Add(c)
		}

		dict := make([]string, 50)
		var want []string
		for i := range dict {
			dict[i] = randomWord()
			if matchesByHand(dict[i], possible, required) {
				want = append(want, dict[i])
			}
		}

		got := Filter(dict, st)
		if want == nil {
			want = []string{}
		}
		require.Equal(t, want, got, "run %d", run)
	}
}
