// internal/solver/filter.go
//
// Candidate filtering.
// A dictionary entry is a candidate when it is eligible (five letters, not
// capitalised) and its uppercase form matches the state.

package solver

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Filter returns the dictionary entries consistent with st, in dictionary
// order and original spelling. The result is never nil; an empty slice means
// no candidates remain.
func Filter(dictionary []string, st State) []string {
	out := make([]string, 0)
	for _, w := range dictionary {
		if !Eligible(w) {
			continue
		}
		if st.Matches(strings.ToUpper(w)) {
			out = append(out, w)
		}
	}
	return out
}

// Eligible reports whether a dictionary entry may be a candidate at all:
// exactly five characters and a first character that is not uppercase
// (capitalised entries are taken to be proper nouns).
func Eligible(w string) bool {
	if utf8.RuneCountInString(w) != WordLength {
		return false
	}
	first, _ := utf8.DecodeRuneInString(w)
	return !unicode.IsUpper(first)
}

// Matches reports whether the uppercase word w satisfies st: every required
// letter occurs somewhere in w, and each letter of w is possible at its position.
func (st State) Matches(w string) bool {
	for _, c := range []byte(st.Required.Letters()) {
		if strings.IndexByte(w, c) < 0 {
			return false
		}
	}
	i := 0
	for _, r := range w {
		if i >= WordLength || !st.Possible[i].ContainsRune(r) {
			return false
		}
		i++
	}
	return i == WordLength
}
