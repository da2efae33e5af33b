// internal/solver/letterset.go
//
// LetterSet is a set over the 26 uppercase ASCII letters.
// Backed by a fixed 26-bit bitset; every set allocated by this package has
// the same length so bitset operations stay comparable.

package solver

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// AlphabetSize is the number of letters a LetterSet can hold (A–Z).
const AlphabetSize = 26

// LetterSet holds uppercase letters A–Z.
// The zero value is an empty set ready to use.
// LetterSet values share storage when copied; use Clone for an independent copy.
type LetterSet struct {
	bits *bitset.BitSet
}

// FullAlphabet returns a set containing every letter A–Z.
func FullAlphabet() LetterSet {
	s := LetterSet{bits: bitset.New(AlphabetSize)}
	for i := uint(0); i < AlphabetSize; i++ {
		s.bits.Set(i)
	}
	return s
}

// LetterSetOf returns a set holding the given letters.
// Lowercase letters are folded to uppercase; anything outside A–Z is ignored.
func LetterSetOf(letters ...byte) LetterSet {
	var s LetterSet
	for _, c := range letters {
		s.Add(c)
	}
	return s
}

// letterIndex maps an ASCII letter to 0..25.
func letterIndex(c byte) (uint, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return uint(c - 'A'), true
	case c >= 'a' && c <= 'z':
		return uint(c - 'a'), true
	}
	return 0, false
}

func (s *LetterSet) ensure() {
	if s.bits == nil {
		s.bits = bitset.New(AlphabetSize)
	}
}

// Add inserts c. Reports whether the set changed.
func (s *LetterSet) Add(c byte) bool {
	i, ok := letterIndex(c)
	if !ok {
		return false
	}
	s.ensure()
	if s.bits.Test(i) {
		return false
	}
	s.bits.Set(i)
	return true
}

// Remove deletes c. Reports whether the set changed.
func (s *LetterSet) Remove(c byte) bool {
	i, ok := letterIndex(c)
	if !ok || s.bits == nil || !s.bits.Test(i) {
		return false
	}
	s.bits.Clear(i)
	return true
}

// Contains reports whether c is in the set.
func (s LetterSet) Contains(c byte) bool {
	i, ok := letterIndex(c)
	if !ok || s.bits == nil {
		return false
	}
	return s.bits.Test(i)
}

// ContainsRune is Contains for a decoded rune; non-ASCII runes are never members.
func (s LetterSet) ContainsRune(r rune) bool {
	if r < 0 || r > 0x7f {
		return false
	}
	return s.Contains(byte(r))
}

// Len returns the number of letters in the set.
func (s LetterSet) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

// Letters returns the members in alphabetical order.
func (s LetterSet) Letters() string {
	if s.bits == nil {
		return ""
	}
	var b strings.Builder
	b.Grow(int(s.bits.Count()))
	for i, ok := s.bits.NextSet(0); ok && i < AlphabetSize; i, ok = s.bits.NextSet(i + 1) {
		b.WriteByte(byte('A' + i))
	}
	return b.String()
}

// Only returns the single member of a one-letter set.
func (s LetterSet) Only() (byte, bool) {
	if s.Len() != 1 {
		return 0, false
	}
	i, _ := s.bits.NextSet(0)
	return byte('A' + i), true
}

// Clone returns an independent copy.
func (s LetterSet) Clone() LetterSet {
	if s.bits == nil {
		return LetterSet{}
	}
	return LetterSet{bits: s.bits.Clone()}
}

// Equal reports whether both sets hold the same letters.
func (s LetterSet) Equal(o LetterSet) bool {
	return s.Letters() == o.Letters()
}

// String implements fmt.Stringer.
func (s LetterSet) String() string { return "{" + s.Letters() + "}" }

// MarshalText encodes the set as its alphabetical letter string.
func (s LetterSet) MarshalText() ([]byte, error) {
	return []byte(s.Letters()), nil
}

// UnmarshalText decodes a letter string; non-letters are ignored.
func (s *LetterSet) UnmarshalText(text []byte) error {
	*s = LetterSetOf(text...)
	return nil
}
