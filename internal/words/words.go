// internal/words/words.go
//
// Word list management for the solver.
//
// Responsibilities:
//   - Load the candidate dictionary from a configured file or fall back to the
//     embedded default.
//   - Load the accepted-guess list that backs the membership oracle. It is
//     kept apart from the dictionary: a candidate missing from it is refused.
//   - Supply lookups: IsAllowed, Answers, RandomAnswer, Stats.
//
// Dictionary formats (chosen by extension):
//   - .json: an array of words, or an object whose keys are the words
//     (read in file order).
//   - anything else: one word per line, blank lines and "#" comments skipped.
//
// The dictionary keeps its original case and order: capitalisation decides
// eligibility and order decides which candidate is proposed first.

package words

import (
	"bufio"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// ErrDictionaryUnavailable reports a dictionary that could not be read.
var ErrDictionaryUnavailable = errors.New("dictionary unavailable")

// Sources names the files to load. Empty paths select the embedded defaults.
type Sources struct {
	DictionaryFile string
	AllowedFile    string
}

// Lexicon is a loaded dictionary plus the accepted-guess set.
// It is read-only after Load.
type Lexicon struct {
	dictionary []string
	allowed    map[string]struct{} // lowercase accepted guesses
	answers    []string            // eligible dictionary words, lowercase, deduplicated
}

// Load reads the configured sources.
// A missing or unreadable dictionary wraps ErrDictionaryUnavailable.
func Load(src Sources) (*Lexicon, error) {
	var dict, allowList []string
	var err error

	if src.DictionaryFile != "" {
		dict, err = LoadDictionary(src.DictionaryFile)
	} else {
		dict, err = assets.DictionaryList()
		if err != nil {
			err = fmt.Errorf("%w: embedded: %v", ErrDictionaryUnavailable, err)
		}
	}
	if err != nil {
		return nil, err
	}

	if src.AllowedFile != "" {
		allowList, err = readWordFile(src.AllowedFile)
	} else {
		allowList, err = assets.AllowedList()
	}
	if err != nil {
		return nil, fmt.Errorf("allowed list: %w", err)
	}

	return New(dict, allowList), nil
}

// New builds a Lexicon from in-memory lists. Dictionary words are not
// accepted guesses unless allowed lists them too.
func New(dictionary, allowed []string) *Lexicon {
	l := &Lexicon{
		dictionary: dictionary,
		allowed:    toSet(allowed),
	}
	seen := make(map[string]struct{}, len(dictionary))
	for _, w := range dictionary {
		if !solver.Eligible(w) {
			continue
		}
		lw := strings.ToLower(w)
		if _, ok := seen[lw]; ok {
			continue
		}
		seen[lw] = struct{}{}
		if _, err := solver.NormalizeGuess(lw); err != nil {
			continue
		}
		l.answers = append(l.answers, lw)
	}
	return l
}

// LoadDictionary reads a dictionary file in its original order and case.
func LoadDictionary(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDictionaryUnavailable, err)
	}
	defer f.Close()

	var out []string
	if strings.EqualFold(filepath.Ext(path), ".json") {
		out, err = ReadJSONDictionary(f)
	} else {
		out, err = ReadDictionary(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDictionaryUnavailable, path, err)
	}
	return out, nil
}

// ReadDictionary reads one word per line, skipping blanks and "#" comments.
func ReadDictionary(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// ReadJSONDictionary reads either a JSON array of strings or a JSON object
// whose keys are the words. Object keys are returned in document order; a
// repeated key keeps its first position. Arrays are returned as written.
func ReadJSONDictionary(r io.Reader) ([]string, error) {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok || (delim != '[' && delim != '{') {
		return nil, errors.New("expected a JSON array or object")
	}

	var out []string
	keys := make(map[string]struct{})
	for dec.More() {
		if delim == '[' {
			var w string
			if err := dec.Decode(&w); err != nil {
				return nil, err
			}
			out = append(out, w)
			continue
		}
		key, err := dec.Token()
		if err != nil {
			return nil, err
		}
		w, _ := key.(string)
		if _, dup := keys[w]; !dup {
			keys[w] = struct{}{}
			out = append(out, w)
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return out, nil
}

// readWordFile loads one word per line, lowercased, keeping only valid
// five-letter alphabetic words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) == solver.WordLength && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// toSet converts a list of strings into a lowercase lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[strings.ToLower(w)] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Dictionary returns the dictionary in original order and case.
// Callers must not modify it.
func (l *Lexicon) Dictionary() []string { return l.dictionary }

// IsAllowed reports whether w is an accepted guess (case-insensitive).
func (l *Lexicon) IsAllowed(w string) bool {
	_, ok := l.allowed[strings.ToLower(w)]
	return ok
}

// Answers returns the eligible dictionary words, lowercase, first occurrence order.
func (l *Lexicon) Answers() []string { return l.answers }

// RandomAnswer returns a cryptographically random answer.
// Falls back to "crane" when no word is eligible.
func (l *Lexicon) RandomAnswer() string {
	if len(l.answers) == 0 {
		return "crane"
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(l.answers))))
	return l.answers[n.Int64()]
}

// Stats returns counts of loaded words: (dictionary entries, eligible answers, accepted guesses).
func (l *Lexicon) Stats() (dictionary, answers, allowed int) {
	return len(l.dictionary), len(l.answers), len(l.allowed)
}
