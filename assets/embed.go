// Package assets embeds the default word lists.
//
//   - dictionary.txt: candidate dictionary, case preserved (capitalised
//     entries are proper nouns and are never proposed).
//   - allowed.txt: extra accepted guesses, lowercase.
package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed allowed.txt dictionary.txt
var FS embed.FS

func readLines(name string, lower bool) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		if lower {
			s = strings.ToLower(s)
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// DictionaryList returns the embedded dictionary in file order, case preserved.
func DictionaryList() ([]string, error) {
	return readLines("dictionary.txt", false)
}

// AllowedList returns the embedded accepted-guess list, lowercased.
func AllowedList() ([]string, error) {
	return readLines("allowed.txt", true)
}
