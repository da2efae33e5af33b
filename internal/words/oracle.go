// internal/words/oracle.go
//
// Lexicon-backed oracle.
// Confirms a proposed guess only when the accepted-guess list contains it.

package words

import (
	"context"

	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
)

// Oracle confirms words found in the accepted-guess set.
func (l *Lexicon) Oracle() session.Oracle {
	return session.OracleFunc(func(_ context.Context, w string) (bool, error) {
		return l.IsAllowed(w), nil
	})
}
