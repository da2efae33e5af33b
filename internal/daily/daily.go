// Package daily picks a deterministic answer for a calendar day, so that
// `simulate --daily` replays the same puzzle for everyone on a given date.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// epoch is the day numbered puzzle 0.
var epoch = time.Date(2021, 6, 19, 0, 0, 0, 0, time.UTC)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// PuzzleNumber counts UTC days since the epoch. Earlier dates are negative.
func PuzzleNumber(t time.Time) int {
	u := t.UTC()
	day := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return int(day.Sub(epoch).Hours() / 24)
}

// WordIndex maps a date into [0, n) with HMAC-SHA256(salt, DateKey).
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(DateKey(date)))
	return int(binary.BigEndian.Uint64(mac.Sum(nil)[:8]) % uint64(n))
}

// Answer returns the answer for date, or "" when answers is empty.
func Answer(date time.Time, salt string, answers []string) string {
	if len(answers) == 0 {
		return ""
	}
	return answers[WordIndex(date, salt, len(answers))]
}
