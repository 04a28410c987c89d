// internal/daily/daily.go
//
// Deterministic word selection for the Daily Challenge.
// The word for a UTC day is HMAC(salt, YYYY-MM-DD) mod len(pool), so every
// server sharing DAILY_SALT and the same pool agrees on it.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Puzzle identifies the daily word for one date.
type Puzzle struct {
	Date      string
	WordIndex int
	Word      string
}

// Pick returns the puzzle for the date of t. Word is "" for an empty pool.
func Pick(t time.Time, salt string, pool []string) Puzzle {
	p := Puzzle{Date: DateKey(t)}
	if len(pool) == 0 {
		return p
	}
	p.WordIndex = WordIndex(t, salt, len(pool))
	p.Word = pool[p.WordIndex]
	return p
}
