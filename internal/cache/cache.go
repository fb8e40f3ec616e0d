package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/quadline/oneaway/internal/model"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// ReportKey derives a cache key from the analysis inputs: the puzzle
// roster and the guess history. The key is order-insensitive in the
// roster and in each guess's words but sensitive to guess order, which
// matches what the engine consumes. Two sessions with the same inputs
// always hit the same entry, so a cached report is indistinguishable
// from a fresh computation.
func ReportKey(puzzle []string, guesses []model.Guess) string {
	var b strings.Builder

	for _, w := range model.SortedWords(puzzle) {
		b.WriteString(w)
		b.WriteByte(0)
	}
	b.WriteByte(1)
	for _, g := range guesses {
		for _, w := range model.SortedWords(g.Words) {
			b.WriteString(w)
			b.WriteByte(0)
		}
		b.WriteByte(1)
	}

	hash := sha256.Sum256([]byte(b.String()))
	return "oneaway:v1:" + hex.EncodeToString(hash[:])
}

// CommentaryKey derives a cache key for coach commentary, which also
// depends on the provider and model that produced it.
func CommentaryKey(puzzle []string, guesses []model.Guess, provider, llmModel string) string {
	base := ReportKey(puzzle, guesses)
	hash := sha256.Sum256([]byte(base + "|" + provider + "|" + llmModel))
	return "oneaway:coach:v1:" + hex.EncodeToString(hash[:])
}
