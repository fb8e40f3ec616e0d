package cache

import (
	"testing"
	"time"

	"github.com/quadline/oneaway/internal/model"
)

func testGuess(t *testing.T, id string, words ...string) model.Guess {
	t.Helper()
	g, err := model.NewGuess(id, words)
	if err != nil {
		t.Fatalf("NewGuess: %v", err)
	}
	return g
}

func TestReportKey_Deterministic(t *testing.T) {
	puzzle := []string{"A", "B", "C", "D"}
	guesses := []model.Guess{testGuess(t, "g1", "A", "B", "C", "D")}

	k1 := ReportKey(puzzle, guesses)
	k2 := ReportKey(puzzle, guesses)
	if k1 != k2 {
		t.Errorf("same inputs must produce the same key: %s vs %s", k1, k2)
	}
}

func TestReportKey_InsensitiveToWordOrderWithinGuess(t *testing.T) {
	puzzle := []string{"A", "B", "C", "D"}

	k1 := ReportKey(puzzle, []model.Guess{testGuess(t, "g1", "A", "B", "C", "D")})
	k2 := ReportKey(puzzle, []model.Guess{testGuess(t, "g1", "D", "C", "B", "A")})
	if k1 != k2 {
		t.Error("word order within a guess must not change the key")
	}
}

func TestReportKey_SensitiveToGuessWords(t *testing.T) {
	puzzle := []string{"A", "B", "C", "D", "E"}

	k1 := ReportKey(puzzle, []model.Guess{testGuess(t, "g1", "A", "B", "C", "D")})
	k2 := ReportKey(puzzle, []model.Guess{testGuess(t, "g1", "A", "B", "C", "E")})
	if k1 == k2 {
		t.Error("different guesses must produce different keys")
	}
}

func TestCommentaryKey_SensitiveToProvider(t *testing.T) {
	puzzle := []string{"A", "B", "C", "D"}
	guesses := []model.Guess{testGuess(t, "g1", "A", "B", "C", "D")}

	k1 := CommentaryKey(puzzle, guesses, "openai", "gpt-4o-mini")
	k2 := CommentaryKey(puzzle, guesses, "ollama", "llama3")
	if k1 == k2 {
		t.Error("different providers must produce different keys")
	}
}

func TestMemoryCache_SetGetDelete(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("expected miss for unknown key")
	}

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, found := c.Get("k")
	if !found || string(val) != "v" {
		t.Errorf("expected hit with value v, got %q found=%v", val, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected miss after delete")
	}
}

func TestDiskCache_RoundTripAndExpiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, found := c.Get("k")
	if !found || string(val) != "v" {
		t.Errorf("expected hit with value v, got %q found=%v", val, found)
	}

	if err := c.Set("expired", []byte("old"), -time.Second); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, found := c.Get("expired"); found {
		t.Error("expected expired entry to miss")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Minute)

	// Seed only the disk layer, then read through the layered cache.
	disk := NewDiskCache(dir, time.Minute)
	if err := disk.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("seed disk: %v", err)
	}

	val, found := c.Get("k")
	if !found || string(val) != "v" {
		t.Fatalf("expected disk hit through layered cache, got %q found=%v", val, found)
	}

	// After promotion the memory layer serves the value even if the
	// disk entry disappears.
	if err := disk.Delete("k"); err != nil {
		t.Fatalf("delete disk entry: %v", err)
	}
	if _, found := c.Get("k"); !found {
		t.Error("expected promoted memory hit after disk delete")
	}
}
