package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validSession = `
puzzle:
  - BASS
  - FLOUNDER
  - SALMON
  - TROUT
  - ANKLE
  - ELBOW
  - KNEE
  - WRIST
  - PIANO
  - ORGAN
  - HARP
  - FLUTE
  - SOLE
  - HEEL
  - ARCH
  - BALL
guesses:
  - [BASS, FLOUNDER, SALMON, SOLE]
  - [BASS, FLOUNDER, SALMON, TROUT]
`

func TestParse_ValidSession(t *testing.T) {
	s, err := Parse([]byte(validSession))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(s.Puzzle) != 16 {
		t.Errorf("expected 16 puzzle words, got %d", len(s.Puzzle))
	}
	if len(s.Guesses) != 2 {
		t.Fatalf("expected 2 guesses, got %d", len(s.Guesses))
	}
	if s.Guesses[0].ID != "guess-1" || s.Guesses[1].ID != "guess-2" {
		t.Errorf("expected positional IDs, got %s, %s", s.Guesses[0].ID, s.Guesses[1].ID)
	}
	if !s.Guesses[0].Contains("SOLE") {
		t.Errorf("expected guess-1 to contain SOLE, got %v", s.Guesses[0].Words)
	}
}

func TestParse_RejectsShortPuzzle(t *testing.T) {
	_, err := Parse([]byte("puzzle: [A, B, C]\n"))
	if err == nil || !strings.Contains(err.Error(), "expected 16 words") {
		t.Errorf("expected puzzle size error, got %v", err)
	}
}

func TestParse_RejectsDuplicatePuzzleWord(t *testing.T) {
	words := make([]string, 0, 16)
	for i := 0; i < 15; i++ {
		words = append(words, string(rune('A'+i)))
	}
	words = append(words, "A")

	_, err := Parse([]byte("puzzle: [" + strings.Join(words, ", ") + "]\n"))
	if err == nil || !strings.Contains(err.Error(), "duplicate word") {
		t.Errorf("expected duplicate word error, got %v", err)
	}
}

func TestParse_RejectsGuessWithWrongSize(t *testing.T) {
	data := strings.Replace(validSession,
		"[BASS, FLOUNDER, SALMON, SOLE]",
		"[BASS, FLOUNDER, SALMON]", 1)

	_, err := Parse([]byte(data))
	if err == nil || !strings.Contains(err.Error(), "expected 4 words") {
		t.Errorf("expected guess size error, got %v", err)
	}
}

func TestParse_RejectsGuessWithDuplicateWord(t *testing.T) {
	data := strings.Replace(validSession,
		"[BASS, FLOUNDER, SALMON, SOLE]",
		"[BASS, BASS, SALMON, SOLE]", 1)

	_, err := Parse([]byte(data))
	if err == nil || !strings.Contains(err.Error(), "duplicate word") {
		t.Errorf("expected duplicate word error, got %v", err)
	}
}

func TestParse_RejectsOffRosterWord(t *testing.T) {
	data := strings.Replace(validSession,
		"[BASS, FLOUNDER, SALMON, SOLE]",
		"[BASS, FLOUNDER, SALMON, GUITAR]", 1)

	_, err := Parse([]byte(data))
	if err == nil || !strings.Contains(err.Error(), "not in the puzzle") {
		t.Errorf("expected off-roster error, got %v", err)
	}
}

func TestAppendGuess(t *testing.T) {
	s, err := Parse([]byte(validSession))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := s.AppendGuess([]string{"ANKLE", "ELBOW", "KNEE", "HEEL"}); err != nil {
		t.Fatalf("expected append to succeed, got %v", err)
	}
	if len(s.Guesses) != 3 || s.Guesses[2].ID != "guess-3" {
		t.Errorf("expected guess-3 appended, got %v", s.Guesses)
	}

	if err := s.AppendGuess([]string{"ANKLE", "ELBOW", "KNEE", "GUITAR"}); err == nil {
		t.Error("expected off-roster append to fail")
	}
}

func TestLoadMarshalRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.yaml")
	if err := os.WriteFile(path, []byte(validSession), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	data, err := s.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	reparsed, err := Parse(data)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if len(reparsed.Guesses) != len(s.Guesses) {
		t.Errorf("round trip lost guesses: %d vs %d", len(reparsed.Guesses), len(s.Guesses))
	}
}
