package session

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quadline/oneaway/internal/model"
)

// Session is a parsed session file: the 16-word puzzle roster plus the
// one-away guesses logged so far, in submission order. The session owns
// the guess history; the engine only ever reads it.
type Session struct {
	Puzzle  []string      `yaml:"puzzle"`
	Guesses []model.Guess `yaml:"-"`
}

// fileSchema is the on-disk YAML shape. Guesses are plain word lists;
// IDs are assigned from position during Load.
type fileSchema struct {
	Puzzle  []string   `yaml:"puzzle"`
	Guesses [][]string `yaml:"guesses"`
}

// Load reads and validates a session file. Validation is strict: a
// malformed session never reaches the engine, which assumes the
// 4-distinct-words invariant throughout.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates session YAML.
func Parse(data []byte) (*Session, error) {
	var file fileSchema
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}

	if err := validatePuzzle(file.Puzzle); err != nil {
		return nil, err
	}

	roster := make(map[string]bool, len(file.Puzzle))
	for _, w := range file.Puzzle {
		roster[w] = true
	}

	s := &Session{Puzzle: file.Puzzle}
	for i, words := range file.Guesses {
		g, err := model.NewGuess(fmt.Sprintf("guess-%d", i+1), words)
		if err != nil {
			return nil, err
		}
		for _, w := range g.Words {
			if !roster[w] {
				return nil, fmt.Errorf("guess %s: word %q is not in the puzzle", g.ID, w)
			}
		}
		s.Guesses = append(s.Guesses, g)
	}

	return s, nil
}

func validatePuzzle(puzzle []string) error {
	if len(puzzle) != model.PuzzleSize {
		return fmt.Errorf("puzzle: expected %d words, got %d", model.PuzzleSize, len(puzzle))
	}

	seen := make(map[string]bool, model.PuzzleSize)
	for _, w := range puzzle {
		if w == "" {
			return fmt.Errorf("puzzle: empty word")
		}
		if seen[w] {
			return fmt.Errorf("puzzle: duplicate word %q", w)
		}
		seen[w] = true
	}
	return nil
}

// AppendGuess validates and appends a new guess to the session. Word
// order within the guess is preserved; the ID follows the position.
func (s *Session) AppendGuess(words []string) error {
	g, err := model.NewGuess(fmt.Sprintf("guess-%d", len(s.Guesses)+1), words)
	if err != nil {
		return err
	}

	roster := make(map[string]bool, len(s.Puzzle))
	for _, w := range s.Puzzle {
		roster[w] = true
	}
	for _, w := range g.Words {
		if !roster[w] {
			return fmt.Errorf("guess %s: word %q is not in the puzzle", g.ID, w)
		}
	}

	s.Guesses = append(s.Guesses, g)
	return nil
}

// Marshal renders the session back to its YAML file shape.
func (s *Session) Marshal() ([]byte, error) {
	file := fileSchema{Puzzle: s.Puzzle}
	for _, g := range s.Guesses {
		file.Guesses = append(file.Guesses, g.Words)
	}
	return yaml.Marshal(file)
}
