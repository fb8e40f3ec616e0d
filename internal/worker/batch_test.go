package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/quadline/oneaway/internal/model"
)

// mockAnalyzer implements Analyzer
type mockAnalyzer struct {
	failPath string
}

func (m *mockAnalyzer) AnalyzeSession(ctx context.Context, path string) (*model.Report, error) {
	if path == m.failPath {
		return nil, errors.New("bad session")
	}
	return &model.Report{Subject: model.SubjectFromPath(path), SessionRef: path}, nil
}

func TestBatchProcessor_ProcessPaths(t *testing.T) {
	b := NewBatchProcessor(&mockAnalyzer{failPath: "broken.yaml"}, 2)

	results := b.ProcessPaths(context.Background(), []string{"a.yaml", "broken.yaml", "c.yaml"})
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	failures := 0
	for _, r := range results {
		if r.GetError() != nil {
			failures++
			if r.Path != "broken.yaml" {
				t.Errorf("unexpected failure for %s: %v", r.Path, r.Error)
			}
		} else if r.Report == nil {
			t.Errorf("expected a report for %s", r.Path)
		}
	}
	if failures != 1 {
		t.Errorf("expected 1 failure, got %d", failures)
	}
}

func TestBatchProcessor_EmptyInput(t *testing.T) {
	b := NewBatchProcessor(&mockAnalyzer{}, 2)

	results := b.ProcessPaths(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestResolveSessionPaths_Directory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.yaml", "a.yml", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	paths, err := ResolveSessionPaths(dir)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := []string{filepath.Join(dir, "a.yml"), filepath.Join(dir, "b.yaml")}
	if !reflect.DeepEqual(paths, expected) {
		t.Errorf("expected %v, got %v", expected, paths)
	}
}

func TestResolveSessionPaths_ListFile(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "sessions.txt")
	content := "one.yaml\n\n# comment\ntwo.yaml\none.yaml\n"
	if err := os.WriteFile(list, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	paths, err := ResolveSessionPaths(list)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := []string{"one.yaml", "two.yaml"}
	if !reflect.DeepEqual(paths, expected) {
		t.Errorf("expected %v, got %v", expected, paths)
	}
}

func TestResolveSessionPaths_MissingInput(t *testing.T) {
	if _, err := ResolveSessionPaths(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing input")
	}
}
