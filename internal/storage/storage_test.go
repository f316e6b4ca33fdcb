package storage

import (
	"testing"
)

type testArtifact struct {
	Keyword string `json:"keyword"`
	Title   string `json:"title"`
}

func TestManager_SaveAndLoad(t *testing.T) {
	t.Parallel()

	m, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	in := testArtifact{Keyword: "golang tutorial", Title: "Learn Go"}
	name, err := m.Save(DirBriefs, "brf_01", in)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if name == "" {
		t.Fatal("expected a filename")
	}

	var out testArtifact
	if err := m.Load(DirBriefs, "brf_01", &out); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if out != in {
		t.Errorf("round-trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestManager_LoadMissing(t *testing.T) {
	t.Parallel()

	m, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var out testArtifact
	if err := m.Load(DirArticles, "missing", &out); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestManager_List(t *testing.T) {
	t.Parallel()

	m, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for _, id := range []string{"a1", "a2", "a3"} {
		if _, err := m.Save(DirAnalyses, id, testArtifact{Keyword: id}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	names, err := m.List(DirAnalyses)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 3 {
		t.Errorf("expected 3 files, got %d", len(names))
	}

	// Other kinds stay empty.
	empty, err := m.List(DirCalendars)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no calendar files, got %d", len(empty))
	}
}
