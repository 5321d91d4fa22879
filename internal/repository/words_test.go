package repository

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	errs "gamebot/internal/errors"
)

func TestNewWordListNormalizes(t *testing.T) {
	list := NewWordList([]string{" CRANE ", "candy", "", "crane", "Plant"})

	if list.Len() != 3 {
		t.Fatalf("len = %d, want 3 (blank and duplicate dropped)", list.Len())
	}
	for _, w := range []string{"crane", "candy", "plant", "CANDY"} {
		if !list.Contains(w) {
			t.Errorf("Contains(%q) = false, want true", w)
		}
	}
	if list.Contains("stone") {
		t.Error("Contains(\"stone\") = true, want false")
	}
}

func TestWordListRandomDrawsFromList(t *testing.T) {
	list := NewWordList([]string{"crane", "candy", "plant"})

	for i := 0; i < 20; i++ {
		if w := list.Random(); !list.Contains(w) {
			t.Fatalf("Random() returned %q, not in list", w)
		}
	}
}

func TestLoadWordList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("crane\ncandy\n\nplant\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	list, err := LoadWordList(path)
	if err != nil {
		t.Fatalf("LoadWordList: %v", err)
	}
	if list.Len() != 3 {
		t.Errorf("len = %d, want 3", list.Len())
	}
}

func TestLoadWordListEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadWordList(path)
	if !errors.Is(err, errs.ErrEmptyWordList) {
		t.Fatalf("err = %v, want ErrEmptyWordList", err)
	}
}

func TestLoadWordListMissingFile(t *testing.T) {
	_, err := LoadWordList(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
