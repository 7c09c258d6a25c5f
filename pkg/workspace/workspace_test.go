package workspace

import (
	"errors"
	"testing"

	"github.com/gucio321/plotview/pkg/preview"
)

func TestGet(t *testing.T) {
	w, err := Get(DefaultName)
	if err != nil {
		t.Fatalf("Get(%q) failed: %s", DefaultName, err)
	}

	if got, want := w.Options(), preview.DefaultOptions(); got != want {
		t.Errorf("default workspace options %+v want %+v", got, want)
	}

	if _, err := Get("no such workspace"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v want ErrNotFound", err)
	}
}

func TestList(t *testing.T) {
	list, err := List()
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[string]bool)
	for _, w := range list {
		if seen[w.Name] {
			t.Errorf("duplicate workspace %q", w.Name)
		}

		seen[w.Name] = true

		if w.Width <= 2*w.Padding || w.Height <= 2*w.Padding || w.ArcSegments <= 0 {
			t.Errorf("workspace %q is unusable: %+v", w.Name, w)
		}
	}

	if !seen[DefaultName] {
		t.Errorf("default workspace %q missing", DefaultName)
	}
}
