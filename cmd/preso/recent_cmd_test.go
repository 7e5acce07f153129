package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quellen/preso/internal/history"
	"github.com/quellen/preso/internal/log"
	"github.com/quellen/preso/internal/output"
)

func TestListRecent(t *testing.T) {
	silent := log.New(io.Discard, false, true)

	t.Run("empty history prints nothing to stdout", func(t *testing.T) {
		var buf bytes.Buffer
		histPath := filepath.Join(t.TempDir(), "history.json")

		if err := listRecent(histPath, false, output.New(&buf), silent); err != nil {
			t.Fatalf("listRecent error = %v", err)
		}
		if buf.Len() != 0 {
			t.Errorf("stdout = %q, want empty", buf.String())
		}
	})

	t.Run("lists decks most recent first", func(t *testing.T) {
		dir := t.TempDir()
		histPath := filepath.Join(dir, "history.json")

		first := filepath.Join(dir, "a.md")
		second := filepath.Join(dir, "b.md")
		for _, p := range []string{first, second} {
			if err := os.WriteFile(p, []byte("# x"), 0o644); err != nil {
				t.Fatal(err)
			}
		}
		if err := history.RecordAccess(histPath, first, "Talk A"); err != nil {
			t.Fatal(err)
		}
		if err := history.RecordAccess(histPath, second, "Talk B"); err != nil {
			t.Fatal(err)
		}

		var buf bytes.Buffer
		if err := listRecent(histPath, false, output.New(&buf), silent); err != nil {
			t.Fatalf("listRecent error = %v", err)
		}

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 2 {
			t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
		}
		if !strings.HasPrefix(lines[0], second) {
			t.Errorf("first line = %q, want most recent deck %q", lines[0], second)
		}
	})

	t.Run("paths only omits titles", func(t *testing.T) {
		dir := t.TempDir()
		histPath := filepath.Join(dir, "history.json")
		deckPath := filepath.Join(dir, "a.md")
		if err := os.WriteFile(deckPath, []byte("# x"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := history.RecordAccess(histPath, deckPath, "Talk A"); err != nil {
			t.Fatal(err)
		}

		var buf bytes.Buffer
		if err := listRecent(histPath, true, output.New(&buf), silent); err != nil {
			t.Fatalf("listRecent error = %v", err)
		}
		if got := strings.TrimSpace(buf.String()); got != deckPath {
			t.Errorf("output = %q, want %q", got, deckPath)
		}
	})

	t.Run("stale decks are dropped", func(t *testing.T) {
		dir := t.TempDir()
		histPath := filepath.Join(dir, "history.json")
		if err := history.RecordAccess(histPath, filepath.Join(dir, "gone.md"), "Gone"); err != nil {
			t.Fatal(err)
		}

		var buf bytes.Buffer
		if err := listRecent(histPath, false, output.New(&buf), silent); err != nil {
			t.Fatalf("listRecent error = %v", err)
		}
		if buf.Len() != 0 {
			t.Errorf("stdout = %q, want empty after stale cleanup", buf.String())
		}

		// Cleanup must have been persisted.
		h, err := history.Load(histPath)
		if err != nil {
			t.Fatal(err)
		}
		if len(h.Entries) != 0 {
			t.Errorf("history still has %d entries", len(h.Entries))
		}
	})
}
