package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields empty history", func(t *testing.T) {
		t.Parallel()
		h, err := Load(filepath.Join(t.TempDir(), "history.json"))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(h.Entries) != 0 {
			t.Errorf("Entries = %v, want empty", h.Entries)
		}
	})

	t.Run("corrupted file starts fresh", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "history.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
			t.Fatal(err)
		}
		h, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(h.Entries) != 0 {
			t.Errorf("Entries = %v, want empty", h.Entries)
		}
	})
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "history.json")
	h := &History{}
	h.Record("/talks/a.md", "Talk A")
	if err := h.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded.Entries) != 1 {
		t.Fatalf("len(Entries) = %d, want 1", len(loaded.Entries))
	}
	if loaded.Entries[0].Path != "/talks/a.md" || loaded.Entries[0].Title != "Talk A" {
		t.Errorf("entry = %+v", loaded.Entries[0])
	}
}

func TestRecord(t *testing.T) {
	t.Parallel()

	t.Run("repeat access bumps instead of duplicating", func(t *testing.T) {
		t.Parallel()
		h := &History{}
		h.Record("/talks/a.md", "Talk A")
		h.Record("/talks/b.md", "Talk B")
		h.Record("/talks/a.md", "Talk A updated")

		if len(h.Entries) != 2 {
			t.Fatalf("len(Entries) = %d, want 2", len(h.Entries))
		}
		if h.MostRecent() != "/talks/a.md" {
			t.Errorf("MostRecent() = %q, want /talks/a.md", h.MostRecent())
		}
		if h.Entries[0].Title != "Talk A updated" {
			t.Errorf("title not updated: %q", h.Entries[0].Title)
		}
	})

	t.Run("history is bounded", func(t *testing.T) {
		t.Parallel()
		h := &History{}
		for i := 0; i < maxEntries+10; i++ {
			h.Record(filepath.Join("/talks", string(rune('a'+i%26))+".md"), "t")
		}
		if len(h.Entries) > maxEntries {
			t.Errorf("len(Entries) = %d, want <= %d", len(h.Entries), maxEntries)
		}
	})
}

func TestSort(t *testing.T) {
	t.Parallel()

	now := time.Now()
	h := &History{Entries: []Entry{
		{Path: "old", LastAccess: now.Add(-time.Hour)},
		{Path: "new", LastAccess: now},
		{Path: "mid", LastAccess: now.Add(-time.Minute)},
	}}
	h.Sort()

	want := []string{"new", "mid", "old"}
	for i, p := range want {
		if h.Entries[i].Path != p {
			t.Errorf("Entries[%d].Path = %q, want %q", i, h.Entries[i].Path, p)
		}
	}
}

func TestRemoveStale(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	existing := filepath.Join(dir, "talk.md")
	if err := os.WriteFile(existing, []byte("# x"), 0o644); err != nil {
		t.Fatal(err)
	}

	h := &History{Entries: []Entry{
		{Path: existing, LastAccess: time.Now()},
		{Path: filepath.Join(dir, "deleted.md"), LastAccess: time.Now()},
	}}

	if removed := h.RemoveStale(); removed != 1 {
		t.Errorf("RemoveStale() = %d, want 1", removed)
	}
	if len(h.Entries) != 1 || h.Entries[0].Path != existing {
		t.Errorf("Entries = %+v, want only existing deck", h.Entries)
	}
}

func TestMostRecentEmpty(t *testing.T) {
	t.Parallel()

	h := &History{}
	if got := h.MostRecent(); got != "" {
		t.Errorf("MostRecent() = %q, want empty", got)
	}
}

func TestRecordAccess(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.json")
	if err := RecordAccess(path, "/talks/a.md", "Talk A"); err != nil {
		t.Fatalf("RecordAccess() error = %v", err)
	}

	h, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if h.MostRecent() != "/talks/a.md" {
		t.Errorf("MostRecent() = %q, want /talks/a.md", h.MostRecent())
	}
}
