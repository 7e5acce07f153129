// Package history tracks recently presented decks.
// This lets `preso present` with no argument reopen the last deck and
// backs the `preso recent` listing. Only deck file paths are recorded;
// the slide position of a session is never persisted.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// maxEntries bounds the history file size.
const maxEntries = 20

// Entry records one presented deck.
type Entry struct {
	Path       string    `json:"path"`
	Title      string    `json:"title"`
	LastAccess time.Time `json:"last_access"`
}

// History stores recently presented decks, most recent first after Sort.
type History struct {
	Entries []Entry `json:"entries"`
}

// DefaultPath returns the history file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "preso", "history.json"), nil
}

// Load reads history from disk. A missing or corrupted file yields an
// empty history rather than an error; history is best-effort.
func Load(path string) (*History, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &History{}, nil
		}
		return nil, err
	}

	var h History
	if err := json.Unmarshal(data, &h); err != nil {
		return &History{}, nil
	}
	return &h, nil
}

// Save writes the history to disk atomically.
func (h *History) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Record updates or inserts an entry for the given deck and bumps its
// access time to now.
func (h *History) Record(path, title string) {
	now := time.Now()
	for i := range h.Entries {
		if h.Entries[i].Path == path {
			h.Entries[i].Title = title
			h.Entries[i].LastAccess = now
			h.Sort()
			return
		}
	}

	h.Entries = append(h.Entries, Entry{Path: path, Title: title, LastAccess: now})
	h.Sort()
	if len(h.Entries) > maxEntries {
		h.Entries = h.Entries[:maxEntries]
	}
}

// Sort orders entries by recency, most recent first.
func (h *History) Sort() {
	sort.SliceStable(h.Entries, func(i, j int) bool {
		return h.Entries[i].LastAccess.After(h.Entries[j].LastAccess)
	})
}

// RemoveStale drops entries whose deck file no longer exists and
// returns how many were removed.
func (h *History) RemoveStale() int {
	kept := h.Entries[:0]
	removed := 0
	for _, e := range h.Entries {
		if _, err := os.Stat(e.Path); err != nil {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	h.Entries = kept
	return removed
}

// MostRecent returns the most recently presented deck path, or empty
// if there is no history.
func (h *History) MostRecent() string {
	if len(h.Entries) == 0 {
		return ""
	}
	h.Sort()
	return h.Entries[0].Path
}

// RecordAccess loads, updates and saves history in one step.
func RecordAccess(historyPath, deckPath, title string) error {
	h, err := Load(historyPath)
	if err != nil {
		return err
	}
	h.Record(deckPath, title)
	return h.Save(historyPath)
}
