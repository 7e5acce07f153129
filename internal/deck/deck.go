// Package deck loads and models a slide deck.
//
// A deck is an immutable, ordered, fixed-length sequence of slides
// established once at startup. Slides are identified by their 0-based
// position; nothing in the deck changes for the lifetime of a session.
package deck

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrEmptyDeck is returned when a source contains no slides.
// A deck without slides has no valid current position, so loading
// refuses rather than producing an unpresentable deck.
var ErrEmptyDeck = errors.New("deck contains no slides")

// Slide is one visual unit of a deck.
type Slide struct {
	// Index is the slide's 0-based position in the deck.
	Index int
	// Title is the first heading of the slide, or "Slide N" if none.
	Title string
	// Body is the slide's raw markdown source, separators excluded.
	Body string
}

// Deck is a fixed ordered collection of slides.
type Deck struct {
	path   string
	title  string
	slides []Slide
}

// Path returns the file the deck was loaded from, empty for in-memory decks.
func (d *Deck) Path() string { return d.path }

// Title returns the deck title: the first slide's title, or the
// source filename when the first slide is untitled.
func (d *Deck) Title() string { return d.title }

// Len returns the number of slides. Always >= 1 for a loaded deck.
func (d *Deck) Len() int { return len(d.slides) }

// Slide returns the slide at position i.
// The caller is responsible for keeping i in range.
func (d *Deck) Slide(i int) Slide { return d.slides[i] }

// Slides returns a copy of the slide sequence.
func (d *Deck) Slides() []Slide {
	out := make([]Slide, len(d.slides))
	copy(out, d.slides)
	return out
}

// Titles returns the slide titles in deck order.
func (d *Deck) Titles() []string {
	titles := make([]string, len(d.slides))
	for i, s := range d.slides {
		titles[i] = s.Title
	}
	return titles
}

func newDeck(path string, slides []Slide) (*Deck, error) {
	if len(slides) == 0 {
		if path != "" {
			return nil, fmt.Errorf("%s: %w", path, ErrEmptyDeck)
		}
		return nil, ErrEmptyDeck
	}

	d := &Deck{path: path, slides: slides}

	d.title = slides[0].Title
	if strings.HasPrefix(d.title, "Slide ") && path != "" {
		base := filepath.Base(path)
		d.title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return d, nil
}
