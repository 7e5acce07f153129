package deck

import (
	"fmt"
	"os"
	"strings"
)

// Load reads a markdown file and parses it into a deck.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	return parse(path, data)
}

// Parse parses markdown source into a deck without a backing file.
func Parse(src []byte) (*Deck, error) {
	return parse("", src)
}

// parse splits markdown into slides on `---` separator lines.
// Blank slides at the edges (a leading or trailing separator) are
// dropped; blank slides between separators stay as authored.
func parse(path string, src []byte) (*Deck, error) {
	text := strings.ReplaceAll(string(src), "\r\n", "\n")

	var bodies []string
	var cur []string
	for _, line := range strings.Split(text, "\n") {
		if isSeparator(line) {
			bodies = append(bodies, strings.Join(cur, "\n"))
			cur = nil
			continue
		}
		cur = append(cur, line)
	}
	bodies = append(bodies, strings.Join(cur, "\n"))

	// Drop blank edge segments so a deck may open or close with ---.
	for len(bodies) > 0 && strings.TrimSpace(bodies[0]) == "" {
		bodies = bodies[1:]
	}
	for len(bodies) > 0 && strings.TrimSpace(bodies[len(bodies)-1]) == "" {
		bodies = bodies[:len(bodies)-1]
	}

	slides := make([]Slide, 0, len(bodies))
	for i, body := range bodies {
		body = strings.Trim(body, "\n")
		slides = append(slides, Slide{
			Index: i,
			Title: slideTitle(body, i),
			Body:  body,
		})
	}

	return newDeck(path, slides)
}

// isSeparator reports whether a line is a slide separator: three or
// more dashes and nothing else.
func isSeparator(line string) bool {
	t := strings.TrimSpace(line)
	if len(t) < 3 {
		return false
	}
	for _, r := range t {
		if r != '-' {
			return false
		}
	}
	return true
}

// slideTitle extracts the first markdown heading, falling back to a
// positional name. The human-readable position is 1-based.
func slideTitle(body string, index int) string {
	for _, line := range strings.Split(body, "\n") {
		t := strings.TrimSpace(line)
		if !strings.HasPrefix(t, "#") {
			continue
		}
		title := strings.TrimSpace(strings.TrimLeft(t, "#"))
		if title != "" {
			return title
		}
	}
	return fmt.Sprintf("Slide %d", index+1)
}
