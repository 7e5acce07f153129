package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/sahilm/fuzzy"

	"github.com/quellen/preso/internal/deck"
	"github.com/quellen/preso/internal/ui/styles"
)

// slideSource implements fuzzy.Source over slide labels.
type slideSource []string

func (s slideSource) String(i int) string { return s[i] }
func (s slideSource) Len() int            { return len(s) }

// jumpList is the fuzzy-filterable slide picker shown by the jump key.
// Selecting an entry issues a goto for that slide's deck index.
type jumpList struct {
	labels   []string      // "3. Results" per slide, deck order
	filtered []fuzzy.Match // current matches, best first when filtering
	cursor   int           // position in filtered list
	input    textinput.Model
}

func newJumpList(d *deck.Deck) *jumpList {
	labels := make([]string, d.Len())
	for i, title := range d.Titles() {
		labels[i] = fmt.Sprintf("%d. %s", i+1, title)
	}

	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.CharLimit = 64
	ti.SetWidth(40)
	inputStyles := ti.Styles()
	inputStyles.Cursor.Shape = tea.CursorBar
	inputStyles.Cursor.Blink = true
	ti.SetStyles(inputStyles)
	ti.Focus()

	j := &jumpList{labels: labels, input: ti}
	j.applyFilter()
	return j
}

// Selected returns the deck index under the cursor, or -1 when the
// filter matches nothing.
func (j *jumpList) Selected() int {
	if len(j.filtered) == 0 || j.cursor >= len(j.filtered) {
		return -1
	}
	return j.filtered[j.cursor].Index
}

// Handle processes one key. It returns the selected deck index and
// true when a selection was made; otherwise (-1, false). Keys not
// used for list navigation edit the filter input.
func (j *jumpList) Handle(msg tea.KeyPressMsg) (int, bool, tea.Cmd) {
	switch msg.String() {
	case "up":
		if j.cursor > 0 {
			j.cursor--
		}
		return -1, false, nil
	case "down":
		if j.cursor < len(j.filtered)-1 {
			j.cursor++
		}
		return -1, false, nil
	case "home", "pgup":
		j.cursor = 0
		return -1, false, nil
	case "end", "pgdown":
		j.cursor = max(0, len(j.filtered)-1)
		return -1, false, nil
	case "enter":
		if idx := j.Selected(); idx >= 0 {
			return idx, true, nil
		}
		return -1, false, nil
	}

	before := j.input.Value()
	var cmd tea.Cmd
	j.input, cmd = j.input.Update(msg)
	if j.input.Value() != before {
		j.applyFilter()
	}
	return -1, false, cmd
}

// HasFilter reports whether the user has typed a filter.
// Used for ESC behavior: clear the filter first, close second.
func (j *jumpList) HasFilter() bool { return j.input.Value() != "" }

// ClearFilter resets the filter and shows all slides again.
func (j *jumpList) ClearFilter() {
	j.input.SetValue("")
	j.applyFilter()
}

func (j *jumpList) applyFilter() {
	if j.input.Value() == "" {
		j.filtered = make([]fuzzy.Match, len(j.labels))
		for i := range j.labels {
			j.filtered[i] = fuzzy.Match{Str: j.labels[i], Index: i}
		}
	} else {
		j.filtered = fuzzy.FindFrom(j.input.Value(), slideSource(j.labels))
	}

	if j.cursor >= len(j.filtered) {
		j.cursor = max(0, len(j.filtered)-1)
	}
}

func (j *jumpList) view() string {
	var b strings.Builder
	b.WriteString(styles.FilterLabelStyle().Render("Jump to: ") + j.input.View() + "\n\n")

	maxVisible := 10
	start := 0
	if j.cursor >= maxVisible {
		start = j.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(j.filtered))

	if start > 0 {
		b.WriteString(styles.OptionNormalStyle().Render("  ↑ more above") + "\n")
	}

	for i := start; i < end; i++ {
		match := j.filtered[i]
		cursor := "  "
		if i == j.cursor {
			cursor = "> "
		}
		b.WriteString(cursor + j.highlight(match, i == j.cursor) + "\n")
	}

	if end < len(j.filtered) {
		b.WriteString(styles.OptionNormalStyle().Render("  ↓ more below") + "\n")
	}
	if len(j.filtered) == 0 {
		b.WriteString(styles.OptionNormalStyle().Render("  No matching slides") + "\n")
	}

	return b.String()
}

// highlight renders a label with fuzzy-matched characters emphasized.
func (j *jumpList) highlight(match fuzzy.Match, selected bool) string {
	base := styles.OptionNormalStyle()
	if selected {
		base = styles.OptionSelectedStyle()
	}
	if !j.HasFilter() || len(match.MatchedIndexes) == 0 {
		return base.Render(match.Str)
	}

	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = true
	}

	var b strings.Builder
	for i, r := range []rune(match.Str) {
		if matched[i] {
			b.WriteString(styles.MatchHighlightStyle().Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}
