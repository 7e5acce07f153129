// Package ui renders the presentation and translates input events
// into navigation commands.
//
// Presenter is a bubbletea model. All navigation state lives in the
// nav.Controller it wraps; the view is recomputed in full from the
// latest frame, so rendering the same state twice always produces the
// same output.
package ui

import (
	"os"
	"strings"
	"sync"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/colorprofile"

	"github.com/quellen/preso/internal/deck"
	"github.com/quellen/preso/internal/nav"
	"github.com/quellen/preso/internal/ui/styles"
)

// copiedMsg reports the outcome of a clipboard copy.
type copiedMsg struct{ err error }

// Presenter drives a presentation session.
type Presenter struct {
	deck *deck.Deck
	ctrl *nav.Controller

	frame   nav.Frame
	width   int
	height  int
	jump    *jumpList
	status  string
	done    bool
	onFrame func(nav.Frame) // optional frame listener (remote hub)

	progOnce sync.Once
	prog     *tea.Program
}

// NewPresenter creates a presenter starting at the given slide index
// (clamped into range). The initial render pass runs before the first
// input event is accepted.
func NewPresenter(d *deck.Deck, start int) (*Presenter, error) {
	ctrl, err := nav.NewController(d.Len())
	if err != nil {
		return nil, err
	}

	p := &Presenter{deck: d, ctrl: ctrl, width: 80, height: 24}
	ctrl.Attach(nav.RenderFunc(p.render))
	if start != 0 {
		ctrl.GoTo(start)
	}
	return p, nil
}

// OnFrame registers a listener invoked after every render pass, in
// addition to the terminal view. The current frame is delivered
// immediately so late listeners never miss the state.
func (p *Presenter) OnFrame(fn func(nav.Frame)) {
	p.onFrame = fn
	if fn != nil {
		fn(p.frame)
	}
}

// Frame returns the latest rendered frame.
func (p *Presenter) Frame() nav.Frame { return p.frame }

// render is the controller's render sink.
func (p *Presenter) render(f nav.Frame) {
	p.frame = f
	if p.onFrame != nil {
		p.onFrame(f)
	}
}

// Program returns the bubbletea program for this presenter, creating
// it on first use. External input sources use it to inject messages;
// they may call from other goroutines before Run, so creation is
// guarded and every caller sees the same program.
func (p *Presenter) Program() *tea.Program {
	p.progOnce.Do(func() {
		profile := colorprofile.Detect(os.Stdout, os.Environ())
		p.prog = tea.NewProgram(p, tea.WithColorProfile(profile))
	})
	return p.prog
}

// Send injects a message into the event loop. Messages sent from other
// goroutines are processed in arrival order alongside key events.
func (p *Presenter) Send(msg tea.Msg) {
	p.Program().Send(msg)
}

// Run executes the presentation until the user quits.
func (p *Presenter) Run() error {
	_, err := p.Program().Run()
	return err
}

// BubbleTea Model interface

func (p *Presenter) Init() tea.Cmd {
	return nil
}

func (p *Presenter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case nav.Command:
		// External trigger (remote control). Commands arrive here via
		// Program.Send, so they serialize with key events in arrival
		// order.
		p.ctrl.Apply(msg)
		return p, nil

	case copiedMsg:
		if msg.err != nil {
			p.status = styles.ErrorStyle().Render("copy failed: " + msg.err.Error())
		} else {
			p.status = styles.HelpStyle().Render("slide copied to clipboard")
		}
		return p, nil

	case tea.KeyPressMsg:
		return p.handleKey(msg)
	}

	return p, nil
}

func (p *Presenter) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	p.status = ""

	if p.jump != nil {
		return p.handleJumpKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		p.done = true
		return p, tea.Quit

	case "right", "l", "space", " ", "enter", "pgdown":
		p.ctrl.Apply(nav.Command{Op: nav.OpNext})
	case "left", "h", "pgup":
		p.ctrl.Apply(nav.Command{Op: nav.OpPrev})
	case "home":
		p.ctrl.Apply(nav.Command{Op: nav.OpFirst})
	case "end":
		p.ctrl.Apply(nav.Command{Op: nav.OpLast})

	case "g":
		p.jump = newJumpList(p.deck)
		return p, textinput.Blink

	case "c":
		body := p.deck.Slide(p.frame.Index).Body
		return p, func() tea.Msg {
			return copiedMsg{err: clipboard.WriteAll(body)}
		}
	}

	return p, nil
}

func (p *Presenter) handleJumpKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		p.done = true
		return p, tea.Quit
	case "esc":
		// Clear the filter first; a second esc closes the overlay.
		if p.jump.HasFilter() {
			p.jump.ClearFilter()
		} else {
			p.jump = nil
		}
		return p, nil
	}

	idx, ok, cmd := p.jump.Handle(msg)
	if ok {
		p.jump = nil
		p.ctrl.Apply(nav.Command{Op: nav.OpGoTo, Index: idx})
		return p, nil
	}
	return p, cmd
}

func (p *Presenter) View() tea.View {
	if p.done {
		return tea.NewView("")
	}
	return tea.NewView(p.viewContent())
}

// viewContent is the full visible state as a pure function of the
// current frame, deck and overlay.
func (p *Presenter) viewContent() string {
	var b strings.Builder

	// Header: deck title and counter.
	b.WriteString(styles.TitleStyle().Render(p.deck.Title()))
	b.WriteString("  ")
	b.WriteString(styles.CounterStyle().Render(p.frame.Counter))
	b.WriteString("\n\n")

	// Slide area or jump overlay.
	if p.jump != nil {
		b.WriteString(styles.BorderStyle().Render(p.jump.view()))
	} else {
		b.WriteString(styles.BorderStyle().Render(p.slideView()))
	}
	b.WriteString("\n\n")

	// Trigger controls, disabled state taken from the frame.
	b.WriteString(renderControls(p.frame))
	b.WriteString("\n")

	if p.status != "" {
		b.WriteString(p.status)
	} else if p.jump != nil {
		b.WriteString(styles.HelpStyle().Render("↑/↓ select • type to filter • enter jump • esc close"))
	} else {
		b.WriteString(styles.HelpStyle().Render("←/→ navigate • g jump • c copy • q quit"))
	}

	return b.String()
}

// slideView renders the active slide. Exactly one slide is visible;
// everything else in the deck stays untouched.
func (p *Presenter) slideView() string {
	s := p.deck.Slide(p.frame.Index)

	var b strings.Builder
	b.WriteString(styles.SlideTitleStyle().Render(s.Title))
	b.WriteString("\n\n")
	b.WriteString(styles.BodyStyle().Render(bodyWithoutTitle(s)))
	return b.String()
}

// bodyWithoutTitle removes the heading line already shown above the
// body, wherever it sits in the slide, along with the blank lines
// directly after it.
func bodyWithoutTitle(s deck.Slide) string {
	lines := strings.Split(s.Body, "\n")
	for i, line := range lines {
		t := strings.TrimSpace(line)
		if !strings.HasPrefix(t, "#") || strings.TrimSpace(strings.TrimLeft(t, "#")) != s.Title {
			continue
		}
		rest := append([]string{}, lines[:i]...)
		tail := lines[i+1:]
		for len(tail) > 0 && strings.TrimSpace(tail[0]) == "" {
			tail = tail[1:]
		}
		rest = append(rest, tail...)
		return strings.Trim(strings.Join(rest, "\n"), "\n")
	}
	return s.Body
}

// renderControls draws the previous/next trigger controls.
func renderControls(f nav.Frame) string {
	prev := "[ ← prev ]"
	next := "[ next → ]"

	var b strings.Builder
	if f.PrevDisabled {
		b.WriteString(styles.ControlDisabledStyle().Render(prev))
	} else {
		b.WriteString(styles.ControlStyle().Render(prev))
	}
	b.WriteString("  ")
	b.WriteString(styles.CounterStyle().Render(f.Counter))
	b.WriteString("  ")
	if f.NextDisabled {
		b.WriteString(styles.ControlDisabledStyle().Render(next))
	} else {
		b.WriteString(styles.ControlStyle().Render(next))
	}
	return b.String()
}
