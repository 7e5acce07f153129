// Package nav owns slide navigation state.
//
// A Controller holds the single mutable value of a presentation
// session: the current slide index. All mutation goes through its
// operations, which saturate at the deck bounds, and every operation
// pushes one freshly computed Frame to the attached renderer so the
// visible state can never drift from the navigation state.
package nav

import (
	"fmt"
)

// Frame is the full observable projection of navigation state.
// It is recomputed from scratch on every render; nothing downstream
// patches a previous frame.
type Frame struct {
	// Index is the active slide, 0-based. Exactly one slide is active.
	Index int
	// Count is the fixed deck length.
	Count int
	// Counter is the human-readable position, e.g. "Slide 1 of 6".
	Counter string
	// PrevDisabled is true at the first slide.
	PrevDisabled bool
	// NextDisabled is true at the last slide.
	NextDisabled bool
}

// Project computes the frame for index in a deck of count slides.
func Project(index, count int) Frame {
	return Frame{
		Index:        index,
		Count:        count,
		Counter:      fmt.Sprintf("Slide %d of %d", index+1, count),
		PrevDisabled: index == 0,
		NextDisabled: index == count-1,
	}
}

// Renderer receives a frame after every navigation operation.
// Implementations must be idempotent: rendering the same frame twice
// yields the same observable output.
type Renderer interface {
	Render(Frame)
}

// RenderFunc adapts a function to the Renderer interface.
type RenderFunc func(Frame)

// Render calls f.
func (f RenderFunc) Render(fr Frame) { f(fr) }

// Controller is the sole owner and mutator of the current slide index.
// It is not safe for concurrent use; all calls must arrive on the
// event loop that drives the presentation.
type Controller struct {
	count    int
	index    int
	renderer Renderer
}

// NewController creates a controller for a deck of count slides,
// starting at slide 0. Count must be at least 1: an empty deck has no
// valid position and is rejected at startup rather than clamped.
func NewController(count int) (*Controller, error) {
	if count < 1 {
		return nil, fmt.Errorf("deck must have at least one slide, got %d", count)
	}
	return &Controller{count: count}, nil
}

// Attach sets the renderer and immediately pushes the initial frame.
func (c *Controller) Attach(r Renderer) {
	c.renderer = r
	c.render()
}

// Index returns the current slide index.
func (c *Controller) Index() int { return c.index }

// Count returns the fixed deck length.
func (c *Controller) Count() int { return c.count }

// Frame returns the projection of the current state.
func (c *Controller) Frame() Frame { return Project(c.index, c.count) }

// Next advances one slide, saturating at the last slide.
// A press at the boundary is an expected no-op, not an error.
func (c *Controller) Next() {
	if c.index < c.count-1 {
		c.index++
	}
	c.render()
}

// Prev retreats one slide, saturating at the first slide.
func (c *Controller) Prev() {
	if c.index > 0 {
		c.index--
	}
	c.render()
}

// GoTo jumps to slide i. Out-of-range values are clamped to the
// nearest bound rather than rejected, so programmatic callers cannot
// desynchronize the display.
func (c *Controller) GoTo(i int) {
	switch {
	case i < 0:
		c.index = 0
	case i > c.count-1:
		c.index = c.count - 1
	default:
		c.index = i
	}
	c.render()
}

// First jumps to the first slide.
func (c *Controller) First() { c.GoTo(0) }

// Last jumps to the last slide.
func (c *Controller) Last() { c.GoTo(c.count - 1) }

// render pushes exactly one frame per operation, state change or not.
func (c *Controller) render() {
	if c.renderer != nil {
		c.renderer.Render(c.Frame())
	}
}
