package nav

import "fmt"

// Op names a navigation operation.
type Op string

const (
	OpNext  Op = "next"
	OpPrev  Op = "prev"
	OpGoTo  Op = "goto"
	OpFirst Op = "first"
	OpLast  Op = "last"
)

// Command is a navigation request from an input source. Every external
// trigger (key press, on-screen control, remote call) is translated to
// a Command and dispatched to the controller, keeping input handling
// decoupled from rendering and deck storage.
type Command struct {
	Op    Op
	Index int // used by OpGoTo
}

// Apply dispatches a command to the matching controller operation.
// Unknown ops are ignored; the controller never errors on input.
func (c *Controller) Apply(cmd Command) {
	switch cmd.Op {
	case OpNext:
		c.Next()
	case OpPrev:
		c.Prev()
	case OpGoTo:
		c.GoTo(cmd.Index)
	case OpFirst:
		c.First()
	case OpLast:
		c.Last()
	}
}

func (c Command) String() string {
	if c.Op == OpGoTo {
		return fmt.Sprintf("goto %d", c.Index)
	}
	return string(c.Op)
}
