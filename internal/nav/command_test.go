package nav

import "testing"

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cmds []Command
		want int
	}{
		{"next advances", []Command{{Op: OpNext}}, 1},
		{"prev retreats", []Command{{Op: OpNext}, {Op: OpNext}, {Op: OpPrev}}, 1},
		{"goto jumps", []Command{{Op: OpGoTo, Index: 4}}, 4},
		{"goto clamps", []Command{{Op: OpGoTo, Index: 42}}, 5},
		{"first and last", []Command{{Op: OpLast}, {Op: OpFirst}}, 0},
		{"unknown op ignored", []Command{{Op: Op("dance")}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := NewController(6)
			if err != nil {
				t.Fatal(err)
			}
			for _, cmd := range tt.cmds {
				c.Apply(cmd)
			}
			if c.Index() != tt.want {
				t.Errorf("Index() = %d, want %d", c.Index(), tt.want)
			}
		})
	}
}

func TestCommandString(t *testing.T) {
	t.Parallel()

	if got := (Command{Op: OpNext}).String(); got != "next" {
		t.Errorf("String() = %q, want %q", got, "next")
	}
	if got := (Command{Op: OpGoTo, Index: 3}).String(); got != "goto 3" {
		t.Errorf("String() = %q, want %q", got, "goto 3")
	}
}
