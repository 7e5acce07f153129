package main

import (
	"github.com/spf13/cobra"

	"github.com/quellen/preso/internal/deck"
	"github.com/quellen/preso/internal/log"
	"github.com/quellen/preso/internal/output"
)

func newOutlineCmd() *cobra.Command {
	var titlesOnly bool

	cmd := &cobra.Command{
		Use:     "outline <deck.md>",
		Short:   "Print the slide outline of a deck",
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(1),
		Long: `Print one line per slide with its position and title.

Output goes to stdout for use in scripts; diagnostics go to stderr.`,
		Example: `  preso outline talk.md
  preso outline talk.md --titles | head -3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			l := log.FromContext(ctx)

			d, err := deck.Load(args[0])
			if err != nil {
				return err
			}

			l.Printf("%s: %d slides\n", d.Title(), d.Len())

			for i, title := range d.Titles() {
				if titlesOnly {
					out.Println(title)
					continue
				}
				out.Printf("%3d  %s\n", i+1, title)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&titlesOnly, "titles", false, "Print titles without slide numbers")

	return cmd
}
