package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quellen/preso/internal/history"
	"github.com/quellen/preso/internal/log"
	"github.com/quellen/preso/internal/output"
)

func newRecentCmd() *cobra.Command {
	var pathsOnly bool

	cmd := &cobra.Command{
		Use:     "recent",
		Short:   "List recently presented decks",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `List recently presented decks, most recent first.

Decks whose files no longer exist are dropped from the listing.`,
		Example: `  preso recent
  preso present "$(preso recent --paths | head -1)"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			l := log.FromContext(ctx)

			histPath, err := history.DefaultPath()
			if err != nil {
				return fmt.Errorf("locate history: %w", err)
			}
			return listRecent(histPath, pathsOnly, out, l)
		},
	}

	cmd.Flags().BoolVar(&pathsOnly, "paths", false, "Print deck paths only")

	return cmd
}

func listRecent(histPath string, pathsOnly bool, out *output.Printer, l *log.Logger) error {
	hist, err := history.Load(histPath)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	if removed := hist.RemoveStale(); removed > 0 {
		l.Debug("removed stale history entries", "count", removed)
		if err := hist.Save(histPath); err != nil {
			l.Printf("Warning: failed to save history after cleanup: %v\n", err)
		}
	}

	if len(hist.Entries) == 0 {
		l.Println("No recently presented decks.")
		return nil
	}

	hist.Sort()
	for _, e := range hist.Entries {
		if pathsOnly {
			out.Println(e.Path)
			continue
		}
		out.Printf("%s\t%s\n", e.Path, e.Title)
	}
	return nil
}
