package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/quellen/preso/internal/config"
	"github.com/quellen/preso/internal/deck"
	"github.com/quellen/preso/internal/history"
	"github.com/quellen/preso/internal/log"
	"github.com/quellen/preso/internal/nav"
	"github.com/quellen/preso/internal/remote"
	"github.com/quellen/preso/internal/ui"
	"github.com/quellen/preso/internal/ui/styles"
)

func newPresentCmd() *cobra.Command {
	var (
		remoteAddr string
		themeName  string
		themeMode  string
		start      int
	)

	cmd := &cobra.Command{
		Use:     "present [deck.md]",
		Short:   "Present a markdown deck",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Present a markdown file as a slide deck.

Slides are separated by --- lines; the first heading of each slide is
its title. With no argument, the most recently presented deck is
reopened.

Keys: ←/→ or h/l navigate, g opens fuzzy jump, c copies the slide
source to the clipboard, q quits.`,
		Example: `  preso present talk.md             # present a deck
  preso present                     # reopen the last deck
  preso present talk.md --start 3   # start on slide 3
  preso present talk.md --remote    # allow remote control (config addr)
  preso present talk.md --remote :9000 --theme nord`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)

			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return fmt.Errorf("present requires a terminal (use 'preso outline' for scripting)")
			}

			path, err := resolveDeckPath(args, cfg, l)
			if err != nil {
				return err
			}

			d, err := deck.Load(path)
			if err != nil {
				return err
			}
			l.Debug("deck loaded", "path", path, "slides", d.Len())

			themeCfg := cfg.Theme
			if themeName != "" {
				if !config.IsValidThemeName(themeName) {
					return fmt.Errorf("unknown theme %q (available: %v)", themeName, config.ValidThemeNames)
				}
				themeCfg.Name = themeName
			}
			if themeMode != "" {
				themeCfg.Mode = themeMode
			}
			styles.Init(themeCfg)

			// --start is 1-based for humans; out-of-range values clamp.
			p, err := ui.NewPresenter(d, start-1)
			if err != nil {
				return err
			}

			recordHistory(cfg, l, d)

			if cmd.Flags().Changed("remote") {
				addr := remoteAddr
				if addr == "config" {
					addr = cfg.Remote.Addr
				}

				srv := remote.New(func(c nav.Command) { p.Send(c) }, l)
				if err := srv.Start(addr); err != nil {
					return err
				}
				defer func() {
					if err := srv.Shutdown(ctx); err != nil {
						l.Debug("remote shutdown", "error", err)
					}
				}()
				p.OnFrame(srv.Broadcast)
			}

			return p.Run()
		},
	}

	cmd.Flags().StringVar(&remoteAddr, "remote", "", "Serve remote control on this address")
	cmd.Flags().Lookup("remote").NoOptDefVal = "config"
	cmd.Flags().StringVar(&themeName, "theme", "", "Theme to use for this session")
	cmd.Flags().StringVar(&themeMode, "mode", "", "Theme variant: auto, dark or light")
	cmd.Flags().IntVar(&start, "start", 1, "Slide to start on (1-based)")

	return cmd
}

// resolveDeckPath picks the deck file from args or falls back to the
// most recently presented deck.
func resolveDeckPath(args []string, cfg *config.Config, l *log.Logger) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if cfg.History.Disabled {
		return "", fmt.Errorf("no deck specified and history is disabled")
	}

	histPath, err := history.DefaultPath()
	if err != nil {
		return "", fmt.Errorf("no deck specified: %w", err)
	}
	hist, err := history.Load(histPath)
	if err != nil {
		return "", fmt.Errorf("load history: %w", err)
	}

	// Opportunistically clean decks that no longer exist.
	if removed := hist.RemoveStale(); removed > 0 {
		if err := hist.Save(histPath); err != nil {
			l.Printf("Warning: failed to save history after cleanup: %v\n", err)
		}
	}

	recent := hist.MostRecent()
	if recent == "" {
		return "", fmt.Errorf("no deck specified and no history (run 'preso present <deck.md>' first)")
	}
	return recent, nil
}

// recordHistory is best-effort; presenting proceeds even if it fails.
func recordHistory(cfg *config.Config, l *log.Logger, d *deck.Deck) {
	if cfg.History.Disabled || d.Path() == "" {
		return
	}
	histPath, err := history.DefaultPath()
	if err != nil {
		return
	}
	if err := history.RecordAccess(histPath, d.Path(), d.Title()); err != nil {
		l.Printf("Warning: failed to record history: %v\n", err)
	}
}
