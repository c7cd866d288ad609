package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/noobstar3310/aikwei-dev/internal/content"
	"github.com/noobstar3310/aikwei-dev/internal/render"
	"github.com/noobstar3310/aikwei-dev/internal/scroll"
	"github.com/noobstar3310/aikwei-dev/internal/theme"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Walk through the page in the terminal",
	Long: `Scrolls through the page section by section, the way the navigation
links do, and prints each section in the theme the visibility observer
has settled on.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("width", 100, "terminal columns")
	previewCmd.Flags().Float64("height", 900, "simulated viewport height in pixels")
	previewCmd.Flags().String("section", "", "only visit this navigation label (About, Experience, Projects, Contact)")
	previewCmd.Flags().Duration("frame", 16*time.Millisecond, "delay between smooth-scroll frames")
	rootCmd.AddCommand(previewCmd)
}

// previewOptions drives one terminal walkthrough.
type previewOptions struct {
	Width    int
	Height   float64
	Section  string
	Frame    time.Duration
	Observer theme.ObserverConfig
	Logger   zerolog.Logger
}

func runPreview(cmd *cobra.Command, _ []string) error {
	opts := previewOptions{Observer: cfg.ObserverConfig(), Logger: logger}
	opts.Width, _ = cmd.Flags().GetInt("width")
	opts.Height, _ = cmd.Flags().GetFloat64("height")
	opts.Section, _ = cmd.Flags().GetString("section")
	opts.Frame, _ = cmd.Flags().GetDuration("frame")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return preview(ctx, cmd.OutOrStdout(), content.Default(), opts)
}

// lockedWriter serialises writes from the main loop and the timer
// goroutines that deliver theme flips.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

func preview(ctx context.Context, w io.Writer, p content.Profile, opts previewOptions) error {
	out := &lockedWriter{w: w}
	styles := render.DefaultTerminalStyles()

	links := scroll.Links()
	if opts.Section != "" {
		links = links[:0:0]
		for _, l := range scroll.Links() {
			if l.Label == opts.Section {
				links = append(links, l)
			}
		}
		if len(links) == 0 {
			return fmt.Errorf("unknown section %q", opts.Section)
		}
	}

	flag := theme.NewFlag(theme.Light)
	cancel := flag.Subscribe(func(m theme.Mode) {
		fmt.Fprintf(out, "  · theme → %s\n", m)
	})
	defer cancel()

	layout := render.EstimateLayout(p, opts.Height)
	nav := scroll.NewNavigator(layout, scroll.Viewport{Height: opts.Height}, scroll.WithFrameInterval(opts.Frame))
	obs := theme.NewObserver(flag, opts.Observer, theme.WithLogger(opts.Logger))
	nav.OnFrame(obs.Observe)
	obs.Mount(layout, nav.Viewport())
	defer obs.Unmount()

	top, err := render.Build(p, flag.Mode())
	if err != nil {
		return err
	}
	fmt.Fprintln(out, render.Terminal(top, opts.Width, styles, func(n *html.Node) bool {
		id, _ := render.Attr(n, "id")
		return n.DataAtom == atom.Nav || id == "hero"
	}))

	// Long enough for the last scheduled flip to land.
	settle := opts.Observer.Delay + 20*time.Millisecond
	for _, l := range links {
		if _, err := nav.Activate(ctx, l.Label); err != nil {
			return err
		}
		if err := sleep(ctx, settle); err != nil {
			return err
		}

		mode := flag.Mode()
		root, err := render.Build(p, mode)
		if err != nil {
			return err
		}
		section := render.ByID(root, l.Target)
		if section == nil {
			continue
		}
		fmt.Fprintf(out, "\n→ %s (scroll %.0fpx, %s)\n", l.Label, nav.Viewport().ScrollY, mode)
		fmt.Fprintln(out, render.TerminalSection(section, opts.Width, styles))
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
