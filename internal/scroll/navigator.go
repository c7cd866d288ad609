package scroll

import (
	"context"
	"math"
	"sync"
	"time"
)

// Section anchors.
const (
	About      = "about"
	Experience = "experience"
	Projects   = "projects"
	Contact    = "contact"
)

// Link is a navigation trigger and the section it scrolls to.
type Link struct {
	Label  string
	Target string
}

// Links returns the navigation triggers in display order.
func Links() []Link {
	return []Link{
		{Label: "About", Target: About},
		{Label: "Experience", Target: Experience},
		{Label: "Projects", Target: Projects},
		{Label: "Contact", Target: Contact},
	}
}

// FrameFunc receives every viewport position of a smooth scroll.
type FrameFunc func(Viewport)

// Navigator moves a viewport over a layout.
type Navigator struct {
	layout   *Layout
	frames   int
	interval time.Duration

	mu        sync.Mutex
	viewport  Viewport
	listeners []FrameFunc
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithFrames sets how many frames a smooth scroll takes. Values below one
// jump straight to the target.
func WithFrames(n int) Option {
	return func(nav *Navigator) { nav.frames = max(n, 1) }
}

// WithFrameInterval sets the delay between frames.
func WithFrameInterval(d time.Duration) Option {
	return func(nav *Navigator) { nav.interval = d }
}

// NewNavigator returns a navigator positioned at vp. By default a scroll
// takes 24 frames at roughly 60fps.
func NewNavigator(layout *Layout, vp Viewport, opts ...Option) *Navigator {
	nav := &Navigator{
		layout:   layout,
		frames:   24,
		interval: 16 * time.Millisecond,
		viewport: vp,
	}
	for _, opt := range opts {
		opt(nav)
	}
	return nav
}

// OnFrame registers fn to receive every frame of every scroll.
func (n *Navigator) OnFrame(fn FrameFunc) {
	if fn == nil {
		return
	}
	n.mu.Lock()
	n.listeners = append(n.listeners, fn)
	n.mu.Unlock()
}

// Viewport returns the current viewport.
func (n *Navigator) Viewport() Viewport {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.viewport
}

// Activate scrolls to the section behind the trigger with the given label.
// Unknown labels are ignored.
func (n *Navigator) Activate(ctx context.Context, label string) (bool, error) {
	for _, l := range Links() {
		if l.Label == label {
			return n.ScrollTo(ctx, l.Target)
		}
	}
	return false, nil
}

// ScrollTo smooth-scrolls until the target's top edge sits at the top of
// the viewport. It reports false and leaves the viewport alone when the
// target is not mounted. A cancelled ctx stops the scroll where it is.
func (n *Navigator) ScrollTo(ctx context.Context, target string) (bool, error) {
	span, ok := n.layout.Lookup(target)
	if !ok {
		return false, nil
	}

	start := n.Viewport()
	dest := min(max(span.Top, 0), n.layout.MaxScroll(start.Height))

	for i, y := range Path(start.ScrollY, dest, n.frames) {
		if i > 0 && n.interval > 0 {
			t := time.NewTimer(n.interval)
			select {
			case <-ctx.Done():
				t.Stop()
				return true, ctx.Err()
			case <-t.C:
			}
		} else if err := ctx.Err(); err != nil {
			return true, err
		}
		n.step(Viewport{ScrollY: y, Height: start.Height})
	}
	return true, nil
}

func (n *Navigator) step(vp Viewport) {
	n.mu.Lock()
	n.viewport = vp
	listeners := append([]FrameFunc(nil), n.listeners...)
	n.mu.Unlock()

	for _, fn := range listeners {
		fn(vp)
	}
}

// Path returns the eased scroll offsets from one position to another. The
// last element is always exactly to.
func Path(from, to float64, frames int) []float64 {
	frames = max(frames, 1)
	out := make([]float64, frames)
	for i := range out {
		t := float64(i+1) / float64(frames)
		out[i] = from + (to-from)*easeInOutCubic(t)
	}
	out[frames-1] = to
	return out
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}
