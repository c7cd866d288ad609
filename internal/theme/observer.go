package theme

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/noobstar3310/aikwei-dev/internal/scroll"
)

// Timer is the part of *time.Timer the observer needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run once after d.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// ObserverConfig tunes when the watched section counts as visible.
type ObserverConfig struct {
	Target    string
	Threshold float64
	Margin    scroll.Margin
	Delay     time.Duration
}

// DefaultObserverConfig watches the experience section: visible at 30%
// inside a root shrunk by 300px top and bottom, flipping 100ms later.
func DefaultObserverConfig() ObserverConfig {
	return ObserverConfig{
		Target:    scroll.Experience,
		Threshold: 0.3,
		Margin:    scroll.Uniform(-300),
		Delay:     100 * time.Millisecond,
	}
}

// Observer turns the visibility of one section into flips of a Flag. Only
// the most recent flip is ever pending; a new transition cancels the
// previous one before scheduling its own.
type Observer struct {
	cfg   ObserverConfig
	flag  *Flag
	after AfterFunc
	log   zerolog.Logger

	// fireMu spans a flip from its generation check to Flag.Set, so
	// Unmount cannot slip in between. Subscribers of the flag must not
	// call Unmount.
	fireMu sync.Mutex

	mu      sync.Mutex
	layout  *scroll.Layout
	target  scroll.Span
	mounted bool
	known   bool
	visible bool
	pending Timer
	gen     uint64
}

// ObserverOption configures an Observer.
type ObserverOption func(*Observer)

// WithAfterFunc replaces time.AfterFunc, mainly for tests.
func WithAfterFunc(fn AfterFunc) ObserverOption {
	return func(o *Observer) {
		if fn != nil {
			o.after = fn
		}
	}
}

// WithLogger sets the logger used for transition events.
func WithLogger(l zerolog.Logger) ObserverOption {
	return func(o *Observer) { o.log = l }
}

// NewObserver returns an unmounted observer writing to flag.
func NewObserver(flag *Flag, cfg ObserverConfig, opts ...ObserverOption) *Observer {
	o := &Observer{
		cfg:   cfg,
		flag:  flag,
		after: realAfterFunc,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Mount starts watching the target section of layout and evaluates vp
// immediately. It does nothing and returns false when the target is not
// mounted or the observer is already watching.
func (o *Observer) Mount(layout *scroll.Layout, vp scroll.Viewport) bool {
	span, ok := layout.Lookup(o.cfg.Target)
	if !ok {
		return false
	}

	o.mu.Lock()
	if o.mounted {
		o.mu.Unlock()
		return false
	}
	o.layout = layout
	o.target = span
	o.mounted = true
	o.known = false
	o.mu.Unlock()

	o.log.Debug().Str("target", o.cfg.Target).Msg("observer mounted")
	o.Observe(vp)
	return true
}

// Unmount stops watching and cancels a pending flip. A flip already being
// applied completes before Unmount returns; none lands afterwards. It is a
// no-op when the observer is not mounted.
func (o *Observer) Unmount() {
	o.fireMu.Lock()
	defer o.fireMu.Unlock()
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.mounted {
		return
	}
	o.cancelLocked()
	o.mounted = false
	o.layout = nil
	o.known = false
	o.log.Debug().Str("target", o.cfg.Target).Msg("observer unmounted")
}

// Mounted reports whether the observer is watching.
func (o *Observer) Mounted() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.mounted
}

// Visible reports the last evaluated visibility of the target.
func (o *Observer) Visible() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.visible
}

// Ratio returns the target's visibility ratio for vp.
func (o *Observer) Ratio(vp scroll.Viewport) float64 {
	o.mu.Lock()
	target := o.target
	o.mu.Unlock()
	return scroll.Ratio(target, vp.Root(o.cfg.Margin))
}

// Observe evaluates one viewport position. The first evaluation after
// Mount always schedules a flip; later ones only on a visibility change.
func (o *Observer) Observe(vp scroll.Viewport) {
	ratio := o.Ratio(vp)
	visible := ratio > 0 && ratio >= o.cfg.Threshold

	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.mounted || (o.known && visible == o.visible) {
		return
	}
	o.known = true
	o.visible = visible

	next := Light
	if visible {
		next = Dark
	}
	o.cancelLocked()
	o.gen++
	gen := o.gen
	o.log.Debug().
		Float64("ratio", ratio).
		Bool("visible", visible).
		Stringer("next", next).
		Msg("visibility changed")
	o.pending = o.after(o.cfg.Delay, func() { o.fire(gen, next) })
}

func (o *Observer) fire(gen uint64, next Mode) {
	o.fireMu.Lock()
	defer o.fireMu.Unlock()

	o.mu.Lock()
	if gen != o.gen || !o.mounted {
		o.mu.Unlock()
		return
	}
	o.pending = nil
	o.mu.Unlock()

	if o.flag.Set(next) {
		o.log.Debug().Stringer("mode", next).Msg("theme flipped")
	}
}

func (o *Observer) cancelLocked() {
	if o.pending != nil {
		o.pending.Stop()
		o.pending = nil
	}
	o.gen++
}
