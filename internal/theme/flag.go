// Package theme owns the light/dark switch of the page: the observable flag,
// the class palette each mode selects and the visibility observer that
// drives it.
package theme

import (
	"errors"
	"fmt"
	"sync"
)

// Mode is the page colour mode.
type Mode bool

const (
	Light Mode = false
	Dark  Mode = true
)

// ErrUnknownMode is returned by ParseMode for anything but "light" or "dark".
var ErrUnknownMode = errors.New("unknown theme mode")

// ParseMode accepts "light", "dark" and the empty string (light).
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "light":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return Light, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Flag is an observable Mode. The zero value is a usable Light flag.
type Flag struct {
	mu     sync.Mutex
	mode   Mode
	nextID int
	subs   map[int]func(Mode)
}

// NewFlag returns a flag holding initial.
func NewFlag(initial Mode) *Flag {
	return &Flag{mode: initial}
}

// Mode returns the current mode.
func (f *Flag) Mode() Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

// Set stores m and notifies subscribers if it changed. It reports whether
// the value changed.
func (f *Flag) Set(m Mode) bool {
	f.mu.Lock()
	if f.mode == m {
		f.mu.Unlock()
		return false
	}
	f.mode = m
	subs := make([]func(Mode), 0, len(f.subs))
	for id := 0; id < f.nextID; id++ {
		if fn, ok := f.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	f.mu.Unlock()

	for _, fn := range subs {
		fn(m)
	}
	return true
}

// Subscribe calls fn with every new mode, in subscription order. The
// returned function removes the subscription.
func (f *Flag) Subscribe(fn func(Mode)) (cancel func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.subs == nil {
		f.subs = make(map[int]func(Mode))
	}
	id := f.nextID
	f.nextID++
	f.subs[id] = fn
	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}
