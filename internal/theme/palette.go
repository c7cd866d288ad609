package theme

import (
	"fmt"
	"time"
)

// Transition is the duration of every colour change.
const Transition = 500 * time.Millisecond

// ClassPair is a background/foreground class couple.
type ClassPair struct {
	Background string
	Foreground string
}

func (c ClassPair) String() string { return c.Background + " " + c.Foreground }

// Palette is the set of mode-dependent classes used across the page.
type Palette struct {
	Section ClassPair
	Opacity string
	Rule    string
	Card    string
}

var (
	lightPalette = Palette{
		Section: ClassPair{Background: "bg-white", Foreground: "text-black"},
		Opacity: "opacity-90",
		Rule:    "border-black",
		Card:    "border-black border hover:bg-black hover:text-white",
	}
	darkPalette = Palette{
		Section: ClassPair{Background: "bg-black", Foreground: "text-white"},
		Opacity: "opacity-100",
		Rule:    "border-white",
		Card:    "border-white border hover:bg-white hover:text-black",
	}
)

// For returns the palette selected by m.
func For(m Mode) Palette {
	if m == Dark {
		return darkPalette
	}
	return lightPalette
}

// DurationClass is the utility class matching Transition.
func DurationClass() string {
	return fmt.Sprintf("duration-%d", Transition.Milliseconds())
}
