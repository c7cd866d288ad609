// Package scroll models the vertical geometry of the page: where each
// section sits, what the viewport currently shows, and how smooth scrolling
// moves between them.
package scroll

// Span is a vertical extent in page pixels.
type Span struct {
	Top    float64
	Height float64
}

// Bottom returns the first pixel row below the span.
func (s Span) Bottom() float64 { return s.Top + s.Height }

// Overlap returns how many pixel rows s and o share.
func (s Span) Overlap(o Span) float64 {
	top := max(s.Top, o.Top)
	bottom := min(s.Bottom(), o.Bottom())
	if bottom <= top {
		return 0
	}
	return bottom - top
}

// Margin grows (positive) or shrinks (negative) the observation root,
// following CSS rootMargin semantics for the vertical axis.
type Margin struct {
	Top    float64
	Bottom float64
}

// Uniform returns a margin with the same value on top and bottom, i.e. the
// vertical half of a "Npx 0px" rootMargin.
func Uniform(px float64) Margin { return Margin{Top: px, Bottom: px} }

// Viewport is the visible window onto the page.
type Viewport struct {
	ScrollY float64
	Height  float64
}

// Span returns the page extent the viewport currently shows.
func (v Viewport) Span() Span { return Span{Top: v.ScrollY, Height: v.Height} }

// Root returns the viewport span adjusted by m. A root whose margins
// consume the whole viewport has a non-positive height.
func (v Viewport) Root(m Margin) Span {
	return Span{
		Top:    v.ScrollY - m.Top,
		Height: v.Height + m.Top + m.Bottom,
	}
}

// Ratio reports how much of target is inside root, relative to whichever
// of the two is shorter. A target taller than the root therefore counts as
// fully visible once it fills the root, and a short target once it is fully
// inside. Empty spans never intersect.
func Ratio(target, root Span) float64 {
	if target.Height <= 0 || root.Height <= 0 {
		return 0
	}
	return target.Overlap(root) / min(target.Height, root.Height)
}
