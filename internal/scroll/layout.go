package scroll

// Block is a section and its rendered height, in document order.
type Block struct {
	ID     string
	Height float64
}

// Section is a mounted block with its resolved position.
type Section struct {
	ID   string
	Span Span
}

// Layout is the stacked sequence of mounted sections.
type Layout struct {
	sections []Section
}

// NewLayout stacks blocks top to bottom starting at page offset 0.
func NewLayout(blocks ...Block) *Layout {
	l := &Layout{sections: make([]Section, 0, len(blocks))}
	var top float64
	for _, b := range blocks {
		l.sections = append(l.sections, Section{ID: b.ID, Span: Span{Top: top, Height: b.Height}})
		top += b.Height
	}
	return l
}

// Lookup returns the span of a mounted section.
func (l *Layout) Lookup(id string) (Span, bool) {
	if l == nil {
		return Span{}, false
	}
	for _, s := range l.sections {
		if s.ID == id {
			return s.Span, true
		}
	}
	return Span{}, false
}

// Sections returns the mounted sections in document order.
func (l *Layout) Sections() []Section {
	if l == nil {
		return nil
	}
	return append([]Section(nil), l.sections...)
}

// Height is the total height of the stacked sections.
func (l *Layout) Height() float64 {
	if l == nil || len(l.sections) == 0 {
		return 0
	}
	return l.sections[len(l.sections)-1].Span.Bottom()
}

// MaxScroll is the largest scroll offset for a viewport of the given
// height. The page keeps enough trailing room for the last section's top
// edge to reach the top of the viewport.
func (l *Layout) MaxScroll(viewportHeight float64) float64 {
	if l == nil || len(l.sections) == 0 {
		return 0
	}
	last := l.sections[len(l.sections)-1].Span.Top
	return max(0, l.Height()-viewportHeight, last)
}
