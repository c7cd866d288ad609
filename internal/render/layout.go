package render

import (
	"math"

	"github.com/noobstar3310/aikwei-dev/internal/content"
	"github.com/noobstar3310/aikwei-dev/internal/scroll"
)

// Approximate pixel metrics of the rendered page at desktop width.
const (
	sectionPadding   = 256 // py-32, top and bottom
	headingBlock     = 112 // text-5xl heading plus mb-16
	experienceHeight = 180
	experienceGap    = 64
	projectHeight    = 176
	projectGap       = 32
	aboutLine        = 60
	aboutLineChars   = 48
	contactBody      = 240
)

// EstimateLayout returns a deterministic layout of the page for a viewport
// of the given height. The hero fills the first screen.
func EstimateLayout(p content.Profile, viewportHeight float64) *scroll.Layout {
	aboutLines := math.Ceil(float64(len(TextOf(text(p.About)))) / aboutLineChars)
	rows := math.Ceil(float64(len(p.Projects)) / 2)

	return scroll.NewLayout(
		scroll.Block{ID: "hero", Height: viewportHeight},
		scroll.Block{ID: scroll.About, Height: sectionPadding + aboutLines*aboutLine},
		scroll.Block{ID: scroll.Experience, Height: sectionPadding + headingBlock + stack(len(p.Experience), experienceHeight, experienceGap)},
		scroll.Block{ID: scroll.Projects, Height: sectionPadding + headingBlock + stack(int(rows), projectHeight, projectGap)},
		scroll.Block{ID: scroll.Contact, Height: sectionPadding + contactBody},
	)
}

func stack(n int, item, gap float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*item + float64(n-1)*gap
}
