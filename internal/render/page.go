package render

import (
	"encoding/json"
	"fmt"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/noobstar3310/aikwei-dev/internal/content"
	"github.com/noobstar3310/aikwei-dev/internal/scroll"
	"github.com/noobstar3310/aikwei-dev/internal/theme"
)

// Attributes read by the client script.
const (
	AttrScrollTarget = "data-scroll-target"
	AttrObserve      = "data-theme-observe"
	AttrLight        = "data-theme-light"
	AttrDark         = "data-theme-dark"
	AttrTyped        = "data-typed"
)

const sectionBase = "py-32 px-12 transition-all ease-in-out"

// themed returns the attributes of an element whose classes follow the
// mode: the rendered class plus both alternatives for the client to swap.
func themed(base string, mode theme.Mode, pick func(theme.Palette) string, extra ...string) (string, []string) {
	attrs := append([]string{
		AttrLight, pick(theme.For(theme.Light)),
		AttrDark, pick(theme.For(theme.Dark)),
	}, extra...)
	return classes(base, pick(theme.For(mode))), attrs
}

func sectionClasses(p theme.Palette) string { return p.Section.String() }

// Build returns the page body for p in the given mode. It is a pure
// function of its arguments.
func Build(p content.Profile, mode theme.Mode) (*html.Node, error) {
	sequence, err := typedSequence(p.Typed)
	if err != nil {
		return nil, err
	}
	return el(atom.Main, "min-h-screen bg-white", nil,
		buildNav(p),
		buildHero(p, sequence),
		buildAbout(p, mode),
		buildExperience(p.Experience, mode),
		buildProjects(p.Projects, mode),
		buildContact(p.Contact),
	), nil
}

// typedSequence encodes the typing animation as the flat
// [phrase, pause, phrase, pause, ...] list the client script replays.
func typedSequence(steps []content.TypedStep) (string, error) {
	flat := make([]any, 0, len(steps)*2)
	for _, s := range steps {
		flat = append(flat, s.Text, s.PauseMS)
	}
	b, err := json.Marshal(flat)
	if err != nil {
		return "", fmt.Errorf("encode typed sequence: %w", err)
	}
	return string(b), nil
}

func buildNav(p content.Profile) *html.Node {
	links := el(atom.Div, "flex space-x-12", nil)
	for _, l := range scroll.Links() {
		links.AppendChild(el(atom.A, "hover:underline",
			[]string{"href", "#" + l.Target, AttrScrollTarget, l.Target},
			text(l.Label)))
	}
	brand := el(atom.Div, "font-bold text-xl", nil,
		el(atom.A, "", []string{"href", "/"},
			text(p.Name),
			el(atom.Sup, "text-xs ml-1", nil, text(p.Mark))))
	return el(atom.Nav, "fixed top-0 left-0 w-full bg-white z-50 py-8 px-12", nil,
		el(atom.Div, "flex justify-between items-center", nil, brand, links))
}

func buildHero(p content.Profile, sequence string) *html.Node {
	var first string
	if len(p.Typed) > 0 {
		first = p.Typed[0].Text
	}

	headline := el(atom.H1, "font-bold tracking-tight mb-16", nil,
		el(atom.Div, "text-[15vw] leading-none", nil, text(p.Headline)),
		el(atom.Div, "typed text-[10vw] leading-none -mt-[2vw]", []string{AttrTyped, sequence}, text(first)),
	)

	focus := el(atom.Div, "flex flex-col items-end", nil)
	for _, f := range p.Focus {
		focus.AppendChild(el(atom.P, "text-sm", nil, text(f)))
	}
	strip := el(atom.Div, "absolute bottom-0 left-0 right-0 px-12 py-8 bg-gradient-to-t from-white via-white to-transparent", nil,
		el(atom.Div, "flex justify-between", nil,
			el(atom.Div, "", nil,
				el(atom.P, "text-sm", nil, text("Currently")),
				el(atom.P, "text-sm text-gray-500", nil, text(p.Currently))),
			el(atom.Div, "", nil,
				el(atom.P, "text-sm", nil, text("Based on")),
				el(atom.P, "text-sm text-gray-500", nil, text(p.BasedOn))),
			focus,
		))

	return el(atom.Section, "min-h-screen relative px-12", []string{"id", "hero"},
		el(atom.Div, "absolute inset-0 flex flex-col justify-end pb-32", nil, headline),
		strip,
	)
}

func buildAbout(p content.Profile, mode theme.Mode) *html.Node {
	sc, sa := themed(classes(sectionBase, theme.DurationClass()), mode, sectionClasses, "id", scroll.About)
	ic, ia := themed(classes("max-w-3xl mx-auto transition-opacity", theme.DurationClass()), mode,
		func(pl theme.Palette) string { return pl.Opacity })
	return el(atom.Section, sc, sa,
		el(atom.Div, ic, ia,
			el(atom.P, "text-4xl leading-relaxed", nil, text(p.About))))
}

func buildExperience(records []content.ExperienceRecord, mode theme.Mode) *html.Node {
	list := el(atom.Div, "grid gap-16", nil)
	for i, r := range records {
		list.AppendChild(experienceItem(i, r, mode))
	}
	sc, sa := themed(classes(sectionBase, theme.DurationClass()), mode, sectionClasses,
		"id", scroll.Experience, AttrObserve, "")
	return el(atom.Section, sc, sa,
		el(atom.Div, "", nil,
			el(atom.H2, "text-5xl font-bold mb-16", nil, text("Experience")),
			list))
}

func experienceItem(i int, r content.ExperienceRecord, mode theme.Mode) *html.Node {
	c, a := themed(classes("experience-item border-t pt-8 transition-colors", theme.DurationClass()), mode,
		func(pl theme.Palette) string { return pl.Rule }, "data-index", strconv.Itoa(i))
	return el(atom.Div, c, a,
		el(atom.Div, "grid grid-cols-1 md:grid-cols-[1fr_2fr] gap-8", nil,
			el(atom.Div, "", nil,
				el(atom.H3, "text-2xl font-bold", nil, text(r.Title)),
				el(atom.P, "text-lg", nil, text(r.Organization)),
				el(atom.P, "text-sm text-gray-500", nil, text(r.Period))),
			el(atom.Div, "", nil,
				el(atom.P, "text-lg", nil, text(r.Description)))))
}

func buildProjects(records []content.ProjectRecord, mode theme.Mode) *html.Node {
	grid := el(atom.Div, "grid grid-cols-1 md:grid-cols-2 gap-8", nil)
	for i, r := range records {
		grid.AppendChild(projectItem(i, r, mode))
	}
	sc, sa := themed(classes(sectionBase, theme.DurationClass()), mode, sectionClasses, "id", scroll.Projects)
	return el(atom.Section, sc, sa,
		el(atom.Div, "", nil,
			el(atom.H2, "text-5xl font-bold mb-16", nil, text("Projects")),
			grid))
}

func projectItem(i int, r content.ProjectRecord, mode theme.Mode) *html.Node {
	c, a := themed(classes("project-item p-8 transition-colors", theme.DurationClass()), mode,
		func(pl theme.Palette) string { return pl.Card }, "data-index", strconv.Itoa(i))
	return el(atom.Div, c, a,
		el(atom.H3, "text-2xl font-bold mb-2", nil, text(r.Title)),
		el(atom.P, "text-lg mb-4", nil, text(r.EventLabel)),
		el(atom.A, "flex items-center text-sm underline",
			[]string{"href", r.URL, "target", "_blank", "rel", "noopener noreferrer"},
			text("View Project ↗")))
}

func buildContact(c content.Contact) *html.Node {
	return el(atom.Section, "py-32 px-12 bg-black text-white", []string{"id", scroll.Contact},
		el(atom.Div, "max-w-3xl", nil,
			el(atom.H2, "text-5xl font-bold mb-8", nil, text(c.Heading)),
			el(atom.P, "text-xl mb-8", nil, text(c.Lede)),
			el(atom.Div, "flex flex-col space-y-4", nil,
				el(atom.A, "text-2xl hover:underline flex items-center", []string{"href", c.MailtoHref()},
					text(c.Email+" ↗")),
				el(atom.A, "text-2xl hover:underline flex items-center", []string{"href", c.TelHref()},
					text(c.PhoneDisplay+" ↗")))))
}
