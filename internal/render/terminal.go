package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TerminalStyles is the lipgloss palette used by Terminal.
type TerminalStyles struct {
	Light   lipgloss.Style
	Dark    lipgloss.Style
	Title   lipgloss.Style
	Heading lipgloss.Style
	Item    lipgloss.Style
	Link    lipgloss.Style
	Nav     lipgloss.Style
}

// DefaultTerminalStyles mirrors the page: black on white, white on black.
func DefaultTerminalStyles() TerminalStyles {
	return TerminalStyles{
		Light:   lipgloss.NewStyle().Background(lipgloss.Color("15")).Foreground(lipgloss.Color("0")).Padding(1, 3),
		Dark:    lipgloss.NewStyle().Background(lipgloss.Color("0")).Foreground(lipgloss.Color("15")).Padding(1, 3),
		Title:   lipgloss.NewStyle().Bold(true),
		Heading: lipgloss.NewStyle().Bold(true).Underline(true),
		Item:    lipgloss.NewStyle().Bold(true),
		Link:    lipgloss.NewStyle().Faint(true).Underline(true),
		Nav:     lipgloss.NewStyle().Bold(true),
	}
}

// Terminal renders the top-level sections of a Build tree as styled text
// blocks of the given width, skipping those keep rejects. A nil keep renders
// every section. A section is drawn dark when its classes carry the dark
// background, so the output follows whatever mode the tree was built with.
func Terminal(root *html.Node, width int, st TerminalStyles, keep func(*html.Node) bool) string {
	var blocks []string
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (keep != nil && !keep(c)) {
			continue
		}
		block := TerminalSection(c, width, st)
		if block != "" {
			blocks = append(blocks, block)
		}
	}
	return strings.Join(blocks, "\n")
}

// TerminalSection renders one section or nav element.
func TerminalSection(n *html.Node, width int, st TerminalStyles) string {
	frame := st.Light
	if HasClass(n, "bg-black") {
		frame = st.Dark
	}
	inner := max(width-frame.GetHorizontalFrameSize(), 10)

	var lines []string
	if n.DataAtom == atom.Nav {
		lines = navLines(n, st)
	} else {
		lines = contentLines(n, inner, st)
	}
	if len(lines) == 0 {
		return ""
	}
	return frame.Width(width).Render(strings.Join(lines, "\n"))
}

func navLines(n *html.Node, st TerminalStyles) []string {
	var labels []string
	for _, a := range Find(n, func(e *html.Node) bool { _, ok := Attr(e, AttrScrollTarget); return ok }) {
		labels = append(labels, TextOf(a))
	}
	brand := ""
	if links := Find(n, func(e *html.Node) bool { return e.DataAtom == atom.A }); len(links) > 0 {
		brand = st.Title.Render(TextOf(links[0]))
	}
	return []string{brand + "    " + st.Nav.Render(strings.Join(labels, "  ·  "))}
}

func contentLines(n *html.Node, width int, st TerminalStyles) []string {
	wrap := lipgloss.NewStyle().Width(width)
	var lines []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		switch n.DataAtom {
		case atom.H1:
			// The headline and the typed phrase are separate lines.
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if t := TextOf(c); t != "" {
					lines = append(lines, st.Title.Render(strings.ToUpper(t)))
				}
			}
			lines = append(lines, "")
			return
		case atom.H2:
			lines = append(lines, st.Heading.Render(TextOf(n)), "")
			return
		case atom.H3:
			lines = append(lines, st.Item.Render(TextOf(n)))
			return
		case atom.P:
			lines = append(lines, wrap.Render(TextOf(n)))
			return
		case atom.A:
			href, _ := Attr(n, "href")
			lines = append(lines, TextOf(n)+"  "+st.Link.Render(href))
			return
		}
		if HasClass(n, "experience-item") || HasClass(n, "project-item") {
			if len(lines) > 0 && lines[len(lines)-1] != "" {
				lines = append(lines, "")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
