package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"golang.org/x/net/html"

	"github.com/noobstar3310/aikwei-dev/internal/content"
	"github.com/noobstar3310/aikwei-dev/internal/theme"
)

// IndexTemplate is the name of the document shell template.
const IndexTemplate = "index.html"

//go:embed assets/templates/*.html assets/static/*
var assets embed.FS

// Document is the data the shell template renders.
type Document struct {
	Title    string
	Theme    string
	Body     template.HTML
	Observer ObserverSettings
}

// ObserverSettings is handed to the client script so the browser applies
// the same threshold, margin and delay as the Go observer.
type ObserverSettings struct {
	Threshold float64
	MarginPx  float64
	DelayMS   int64
}

// SettingsFrom converts an observer config to its client form.
func SettingsFrom(cfg theme.ObserverConfig) ObserverSettings {
	return ObserverSettings{
		Threshold: cfg.Threshold,
		MarginPx:  cfg.Margin.Top,
		DelayMS:   cfg.Delay.Milliseconds(),
	}
}

// NewDocument renders the body for p in mode and wraps it for the shell.
func NewDocument(p content.Profile, mode theme.Mode, cfg theme.ObserverConfig) (Document, error) {
	root, err := Build(p, mode)
	if err != nil {
		return Document{}, err
	}
	var body bytes.Buffer
	if err := html.Render(&body, root); err != nil {
		return Document{}, fmt.Errorf("render body: %w", err)
	}
	return Document{
		Title:    p.Name,
		Theme:    mode.String(),
		Body:     template.HTML(body.String()),
		Observer: SettingsFrom(cfg),
	}, nil
}

// Templates parses the embedded shell templates.
func Templates() (*template.Template, error) {
	t, err := template.ParseFS(assets, "assets/templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

// WriteDocument executes the shell for doc into w.
func WriteDocument(w io.Writer, t *template.Template, doc Document) error {
	if err := t.ExecuteTemplate(w, IndexTemplate, doc); err != nil {
		return fmt.Errorf("execute %s: %w", IndexTemplate, err)
	}
	return nil
}

// Static returns the client assets served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(assets, "assets/static")
	if err != nil {
		// Unreachable with a valid embed pattern.
		return assets
	}
	return sub
}
