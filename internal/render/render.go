// Package render turns page data into HTML fragments. Every function
// emits one child per input element, in input order, and never modifies
// its input.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/Zachkp/portfolio/internal/profile"
	"github.com/Zachkp/portfolio/internal/projects"
	"github.com/Zachkp/portfolio/internal/viewport"
)

//go:embed fragments/*.tmpl
var fragmentsFS embed.FS

type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.New("fragments").
		Funcs(template.FuncMap{
			"revealClass": func() string { return viewport.RevealClass },
		}).
		ParseFS(fragmentsFS, "fragments/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing fragments: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// MustNew is New for package initialization; it panics on a bad template.
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) Strengths(items []string) (template.HTML, error) {
	return r.execute("strengths", items)
}

func (r *Renderer) SkillGroups(groups []profile.SkillGroup) (template.HTML, error) {
	return r.execute("skills", groups)
}

func (r *Renderer) Timeline(entries []profile.TimelineEntry) (template.HTML, error) {
	return r.execute("timeline", entries)
}

// Projects renders project cards. Output depends only on the records,
// never on which source produced them.
func (r *Renderer) Projects(records []projects.Record) (template.HTML, error) {
	return r.execute("projects", records)
}

// Status renders the note above the grid. Live results link the handle
// to the account; every other status is plain text.
func (r *Renderer) Status(s projects.Status) (template.HTML, error) {
	return r.execute("status", s)
}

// Region renders the status note and the grid as one unit, so they are
// always replaced together.
func (r *Renderer) Region(s projects.Status, records []projects.Record) (template.HTML, error) {
	return r.execute("region", struct {
		Status   projects.Status
		Projects []projects.Record
	}{s, records})
}

func (r *Renderer) execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
