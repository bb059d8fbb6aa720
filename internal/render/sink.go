package render

import (
	"html/template"

	"github.com/Zachkp/portfolio/internal/projects"
)

// RegionSink renders loader output into the projects region. HTML holds
// the loading state until Commit replaces status and grid together.
type RegionSink struct {
	r *Renderer

	HTML template.HTML
	Err  error
}

func NewRegionSink(r *Renderer) *RegionSink {
	return &RegionSink{r: r}
}

func (s *RegionSink) Loading(status projects.Status) {
	s.HTML, s.Err = s.r.Region(status, nil)
}

func (s *RegionSink) Commit(status projects.Status, records []projects.Record) {
	html, err := s.r.Region(status, records)
	if err != nil {
		s.Err = err
		return
	}
	s.HTML, s.Err = html, nil
}
