// Package profile holds the static display data for the portfolio page.
package profile

import "strings"

// Profile identifies the site owner.
type Profile struct {
	Name      string
	Headline  string
	Subtitle  string
	GitHub    string
	Strengths []string
}

// Title is the document title shown in the browser tab.
func (p Profile) Title() string {
	return p.Name + " | " + p.Headline
}

// AccountURL links to the owner's account on the given web host.
func (p Profile) AccountURL(webBase string) string {
	return strings.TrimRight(webBase, "/") + "/" + p.GitHub
}

type SkillGroup struct {
	Title string
	Items []string
}

// TimelineEntry is one position in the experience list. Period is a
// display string, not a parsed range.
type TimelineEntry struct {
	Role         string
	Organization string
	Period       string
	Summary      string
	Tags         []string
}

// Project is a hand-curated showcase entry shown when live repository
// data is unavailable.
type Project struct {
	Name        string
	Description string
	Topics      []string
	Stars       int
	Forks       int
	URL         string
	Homepage    string
}

// Store is the immutable set of page data. It is built once at startup
// and handed to whoever renders; accessors return copies.
type Store struct {
	profile  Profile
	skills   []SkillGroup
	timeline []TimelineEntry
	featured []Project
}

// New builds a Store from the given data, copying every slice.
func New(p Profile, skills []SkillGroup, timeline []TimelineEntry, featured []Project) Store {
	s := Store{
		profile:  cloneProfile(p),
		skills:   make([]SkillGroup, len(skills)),
		timeline: make([]TimelineEntry, len(timeline)),
		featured: make([]Project, len(featured)),
	}
	for i, g := range skills {
		s.skills[i] = SkillGroup{Title: g.Title, Items: cloneStrings(g.Items)}
	}
	for i, e := range timeline {
		e.Tags = cloneStrings(e.Tags)
		s.timeline[i] = e
	}
	for i, p := range featured {
		p.Topics = cloneStrings(p.Topics)
		s.featured[i] = p
	}
	return s
}

// WithHandle returns a copy of the store whose profile points at a
// different account. An empty handle leaves the store unchanged.
func (s Store) WithHandle(handle string) Store {
	if handle == "" {
		return s
	}
	p := cloneProfile(s.profile)
	p.GitHub = handle
	return New(p, s.skills, s.timeline, s.featured)
}

func (s Store) Profile() Profile { return cloneProfile(s.profile) }

func (s Store) SkillGroups() []SkillGroup {
	out := make([]SkillGroup, len(s.skills))
	for i, g := range s.skills {
		out[i] = SkillGroup{Title: g.Title, Items: cloneStrings(g.Items)}
	}
	return out
}

func (s Store) Timeline() []TimelineEntry {
	out := make([]TimelineEntry, len(s.timeline))
	for i, e := range s.timeline {
		e.Tags = cloneStrings(e.Tags)
		out[i] = e
	}
	return out
}

// FeaturedProjects returns the fallback project list in display order.
func (s Store) FeaturedProjects() []Project {
	out := make([]Project, len(s.featured))
	for i, p := range s.featured {
		p.Topics = cloneStrings(p.Topics)
		out[i] = p
	}
	return out
}

func cloneProfile(p Profile) Profile {
	p.Strengths = cloneStrings(p.Strengths)
	return p
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
