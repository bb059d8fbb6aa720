// Package projects loads the repositories shown on the portfolio page,
// falling back to the curated list whenever live data is unavailable.
package projects

import "github.com/Zachkp/portfolio/internal/profile"

// DefaultDescription stands in for a missing repository description.
const DefaultDescription = "A project from my GitHub showcase."

// Record is the single shape the renderer sees, whatever the source.
type Record struct {
	Name        string
	Description string
	Topics      []string
	Stars       int
	Forks       int
	Language    string
	URL         string
	Homepage    string
}

// RemoteRepo mirrors one element of GET /users/{handle}/repos.
type RemoteRepo struct {
	Name            string   `json:"name"`
	Description     *string  `json:"description"`
	Fork            bool     `json:"fork"`
	StargazersCount int      `json:"stargazers_count"`
	ForksCount      int      `json:"forks_count"`
	Language        *string  `json:"language"`
	HTMLURL         string   `json:"html_url"`
	Homepage        *string  `json:"homepage"`
	Topics          []string `json:"topics"`
}

// FromRemote normalizes an API repository.
func FromRemote(r RemoteRepo) Record {
	return Record{
		Name:        r.Name,
		Description: withDefault(deref(r.Description)),
		Topics:      cloneStrings(r.Topics),
		Stars:       nonNegative(r.StargazersCount),
		Forks:       nonNegative(r.ForksCount),
		Language:    deref(r.Language),
		URL:         r.HTMLURL,
		Homepage:    deref(r.Homepage),
	}
}

// FromCurated normalizes a hand-curated project.
func FromCurated(p profile.Project) Record {
	return Record{
		Name:        p.Name,
		Description: withDefault(p.Description),
		Topics:      cloneStrings(p.Topics),
		Stars:       nonNegative(p.Stars),
		Forks:       nonNegative(p.Forks),
		URL:         p.URL,
		Homepage:    p.Homepage,
	}
}

// FromCuratedList normalizes a curated list, preserving order.
func FromCuratedList(list []profile.Project) []Record {
	out := make([]Record, len(list))
	for i, p := range list {
		out[i] = FromCurated(p)
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func withDefault(desc string) string {
	if desc == "" {
		return DefaultDescription
	}
	return desc
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
