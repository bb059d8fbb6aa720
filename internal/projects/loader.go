package projects

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
)

// MaxProjects bounds how many records are ever rendered.
const MaxProjects = 6

const (
	loadingMessage = "Fetching projects from GitHub…"
	emptyMessage   = "No public repositories found for %s. Showing featured work."
	liveMessage    = "Showing top %d repositories for @%s."
	failureMessage = "Using curated highlights while we reconnect to GitHub. (%s)"
)

// Source records which path produced a Result.
type Source string

const (
	SourceLoading       Source = "loading"
	SourceLive          Source = "live"
	SourceFallbackEmpty Source = "fallback-empty"
	SourceFallbackError Source = "fallback-error"
)

// Status is the human-readable note shown above the project list.
// AccountURL is set only for live results, which link to the account.
type Status struct {
	Source     Source
	Message    string
	Handle     string
	Count      int
	AccountURL string
}

// LoadingStatus is the note shown before the request settles.
func LoadingStatus(handle string) Status {
	return Status{Source: SourceLoading, Message: loadingMessage, Handle: handle}
}

// Sink receives the loader's output. Loading is called once before the
// request; Commit is called exactly once with the final status and list.
type Sink interface {
	Loading(status Status)
	Commit(status Status, records []Record)
}

// Result is what a load settled on.
type Result struct {
	Projects []Record
	Status   Status
	Err      error
}

// Loader fetches an account's repositories and curates them, using the
// fallback list when the fetch fails or yields nothing.
type Loader struct {
	client     Client
	fallback   []Record
	accountURL func(handle string) string
	logger     *slog.Logger
}

// NewLoader creates a Loader. accountURL builds the link for the live
// status; fallback is copied.
func NewLoader(client Client, fallback []Record, accountURL func(string) string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		client:     client,
		fallback:   cloneRecords(fallback),
		accountURL: accountURL,
		logger:     logger,
	}
}

// Fallback returns a copy of the curated list.
func (l *Loader) Fallback() []Record {
	return cloneRecords(l.fallback)
}

// Load runs one fetch for handle and reports to sink. It never fails:
// every error resolves to the fallback list plus a status naming it.
// sink may be nil.
func (l *Loader) Load(ctx context.Context, handle string, sink Sink) Result {
	if sink == nil {
		sink = discardSink{}
	}
	sink.Loading(LoadingStatus(handle))

	res := l.load(ctx, handle)
	sink.Commit(res.Status, cloneRecords(res.Projects))
	return res
}

func (l *Loader) load(ctx context.Context, handle string) Result {
	repos, err := l.client.ListRepos(ctx, handle)
	if err != nil {
		l.logger.WarnContext(ctx, "loading repositories failed, using curated list",
			"handle", handle, "error", err)
		return Result{
			Projects: l.Fallback(),
			Status: Status{
				Source:  SourceFallbackError,
				Message: fmt.Sprintf(failureMessage, err.Error()),
				Handle:  handle,
				Count:   len(l.fallback),
			},
			Err: err,
		}
	}

	curated := Curate(repos)
	if len(curated) == 0 {
		l.logger.InfoContext(ctx, "no public repositories, using curated list", "handle", handle)
		return Result{
			Projects: l.Fallback(),
			Status: Status{
				Source:  SourceFallbackEmpty,
				Message: fmt.Sprintf(emptyMessage, handle),
				Handle:  handle,
				Count:   len(l.fallback),
			},
		}
	}

	status := Status{
		Source:  SourceLive,
		Message: fmt.Sprintf(liveMessage, len(curated), handle),
		Handle:  handle,
		Count:   len(curated),
	}
	if l.accountURL != nil {
		status.AccountURL = l.accountURL(handle)
	}
	return Result{Projects: curated, Status: status}
}

// Curate drops forks, orders by stars descending and keeps the first
// MaxProjects. Equal star counts keep their incoming order.
func Curate(repos []RemoteRepo) []Record {
	out := make([]Record, 0, len(repos))
	for _, r := range repos {
		if r.Fork {
			continue
		}
		out = append(out, FromRemote(r))
	}
	slices.SortStableFunc(out, func(a, b Record) int {
		return cmp.Compare(b.Stars, a.Stars)
	})
	if len(out) > MaxProjects {
		out = out[:MaxProjects]
	}
	return out
}

func cloneRecords(in []Record) []Record {
	out := make([]Record, len(in))
	for i, r := range in {
		r.Topics = cloneStrings(r.Topics)
		out[i] = r
	}
	return out
}

type discardSink struct{}

func (discardSink) Loading(Status) {}
func (discardSink) Commit(Status, []Record) {}
