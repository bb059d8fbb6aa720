package projects

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client lists the public repositories of an account.
type Client interface {
	ListRepos(ctx context.Context, handle string) ([]RemoteRepo, error)
}

// GitHubClient talks to the GitHub REST API.
type GitHubClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewGitHubClient creates a client for the API at baseURL. Requests are
// traced through otelhttp and use the transport's default timeouts.
func NewGitHubClient(baseURL string) *GitHubClient {
	return &GitHubClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// ListRepos issues exactly one GET /users/{handle}/repos request. No
// retries are attempted.
func (c *GitHubClient) ListRepos(ctx context.Context, handle string) ([]RemoteRepo, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=100&sort=updated", c.baseURL, url.PathEscape(handle))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{Status: resp.StatusCode}
	}

	var decoded []*RemoteRepo
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &ParseError{Err: err}
	}
	if decoded == nil {
		return nil, &ParseError{Err: errors.New("response body is not a list")}
	}

	repos := make([]RemoteRepo, len(decoded))
	for i, r := range decoded {
		if r == nil {
			return nil, &ParseError{Err: fmt.Errorf("repository %d is null", i)}
		}
		repos[i] = *r
	}
	return repos, nil
}
