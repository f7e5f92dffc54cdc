// Package github implements domain.IssueTracker over the GitHub REST API.
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	gh "github.com/google/go-github/v66/github"

	"github.com/runoshun/taskflow/internal/domain"
)

// Ensure Connector implements domain.TrackerConnector.
var _ domain.TrackerConnector = (*Connector)(nil)

// Ensure Client implements domain.IssueTracker.
var _ domain.IssueTracker = (*Client)(nil)

// Connector creates authenticated clients.
type Connector struct {
	httpClient *http.Client
	logger     *slog.Logger
	apiURL     string // Empty = api.github.com
}

// NewConnector creates a Connector. apiURL selects a GitHub Enterprise
// endpoint; empty uses the public API.
func NewConnector(apiURL string, logger *slog.Logger) *Connector {
	return &Connector{
		apiURL:     apiURL,
		httpClient: http.DefaultClient,
		logger:     logger,
	}
}

// WithHTTPClient replaces the HTTP client used for requests.
func (c *Connector) WithHTTPClient(hc *http.Client) *Connector {
	c.httpClient = hc
	return c
}

// Connect authenticates with token by fetching the token's user.
func (c *Connector) Connect(ctx context.Context, token string) (domain.IssueTracker, error) {
	if token == "" {
		return nil, domain.ErrEmptyToken
	}

	client := gh.NewClient(c.httpClient).WithAuthToken(token)
	if c.apiURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(c.apiURL, c.apiURL)
		if err != nil {
			return nil, fmt.Errorf("configure api url: %w", err)
		}
	}

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if c.logger != nil {
		c.logger.Debug("connected to github", "login", user.GetLogin())
	}

	return &Client{gh: client, login: user.GetLogin()}, nil
}

// Client is an authenticated GitHub client.
type Client struct {
	gh    *gh.Client
	login string
}

// Login returns the authenticated user's login.
func (c *Client) Login() string {
	return c.login
}

// VerifyRepository checks the repository exists and is visible to the token.
func (c *Client) VerifyRepository(ctx context.Context, owner, name string) error {
	if _, _, err := c.gh.Repositories.Get(ctx, owner, name); err != nil {
		return fmt.Errorf("get repository %s/%s: %w", owner, name, err)
	}
	return nil
}

// CreateIssue opens an issue and returns its number.
func (c *Client) CreateIssue(ctx context.Context, owner, name, title, body string) (int, error) {
	req := &gh.IssueRequest{Title: gh.String(title)}
	if body != "" {
		req.Body = gh.String(body)
	}
	issue, _, err := c.gh.Issues.Create(ctx, owner, name, req)
	if err != nil {
		return 0, fmt.Errorf("create issue in %s/%s: %w", owner, name, err)
	}
	return issue.GetNumber(), nil
}
