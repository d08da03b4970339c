package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/BloggingApp/profile-service/internal/config"
	"github.com/BloggingApp/profile-service/internal/model"
	"golang.org/x/time/rate"
)

const (
	apiVersion = "2022-11-28"
	// maxBodyBytes caps how much of an upstream response is read into memory.
	maxBodyBytes = 1 << 20
)

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client looks up public user profiles on the GitHub REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient HTTPClient
	limiter    *rate.Limiter
	timeout    time.Duration
}

func NewClient(cfg config.GitHubConfig, httpClient HTTPClient) *Client {
	baseURL := strings.TrimRight(cfg.APIURL, "/")
	if baseURL == "" {
		baseURL = config.DefaultGitHubAPI
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), cfg.RequestsPerMinute)
	}

	return &Client{
		baseURL:    baseURL,
		token:      cfg.Token,
		httpClient: httpClient,
		limiter:    limiter,
		timeout:    cfg.Timeout,
	}
}

// FetchProfile issues a single GET /users/{username} and maps the payload to a ProfileRecord.
func (c *Client) FetchProfile(ctx context.Context, username string) (*model.ProfileRecord, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(username))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrUserNotFound
	case isRateLimited(resp):
		return nil, ErrRateLimited
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	return decodeProfile(body)
}

// wait blocks on the outbound limiter for at most the client timeout. A wait that
// cannot finish in time is reported as ErrRateLimited.
func (c *Client) wait(ctx context.Context) error {
	waitCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if err := c.limiter.Wait(waitCtx); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("rate limiter: %w", ctx.Err())
		}
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	}
	return nil
}

func isRateLimited(resp *http.Response) bool {
	if resp.StatusCode == http.StatusTooManyRequests {
		return true
	}
	return resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0"
}

// requiredFields must all be present in the payload; nullable ones may hold null.
var requiredFields = []string{
	"name",
	"blog",
	"public_gists",
	"public_repos",
	"avatar_url",
	"followers",
	"following",
	"location",
}

type githubUser struct {
	Name        *string `json:"name"`
	Blog        *string `json:"blog"`
	PublicGists *int    `json:"public_gists"`
	PublicRepos *int    `json:"public_repos"`
	AvatarURL   *string `json:"avatar_url"`
	Followers   *int    `json:"followers"`
	Following   *int    `json:"following"`
	Location    *string `json:"location"`
}

func decodeProfile(body []byte) (*model.ProfileRecord, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncompleteProfile, err)
	}

	for _, field := range requiredFields {
		if _, ok := fields[field]; !ok {
			return nil, fmt.Errorf("%w: missing field %q", ErrIncompleteProfile, field)
		}
	}

	var user githubUser
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncompleteProfile, err)
	}

	if user.AvatarURL == nil || user.PublicGists == nil || user.PublicRepos == nil || user.Followers == nil || user.Following == nil {
		return nil, fmt.Errorf("%w: null in non-nullable field", ErrIncompleteProfile)
	}

	return &model.ProfileRecord{
		Name:        user.Name,
		Blog:        user.Blog,
		PublicGists: *user.PublicGists,
		PublicRepos: *user.PublicRepos,
		AvatarURL:   *user.AvatarURL,
		Followers:   *user.Followers,
		Following:   *user.Following,
		Location:    user.Location,
	}, nil
}
