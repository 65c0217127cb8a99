package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v81/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"profile-readme/internal/cache"
)

// RepoLimit is how many repositories a fetch asks for.
const RepoLimit = 6

type Client struct {
	client *gh.Client
	cache  *cache.Cache
	logger *zap.Logger
	sim    Simulator
}

type Option func(*Client) error

// WithBaseURL points the client at a different API root, such as a GitHub
// Enterprise host or a test server.
func WithBaseURL(raw string) Option {
	return func(c *Client) error {
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid base URL %q: %w", raw, err)
		}
		c.client.BaseURL = u
		return nil
	}
}

func WithCache(cc *cache.Cache) Option {
	return func(c *Client) error {
		c.cache = cc
		return nil
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) error {
		if l != nil {
			c.logger = l
		}
		return nil
	}
}

func WithSimulator(s Simulator) Option {
	return func(c *Client) error {
		if s != nil {
			c.sim = s
		}
		return nil
	}
}

const requestTimeout = 30 * time.Second

// NewClient creates an adapter. An empty token makes unauthenticated requests,
// which GitHub limits to 60 per hour.
func NewClient(ctx context.Context, token string, opts ...Option) (*Client, error) {
	httpClient := &http.Client{Timeout: requestTimeout}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(ctx, ts)
		httpClient.Timeout = requestTimeout
	}

	c := &Client{
		client: gh.NewClient(httpClient),
		logger: zap.NewNop(),
		sim:    NewRandomSimulator(uint64(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Client) GetUser(ctx context.Context, username string) (*gh.User, error) {
	key := cache.Key("user", username)
	if v, ok := c.cache.Get(key); ok {
		c.logger.Debug("user cache hit", zap.String("username", username))
		return v.(*gh.User), nil
	}

	user, resp, err := c.client.Users.Get(ctx, username)
	if err != nil {
		return nil, classify(username, "get user", resp, err)
	}
	c.cache.SetDefault(key, user)
	return user, nil
}

// GetRepositories lists the user's top repositories. GitHub does not sort
// user repositories by stars server-side, so callers sort the result.
func (c *Client) GetRepositories(ctx context.Context, username string) ([]*gh.Repository, error) {
	key := cache.Key("repos", username)
	if v, ok := c.cache.Get(key); ok {
		c.logger.Debug("repository cache hit", zap.String("username", username))
		return v.([]*gh.Repository), nil
	}

	opts := &gh.RepositoryListByUserOptions{
		Sort:        "stars",
		ListOptions: gh.ListOptions{PerPage: RepoLimit},
	}
	repos, resp, err := c.client.Repositories.ListByUser(ctx, username, opts)
	if err != nil {
		return nil, classify(username, "list repositories", resp, err)
	}
	c.cache.SetDefault(key, repos)
	return repos, nil
}

func (c *Client) CheckRateLimit(ctx context.Context) (*gh.RateLimits, error) {
	limits, resp, err := c.client.RateLimit.Get(ctx)
	if err != nil {
		return nil, classify("", "check rate limit", resp, err)
	}
	return limits, nil
}
