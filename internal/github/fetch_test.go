package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profile-readme/internal/cache"
	"profile-readme/internal/profile"
)

type fixedSimulator struct{}

func (fixedSimulator) Activity() Activity {
	return Activity{TotalContributions: 1234, CurrentStreak: 5, LongestStreak: 40, ProfileViews: 777}
}

func (fixedSimulator) RepoStats(int) RepoStats {
	return RepoStats{TotalStars: 11, TotalForks: 2, Languages: profile.Languages{{Name: "Go", Percent: 100}}}
}

const userJSON = `{
	"login": "octocat",
	"name": "The Octocat",
	"bio": "Mascot",
	"blog": "",
	"location": null,
	"company": "@github",
	"avatar_url": "https://avatars.example/octocat",
	"public_repos": 8,
	"followers": 100,
	"following": 9,
	"twitter_username": "octo"
}`

const reposJSON = `[
	{"name": "small", "html_url": "https://github.com/octocat/small", "stargazers_count": 1, "forks_count": 0, "language": "Rust"},
	{"name": "big", "description": "Big one", "html_url": "https://github.com/octocat/big", "stargazers_count": 50, "forks_count": 4, "language": "Go"},
	{"name": "mid", "html_url": "https://github.com/octocat/mid", "stargazers_count": 5, "forks_count": 1, "language": "Go"},
	{"name": "docs", "html_url": "https://github.com/octocat/docs", "stargazers_count": 0, "forks_count": 0, "language": null}
]`

type fakeGitHub struct {
	userStatus  int
	reposStatus int
	headers     map[string]string
	requests    atomic.Int32
}

func (f *fakeGitHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.requests.Add(1)
	for k, v := range f.headers {
		w.Header().Set(k, v)
	}
	w.Header().Set("Content-Type", "application/json")

	switch r.URL.Path {
	case "/users/octocat":
		if f.userStatus != 0 && f.userStatus != http.StatusOK {
			w.WriteHeader(f.userStatus)
			_, _ = fmt.Fprint(w, `{"message": "nope"}`)
			return
		}
		_, _ = fmt.Fprint(w, userJSON)
	case "/users/octocat/repos":
		if r.URL.Query().Get("per_page") != strconv.Itoa(RepoLimit) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if f.reposStatus != 0 && f.reposStatus != http.StatusOK {
			w.WriteHeader(f.reposStatus)
			_, _ = fmt.Fprint(w, `{"message": "boom"}`)
			return
		}
		_, _ = fmt.Fprint(w, reposJSON)
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = fmt.Fprint(w, `{"message": "Not Found"}`)
	}
}

func newTestClient(t *testing.T, f *fakeGitHub, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	opts = append([]Option{WithBaseURL(srv.URL), WithSimulator(fixedSimulator{})}, opts...)
	c, err := NewClient(context.Background(), "", opts...)
	require.NoError(t, err)
	return c
}

func existingProfile() profile.ProfileData {
	return profile.ProfileData{
		Name:     "Old Name",
		Location: "Old Town",
		Website:  "https://old.example",
		About:    "Old bio",
		Skills:   []string{"Go"},
		Colors:   profile.Colors{Primary: "#5847eb"},
	}
}

func TestFetchProfileMergesUserAndRepos(t *testing.T) {
	c := newTestClient(t, &fakeGitHub{})
	existing := existingProfile()
	before := existing.Clone()

	got, err := c.FetchProfile(context.Background(), "octocat", existing)
	require.NoError(t, err)
	assert.Equal(t, before, existing)

	assert.Equal(t, "The Octocat", got.Name)
	assert.Equal(t, "Mascot", got.About)
	assert.Equal(t, "@github", got.Company)
	assert.Equal(t, "https://avatars.example/octocat", got.AvatarURL)
	assert.Equal(t, "Old Town", got.Location, "null location keeps existing value")
	assert.Equal(t, "https://old.example", got.Website, "empty blog keeps existing value")
	assert.Equal(t, "octocat", got.GitHub)
	assert.Equal(t, "octo", got.Twitter)
	assert.Equal(t, []string{"Go"}, got.Skills)

	assert.Equal(t, 8, got.PublicRepos)
	assert.Equal(t, 100, got.Followers)
	assert.Equal(t, 9, got.Following)
	assert.Equal(t, 56, got.TotalStars)
	assert.Equal(t, 5, got.TotalForks)

	require.Len(t, got.Repositories, 4)
	assert.Equal(t, "big", got.Repositories[0].Name)
	assert.Equal(t, "Big one", got.Repositories[0].Description)
	assert.Equal(t, "https://github.com/octocat/big", got.Repositories[0].URL)
	assert.Equal(t, "#00ADD8", got.Repositories[0].LanguageColor)
	assert.Equal(t, "", got.Repositories[3].LanguageColor)

	assert.Equal(t, profile.Languages{{Name: "Go", Percent: 67}, {Name: "Rust", Percent: 33}}, got.Languages)

	assert.Equal(t, 1234, got.TotalContributions)
	assert.Equal(t, 5, got.CurrentStreak)
	assert.Equal(t, 40, got.LongestStreak)
	assert.Equal(t, 777, got.ProfileViews)
	assert.Equal(t, profile.Simulated{Streaks: true, ProfileViews: true}, got.Simulated)
	assert.True(t, got.GitHubDataFetched)
}

func TestFetchProfileKeepsExistingTwitter(t *testing.T) {
	c := newTestClient(t, &fakeGitHub{})
	existing := existingProfile()
	existing.Twitter = "mine"

	got, err := c.FetchProfile(context.Background(), "https://github.com/octocat", existing)
	require.NoError(t, err)
	assert.Equal(t, "mine", got.Twitter)
}

func TestFetchProfileErrors(t *testing.T) {
	tests := []struct {
		name    string
		fake    *fakeGitHub
		user    string
		target  error
		kind    Kind
		message string
	}{
		{
			name:    "not found",
			fake:    &fakeGitHub{},
			user:    "this-user-does-not-exist-xyz",
			target:  ErrNotFound,
			kind:    KindNotFound,
			message: "this-user-does-not-exist-xyz",
		},
		{
			name:   "forbidden",
			fake:   &fakeGitHub{userStatus: http.StatusForbidden},
			user:   "octocat",
			target: ErrRateLimited,
			kind:   KindRateLimit,
		},
		{
			name: "rate limit headers",
			fake: &fakeGitHub{userStatus: http.StatusForbidden, headers: map[string]string{
				"X-RateLimit-Limit":     "60",
				"X-RateLimit-Remaining": "0",
				"X-RateLimit-Reset":     strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10),
			}},
			user:   "octocat",
			target: ErrRateLimited,
			kind:   KindRateLimit,
		},
		{
			name:   "server error",
			fake:   &fakeGitHub{userStatus: http.StatusInternalServerError},
			user:   "octocat",
			target: ErrAPI,
			kind:   KindAPI,
		},
		{
			name:   "empty username",
			fake:   &fakeGitHub{},
			user:   "  ",
			target: ErrAPI,
			kind:   KindAPI,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.fake)
			existing := existingProfile()

			got, err := c.FetchProfile(context.Background(), tt.user, existing)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), err.Error())
			assert.Equal(t, existing, got)
			assert.False(t, got.GitHubDataFetched)

			var ghErr *Error
			require.True(t, errors.As(err, &ghErr))
			assert.Equal(t, tt.kind, ghErr.Kind)
			if tt.message != "" {
				assert.Contains(t, err.Error(), tt.message)
			}
		})
	}
}

func TestFetchProfileRepoFailureUsesPlaceholders(t *testing.T) {
	c := newTestClient(t, &fakeGitHub{reposStatus: http.StatusInternalServerError})
	existing := existingProfile()
	existing.Repositories = []profile.Repository{{Name: "kept"}}

	got, err := c.FetchProfile(context.Background(), "octocat", existing)
	require.NoError(t, err)
	assert.True(t, got.GitHubDataFetched)
	assert.True(t, got.Simulated.RepoStats)
	assert.Equal(t, 11, got.TotalStars)
	assert.Equal(t, 2, got.TotalForks)
	assert.Equal(t, profile.Languages{{Name: "Go", Percent: 100}}, got.Languages)
	assert.Equal(t, []profile.Repository{{Name: "kept"}}, got.Repositories)
	assert.Equal(t, "The Octocat", got.Name)
}

func TestFetchProfileUsesCache(t *testing.T) {
	fake := &fakeGitHub{}
	c := newTestClient(t, fake, WithCache(cache.New(true, time.Minute)))

	_, err := c.FetchProfile(context.Background(), "octocat", profile.ProfileData{})
	require.NoError(t, err)
	first := fake.requests.Load()

	_, err = c.FetchProfile(context.Background(), "OctoCat", profile.ProfileData{})
	require.NoError(t, err)
	assert.Equal(t, first, fake.requests.Load())
}

func TestNewClientTimesOutRequests(t *testing.T) {
	for _, token := range []string{"", "secret"} {
		c, err := NewClient(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, requestTimeout, c.client.Client().Timeout, "token=%q", token)
	}
}

func TestAuthenticatedClientSendsToken(t *testing.T) {
	var auth atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth.Store(r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, userJSON)
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(context.Background(), "secret", WithBaseURL(srv.URL), WithSimulator(fixedSimulator{}))
	require.NoError(t, err)
	_, err = c.GetUser(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret", auth.Load())
}

func TestShares(t *testing.T) {
	assert.Nil(t, shares(nil))
	assert.Equal(t, profile.Languages{{Name: "A", Percent: 34}, {Name: "B", Percent: 33}, {Name: "C", Percent: 33}},
		shares(map[string]int{"A": 1, "B": 1, "C": 1}))

	langs := shares(map[string]int{"Go": 7, "Rust": 2, "C": 1, "Zig": 3})
	total := 0
	for _, l := range langs {
		total += l.Percent
	}
	assert.Equal(t, 100, total)
	assert.Equal(t, "Go", langs[0].Name)
}

func TestRandomSimulatorRanges(t *testing.T) {
	sim := NewRandomSimulator(1)
	for i := 0; i < 50; i++ {
		a := sim.Activity()
		assert.GreaterOrEqual(t, a.LongestStreak, a.CurrentStreak)
		assert.GreaterOrEqual(t, a.TotalContributions, 200)
		assert.LessOrEqual(t, a.TotalContributions, 2000)

		r := sim.RepoStats(3)
		assert.LessOrEqual(t, r.TotalStars, 40)
		assert.NotEmpty(t, r.Languages)
	}
}
