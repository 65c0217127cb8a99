package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profile-readme/internal/display"
	"profile-readme/internal/github"
	"profile-readme/internal/profile"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("PROFILE_README_TOKEN", "")
	t.Chdir(t.TempDir())

	color.NoColor = true
	prev := display.StatusOutput
	display.StatusOutput = io.Discard
	t.Cleanup(func() { display.StatusOutput = prev })

	return filepath.Join(home, "profile.json")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand(&out)
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func loadStored(t *testing.T, path string) profile.ProfileData {
	t.Helper()
	p, err := profile.NewStore(path).Load()
	require.NoError(t, err)
	return p
}

func TestInit(t *testing.T) {
	path := setupEnv(t)

	_, err := run(t, "init", "--profile", path)
	require.NoError(t, err)
	assert.Equal(t, profile.Default(), loadStored(t, path))

	_, err = run(t, "init", "--profile", path)
	assert.ErrorContains(t, err, "already exists")

	_, err = run(t, "init", "--profile", path, "--force")
	assert.NoError(t, err)
}

func TestSetThenGenerate(t *testing.T) {
	path := setupEnv(t)

	_, err := run(t, "set", "--profile", path,
		"--name", "Ada Lovelace",
		"--github", "https://github.com/ada/",
		"--add-skill", "Rust", "--add-skill", "rust",
		"--remove-skill", "Docker",
		"--primary", "FF6600",
		"--disable", "streak,topLangs",
		"--columns", "3")
	require.NoError(t, err)

	stored := loadStored(t, path)
	assert.Equal(t, "Ada Lovelace", stored.Name)
	assert.Equal(t, "ada", stored.GitHub)
	assert.Equal(t, "#ff6600", stored.Colors.Primary)
	assert.Equal(t, "Full Stack Developer", stored.Title, "untouched fields are kept")
	assert.Equal(t, 1, countFold(stored.Skills, "rust"))
	assert.Zero(t, countFold(stored.Skills, "docker"))
	assert.False(t, stored.Streak)
	assert.True(t, stored.Stats)
	assert.Equal(t, 3, stored.RepoSettings.GridColumns)

	out, err := run(t, "generate", "--profile", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Hi there, I'm Ada Lovelace 👋"))
	assert.Contains(t, out, "username=ada")
	assert.Contains(t, out, "ff6600")
	assert.NotContains(t, out, "streak-stats")
}

func countFold(items []string, want string) int {
	n := 0
	for _, s := range items {
		if strings.EqualFold(s, want) {
			n++
		}
	}
	return n
}

func TestSetRejectsBadInput(t *testing.T) {
	path := setupEnv(t)

	_, err := run(t, "set", "--profile", path, "--primary", "orange")
	assert.ErrorContains(t, err, "invalid color")

	_, err = run(t, "set", "--profile", path, "--enable", "sparkles")
	assert.ErrorContains(t, err, "unknown section flag")

	_, err = run(t, "set", "--profile", path, "--card-style", "huge")
	assert.ErrorContains(t, err, "invalid card style")

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "failed edits do not write the profile")
}

func TestGenerateToFileWithTemplate(t *testing.T) {
	path := setupEnv(t)
	readme := filepath.Join(t.TempDir(), "out", "README.md")

	out, err := run(t, "generate", "--profile", path, "-t", "developer", "-o", readme, "--disable", "stats")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(readme)
	require.NoError(t, err)
	assert.Contains(t, string(data), "interface Developer {")
	assert.Contains(t, string(data), "`Go`")
	assert.NotContains(t, string(data), "github-readme-stats.vercel.app/api?")
}

func TestGenerateUnknownTemplateFallsBack(t *testing.T) {
	path := setupEnv(t)

	out, err := run(t, "generate", "--profile", path, "--template", "retro")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Hi there, I'm Jane Developer"))
}

func TestGenerateTemplateFromEnv(t *testing.T) {
	path := setupEnv(t)
	t.Setenv("PROFILE_README_TEMPLATE", "elegant")

	out, err := run(t, "generate", "--profile", path)
	require.NoError(t, err)
	assert.Contains(t, out, "> *Full Stack Developer*")
}

func TestPreviewToStdout(t *testing.T) {
	path := setupEnv(t)

	out, err := run(t, "preview", "--profile", path, "-o", "-", "-t", "creative")
	require.NoError(t, err)
	assert.Contains(t, out, `data-section="header"`)
	assert.Contains(t, out, `data-section="stats"`)
	assert.Contains(t, out, "template-creative")
}

func TestPreviewToFile(t *testing.T) {
	path := setupEnv(t)

	_, err := run(t, "preview", "--profile", path)
	require.NoError(t, err)

	data, err := os.ReadFile("profile-preview.html")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Jane Developer")
}

func TestAddProject(t *testing.T) {
	path := setupEnv(t)
	_, err := run(t, "init", "--profile", path)
	require.NoError(t, err)

	_, err = run(t, "add", "project", "--profile", path, "--title", "Compiler", "--tech", "Go,LLVM")
	require.NoError(t, err)

	stored := loadStored(t, path)
	require.Len(t, stored.Projects, 3)
	assert.Equal(t, profile.Project{Title: "Compiler", Technologies: []string{"Go", "LLVM"}}, stored.Projects[2])
	assert.True(t, stored.ShowProjects)

	_, err = run(t, "add", "blog", "--profile", path, "--title", "No URL")
	assert.ErrorContains(t, err, "--url is required")
}

func TestTemplatesJSON(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "templates", "--format", "json", "-t", "minimal")
	require.NoError(t, err)

	var entries []struct {
		ID      string `json:"id"`
		Current bool   `json:"current"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 6)
	for _, e := range entries {
		assert.Equal(t, e.ID == "minimal", e.Current, e.ID)
	}
}

func TestConfigShowsMaskedToken(t *testing.T) {
	setupEnv(t)
	t.Setenv("GITHUB_TOKEN", "ghp_verysecret1234")

	out, err := run(t, "config")
	require.NoError(t, err)
	assert.NotContains(t, out, "verysecret")
	assert.Contains(t, out, "1234")
}

func TestInvalidLogLevel(t *testing.T) {
	setupEnv(t)
	_, err := run(t, "templates", "--log-level", "chatty")
	assert.ErrorContains(t, err, "invalid log level")
}

func fakeGitHubServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/rate_limit", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"resources": {"core": {"limit": 60, "remaining": 58, "reset": 1893456000}}}`)
	})
	mux.HandleFunc("/users/ada", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"login": "ada", "name": "Ada Lovelace", "bio": "First programmer", "public_repos": 2, "followers": 1843}`)
	})
	mux.HandleFunc("/users/ada/repos", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `[
			{"name": "notes", "html_url": "https://github.com/ada/notes", "stargazers_count": 3, "language": "Markdown"},
			{"name": "engine", "html_url": "https://github.com/ada/engine", "stargazers_count": 42, "forks_count": 7, "language": "Go"}
		]`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchMergesAndSaves(t *testing.T) {
	path := setupEnv(t)
	srv := fakeGitHubServer(t)
	_, err := run(t, "init", "--profile", path)
	require.NoError(t, err)

	out, err := run(t, "fetch", "ada", "--profile", path, "--api-url", srv.URL, "--format", "json")
	require.NoError(t, err)

	var shown profile.ProfileData
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, "Ada Lovelace", shown.Name)

	stored := loadStored(t, path)
	assert.True(t, stored.GitHubDataFetched)
	assert.Equal(t, "ada", stored.GitHub)
	assert.Equal(t, "First programmer", stored.About)
	assert.Equal(t, "Acme Corp", stored.Company, "fields GitHub omits are kept")
	assert.Equal(t, 1843, stored.Followers)
	assert.Equal(t, 45, stored.TotalStars)
	require.Len(t, stored.Repositories, 2)
	assert.Equal(t, "engine", stored.Repositories[0].Name)
	assert.True(t, stored.Simulated.Streaks)
	assert.False(t, stored.Simulated.RepoStats)

	page, err := run(t, "preview", "--profile", path, "-o", "-")
	require.NoError(t, err)
	assert.Contains(t, page, "1,843")
	assert.NotContains(t, page, "to load your statistics")
}

func TestFetchReportsProgress(t *testing.T) {
	path := setupEnv(t)
	srv := fakeGitHubServer(t)
	_, err := run(t, "init", "--profile", path)
	require.NoError(t, err)

	var status bytes.Buffer
	display.StatusOutput = &status

	_, err = run(t, "fetch", "ada", "--profile", path, "--api-url", srv.URL, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, status.String(), "⏳ Fetching GitHub data for ada...\n")
	assert.Contains(t, status.String(), "✓ GitHub data fetched\n")
}

func TestFetchDryRunDoesNotSave(t *testing.T) {
	path := setupEnv(t)
	srv := fakeGitHubServer(t)
	_, err := run(t, "init", "--profile", path)
	require.NoError(t, err)

	_, err = run(t, "fetch", "ada", "--profile", path, "--api-url", srv.URL, "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, profile.Default(), loadStored(t, path))
}

func TestFetchUnknownUserKeepsProfile(t *testing.T) {
	path := setupEnv(t)
	srv := fakeGitHubServer(t)
	_, err := run(t, "init", "--profile", path)
	require.NoError(t, err)

	_, err = run(t, "fetch", "nobody-here", "--profile", path, "--api-url", srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, github.ErrNotFound)
	assert.Contains(t, err.Error(), "nobody-here")
	assert.Equal(t, profile.Default(), loadStored(t, path))
}

func TestFetchNeedsUsername(t *testing.T) {
	path := setupEnv(t)
	_, err := run(t, "set", "--profile", path, "--github", "")
	require.NoError(t, err)

	_, err = run(t, "fetch", "--profile", path)
	assert.ErrorContains(t, err, "no GitHub username")
}
