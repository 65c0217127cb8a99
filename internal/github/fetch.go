package github

import (
	"context"
	"sort"

	gh "github.com/google/go-github/v81/github"
	"go.uber.org/zap"

	"profile-readme/internal/profile"
)

// FetchProfile loads a user's public GitHub data and merges it over existing.
// existing is never modified; on error it is returned unchanged alongside a
// categorized *Error. A failed repository listing does not fail the call:
// totals and languages then come from the simulator instead.
func (c *Client) FetchProfile(ctx context.Context, username string, existing profile.ProfileData) (profile.ProfileData, error) {
	username = profile.Handle(username)
	if username == "" {
		return existing, newAPIError("", "a GitHub username is required", 0, nil)
	}

	log := c.logger.With(zap.String("username", username))
	log.Info("fetching GitHub profile")

	user, err := c.GetUser(ctx, username)
	if err != nil {
		log.Warn("user lookup failed", zap.Error(err))
		return existing, err
	}

	next := existing.Clone()
	mergeUser(&next, user, username)

	repos, err := c.GetRepositories(ctx, username)
	if err != nil {
		log.Warn("repository listing failed, using placeholder stats", zap.Error(err))
		stats := c.sim.RepoStats(next.PublicRepos)
		next.TotalStars = stats.TotalStars
		next.TotalForks = stats.TotalForks
		next.Languages = stats.Languages
		next.Simulated.RepoStats = true
	} else {
		applyRepos(&next, repos)
		next.Simulated.RepoStats = false
	}

	act := c.sim.Activity()
	next.TotalContributions = act.TotalContributions
	next.CurrentStreak = act.CurrentStreak
	next.LongestStreak = act.LongestStreak
	next.ProfileViews = act.ProfileViews
	next.Simulated.Streaks = true
	next.Simulated.ProfileViews = true

	next.GitHubDataFetched = true
	log.Info("fetched GitHub profile",
		zap.Int("repositories", len(next.Repositories)),
		zap.Int("stars", next.TotalStars),
		zap.Bool("simulatedRepoStats", next.Simulated.RepoStats))
	return next, nil
}

// mergeUser prefers GitHub's value for each identity field and keeps the
// existing one when GitHub has none.
func mergeUser(p *profile.ProfileData, user *gh.User, username string) {
	prefer := func(dst *string, src *string) {
		if src != nil && *src != "" {
			*dst = *src
		}
	}
	prefer(&p.Name, user.Name)
	prefer(&p.AvatarURL, user.AvatarURL)
	prefer(&p.Location, user.Location)
	prefer(&p.Company, user.Company)
	prefer(&p.Website, user.Blog)
	prefer(&p.About, user.Bio)

	if p.Twitter == "" {
		prefer(&p.Twitter, user.TwitterUsername)
	}

	p.GitHub = username
	if login := user.GetLogin(); login != "" {
		p.GitHub = login
	}
	p.PublicRepos = user.GetPublicRepos()
	p.Followers = user.GetFollowers()
	p.Following = user.GetFollowing()
}

func applyRepos(p *profile.ProfileData, repos []*gh.Repository) {
	p.TotalStars = 0
	p.TotalForks = 0
	counts := make(map[string]int)
	out := make([]profile.Repository, 0, len(repos))

	for _, r := range repos {
		if r == nil {
			continue
		}
		p.TotalStars += r.GetStargazersCount()
		p.TotalForks += r.GetForksCount()

		lang := r.GetLanguage()
		if lang != "" {
			counts[lang]++
		}
		repo := profile.Repository{
			Name:        r.GetName(),
			Description: r.GetDescription(),
			URL:         r.GetHTMLURL(),
			Stars:       r.GetStargazersCount(),
			Forks:       r.GetForksCount(),
			Language:    lang,
		}
		if lang != "" {
			repo.LanguageColor = languageColor(lang)
		}
		out = append(out, repo)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Stars > out[j].Stars
	})
	if len(out) > RepoLimit {
		out = out[:RepoLimit]
	}

	p.Repositories = out
	p.Languages = shares(counts)
}
