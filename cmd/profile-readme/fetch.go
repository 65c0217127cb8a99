package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"profile-readme/internal/cache"
	"profile-readme/internal/display"
	"profile-readme/internal/github"
	"profile-readme/internal/profile"
)

func (a *app) githubClient(ctx context.Context) (*github.Client, error) {
	opts := []github.Option{
		github.WithCache(cache.New(!a.cfg.NoCache, a.cfg.CacheTTL)),
		github.WithLogger(a.logger.Named("github")),
	}
	if a.cfg.APIURL != "" {
		opts = append(opts, github.WithBaseURL(a.cfg.APIURL))
	}
	return github.NewClient(ctx, a.cfg.Token, opts...)
}

func newFetchCommand(a *app) *cobra.Command {
	var (
		format string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "fetch [username]",
		Short: "Merge public GitHub data into the stored profile",
		Long: `Fetch a user's public GitHub profile and top repositories and merge them into
the stored profile. The username defaults to the profile's GitHub handle.

Contribution streaks and profile views are not available from the GitHub API
and are filled with simulated values, which are marked as such.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			existing, err := a.loadProfile()
			if err != nil {
				return err
			}
			username := existing.GitHub
			if len(args) == 1 {
				username = args[0]
			}
			if profile.Handle(username) == "" {
				return errors.New("no GitHub username given and the profile has none")
			}

			formatter, err := display.NewFormatter(a.out, format)
			if err != nil {
				return err
			}

			client, err := a.githubClient(ctx)
			if err != nil {
				return err
			}

			if !a.cfg.Authenticated() {
				display.DisplayWarning("No GitHub token set; unauthenticated requests are limited to 60 per hour")
			}
			if err := checkRateLimit(ctx, client); err != nil {
				display.DisplayWarning(fmt.Sprintf("Rate limit check failed: %v", err))
			}

			display.DisplayProgress("Fetching GitHub data for " + profile.Handle(username))

			s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(display.StatusOutput))
			s.Suffix = " Loading profile and repositories..."
			s.Start()
			next, err := client.FetchProfile(ctx, username, existing)
			s.Stop()

			if err != nil {
				var ghErr *github.Error
				if errors.As(err, &ghErr) {
					a.logger.Warn("fetch failed", zap.String("kind", string(ghErr.Kind)), zap.Int("status", ghErr.StatusCode))
				}
				return fmt.Errorf("failed to fetch GitHub data: %w", err)
			}
			display.DisplaySuccess("GitHub data fetched")

			if next.Simulated.Any() {
				display.DisplayWarning(simulatedNote(next.Simulated))
			}

			if !dryRun {
				if err := a.store().Save(next); err != nil {
					return err
				}
				display.DisplaySuccess(fmt.Sprintf("Profile saved to %s", a.cfg.ProfilePath))
			}
			return formatter.Profile(next)
		},
	}

	cmd.Flags().StringVar(&format, "format", display.FormatTable, "summary format: table, json")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show the merged profile without saving it")
	return cmd
}

func simulatedNote(s profile.Simulated) string {
	var parts []string
	if s.Streaks {
		parts = append(parts, "contributions and streaks")
	}
	if s.ProfileViews {
		parts = append(parts, "profile views")
	}
	if s.RepoStats {
		parts = append(parts, "stars, forks and languages")
	}
	return "Simulated values (not from GitHub): " + strings.Join(parts, "; ")
}

func checkRateLimit(ctx context.Context, client *github.Client) error {
	limits, err := client.CheckRateLimit(ctx)
	if err != nil {
		return err
	}

	if limits.Core != nil {
		remaining := limits.Core.Remaining
		limit := limits.Core.Limit
		reset := limits.Core.Reset.Time

		if remaining < 10 {
			display.DisplayWarning(fmt.Sprintf(
				"API Rate Limit: %d/%d remaining (resets at %s)",
				remaining, limit, reset.Format("15:04:05"),
			))
		} else {
			display.DisplaySuccess(fmt.Sprintf(
				"API Rate Limit: %d/%d remaining",
				remaining, limit,
			))
		}
	}

	return nil
}
