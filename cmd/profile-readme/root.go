package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"profile-readme/internal/config"
	"profile-readme/internal/display"
	"profile-readme/internal/logging"
	"profile-readme/internal/profile"
)

// app carries state resolved once per invocation by the root command.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
	logger     *zap.Logger
	out        io.Writer
}

func newRootCommand(out io.Writer) *cobra.Command {
	a := &app{v: config.New(), logger: zap.NewNop(), out: out}

	rootCmd := &cobra.Command{
		Use:   "profile-readme",
		Short: "Generate a GitHub profile README from a profile file",
		Long: `profile-readme keeps your developer profile in a JSON or YAML file and turns
it into a GitHub profile README in one of several templates.

  profile-readme init                      # write a sample profile
  profile-readme set --name "Ada" --github ada --add-skill Go
  profile-readme fetch ada                 # merge public GitHub data
  profile-readme generate -t developer -o README.md
  profile-readme preview                   # HTML preview of the README

Set GITHUB_TOKEN to raise the GitHub API rate limit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default is $HOME/.profile-readme/config.yaml)")
	flags.String("token", "", "GitHub personal access token (overrides GITHUB_TOKEN)")
	flags.StringP("template", "t", "", "README template: modern, minimal, creative, developer, professional, elegant")
	flags.StringP("profile", "p", "", "profile file, .json or .yaml (default is $HOME/.profile-readme/profile.json)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-file", "", "write logs to this file instead of stderr")
	flags.Bool("no-cache", false, "disable the GitHub response cache")
	flags.Duration("cache-ttl", 0, "how long GitHub responses are cached")
	flags.String("api-url", "", "GitHub API root, for GitHub Enterprise")

	for key, name := range map[string]string{
		config.KeyToken:       "token",
		config.KeyTemplate:    "template",
		config.KeyProfilePath: "profile",
		config.KeyLogLevel:    "log-level",
		config.KeyLogFile:     "log-file",
		config.KeyNoCache:     "no-cache",
		config.KeyCacheTTL:    "cache-ttl",
		config.KeyAPIURL:      "api-url",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(name))
	}

	rootCmd.AddCommand(
		newInitCommand(a),
		newSetCommand(a),
		newAddCommand(a),
		newGenerateCommand(a),
		newPreviewCommand(a),
		newFetchCommand(a),
		newTemplatesCommand(a),
		newConfigCommand(a),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if f := cmd.Flags().Lookup("output"); f != nil && cmd.Annotations["bindOutput"] == "true" {
		_ = a.v.BindPFlag(config.KeyOutput, f)
	}

	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	a.cfg = cfg

	logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.logger = logger.With(zap.String("command", cmd.Name()))
	a.logger.Debug("configuration loaded",
		zap.String("file", cfg.File),
		zap.String("profile", cfg.ProfilePath),
		zap.String("template", cfg.Template),
		zap.Bool("authenticated", cfg.Authenticated()))
	return nil
}

func (a *app) store() *profile.Store {
	return profile.NewStore(a.cfg.ProfilePath)
}

// loadProfile returns the stored profile, or the sample profile when none
// has been saved yet.
func (a *app) loadProfile() (profile.ProfileData, error) {
	p, err := a.store().Load()
	if errors.Is(err, profile.ErrNotFound) {
		display.DisplayWarning(fmt.Sprintf("No profile at %s, using the sample profile (run 'profile-readme init')", a.cfg.ProfilePath))
		return profile.Default(), nil
	}
	return p, err
}
