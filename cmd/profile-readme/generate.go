package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"profile-readme/internal/display"
	"profile-readme/internal/markdown"
	"profile-readme/internal/profile"
)

// resolveTemplate warns about unknown ids before falling back.
func (a *app) resolveTemplate() *markdown.Template {
	t, ok := markdown.Lookup(a.cfg.Template)
	if !ok {
		t = markdown.ParseTemplate(a.cfg.Template)
		display.DisplayWarning(fmt.Sprintf("Unknown template %q, using %s", a.cfg.Template, t.ID))
	}
	return t
}

// profileForRender loads the profile and applies per-run section toggles.
func (a *app) profileForRender(enable, disable []string) (profile.ProfileData, error) {
	p, err := a.loadProfile()
	if err != nil {
		return profile.ProfileData{}, err
	}
	updates, err := flagUpdates(enable, disable)
	if err != nil {
		return profile.ProfileData{}, err
	}
	return p.Apply(updates...), nil
}

func writeFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func newGenerateCommand(a *app) *cobra.Command {
	var (
		enable, disable []string
		render, plain   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the README markdown",
		Long: `Generate the README for the stored profile. Markdown goes to stdout unless
--output names a file. --enable and --disable toggle sections for this run only.`,
		Example: `  profile-readme generate -t creative -o README.md
  profile-readme generate --disable stats,streak --render`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"bindOutput": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.profileForRender(enable, disable)
			if err != nil {
				return err
			}
			t := a.resolveTemplate()
			md := t.Render(p)
			a.logger.Info("generated README",
				zap.String("template", string(t.ID)),
				zap.Int("sections", len(p.Sections())),
				zap.Int("bytes", len(md)))

			if out := a.cfg.Output; out != "" && out != "-" {
				if err := writeFile(out, md); err != nil {
					return err
				}
				display.DisplaySuccess(fmt.Sprintf("README written to %s (%s template)", out, t.Name))
				return nil
			}

			if render {
				r, err := display.NewMarkdownRenderer(plain || !display.IsTerminal(), 0)
				if err != nil {
					return err
				}
				if md, err = r.Render(md); err != nil {
					return err
				}
			}
			_, err = fmt.Fprint(a.out, md)
			return err
		},
	}

	f := cmd.Flags()
	f.StringP("output", "o", "", "write the README to this file instead of stdout")
	f.StringSliceVar(&enable, "enable", nil, "turn sections on for this run")
	f.StringSliceVar(&disable, "disable", nil, "turn sections off for this run")
	f.BoolVar(&render, "render", false, "render the markdown for the terminal")
	f.BoolVar(&plain, "plain", false, "with --render, use the uncolored style")
	return cmd
}
