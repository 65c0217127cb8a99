package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"profile-readme/internal/display"
	"profile-readme/internal/preview"
)

func newPreviewCommand(a *app) *cobra.Command {
	var (
		output          string
		enable, disable []string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Write an HTML preview of the README",
		Long: `Write a standalone HTML page showing how the README will look. GitHub
statistics show a placeholder until 'profile-readme fetch' has run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.profileForRender(enable, disable)
			if err != nil {
				return err
			}
			t := a.resolveTemplate()
			doc := preview.Build(p, string(t.ID))

			page, err := doc.HTML()
			if err != nil {
				return fmt.Errorf("failed to render preview: %w", err)
			}
			a.logger.Info("built preview", zap.String("template", string(t.ID)), zap.Int("sections", len(doc.Sections)))

			if output == "-" {
				_, err = fmt.Fprint(a.out, page)
				return err
			}
			if err := writeFile(output, page); err != nil {
				return err
			}
			display.DisplaySuccess(fmt.Sprintf("Preview written to %s", output))
			if !p.GitHubDataFetched {
				display.DisplayWarning("GitHub statistics are placeholders; run 'profile-readme fetch' to load them")
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "profile-preview.html", "HTML file to write, or - for stdout")
	f.StringSliceVar(&enable, "enable", nil, "turn sections on for this run")
	f.StringSliceVar(&disable, "disable", nil, "turn sections off for this run")
	return cmd
}
