package main

import (
	"github.com/spf13/cobra"

	"profile-readme/internal/display"
	"profile-readme/internal/markdown"
)

func newTemplatesCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the README templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := display.NewFormatter(a.out, format)
			if err != nil {
				return err
			}
			return f.Templates(markdown.Templates(), string(markdown.ParseTemplate(a.cfg.Template).ID))
		},
	}
	cmd.Flags().StringVar(&format, "format", display.FormatTable, "output format: table, json")
	return cmd
}

func newConfigCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := display.NewFormatter(a.out, display.FormatTable)
			if err != nil {
				return err
			}
			return f.Config(a.cfg)
		},
	}
}
