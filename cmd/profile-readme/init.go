package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"profile-readme/internal/display"
	"profile-readme/internal/profile"
)

func newInitCommand(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the sample profile to the profile file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := a.store()
			if !force {
				_, err := store.Load()
				switch {
				case err == nil:
					return fmt.Errorf("profile %s already exists (use --force to overwrite)", store.Path())
				case !errors.Is(err, profile.ErrNotFound):
					return err
				}
			}

			if err := store.Save(profile.Default()); err != nil {
				return err
			}
			display.DisplaySuccess(fmt.Sprintf("Sample profile written to %s", store.Path()))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing profile")
	return cmd
}
