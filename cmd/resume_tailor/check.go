package main

import (
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/profile"
	"github.com/spf13/cobra"
)

func newCheckCommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the master resume and user profile files",
		Long: `Loads the master resume bullets and the user profile from the configured paths,
validates both against their schemas and prints a summary. No model call is made.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}

			bullets, err := profile.LoadBullets(cfg.MasterResumePath)
			if err != nil {
				return err
			}
			userProfile, err := profile.LoadProfile(cfg.UserProfilePath)
			if err != nil {
				return err
			}

			observability.NewPrinter(cmd.OutOrStdout()).
				PrintReferenceFiles(cfg.MasterResumePath, bullets, cfg.UserProfilePath, userProfile)
			return nil
		},
	}
}
