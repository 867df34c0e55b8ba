package main

import (
	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [project-id]",
		Short: "Delete a project (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if _, err := a.requireAdmin(); err != nil {
				return err
			}

			// Deleting an unknown ID is a silent no-op by design.
			if err := a.projects.Delete(args[0]); err != nil {
				return err
			}

			cmd.Printf("Deleted project %s\n", args[0])
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newDeleteCmd())
}
