package main

import (
	"github.com/spf13/cobra"
)

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if err := a.auth.Logout(); err != nil {
				return err
			}

			cmd.Println("Logged out")
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newLogoutCmd())
}
