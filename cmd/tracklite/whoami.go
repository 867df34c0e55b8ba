package main

import (
	"github.com/spf13/cobra"

	"github.com/tracklite-dev/tracklite/internal/dto"
)

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			user, err := a.requireUser()
			if err != nil {
				return err
			}

			view := dto.ToUserDTO(*user)
			cmd.Printf("%s (%s)\n", view.Username, view.Role)
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newWhoamiCmd())
}
