package main

import (
	"github.com/spf13/cobra"

	"github.com/tracklite-dev/tracklite/internal/models"
	"github.com/tracklite-dev/tracklite/internal/services"
)

var (
	loginUsername string
	loginPassword string
	loginRole     string
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			user, err := a.auth.Login(services.LoginInput{
				Username: loginUsername,
				Password: loginPassword,
				Role:     models.Role(loginRole),
			})
			if err != nil {
				return err
			}

			cmd.Printf("Logged in as %s (%s)\n", user.Username, user.Role)
			return nil
		},
	}
}

func init() {
	cmd := newLoginCmd()
	cmd.Flags().StringVarP(
		&loginUsername,
		"username",
		"u",
		"",
		"Username",
	)
	cmd.Flags().StringVarP(
		&loginPassword,
		"password",
		"p",
		"",
		"Password",
	)
	cmd.Flags().StringVarP(
		&loginRole,
		"role",
		"r",
		"member",
		"Role to log in as (admin or member)",
	)
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	rootCmd.AddCommand(cmd)
}
