package main

import (
	"github.com/spf13/cobra"

	"github.com/tracklite-dev/tracklite/internal/repository"
)

var (
	createTitle       string
	createDescription string
	createDueDate     string
	createMembers     []string
)

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a project (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if _, err := a.requireAdmin(); err != nil {
				return err
			}

			project, err := a.projects.Create(repository.CreateProjectInput{
				Title:           createTitle,
				Description:     createDescription,
				DueDate:         createDueDate,
				AssignedMembers: createMembers,
			})
			if err != nil {
				return err
			}

			cmd.Printf("Created project %s\n", project.ID)
			return nil
		},
	}
}

func init() {
	cmd := newCreateCmd()
	cmd.Flags().StringVarP(
		&createTitle,
		"title",
		"t",
		"",
		"Project title",
	)
	cmd.Flags().StringVarP(
		&createDescription,
		"description",
		"d",
		"",
		"Project description",
	)
	cmd.Flags().StringVar(
		&createDueDate,
		"due",
		"",
		"Due date (YYYY-MM-DD)",
	)
	cmd.Flags().StringSliceVarP(
		&createMembers,
		"member",
		"m",
		nil,
		"Assigned member user ID (repeatable)",
	)
	rootCmd.AddCommand(cmd)
}
