package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tracklite-dev/tracklite/internal/models"
	"github.com/tracklite-dev/tracklite/internal/repository"
)

var (
	updateTitle       string
	updateDescription string
	updateDueDate     string
	updateMembers     []string
	updateStatus      string
)

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update [project-id]",
		Short: "Update project fields",
		Long: "Update project fields. Members may only change the status of projects " +
			"they are assigned to; every other field is admin-only.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			user, err := a.requireUser()
			if err != nil {
				return err
			}

			patch := repository.ProjectPatch{}
			if cmd.Flags().Changed("title") {
				patch.Title = &updateTitle
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &updateDescription
			}
			if cmd.Flags().Changed("due") {
				patch.DueDate = &updateDueDate
			}
			if cmd.Flags().Changed("member") {
				patch.AssignedMembers = &updateMembers
			}
			if cmd.Flags().Changed("status") {
				status := models.ProjectStatus(updateStatus)
				patch.Status = &status
			}

			if user.Role != models.RoleAdmin {
				if patch.Title != nil || patch.Description != nil || patch.DueDate != nil || patch.AssignedMembers != nil {
					return errors.New("members may only update --status")
				}
				project, err := a.projects.Find(args[0])
				if err != nil {
					return err
				}
				if project != nil && !project.HasMember(user.ID) {
					return errors.New("you are not assigned to this project")
				}
			}

			project, err := a.projects.Update(args[0], patch)
			if err != nil {
				return err
			}
			if project == nil {
				return fmt.Errorf("no project with id %q", args[0])
			}

			cmd.Printf("Updated project %s\n", project.ID)
			return nil
		},
	}
}

func init() {
	cmd := newUpdateCmd()
	cmd.Flags().StringVarP(
		&updateTitle,
		"title",
		"t",
		"",
		"Project title",
	)
	cmd.Flags().StringVarP(
		&updateDescription,
		"description",
		"d",
		"",
		"Project description",
	)
	cmd.Flags().StringVar(
		&updateDueDate,
		"due",
		"",
		"Due date (YYYY-MM-DD)",
	)
	cmd.Flags().StringSliceVarP(
		&updateMembers,
		"member",
		"m",
		nil,
		"Assigned member user ID (repeatable)",
	)
	cmd.Flags().StringVarP(
		&updateStatus,
		"status",
		"s",
		"",
		`Project status ("Not Started", "In Progress" or "Completed")`,
	)
	rootCmd.AddCommand(cmd)
}
