package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tracklite-dev/tracklite/internal/models"
)

func newCommentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comment [project-id] [text]",
		Short: "Add a comment to a project",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			user, err := a.requireUser()
			if err != nil {
				return err
			}

			if user.Role != models.RoleAdmin {
				project, err := a.projects.Find(args[0])
				if err != nil {
					return err
				}
				if project != nil && !project.HasMember(user.ID) {
					return errors.New("you are not assigned to this project")
				}
			}

			comment := models.Comment{
				Text:      strings.Join(args[1:], " "),
				UserID:    user.ID,
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			}

			project, err := a.projects.AddComment(args[0], comment)
			if err != nil {
				return err
			}
			if project == nil {
				return fmt.Errorf("no project with id %q", args[0])
			}

			cmd.Printf("Commented on project %s\n", project.ID)
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newCommentCmd())
}
