package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tracklite-dev/tracklite/internal/dto"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [project-id]",
		Short: "Show one project with its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if _, err := a.requireUser(); err != nil {
				return err
			}

			project, err := a.projects.Find(args[0])
			if err != nil {
				return err
			}
			if project == nil {
				return fmt.Errorf("no project with id %q", args[0])
			}

			users, err := a.users.List()
			if err != nil {
				return err
			}

			view := dto.ToProjectDTO(*project, users)
			cmd.Printf("%s  %s\n", view.ID, view.Title)
			cmd.Printf("Status:   %s\n", view.Status)
			cmd.Printf("Due:      %s\n", view.DueDate)
			cmd.Printf("Members:  %s\n", strings.Join(view.Members, ", "))
			cmd.Printf("%s\n", view.Description)
			if len(view.Comments) > 0 {
				cmd.Println("Comments:")
				for _, c := range view.Comments {
					cmd.Printf("  [%s] %s: %s\n", c.PostedAt, c.Author, c.Text)
				}
			}
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newShowCmd())
}
