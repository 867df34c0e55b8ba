package main

import (
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/tracklite-dev/tracklite/internal/dto"
	"github.com/tracklite-dev/tracklite/internal/models"
)

var listMine bool

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List projects",
		Long:  "List projects. Admins see the full collection; members see the projects they are assigned to.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			user, err := a.requireUser()
			if err != nil {
				return err
			}

			var projects []models.Project
			if user.Role == models.RoleAdmin && !listMine {
				projects, err = a.projects.List()
			} else {
				projects, err = a.projects.ListByMember(user.ID)
			}
			if err != nil {
				return err
			}

			users, err := a.users.List()
			if err != nil {
				return err
			}

			tw := table.NewWriter()
			tw.Style().Options.DrawBorder = false
			tw.Style().Options.SeparateColumns = false
			tw.Style().Options.SeparateFooter = false
			tw.Style().Options.SeparateHeader = false
			tw.Style().Options.SeparateRows = false
			tw.AppendHeader(table.Row{
				"ID",
				"TITLE",
				"STATUS",
				"DUE DATE",
				"MEMBERS",
				"COMMENTS",
			})
			for _, project := range projects {
				view := dto.ToProjectDTO(project, users)
				tw.AppendRow(table.Row{
					view.ID,
					view.Title,
					view.Status,
					view.DueDate,
					strings.Join(view.Members, ", "),
					strconv.Itoa(len(view.Comments)),
				})
			}
			cmd.Printf("%s\n", tw.Render())

			return nil
		},
	}
}

func init() {
	cmd := newListCmd()
	cmd.Flags().BoolVar(
		&listMine,
		"mine",
		false,
		"Only list projects assigned to the logged-in user",
	)
	rootCmd.AddCommand(cmd)
}
