// Package seed supplies the fixed records used to populate storage on first
// run. Both providers are pure: every call returns a fresh copy of the same
// data.
package seed

import "github.com/tracklite-dev/tracklite/internal/models"

// Users returns the built-in accounts: one admin and two members. The user
// set is immutable at runtime.
func Users() []models.User {
	return []models.User{
		{ID: "user-1", Username: "admin", Password: "adminpassword", Role: models.RoleAdmin},
		{ID: "user-2", Username: "alice", Password: "alicepassword", Role: models.RoleMember},
		{ID: "user-3", Username: "bob", Password: "bobpassword", Role: models.RoleMember},
	}
}

// Projects returns the initial project set, used only when no collection
// exists in storage yet.
func Projects() []models.Project {
	return []models.Project{
		{
			ID:              "proj-1",
			Title:           "Develop User Authentication",
			Description:     "Implement login, registration, and session management.",
			DueDate:         "2025-08-15",
			AssignedMembers: []string{"user-2"},
			Status:          models.StatusInProgress,
			Comments: []models.Comment{
				{Text: "Started working on this.", UserID: "user-2", Timestamp: "2025-08-01T09:30:00Z"},
			},
		},
		{
			ID:              "proj-2",
			Title:           "Design Database Schema",
			Description:     "Create ER diagrams and define tables for projects and users.",
			DueDate:         "2025-08-20",
			AssignedMembers: []string{"user-1", "user-3"},
			Status:          models.StatusNotStarted,
			Comments:        []models.Comment{},
		},
		{
			ID:              "proj-3",
			Title:           "Build Admin Dashboard",
			Description:     "Develop UI for project creation and member assignment.",
			DueDate:         "2025-08-25",
			AssignedMembers: []string{"user-1"},
			Status:          models.StatusNotStarted,
			Comments:        []models.Comment{},
		},
		{
			ID:              "proj-4",
			Title:           "Integrate Payment Gateway",
			Description:     "Connect with Stripe for secure payment processing.",
			DueDate:         "2025-09-10",
			AssignedMembers: []string{"user-2", "user-3"},
			Status:          models.StatusNotStarted,
			Comments:        []models.Comment{},
		},
	}
}
