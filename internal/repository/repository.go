package repository

import "github.com/tracklite-dev/tracklite/internal/models"

// UserRepository defines the interface for user data access. The user set is
// fixed seed data; there are no create or delete operations.
type UserRepository interface {
	// List returns all users in seed order, seeding storage on first read.
	List() ([]models.User, error)

	// FindByID finds a user by ID; a nil user means no such ID.
	FindByID(id string) (*models.User, error)

	// FindByCredentials finds the user matching the exact username,
	// password and role triple; a nil user means no match.
	FindByCredentials(username, password string, role models.Role) (*models.User, error)
}

// ProjectRepository defines the interface for project data access.
//
// Every mutating operation reads the full persisted collection, applies the
// change in memory and writes the whole collection back. Operations on an
// unknown project ID return a nil project with a nil error; the caller can
// legitimately race with a delete, so absence is not an error.
type ProjectRepository interface {
	// List returns the full collection in insertion order, seeding storage
	// on first read.
	List() ([]models.Project, error)

	// ListByMember returns the projects a user is assigned to.
	ListByMember(userID string) ([]models.Project, error)

	// Find returns the project with the given ID, or nil.
	Find(id string) (*models.Project, error)

	// Create validates input, appends a new project with a fresh unique ID,
	// status "Not Started" and no comments, and persists the collection.
	Create(input CreateProjectInput) (*models.Project, error)

	// Update merges the patch over the stored project and persists. Fields
	// left nil in the patch are untouched.
	Update(id string, patch ProjectPatch) (*models.Project, error)

	// Delete removes the project if present. Deleting an unknown ID is a
	// silent no-op.
	Delete(id string) error

	// AddComment appends a comment to the project, preserving the order of
	// existing comments, and persists.
	AddComment(id string, comment models.Comment) (*models.Project, error)
}

// CreateProjectInput holds the caller-supplied fields of a new project.
// Status and comments are fixed by Create and cannot be chosen.
type CreateProjectInput struct {
	Title           string   `validate:"required"`
	Description     string   `validate:"required"`
	DueDate         string   `validate:"required,datetime=2006-01-02"`
	AssignedMembers []string `validate:"required,min=1,dive,required"`
}

// ProjectPatch enumerates the fields a caller may update. Only non-nil
// fields are applied; the merge is shallow.
type ProjectPatch struct {
	Title           *string
	Description     *string
	DueDate         *string
	AssignedMembers *[]string
	Status          *models.ProjectStatus
}
