package dto

import (
	"github.com/tracklite-dev/tracklite/internal/models"
)

// UserDTO represents a user in externally exposed output. The plaintext
// password never leaves the data layer.
type UserDTO struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

// CommentDTO represents a comment with its author resolved to a username.
type CommentDTO struct {
	Text     string `json:"text"`
	Author   string `json:"author"`
	PostedAt string `json:"posted_at"`
}

// ProjectDTO represents a project in externally exposed output, with member
// IDs resolved to usernames.
type ProjectDTO struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	DueDate     string               `json:"due_date"`
	Members     []string             `json:"members"`
	Status      models.ProjectStatus `json:"status"`
	Comments    []CommentDTO         `json:"comments"`
}

// ToUserDTO converts a User model to UserDTO.
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
}

// ToProjectDTO converts a Project model to ProjectDTO, resolving assigned
// member IDs against the given user set. A dangling ID has no username to
// resolve to and is rendered as the raw ID.
func ToProjectDTO(project models.Project, users []models.User) ProjectDTO {
	byID := make(map[string]string, len(users))
	for _, u := range users {
		byID[u.ID] = u.Username
	}

	members := make([]string, len(project.AssignedMembers))
	for i, id := range project.AssignedMembers {
		if name, ok := byID[id]; ok {
			members[i] = name
		} else {
			members[i] = id
		}
	}

	comments := make([]CommentDTO, len(project.Comments))
	for i, c := range project.Comments {
		author := c.UserID
		if name, ok := byID[c.UserID]; ok {
			author = name
		}
		comments[i] = CommentDTO{
			Text:     c.Text,
			Author:   author,
			PostedAt: c.Timestamp,
		}
	}

	return ProjectDTO{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		DueDate:     project.DueDate,
		Members:     members,
		Status:      project.Status,
		Comments:    comments,
	}
}
