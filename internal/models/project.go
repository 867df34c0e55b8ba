package models

type ProjectStatus string

const (
	StatusNotStarted ProjectStatus = "Not Started"
	StatusInProgress ProjectStatus = "In Progress"
	StatusCompleted  ProjectStatus = "Completed"
)

// Valid reports whether the status is one of the three known values.
func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Project is the unit of work tracked by the application.
//
// AssignedMembers holds user IDs. Entries are not checked against the user
// set at write time; a dangling ID simply fails to resolve to a username at
// display time.
type Project struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	DueDate         string        `json:"dueDate"`
	AssignedMembers []string      `json:"assignedMembers"`
	Status          ProjectStatus `json:"status"`
	Comments        []Comment     `json:"comments"`
}

// HasMember reports whether the given user ID is assigned to the project.
func (p *Project) HasMember(userID string) bool {
	for _, id := range p.AssignedMembers {
		if id == userID {
			return true
		}
	}
	return false
}
