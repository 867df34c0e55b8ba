package repository

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"github.com/tracklite-dev/tracklite/internal/apperrors"
	"github.com/tracklite-dev/tracklite/internal/models"
	"github.com/tracklite-dev/tracklite/internal/seed"
	"github.com/tracklite-dev/tracklite/internal/storage"
)

// StoreProjectRepository is a storage-gateway implementation of
// ProjectRepository.
//
// The mutex serializes read-modify-write cycles within this process. A
// second process sharing the same storage still races with last-write-wins
// semantics, the same way two browser tabs share local storage.
type StoreProjectRepository struct {
	gateway  storage.Gateway
	validate *validator.Validate
	logger   zerolog.Logger
	mu       sync.Mutex
}

// NewProjectRepository creates a new ProjectRepository over the gateway.
func NewProjectRepository(gateway storage.Gateway, logger zerolog.Logger) ProjectRepository {
	return &StoreProjectRepository{
		gateway:  gateway,
		validate: validator.New(),
		logger:   logger.With().Str("component", "project_repository").Logger(),
	}
}

// List returns the full collection in insertion order, seeding storage on
// first read.
func (r *StoreProjectRepository) List() ([]models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// ListByMember returns the projects the given user is assigned to, in
// collection order.
func (r *StoreProjectRepository) ListByMember(userID string) ([]models.Project, error) {
	projects, err := r.List()
	if err != nil {
		return nil, err
	}
	assigned := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if p.HasMember(userID) {
			assigned = append(assigned, p)
		}
	}
	return assigned, nil
}

// Find returns the project with the given ID, or nil when absent.
func (r *StoreProjectRepository) Find(id string) (*models.Project, error) {
	projects, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, nil
}

// Create validates input, appends a new project and persists the collection.
// The new project always starts as "Not Started" with no comments.
func (r *StoreProjectRepository) Create(input CreateProjectInput) (*models.Project, error) {
	if err := apperrors.FromValidator(r.validate.Struct(input)); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	projects, err := r.load()
	if err != nil {
		return nil, err
	}

	project := models.Project{
		ID:              r.newID(projects),
		Title:           input.Title,
		Description:     input.Description,
		DueDate:         input.DueDate,
		AssignedMembers: input.AssignedMembers,
		Status:          models.StatusNotStarted,
		Comments:        []models.Comment{},
	}
	projects = append(projects, project)

	if err := r.persist(projects); err != nil {
		return nil, err
	}
	r.logger.Info().Str("project_id", project.ID).Str("title", project.Title).Msg("project created")
	return &project, nil
}

// Update merges the patch over the stored project and persists. A nil
// project with a nil error means no project with that ID exists.
func (r *StoreProjectRepository) Update(id string, patch ProjectPatch) (*models.Project, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	projects, err := r.load()
	if err != nil {
		return nil, err
	}

	idx := indexOf(projects, id)
	if idx < 0 {
		return nil, nil
	}

	project := projects[idx]
	if patch.Title != nil {
		project.Title = *patch.Title
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.DueDate != nil {
		project.DueDate = *patch.DueDate
	}
	if patch.AssignedMembers != nil {
		project.AssignedMembers = *patch.AssignedMembers
	}
	if patch.Status != nil {
		project.Status = *patch.Status
	}
	projects[idx] = project

	if err := r.persist(projects); err != nil {
		return nil, err
	}
	r.logger.Info().Str("project_id", id).Msg("project updated")
	return &project, nil
}

// Delete removes the project if present; deleting an unknown ID is a silent
// no-op.
func (r *StoreProjectRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	projects, err := r.load()
	if err != nil {
		return err
	}

	kept := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	if err := r.persist(kept); err != nil {
		return err
	}
	if len(kept) < len(projects) {
		r.logger.Info().Str("project_id", id).Msg("project deleted")
	}
	return nil
}

// AddComment appends the comment to the project and persists. A nil project
// with a nil error means no project with that ID exists.
func (r *StoreProjectRepository) AddComment(id string, comment models.Comment) (*models.Project, error) {
	if comment.Text == "" {
		return nil, apperrors.NewValidationError("text", "required", "text is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	projects, err := r.load()
	if err != nil {
		return nil, err
	}

	idx := indexOf(projects, id)
	if idx < 0 {
		return nil, nil
	}

	project := projects[idx]
	project.Comments = append(project.Comments, comment)
	projects[idx] = project

	if err := r.persist(projects); err != nil {
		return nil, err
	}
	r.logger.Info().Str("project_id", id).Str("user_id", comment.UserID).Msg("comment added")
	return &project, nil
}

// load reads the persisted collection, seeding it exactly once when no
// collection exists in storage. Callers must hold the mutex.
func (r *StoreProjectRepository) load() ([]models.Project, error) {
	raw, ok, err := r.gateway.Read(storage.KeyProjects)
	if err != nil {
		return nil, err
	}
	if !ok {
		projects := seed.Projects()
		if err := r.persist(projects); err != nil {
			return nil, err
		}
		r.logger.Debug().Int("count", len(projects)).Msg("seeded project collection")
		return projects, nil
	}

	var projects []models.Project
	if err := json.Unmarshal([]byte(raw), &projects); err != nil {
		return nil, fmt.Errorf("project repository: decode collection: %w", err)
	}
	return projects, nil
}

// persist writes the whole collection back. There is no partial write: the
// stored record is either the previous collection or the new one.
func (r *StoreProjectRepository) persist(projects []models.Project) error {
	raw, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("project repository: encode collection: %w", err)
	}
	return r.gateway.Write(storage.KeyProjects, string(raw))
}

// newID generates a project ID that is unique within the collection. xid
// already embeds a counter and random machine component, so a collision with
// an existing ID is only possible for data imported from elsewhere.
func (r *StoreProjectRepository) newID(projects []models.Project) string {
	for {
		id := "proj-" + xid.New().String()
		if indexOf(projects, id) < 0 {
			return id
		}
	}
}

func validatePatch(patch ProjectPatch) error {
	if patch.Title != nil && *patch.Title == "" {
		return apperrors.NewValidationError("title", "required", "title is required")
	}
	if patch.AssignedMembers != nil && len(*patch.AssignedMembers) == 0 {
		return apperrors.NewValidationError("assignedmembers", "min", "assignedmembers must have at least 1 entries")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return apperrors.NewValidationError("status", "oneof", fmt.Sprintf("status must be one of: %s %s %s",
			models.StatusNotStarted, models.StatusInProgress, models.StatusCompleted))
	}
	return nil
}

func indexOf(projects []models.Project, id string) int {
	for i := range projects {
		if projects[i].ID == id {
			return i
		}
	}
	return -1
}
