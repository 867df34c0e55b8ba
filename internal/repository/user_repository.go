package repository

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tracklite-dev/tracklite/internal/models"
	"github.com/tracklite-dev/tracklite/internal/seed"
	"github.com/tracklite-dev/tracklite/internal/storage"
)

// StoreUserRepository is a storage-gateway implementation of UserRepository.
// The user set is written once on first read and never mutated afterwards.
type StoreUserRepository struct {
	gateway storage.Gateway
	logger  zerolog.Logger
	mu      sync.Mutex
}

// NewUserRepository creates a new UserRepository over the gateway.
func NewUserRepository(gateway storage.Gateway, logger zerolog.Logger) UserRepository {
	return &StoreUserRepository{
		gateway: gateway,
		logger:  logger.With().Str("component", "user_repository").Logger(),
	}
}

// List returns all users in seed order, seeding the stored record on first
// read.
func (r *StoreUserRepository) List() ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, ok, err := r.gateway.Read(storage.KeyUsers)
	if err != nil {
		return nil, err
	}
	if !ok {
		users := seed.Users()
		encoded, err := json.Marshal(users)
		if err != nil {
			return nil, fmt.Errorf("user repository: encode users: %w", err)
		}
		if err := r.gateway.Write(storage.KeyUsers, string(encoded)); err != nil {
			return nil, err
		}
		r.logger.Debug().Int("count", len(users)).Msg("seeded user set")
		return users, nil
	}

	var users []models.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("user repository: decode users: %w", err)
	}
	return users, nil
}

// FindByID finds a user by ID; a nil user means no such ID.
func (r *StoreUserRepository) FindByID(id string) (*models.User, error) {
	users, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// FindByCredentials finds the user matching the exact username, password and
// role triple; a nil user means no match. Plaintext comparison is the point:
// this is a single-device tracker with no security model.
func (r *StoreUserRepository) FindByCredentials(username, password string, role models.Role) (*models.User, error) {
	users, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range users {
		u := &users[i]
		if u.Username == username && u.Password == password && u.Role == role {
			return u, nil
		}
	}
	return nil, nil
}
