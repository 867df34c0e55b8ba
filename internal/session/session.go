// Package session persists the single "current logged-in user" record. At
// most one session exists per store: login overwrites it, logout removes it.
// There is no expiry and no token; a session is valid as long as the record
// exists.
package session

import (
	"encoding/json"
	"fmt"

	"github.com/tracklite-dev/tracklite/internal/models"
	"github.com/tracklite-dev/tracklite/internal/storage"
)

// Store reads and writes the session record through a storage gateway.
type Store struct {
	gateway storage.Gateway
}

// NewStore returns a session store backed by the given gateway.
func NewStore(gateway storage.Gateway) *Store {
	return &Store{gateway: gateway}
}

// Get returns the persisted session user, or nil when nobody is logged in.
func (s *Store) Get() (*models.User, error) {
	raw, ok, err := s.gateway.Read(storage.KeyCurrentUser)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("session: decode record: %w", err)
	}
	return &user, nil
}

// Set persists user as the current session. A nil user clears the session,
// mirroring Get returning nil.
func (s *Store) Set(user *models.User) error {
	if user == nil {
		return s.Clear()
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: encode record: %w", err)
	}
	return s.gateway.Write(storage.KeyCurrentUser, string(raw))
}

// Clear removes the session record unconditionally.
func (s *Store) Clear() error {
	return s.gateway.Remove(storage.KeyCurrentUser)
}
