package services

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tracklite-dev/tracklite/internal/apperrors"
	"github.com/tracklite-dev/tracklite/internal/models"
	"github.com/tracklite-dev/tracklite/internal/repository"
	"github.com/tracklite-dev/tracklite/internal/session"
)

// AuthService validates credentials against the seed user set and owns the
// session record.
type AuthService struct {
	users    repository.UserRepository
	sessions *session.Store
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository, sessions *session.Store, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		logger:   logger.With().Str("component", "auth_service").Logger(),
	}
}

// LoginInput holds the credentials for authentication. All three fields must
// match one seed user exactly.
type LoginInput struct {
	Username string
	Password string
	Role     models.Role
}

// Login verifies the credential triple, establishes the session and returns
// the authenticated user. On failure the prior session, if any, is left
// untouched, and the error never reveals which field was wrong.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	if strings.TrimSpace(input.Username) == "" {
		return nil, apperrors.NewValidationError("username", "required", "username is required")
	}
	if input.Password == "" {
		return nil, apperrors.NewValidationError("password", "required", "password is required")
	}
	if !input.Role.Valid() {
		return nil, apperrors.NewValidationError("role", "oneof",
			fmt.Sprintf("role must be one of: %s %s", models.RoleAdmin, models.RoleMember))
	}

	user, err := s.users.FindByCredentials(input.Username, input.Password, input.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		s.logger.Warn().Str("username", input.Username).Msg("login rejected")
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.sessions.Set(user); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login succeeded")
	return user, nil
}

// Logout clears the session unconditionally. Logging out with no session is
// a no-op.
func (s *AuthService) Logout() error {
	if err := s.sessions.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.logger.Info().Msg("logged out")
	return nil
}

// CurrentUser returns the user restored from the persisted session, or nil
// when nobody is logged in.
func (s *AuthService) CurrentUser() (*models.User, error) {
	return s.sessions.Get()
}
