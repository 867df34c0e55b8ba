package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tracklite-dev/tracklite/internal/config"
	"github.com/tracklite-dev/tracklite/internal/logger"
	"github.com/tracklite-dev/tracklite/internal/models"
	"github.com/tracklite-dev/tracklite/internal/repository"
	"github.com/tracklite-dev/tracklite/internal/services"
	"github.com/tracklite-dev/tracklite/internal/session"
	"github.com/tracklite-dev/tracklite/internal/storage"
)

var errNotLoggedIn = errors.New("not logged in, run `tracklite login` first")

// app wires the storage gateway, repositories and services for one command
// invocation. Commands re-fetch through the repositories after every
// mutation; nothing is cached between calls.
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	users    repository.UserRepository
	projects repository.ProjectRepository
	auth     *services.AuthService
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	gateway, err := openGateway(cfg)
	if err != nil {
		return nil, err
	}

	users := repository.NewUserRepository(gateway, log)
	sessions := session.NewStore(gateway)

	return &app{
		cfg:      cfg,
		log:      log,
		users:    users,
		projects: repository.NewProjectRepository(gateway, log),
		auth:     services.NewAuthService(users, sessions, log),
	}, nil
}

func openGateway(cfg *config.Config) (storage.Gateway, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return storage.NewFileGateway(cfg.DataDir)
	case config.BackendMemory:
		return storage.NewMemoryGateway()
	case config.BackendMySQL:
		return storage.OpenMySQL(cfg.DSN)
	case config.BackendPostgres:
		return storage.OpenPostgres(cfg.DSN)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// requireUser restores the session and fails when nobody is logged in.
func (a *app) requireUser() (*models.User, error) {
	user, err := a.auth.CurrentUser()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errNotLoggedIn
	}
	return user, nil
}

// requireAdmin restores the session and fails unless the user is an admin.
func (a *app) requireAdmin() (*models.User, error) {
	user, err := a.requireUser()
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleAdmin {
		return nil, errors.New("this command is admin-only")
	}
	return user, nil
}
