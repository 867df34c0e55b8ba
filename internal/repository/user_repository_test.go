package repository

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/tracklite-dev/tracklite/internal/models"
	"github.com/tracklite-dev/tracklite/internal/storage"
)

func newUserRepo(t *testing.T) (UserRepository, storage.Gateway) {
	t.Helper()
	gateway, err := storage.NewMemoryGateway()
	require.NoError(t, err)
	return NewUserRepository(gateway, zerolog.Nop()), gateway
}

func TestUserRepository_ListSeedsOnFirstRead(t *testing.T) {
	repo, gateway := newUserRepo(t)

	_, ok, err := gateway.Read(storage.KeyUsers)
	require.NoError(t, err)
	require.False(t, ok)

	users, err := repo.List()
	require.NoError(t, err)
	require.Len(t, users, 3)

	raw, ok, err := gateway.Read(storage.KeyUsers)
	require.NoError(t, err)
	require.True(t, ok)

	// The second read comes from storage and must be identical.
	again, err := repo.List()
	require.NoError(t, err)
	require.Equal(t, users, again)

	rawAgain, _, err := gateway.Read(storage.KeyUsers)
	require.NoError(t, err)
	require.Equal(t, raw, rawAgain)
}

func TestUserRepository_FindByID(t *testing.T) {
	repo, _ := newUserRepo(t)

	user, err := repo.FindByID("user-3")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, "bob", user.Username)

	missing, err := repo.FindByID("user-99")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestUserRepository_FindByCredentials(t *testing.T) {
	repo, _ := newUserRepo(t)

	user, err := repo.FindByCredentials("admin", "adminpassword", models.RoleAdmin)
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, "user-1", user.ID)

	// All three fields must match exactly.
	for _, tc := range []struct {
		name     string
		username string
		password string
		role     models.Role
	}{
		{"wrong password", "admin", "wrongpassword", models.RoleAdmin},
		{"wrong role", "admin", "adminpassword", models.RoleMember},
		{"unknown user", "carol", "carolpassword", models.RoleMember},
	} {
		t.Run(tc.name, func(t *testing.T) {
			user, err := repo.FindByCredentials(tc.username, tc.password, tc.role)
			require.NoError(t, err)
			require.Nil(t, user)
		})
	}
}
