package seed

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tracklite-dev/tracklite/internal/models"
)

func TestUsers(t *testing.T) {
	users := Users()
	require.Len(t, users, 3)

	admins := 0
	ids := map[string]bool{}
	names := map[string]bool{}
	for _, u := range users {
		require.True(t, u.Role.Valid())
		require.False(t, ids[u.ID], "duplicate id %s", u.ID)
		require.False(t, names[u.Username], "duplicate username %s", u.Username)
		ids[u.ID] = true
		names[u.Username] = true
		if u.Role == models.RoleAdmin {
			admins++
		}
	}
	require.Equal(t, 1, admins)

	require.Equal(t, "admin", users[0].Username)
	require.Equal(t, "adminpassword", users[0].Password)
}

func TestProjects(t *testing.T) {
	projects := Projects()
	require.Len(t, projects, 4)

	ids := map[string]bool{}
	for _, p := range projects {
		require.True(t, p.Status.Valid())
		require.NotEmpty(t, p.AssignedMembers)
		require.NotNil(t, p.Comments)
		require.False(t, ids[p.ID], "duplicate id %s", p.ID)
		ids[p.ID] = true
	}

	require.Equal(t, models.StatusInProgress, projects[0].Status)
	require.Len(t, projects[0].Comments, 1)
}

func TestProvidersAreDeterministic(t *testing.T) {
	require.Equal(t, Users(), Users())
	require.Equal(t, Projects(), Projects())
}

func TestProvidersReturnFreshCopies(t *testing.T) {
	first := Projects()
	first[0].Title = "mutated"
	first[0].AssignedMembers[0] = "user-99"
	first[0].Comments[0].Text = "mutated"

	second := Projects()
	require.Equal(t, "Develop User Authentication", second[0].Title)
	require.Equal(t, "user-2", second[0].AssignedMembers[0])
	require.Equal(t, "Started working on this.", second[0].Comments[0].Text)
}
