package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryGateway_Roundtrip(t *testing.T) {
	g, err := NewMemoryGateway()
	require.NoError(t, err)

	_, ok, err := g.Read(KeyUsers)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, g.Write(KeyUsers, `[{"id":"user-1"}]`))

	value, ok, err := g.Read(KeyUsers)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":"user-1"}]`, value)

	require.NoError(t, g.Write(KeyUsers, `[]`))
	value, _, err = g.Read(KeyUsers)
	require.NoError(t, err)
	require.Equal(t, `[]`, value)
}

func TestMemoryGateway_Remove(t *testing.T) {
	g, err := NewMemoryGateway()
	require.NoError(t, err)

	require.NoError(t, g.Write(KeyCurrentUser, `{"id":"user-2"}`))
	require.NoError(t, g.Remove(KeyCurrentUser))

	_, ok, err := g.Read(KeyCurrentUser)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, g.Remove(KeyCurrentUser))
}

func TestMemoryGateway_KeysAreIndependent(t *testing.T) {
	g, err := NewMemoryGateway()
	require.NoError(t, err)

	require.NoError(t, g.Write(KeyUsers, `[]`))
	require.NoError(t, g.Write(KeyProjects, `[1]`))
	require.NoError(t, g.Remove(KeyUsers))

	value, ok, err := g.Read(KeyProjects)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[1]`, value)
}
