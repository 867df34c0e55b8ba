package storage

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockGateway builds a DBGateway over a sqlmock connection, skipping the
// migration a real open would run.
func newMockGateway(t *testing.T) (*DBGateway, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return &DBGateway{db: db}, mock
}

func TestDBGateway_Read(t *testing.T) {
	g, mock := newMockGateway(t)

	mock.ExpectQuery(`SELECT (.+) FROM "storage_records" WHERE key = `).
		WithArgs(KeyProjects, 1).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).AddRow(KeyProjects, `[]`))

	value, ok, err := g.Read(KeyProjects)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[]`, value)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDBGateway_ReadAbsent(t *testing.T) {
	g, mock := newMockGateway(t)

	mock.ExpectQuery(`SELECT (.+) FROM "storage_records" WHERE key = `).
		WithArgs(KeyUsers, 1).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}))

	_, ok, err := g.Read(KeyUsers)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDBGateway_WriteUpserts(t *testing.T) {
	g, mock := newMockGateway(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "storage_records" (.+) ON CONFLICT`).
		WithArgs(KeyProjects, `[{"id":"proj-1"}]`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, g.Write(KeyProjects, `[{"id":"proj-1"}]`))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDBGateway_Remove(t *testing.T) {
	g, mock := newMockGateway(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "storage_records" WHERE key = `).
		WithArgs(KeyCurrentUser).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, g.Remove(KeyCurrentUser))
	require.NoError(t, mock.ExpectationsWereMet())
}
