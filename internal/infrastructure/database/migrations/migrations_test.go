package migrations

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_ListsVersionsInOrder(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)

	versions := []uint{first}
	for v := first; ; {
		next, err := src.Next(v)
		if errors.Is(err, fs.ErrNotExist) {
			break
		}
		require.NoError(t, err)
		versions = append(versions, next)
		v = next
	}
	assert.Equal(t, []uint{1, 2, 3}, versions)
}

func TestSource_EveryVersionHasUpAndDown(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	defer src.Close()

	for _, v := range []uint{1, 2, 3} {
		up, identifier, err := src.ReadUp(v)
		require.NoError(t, err, "up %d", v)
		body, err := io.ReadAll(up)
		require.NoError(t, err)
		up.Close()
		assert.True(t, strings.Contains(string(body), "CREATE TABLE"), identifier)

		down, _, err := src.ReadDown(v)
		require.NoError(t, err, "down %d", v)
		body, err = io.ReadAll(down)
		require.NoError(t, err)
		down.Close()
		assert.True(t, strings.Contains(string(body), "DROP TABLE"), identifier)
	}
}

func TestApply_DriverInitFailureClosesDB(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT CURRENT_DATABASE\(\)`).WillReturnError(errors.New("connection reset"))
	mock.ExpectClose()

	err = Apply(context.Background(), db)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "init migration driver")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRollback_RejectsNonPositiveSteps(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	assert.Error(t, Rollback(context.Background(), db, 0))
	assert.NoError(t, mock.ExpectationsWereMet())
}
