package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-user-records/internal/models"
)

// runUserRepositoryContract checks the behaviour every backing store must share.
// db must hold an empty users table.
func runUserRepositoryContract(t *testing.T, db *sqlx.DB) {
	ctx := context.Background()
	reader := NewUserReadRepository(db)
	writer := NewUserWriteRepository(db, nil)

	newRow := func(name string) models.UserDB {
		birth, err := models.NewDate(1985, time.March, 14)
		require.NoError(t, err)
		return models.UserDB{
			Username:  name,
			Email:     name + "@example.com",
			Password:  "pw_" + name,
			FirstName: "First",
			LastName:  "Last",
			Address:   "42 Long Road",
			BirthDate: birth,
		}
	}

	t.Run("empty list", func(t *testing.T) {
		users, err := reader.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	var aliceID int64
	t.Run("create then get", func(t *testing.T) {
		row := newRow("alice")
		id, err := writer.Create(ctx, row)
		require.NoError(t, err)
		assert.Positive(t, id)
		aliceID = id

		got, err := reader.GetByID(ctx, id)
		require.NoError(t, err)
		row.UserID = id
		assert.Equal(t, row, *got)
	})

	t.Run("duplicates are accepted", func(t *testing.T) {
		id, err := writer.Create(ctx, newRow("alice"))
		require.NoError(t, err)
		assert.NotEqual(t, aliceID, id)

		users, err := reader.List(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("update replaces every column", func(t *testing.T) {
		birth, _ := models.NewDate(2001, time.July, 4)
		replacement := models.UserDB{
			UserID:    aliceID,
			Username:  "alice2",
			Email:     "other@example.org",
			Password:  "changed",
			FirstName: "Alicia",
			LastName:  "Smith",
			Address:   "7 Short Street",
			BirthDate: birth,
		}
		require.NoError(t, writer.Update(ctx, replacement))

		got, err := reader.GetByID(ctx, aliceID)
		require.NoError(t, err)
		assert.Equal(t, replacement, *got)
	})

	t.Run("update of a missing id", func(t *testing.T) {
		row := newRow("ghost")
		row.UserID = aliceID + 1000
		assert.ErrorIs(t, writer.Update(ctx, row), sql.ErrNoRows)
	})

	t.Run("delete then get", func(t *testing.T) {
		require.NoError(t, writer.Delete(ctx, aliceID))

		_, err := reader.GetByID(ctx, aliceID)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.ErrorIs(t, writer.Delete(ctx, aliceID), sql.ErrNoRows)
	})

	t.Run("deleted ids are not issued again", func(t *testing.T) {
		users, err := reader.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
		last := users[0].UserID
		require.NoError(t, writer.Delete(ctx, last))

		id, err := writer.Create(ctx, newRow("carol"))
		require.NoError(t, err)
		assert.Greater(t, id, last)
	})
}
