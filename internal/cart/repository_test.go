package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresSnapshotRepositoryLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("returns payload", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		payload := []byte(`{"schemaVersion":1,"entries":[]}`)
		mock.ExpectQuery(`SELECT payload FROM cart_snapshots`).
			WithArgs("m1", "s1").
			WillReturnRows(pgxmock.NewRows([]string{"payload"}).AddRow(payload))

		repo := NewPostgresSnapshotRepository(mock)
		got, err := repo.Load(ctx, "m1", "s1")
		require.NoError(t, err)
		assert.Equal(t, payload, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent key yields nil, nil", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT payload FROM cart_snapshots`).
			WithArgs("m1", "s1").
			WillReturnError(pgx.ErrNoRows)

		repo := NewPostgresSnapshotRepository(mock)
		got, err := repo.Load(ctx, "m1", "s1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("propagates db error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT payload FROM cart_snapshots`).
			WithArgs("m1", "s1").
			WillReturnError(errors.New("connection refused"))

		repo := NewPostgresSnapshotRepository(mock)
		_, err = repo.Load(ctx, "m1", "s1")
		assert.Error(t, err)
	})
}

func TestPostgresSnapshotRepositorySave(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	payload := []byte(`{"schemaVersion":1,"entries":[]}`)
	mock.ExpectExec(`INSERT INTO cart_snapshots`).
		WithArgs("m1", "s1", payload).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := NewPostgresSnapshotRepository(mock)
	require.NoError(t, repo.Save(context.Background(), "m1", "s1", payload))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSnapshotRepositoryDelete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM cart_snapshots`).
		WithArgs("m1", "s1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	repo := NewPostgresSnapshotRepository(mock)
	require.NoError(t, repo.Delete(context.Background(), "m1", "s1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
