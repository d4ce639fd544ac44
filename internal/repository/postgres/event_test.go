package postgres

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bicirent-backend/internal/domain"
)

func TestEventRepository_Register(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("inserts the participant and increments the counter", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewEventRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO event_participants").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("UPDATE events SET current_participants").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = repo.Register(ctx, 5, 7, now)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate registration hits the unique constraint", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewEventRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO event_participants").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "event_participants_event_id_user_id_key"})
		mock.ExpectRollback()

		err = repo.Register(ctx, 5, 7, now)
		assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("losing the last slot reports the event as full", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewEventRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO event_participants").
			WillReturnResult(sqlmock.NewResult(1, 1))
		// The guarded increment matches nothing because a concurrent
		// registration took the last slot first.
		mock.ExpectExec("UPDATE events SET current_participants").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT status, event_date, max_participants, current_participants").
			WillReturnRows(sqlmock.NewRows([]string{"status", "event_date", "max_participants", "current_participants"}).
				AddRow("published", now.Add(24*time.Hour), 10, 10))
		mock.ExpectRollback()

		err = repo.Register(ctx, 5, 7, now)
		assert.ErrorIs(t, err, domain.ErrEventFull)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("registering on an unpublished event", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewEventRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO event_participants").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("UPDATE events SET current_participants").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT status, event_date, max_participants, current_participants").
			WillReturnRows(sqlmock.NewRows([]string{"status", "event_date", "max_participants", "current_participants"}).
				AddRow("draft", now.Add(24*time.Hour), nil, 0))
		mock.ExpectRollback()

		err = repo.Register(ctx, 5, 7, now)
		assert.ErrorIs(t, err, domain.ErrEventNotPublished)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_Unregister(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the participant and decrements the counter", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewEventRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM event_participants").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE events SET current_participants").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = repo.Unregister(ctx, 5, 7)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown registration", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewEventRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM event_participants").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err = repo.Unregister(ctx, 5, 7)
		assert.ErrorIs(t, err, domain.ErrNotRegistered)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
