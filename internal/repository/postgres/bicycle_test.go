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

func TestBicycleRepository_CompareAndSetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("winner matches one row", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewBicycleRepository(db)

		mock.ExpectExec("UPDATE bicycles SET status").
			WithArgs(string(domain.BicycleStatusMaintenance), sqlmock.AnyArg(), int32(3), string(domain.BicycleStatusAvailable)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.CompareAndSetStatus(ctx, 3, domain.BicycleStatusAvailable, domain.BicycleStatusMaintenance)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("loser matches nothing", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewBicycleRepository(db)

		mock.ExpectExec("UPDATE bicycles SET status").
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.CompareAndSetStatus(ctx, 3, domain.BicycleStatusAvailable, domain.BicycleStatusRented)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestBicycleRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate code", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewBicycleRepository(db)

		mock.ExpectQuery("INSERT INTO bicycles").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "bicycles_code_key"})

		err = repo.Create(ctx, &domain.Bicycle{Code: "BIC-001", RegionalID: 1, RentalPricePerHour: 5000})
		assert.ErrorIs(t, err, domain.ErrDuplicateCode)
	})
}

func TestMaintenanceRepository_Complete(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("marks the log done and frees the bicycle", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewMaintenanceRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE maintenance_logs SET completed").
			WillReturnRows(sqlmock.NewRows([]string{"bicycle_id"}).AddRow(3))
		mock.ExpectExec("UPDATE bicycles SET status").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Complete(ctx, 11, now))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already completed", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewMaintenanceRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE maintenance_logs SET completed").
			WillReturnRows(sqlmock.NewRows([]string{"bicycle_id"}))
		mock.ExpectQuery("SELECT EXISTS").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Complete(ctx, 11, now), domain.ErrMaintenanceDone)
	})

	t.Run("unknown log", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewMaintenanceRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE maintenance_logs SET completed").
			WillReturnRows(sqlmock.NewRows([]string{"bicycle_id"}))
		mock.ExpectQuery("SELECT EXISTS").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Complete(ctx, 99, now), domain.ErrMaintenanceNotFound)
	})
}
