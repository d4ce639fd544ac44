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

func TestRentalRepository_CreateActive(t *testing.T) {
	ctx := context.Background()

	t.Run("flips the bicycle and inserts the rental", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRentalRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE bicycles SET status").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO rentals").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
		mock.ExpectCommit()

		rental := &domain.Rental{UserID: 7, BicycleID: 3, StartDate: time.Now(), Status: domain.RentalStatusActive}
		err = repo.CreateActive(ctx, rental)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), rental.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("loses the bicycle flip to a concurrent renter", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRentalRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE bicycles SET status").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err = repo.CreateActive(ctx, &domain.Rental{UserID: 7, BicycleID: 3})
		assert.ErrorIs(t, err, domain.ErrBicycleNotAvailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("hits the one-active-rental-per-user index", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRentalRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE bicycles SET status").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO rentals").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "rentals_one_active_per_user"})
		mock.ExpectRollback()

		err = repo.CreateActive(ctx, &domain.Rental{UserID: 7, BicycleID: 3})
		assert.ErrorIs(t, err, domain.ErrUserHasActiveRental)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRentalRepository_Complete(t *testing.T) {
	ctx := context.Background()
	hours := int32(3)
	pct, disc, total := 10.0, 3000.0, 27000.0
	now := time.Now()

	t.Run("writes cost fields and frees the bicycle", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRentalRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE rentals SET status").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE bicycles SET status").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = repo.Complete(ctx, &domain.Rental{
			ID: 42, BicycleID: 3, EndDate: &now, Status: domain.RentalStatusCompleted,
			DurationInHours: &hours, DiscountPercentage: &pct, Discount: &disc,
			TotalCost: &total, FinalCost: &total,
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second return of the same rental matches nothing", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRentalRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE rentals SET status").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err = repo.Complete(ctx, &domain.Rental{ID: 42, BicycleID: 3, EndDate: &now})
		assert.ErrorIs(t, err, domain.ErrRentalNotActive)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRentalRepository_Cancel(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRentalRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE rentals SET status").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE bicycles SET status").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.Cancel(ctx, &domain.Rental{ID: 42, BicycleID: 3, Status: domain.RentalStatusCancelled})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_GetActiveByUser(t *testing.T) {
	ctx := context.Background()

	t.Run("no active rental returns nil without error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRentalRepository(db)

		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE user_id").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		rental, err := repo.GetActiveByUser(ctx, 7)
		assert.NoError(t, err)
		assert.Nil(t, rental)
	})
}
