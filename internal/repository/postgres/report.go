package postgres

import (
	"context"
	"database/sql"
	"time"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/repository"
)

type reportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Dashboard(ctx context.Context, now time.Time) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}

	query := `SELECT
	       count(*) FILTER (WHERE is_active),
	       count(*) FILTER (WHERE is_active AND status = 'available'),
	       count(*) FILTER (WHERE is_active AND status = 'rented'),
	       count(*) FILTER (WHERE is_active AND status = 'maintenance')
	   FROM bicycles`
	if err := r.db.QueryRowContext(ctx, query).Scan(&stats.TotalBicycles, &stats.AvailableBicycles,
		&stats.RentedBicycles, &stats.MaintenanceBicycles); err != nil {
		return nil, err
	}

	if err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM users WHERE is_active`).Scan(&stats.TotalUsers); err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	query = `SELECT
	       count(*) FILTER (WHERE status = 'active'),
	       COALESCE(sum(total_cost) FILTER (WHERE status = 'completed'), 0),
	       COALESCE(sum(total_cost) FILTER (WHERE status = 'completed' AND end_date >= $1), 0)
	   FROM rentals`
	if err := r.db.QueryRowContext(ctx, query, monthStart).Scan(&stats.ActiveRentals,
		&stats.TotalRevenue, &stats.MonthlyRevenue); err != nil {
		return nil, err
	}

	if err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM events WHERE status = 'published' AND event_date > $1`,
		now).Scan(&stats.UpcomingEvents); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *reportRepository) MonthlyRevenue(ctx context.Context, year int) ([]domain.RevenueReport, error) {
	query := `SELECT to_char(end_date, 'Month'), count(*),
	       COALESCE(sum(total_cost), 0), COALESCE(avg(total_cost), 0), COALESCE(sum(discount), 0)
	   FROM rentals
	   WHERE status = 'completed' AND date_part('year', end_date) = $1
	   GROUP BY date_part('month', end_date), to_char(end_date, 'Month')
	   ORDER BY date_part('month', end_date)`
	rows, err := r.db.QueryContext(ctx, query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []domain.RevenueReport
	for rows.Next() {
		rep := domain.RevenueReport{Year: year}
		if err := rows.Scan(&rep.Month, &rep.TotalRentals, &rep.TotalRevenue,
			&rep.AverageRentalCost, &rep.DiscountGiven); err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}

func (r *reportRepository) StratumReport(ctx context.Context) ([]domain.UserStratumReport, error) {
	query := `SELECT u.socioeconomic_stratum, count(DISTINCT u.id),
	       count(rt.id) FILTER (WHERE rt.status = 'completed'),
	       COALESCE(sum(rt.total_cost) FILTER (WHERE rt.status = 'completed'), 0),
	       COALESCE(avg(rt.discount) FILTER (WHERE rt.status = 'completed'), 0)
	   FROM users u
	   LEFT JOIN rentals rt ON rt.user_id = u.id
	   WHERE u.socioeconomic_stratum IS NOT NULL
	   GROUP BY u.socioeconomic_stratum
	   ORDER BY u.socioeconomic_stratum`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []domain.UserStratumReport
	for rows.Next() {
		var rep domain.UserStratumReport
		if err := rows.Scan(&rep.Stratum, &rep.UserCount, &rep.TotalRentals,
			&rep.TotalRevenue, &rep.AverageDiscount); err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}

func (r *reportRepository) BicycleStats(ctx context.Context) ([]domain.BicycleRentalStats, error) {
	query := `SELECT b.id, b.code, b.brand, b.model,
	       count(rt.id) FILTER (WHERE rt.status = 'completed'),
	       COALESCE(sum(rt.total_cost) FILTER (WHERE rt.status = 'completed'), 0),
	       COALESCE(avg(rt.duration_in_hours) FILTER (WHERE rt.status = 'completed'), 0)
	   FROM bicycles b
	   LEFT JOIN rentals rt ON rt.bicycle_id = b.id
	   WHERE b.is_active
	   GROUP BY b.id, b.code, b.brand, b.model
	   ORDER BY count(rt.id) FILTER (WHERE rt.status = 'completed') DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.BicycleRentalStats
	for rows.Next() {
		var s domain.BicycleRentalStats
		var model sql.NullString
		if err := rows.Scan(&s.BicycleID, &s.BicycleCode, &s.Brand, &model,
			&s.TotalRentals, &s.TotalRevenue, &s.AverageDuration); err != nil {
			return nil, err
		}
		s.Model = model.String
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
