package service

import (
	"context"
	"time"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/repository"
)

type reportService struct {
	reportRepo repository.ReportRepository
}

func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	return s.reportRepo.Dashboard(ctx, time.Now())
}

func (s *reportService) MonthlyRevenue(ctx context.Context, year int) ([]domain.RevenueReport, error) {
	if year == 0 {
		year = time.Now().Year()
	}
	return s.reportRepo.MonthlyRevenue(ctx, year)
}

func (s *reportService) StratumReport(ctx context.Context) ([]domain.UserStratumReport, error) {
	return s.reportRepo.StratumReport(ctx)
}

func (s *reportService) BicycleStats(ctx context.Context) ([]domain.BicycleRentalStats, error) {
	return s.reportRepo.BicycleStats(ctx)
}
