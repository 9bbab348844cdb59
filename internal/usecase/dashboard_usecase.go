package usecase

import (
	"context"
	"errors"

	"github.com/laudohub/laudohub-api/internal/delivery/dto"
	"github.com/laudohub/laudohub-api/internal/delivery/http/middleware"
	"github.com/laudohub/laudohub-api/internal/domain/entity"
	"github.com/laudohub/laudohub-api/internal/domain/repository"
	"github.com/laudohub/laudohub-api/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DashboardUsecase interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type dashboardUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	reportRepo repository.ReportRepository
	statsCache *service.StatsCache
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reportRepo repository.ReportRepository,
	statsCache *service.StatsCache,
) DashboardUsecase {
	return &dashboardUsecase{
		db:         db,
		log:        log,
		reportRepo: reportRepo,
		statsCache: statsCache,
	}
}

func (u *dashboardUsecase) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	professionalID, ok := middleware.GetProfessionalIDFromContext(ctx)
	if !ok {
		return nil, errors.New("professional not found in context")
	}

	if cached := u.statsCache.Get(ctx, professionalID); cached != nil {
		return cached, nil
	}

	reports, err := u.reportRepo.FindByProfessional(ctx, u.db, professionalID)
	if err != nil {
		u.log.Warnf("Failed to load reports for stats: %+v", err)
		return nil, err
	}

	stats := ComputeStats(reports)
	u.statsCache.Set(ctx, professionalID, stats)
	return stats, nil
}

// ComputeStats aggregates the dashboard counters from a report list. Revenue
// counts only the billed reports; free reports contribute nothing regardless
// of their nominal price.
func ComputeStats(reports []entity.Report) *dto.DashboardStatsResponse {
	stats := &dto.DashboardStatsResponse{
		TotalReports: len(reports),
		TotalRevenue: decimal.Zero,
	}

	for _, r := range reports {
		switch r.Status {
		case entity.ReportStatusPendingPayment:
			stats.PendingPayments++
		case entity.ReportStatusReady:
			stats.ReadyReports++
		}
		if r.RequiresPayment {
			stats.TotalRevenue = stats.TotalRevenue.Add(r.Price)
		}
	}

	return stats
}
