package usecase

import (
	"testing"

	"github.com/laudohub/laudohub-api/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func TestComputeStats(t *testing.T) {
	reports := []entity.Report{
		{Status: entity.ReportStatusReady, RequiresPayment: true, Price: decimal.NewFromInt(150)},
		{Status: entity.ReportStatusReady, RequiresPayment: false, Price: decimal.NewFromInt(100)},
		{Status: entity.ReportStatusPendingPayment, RequiresPayment: true, Price: decimal.NewFromFloat(79.90)},
		{Status: entity.ReportStatusPendingPayment, RequiresPayment: true, Price: decimal.Zero},
	}

	stats := ComputeStats(reports)

	if stats.TotalReports != 4 {
		t.Errorf("TotalReports = %d, want 4", stats.TotalReports)
	}
	if stats.PendingPayments != 2 {
		t.Errorf("PendingPayments = %d, want 2", stats.PendingPayments)
	}
	if stats.ReadyReports != 2 {
		t.Errorf("ReadyReports = %d, want 2", stats.ReadyReports)
	}
	// The free ready report's nominal price must not count as revenue.
	if want := decimal.NewFromFloat(229.90); !stats.TotalRevenue.Equal(want) {
		t.Errorf("TotalRevenue = %s, want %s", stats.TotalRevenue, want)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)

	if stats.TotalReports != 0 || stats.PendingPayments != 0 || stats.ReadyReports != 0 {
		t.Errorf("counters not zero: %+v", stats)
	}
	if !stats.TotalRevenue.Equal(decimal.Zero) {
		t.Errorf("TotalRevenue = %s, want 0", stats.TotalRevenue)
	}
}
