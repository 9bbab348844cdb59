package dto

import "github.com/shopspring/decimal"

type DashboardStatsResponse struct {
	TotalReports    int             `json:"total_reports"`
	PendingPayments int             `json:"pending_payments"`
	ReadyReports    int             `json:"ready_reports"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
}
