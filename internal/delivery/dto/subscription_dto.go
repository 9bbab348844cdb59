package dto

import "github.com/shopspring/decimal"

type PlanLimitsResponse struct {
	Reports          int    `json:"reports"`
	Patients         int    `json:"patients"`
	WhatsappMessages int    `json:"whatsapp_messages"`
	Storage          string `json:"storage"`
}

type PlanResponse struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Price    decimal.Decimal    `json:"price"`
	Interval string             `json:"interval"`
	Features []string           `json:"features"`
	Limits   PlanLimitsResponse `json:"limits"`
	Popular  bool               `json:"popular,omitempty"`
}

type PlanListResponse struct {
	Plans []PlanResponse `json:"plans"`
	Total int            `json:"total"`
}
