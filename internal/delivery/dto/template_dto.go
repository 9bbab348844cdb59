package dto

import "github.com/shopspring/decimal"

type TemplateFieldResponse struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Options     []string `json:"options,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
}

type TemplateResponse struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	Category     string                  `json:"category"`
	Icon         string                  `json:"icon"`
	DefaultPrice decimal.Decimal         `json:"default_price"`
	Fields       []TemplateFieldResponse `json:"fields"`
}

type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
	Total     int                `json:"total"`
}
