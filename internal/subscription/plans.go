package subscription

import "github.com/shopspring/decimal"

// Unlimited marks a limit without a cap.
const Unlimited = -1

// Limits caps monthly usage per plan.
type Limits struct {
	Reports          int    `json:"reports"`
	Patients         int    `json:"patients"`
	WhatsappMessages int    `json:"whatsapp_messages"`
	Storage          string `json:"storage"`
}

// Plan is one subscription tier. The catalog is static; billing itself is an
// external concern.
type Plan struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Interval string          `json:"interval"`
	Features []string        `json:"features"`
	Limits   Limits          `json:"limits"`
	Popular  bool            `json:"popular,omitempty"`
}

// Plans returns the available tiers in display order.
func Plans() []Plan {
	return []Plan{
		{
			ID:       "starter",
			Name:     "Starter",
			Price:    decimal.NewFromFloat(49.90),
			Interval: "monthly",
			Features: []string{
				"Até 50 laudos/mês",
				"Até 100 pacientes",
				"Templates básicos",
				"WhatsApp básico",
				"Suporte por email",
			},
			Limits: Limits{Reports: 50, Patients: 100, WhatsappMessages: 200, Storage: "1GB"},
		},
		{
			ID:       "professional",
			Name:     "Professional",
			Price:    decimal.NewFromFloat(99.90),
			Interval: "monthly",
			Popular:  true,
			Features: []string{
				"Laudos ilimitados",
				"Pacientes ilimitados",
				"Calendário inteligente",
				"WhatsApp automático",
				"Suporte prioritário",
			},
			Limits: Limits{Reports: Unlimited, Patients: Unlimited, WhatsappMessages: 1000, Storage: "10GB"},
		},
		{
			ID:       "enterprise",
			Name:     "Enterprise",
			Price:    decimal.NewFromFloat(199.90),
			Interval: "monthly",
			Features: []string{
				"Tudo do Professional",
				"Múltiplos profissionais",
				"WhatsApp ilimitado",
				"Suporte dedicado",
			},
			Limits: Limits{Reports: Unlimited, Patients: Unlimited, WhatsappMessages: Unlimited, Storage: "100GB"},
		},
	}
}
