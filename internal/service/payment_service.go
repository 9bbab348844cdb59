package service

import (
	"fmt"
	"strings"

	"github.com/laudohub/laudohub-api/config"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PaymentService talks to the external checkout collaborator. Checkout
// references are opaque to the core: a provider id plus a URL the patient can
// open to pay. Payment confirmation comes back through the webhook handler.
type PaymentService struct {
	cfg config.PaymentConfig
	log *logrus.Logger
}

func NewPaymentService(cfg config.PaymentConfig, log *logrus.Logger) *PaymentService {
	return &PaymentService{cfg: cfg, log: log}
}

// NewProviderID generates the identifier the provider echoes back on webhooks.
func (s *PaymentService) NewProviderID() string {
	return fmt.Sprintf("chk_%s", strings.ReplaceAll(uuid.New().String(), "-", ""))
}

// CheckoutURL builds the payment link for a checkout.
func (s *PaymentService) CheckoutURL(providerID string) string {
	return fmt.Sprintf("%s/pay/%s", strings.TrimRight(s.cfg.CheckoutBaseURL, "/"), providerID)
}
