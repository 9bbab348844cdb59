package service

import (
	"strings"
	"testing"

	"github.com/laudohub/laudohub-api/config"

	"github.com/sirupsen/logrus"
)

func TestNewProviderID(t *testing.T) {
	s := NewPaymentService(config.PaymentConfig{CheckoutBaseURL: "https://checkout.example.com"}, logrus.New())

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := s.NewProviderID()
		if !strings.HasPrefix(id, "chk_") {
			t.Fatalf("provider id %q missing chk_ prefix", id)
		}
		if strings.Contains(id, "-") {
			t.Fatalf("provider id %q contains dashes", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate provider id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestCheckoutURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		want string
	}{
		{"plain base", "https://checkout.example.com", "https://checkout.example.com/pay/chk_abc"},
		{"trailing slash", "https://checkout.example.com/", "https://checkout.example.com/pay/chk_abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewPaymentService(config.PaymentConfig{CheckoutBaseURL: tt.base}, logrus.New())
			if got := s.CheckoutURL("chk_abc"); got != tt.want {
				t.Errorf("CheckoutURL = %q, want %q", got, tt.want)
			}
		})
	}
}
