package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/laudohub/laudohub-api/config"
	"github.com/laudohub/laudohub-api/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type recordingProvider struct {
	phone   string
	message string
}

func (p *recordingProvider) Send(ctx context.Context, phone, message string) error {
	p.phone = phone
	p.message = message
	return nil
}

func TestRenderMessage(t *testing.T) {
	tests := []struct {
		name string
		tpl  string
		vars map[string]string
		want string
	}{
		{
			name: "replaces all placeholders",
			tpl:  "Olá {nome}, pague R$ {valor}",
			vars: map[string]string{"nome": "Maria", "valor": "150.00"},
			want: "Olá Maria, pague R$ 150.00",
		},
		{
			name: "repeated placeholder",
			tpl:  "{nome}, confirme: {nome}",
			vars: map[string]string{"nome": "João"},
			want: "João, confirme: João",
		},
		{
			name: "unknown placeholder stays visible",
			tpl:  "Olá {nome}, veja {link}",
			vars: map[string]string{"nome": "Ana"},
			want: "Olá Ana, veja {link}",
		},
		{
			name: "no placeholders",
			tpl:  "Mensagem fixa",
			vars: map[string]string{"nome": "Ana"},
			want: "Mensagem fixa",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderMessage(tt.tpl, tt.vars); got != tt.want {
				t.Errorf("RenderMessage = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSendPaymentRequest(t *testing.T) {
	provider := &recordingProvider{}
	s := NewWhatsAppService(provider, config.WhatsAppConfig{}, logrus.New())

	patient := &entity.Patient{Name: "Maria Silva", Phone: "+5511999990000"}
	report := &entity.Report{Title: "Exame de Sangue - Maria Silva", Price: decimal.NewFromFloat(150)}

	if err := s.SendPaymentRequest(context.Background(), patient, report, "https://checkout.example.com/pay/chk_abc", ""); err != nil {
		t.Fatalf("SendPaymentRequest failed: %v", err)
	}

	if provider.phone != "+5511999990000" {
		t.Errorf("sent to %q, want patient phone", provider.phone)
	}
	for _, fragment := range []string{"Maria Silva", "Exame de Sangue - Maria Silva", "150.00", "https://checkout.example.com/pay/chk_abc"} {
		if !strings.Contains(provider.message, fragment) {
			t.Errorf("message %q missing %q", provider.message, fragment)
		}
	}
}

func TestSendPaymentRequestPhoneOverride(t *testing.T) {
	provider := &recordingProvider{}
	s := NewWhatsAppService(provider, config.WhatsAppConfig{}, logrus.New())

	patient := &entity.Patient{Name: "Maria", Phone: "+5511999990000"}
	report := &entity.Report{Title: "Raio-X - Maria", Price: decimal.NewFromFloat(120)}

	if err := s.SendPaymentRequest(context.Background(), patient, report, "https://x/pay/1", "+5521888880000"); err != nil {
		t.Fatalf("SendPaymentRequest failed: %v", err)
	}
	if provider.phone != "+5521888880000" {
		t.Errorf("sent to %q, want override phone", provider.phone)
	}
}

func TestSendAppointmentReminder(t *testing.T) {
	provider := &recordingProvider{}
	s := NewWhatsAppService(provider, config.WhatsAppConfig{}, logrus.New())

	appointment := &entity.Appointment{
		Title:     "Avaliação Ortodôntica",
		StartTime: time.Date(2026, time.March, 10, 14, 30, 0, 0, time.UTC),
		Patient:   entity.Patient{Name: "Carlos", Phone: "+5511888880000"},
	}

	if err := s.SendAppointmentReminder(context.Background(), appointment); err != nil {
		t.Fatalf("SendAppointmentReminder failed: %v", err)
	}

	if provider.phone != "+5511888880000" {
		t.Errorf("sent to %q, want patient phone", provider.phone)
	}
	for _, fragment := range []string{"Carlos", "Avaliação Ortodôntica", "10/03/2026 14:30"} {
		if !strings.Contains(provider.message, fragment) {
			t.Errorf("message %q missing %q", provider.message, fragment)
		}
	}
}
