package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/laudohub/laudohub-api/config"
	"github.com/laudohub/laudohub-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// Message templates for collection and reminder flows. Placeholders use the
// {chave} form and are filled by RenderMessage.
const (
	paymentRequestTemplate = "Olá {nome}! Seu laudo \"{titulo}\" está pronto. " +
		"Para liberá-lo, efetue o pagamento de R$ {valor} pelo link: {link}"
	appointmentReminderTemplate = "Oi {nome}! Lembrete do seu compromisso \"{titulo}\" " +
		"em {data}. Até lá! 😊"
)

// WhatsAppProvider sends one message to one phone number. Implementations are
// external gateways; LogProvider is the default used in development.
type WhatsAppProvider interface {
	Send(ctx context.Context, phone, message string) error
}

// LogProvider writes outbound messages to the log instead of delivering them.
type LogProvider struct {
	log *logrus.Logger
}

func NewLogProvider(log *logrus.Logger) *LogProvider {
	return &LogProvider{log: log}
}

func (p *LogProvider) Send(ctx context.Context, phone, message string) error {
	p.log.WithFields(logrus.Fields{
		"phone":   phone,
		"message": message,
	}).Info("WhatsApp message (dry run)")
	return nil
}

// WhatsAppService renders and dispatches collection and reminder messages.
type WhatsAppService struct {
	provider WhatsAppProvider
	cfg      config.WhatsAppConfig
	log      *logrus.Logger
}

func NewWhatsAppService(provider WhatsAppProvider, cfg config.WhatsAppConfig, log *logrus.Logger) *WhatsAppService {
	return &WhatsAppService{provider: provider, cfg: cfg, log: log}
}

// RenderMessage substitutes {chave} placeholders. Unknown placeholders are
// left untouched so a template typo is visible instead of silently dropped.
func RenderMessage(tpl string, vars map[string]string) string {
	out := tpl
	for key, value := range vars {
		out = strings.ReplaceAll(out, "{"+key+"}", value)
	}
	return out
}

// SendPaymentRequest sends the checkout link for a pending report to the
// patient.
func (s *WhatsAppService) SendPaymentRequest(ctx context.Context, patient *entity.Patient, report *entity.Report, checkoutURL, phone string) error {
	if phone == "" {
		phone = patient.Phone
	}

	message := RenderMessage(paymentRequestTemplate, map[string]string{
		"nome":   patient.Name,
		"titulo": report.Title,
		"valor":  report.Price.StringFixed(2),
		"link":   checkoutURL,
	})

	if err := s.provider.Send(ctx, phone, message); err != nil {
		return fmt.Errorf("send payment request for report %s: %w", report.ID, err)
	}

	s.log.Infof("Payment request sent: report=%s, patient=%s", report.ID, patient.ID)
	return nil
}

// SendAppointmentReminder sends a reminder for an upcoming appointment.
func (s *WhatsAppService) SendAppointmentReminder(ctx context.Context, appointment *entity.Appointment) error {
	message := RenderMessage(appointmentReminderTemplate, map[string]string{
		"nome":   appointment.Patient.Name,
		"titulo": appointment.Title,
		"data":   appointment.StartTime.Format("02/01/2006 15:04"),
	})

	if err := s.provider.Send(ctx, appointment.Patient.Phone, message); err != nil {
		return fmt.Errorf("send reminder for appointment %s: %w", appointment.ID, err)
	}

	s.log.Infof("Appointment reminder sent: appointment=%s", appointment.ID)
	return nil
}
