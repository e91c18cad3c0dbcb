package notification

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/cosmoracle/booking-api/internal/config"
	"github.com/cosmoracle/booking-api/internal/model"
	"github.com/cosmoracle/booking-api/pkg/metrics"
)

const questionExcerptLen = 100

// Dialer is satisfied by *gomail.Dialer; tests substitute their own.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Service turns a just-created booking into best-effort outbound
// notifications. Notify never fails: delivery problems are captured in the
// result, not returned as errors.
type Service interface {
	Notify(ctx context.Context, n *model.BookingNotification) *model.NotificationResult
}

type service struct {
	cfg     config.NotificationConfig
	dialer  Dialer
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

func NewService(cfg config.NotificationConfig, m *metrics.Metrics, logger zerolog.Logger) Service {
	var dialer Dialer
	if cfg.EmailEnabled() {
		dialer = gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
	}
	return &service{cfg: cfg, dialer: dialer, metrics: m, logger: logger}
}

// NewServiceWithDialer injects a dialer directly. Used by tests.
func NewServiceWithDialer(cfg config.NotificationConfig, dialer Dialer, m *metrics.Metrics, logger zerolog.Logger) Service {
	return &service{cfg: cfg, dialer: dialer, metrics: m, logger: logger}
}

func (s *service) Notify(ctx context.Context, n *model.BookingNotification) *model.NotificationResult {
	summary := s.composeSummary(n)

	// The deep link is the guaranteed side channel: always computed and
	// returned regardless of the email outcome.
	whatsappURL := fmt.Sprintf("https://wa.me/%s?text=%s", s.cfg.AdminPhone, url.QueryEscape(summary))

	result := &model.NotificationResult{
		Success:     true,
		Message:     "Notification processed successfully",
		WhatsAppURL: whatsappURL,
		EmailTo:     s.cfg.AdminEmail,
	}

	if s.dialer == nil {
		s.logger.Debug().Msg("email credential not configured, skipping email notification")
		s.metrics.NotificationsEmail.WithLabelValues("skipped").Inc()
	} else if err := s.sendEmail(n); err != nil {
		s.logger.Error().Err(err).Str("to", s.cfg.AdminEmail).Msg("email notification failed")
		s.metrics.NotificationsEmail.WithLabelValues("failed").Inc()
	} else {
		result.EmailSent = true
		s.metrics.NotificationsEmail.WithLabelValues("sent").Inc()
	}

	s.metrics.NotificationsSent.WithLabelValues("ok").Inc()
	return result
}

func (s *service) composeSummary(n *model.BookingNotification) string {
	dob := n.DateOfBirth
	if dob == "" {
		dob = "Not provided"
	}
	question := n.QuestionConcern
	if question == "" {
		question = "Not provided"
	} else if len([]rune(question)) > questionExcerptLen {
		question = string([]rune(question)[:questionExcerptLen])
	}

	return fmt.Sprintf("🌟 New CosmOracle Booking!\n\n"+
		"👤 Name: %s\n"+
		"📱 Phone: %s\n"+
		"📋 Plan: %s\n"+
		"🎂 DOB: %s\n"+
		"❓ Question: %s...\n\n"+
		"Please verify payment and contact the client.",
		n.FullName, n.Phone, n.PreferredPlan, dob, question)
}

func (s *service) sendEmail(n *model.BookingNotification) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.FromAddress, s.cfg.FromName))
	m.SetHeader("To", s.cfg.AdminEmail)
	m.SetHeader("Subject", fmt.Sprintf("🌟 New Booking: %s - %s", n.FullName, n.PreferredPlan))
	m.SetBody("text/html", s.composeEmailBody(n))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send booking email: %w", err)
	}
	return nil
}

func (s *service) composeEmailBody(n *model.BookingNotification) string {
	dob := n.DateOfBirth
	if dob == "" {
		dob = "Not provided"
	}
	question := n.QuestionConcern
	if question == "" {
		question = "Not provided"
	}

	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #7c3aed; border-bottom: 2px solid #7c3aed; padding-bottom: 10px;">🌟 New CosmOracle Booking!</h1>
  <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p style="margin: 10px 0;"><strong>👤 Name:</strong> %s</p>
    <p style="margin: 10px 0;"><strong>📱 Phone:</strong> %s</p>
    <p style="margin: 10px 0;"><strong>📋 Plan:</strong> %s</p>
    <p style="margin: 10px 0;"><strong>🎂 Date of Birth:</strong> %s</p>
    <p style="margin: 10px 0;"><strong>❓ Question/Concern:</strong></p>
    <p style="background: white; padding: 15px; border-radius: 4px; border-left: 4px solid #7c3aed;">%s</p>
  </div>
  <div style="background: #fff3cd; padding: 15px; border-radius: 8px; margin: 20px 0;">
    <p style="margin: 0; color: #856404;">⚠️ <strong>Action Required:</strong> Please verify payment screenshot and contact the client.</p>
  </div>
  <p style="color: #666; font-size: 12px; margin-top: 30px;">This is an automated notification from the CosmOracle booking system.</p>
</div>`, n.FullName, n.Phone, n.PreferredPlan, dob, question)
}
