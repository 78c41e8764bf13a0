// Package notifier implements the caregiver notification dispatcher: a
// best-effort, single-attempt email relay call for abnormal readings.
package notifier

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/vladimiradmaev/glucose-tracker/internal/config"
	"github.com/vladimiradmaev/glucose-tracker/internal/domain"
	"github.com/vladimiradmaev/glucose-tracker/internal/logger"
	"github.com/vladimiradmaev/glucose-tracker/internal/notices"
)

const sendPath = "/api/v1.0/email/send"

const notePlaceholder = "No notes provided"

// Mailer sends caregiver notifications through an EmailJS-compatible relay.
// Delivery is one unretried attempt: no queue, no backoff, no receipt
// tracking. A duplicate call for the same reading sends a duplicate email.
type Mailer struct {
	client     *resty.Client
	serviceID  string
	templateID string
	publicKey  string
	senderName string
	notices    notices.Sink
}

// relayRequest is the relay's flat send payload.
type relayRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// NewMailer creates a mailer from relay configuration.
func NewMailer(cfg config.MailerConfig, sink notices.Sink) *Mailer {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)

	return &Mailer{
		client:     client,
		serviceID:  cfg.ServiceID,
		templateID: cfg.TemplateID,
		publicKey:  cfg.PublicKey,
		senderName: cfg.SenderName,
		notices:    sink,
	}
}

// SendCaregiverNotification attempts one delivery of an abnormal-reading
// alert. It returns false without contacting the relay when no caregiver
// email is configured or email notifications are disabled; that case is a
// silent no-op, not an error. Any delivery failure is surfaced as a
// user-facing notice and never affects the already-saved reading.
func (m *Mailer) SendCaregiverNotification(ctx context.Context, profile domain.UserProfile, reading domain.Reading) bool {
	if profile.CaregiverEmail == "" || !profile.EmailNotificationsEnabled {
		logger.Debug("caregiver notification skipped",
			"caregiver_configured", profile.CaregiverEmail != "",
			"email_notifications_enabled", profile.EmailNotificationsEnabled)
		return false
	}

	if m.serviceID == "" || m.templateID == "" || m.publicKey == "" {
		logger.Warn("email relay not configured, notification dropped", "reading_id", reading.ID)
		m.postFailure()
		return false
	}

	note := reading.Note
	if note == "" {
		note = notePlaceholder
	}

	req := relayRequest{
		ServiceID:  m.serviceID,
		TemplateID: m.templateID,
		UserID:     m.publicKey,
		TemplateParams: map[string]string{
			"to_email":     profile.CaregiverEmail,
			"subject":      Subject(profile.Name, reading.Status),
			"patient_name": profile.Name,
			"status":       string(reading.Status),
			"value":        fmt.Sprintf("%g mg/dL", reading.Value),
			"date":         reading.Date,
			"time":         reading.Time,
			"test_type":    reading.TestType,
			"note":         note,
			"from_name":    m.senderName,
		},
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(&req).
		Post(sendPath)
	if err != nil {
		logger.Error("caregiver notification request failed", "error", err, "reading_id", reading.ID)
		m.postFailure()
		return false
	}
	if resp.StatusCode() != http.StatusOK {
		logger.Error("email relay rejected notification",
			"status_code", resp.StatusCode(), "response", resp.String(), "reading_id", reading.ID)
		m.postFailure()
		return false
	}

	logger.Info("caregiver notification sent",
		"caregiver_email", profile.CaregiverEmail, "status", reading.Status, "reading_id", reading.ID)
	m.notices.Post(notices.Notice{
		Title:   "Caregiver Notified",
		Message: fmt.Sprintf("An alert email was sent to %s.", profile.CaregiverEmail),
		Level:   notices.LevelInfo,
	})
	return true
}

func (m *Mailer) postFailure() {
	m.notices.Post(notices.Notice{
		Title:   "Notification Failed",
		Message: "Could not send the caregiver alert email. Your reading is still saved.",
		Level:   notices.LevelDestructive,
	})
}

// Subject builds the severity-specific subject line for an alert email.
func Subject(patientName string, status domain.Status) string {
	if status == domain.StatusHigh {
		return fmt.Sprintf("Urgent: High Blood Sugar Reading for %s", patientName)
	}
	return fmt.Sprintf("Alert: Low Blood Sugar Reading for %s", patientName)
}
