package infrastructure

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"wooreport/internal/config"
	"wooreport/internal/logger"
	shareddomain "wooreport/internal/shared/domain"
)

func testWindow() shareddomain.ReportWindow {
	return shareddomain.YesterdayWindow(time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC))
}

// TestSender_SendReport_IncompleteCredentials vérifie le no-op avec
// avertissement quand les identifiants d'envoi sont incomplets
func TestSender_SendReport_IncompleteCredentials(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.MailConfig
	}{
		{"expediteur manquant", config.MailConfig{Password: "p", SMTPServer: "smtp.example.com", SMTPPort: 587, To: []string{"a@x.com"}}},
		{"mot de passe manquant", config.MailConfig{Sender: "s@x.com", SMTPServer: "smtp.example.com", SMTPPort: 587, To: []string{"a@x.com"}}},
		{"serveur manquant", config.MailConfig{Sender: "s@x.com", Password: "p", SMTPPort: 587, To: []string{"a@x.com"}}},
		{"port manquant", config.MailConfig{Sender: "s@x.com", Password: "p", SMTPServer: "smtp.example.com", To: []string{"a@x.com"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			sender := NewSender(tt.cfg, logger.NewWithWriter(&buf))

			if err := sender.SendReport([]string{"report.xlsx"}, testWindow()); err != nil {
				t.Errorf("SendReport() = %v, want nil (no-op)", err)
			}
			if !strings.Contains(buf.String(), "skipped") {
				t.Errorf("expected a skip warning in logs, got: %s", buf.String())
			}
		})
	}
}

func TestSender_SendReport_NoRecipients(t *testing.T) {
	var buf bytes.Buffer
	sender := NewSender(config.MailConfig{
		Sender:     "s@x.com",
		Password:   "p",
		SMTPServer: "smtp.example.com",
		SMTPPort:   587,
	}, logger.NewWithWriter(&buf))

	if err := sender.SendReport([]string{"report.xlsx"}, testWindow()); err != nil {
		t.Errorf("SendReport() = %v, want nil (no-op)", err)
	}
	if !strings.Contains(buf.String(), "recipients") {
		t.Errorf("expected a recipient warning in logs, got: %s", buf.String())
	}
}

func TestReportBody_NamesJalaliDate(t *testing.T) {
	body := reportBody(testWindow())

	if !strings.Contains(body, "1404/06/09") {
		t.Errorf("body does not mention the jalali report date: %q", body)
	}
}
