package infrastructure

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"wooreport/internal/config"
	shareddomain "wooreport/internal/shared/domain"
)

const senderDisplayName = "WooCommerce Report"

// Sender envoie le rapport quotidien par email avec pièces jointes
// La connexion utilise STARTTLS puis une authentification LOGIN
type Sender struct {
	cfg    config.MailConfig
	logger zerolog.Logger
}

// NewSender crée un expéditeur depuis la configuration email
func NewSender(cfg config.MailConfig, logger zerolog.Logger) *Sender {
	return &Sender{cfg: cfg, logger: logger}
}

// SendReport envoie les fichiers produits aux destinataires TO et CC
// Configuration incomplète: avertissement et retour sans erreur
// Échec d'envoi: journalisé, jamais fatal pour le run
func (s *Sender) SendReport(paths []string, window shareddomain.ReportWindow) error {
	if s.cfg.Sender == "" || s.cfg.Password == "" || s.cfg.SMTPServer == "" || s.cfg.SMTPPort == 0 {
		s.logger.Warn().Msg("email sending skipped due to missing sender or server credentials")
		return nil
	}
	if len(s.cfg.To) == 0 && len(s.cfg.Cc) == 0 {
		s.logger.Warn().Msg("email sending skipped as no TO or CC recipients are specified")
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.Sender, senderDisplayName)
	if len(s.cfg.To) > 0 {
		m.SetHeader("To", s.cfg.To...)
	}
	if len(s.cfg.Cc) > 0 {
		m.SetHeader("Cc", s.cfg.Cc...)
	}
	m.SetHeader("Subject", fmt.Sprintf("گزارش سفارشات ووکامرس - %s", time.Now().Format("2006-01-02")))
	m.SetBody("text/plain", reportBody(window))

	attached := 0
	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			s.logger.Warn().Str("file", path).Msg("attachment not found, email will be sent without it")
			continue
		}
		m.Attach(path)
		attached++
		s.logger.Info().Str("file", filepath.Base(path)).Msg("report attached to email")
	}

	dialer := gomail.NewDialer(s.cfg.SMTPServer, s.cfg.SMTPPort, s.cfg.Sender, s.cfg.Password)
	if err := dialer.DialAndSend(m); err != nil {
		s.logger.Error().Err(err).
			Str("server", s.cfg.SMTPServer).
			Int("port", s.cfg.SMTPPort).
			Msg("email delivery failed")
		return fmt.Errorf("sending report email: %w", err)
	}

	s.logger.Info().
		Str("to", strings.Join(s.cfg.To, ", ")).
		Str("cc", strings.Join(s.cfg.Cc, ", ")).
		Int("attachments", attached).
		Msg("report email sent")
	return nil
}

func reportBody(window shareddomain.ReportWindow) string {
	return fmt.Sprintf(
		"با سلام،\n\nفایل اکسل گزارش سفارشات ووکامرس برای روز گذشته (%s) پیوست شده است.\n\nبا احترام - واحد انفورماتیک",
		window.Jalali().FormatSlash(),
	)
}
