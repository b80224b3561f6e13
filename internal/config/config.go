package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// WooConfig regroupe les identifiants de l'API WooCommerce
type WooConfig struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
}

// MailConfig regroupe les paramètres d'envoi du rapport par email
type MailConfig struct {
	Sender     string
	Password   string
	SMTPServer string
	SMTPPort   int
	To         []string
	Cc         []string
}

// Config est la configuration complète du batch, construite une seule
// fois au démarrage puis passée explicitement aux composants
type Config struct {
	Woo          WooConfig
	Mail         MailConfig
	OutputDir    string
	TemplatePath string
}

// Load construit la configuration depuis les variables d'environnement
func Load() Config {
	return Config{
		Woo: WooConfig{
			BaseURL:        os.Getenv("WOOCOMMERCE_BASE_URL"),
			ConsumerKey:    os.Getenv("WOOCOMMERCE_CONSUMER_KEY"),
			ConsumerSecret: os.Getenv("WOOCOMMERCE_CONSUMER_SECRET"),
		},
		Mail: MailConfig{
			Sender:     os.Getenv("EMAIL_SENDER"),
			Password:   os.Getenv("EMAIL_PASSWORD"),
			SMTPServer: os.Getenv("SMTP_SERVER"),
			SMTPPort:   getEnvInt("SMTP_PORT", 587),
			To:         SplitRecipients(os.Getenv("EMAIL_RECEIVER_TO")),
			Cc:         SplitRecipients(os.Getenv("EMAIL_RECEIVER_CC")),
		},
		OutputDir:    getEnv("OUTPUT_DIR", "."),
		TemplatePath: getEnv("TEMPLATE_PATH", "tis_template.xlsx"),
	}
}

// ValidateWoo vérifie la configuration WooCommerce (fatale si incomplète)
func (c Config) ValidateWoo() error {
	if c.Woo.BaseURL == "" || c.Woo.ConsumerKey == "" || c.Woo.ConsumerSecret == "" {
		return errors.New("missing one or more WooCommerce API environment variables")
	}
	return nil
}

// ValidateMail vérifie la configuration email
// Une configuration incomplète est un avertissement, jamais une erreur fatale
func (c Config) ValidateMail() error {
	if c.Mail.Sender == "" || c.Mail.Password == "" || c.Mail.SMTPServer == "" || c.Mail.SMTPPort == 0 {
		return errors.New("missing email sender or server environment variables")
	}
	if len(c.Mail.To) == 0 && len(c.Mail.Cc) == 0 {
		return errors.New("no TO or CC recipients specified")
	}
	return nil
}

// SplitRecipients découpe une liste d'adresses séparées par des virgules
func SplitRecipients(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	recipients := make([]string, 0, len(parts))
	for _, part := range parts {
		if addr := strings.TrimSpace(part); addr != "" {
			recipients = append(recipients, addr)
		}
	}
	return recipients
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
