package config

import (
	"reflect"
	"testing"
)

func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("WOOCOMMERCE_BASE_URL", "https://shop.example")
	t.Setenv("WOOCOMMERCE_CONSUMER_KEY", "ck_test")
	t.Setenv("WOOCOMMERCE_CONSUMER_SECRET", "cs_test")
	t.Setenv("EMAIL_SENDER", "reports@example.com")
	t.Setenv("EMAIL_PASSWORD", "secret")
	t.Setenv("EMAIL_RECEIVER_TO", "a@example.com, b@example.com")
	t.Setenv("EMAIL_RECEIVER_CC", "")
	t.Setenv("SMTP_SERVER", "smtp.example.com")
	t.Setenv("SMTP_PORT", "587")
	t.Setenv("OUTPUT_DIR", "")
	t.Setenv("TEMPLATE_PATH", "")
}

func TestLoad(t *testing.T) {
	validEnv(t)
	cfg := Load()

	if cfg.Woo.BaseURL != "https://shop.example" {
		t.Errorf("BaseURL = %q", cfg.Woo.BaseURL)
	}
	if cfg.Mail.SMTPPort != 587 {
		t.Errorf("SMTPPort = %d", cfg.Mail.SMTPPort)
	}
	if want := []string{"a@example.com", "b@example.com"}; !reflect.DeepEqual(cfg.Mail.To, want) {
		t.Errorf("To = %v, want %v", cfg.Mail.To, want)
	}
	if cfg.OutputDir != "." {
		t.Errorf("OutputDir = %q, want default", cfg.OutputDir)
	}
	if cfg.TemplatePath != "tis_template.xlsx" {
		t.Errorf("TemplatePath = %q, want default", cfg.TemplatePath)
	}
}

func TestLoad_PortFallback(t *testing.T) {
	validEnv(t)
	t.Setenv("SMTP_PORT", "not-a-number")

	if got := Load().Mail.SMTPPort; got != 587 {
		t.Errorf("SMTPPort = %d, want default 587", got)
	}
}

func TestValidateWoo(t *testing.T) {
	validEnv(t)
	if err := Load().ValidateWoo(); err != nil {
		t.Errorf("ValidateWoo() unexpected error: %v", err)
	}

	t.Setenv("WOOCOMMERCE_CONSUMER_SECRET", "")
	if err := Load().ValidateWoo(); err == nil {
		t.Error("expected error when consumer secret is missing")
	}
}

func TestValidateMail(t *testing.T) {
	t.Run("configuration complete", func(t *testing.T) {
		validEnv(t)
		if err := Load().ValidateMail(); err != nil {
			t.Errorf("ValidateMail() unexpected error: %v", err)
		}
	})

	t.Run("expediteur manquant", func(t *testing.T) {
		validEnv(t)
		t.Setenv("EMAIL_SENDER", "")
		if err := Load().ValidateMail(); err == nil {
			t.Error("expected error when sender is missing")
		}
	})

	t.Run("aucun destinataire", func(t *testing.T) {
		validEnv(t)
		t.Setenv("EMAIL_RECEIVER_TO", "")
		t.Setenv("EMAIL_RECEIVER_CC", "")
		if err := Load().ValidateMail(); err == nil {
			t.Error("expected error when no recipient is specified")
		}
	})

	t.Run("cc uniquement", func(t *testing.T) {
		validEnv(t)
		t.Setenv("EMAIL_RECEIVER_TO", "")
		t.Setenv("EMAIL_RECEIVER_CC", "cc@example.com")
		if err := Load().ValidateMail(); err != nil {
			t.Errorf("ValidateMail() unexpected error with CC only: %v", err)
		}
	})
}

func TestSplitRecipients(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"liste simple", "a@x.com,b@x.com", []string{"a@x.com", "b@x.com"}},
		{"espaces superflus", " a@x.com , b@x.com ", []string{"a@x.com", "b@x.com"}},
		{"elements vides ignores", "a@x.com,,", []string{"a@x.com"}},
		{"chaine vide", "", nil},
		{"espaces seuls", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitRecipients(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitRecipients(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
