package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"wooreport/internal/config"
	"wooreport/internal/logger"
	mailinfra "wooreport/internal/mail/infrastructure"
	ordersdomain "wooreport/internal/orders/domain"
	ordersinfra "wooreport/internal/orders/infrastructure"
	reportapp "wooreport/internal/report/application"
	shareddomain "wooreport/internal/shared/domain"
)

func main() {
	log := logger.New()

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, relying on process environment")
	}

	cfg := config.Load()

	if err := cfg.ValidateWoo(); err != nil {
		log.Error().Err(err).Msg("missing WooCommerce configuration, aborting")
		os.Exit(1)
	}

	mailConfigValid := true
	if err := cfg.ValidateMail(); err != nil {
		log.Warn().Err(err).Msg("email configuration incomplete, reports will not be emailed")
		mailConfigValid = false
	}

	if err := run(cfg, mailConfigValid, log); err != nil {
		log.Error().Err(err).Msg("batch run terminated with a critical error")
		os.Exit(1)
	}
}

// run exécute le pipeline séquentiel: fetch, normalisation, rapports, email
// Une erreur de fetch est fatale; les échecs par commande ou par artefact
// sont absorbés plus bas avec journalisation
func run(cfg config.Config, mailConfigValid bool, log zerolog.Logger) error {
	window := shareddomain.YesterdayWindow(time.Now())
	log.Info().
		Str("after", window.AfterParam()).
		Str("before", window.BeforeParam()).
		Str("jalali", window.Jalali().FormatSlash()).
		Msg("batch run started")

	client, err := ordersinfra.NewClient(cfg.Woo.BaseURL, cfg.Woo.ConsumerKey, cfg.Woo.ConsumerSecret, log)
	if err != nil {
		return err
	}

	orders, err := client.FetchOrders(context.Background(), ordersinfra.DefaultStatusFilter, window)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		log.Info().Msg("no orders for the previous day, no report or email will be generated")
		return nil
	}

	results := ordersdomain.NormalizeOrders(orders)
	rows, skipped := ordersdomain.PartitionResults(results)
	for _, res := range skipped {
		log.Error().Int64("order_id", res.OrderID).Err(res.Err).Msg("order skipped during normalization")
	}
	if len(rows) == 0 {
		log.Warn().Int("skipped", len(skipped)).Msg("no order could be normalized, nothing to report")
		return nil
	}

	reportSvc := reportapp.NewReportService(cfg.OutputDir, log)
	templateSvc := reportapp.NewTemplateService(cfg.TemplatePath, cfg.OutputDir, log)

	var attachments []string
	if path := reportSvc.BuildReport(rows, window); path != "" {
		attachments = append(attachments, path)
	}
	if path := templateSvc.FillTemplate(rows, window); path != "" {
		attachments = append(attachments, path)
	}

	if len(attachments) == 0 {
		log.Error().Msg("no report file was produced, skipping email sending")
		return nil
	}

	if !mailConfigValid {
		log.Warn().Msg("email configuration incomplete, reports generated but not sent")
		return nil
	}

	sender := mailinfra.NewSender(cfg.Mail, log)
	if err := sender.SendReport(attachments, window); err != nil {
		log.Warn().Msg("reports were generated but email delivery failed")
	}
	return nil
}
