package domain

import (
	"errors"
	"time"
)

// ReportWindow représente la fenêtre de reporting [after, before)
// Value Object immuable: les bornes sont fixées à la création
type ReportWindow struct {
	after  time.Time
	before time.Time
}

// NewReportWindow crée une fenêtre demi-ouverte avec validation
func NewReportWindow(after, before time.Time) (ReportWindow, error) {
	if !after.Before(before) {
		return ReportWindow{}, errors.New("window start must precede window end")
	}
	return ReportWindow{after: after, before: before}, nil
}

// YesterdayWindow crée la fenêtre du jour précédent (minuit à minuit)
// Seule la date compte: l'heure d'exécution n'influence pas la fenêtre
func YesterdayWindow(now time.Time) ReportWindow {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return ReportWindow{
		after:  midnight.AddDate(0, 0, -1),
		before: midnight,
	}
}

// After retourne la borne inférieure (incluse)
func (w ReportWindow) After() time.Time {
	return w.after
}

// Before retourne la borne supérieure (exclue)
func (w ReportWindow) Before() time.Time {
	return w.before
}

// AfterParam retourne la borne inférieure au format de l'API WooCommerce
func (w ReportWindow) AfterParam() string {
	return w.after.Format(WooTimeLayout)
}

// BeforeParam retourne la borne supérieure au format de l'API WooCommerce
func (w ReportWindow) BeforeParam() string {
	return w.before.Format(WooTimeLayout)
}

// Jalali retourne la date persane du jour couvert par la fenêtre
func (w ReportWindow) Jalali() JalaliDate {
	return JalaliFromTime(w.after)
}
