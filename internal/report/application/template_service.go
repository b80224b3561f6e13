package application

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"wooreport/internal/orders/domain"
	shareddomain "wooreport/internal/shared/domain"
)

// Constantes du gabarit de facture réglementaire
// Le gabarit est un fichier figé: seules les lignes d'articles sont écrites
const (
	templateSheet    = "factor"
	templatePrefix   = "tis"
	templateStartRow = 14

	templateColDescription = "B"
	templateColQuantity    = "C"
	templateColUnit        = "D"
	templateColUnitPrice   = "E"
	templateColDiscount    = "F"
	templateColVATRate     = "G"
	templateColBuyerName   = "H"

	templateUnitLabel = "عدد"
	templateVATRate   = 10
)

// TemplateService remplit le gabarit de facture pour les acheteurs particuliers
type TemplateService struct {
	templatePath string
	outputDir    string
	logger       zerolog.Logger
}

// NewTemplateService crée un nouveau service de remplissage de gabarit
func NewTemplateService(templatePath, outputDir string, logger zerolog.Logger) *TemplateService {
	return &TemplateService{
		templatePath: templatePath,
		outputDir:    outputDir,
		logger:       logger,
	}
}

// FillTemplate copie le gabarit et y écrit une ligne par article survivant
// des commandes de particuliers; les commandes de sociétés sont ignorées
// Retourne une chaîne vide quand aucun fichier n'est produit (gabarit
// absent, feuille absente, erreur d'écriture): le rapport principal n'est
// jamais affecté
func (s *TemplateService) FillTemplate(rows []domain.ReportRow, window shareddomain.ReportWindow) string {
	f, err := excelize.OpenFile(s.templatePath)
	if err != nil {
		s.logger.Warn().Err(err).Str("template", s.templatePath).Msg("invoice template not available, skipping")
		return ""
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(templateSheet); err != nil || idx < 0 {
		s.logger.Warn().Str("template", s.templatePath).Str("sheet", templateSheet).Msg("template sheet not found, skipping")
		return ""
	}

	path := s.nextAvailablePath(window)

	if err := s.writeRows(f, rows); err != nil {
		s.logger.Error().Err(err).Str("file", filepath.Base(path)).Msg("template fill failed")
		return ""
	}

	if err := f.SaveAs(path); err != nil {
		s.logger.Error().Err(err).Str("file", filepath.Base(path)).Msg("template save failed")
		return ""
	}

	s.logger.Info().Str("file", filepath.Base(path)).Msg("template report generated")
	return path
}

func (s *TemplateService) writeRows(f *excelize.File, rows []domain.ReportRow) error {
	rowIdx := templateStartRow
	for _, row := range rows {
		if row.Buyer.IsCorporate() {
			continue
		}
		for _, item := range row.Items {
			cells := []struct {
				col   string
				value any
			}{
				{templateColDescription, item.Name},
				{templateColQuantity, item.Quantity},
				{templateColUnit, templateUnitLabel},
				{templateColUnitPrice, int(math.Round(item.PreTaxUnit))},
				{templateColDiscount, 0},
				{templateColVATRate, templateVATRate},
				{templateColBuyerName, row.Buyer.DisplayName()},
			}
			for _, c := range cells {
				cell := fmt.Sprintf("%s%d", c.col, rowIdx)
				if err := f.SetCellValue(templateSheet, cell, c.value); err != nil {
					return err
				}
			}
			rowIdx++
		}
	}
	return nil
}

// nextAvailablePath choisit un nom de fichier libre pour la date du jour
// Un run répété le même jour reçoit un suffixe numérique incrémental
// plutôt que d'écraser le fichier précédent
func (s *TemplateService) nextAvailablePath(window shareddomain.ReportWindow) string {
	base := fmt.Sprintf("%s-%s", templatePrefix, window.Jalali().FormatCompact())
	path := filepath.Join(s.outputDir, base+".xlsx")
	for n := 1; fileExists(path); n++ {
		path = filepath.Join(s.outputDir, fmt.Sprintf("%s_%d.xlsx", base, n))
	}
	return path
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
