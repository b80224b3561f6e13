package application

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"wooreport/internal/orders/domain"
	shareddomain "wooreport/internal/shared/domain"
)

// Mise en forme du rapport principal (identique au rapport historique)
const (
	reportSheet      = "Sheet1"
	reportPrefix     = "site_Orders"
	headerFillColor  = "CCE0F0"
	itemsFillColor   = "F0FFF0"
	maxColumnWidth   = 70.0
	columnWidthNudge = 2.0
)

// Position fixe de chaque colonne du rapport
const (
	colOrderNumber = iota
	colOrderDate
	colFirstName
	colLastName
	colBuyerType
	colCompanyName
	colEconomicCode
	colNationalID
	colAddress
	colCity
	colPostcode
	colPhone
	colPaymentMethod
	colDiscountTotal
	colGrossTotal
	colPreTaxTotal
	colVATTotal
	colShippingMethod
	colShippingTotal
	colRefundTotal
	colNetTotal
	colItemNames
	colItemQuantities
	colItemUnitPrices
	colItemsCostSum
	columnCount
)

// En-têtes du rapport, dans l'ordre des colonnes
var reportHeaders = [columnCount]string{
	colOrderNumber:    "شماره سفارش",
	colOrderDate:      "تاریخ سفارش (شمسی)",
	colFirstName:      "نام",
	colLastName:       "نام خانوادگی",
	colBuyerType:      "نوع خریدار",
	colCompanyName:    "نام شرکت",
	colEconomicCode:   "کد اقتصادی",
	colNationalID:     "شناسه ملی",
	colAddress:        "آدرس",
	colCity:           "شهر",
	colPostcode:       "کد پستی",
	colPhone:          "تلفن",
	colPaymentMethod:  "عنوان روش پرداخت",
	colDiscountTotal:  "مبلغ تخفیف",
	colGrossTotal:     "مجموع مبلغ سفارش",
	colPreTaxTotal:    "مبلغ بدون مالیات",
	colVATTotal:       "مالیات بر ارزش افزوده",
	colShippingMethod: "روش حمل و نقل",
	colShippingTotal:  "مبلغ حمل و نقل",
	colRefundTotal:    "مبلغ استرداد کل سفارش",
	colNetTotal:       "مجموع نهایی سفارش (پس از کسر استرداد)",
	colItemNames:      "نام آیتم‌ها",
	colItemQuantities: "تعداد آیتم‌ها (- استرداد)",
	colItemUnitPrices: "قیمت واحد / مالیات آیتم‌ها",
	colItemsCostSum:   "مجموع هزینه آیتم‌ها",
}

// Colonnes multi-lignes qui reçoivent retour à la ligne + alignement haut
var wrappedColumns = [...]int{colItemNames, colItemQuantities, colItemUnitPrices, colAddress}

// ReportService construit le rapport principal au format xlsx
type ReportService struct {
	outputDir string
	logger    zerolog.Logger
}

// NewReportService crée un nouveau service de rapport
func NewReportService(outputDir string, logger zerolog.Logger) *ReportService {
	return &ReportService{
		outputDir: outputDir,
		logger:    logger,
	}
}

// BuildReport génère le fichier du rapport et retourne son chemin
// Retourne une chaîne vide quand la génération échoue: l'échec est
// journalisé ici et ne remonte jamais à l'orchestrateur
func (s *ReportService) BuildReport(rows []domain.ReportRow, window shareddomain.ReportWindow) string {
	filename := fmt.Sprintf("%s_%s.xlsx", reportPrefix, window.Jalali().FormatCompact())
	path := filepath.Join(s.outputDir, filename)

	if err := s.writeReport(rows, path); err != nil {
		s.logger.Error().Err(err).Str("file", filename).Msg("report generation failed")
		return ""
	}

	s.logger.Info().Str("file", filename).Int("rows", len(rows)).Msg("report generated")
	return path
}

func (s *ReportService) writeReport(rows []domain.ReportRow, path string) error {
	// Tri chronologique: le format YYYY/MM/DD HH:MM:SS rend le tri
	// lexical équivalent au tri par date
	sorted := make([]domain.ReportRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OrderDate < sorted[j].OrderDate
	})

	f := excelize.NewFile()
	defer f.Close()

	for col := 0; col < columnCount; col++ {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(reportSheet, cell, reportHeaders[col]); err != nil {
			return err
		}
	}

	for i, row := range sorted {
		values := rowValues(row)
		for col := 0; col < columnCount; col++ {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(reportSheet, cell, values[col]); err != nil {
				return err
			}
		}
	}

	if err := s.applyStyles(f, sorted); err != nil {
		return err
	}

	return f.SaveAs(path)
}

// applyStyles reproduit la mise en forme du rapport historique:
// en-tête gras centré sur fond bleu clair, largeurs ajustées à la plus
// longue ligne de chaque colonne, volet figé sous l'en-tête, colonnes
// multi-lignes en retour à la ligne, articles sur fond vert clair
func (s *ReportService) applyStyles(f *excelize.File, rows []domain.ReportRow) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return err
	}

	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return err
	}

	itemNamesStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{itemsFillColor}, Pattern: 1},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return err
	}

	lastHeader, err := excelize.CoordinatesToCellName(columnCount, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(reportSheet, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	if len(rows) > 0 {
		lastRow := len(rows) + 1
		for _, col := range wrappedColumns {
			style := wrapStyle
			if col == colItemNames {
				style = itemNamesStyle
			}
			top, err := excelize.CoordinatesToCellName(col+1, 2)
			if err != nil {
				return err
			}
			bottom, err := excelize.CoordinatesToCellName(col+1, lastRow)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(reportSheet, top, bottom, style); err != nil {
				return err
			}
		}
	}

	for col := 0; col < columnCount; col++ {
		width := columnWidth(col, rows)
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(reportSheet, name, name, width); err != nil {
			return err
		}
	}

	return f.SetPanes(reportSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// columnWidth ajuste la largeur à la plus longue ligne de la colonne
// Les cellules multi-lignes sont mesurées ligne par ligne, pas en bloc
func columnWidth(col int, rows []domain.ReportRow) float64 {
	max := utf8.RuneCountInString(reportHeaders[col])
	for _, row := range rows {
		text := fmt.Sprint(rowValues(row)[col])
		for _, line := range strings.Split(text, "\n") {
			if n := utf8.RuneCountInString(line); n > max {
				max = n
			}
		}
	}
	width := float64(max) + columnWidthNudge
	if width > maxColumnWidth {
		width = maxColumnWidth
	}
	return width
}

// rowValues projette une ligne normalisée sur les colonnes du rapport
func rowValues(row domain.ReportRow) [columnCount]any {
	buyerType := "حقیقی"
	if row.Buyer.IsCorporate() {
		buyerType = "حقوقی"
	}
	return [columnCount]any{
		colOrderNumber:    row.OrderNumber,
		colOrderDate:      row.OrderDate,
		colFirstName:      row.Buyer.FirstName(),
		colLastName:       row.Buyer.LastName(),
		colBuyerType:      buyerType,
		colCompanyName:    row.Buyer.CompanyName(),
		colEconomicCode:   row.Buyer.EconomicCode(),
		colNationalID:     row.Buyer.NationalID(),
		colAddress:        row.Address,
		colCity:           row.City,
		colPostcode:       row.Postcode,
		colPhone:          row.Phone,
		colPaymentMethod:  row.PaymentMethod,
		colDiscountTotal:  row.DiscountTotal,
		colGrossTotal:     row.GrossTotal,
		colPreTaxTotal:    row.PreTaxTotal,
		colVATTotal:       row.VATTotal,
		colShippingMethod: row.ShippingMethod,
		colShippingTotal:  row.ShippingTotal,
		colRefundTotal:    row.RefundTotal,
		colNetTotal:       row.NetTotal,
		colItemNames:      row.ItemNames,
		colItemQuantities: row.ItemQuantities,
		colItemUnitPrices: row.ItemUnitPrices,
		colItemsCostSum:   row.ItemsCostSum,
	}
}
