package application

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"wooreport/internal/logger"
	"wooreport/internal/orders/domain"
)

// writeTemplateFixture crée un gabarit minimal avec la feuille attendue
func writeTemplateFixture(t *testing.T, dir string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	if _, err := f.NewSheet(templateSheet); err != nil {
		t.Fatalf("NewSheet() error = %v", err)
	}
	if err := f.SetCellValue(templateSheet, "B2", "صورتحساب فروش کالا و خدمات"); err != nil {
		t.Fatalf("SetCellValue() error = %v", err)
	}

	path := filepath.Join(dir, "tis_template.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs() error = %v", err)
	}
	return path
}

func corporateRow(orderNumber string) domain.ReportRow {
	row := sampleRow(orderNumber, "1404/06/09 09:00:00")
	row.Buyer = domain.NewCorporateBuyer("شرکت نمونه", "411111111111", "10101234567")
	return row
}

func TestTemplateService_FillTemplate(t *testing.T) {
	dir := t.TempDir()
	templatePath := writeTemplateFixture(t, dir)
	svc := NewTemplateService(templatePath, dir, logger.NewWithWriter(io.Discard))

	rows := []domain.ReportRow{
		sampleRow("1001", "1404/06/09 08:15:00"), // particulier, 2 articles
		corporateRow("1002"),                     // société: exclue du gabarit
	}

	path := svc.FillTemplate(rows, testWindow())
	if path == "" {
		t.Fatal("FillTemplate() returned no file")
	}
	if got := filepath.Base(path); got != "tis-1404-06-09.xlsx" {
		t.Errorf("filename = %q, want tis-1404-06-09.xlsx", got)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer f.Close()

	// Le contenu figé du gabarit est conservé
	if got, _ := f.GetCellValue(templateSheet, "B2"); got != "صورتحساب فروش کالا و خدمات" {
		t.Errorf("template header = %q", got)
	}

	// Une ligne par article survivant du particulier, dès la ligne fixe
	checks := []struct {
		cell string
		want string
	}{
		{"B14", "کتاب"},
		{"C14", "3"},
		{"D14", "عدد"},
		{"E14", "100000"},
		{"F14", "0"},
		{"G14", "10"},
		{"H14", "علی رضایی"},
		{"B15", "دفتر"},
		{"C15", "1"},
	}
	for _, c := range checks {
		if got, _ := f.GetCellValue(templateSheet, c.cell); got != c.want {
			t.Errorf("%s = %q, want %q", c.cell, got, c.want)
		}
	}

	// La société ne contribue aucune ligne: la ligne 16 reste vide
	if got, _ := f.GetCellValue(templateSheet, "B16"); got != "" {
		t.Errorf("B16 = %q, want empty (corporate orders excluded)", got)
	}
}

func TestTemplateService_FillTemplate_CorporateOnly(t *testing.T) {
	dir := t.TempDir()
	templatePath := writeTemplateFixture(t, dir)
	svc := NewTemplateService(templatePath, dir, logger.NewWithWriter(io.Discard))

	path := svc.FillTemplate([]domain.ReportRow{corporateRow("1002")}, testWindow())
	if path == "" {
		t.Fatal("FillTemplate() returned no file")
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer f.Close()

	if got, _ := f.GetCellValue(templateSheet, "B14"); got != "" {
		t.Errorf("B14 = %q, want empty for corporate-only batch", got)
	}
}

// TestTemplateService_FillTemplate_FilenameCollision vérifie que deux runs
// du même jour produisent deux fichiers distincts, sans écrasement
func TestTemplateService_FillTemplate_FilenameCollision(t *testing.T) {
	dir := t.TempDir()
	templatePath := writeTemplateFixture(t, dir)
	svc := NewTemplateService(templatePath, dir, logger.NewWithWriter(io.Discard))

	rows := []domain.ReportRow{sampleRow("1001", "1404/06/09 08:15:00")}

	first := svc.FillTemplate(rows, testWindow())
	second := svc.FillTemplate(rows, testWindow())
	third := svc.FillTemplate(rows, testWindow())

	if first == "" || second == "" || third == "" {
		t.Fatal("every run must produce a file")
	}
	if filepath.Base(second) != "tis-1404-06-09_1.xlsx" {
		t.Errorf("second run filename = %q, want numeric suffix", filepath.Base(second))
	}
	if filepath.Base(third) != "tis-1404-06-09_2.xlsx" {
		t.Errorf("third run filename = %q, want incremented suffix", filepath.Base(third))
	}

	// Le premier fichier n'a pas été écrasé par les runs suivants
	if _, err := excelize.OpenFile(first); err != nil {
		t.Errorf("first file unreadable after later runs: %v", err)
	}
}

func TestTemplateService_FillTemplate_MissingTemplate(t *testing.T) {
	dir := t.TempDir()
	svc := NewTemplateService(filepath.Join(dir, "absent.xlsx"), dir, logger.NewWithWriter(io.Discard))

	if path := svc.FillTemplate([]domain.ReportRow{sampleRow("1001", "1404/06/09 08:15:00")}, testWindow()); path != "" {
		t.Errorf("FillTemplate() = %q, want empty path when template is missing", path)
	}
}

func TestTemplateService_FillTemplate_MissingSheet(t *testing.T) {
	dir := t.TempDir()

	f := excelize.NewFile()
	path := filepath.Join(dir, "wrong_sheet.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs() error = %v", err)
	}
	f.Close()

	svc := NewTemplateService(path, dir, logger.NewWithWriter(io.Discard))
	if got := svc.FillTemplate([]domain.ReportRow{sampleRow("1001", "1404/06/09 08:15:00")}, testWindow()); got != "" {
		t.Errorf("FillTemplate() = %q, want empty path when sheet is missing", got)
	}
}
