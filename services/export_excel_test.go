package services

import (
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"smartconstruction/estimate"
)

// sampleExportData builds export data for a one-floor, two-room quotation.
func sampleExportData(t *testing.T) ExportData {
	t.Helper()
	q := Quotation{
		Project:    ProjectDetails{Name: "Sunrise Villa", Location: "Pune", Customer: "A. Rao"},
		Floors:     []Floor{twoRoomFloor("Ground Floor")},
		Labour:     DefaultLabour(),
		FixedCosts: DefaultFixedCosts(),
	}
	s, err := CalcQuotationSummary(q, estimate.DefaultMaterialConstants())
	if err != nil {
		t.Fatalf("CalcQuotationSummary() error = %v", err)
	}
	return BuildExportData(q, s, "SC-QT-26-27-0000ABCD", time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC))
}

func TestGenerateExcel_Quotation(t *testing.T) {
	data := sampleExportData(t)

	result, err := GenerateExcel(data)
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetList()[0]
	if sheet != "Sunrise Villa" {
		t.Errorf("sheet name = %q, want 'Sunrise Villa'", sheet)
	}

	title, _ := f.GetCellValue(sheet, "A1")
	if title != "Sunrise Villa" {
		t.Errorf("A1 = %q, want 'Sunrise Villa'", title)
	}
	ref, _ := f.GetCellValue(sheet, "A2")
	if !strings.Contains(ref, "SC-QT-26-27-0000ABCD") || !strings.Contains(ref, "Pune") {
		t.Errorf("A2 = %q, want reference and location", ref)
	}

	header, _ := f.GetCellValue(sheet, "E5")
	if header != "Bricks" {
		t.Errorf("E5 = %q, want 'Bricks'", header)
	}

	// Row 6 = floor, rows 7-8 = rooms
	floor, _ := f.GetCellValue(sheet, "B6")
	room, _ := f.GetCellValue(sheet, "B7")
	if floor != "Ground Floor" {
		t.Errorf("B6 = %q, want 'Ground Floor'", floor)
	}
	if room != "  Living Room" {
		t.Errorf("B7 = %q, want '  Living Room'", room)
	}

	bricks, _ := f.GetCellValue(sheet, "E7")
	if bricks != "2543" {
		t.Errorf("E7 = %q, want 2543", bricks)
	}
	floorBricks, _ := f.GetCellValue(sheet, "E6")
	if floorBricks != "5086" {
		t.Errorf("E6 = %q, want 5086", floorBricks)
	}
	roomTotal, _ := f.GetCellValue(sheet, "J7")
	if roomTotal != "112145" {
		t.Errorf("J7 = %q, want 112145", roomTotal)
	}

	// Summary starts two rows after the last data row (row 8).
	label, _ := f.GetCellValue(sheet, "I10")
	value, _ := f.GetCellValue(sheet, "J10")
	if label != "Material Cost:" || value != "Rs. 240,290" {
		t.Errorf("summary row = %q %q, want 'Material Cost:' 'Rs. 240,290'", label, value)
	}
	grand, _ := f.GetCellValue(sheet, "J13")
	if grand != "Rs. 1,660,290" {
		t.Errorf("grand total = %q, want 'Rs. 1,660,290'", grand)
	}
}

func TestGenerateExcel_EmptyRows(t *testing.T) {
	data := ExportData{
		Title:       "Empty Quotation",
		CreatedDate: "18 Oct 2026",
	}

	result, err := GenerateExcel(data)
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateExcel() returned empty bytes")
	}
}

func TestGenerateExcel_LongTitle(t *testing.T) {
	data := ExportData{
		Title:       "This is a very long title that exceeds thirty one characters",
		CreatedDate: "18 Oct 2026",
	}

	result, err := GenerateExcel(data)
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets[0]) > 31 {
		t.Errorf("sheet name exceeds 31 chars: %d", len(sheets[0]))
	}
}

func TestGenerateExcel_EmptyTitle(t *testing.T) {
	result, err := GenerateExcel(ExportData{})
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if sheets[0] != "Quotation" {
		t.Errorf("expected default sheet name 'Quotation', got %q", sheets[0])
	}
}

func TestGenerateExcel_SanitizesRoomNames(t *testing.T) {
	data := ExportData{
		Title: "Injection",
		Rows: []ExportRow{
			{Level: 1, Index: "1.1", Description: "=HYPERLINK(\"x\")", Window: "-4 x 4 Wood"},
		},
	}

	result, err := GenerateExcel(data)
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}
	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	window, _ := f.GetCellValue("Injection", "D6")
	if window != "'-4 x 4 Wood" {
		t.Errorf("D6 = %q, want sanitized value", window)
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", ""},
		{"normal text", "Hello", "Hello"},
		{"starts with equals", "=SUM(A1:A10)", "'=SUM(A1:A10)"},
		{"starts with plus", "+1234", "'+1234"},
		{"starts with minus", "-100", "'-100"},
		{"starts with at", "@import", "'@import"},
		{"starts with tab", "\tdata", "'\tdata"},
		{"starts with pipe", "|command", "'|command"},
		{"starts with carriage return", "\rdata", "'\rdata"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeExcelCell(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestThinBorders(t *testing.T) {
	borders := thinBorders()
	if len(borders) != 4 {
		t.Errorf("thinBorders() returned %d borders, want 4", len(borders))
	}

	sides := map[string]bool{"left": false, "top": false, "bottom": false, "right": false}
	for _, b := range borders {
		sides[b.Type] = true
		if b.Style != 1 {
			t.Errorf("border %s style = %d, want 1 (thin)", b.Type, b.Style)
		}
	}
	for side, found := range sides {
		if !found {
			t.Errorf("missing border side: %s", side)
		}
	}
}
