package services

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestBuildExportData_Rows(t *testing.T) {
	data := sampleExportData(t)

	if len(data.Rows) != 3 {
		t.Fatalf("expected 3 rows (1 floor + 2 rooms), got %d", len(data.Rows))
	}

	floor := data.Rows[0]
	if floor.Level != 0 || floor.Index != "1" || floor.Description != "Ground Floor" {
		t.Errorf("unexpected floor row: %+v", floor)
	}
	if floor.Bricks != 5086 || floor.Tiles != 60 {
		t.Errorf("floor row bricks/tiles = %d/%d, want 5086/60", floor.Bricks, floor.Tiles)
	}
	if math.Abs(floor.Total-240290) > 0.001 {
		t.Errorf("floor total = %v, want 240290", floor.Total)
	}

	room := data.Rows[1]
	if room.Level != 1 || room.Index != "1.1" {
		t.Errorf("unexpected room row: %+v", room)
	}
	if room.Dimensions != "12 x 10 x 10" {
		t.Errorf("Dimensions = %q, want '12 x 10 x 10'", room.Dimensions)
	}
	if room.Window != "4 x 4 Wood" {
		t.Errorf("Window = %q, want '4 x 4 Wood'", room.Window)
	}
	if data.Rows[2].Window != "4 x 4 Aluminium" {
		t.Errorf("second room window = %q", data.Rows[2].Window)
	}
}

func TestBuildExportData_Totals(t *testing.T) {
	data := sampleExportData(t)

	if data.CreatedDate != "18 Oct 2026" {
		t.Errorf("CreatedDate = %q, want '18 Oct 2026'", data.CreatedDate)
	}
	if data.LabourCost != 1350000 {
		t.Errorf("LabourCost = %v, want 1350000", data.LabourCost)
	}
	if data.FixedCosts != 70000 {
		t.Errorf("FixedCosts = %v, want 70000", data.FixedCosts)
	}
	if data.GrandTotal != 1660290 {
		t.Errorf("GrandTotal = %v, want 1660290", data.GrandTotal)
	}
	if !strings.Contains(data.LabourDetail, "10 workers") || !strings.Contains(data.LabourDetail, "90 days") {
		t.Errorf("LabourDetail = %q", data.LabourDetail)
	}
}

func TestBuildExportData_DefaultTitle(t *testing.T) {
	data := BuildExportData(Quotation{}, QuotationSummary{}, "", time.Now())
	if data.Title != "Quotation" {
		t.Errorf("Title = %q, want 'Quotation'", data.Title)
	}
	if len(data.Rows) != 0 {
		t.Errorf("expected no rows, got %d", len(data.Rows))
	}
}

func TestBuildInvoiceExportData(t *testing.T) {
	data := BuildInvoiceExportData("Sunrise Villa", DefaultInvoiceInput(), "INV-1", time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))

	if data.Total != 1995000 {
		t.Errorf("Total = %v, want 1995000", data.Total)
	}
	if data.AmountInWords != "One Million Nine Hundred and Ninety Five Thousand Rupees Only" {
		t.Errorf("AmountInWords = %q", data.AmountInWords)
	}
	if len(data.Lines) != 8 {
		t.Errorf("expected 8 lines, got %d", len(data.Lines))
	}
	if data.CreatedDate != "01 Apr 2026" {
		t.Errorf("CreatedDate = %q", data.CreatedDate)
	}
}
