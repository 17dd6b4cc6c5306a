package services

import (
	"bytes"
	"testing"
	"time"
)

func TestGeneratePDF_Quotation(t *testing.T) {
	result, err := GeneratePDF(sampleExportData(t))
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePDF() returned empty bytes")
	}
	// PDF files start with %PDF
	if !bytes.HasPrefix(result, []byte("%PDF-")) {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGeneratePDF_EmptyRows(t *testing.T) {
	data := ExportData{
		Title:       "Empty Quotation",
		CreatedDate: "18 Oct 2026",
	}

	result, err := GeneratePDF(data)
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePDF() returned empty bytes")
	}
}

func TestGenerateInvoicePDF(t *testing.T) {
	now := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	data := BuildInvoiceExportData("Sunrise Villa", DefaultInvoiceInput(), "SC-INV-26-27-0000ABCD", now)

	result, err := GenerateInvoicePDF(data)
	if err != nil {
		t.Fatalf("GenerateInvoicePDF() error = %v", err)
	}
	if !bytes.HasPrefix(result, []byte("%PDF-")) {
		t.Error("result does not start with PDF header")
	}
}

func TestGenerateInvoicePDF_NoLines(t *testing.T) {
	result, err := GenerateInvoicePDF(InvoiceExportData{CreatedDate: "18 Oct 2026"})
	if err != nil {
		t.Fatalf("GenerateInvoicePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateInvoicePDF() returned empty bytes")
	}
}
