package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"smartconstruction/services"
)

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	s = strings.ReplaceAll(s, `"`, "")
	return s
}

// buildQuotationExport parses the posted quotation and prepares its export data.
func buildQuotationExport(s Settings, e *core.RequestEvent) (services.ExportData, error) {
	if err := e.Request.ParseForm(); err != nil {
		return services.ExportData{}, fmt.Errorf("invalid form data: %w", err)
	}

	q := parseQuotationForm(e.Request)
	summary, err := s.summarize(q)
	if err != nil {
		return services.ExportData{}, err
	}

	now := s.now()
	number := strings.TrimSpace(e.Request.FormValue("quotation_number"))
	if number == "" {
		number = services.GenerateQuotationNumber(now)
	}
	return services.BuildExportData(q, summary.Summary, number, now), nil
}

func writeDownload(e *core.RequestEvent, contentType, filename string, body []byte) error {
	e.Response.Header().Set("Content-Type", contentType)
	e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	_, err := e.Response.Write(body)
	return err
}

// HandleQuotationExportExcel downloads the posted quotation as an Excel workbook.
func HandleQuotationExportExcel(s Settings) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := buildQuotationExport(s, e)
		if err != nil {
			GetLogger(e.Request).Info("export_excel: cannot estimate quotation", zap.Error(err))
			return ErrorToast(e, http.StatusUnprocessableEntity, "Cannot export quotation: "+err.Error())
		}

		xlsxBytes, err := services.GenerateExcel(data)
		if err != nil {
			GetLogger(e.Request).Error("export_excel: failed to generate", zap.Error(err))
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}
		s.Metrics.ObserveExport("xlsx")

		filename := fmt.Sprintf("Quotation_%s_%s.xlsx", sanitizeFilename(data.Title), data.ReferenceNumber)
		return writeDownload(e, xlsxContentType, filename, xlsxBytes)
	}
}

// HandleQuotationExportPDF downloads the posted quotation as a PDF.
func HandleQuotationExportPDF(s Settings) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := buildQuotationExport(s, e)
		if err != nil {
			GetLogger(e.Request).Info("export_pdf: cannot estimate quotation", zap.Error(err))
			return ErrorToast(e, http.StatusUnprocessableEntity, "Cannot export quotation: "+err.Error())
		}

		pdfBytes, err := services.GeneratePDF(data)
		if err != nil {
			GetLogger(e.Request).Error("export_pdf: failed to generate", zap.Error(err))
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}
		s.Metrics.ObserveExport("pdf")

		filename := fmt.Sprintf("Quotation_%s_%s.pdf", sanitizeFilename(data.Title), data.ReferenceNumber)
		return writeDownload(e, "application/pdf", filename, pdfBytes)
	}
}

// HandleInvoiceExportPDF downloads the posted invoice as a PDF.
func HandleInvoiceExportPDF(s Settings) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		f := parseInvoiceForm(e.Request)
		if len(f.Errors) > 0 {
			return ErrorToast(e, http.StatusUnprocessableEntity, "Please complete the order items")
		}

		now := s.now()
		number := f.InvoiceNumber
		if number == "" {
			number = services.GenerateInvoiceNumber(now)
		}
		data := services.BuildInvoiceExportData(f.Project, f.Input, number, now)

		pdfBytes, err := services.GenerateInvoicePDF(data)
		if err != nil {
			GetLogger(e.Request).Error("export_invoice_pdf: failed to generate", zap.Error(err))
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}
		s.Metrics.ObserveExport("invoice_pdf")

		filename := fmt.Sprintf("Invoice_%s.pdf", sanitizeFilename(number))
		return writeDownload(e, "application/pdf", filename, pdfBytes)
	}
}
