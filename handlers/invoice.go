package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"smartconstruction/services"
	"smartconstruction/templates"
)

// HandleInvoicePage renders the invoice form with the default charges.
func HandleInvoicePage(s Settings) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		now := s.now()
		number := services.GenerateInvoiceNumber(now)
		in := services.DefaultInvoiceInput()
		data := templates.InvoicePageData{
			InvoiceNumber: number,
			Input:         in,
			Units:         services.UnitOptions,
			Errors:        make(map[string]string),
			Summary:       services.BuildInvoiceExportData("", in, number, now),
		}
		return templates.InvoicePage(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleInvoiceSummary recomputes the invoice total for the posted charges.
func HandleInvoiceSummary(s Settings) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		f := parseInvoiceForm(e.Request)
		if len(f.Errors) > 0 {
			SetToast(e, "warning", "Some order items are incomplete")
		}
		data := services.BuildInvoiceExportData(f.Project, f.Input, f.InvoiceNumber, s.now())
		return templates.InvoiceSummary(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleInvoiceFromQuotation renders the invoice page seeded from a posted
// quotation: its material, labour and utility totals become the charges.
func HandleInvoiceFromQuotation(s Settings) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		q := parseQuotationForm(e.Request)
		summary, err := s.summarize(q)
		if err != nil {
			return ErrorToast(e, http.StatusUnprocessableEntity, "Cannot estimate quotation: "+err.Error())
		}

		now := s.now()
		number := services.GenerateInvoiceNumber(now)
		in := services.InvoiceFromQuotation(summary.Summary, q.FixedCosts)
		data := templates.InvoicePageData{
			Project:       q.Project.Name,
			InvoiceNumber: number,
			Input:         in,
			Units:         services.UnitOptions,
			Errors:        make(map[string]string),
			Summary:       services.BuildInvoiceExportData(q.Project.Name, in, number, now),
		}
		return templates.InvoicePage(data).Render(e.Request.Context(), e.Response)
	}
}
