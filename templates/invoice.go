package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"smartconstruction/services"
)

// InvoicePageData is everything the invoice page renders.
type InvoicePageData struct {
	Project         string
	InvoiceNumber   string
	Input           services.InvoiceInput
	Orders          []services.MaterialLine
	ExcessQty       float64
	ExcessUnitPrice float64
	Units           []string
	Errors          map[string]string
	Summary         services.InvoiceExportData
}

// InvoicePage renders the final invoice form with its live total.
func InvoicePage(data InvoicePageData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section class="page-header"><h1>Generate Invoice</h1>`)
		if data.InvoiceNumber != "" {
			h.rawf(`<span class="muted">%s</span>`, templ.EscapeString(data.InvoiceNumber))
		}
		h.raw(`</section>`)

		h.raw(`<form id="invoice-form" method="post" action="/invoice/export/pdf" hx-post="/invoice/summary" hx-trigger="input changed delay:300ms, change" hx-target="#invoice-summary" hx-swap="innerHTML">`)
		h.rawf(`<input type="hidden" name="invoice_number" value="%s">`, templ.EscapeString(data.InvoiceNumber))

		in := data.Input
		h.raw(`<fieldset class="card"><legend>Project</legend>`)
		h.field("Project Name", inputText, "project_name", data.Project, data.Errors["project_name"])
		h.raw(`</fieldset>`)

		h.raw(`<fieldset class="card"><legend>Charges</legend>`)
		charges := []struct {
			label, name string
			value       float64
		}{
			{"Initial Quotation", "initial_quotation", in.InitialQuotation},
			{"Supplier Bills", "supplier_bills", in.SupplierBills},
			{"Additional Orders", "additional_orders", in.AdditionalOrders},
			{"Labour Charges", "labour", in.Labour},
			{"Electricity", "electricity", in.Electricity},
			{"Water", "water", in.Water},
			{"Transport", "transport", in.Transport},
			{"Excess Material Refund", "excess_refund", in.ExcessRefund},
		}
		for _, c := range charges {
			h.field(c.label+" (Rs.)", inputNumber, c.name, num(c.value), data.Errors[c.name], attrStepAny)
		}
		h.raw(`</fieldset>`)

		h.raw(`<fieldset class="card"><legend>Additional Order Items</legend>`)
		h.raw(`<p class="muted">When items are listed, Additional Orders is their total.</p>`)
		orders := append(append([]services.MaterialLine{}, data.Orders...), services.MaterialLine{})
		for i, o := range orders {
			prefix := fmt.Sprintf("orders[%d].", i)
			h.raw(`<div class="order-line">`)
			h.field("Material", inputText, prefix+"name", o.Name, data.Errors[prefix+"name"])
			h.field("Quantity", inputNumber, prefix+"quantity", zeroBlank(o.Quantity), data.Errors[prefix+"quantity"], attrStepAny)
			h.selectField("Unit", prefix+"unit", o.Unit, withCurrent(data.Units, o.Unit))
			h.field("Unit Price (Rs.)", inputNumber, prefix+"unit_price", zeroBlank(o.UnitPrice), data.Errors[prefix+"unit_price"], attrStepAny)
			h.raw(`</div>`)
		}
		h.raw(`</fieldset>`)

		h.raw(`<fieldset class="card"><legend>Excess Materials</legend>`)
		h.raw(`<p class="muted">When a quantity is given, the refund is quantity &times; unit price.</p>`)
		h.field("Excess Quantity", inputNumber, "excess_qty", zeroBlank(data.ExcessQty), "", attrStepAny)
		h.field("Unit Price (Rs.)", inputNumber, "excess_unit_price", zeroBlank(data.ExcessUnitPrice), "", attrStepAny)
		h.raw(`</fieldset>`)

		h.raw(`<div class="actions"><button type="submit" class="btn btn-primary">Download Invoice PDF</button></div>`)
		h.raw(`</form>`)

		h.raw(`<aside id="invoice-summary" class="summary">`)
		if h.err != nil {
			return h.err
		}
		if err := InvoiceSummary(data.Summary).Render(ctx, w); err != nil {
			return err
		}
		h.raw(`</aside>`)
		return h.err
	})
	return Layout("Generate Invoice", "/invoice", body)
}

func zeroBlank(v float64) string {
	if v == 0 {
		return ""
	}
	return num(v)
}

// InvoiceSummary renders the invoice lines, total and amount in words.
func InvoiceSummary(data services.InvoiceExportData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div class="summary-card"><h2>Invoice Summary</h2>`)
		for _, l := range data.Lines {
			class := "summary-row"
			if l.Amount < 0 {
				class += " credit"
			}
			h.rawf(`<div class="%s"><span>%s</span><span>%s</span></div>`,
				class, templ.EscapeString(l.Label), templ.EscapeString(services.FormatRupees(l.Amount)))
		}
		h.rawf(`<div class="summary-row grand-total"><span>Total Amount Due</span><span id="invoice-total">%s</span></div>`,
			templ.EscapeString(services.FormatRupees(data.Total)))
		if data.AmountInWords != "" {
			h.rawf(`<p class="amount-words">%s</p>`, templ.EscapeString(data.AmountInWords))
		}
		h.raw(`</div>`)
		return h.err
	})
}
