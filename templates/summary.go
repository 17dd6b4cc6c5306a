package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"smartconstruction/services"
)

// SummaryData is the computed side panel of the quotation page.
type SummaryData struct {
	Summary       services.QuotationSummary
	MaterialLines []services.MaterialLine
}

// QuotationSummary renders per-floor totals, the material bill and the grand total.
func QuotationSummary(data SummaryData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		s := data.Summary

		h.raw(`<div class="summary-card"><h2>Cost Summary</h2>`)
		for _, f := range s.Floors {
			h.raw(`<div class="summary-floor">`)
			h.rawf(`<div class="summary-row floor-total"><span>%s</span><span>%s</span></div>`,
				templ.EscapeString(f.FloorName), templ.EscapeString(services.FormatRupees(f.MaterialCost)))
			for _, r := range f.Rooms {
				b := r.Breakdown
				h.rawf(`<div class="summary-row room-total"><span>%s</span><span>%s</span></div>`,
					templ.EscapeString(r.Room.Type), templ.EscapeString(services.FormatRupees(b.Total)))
				h.rawf(`<div class="summary-detail">%s bricks (%s) &middot; %s tiles (%s) &middot; window %s</div>`,
					services.FormatCount(b.BricksNeeded), templ.EscapeString(services.FormatRupees(b.BrickCost)),
					services.FormatCount(b.TilesNeeded), templ.EscapeString(services.FormatRupees(b.TileCost)),
					templ.EscapeString(services.FormatRupees(b.WindowCost)))
			}
			h.raw(`</div>`)
		}

		if len(data.MaterialLines) > 0 {
			h.raw(`<table class="materials"><thead><tr><th>Material</th><th>Qty</th><th>Rate</th><th>Amount</th></tr></thead><tbody>`)
			for _, m := range data.MaterialLines {
				h.rawf(`<tr><td>%s</td><td>%s %s</td><td>%s</td><td>%s</td></tr>`,
					templ.EscapeString(m.Name),
					templ.EscapeString(services.FormatQty(m.Quantity)), templ.EscapeString(m.Unit),
					templ.EscapeString(services.FormatRupees(m.UnitPrice)),
					templ.EscapeString(services.FormatRupees(m.Total())))
			}
			h.raw(`</tbody></table>`)
		}

		h.rawf(`<div class="summary-row"><span>Total Bricks</span><span>%s</span></div>`, services.FormatCount(s.TotalBricks))
		h.rawf(`<div class="summary-row"><span>Total Tiles</span><span>%s</span></div>`, services.FormatCount(s.TotalTiles))
		totals := []struct {
			label string
			value float64
		}{
			{"Material Cost", s.MaterialCost},
			{"Labour Cost", s.LabourCost},
			{"Fixed Costs", s.FixedCosts},
		}
		for _, t := range totals {
			h.rawf(`<div class="summary-row"><span>%s</span><span>%s</span></div>`,
				t.label, templ.EscapeString(services.FormatRupees(t.value)))
		}
		h.rawf(`<div class="summary-row grand-total"><span>Grand Total</span><span id="grand-total">%s</span></div>`,
			templ.EscapeString(services.FormatRupees(s.GrandTotal)))
		h.raw(`</div>`)
		return h.err
	})
}
