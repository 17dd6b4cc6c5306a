package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"smartconstruction/estimate"
	"smartconstruction/services"
)

// parseQuotationForm rebuilds a quotation from the builder form. Floors and
// rooms are read from indexed fields (floors[i].rooms[j].length) until the
// first missing id. Unparseable numbers become 0. The request form must
// already be parsed.
func parseQuotationForm(r *http.Request) services.Quotation {
	q := services.Quotation{
		Project: services.ProjectDetails{
			Name:        strings.TrimSpace(r.FormValue("project_name")),
			Location:    strings.TrimSpace(r.FormValue("location")),
			Customer:    strings.TrimSpace(r.FormValue("customer")),
			Description: strings.TrimSpace(r.FormValue("description")),
		},
		Labour: services.Labour{
			Workers:   services.ParseCount(r.FormValue("labour_workers")),
			DailyRate: services.ParseNumber(r.FormValue("labour_daily_rate")),
			Days:      services.ParseCount(r.FormValue("labour_days")),
		},
		FixedCosts: services.FixedCosts{
			Electricity: services.ParseNumber(r.FormValue("electricity")),
			Water:       services.ParseNumber(r.FormValue("water")),
			Transport:   services.ParseNumber(r.FormValue("transport")),
		},
	}

	for i := 0; ; i++ {
		prefix := fmt.Sprintf("floors[%d].", i)
		if _, ok := r.Form[prefix+"id"]; !ok {
			break
		}
		f := services.Floor{
			ID:       formID(r, prefix),
			Name:     strings.TrimSpace(r.FormValue(prefix + "name")),
			Expanded: r.FormValue(prefix+"expanded") != "false",
		}

		for j := 0; ; j++ {
			roomPrefix := fmt.Sprintf("%srooms[%d].", prefix, j)
			if _, ok := r.Form[roomPrefix+"id"]; !ok {
				break
			}
			f.Rooms = append(f.Rooms, services.Room{
				ID:   formID(r, roomPrefix),
				Type: strings.TrimSpace(r.FormValue(roomPrefix + "type")),
				RoomSpec: estimate.RoomSpec{
					Length:         services.ParseNumber(r.FormValue(roomPrefix + "length")),
					Width:          services.ParseNumber(r.FormValue(roomPrefix + "width")),
					Height:         services.ParseNumber(r.FormValue(roomPrefix + "height")),
					WindowWidth:    services.ParseNumber(r.FormValue(roomPrefix + "window_width")),
					WindowHeight:   services.ParseNumber(r.FormValue(roomPrefix + "window_height")),
					WindowMaterial: estimate.WindowMaterial(strings.TrimSpace(r.FormValue(roomPrefix + "window_material"))),
				},
			})
		}
		q.Floors = append(q.Floors, f)
	}
	return q
}

// formID returns the posted id for prefix, minting one when it is blank.
func formID(r *http.Request, prefix string) string {
	if id := strings.TrimSpace(r.FormValue(prefix + "id")); id != "" {
		return id
	}
	return uuid.NewString()
}

// invoiceForm is the parsed invoice page state.
type invoiceForm struct {
	Project         string
	InvoiceNumber   string
	Input           services.InvoiceInput
	Orders          []services.MaterialLine
	ExcessQty       float64
	ExcessUnitPrice float64
	Errors          map[string]string
}

// parseInvoiceForm reads the invoice charges. Listed order items replace the
// additional orders amount, and an excess quantity replaces the refund.
func parseInvoiceForm(r *http.Request) invoiceForm {
	f := invoiceForm{
		Project:       strings.TrimSpace(r.FormValue("project_name")),
		InvoiceNumber: strings.TrimSpace(r.FormValue("invoice_number")),
		Input: services.InvoiceInput{
			InitialQuotation: services.ParseNumber(r.FormValue("initial_quotation")),
			SupplierBills:    services.ParseNumber(r.FormValue("supplier_bills")),
			AdditionalOrders: services.ParseNumber(r.FormValue("additional_orders")),
			Labour:           services.ParseNumber(r.FormValue("labour")),
			Electricity:      services.ParseNumber(r.FormValue("electricity")),
			Water:            services.ParseNumber(r.FormValue("water")),
			Transport:        services.ParseNumber(r.FormValue("transport")),
			ExcessRefund:     services.ParseNumber(r.FormValue("excess_refund")),
		},
		ExcessQty:       services.ParseNumber(r.FormValue("excess_qty")),
		ExcessUnitPrice: services.ParseNumber(r.FormValue("excess_unit_price")),
		Errors:          make(map[string]string),
	}

	for i := 0; ; i++ {
		prefix := fmt.Sprintf("orders[%d].", i)
		if _, ok := r.Form[prefix+"name"]; !ok {
			break
		}
		line := services.MaterialLine{
			Name:      strings.TrimSpace(r.FormValue(prefix + "name")),
			Quantity:  services.ParseNumber(r.FormValue(prefix + "quantity")),
			Unit:      strings.TrimSpace(r.FormValue(prefix + "unit")),
			UnitPrice: services.ParseNumber(r.FormValue(prefix + "unit_price")),
		}
		// The trailing blank row is always posted.
		if line.Name == "" && line.Quantity == 0 && line.UnitPrice == 0 {
			continue
		}
		for field, msg := range services.ValidateMaterialLine(line) {
			f.Errors[prefix+field] = msg
		}
		f.Orders = append(f.Orders, line)
	}

	if len(f.Orders) > 0 {
		f.Input.AdditionalOrders = services.CalcMaterialLinesTotal(f.Orders)
	}
	if f.ExcessQty != 0 {
		f.Input.ExcessRefund = services.CalcExcessValue(f.ExcessQty, f.ExcessUnitPrice)
	}
	return f
}
