package templates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"smartconstruction/estimate"
	"smartconstruction/services"
)

// QuotationPageData is everything the quotation builder page renders.
type QuotationPageData struct {
	Quotation       services.Quotation
	QuotationNumber string
	Summary         *SummaryData
	SummaryError    string
	Errors          map[string]string
	RoomTypes       []string
	FloorPresets    []string
	Materials       []estimate.WindowMaterial
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func hxVals(kv ...string) string {
	m := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i]] = kv[i+1]
	}
	b, _ := json.Marshal(m)
	return string(b)
}

// QuotationPage renders the full builder page.
func QuotationPage(data QuotationPageData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section class="page-header"><h1>Create Quotation</h1>`)
		if data.QuotationNumber != "" {
			h.rawf(`<span class="muted">%s</span>`, templ.EscapeString(data.QuotationNumber))
		}
		h.raw(`</section>`)

		h.raw(`<form id="quotation-form" method="post" action="/quotation" hx-post="/quotation/summary" hx-trigger="input changed delay:300ms, change, quotationChanged from:body" hx-target="#quotation-summary" hx-swap="innerHTML">`)
		h.rawf(`<input type="hidden" name="quotation_number" value="%s">`, templ.EscapeString(data.QuotationNumber))
		if h.err != nil {
			return h.err
		}

		if err := ProjectDetailsSection(data.Quotation.Project, data.Errors).Render(ctx, w); err != nil {
			return err
		}
		if err := QuotationBuilder(data).Render(ctx, w); err != nil {
			return err
		}
		if err := CostInputsSection(data.Quotation.Labour, data.Quotation.FixedCosts).Render(ctx, w); err != nil {
			return err
		}

		h.raw(`<div class="actions">`)
		h.raw(`<button type="submit" class="btn btn-primary">Create Project</button>`)
		h.raw(`<button type="submit" class="btn" formaction="/quotation/export/excel">Export Excel</button>`)
		h.raw(`<button type="submit" class="btn" formaction="/quotation/export/pdf">Export PDF</button>`)
		h.raw(`<button type="submit" class="btn" formaction="/invoice">Generate Invoice</button>`)
		h.raw(`</div></form>`)

		h.raw(`<form id="room-import" class="card" method="post" action="/quotation/import/errors" enctype="multipart/form-data">`)
		h.raw(`<header class="card-header"><h2>Import Rooms</h2><a href="/quotation/import/template">Download template</a></header>`)
		h.raw(`<input type="file" name="file" accept=".csv,.xlsx">`)
		h.raw(`<div class="actions">`)
		h.raw(`<button type="button" class="btn" hx-post="/quotation/import" hx-encoding="multipart/form-data" hx-include="#quotation-form" hx-target="#quotation-builder" hx-swap="outerHTML">Import</button>`)
		h.raw(`<button type="submit" class="btn">Download Error Report</button>`)
		h.raw(`</div></form>`)

		h.raw(`<aside id="quotation-summary" class="summary">`)
		if h.err != nil {
			return h.err
		}
		if data.Summary != nil {
			if err := QuotationSummary(*data.Summary).Render(ctx, w); err != nil {
				return err
			}
		} else if data.SummaryError != "" {
			h.rawf(`<p class="error">%s</p>`, templ.EscapeString(data.SummaryError))
		}
		h.raw(`</aside>`)
		return h.err
	})
	return Layout("Create Quotation", "/quotation", body)
}

// ProjectDetailsSection renders the project name, location and customer inputs.
func ProjectDetailsSection(p services.ProjectDetails, errs map[string]string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<fieldset class="card"><legend>Project Details</legend>`)
		h.field("Project Name", inputText, "project_name", p.Name, errs["project_name"], attrRequired)
		h.field("Location", inputText, "location", p.Location, errs["location"], attrRequired)
		h.field("Customer", inputText, "customer", p.Customer, "")
		h.raw(`<label class="field"><span class="field-label">Description</span>`)
		h.rawf(`<textarea name="description" rows="2">%s</textarea></label>`, templ.EscapeString(p.Description))
		h.raw(`</fieldset>`)
		return h.err
	})
}

// QuotationBuilder renders the floors and rooms editor. It is swapped as a
// whole after every builder action.
func QuotationBuilder(data QuotationPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		materials := make([]string, len(data.Materials))
		for i, m := range data.Materials {
			materials[i] = m.String()
		}

		h.raw(`<section id="quotation-builder" class="card">`)
		h.rawf(`<header class="card-header"><h2>Floors</h2><span class="muted">%d floors, %d rooms</span></header>`,
			len(data.Quotation.Floors), data.Quotation.RoomCount())

		for i, f := range data.Quotation.Floors {
			prefix := fmt.Sprintf("floors[%d].", i)
			h.rawf(`<div class="floor" id="floor-%s">`, templ.EscapeString(f.ID))
			h.rawf(`<input type="hidden" name="%sid" value="%s">`, prefix, templ.EscapeString(f.ID))
			h.rawf(`<input type="hidden" name="%sexpanded" value="%t">`, prefix, f.Expanded)
			h.raw(`<div class="floor-header">`)
			h.rawf(`<input class="floor-name" type="text" name="%sname" value="%s">`, prefix, templ.EscapeString(f.Name))
			toggle := "Collapse"
			if !f.Expanded {
				toggle = "Expand"
			}
			h.actionButton(toggle, hxVals("action", "toggle_floor", "floor_id", f.ID), btnSmall)
			h.actionButton("Remove Floor", hxVals("action", "remove_floor", "floor_id", f.ID), btnSmallDanger)
			h.raw(`</div>`)

			hidden := ""
			if !f.Expanded {
				hidden = " hidden"
			}
			h.rawf(`<div class="rooms"%s>`, hidden)
			for j, r := range f.Rooms {
				roomRow(h, fmt.Sprintf("%srooms[%d].", prefix, j), r, data.RoomTypes, materials)
				h.actionButton("Remove Room", hxVals("action", "remove_room", "floor_id", f.ID, "room_id", r.ID), btnSmallDanger)
				h.raw(`</div>`)
			}
			h.raw(`<div class="add-room">`)
			for _, rt := range data.RoomTypes {
				h.actionButton("+ "+rt, hxVals("action", "add_room", "floor_id", f.ID, "room_type", rt), btnSmall)
			}
			h.raw(`</div></div></div>`)
		}

		h.raw(`<div class="add-floor">`)
		for _, name := range data.FloorPresets {
			h.actionButton("+ "+name, hxVals("action", "add_floor", "floor_name", name), btnSmall)
		}
		h.actionButton("+ Add Floor", hxVals("action", "add_floor"), btnSmall)
		h.raw(`</div></section>`)
		return h.err
	})
}

// roomRow opens a room row and writes its inputs. The caller closes the row.
func roomRow(h *htmlWriter, prefix string, r services.Room, roomTypes, materials []string) {
	h.rawf(`<div class="room" id="room-%s">`, templ.EscapeString(r.ID))
	h.rawf(`<input type="hidden" name="%sid" value="%s">`, prefix, templ.EscapeString(r.ID))
	h.selectField("Room", prefix+"type", r.Type, withCurrent(roomTypes, r.Type))
	h.field("Length (ft)", inputNumber, prefix+"length", num(r.Length), "", attrStepAny)
	h.field("Width (ft)", inputNumber, prefix+"width", num(r.Width), "", attrStepAny)
	h.field("Height (ft)", inputNumber, prefix+"height", num(r.Height), "", attrStepAny)
	h.field("Window W (ft)", inputNumber, prefix+"window_width", num(r.WindowWidth), "", attrStepAny)
	h.field("Window H (ft)", inputNumber, prefix+"window_height", num(r.WindowHeight), "", attrStepAny)
	h.selectField("Window", prefix+"window_material", r.WindowMaterial.String(), withCurrent(materials, r.WindowMaterial.String()))
}

// withCurrent appends current to options when it is not already listed, so a
// custom value round-trips through the form.
func withCurrent(options []string, current string) []string {
	if current == "" {
		return options
	}
	for _, o := range options {
		if o == current {
			return options
		}
	}
	return append(append([]string{}, options...), current)
}

// CostInputsSection renders the labour and fixed cost inputs.
func CostInputsSection(l services.Labour, f services.FixedCosts) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<fieldset class="card"><legend>Labour</legend>`)
		h.field("Workers", inputNumber, "labour_workers", strconv.Itoa(l.Workers), "", attrStepOne)
		h.field("Daily Rate (Rs.)", inputNumber, "labour_daily_rate", num(l.DailyRate), "", attrStepAny)
		h.field("Days", inputNumber, "labour_days", strconv.Itoa(l.Days), "", attrStepOne)
		h.raw(`</fieldset>`)

		h.raw(`<fieldset class="card"><legend>Fixed Costs</legend>`)
		h.field("Electricity (Rs.)", inputNumber, "electricity", num(f.Electricity), "", attrStepAny)
		h.field("Water (Rs.)", inputNumber, "water", num(f.Water), "", attrStepAny)
		h.field("Transport (Rs.)", inputNumber, "transport", num(f.Transport), "", attrStepAny)
		h.raw(`</fieldset>`)
		return h.err
	})
}
