package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	"smartconstruction/estimate"
	"smartconstruction/services"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func sampleQuotation(t *testing.T) services.Quotation {
	t.Helper()
	q := services.NewQuotation(services.DefaultLabour(), services.DefaultFixedCosts()).AddFloor("Ground Floor")
	q, err := q.AddRoom(q.Floors[0].ID, "Living Room")
	if err != nil {
		t.Fatalf("AddRoom() error = %v", err)
	}
	return q
}

func assertContains(t *testing.T, body string, fragments ...string) {
	t.Helper()
	for _, f := range fragments {
		if !strings.Contains(body, f) {
			t.Errorf("expected output to contain %q", f)
		}
	}
}

func TestQuotationPage_IndexedFieldNames(t *testing.T) {
	q := sampleQuotation(t)
	q.Project.Name = "Villa <One>"

	body := render(t, QuotationPage(QuotationPageData{
		Quotation:    q,
		RoomTypes:    services.RoomTypeOptions,
		FloorPresets: services.FloorPresets,
		Materials:    estimate.WindowMaterials(),
	}))

	assertContains(t, body,
		"<!DOCTYPE html>",
		`name="floors[0].name" value="Ground Floor"`,
		`name="floors[0].rooms[0].length" value="12"`,
		`name="floors[0].rooms[0].window_width" value="4"`,
		`<option value="Wood" selected>`,
		`name="labour_workers" value="10"`,
		`name="electricity" value="25000"`,
		`id="quotation-builder"`,
		"Villa &lt;One&gt;",
	)
	if strings.Contains(body, "Villa <One>") {
		t.Error("project name was not escaped")
	}
}

func TestQuotationPage_RoomImportForm(t *testing.T) {
	body := render(t, QuotationPage(QuotationPageData{Quotation: sampleQuotation(t)}))

	assertContains(t, body,
		`enctype="multipart/form-data"`,
		`href="/quotation/import/template"`,
		`<input type="file" name="file" accept=".csv,.xlsx">`,
		`hx-post="/quotation/import"`,
		`hx-include="#quotation-form"`,
		`action="/quotation/import/errors"`,
	)
}

func TestQuotationBuilder_CollapsedFloorKeepsInputs(t *testing.T) {
	q := sampleQuotation(t)
	q = q.ToggleFloor(q.Floors[0].ID)

	body := render(t, QuotationBuilder(QuotationPageData{Quotation: q, Materials: estimate.WindowMaterials()}))

	assertContains(t, body,
		`name="floors[0].expanded" value="false"`,
		`<div class="rooms" hidden>`,
		`name="floors[0].rooms[0].height"`,
		">Expand<",
	)
}

func TestQuotationBuilder_KeepsUnknownMaterial(t *testing.T) {
	q := sampleQuotation(t)
	q.Floors[0].Rooms[0].WindowMaterial = "Glass"

	body := render(t, QuotationBuilder(QuotationPageData{Quotation: q, Materials: estimate.WindowMaterials()}))
	assertContains(t, body, `<option value="Glass" selected>`)
}

func TestQuotationSummary(t *testing.T) {
	q := sampleQuotation(t)
	c := estimate.DefaultMaterialConstants()
	s, err := services.CalcQuotationSummary(q, c)
	if err != nil {
		t.Fatalf("CalcQuotationSummary() error = %v", err)
	}

	body := render(t, QuotationSummary(SummaryData{
		Summary:       s,
		MaterialLines: services.MaterialLinesFromSummary(s, c.BrickUnitPrice, c.TileUnitPrice),
	}))

	assertContains(t, body,
		"Ground Floor",
		"Rs. 112,145",
		"2,543 bricks",
		"30 tiles",
		"Floor Tiles",
		`<span id="grand-total">Rs. 1,532,145</span>`,
	)
}

func TestInvoicePage(t *testing.T) {
	in := services.DefaultInvoiceInput()
	body := render(t, InvoicePage(InvoicePageData{
		Project: "Sunrise Villa",
		Input:   in,
		Units:   services.UnitOptions,
		Summary: services.BuildInvoiceExportData("Sunrise Villa", in, "INV-1", time.Now()),
	}))

	assertContains(t, body,
		`name="initial_quotation" value="850000"`,
		`name="excess_refund" value="25000"`,
		`name="orders[0].name" value=""`,
		`<span id="invoice-total">Rs. 1,995,000</span>`,
		"One Million Nine Hundred and Ninety Five Thousand Rupees Only",
		`<div class="summary-row credit"><span>Excess Material Refund</span><span>Rs. -25,000</span></div>`,
	)
}

func TestLayout_MarksActiveNav(t *testing.T) {
	body := render(t, Layout("Invoice", "/invoice", InvoiceSummary(services.InvoiceExportData{})))
	assertContains(t, body,
		`<a class="nav-link active" href="/invoice">Invoice</a>`,
		`<a class="nav-link" href="/quotation">Quotation</a>`,
		`id="toast"`,
	)
}

func TestHTMLWriter_FieldEscapesAttributes(t *testing.T) {
	var buf bytes.Buffer
	h := &htmlWriter{w: &buf}

	h.field("Note", inputKind(`text" onfocus="x`), "note", `"><script>`, "", attrRequired, attr{name: "placeholder", value: `a"b`})
	if h.err != nil {
		t.Fatalf("field() error = %v", h.err)
	}

	body := buf.String()
	assertContains(t, body,
		`type="text&#34; onfocus=&#34;x"`,
		`value="&#34;&gt;&lt;script&gt;"`,
		` required placeholder="a&#34;b">`,
	)
	if strings.Contains(body, `onfocus="x"`) || strings.Contains(body, "<script>") {
		t.Errorf("unescaped markup in %q", body)
	}
}

func TestHTMLWriter_ActionButtonEscapesClass(t *testing.T) {
	var buf bytes.Buffer
	h := &htmlWriter{w: &buf}

	h.actionButton("Go", hxVals("action", "add_floor"), buttonClass(`btn" hx-get="/evil`))
	if strings.Contains(buf.String(), `hx-get="/evil"`) {
		t.Errorf("class was not escaped: %q", buf.String())
	}
	assertContains(t, buf.String(), `class="btn&#34; hx-get=&#34;/evil"`)
}
