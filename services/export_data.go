package services

import (
	"fmt"
	"time"
)

// ExportRow is a single line of the quotation export: a floor heading or a room.
type ExportRow struct {
	Level       int    // 0 = floor, 1 = room
	Index       string // "1", "1.1" etc
	Description string
	Dimensions  string
	Window      string
	Bricks      int
	Tiles       int
	BrickCost   float64
	TileCost    float64
	WindowCost  float64
	Total       float64
}

// ExportData holds everything needed to render a quotation document.
type ExportData struct {
	Title           string
	ReferenceNumber string
	CreatedDate     string
	Location        string
	Customer        string
	Rows            []ExportRow
	MaterialCost    float64
	LabourCost      float64
	LabourDetail    string
	FixedCosts      float64
	FixedDetail     string
	GrandTotal      float64
}

// BuildExportData flattens a quotation and its summary into export rows.
func BuildExportData(q Quotation, s QuotationSummary, reference string, now time.Time) ExportData {
	title := q.Project.Name
	if title == "" {
		title = "Quotation"
	}

	var rows []ExportRow
	for i, f := range s.Floors {
		floorRow := ExportRow{
			Level:       0,
			Index:       fmt.Sprintf("%d", i+1),
			Description: f.FloorName,
			Total:       f.MaterialCost,
		}
		var roomRows []ExportRow
		for j, r := range f.Rooms {
			b := r.Breakdown
			floorRow.Bricks += b.BricksNeeded
			floorRow.Tiles += b.TilesNeeded
			floorRow.BrickCost += b.BrickCost
			floorRow.TileCost += b.TileCost
			floorRow.WindowCost += b.WindowCost
			roomRows = append(roomRows, ExportRow{
				Level:       1,
				Index:       fmt.Sprintf("%d.%d", i+1, j+1),
				Description: r.Room.Type,
				Dimensions:  fmt.Sprintf("%s x %s x %s", FormatQty(r.Room.Length), FormatQty(r.Room.Width), FormatQty(r.Room.Height)),
				Window:      fmt.Sprintf("%s x %s %s", FormatQty(r.Room.WindowWidth), FormatQty(r.Room.WindowHeight), r.Room.WindowMaterial),
				Bricks:      b.BricksNeeded,
				Tiles:       b.TilesNeeded,
				BrickCost:   b.BrickCost,
				TileCost:    b.TileCost,
				WindowCost:  b.WindowCost,
				Total:       b.Total,
			})
		}
		rows = append(rows, floorRow)
		rows = append(rows, roomRows...)
	}

	return ExportData{
		Title:           title,
		ReferenceNumber: reference,
		CreatedDate:     now.Format("02 Jan 2006"),
		Location:        q.Project.Location,
		Customer:        q.Project.Customer,
		Rows:            rows,
		MaterialCost:    s.MaterialCost,
		LabourCost:      s.LabourCost,
		LabourDetail: fmt.Sprintf("%d workers x %s x %d days",
			q.Labour.Workers, FormatRupees(q.Labour.DailyRate), q.Labour.Days),
		FixedCosts: s.FixedCosts,
		FixedDetail: fmt.Sprintf("Electricity %s, Water %s, Transport %s",
			FormatRupees(q.FixedCosts.Electricity), FormatRupees(q.FixedCosts.Water), FormatRupees(q.FixedCosts.Transport)),
		GrandTotal: s.GrandTotal,
	}
}

// InvoiceExportData holds everything needed to render an invoice document.
type InvoiceExportData struct {
	Project       string
	InvoiceNumber string
	CreatedDate   string
	Lines         []InvoiceLine
	Total         float64
	AmountInWords string
}

// BuildInvoiceExportData prepares an invoice for rendering.
func BuildInvoiceExportData(project string, in InvoiceInput, number string, now time.Time) InvoiceExportData {
	total := CalcInvoiceTotal(in)
	return InvoiceExportData{
		Project:       project,
		InvoiceNumber: number,
		CreatedDate:   now.Format("02 Jan 2006"),
		Lines:         in.Lines(),
		Total:         total,
		AmountInWords: AmountToWords(total),
	}
}
