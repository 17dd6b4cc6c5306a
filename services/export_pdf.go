package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	mutedColor  = &props.Color{Red: 80, Green: 80, Blue: 80}
	footerColor = &props.Color{Red: 140, Green: 140, Blue: 140}
	brandColor  = &props.Color{Red: 255, Green: 107, Blue: 53}
)

// GeneratePDF renders a quotation as a landscape A4 PDF using maroto/v2.
func GeneratePDF(data ExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, data)
	addTableHeader(m)
	for _, r := range data.Rows {
		addTableRow(m, r)
	}
	addSummary(m, data)
	addFooter(m, data.CreatedDate)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addHeader adds the title, project details and reference number.
func addHeader(m core.Maroto, data ExportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Reference: %s", data.ReferenceNumber), props.Text{
					Size:  9,
					Align: align.Left,
					Color: mutedColor,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.CreatedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: mutedColor,
				}),
			),
		),
	)

	if data.Customer != "" || data.Location != "" {
		m.AddRows(
			row.New(6).Add(
				col.New(6).Add(
					text.New("Customer: "+data.Customer, props.Text{Size: 9, Color: mutedColor}),
				),
				col.New(6).Add(
					text.New("Location: "+data.Location, props.Text{Size: 9, Align: align.Right, Color: mutedColor}),
				),
			),
		)
	}

	m.AddRows(row.New(4))
}

// addTableHeader adds the column header row for the room table.
func addTableHeader(m core.Maroto) {
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := &props.Cell{BackgroundColor: brandColor}

	titles := []struct {
		size  int
		label string
		style props.Text
	}{
		{1, "#", headerText},
		{2, "Floor / Room", headerTextLeft},
		{2, "L x W x H (ft)", headerText},
		{2, "Window (ft)", headerText},
		{1, "Bricks", headerText},
		{1, "Tiles", headerText},
		{1, "Windows", headerText},
		{2, "Total", headerText},
	}

	r := row.New(8)
	for _, t := range titles {
		r.Add(col.New(t.size).Add(text.New(t.label, t.style)).WithStyle(headerCell))
	}
	m.AddRows(r)
}

// addTableRow adds a floor heading or room line to the table.
func addTableRow(m core.Maroto, r ExportRow) {
	var cellStyle *props.Cell
	var textSize float64 = 7
	textStyle := fontstyle.Normal
	descPrefix := ""

	switch r.Level {
	case 0:
		textStyle = fontstyle.Bold
		textSize = 8
		cellStyle = &props.Cell{BackgroundColor: &props.Color{Red: 243, Green: 244, Blue: 246}}
	default:
		descPrefix = "  "
	}

	baseText := props.Text{
		Size:  textSize,
		Style: textStyle,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	cols := []core.Col{
		col.New(1).Add(text.New(r.Index, baseText)),
		col.New(2).Add(text.New(descPrefix+r.Description, leftText)),
		col.New(2).Add(text.New(r.Dimensions, baseText)),
		col.New(2).Add(text.New(r.Window, baseText)),
		col.New(1).Add(text.New(FormatCount(r.Bricks), rightText)),
		col.New(1).Add(text.New(FormatCount(r.Tiles), rightText)),
		col.New(1).Add(text.New(FormatQty(r.WindowCost), rightText)),
		col.New(2).Add(text.New(FormatRupees(r.Total), rightText)),
	}
	if cellStyle != nil {
		for i := range cols {
			cols[i] = cols[i].WithStyle(cellStyle)
		}
	}

	m.AddRows(row.New(7).Add(cols...))
}

// addSummary adds the material, labour, fixed and grand totals.
func addSummary(m core.Maroto, data ExportData) {
	m.AddRows(row.New(6))

	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	detailStyle := props.Text{
		Size:  8,
		Align: align.Left,
		Color: mutedColor,
	}

	lines := []struct {
		label  string
		detail string
		value  float64
	}{
		{"Material Cost", "", data.MaterialCost},
		{"Labour Cost", data.LabourDetail, data.LabourCost},
		{"Fixed Charges", data.FixedDetail, data.FixedCosts},
		{"Grand Total", "", data.GrandTotal},
	}
	for _, l := range lines {
		m.AddRows(
			row.New(8).Add(
				col.New(5).Add(text.New(l.detail, detailStyle)).WithStyle(summaryCell),
				col.New(4).Add(text.New(l.label, labelStyle)).WithStyle(summaryCell),
				col.New(3).Add(text.New(FormatRupees(l.value), labelStyle)).WithStyle(summaryCell),
			),
		)
	}

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Amount in Words: %s", AmountToWords(data.GrandTotal)), props.Text{
					Size:  8,
					Style: fontstyle.BoldItalic,
					Top:   2,
				}),
			),
		),
	)
}

// addFooter adds the generated-date line at the bottom.
func addFooter(m core.Maroto, createdDate string) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", createdDate),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: footerColor,
					},
				),
			),
		),
	)
}
