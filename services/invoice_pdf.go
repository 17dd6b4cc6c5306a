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

// GenerateInvoicePDF renders the final project invoice as a portrait A4 PDF.
func GenerateInvoicePDF(data InvoiceExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addInvoiceHeader(m, data)
	addInvoiceLines(m, data.Lines)
	addInvoiceTotal(m, data)
	addFooter(m, data.CreatedDate)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invoice PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addInvoiceHeader adds the project name, INVOICE title, number and date.
func addInvoiceHeader(m core.Maroto, data InvoiceExportData) {
	project := data.Project
	if project == "" {
		project = "Construction Project"
	}

	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(project, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("INVOICE", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: brandColor,
				}),
			),
		),
	)

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Invoice No: %s", data.InvoiceNumber), props.Text{
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

	m.AddRows(row.New(6))
}

// addInvoiceLines adds the charge table with alternating row backgrounds.
func addInvoiceLines(m core.Maroto, lines []InvoiceLine) {
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextRight := headerText
	headerTextRight.Align = align.Right
	headerCell := &props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(headerCell),
			col.New(7).Add(text.New("Description", headerText)).WithStyle(headerCell),
			col.New(4).Add(text.New("Amount", headerTextRight)).WithStyle(headerCell),
		),
	)

	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}
	bodyText := props.Text{Size: 8, Align: align.Left}
	bodyTextRight := props.Text{Size: 8, Align: align.Right}

	for i, l := range lines {
		cols := []core.Col{
			col.New(1).Add(text.New(fmt.Sprintf("%d", i+1), bodyText)),
			col.New(7).Add(text.New(l.Label, bodyText)),
			col.New(4).Add(text.New(FormatRupees(l.Amount), bodyTextRight)),
		}
		if i%2 == 1 {
			cellStyle := &props.Cell{BackgroundColor: altBg}
			for j := range cols {
				cols[j] = cols[j].WithStyle(cellStyle)
			}
		}
		m.AddRows(row.New(7).Add(cols...))
	}

	m.AddRows(row.New(2))
}

// addInvoiceTotal adds the grand total bar and the amount in words.
func addInvoiceTotal(m core.Maroto, data InvoiceExportData) {
	white := &props.Color{Red: 255, Green: 255, Blue: 255}
	grandCell := &props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}
	grandStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: white,
	}

	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(text.New("Total Amount Due", grandStyle)).WithStyle(grandCell),
			col.New(4).Add(text.New(FormatRupees(data.Total), grandStyle)).WithStyle(grandCell),
		),
	)

	if data.AmountInWords == "" {
		return
	}

	m.AddRows(row.New(3))
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Amount in Words: %s", data.AmountInWords), props.Text{
					Size:  8,
					Style: fontstyle.BoldItalic,
					Align: align.Left,
				}),
			),
		),
	)
}
