package services

import (
	"strings"

	"github.com/samber/lo"
)

// MaterialLine is a manually priced material on a quotation.
type MaterialLine struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unitPrice"`
}

// Total returns quantity × unit price.
func (m MaterialLine) Total() float64 {
	return m.Quantity * m.UnitPrice
}

// ValidateMaterialLine requires a name, a non-zero quantity and a non-zero unit price.
func ValidateMaterialLine(m MaterialLine) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(m.Name) == "" {
		errs["name"] = "Material name is required"
	}
	if m.Quantity == 0 {
		errs["quantity"] = "Quantity is required"
	}
	if m.UnitPrice == 0 {
		errs["unit_price"] = "Unit price is required"
	}
	return errs
}

// CalcMaterialLinesTotal sums the totals of all lines.
func CalcMaterialLinesTotal(lines []MaterialLine) float64 {
	return lo.SumBy(lines, func(m MaterialLine) float64 { return m.Total() })
}

// CalcExcessValue returns the refundable value of surplus material.
func CalcExcessValue(qty, unitPrice float64) float64 {
	return qty * unitPrice
}

// MaterialLinesFromSummary turns the brick, tile and window totals of a
// quotation summary into priced material lines. Costs are taken from the
// estimator as computed, so tile and window lines carry their area and
// per sq.ft rate rather than a piece count.
func MaterialLinesFromSummary(s QuotationSummary, brickPrice, tilePrice float64) []MaterialLine {
	var floorArea, windowCost float64
	for _, f := range s.Floors {
		for _, r := range f.Rooms {
			floorArea += r.Breakdown.FloorArea
			windowCost += r.Breakdown.WindowCost
		}
	}
	return []MaterialLine{
		{Name: "Bricks", Quantity: float64(s.TotalBricks), Unit: "pieces", UnitPrice: brickPrice},
		{Name: "Floor Tiles", Quantity: floorArea, Unit: "sq.ft", UnitPrice: tilePrice},
		{Name: "Windows", Quantity: 1, Unit: "Lot", UnitPrice: windowCost},
	}
}
