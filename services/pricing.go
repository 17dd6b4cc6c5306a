// Package services provides quotation, invoice and export calculations built on the room estimator.
package services

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"smartconstruction/estimate"
)

// RoomEstimate pairs a room with its computed breakdown.
type RoomEstimate struct {
	Room      Room                       `json:"room"`
	Breakdown estimate.RoomCostBreakdown `json:"breakdown"`
}

// FloorEstimate holds the room estimates of one floor and their sum.
type FloorEstimate struct {
	FloorID      string         `json:"floorId"`
	FloorName    string         `json:"floorName"`
	Rooms        []RoomEstimate `json:"rooms"`
	MaterialCost float64        `json:"materialCost"`
}

// QuotationSummary is the full cost picture of a quotation.
type QuotationSummary struct {
	Floors       []FloorEstimate `json:"floors"`
	TotalBricks  int             `json:"totalBricks"`
	TotalTiles   int             `json:"totalTiles"`
	MaterialCost float64         `json:"materialCost"`
	LabourCost   float64         `json:"labourCost"`
	FixedCosts   float64         `json:"fixedCosts"`
	GrandTotal   float64         `json:"grandTotal"`
}

// CalcFloorMaterialCost sums the room totals of a floor.
func CalcFloorMaterialCost(floor Floor, c estimate.MaterialConstants) (float64, error) {
	fe, err := estimateFloor(floor, c)
	if err != nil {
		return 0, err
	}
	return fe.MaterialCost, nil
}

// CalcProjectMaterialCost sums the material cost of every floor.
func CalcProjectMaterialCost(floors []Floor, c estimate.MaterialConstants) (float64, error) {
	var total float64
	for _, f := range floors {
		cost, err := CalcFloorMaterialCost(f, c)
		if err != nil {
			return 0, err
		}
		total += cost
	}
	return total, nil
}

// CalcLabourCost returns workers × daily rate × days.
func CalcLabourCost(l Labour) float64 {
	return float64(l.Workers) * l.DailyRate * float64(l.Days)
}

// CalcFixedCosts sums the utility charges.
func CalcFixedCosts(f FixedCosts) float64 {
	return f.Electricity + f.Water + f.Transport
}

// CalcQuotationSummary estimates every room and rolls the results up to floor
// and project totals. The first room that cannot be estimated fails the whole
// summary; its floor and room are named in the error.
func CalcQuotationSummary(q Quotation, c estimate.MaterialConstants) (QuotationSummary, error) {
	var summary QuotationSummary
	var bricks, tiles float64
	for _, f := range q.Floors {
		fe, err := estimateFloor(f, c)
		if err != nil {
			return QuotationSummary{}, err
		}
		summary.Floors = append(summary.Floors, fe)
		summary.MaterialCost += fe.MaterialCost
		bricks += lo.SumBy(fe.Rooms, func(r RoomEstimate) float64 { return float64(r.Breakdown.BricksNeeded) })
		tiles += lo.SumBy(fe.Rooms, func(r RoomEstimate) float64 { return float64(r.Breakdown.TilesNeeded) })
	}

	var err error
	if summary.TotalBricks, err = estimate.Count(bricks, "total bricks"); err != nil {
		return QuotationSummary{}, err
	}
	if summary.TotalTiles, err = estimate.Count(tiles, "total tiles"); err != nil {
		return QuotationSummary{}, err
	}
	summary.LabourCost = CalcLabourCost(q.Labour)
	summary.FixedCosts = CalcFixedCosts(q.FixedCosts)
	summary.GrandTotal = summary.MaterialCost + summary.LabourCost + summary.FixedCosts
	return summary, nil
}

func estimateFloor(f Floor, c estimate.MaterialConstants) (FloorEstimate, error) {
	fe := FloorEstimate{FloorID: f.ID, FloorName: f.Name}
	for i, r := range f.Rooms {
		b, err := estimate.EstimateRoomCost(r.RoomSpec, c)
		if err != nil {
			return FloorEstimate{}, errors.Wrapf(err, "%s: room %d (%s)", f.Name, i+1, r.Type)
		}
		fe.Rooms = append(fe.Rooms, RoomEstimate{Room: r, Breakdown: b})
		fe.MaterialCost += b.Total
	}
	return fe, nil
}
