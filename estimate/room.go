// Package estimate converts room geometry and a window material choice into
// brick, tile and window quantities and costs.
package estimate

import (
	"math"

	"github.com/pkg/errors"
)

// RoomSpec describes a single room. All dimensions are in feet.
type RoomSpec struct {
	Length         float64        `json:"length" yaml:"length"`
	Width          float64        `json:"width" yaml:"width"`
	Height         float64        `json:"height" yaml:"height"`
	WindowWidth    float64        `json:"windowWidth" yaml:"window_width"`
	WindowHeight   float64        `json:"windowHeight" yaml:"window_height"`
	WindowMaterial WindowMaterial `json:"windowMaterial" yaml:"window_material"`
}

// RoomCostBreakdown is the derived material requirement and cost of a room.
type RoomCostBreakdown struct {
	WallArea     float64 `json:"wallArea"`
	FloorArea    float64 `json:"floorArea"`
	WindowArea   float64 `json:"windowArea"`
	NetWallArea  float64 `json:"netWallArea"`
	BricksNeeded int     `json:"bricksNeeded"`
	BrickCost    float64 `json:"brickCost"`
	TilesNeeded  int     `json:"tilesNeeded"`
	TileCost     float64 `json:"tileCost"`
	WindowCost   float64 `json:"windowCost"`
	Total        float64 `json:"total"`
}

// EstimateRoomCost computes the cost breakdown for one room.
//
// Bricks cover the four walls less the window opening, counted by brick face
// area. The net wall area is not clamped, so a window larger than the walls
// yields a non-positive brick count. Tiles are counted from the nominal tile
// area but priced per sq.ft of floor.
func EstimateRoomCost(spec RoomSpec, c MaterialConstants) (RoomCostBreakdown, error) {
	if err := checkFinite(spec); err != nil {
		return RoomCostBreakdown{}, err
	}

	windowRate, err := c.WindowRate(spec.WindowMaterial)
	if err != nil {
		return RoomCostBreakdown{}, err
	}

	wallArea := 2 * (spec.Length + spec.Width) * spec.Height
	floorArea := spec.Length * spec.Width
	windowArea := spec.WindowWidth * spec.WindowHeight
	netWallArea := wallArea - windowArea

	bricksNeeded, err := Count(math.Ceil(netWallArea/c.Brick.FaceArea()), "bricks")
	if err != nil {
		return RoomCostBreakdown{}, err
	}
	brickCost := float64(bricksNeeded) * c.BrickUnitPrice

	tilesNeeded, err := Count(math.Ceil(floorArea/c.TileArea()), "tiles")
	if err != nil {
		return RoomCostBreakdown{}, err
	}
	tileCost := floorArea * c.TileUnitPrice

	windowCost := windowArea * windowRate

	return RoomCostBreakdown{
		WallArea:     wallArea,
		FloorArea:    floorArea,
		WindowArea:   windowArea,
		NetWallArea:  netWallArea,
		BricksNeeded: bricksNeeded,
		BrickCost:    brickCost,
		TilesNeeded:  tilesNeeded,
		TileCost:     tileCost,
		WindowCost:   windowCost,
		Total:        brickCost + tileCost + windowCost,
	}, nil
}

// MaxCount is the largest brick or tile count, in either sign, that a
// float64 holds exactly.
const MaxCount = 1 << 53

// Count converts a whole-number quantity to an int. Quantities beyond
// MaxCount are rejected with ErrQuantityOutOfRange.
func Count(q float64, what string) (int, error) {
	if math.Abs(q) > MaxCount {
		return 0, errors.Wrapf(ErrQuantityOutOfRange, "%s count %g", what, q)
	}
	return int(q), nil
}

func checkFinite(spec RoomSpec) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"length", spec.Length},
		{"width", spec.Width},
		{"height", spec.Height},
		{"window width", spec.WindowWidth},
		{"window height", spec.WindowHeight},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return errors.Wrapf(ErrNonFiniteInput, "%s is %v", f.name, f.value)
		}
	}
	return nil
}
