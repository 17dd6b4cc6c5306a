package estimate

import (
	"math"

	"github.com/pkg/errors"
)

// Reference rates used by the quotation builder, in rupees.
const (
	DefaultBrickLength = 0.667 // ft
	DefaultBrickWidth  = 0.333 // ft
	DefaultBrickHeight = 0.25  // ft

	DefaultBrickUnitPrice = 15.0  // per brick
	DefaultTileUnitPrice  = 150.0 // per sq.ft of floor
	DefaultTileSize       = 2.0   // ft, square tile side

	DefaultWoodWindowRate      = 3500.0 // per sq.ft of window
	DefaultAluminiumWindowRate = 4500.0 // per sq.ft of window
)

// BrickSize is the nominal brick dimensions in feet.
type BrickSize struct {
	Length float64 `json:"length" mapstructure:"length"`
	Width  float64 `json:"width" mapstructure:"width"`
	Height float64 `json:"height" mapstructure:"height"`
}

// FaceArea is the exposed face of a laid brick. Width does not take part.
func (b BrickSize) FaceArea() float64 {
	return b.Length * b.Height
}

// MaterialConstants holds the process-wide sizing and pricing used by EstimateRoomCost.
type MaterialConstants struct {
	Brick               BrickSize `json:"brick" mapstructure:"brick"`
	BrickUnitPrice      float64   `json:"brickUnitPrice" mapstructure:"brick_unit_price"`
	TileUnitPrice       float64   `json:"tileUnitPrice" mapstructure:"tile_unit_price"`
	TileSize            float64   `json:"tileSize" mapstructure:"tile_size"`
	WoodWindowRate      float64   `json:"woodWindowRate" mapstructure:"wood_window_rate"`
	AluminiumWindowRate float64   `json:"aluminiumWindowRate" mapstructure:"aluminium_window_rate"`
}

// DefaultMaterialConstants returns the reference rate card.
func DefaultMaterialConstants() MaterialConstants {
	return MaterialConstants{
		Brick: BrickSize{
			Length: DefaultBrickLength,
			Width:  DefaultBrickWidth,
			Height: DefaultBrickHeight,
		},
		BrickUnitPrice:      DefaultBrickUnitPrice,
		TileUnitPrice:       DefaultTileUnitPrice,
		TileSize:            DefaultTileSize,
		WoodWindowRate:      DefaultWoodWindowRate,
		AluminiumWindowRate: DefaultAluminiumWindowRate,
	}
}

// TileArea is the nominal area of a single tile.
func (c MaterialConstants) TileArea() float64 {
	return c.TileSize * c.TileSize
}

// WindowRate returns the per sq.ft price for a window material.
func (c MaterialConstants) WindowRate(m WindowMaterial) (float64, error) {
	switch m {
	case Wood:
		return c.WoodWindowRate, nil
	case Aluminium:
		return c.AluminiumWindowRate, nil
	default:
		return 0, errors.Wrapf(ErrInvalidMaterialSelection, "window material %q", string(m))
	}
}

// Validate checks that the rate card can be used for estimation. Divisors must
// be positive and every price finite and non-negative.
func (c MaterialConstants) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"brick.length", c.Brick.Length},
		{"brick.width", c.Brick.Width},
		{"brick.height", c.Brick.Height},
		{"brick_unit_price", c.BrickUnitPrice},
		{"tile_unit_price", c.TileUnitPrice},
		{"tile_size", c.TileSize},
		{"wood_window_rate", c.WoodWindowRate},
		{"aluminium_window_rate", c.AluminiumWindowRate},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return errors.Errorf("material constants: %s is not a finite number", f.name)
		}
		if f.value < 0 {
			return errors.Errorf("material constants: %s must not be negative", f.name)
		}
	}
	if c.Brick.FaceArea() <= 0 {
		return errors.New("material constants: brick face area must be positive")
	}
	if c.TileArea() <= 0 {
		return errors.New("material constants: tile size must be positive")
	}
	return nil
}
