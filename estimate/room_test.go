package estimate

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultRoom() RoomSpec {
	return RoomSpec{
		Length:         12,
		Width:          10,
		Height:         10,
		WindowWidth:    4,
		WindowHeight:   4,
		WindowMaterial: Wood,
	}
}

func TestEstimateRoomCost_WoodWindow(t *testing.T) {
	got, err := EstimateRoomCost(defaultRoom(), DefaultMaterialConstants())
	require.NoError(t, err)

	assert.Equal(t, 440.0, got.WallArea)
	assert.Equal(t, 120.0, got.FloorArea)
	assert.Equal(t, 16.0, got.WindowArea)
	assert.Equal(t, 424.0, got.NetWallArea)
	assert.Equal(t, 2543, got.BricksNeeded)
	assert.Equal(t, 38145.0, got.BrickCost)
	assert.Equal(t, 30, got.TilesNeeded)
	assert.Equal(t, 18000.0, got.TileCost)
	assert.Equal(t, 56000.0, got.WindowCost)
	assert.Equal(t, 112145.0, got.Total)
}

func TestEstimateRoomCost_AluminiumWindow(t *testing.T) {
	room := defaultRoom()
	room.WindowMaterial = Aluminium

	wood, err := EstimateRoomCost(defaultRoom(), DefaultMaterialConstants())
	require.NoError(t, err)
	alu, err := EstimateRoomCost(room, DefaultMaterialConstants())
	require.NoError(t, err)

	assert.Equal(t, 72000.0, alu.WindowCost)
	assert.Equal(t, 128145.0, alu.Total)

	assert.Equal(t, wood.BricksNeeded, alu.BricksNeeded)
	assert.Equal(t, wood.BrickCost, alu.BrickCost)
	assert.Equal(t, wood.TilesNeeded, alu.TilesNeeded)
	assert.Equal(t, wood.TileCost, alu.TileCost)
}

func TestEstimateRoomCost_Deterministic(t *testing.T) {
	c := DefaultMaterialConstants()
	first, err := EstimateRoomCost(defaultRoom(), c)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		again, err := EstimateRoomCost(defaultRoom(), c)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestEstimateRoomCost_BrickPriceLinearity(t *testing.T) {
	c := DefaultMaterialConstants()
	base, err := EstimateRoomCost(defaultRoom(), c)
	require.NoError(t, err)

	c.BrickUnitPrice *= 2
	doubled, err := EstimateRoomCost(defaultRoom(), c)
	require.NoError(t, err)

	assert.Equal(t, base.BrickCost*2, doubled.BrickCost)
	assert.Equal(t, base.TilesNeeded, doubled.TilesNeeded)
	assert.Equal(t, base.TileCost, doubled.TileCost)
	assert.Equal(t, base.WindowCost, doubled.WindowCost)
}

func TestEstimateRoomCost_BrickCeiling(t *testing.T) {
	c := DefaultMaterialConstants()
	c.Brick = BrickSize{Length: 0.5, Width: 0.25, Height: 0.5} // face area 0.25

	tests := []struct {
		name   string
		room   RoomSpec
		expect int
	}{
		{
			name:   "exact quotient",
			room:   RoomSpec{Length: 1, Width: 1, Height: 1, WindowMaterial: Wood},
			expect: 16, // 4 / 0.25
		},
		{
			name:   "rounded up",
			room:   RoomSpec{Length: 1, Width: 1, Height: 1, WindowWidth: 0.1, WindowHeight: 1, WindowMaterial: Wood},
			expect: 16, // 3.9 / 0.25 = 15.6
		},
		{
			name:   "brick width ignored",
			room:   RoomSpec{Length: 2, Width: 3, Height: 1, WindowMaterial: Wood},
			expect: 40, // 10 / 0.25
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EstimateRoomCost(tt.room, c)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, got.BricksNeeded)
		})
	}
}

func TestEstimateRoomCost_NoWindow(t *testing.T) {
	room := defaultRoom()
	room.WindowWidth = 0
	room.WindowHeight = 0

	got, err := EstimateRoomCost(room, DefaultMaterialConstants())
	require.NoError(t, err)

	assert.Equal(t, 0.0, got.WindowCost)
	assert.Equal(t, got.WallArea, got.NetWallArea)
}

func TestEstimateRoomCost_WindowHalfOfWall(t *testing.T) {
	room := RoomSpec{Length: 4, Width: 4, Height: 2, WindowWidth: 4, WindowHeight: 4, WindowMaterial: Wood}

	got, err := EstimateRoomCost(room, DefaultMaterialConstants())
	require.NoError(t, err)

	assert.Equal(t, 32.0, got.WallArea)
	assert.Equal(t, 16.0, got.WindowArea)
	assert.Equal(t, 16.0, got.NetWallArea)
	assert.Positive(t, got.BricksNeeded)
}

func TestEstimateRoomCost_WindowLargerThanWalls(t *testing.T) {
	c := DefaultMaterialConstants()
	room := RoomSpec{Length: 1, Width: 1, Height: 1, WindowWidth: 10, WindowHeight: 10, WindowMaterial: Wood}

	got, err := EstimateRoomCost(room, c)
	require.NoError(t, err)

	assert.Equal(t, -96.0, got.NetWallArea)
	assert.Equal(t, int(math.Ceil(-96/c.Brick.FaceArea())), got.BricksNeeded)
	assert.Less(t, got.BricksNeeded, 0)
	assert.Equal(t, float64(got.BricksNeeded)*c.BrickUnitPrice, got.BrickCost)
	assert.Equal(t, got.BrickCost+got.TileCost+got.WindowCost, got.Total)
}

func TestEstimateRoomCost_TileCostIgnoresTileCount(t *testing.T) {
	room := RoomSpec{Length: 3, Width: 3, Height: 1, WindowMaterial: Wood}

	got, err := EstimateRoomCost(room, DefaultMaterialConstants())
	require.NoError(t, err)

	assert.Equal(t, 3, got.TilesNeeded) // ceil(9 / 4)
	assert.Equal(t, 9*DefaultTileUnitPrice, got.TileCost)
}

func TestEstimateRoomCost_InvalidMaterial(t *testing.T) {
	room := defaultRoom()
	room.WindowMaterial = "Glass"

	_, err := EstimateRoomCost(room, DefaultMaterialConstants())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidMaterialSelection))
	assert.Equal(t, "invalid_material_selection", ErrorCode(err))
}

func TestEstimateRoomCost_NonFiniteInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RoomSpec)
	}{
		{"NaN length", func(r *RoomSpec) { r.Length = math.NaN() }},
		{"+Inf width", func(r *RoomSpec) { r.Width = math.Inf(1) }},
		{"-Inf height", func(r *RoomSpec) { r.Height = math.Inf(-1) }},
		{"NaN window width", func(r *RoomSpec) { r.WindowWidth = math.NaN() }},
		{"Inf window height", func(r *RoomSpec) { r.WindowHeight = math.Inf(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := defaultRoom()
			tt.mutate(&room)

			_, err := EstimateRoomCost(room, DefaultMaterialConstants())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrNonFiniteInput))
			assert.Equal(t, "non_finite_input", ErrorCode(err))
		})
	}
}

func TestEstimateRoomCost_NonFiniteCheckedBeforeMaterial(t *testing.T) {
	room := RoomSpec{Length: math.NaN(), WindowMaterial: "Glass"}

	_, err := EstimateRoomCost(room, DefaultMaterialConstants())
	assert.True(t, errors.Is(err, ErrNonFiniteInput))
}

func TestEstimateRoomCost_CountOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		room RoomSpec
	}{
		{"huge walls", RoomSpec{Length: 1e18, Width: 1e18, Height: 1, WindowMaterial: Wood}},
		{"huge floor only", RoomSpec{Length: 1e9, Width: 1e9, WindowMaterial: Wood}},
		{"huge window", RoomSpec{Length: 12, Width: 10, Height: 10, WindowWidth: 1e18, WindowHeight: 1e18, WindowMaterial: Wood}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := EstimateRoomCost(tt.room, DefaultMaterialConstants())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrQuantityOutOfRange))
			assert.Equal(t, "quantity_out_of_range", ErrorCode(err))
			assert.Equal(t, RoomCostBreakdown{}, b)
		})
	}
}

func TestEstimateRoomCost_LargeRoomStaysPositive(t *testing.T) {
	room := RoomSpec{Length: 1e6, Width: 1e6, Height: 10, WindowMaterial: Wood}

	b, err := EstimateRoomCost(room, DefaultMaterialConstants())
	require.NoError(t, err)
	assert.Greater(t, b.BricksNeeded, 0)
	assert.Greater(t, b.TilesNeeded, 0)
	assert.Greater(t, b.Total, 0.0)
}

func TestCount(t *testing.T) {
	n, err := Count(-42, "bricks")
	require.NoError(t, err)
	assert.Equal(t, -42, n)

	n, err = Count(MaxCount, "bricks")
	require.NoError(t, err)
	assert.Equal(t, MaxCount, n)

	_, err = Count(2*MaxCount, "tiles")
	assert.True(t, errors.Is(err, ErrQuantityOutOfRange))
}
