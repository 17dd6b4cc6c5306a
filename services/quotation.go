package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"smartconstruction/estimate"
)

// Room is a single room on a floor, identified within its quotation.
type Room struct {
	ID                string `json:"id" yaml:"id,omitempty"`
	Type              string `json:"type" yaml:"type"`
	estimate.RoomSpec `yaml:",inline"`
}

// Floor groups rooms under a named storey.
type Floor struct {
	ID       string `json:"id" yaml:"id,omitempty"`
	Name     string `json:"name" yaml:"name"`
	Rooms    []Room `json:"rooms" yaml:"rooms"`
	Expanded bool   `json:"expanded" yaml:"expanded,omitempty"`
}

// Labour is the crew estimate for the whole project.
type Labour struct {
	Workers   int     `json:"workers" yaml:"workers" mapstructure:"workers"`
	DailyRate float64 `json:"dailyRate" yaml:"daily_rate" mapstructure:"daily_rate"`
	Days      int     `json:"days" yaml:"days" mapstructure:"days"`
}

// FixedCosts are utility charges entered directly by the estimator.
type FixedCosts struct {
	Electricity float64 `json:"electricity" yaml:"electricity" mapstructure:"electricity"`
	Water       float64 `json:"water" yaml:"water" mapstructure:"water"`
	Transport   float64 `json:"transport" yaml:"transport" mapstructure:"transport"`
}

// ProjectDetails is the header of a quotation.
type ProjectDetails struct {
	Name        string `json:"name" yaml:"name"`
	Location    string `json:"location" yaml:"location"`
	Customer    string `json:"customer" yaml:"customer"`
	Description string `json:"description" yaml:"description"`
}

// Quotation is a project being priced room by room.
type Quotation struct {
	Project    ProjectDetails `json:"project" yaml:"project"`
	Floors     []Floor        `json:"floors" yaml:"floors"`
	Labour     Labour         `json:"labour" yaml:"labour"`
	FixedCosts FixedCosts     `json:"fixedCosts" yaml:"fixed_costs"`
}

// Default room dimensions used when a room is added to a floor.
const (
	DefaultRoomLength       = 12.0
	DefaultRoomWidth        = 10.0
	DefaultRoomHeight       = 10.0
	DefaultRoomWindowWidth  = 4.0
	DefaultRoomWindowHeight = 4.0
)

// DefaultLabour returns the starting crew for a new quotation.
func DefaultLabour() Labour {
	return Labour{Workers: 10, DailyRate: 1500, Days: 90}
}

// DefaultFixedCosts returns the starting utility charges for a new quotation.
func DefaultFixedCosts() FixedCosts {
	return FixedCosts{Electricity: 25000, Water: 15000, Transport: 30000}
}

// NewQuotation returns an empty quotation with the given labour and fixed cost defaults.
func NewQuotation(labour Labour, fixed FixedCosts) Quotation {
	return Quotation{Labour: labour, FixedCosts: fixed}
}

// NewRoom returns a room of the given type with the default dimensions and a wooden window.
func NewRoom(roomType string) Room {
	return Room{
		ID:   uuid.NewString(),
		Type: roomType,
		RoomSpec: estimate.RoomSpec{
			Length:         DefaultRoomLength,
			Width:          DefaultRoomWidth,
			Height:         DefaultRoomHeight,
			WindowWidth:    DefaultRoomWindowWidth,
			WindowHeight:   DefaultRoomWindowHeight,
			WindowMaterial: estimate.Wood,
		},
	}
}

// NextFloorName returns the label for a floor appended after the existing ones.
func (q Quotation) NextFloorName() string {
	return fmt.Sprintf("Floor %d", len(q.Floors)+1)
}

// AddFloor appends an expanded, empty floor. A blank name falls back to NextFloorName.
func (q Quotation) AddFloor(name string) Quotation {
	name = strings.TrimSpace(name)
	if name == "" {
		name = q.NextFloorName()
	}
	q.Floors = append(cloneFloors(q.Floors), Floor{
		ID:       uuid.NewString(),
		Name:     name,
		Expanded: true,
	})
	return q
}

// RemoveFloor drops the floor with the given ID.
func (q Quotation) RemoveFloor(floorID string) Quotation {
	q.Floors = lo.Reject(q.Floors, func(f Floor, _ int) bool { return f.ID == floorID })
	return q
}

// ToggleFloor flips whether a floor's rooms are shown.
func (q Quotation) ToggleFloor(floorID string) Quotation {
	q.Floors = lo.Map(q.Floors, func(f Floor, _ int) Floor {
		if f.ID == floorID {
			f.Expanded = !f.Expanded
		}
		return f
	})
	return q
}

// AddRoom appends a default room of the given type to a floor.
func (q Quotation) AddRoom(floorID, roomType string) (Quotation, error) {
	idx := q.floorIndex(floorID)
	if idx < 0 {
		return q, fmt.Errorf("floor %q not found", floorID)
	}
	q.Floors = cloneFloors(q.Floors)
	q.Floors[idx].Rooms = append(cloneRooms(q.Floors[idx].Rooms), NewRoom(roomType))
	return q, nil
}

// RemoveRoom drops a room from a floor.
func (q Quotation) RemoveRoom(floorID, roomID string) Quotation {
	q.Floors = lo.Map(q.Floors, func(f Floor, _ int) Floor {
		if f.ID == floorID {
			f.Rooms = lo.Reject(f.Rooms, func(r Room, _ int) bool { return r.ID == roomID })
		}
		return f
	})
	return q
}

// UpdateRoom sets a single editable field on a room. Numeric fields that fail
// to parse become 0; the window material is stored as given and validated by
// the estimator.
func (q Quotation) UpdateRoom(floorID, roomID, field, value string) (Quotation, error) {
	fi := q.floorIndex(floorID)
	if fi < 0 {
		return q, fmt.Errorf("floor %q not found", floorID)
	}
	_, ri, ok := lo.FindIndexOf(q.Floors[fi].Rooms, func(r Room) bool { return r.ID == roomID })
	if !ok {
		return q, fmt.Errorf("room %q not found on floor %q", roomID, floorID)
	}

	q.Floors = cloneFloors(q.Floors)
	q.Floors[fi].Rooms = cloneRooms(q.Floors[fi].Rooms)
	room := &q.Floors[fi].Rooms[ri]

	switch field {
	case "type":
		room.Type = value
	case "length":
		room.Length = ParseNumber(value)
	case "width":
		room.Width = ParseNumber(value)
	case "height":
		room.Height = ParseNumber(value)
	case "windowWidth":
		room.WindowWidth = ParseNumber(value)
	case "windowHeight":
		room.WindowHeight = ParseNumber(value)
	case "windowMaterial":
		room.WindowMaterial = estimate.WindowMaterial(value)
	default:
		return q, fmt.Errorf("unknown room field %q", field)
	}
	return q, nil
}

// RoomCount returns the number of rooms across all floors.
func (q Quotation) RoomCount() int {
	return lo.SumBy(q.Floors, func(f Floor) int { return len(f.Rooms) })
}

func (q Quotation) floorIndex(floorID string) int {
	_, idx, ok := lo.FindIndexOf(q.Floors, func(f Floor) bool { return f.ID == floorID })
	if !ok {
		return -1
	}
	return idx
}

func cloneFloors(floors []Floor) []Floor {
	out := make([]Floor, len(floors))
	copy(out, floors)
	return out
}

func cloneRooms(rooms []Room) []Room {
	out := make([]Room, len(rooms))
	copy(out, rooms)
	return out
}

// ValidateProjectDetails returns field errors keyed by form field name.
func ValidateProjectDetails(p ProjectDetails) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(p.Name) == "" {
		errs["project_name"] = "Project name is required"
	}
	if strings.TrimSpace(p.Location) == "" {
		errs["location"] = "Location is required"
	}
	return errs
}
