package services

import (
	"testing"

	"smartconstruction/estimate"
)

func TestNewRoom_Defaults(t *testing.T) {
	r := NewRoom("Bedroom")
	if r.ID == "" {
		t.Error("expected room ID to be set")
	}
	if r.Type != "Bedroom" {
		t.Errorf("Type = %q, want Bedroom", r.Type)
	}
	if r.Length != 12 || r.Width != 10 || r.Height != 10 {
		t.Errorf("unexpected dimensions %vx%vx%v", r.Length, r.Width, r.Height)
	}
	if r.WindowWidth != 4 || r.WindowHeight != 4 {
		t.Errorf("unexpected window %vx%v", r.WindowWidth, r.WindowHeight)
	}
	if r.WindowMaterial != estimate.Wood {
		t.Errorf("WindowMaterial = %q, want Wood", r.WindowMaterial)
	}
}

func TestQuotation_AddFloor(t *testing.T) {
	q := Quotation{}
	q = q.AddFloor("Ground Floor")
	q = q.AddFloor("")

	if len(q.Floors) != 2 {
		t.Fatalf("expected 2 floors, got %d", len(q.Floors))
	}
	if q.Floors[0].Name != "Ground Floor" {
		t.Errorf("floor 0 name = %q", q.Floors[0].Name)
	}
	if q.Floors[1].Name != "Floor 2" {
		t.Errorf("blank name should become %q, got %q", "Floor 2", q.Floors[1].Name)
	}
	if !q.Floors[0].Expanded {
		t.Error("new floors should be expanded")
	}
	if q.Floors[0].ID == q.Floors[1].ID {
		t.Error("floor IDs should be unique")
	}
	if q.NextFloorName() != "Floor 3" {
		t.Errorf("NextFloorName() = %q, want Floor 3", q.NextFloorName())
	}
}

func TestQuotation_AddFloorDoesNotMutateOriginal(t *testing.T) {
	orig := Quotation{}.AddFloor("Ground Floor")
	_ = orig.AddFloor("First Floor")

	if len(orig.Floors) != 1 {
		t.Errorf("original quotation changed: %d floors", len(orig.Floors))
	}
}

func TestQuotation_RemoveAndToggleFloor(t *testing.T) {
	q := Quotation{}.AddFloor("Ground Floor").AddFloor("First Floor")
	first := q.Floors[0].ID

	toggled := q.ToggleFloor(first)
	if toggled.Floors[0].Expanded {
		t.Error("expected floor to collapse")
	}
	if !q.Floors[0].Expanded {
		t.Error("toggle mutated the original quotation")
	}

	removed := q.RemoveFloor(first)
	if len(removed.Floors) != 1 || removed.Floors[0].Name != "First Floor" {
		t.Errorf("unexpected floors after remove: %+v", removed.Floors)
	}
}

func TestQuotation_AddRoom(t *testing.T) {
	q := Quotation{}.AddFloor("Ground Floor")
	floorID := q.Floors[0].ID

	q, err := q.AddRoom(floorID, "Kitchen")
	if err != nil {
		t.Fatalf("AddRoom() error = %v", err)
	}
	if len(q.Floors[0].Rooms) != 1 || q.Floors[0].Rooms[0].Type != "Kitchen" {
		t.Errorf("unexpected rooms %+v", q.Floors[0].Rooms)
	}
	if q.RoomCount() != 1 {
		t.Errorf("RoomCount() = %d, want 1", q.RoomCount())
	}

	if _, err := q.AddRoom("missing", "Kitchen"); err == nil {
		t.Error("expected error for unknown floor")
	}
}

func TestQuotation_UpdateAndRemoveRoom(t *testing.T) {
	q := Quotation{}.AddFloor("Ground Floor")
	floorID := q.Floors[0].ID
	q, _ = q.AddRoom(floorID, "Bedroom")
	roomID := q.Floors[0].Rooms[0].ID

	tests := []struct {
		field string
		value string
		check func(Room) bool
	}{
		{"length", "15.5", func(r Room) bool { return r.Length == 15.5 }},
		{"width", "abc", func(r Room) bool { return r.Width == 0 }},
		{"height", "", func(r Room) bool { return r.Height == 0 }},
		{"windowWidth", "3", func(r Room) bool { return r.WindowWidth == 3 }},
		{"windowHeight", "2", func(r Room) bool { return r.WindowHeight == 2 }},
		{"windowMaterial", "Aluminium", func(r Room) bool { return r.WindowMaterial == estimate.Aluminium }},
		{"type", "Master Bedroom", func(r Room) bool { return r.Type == "Master Bedroom" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			updated, err := q.UpdateRoom(floorID, roomID, tt.field, tt.value)
			if err != nil {
				t.Fatalf("UpdateRoom() error = %v", err)
			}
			if !tt.check(updated.Floors[0].Rooms[0]) {
				t.Errorf("field %s not updated: %+v", tt.field, updated.Floors[0].Rooms[0])
			}
			if q.Floors[0].Rooms[0].Length != DefaultRoomLength {
				t.Error("UpdateRoom mutated the original quotation")
			}
		})
	}

	if _, err := q.UpdateRoom(floorID, roomID, "colour", "red"); err == nil {
		t.Error("expected error for unknown field")
	}
	if _, err := q.UpdateRoom(floorID, "missing", "length", "1"); err == nil {
		t.Error("expected error for unknown room")
	}

	removed := q.RemoveRoom(floorID, roomID)
	if len(removed.Floors[0].Rooms) != 0 {
		t.Errorf("expected room to be removed, got %d rooms", len(removed.Floors[0].Rooms))
	}
	if len(q.Floors[0].Rooms) != 1 {
		t.Error("RemoveRoom mutated the original quotation")
	}
}

func TestValidateProjectDetails(t *testing.T) {
	errs := ValidateProjectDetails(ProjectDetails{})
	if errs["project_name"] == "" || errs["location"] == "" {
		t.Errorf("expected name and location errors, got %v", errs)
	}

	errs = ValidateProjectDetails(ProjectDetails{Name: "Modern Villa", Location: "Colombo 07"})
	if len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}
