package services

// RoomTypeOptions lists the room types offered when adding a room.
var RoomTypeOptions = []string{
	"Living Room",
	"Bedroom",
	"Kitchen",
	"Bathroom",
	"Dining Room",
	"Study",
	"Custom Room",
}

// FloorPresets lists suggested floor names in build order.
var FloorPresets = []string{
	"Ground Floor",
	"First Floor",
	"Second Floor",
	"Third Floor",
	"Terrace",
}

// UnitOptions returns the units offered for material line items.
var UnitOptions = []string{
	"pieces",
	"bags",
	"kg",
	"MT",
	"sq.ft",
	"cu.ft",
	"Rmt",
	"Ltr",
	"Lot",
	"Trip",
}
