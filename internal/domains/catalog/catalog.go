// Package catalog holds the static id-to-label lookup tables consulted by the
// wizard gates and the normalization step. Lookups are total: an id the
// catalog does not know resolves to the raw id instead of erroring, so stale
// clients and hand-entered data degrade to an ugly label rather than a failure.
package catalog

// Room type ids selectable in stage 4 of the wizard.
const (
	RoomTypeSingle = "single"
	RoomTypeDouble = "double"
	RoomTypeTriple = "triple"
	RoomTypeFour   = "four"
	RoomTypeOther  = "other"
)

var roomTypeOrder = []string{
	RoomTypeSingle,
	RoomTypeDouble,
	RoomTypeTriple,
	RoomTypeFour,
	RoomTypeOther,
}

var roomTypes = map[string]string{
	RoomTypeSingle: "Single Sharing",
	RoomTypeDouble: "Double Sharing",
	RoomTypeTriple: "Triple Sharing",
	RoomTypeFour:   "Four Sharing",
	RoomTypeOther:  "Other",
}

var amenities = map[string]string{
	"wifi":           "WiFi",
	"ac":             "Air Conditioning",
	"power_backup":   "Power Backup",
	"laundry":        "Laundry",
	"housekeeping":   "Housekeeping",
	"parking_2w":     "Two Wheeler Parking",
	"parking_4w":     "Four Wheeler Parking",
	"cctv":           "CCTV",
	"security_guard": "Security Guard",
	"lift":           "Lift",
	"ro_water":       "RO Water",
	"hot_water":      "Hot Water",
	"tv":             "Television",
	"fridge":         "Refrigerator",
	"washing_m":      "Washing Machine",
	"microwave":      "Microwave",
	"kitchen":        "Common Kitchen",
	"dining":         "Dining Area",
	"gym":            "Gym",
	"common_area":    "Common Area",
	"balcony":        "Balcony",
	"attached_bath":  "Attached Bathroom",
	"cot":            "Cot",
	"mattress":       "Mattress",
	"cupboard":       "Cupboard",
	"study_table":    "Study Table",
}

// RoomTypeLabel resolves a room type id to its display label.
func RoomTypeLabel(id string) string {
	if label, ok := roomTypes[id]; ok {
		return label
	}

	return id
}

// AmenityLabel resolves an amenity id to its display label.
func AmenityLabel(id string) string {
	if label, ok := amenities[id]; ok {
		return label
	}

	return id
}

// RoomTypeIDs returns the selectable room type ids in display order.
func RoomTypeIDs() []string {
	ids := make([]string, len(roomTypeOrder))
	copy(ids, roomTypeOrder)

	return ids
}

// KnownRoomType reports whether id is one of the selectable room types.
func KnownRoomType(id string) bool {
	_, ok := roomTypes[id]

	return ok
}

func AmenityCount() int {
	return len(amenities)
}
