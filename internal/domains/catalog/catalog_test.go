package catalog_test

import (
	"testing"

	"pgstay/internal/domains/catalog"
)

func TestRoomTypeLabel(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected string
	}{
		{
			name:     "known id resolves to label",
			id:       catalog.RoomTypeSingle,
			expected: "Single Sharing",
		},
		{
			name:     "unknown id resolves to raw id",
			id:       "penthouse",
			expected: "penthouse",
		},
		{
			name:     "empty id resolves to empty string",
			id:       "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := catalog.RoomTypeLabel(tt.id); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestAmenityLabel(t *testing.T) {
	if got := catalog.AmenityLabel("wifi"); got != "WiFi" {
		t.Errorf("expected WiFi, got %q", got)
	}

	// Lenient fallback: unknown amenity ids come back verbatim.
	if got := catalog.AmenityLabel("heated_pool"); got != "heated_pool" {
		t.Errorf("expected heated_pool, got %q", got)
	}
}

func TestRoomTypeIDs(t *testing.T) {
	ids := catalog.RoomTypeIDs()

	if len(ids) != 5 {
		t.Fatalf("expected 5 room types, got %d", len(ids))
	}

	if ids[0] != catalog.RoomTypeSingle || ids[len(ids)-1] != catalog.RoomTypeOther {
		t.Errorf("unexpected room type ordering: %v", ids)
	}

	// Returned slice is a copy; mutating it must not corrupt the catalog.
	ids[0] = "mutated"
	if catalog.RoomTypeIDs()[0] != catalog.RoomTypeSingle {
		t.Error("RoomTypeIDs must return a defensive copy")
	}
}

func TestKnownRoomType(t *testing.T) {
	if !catalog.KnownRoomType(catalog.RoomTypeDouble) {
		t.Error("expected double to be a known room type")
	}

	if catalog.KnownRoomType("suite") {
		t.Error("expected suite to be unknown")
	}
}

func TestAmenityCount(t *testing.T) {
	if got := catalog.AmenityCount(); got != 26 {
		t.Errorf("expected 26 amenities, got %d", got)
	}
}
