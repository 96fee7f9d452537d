package model

import (
	"fmt"
	"slices"

	"pgstay/shared/constant"
	"pgstay/shared/failure"
)

// Gate runs the validation gate for one wizard stage. Gates are pure: they
// never mutate the draft and return the same verdict for the same draft no
// matter how often they run.
func Gate(stage int, d *Draft) error {
	switch stage {
	case constant.StageBasic:
		return gateBasic(d)
	case constant.StageAmenities:
		return gateAmenities(d)
	case constant.StageRules:
		return gateRules(d)
	case constant.StageRooms:
		return gateRooms(d)
	case constant.StageImages:
		return gateImages(d)
	default:
		return failure.BadRequestFromString(fmt.Sprintf("unknown wizard stage %d", stage))
	}
}

// RunAllGates re-evaluates every stage gate in order and returns the first
// failure. Used as defense in depth before submission.
func RunAllGates(d *Draft) error {
	for stage := constant.StageFirst; stage <= constant.StageLast; stage++ {
		if err := Gate(stage, d); err != nil {
			return err
		}
	}

	return nil
}

func gateBasic(d *Draft) error {
	required := []struct {
		field string
		value string
	}{
		{"name", d.Basic.Name},
		{"gender", d.Basic.Gender},
		{"city", d.Basic.City},
		{"contact_person", d.Basic.ContactPerson},
		{"mobile", d.Basic.Mobile},
		{"email", d.Basic.Email},
	}

	for _, item := range required {
		if item.value == constant.Empty {
			return failure.Validation(constant.StageBasic, item.field, "required field is empty")
		}
	}

	if d.Basic.Latitude == 0 || d.Basic.Longitude == 0 {
		return failure.Validation(constant.StageBasic, "location", "location is not set")
	}

	return nil
}

func gateAmenities(d *Draft) error {
	if len(d.Amenities) == 0 {
		return failure.Validation(constant.StageAmenities, "amenities", "select at least one amenity")
	}

	return nil
}

// Duplicate and seeded-rule enforcement happens at insert/remove time; the
// stage gate only re-checks the structural invariants.
func gateRules(d *Draft) error {
	for _, seeded := range SeededRules {
		if !slices.Contains(d.Rules, seeded) {
			return failure.Validation(constant.StageRules, "rules", "seeded rule is missing")
		}
	}

	seen := make(map[string]struct{}, len(d.Rules))
	for _, rule := range d.Rules {
		if _, dup := seen[rule]; dup {
			return failure.Validation(constant.StageRules, "rules", "duplicate rule")
		}

		seen[rule] = struct{}{}
	}

	return nil
}

func gateRooms(d *Draft) error {
	if len(d.Rooms) == 0 {
		return failure.Validation(constant.StageRooms, "rooms", "select at least one room type")
	}

	for _, cfg := range d.Rooms {
		if cfg.Price <= 0 {
			return failure.Validation(constant.StageRooms, cfg.TypeID, "room price must be positive")
		}
	}

	return nil
}

func gateImages(d *Draft) error {
	if len(d.BuildingImages) < constant.MinBuildingImages || len(d.BuildingImages) > constant.MaxBuildingImages {
		return failure.Validation(constant.StageImages, "building_images",
			fmt.Sprintf("between %d and %d building images required", constant.MinBuildingImages, constant.MaxBuildingImages))
	}

	if len(d.AmenityImages) < constant.MinAmenityImages || len(d.AmenityImages) > constant.MaxAmenityImages {
		return failure.Validation(constant.StageImages, "amenity_images",
			fmt.Sprintf("between %d and %d amenity images required", constant.MinAmenityImages, constant.MaxAmenityImages))
	}

	for _, cfg := range d.Rooms {
		if d.RoomImages[cfg.TypeID] == constant.Empty {
			return failure.Validation(constant.StageImages, cfg.TypeID, "room image required for selected room type")
		}
	}

	return nil
}
