package model

import (
	"slices"
	"time"

	"pgstay/shared/constant"
	"pgstay/shared/failure"
	"pgstay/shared/money"
)

const (
	EntityName = "draft"
)

// Gender values selectable in stage 1. Empty string means not chosen yet.
const (
	GenderMen    = "men"
	GenderWomen  = "women"
	GenderUnisex = "unisex"
)

// House rules every listing starts with. They are part of the product's
// terms and cannot be removed by the owner.
var SeededRules = []string{
	"No smoking inside the property",
	"Visitors are not allowed after gate close time",
}

// Image buckets accepted by the stage-5 upload endpoint.
const (
	ImageBucketBuilding = "building"
	ImageBucketAmenity  = "amenity"
	ImageBucketRoom     = "room"
)

// RoomConfig is one stage-4 room entry. A room type can be selected at most
// once per draft; re-selecting it removes the entry (toggle semantics).
type RoomConfig struct {
	TypeID  string       `json:"type_id"`
	Count   int          `json:"count"`
	AC      bool         `json:"ac"`
	Price   money.Amount `json:"price"`
	Deposit money.Amount `json:"deposit"`
}

// Basic holds the stage-1 fields.
type Basic struct {
	Name               string  `json:"name"`
	Gender             string  `json:"gender"`
	RegistrationNumber string  `json:"registration_number"`
	State              string  `json:"state"`
	City               string  `json:"city"`
	Locality           string  `json:"locality"`
	ContactPerson      string  `json:"contact_person"`
	Mobile             string  `json:"mobile"`
	Email              string  `json:"email"`
	Address            string  `json:"address"`
	Landmark           string  `json:"landmark"`
	FoodIncluded       bool    `json:"food_included"`
	GateCloseTime      string  `json:"gate_close_time"`
	NoticePeriod       string  `json:"notice_period"`
	Description        string  `json:"description"`
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
}

// BasicPatch is a shallow partial update of the stage-1 fields. Only non-nil
// fields are applied; there is no recursive merging anywhere in the draft.
type BasicPatch struct {
	Name               *string  `json:"name"`
	Gender             *string  `json:"gender"                validate:"omitempty,oneof=men women unisex"`
	RegistrationNumber *string  `json:"registration_number"`
	State              *string  `json:"state"`
	City               *string  `json:"city"`
	Locality           *string  `json:"locality"`
	ContactPerson      *string  `json:"contact_person"`
	Mobile             *string  `json:"mobile"                validate:"omitempty,min=10,max=15"`
	Email              *string  `json:"email"                 validate:"omitempty,email"`
	Address            *string  `json:"address"`
	Landmark           *string  `json:"landmark"`
	FoodIncluded       *bool    `json:"food_included"`
	GateCloseTime      *string  `json:"gate_close_time"`
	NoticePeriod       *string  `json:"notice_period"`
	Description        *string  `json:"description"`
	Latitude           *float64 `json:"latitude"`
	Longitude          *float64 `json:"longitude"`
}

// Draft accumulates one in-progress listing across the five wizard stages.
// It lives only in memory for the lifetime of the wizard session: it is
// consumed on successful submission and simply dropped if the owner walks
// away. One draft has exactly one writer.
type Draft struct {
	ID      string    `json:"id"`
	OwnerID string    `json:"owner_id"`
	Stage   int       `json:"stage"`
	Created time.Time `json:"created"`

	Basic Basic `json:"basic"`

	Amenities []string     `json:"amenities"`
	Rules     []string     `json:"rules"`
	Rooms     []RoomConfig `json:"rooms"`

	BuildingImages []string          `json:"building_images"`
	AmenityImages  []string          `json:"amenity_images"`
	RoomImages     map[string]string `json:"room_images"`
}

// New returns a fresh draft at stage 1 with the seeded rules in place.
func New(id, ownerID string, created time.Time) *Draft {
	draft := &Draft{
		ID:      id,
		OwnerID: ownerID,
		Created: created,
	}
	draft.Reset()

	return draft
}

// Reset restores every field to its default and moves the cursor back to the
// first stage. The draft identity is kept.
func (d *Draft) Reset() {
	d.Stage = constant.StageFirst
	d.Basic = Basic{}
	d.Amenities = nil
	d.Rules = slices.Clone(SeededRules)
	d.Rooms = nil
	d.BuildingImages = nil
	d.AmenityImages = nil
	d.RoomImages = map[string]string{}
}

// ApplyBasic shallow-merges the non-nil patch fields into the stage-1 data.
func (d *Draft) ApplyBasic(patch BasicPatch) {
	applyString(&d.Basic.Name, patch.Name)
	applyString(&d.Basic.Gender, patch.Gender)
	applyString(&d.Basic.RegistrationNumber, patch.RegistrationNumber)
	applyString(&d.Basic.State, patch.State)
	applyString(&d.Basic.City, patch.City)
	applyString(&d.Basic.Locality, patch.Locality)
	applyString(&d.Basic.ContactPerson, patch.ContactPerson)
	applyString(&d.Basic.Mobile, patch.Mobile)
	applyString(&d.Basic.Email, patch.Email)
	applyString(&d.Basic.Address, patch.Address)
	applyString(&d.Basic.Landmark, patch.Landmark)
	applyString(&d.Basic.GateCloseTime, patch.GateCloseTime)
	applyString(&d.Basic.NoticePeriod, patch.NoticePeriod)
	applyString(&d.Basic.Description, patch.Description)

	if patch.FoodIncluded != nil {
		d.Basic.FoodIncluded = *patch.FoodIncluded
	}

	if patch.Latitude != nil {
		d.Basic.Latitude = *patch.Latitude
	}

	if patch.Longitude != nil {
		d.Basic.Longitude = *patch.Longitude
	}
}

func applyString(dest *string, src *string) {
	if src != nil {
		*dest = *src
	}
}

// SetAmenities replaces the stage-2 selection whole, deduplicating while
// preserving first-seen order.
func (d *Draft) SetAmenities(ids []string) {
	selected := make([]string, 0, len(ids))

	for _, id := range ids {
		if id == constant.Empty || slices.Contains(selected, id) {
			continue
		}

		selected = append(selected, id)
	}

	d.Amenities = selected
}

// AddRule appends a house rule. Inserting a rule that is already present is
// rejected, seeded rules included.
func (d *Draft) AddRule(rule string) error {
	if slices.Contains(d.Rules, rule) {
		return failure.Validation(constant.StageRules, "rules", "rule already present")
	}

	d.Rules = append(d.Rules, rule)

	return nil
}

// RemoveRule removes an owner-added rule. Removing a seeded rule is an
// explicit rejection rather than a silent no-op.
func (d *Draft) RemoveRule(rule string) error {
	if slices.Contains(SeededRules, rule) {
		return failure.Validation(constant.StageRules, "rules", "seeded rules cannot be removed")
	}

	index := slices.Index(d.Rules, rule)
	if index == -1 {
		return failure.Validation(constant.StageRules, "rules", "rule not found")
	}

	d.Rules = slices.Delete(d.Rules, index, index+1)

	return nil
}

// ToggleRoom selects a room configuration, or deselects the type if it is
// already selected. Selection order is preserved for normalization.
func (d *Draft) ToggleRoom(cfg RoomConfig) {
	index := slices.IndexFunc(d.Rooms, func(existing RoomConfig) bool {
		return existing.TypeID == cfg.TypeID
	})

	if index >= 0 {
		d.Rooms = slices.Delete(d.Rooms, index, index+1)

		delete(d.RoomImages, cfg.TypeID)

		return
	}

	if cfg.Count < 1 {
		cfg.Count = 1
	}

	d.Rooms = append(d.Rooms, cfg)
}

// RoomSelected reports whether the given room type is part of the draft.
func (d *Draft) RoomSelected(typeID string) bool {
	return slices.ContainsFunc(d.Rooms, func(cfg RoomConfig) bool {
		return cfg.TypeID == typeID
	})
}

// AddImage files an uploaded image URL into one of the three stage-5
// buckets. Room images are keyed by room type and replace any previous
// upload for that type.
func (d *Draft) AddImage(bucket, roomTypeID, url string) error {
	switch bucket {
	case ImageBucketBuilding:
		d.BuildingImages = append(d.BuildingImages, url)
	case ImageBucketAmenity:
		d.AmenityImages = append(d.AmenityImages, url)
	case ImageBucketRoom:
		if !d.RoomSelected(roomTypeID) {
			return failure.Validation(constant.StageImages, roomTypeID, "room type not selected")
		}

		if d.RoomImages == nil {
			d.RoomImages = map[string]string{}
		}

		d.RoomImages[roomTypeID] = url
	default:
		return failure.Validation(constant.StageImages, "bucket", "unknown image bucket")
	}

	return nil
}
