package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"pgstay/shared/model"
	"pgstay/shared/money"
)

const (
	TableName  = "listings"
	EntityName = "listing"

	FieldID             = "id"
	FieldOwnerID        = "owner_id"
	FieldOwnerName      = "owner_name"
	FieldTitle          = "title"
	FieldCity           = "city"
	FieldLocality       = "locality"
	FieldGender         = "gender"
	FieldFoodIncluded   = "food_included"
	FieldPrice          = "price"
	FieldRating         = "rating"
	FieldIdempotencyKey = "idempotency_key"
)

// Gender values carried on a canonical listing. Empty means the owner never
// set one; the search engine treats that as matching every gender filter.
const (
	GenderMen    = "men"
	GenderWomen  = "women"
	GenderUnisex = "unisex"
)

// Room is one entry of the detailed room inventory. Count is the configured
// number of rooms of this type; Available is what the store reports as
// currently free. Count wins over Available wherever one number is needed.
type Room struct {
	Label     string       `json:"label"`
	Count     int          `json:"count"`
	Available int          `json:"available"`
	AC        bool         `json:"ac"`
	Price     money.Amount `json:"price"`
	Deposit   money.Amount `json:"deposit"`
}

// Rooms is stored as a single JSONB column and is the single source of truth
// for the room inventory. The legacy occupancy projection is derived from it
// on every read and never maintained on its own.
type Rooms []Room

func (r Rooms) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}

	encoded, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to encode rooms: %w", err)
	}

	return encoded, nil
}

func (r *Rooms) Scan(src any) error {
	return scanJSON(src, r, "rooms")
}

// StringSlice is a JSONB-backed list column.
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}

	encoded, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode string slice: %w", err)
	}

	return encoded, nil
}

func (s *StringSlice) Scan(src any) error {
	return scanJSON(src, s, "string slice")
}

// PriceMap is a JSONB-backed label-to-price column used only by legacy rows
// that predate the detailed rooms inventory.
type PriceMap map[string]money.Amount

func (p PriceMap) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}

	encoded, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode price map: %w", err)
	}

	return encoded, nil
}

func (p *PriceMap) Scan(src any) error {
	return scanJSON(src, p, "price map")
}

func scanJSON(src, dest any, what string) error {
	switch value := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(value) == 0 {
			return nil
		}

		if err := json.Unmarshal(value, dest); err != nil {
			return fmt.Errorf("failed to decode %s: %w", what, err)
		}

		return nil
	case string:
		if value == "" {
			return nil
		}

		if err := json.Unmarshal([]byte(value), dest); err != nil {
			return fmt.Errorf("failed to decode %s: %w", what, err)
		}

		return nil
	default:
		return fmt.Errorf("cannot scan %T into %s", src, what)
	}
}

// Listing is the canonical, submitted record as persisted in the listing
// store. It is produced once by the wizard's normalization step and is
// immutable from the wizard's point of view afterwards.
type Listing struct {
	ID                 string       `db:"id"`
	OwnerID            string       `db:"owner_id"`
	OwnerName          string       `db:"owner_name"`
	Title              string       `db:"title"`
	Description        string       `db:"description"`
	Gender             string       `db:"gender"`
	RegistrationNumber string       `db:"registration_number"`
	State              string       `db:"state"`
	City               string       `db:"city"`
	Locality           string       `db:"locality"`
	Address            string       `db:"address"`
	Landmark           string       `db:"landmark"`
	Latitude           float64      `db:"latitude"`
	Longitude          float64      `db:"longitude"`
	ContactPerson      string       `db:"contact_person"`
	Mobile             string       `db:"mobile"`
	Email              string       `db:"email"`
	FoodIncluded       *bool        `db:"food_included"`
	NoticePeriod       string       `db:"notice_period"`
	GateCloseTime      string       `db:"gate_close_time"`
	Price              money.Amount `db:"price"`
	SafetyDeposit      money.Amount `db:"safety_deposit"`
	Amenities          StringSlice  `db:"amenities"`
	Rules              StringSlice  `db:"rules"`
	Images             StringSlice  `db:"images"`
	ImageURL           string       `db:"image_url"`
	Rooms              Rooms        `db:"rooms"`
	LegacyTypes        StringSlice  `db:"occupancy_types"`
	LegacyPrices       PriceMap     `db:"occupancy_prices"`
	IdempotencyKey     string       `db:"idempotency_key"`
	Rating             float64      `db:"rating"`
	model.Metadata
}

// HasRooms reports whether the listing carries the detailed room inventory.
// Legacy rows imported from the old store may only have the occupancy maps.
func (l *Listing) HasRooms() bool {
	return len(l.Rooms) > 0
}

// OccupancyTypes returns the legacy label list. For listings with a rooms
// inventory it is regenerated from Rooms in array order on every call; the
// stored legacy column is only consulted when Rooms is absent.
func (l *Listing) OccupancyTypes() []string {
	if !l.HasRooms() {
		return l.LegacyTypes
	}

	labels := make([]string, len(l.Rooms))
	for i, room := range l.Rooms {
		labels[i] = room.Label
	}

	return labels
}

// OccupancyPrices returns the legacy label-to-price map, regenerated from
// Rooms whenever the inventory is present. On a duplicate label the later
// room wins silently.
func (l *Listing) OccupancyPrices() map[string]money.Amount {
	if !l.HasRooms() {
		return l.LegacyPrices
	}

	prices := make(map[string]money.Amount, len(l.Rooms))
	for _, room := range l.Rooms {
		prices[room.Label] = room.Price
	}

	return prices
}
