package dto

import (
	"mime/multipart"

	"pgstay/internal/domains/draft/model"
	"pgstay/shared/money"
)

type UpdateBasicRequest struct {
	model.BasicPatch
}

type SetAmenitiesRequest struct {
	Amenities []string `json:"amenities" validate:"required,dive,max=50"`
}

type RuleRequest struct {
	Rule string `json:"rule" validate:"required,max=200"`
}

type ToggleRoomRequest struct {
	TypeID  string       `json:"type_id" validate:"required,max=50"`
	Count   int          `json:"count"   validate:"omitempty,min=1"`
	AC      bool         `json:"ac"`
	Price   money.Amount `json:"price"   validate:"omitempty"`
	Deposit money.Amount `json:"deposit" validate:"omitempty"`
}

func (t *ToggleRoomRequest) ToModel() model.RoomConfig {
	return model.RoomConfig{
		TypeID:  t.TypeID,
		Count:   t.Count,
		AC:      t.AC,
		Price:   t.Price,
		Deposit: t.Deposit,
	}
}

type UploadImageRequest struct {
	Bucket     string                `json:"bucket"       validate:"required,oneof=building amenity room"`
	RoomTypeID string                `json:"room_type_id" validate:"omitempty,max=50"`
	Image      *multipart.FileHeader `json:"image"        validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile  multipart.File        `json:"-"`
}

type DraftResponse struct {
	ID             string             `json:"id"`
	OwnerID        string             `json:"owner_id"`
	Stage          int                `json:"stage"`
	Basic          model.Basic        `json:"basic"`
	Amenities      []string           `json:"amenities"`
	Rules          []string           `json:"rules"`
	Rooms          []model.RoomConfig `json:"rooms"`
	BuildingImages []string           `json:"building_images"`
	AmenityImages  []string           `json:"amenity_images"`
	RoomImages     map[string]string  `json:"room_images"`
}

func (d *DraftResponse) FromModel(draft *model.Draft) {
	d.ID = draft.ID
	d.OwnerID = draft.OwnerID
	d.Stage = draft.Stage
	d.Basic = draft.Basic
	d.Amenities = draft.Amenities
	d.Rules = draft.Rules
	d.Rooms = draft.Rooms
	d.BuildingImages = draft.BuildingImages
	d.AmenityImages = draft.AmenityImages
	d.RoomImages = draft.RoomImages
}

type AdvanceResponse struct {
	Stage int `json:"stage"`
}

type SubmitResponse struct {
	ListingID string `json:"listing_id"`
}
