package model_test

import (
	"fmt"
	"testing"

	"pgstay/internal/domains/draft/model"
	"pgstay/shared/constant"
	"pgstay/shared/failure"
	"pgstay/shared/timezone"

	"github.com/stretchr/testify/assert"
)

// completeDraft builds a draft that passes all five gates.
func completeDraft() *model.Draft {
	draft := model.New("draft-1", "owner-1", timezone.Now())

	name := "Sunrise PG"
	gender := model.GenderWomen
	city := "Chennai"
	contact := "Priya"
	mobile := "9876543210"
	email := "priya@example.com"
	lat := 13.0827
	lng := 80.2707
	draft.ApplyBasic(model.BasicPatch{
		Name:          &name,
		Gender:        &gender,
		City:          &city,
		ContactPerson: &contact,
		Mobile:        &mobile,
		Email:         &email,
		Latitude:      &lat,
		Longitude:     &lng,
	})

	draft.SetAmenities([]string{"wifi", "laundry"})

	draft.ToggleRoom(model.RoomConfig{TypeID: "single", Count: 3, Price: 6000, Deposit: 12000})
	draft.ToggleRoom(model.RoomConfig{TypeID: "double", Count: 2, Price: 4000, Deposit: 8000})

	for i := 0; i < 3; i++ {
		_ = draft.AddImage(model.ImageBucketBuilding, "", fmt.Sprintf("https://cdn/building-%d.jpg", i))
	}

	for i := 0; i < 2; i++ {
		_ = draft.AddImage(model.ImageBucketAmenity, "", fmt.Sprintf("https://cdn/amenity-%d.jpg", i))
	}

	_ = draft.AddImage(model.ImageBucketRoom, "single", "https://cdn/room-single.jpg")
	_ = draft.AddImage(model.ImageBucketRoom, "double", "https://cdn/room-double.jpg")

	return draft
}

func assertGateFails(t *testing.T, err error, stage int, field string) {
	t.Helper()

	validation, ok := failure.IsValidation(err)
	assert.True(t, ok, "expected a validation error, got %v", err)
	assert.Equal(t, stage, validation.Stage)
	assert.Equal(t, field, validation.Field)
}

func TestRunAllGates_CompleteDraftPasses(t *testing.T) {
	assert.NoError(t, model.RunAllGates(completeDraft()))
}

func TestGateBasic(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(d *model.Draft)
		wantField string
	}{
		{
			name: "missing name",
			mutate: func(d *model.Draft) {
				d.Basic.Name = ""
			},
			wantField: "name",
		},
		{
			name: "missing gender",
			mutate: func(d *model.Draft) {
				d.Basic.Gender = ""
			},
			wantField: "gender",
		},
		{
			name: "missing city",
			mutate: func(d *model.Draft) {
				d.Basic.City = ""
			},
			wantField: "city",
		},
		{
			name: "missing contact person",
			mutate: func(d *model.Draft) {
				d.Basic.ContactPerson = ""
			},
			wantField: "contact_person",
		},
		{
			name: "missing mobile",
			mutate: func(d *model.Draft) {
				d.Basic.Mobile = ""
			},
			wantField: "mobile",
		},
		{
			name: "missing email",
			mutate: func(d *model.Draft) {
				d.Basic.Email = ""
			},
			wantField: "email",
		},
		{
			name: "zero latitude",
			mutate: func(d *model.Draft) {
				d.Basic.Latitude = 0
			},
			wantField: "location",
		},
		{
			name: "zero longitude",
			mutate: func(d *model.Draft) {
				d.Basic.Longitude = 0
			},
			wantField: "location",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := completeDraft()
			tt.mutate(draft)

			err := model.Gate(constant.StageBasic, draft)

			assertGateFails(t, err, constant.StageBasic, tt.wantField)
		})
	}
}

func TestGateAmenities_EmptySelection(t *testing.T) {
	draft := completeDraft()
	draft.SetAmenities(nil)

	err := model.Gate(constant.StageAmenities, draft)

	assertGateFails(t, err, constant.StageAmenities, "amenities")
}

func TestGateRules_MissingSeededRule(t *testing.T) {
	draft := completeDraft()
	draft.Rules = []string{"No pets"}

	err := model.Gate(constant.StageRules, draft)

	assertGateFails(t, err, constant.StageRules, "rules")
}

func TestGateRooms(t *testing.T) {
	t.Run("no room types selected", func(t *testing.T) {
		draft := completeDraft()
		draft.Rooms = nil

		err := model.Gate(constant.StageRooms, draft)

		assertGateFails(t, err, constant.StageRooms, "rooms")
	})

	t.Run("non-positive price names the offending type", func(t *testing.T) {
		draft := completeDraft()
		draft.Rooms[1].Price = 0

		err := model.Gate(constant.StageRooms, draft)

		assertGateFails(t, err, constant.StageRooms, "double")
	})
}

func TestGateImages(t *testing.T) {
	t.Run("two building images block submission", func(t *testing.T) {
		draft := completeDraft()
		draft.BuildingImages = draft.BuildingImages[:2]

		err := model.Gate(constant.StageImages, draft)

		assertGateFails(t, err, constant.StageImages, "building_images")
	})

	t.Run("eleven building images are too many", func(t *testing.T) {
		draft := completeDraft()
		for i := 0; i < 8; i++ {
			_ = draft.AddImage(model.ImageBucketBuilding, "", fmt.Sprintf("https://cdn/extra-%d.jpg", i))
		}

		err := model.Gate(constant.StageImages, draft)

		assertGateFails(t, err, constant.StageImages, "building_images")
	})

	t.Run("one amenity image is too few", func(t *testing.T) {
		draft := completeDraft()
		draft.AmenityImages = draft.AmenityImages[:1]

		err := model.Gate(constant.StageImages, draft)

		assertGateFails(t, err, constant.StageImages, "amenity_images")
	})

	t.Run("selected room type without image", func(t *testing.T) {
		draft := completeDraft()
		delete(draft.RoomImages, "double")

		err := model.Gate(constant.StageImages, draft)

		assertGateFails(t, err, constant.StageImages, "double")
	})
}

func TestGate_UnknownStage(t *testing.T) {
	err := model.Gate(0, completeDraft())

	assert.Error(t, err)
}

func TestGate_Idempotent(t *testing.T) {
	draft := completeDraft()
	draft.Basic.Email = ""

	first := model.Gate(constant.StageBasic, draft)
	second := model.Gate(constant.StageBasic, draft)

	assert.Equal(t, first, second)

	draft.Basic.Email = "priya@example.com"

	assert.NoError(t, model.Gate(constant.StageBasic, draft))
	assert.NoError(t, model.Gate(constant.StageBasic, draft))
}
