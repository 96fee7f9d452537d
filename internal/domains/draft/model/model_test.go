package model_test

import (
	"testing"

	"pgstay/internal/domains/draft/model"
	"pgstay/shared/constant"
	"pgstay/shared/failure"
	"pgstay/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func newDraft() *model.Draft {
	return model.New("draft-1", "owner-1", timezone.Now())
}

func TestNew_SeedsRulesAndStage(t *testing.T) {
	draft := newDraft()

	assert.Equal(t, constant.StageBasic, draft.Stage)
	assert.Equal(t, model.SeededRules, draft.Rules)
	assert.NotNil(t, draft.RoomImages)
	assert.Empty(t, draft.Amenities)
}

func TestApplyBasic_ShallowMerge(t *testing.T) {
	draft := newDraft()

	name := "Sunrise PG"
	city := "Chennai"
	draft.ApplyBasic(model.BasicPatch{Name: &name, City: &city})

	gender := model.GenderWomen
	food := true
	draft.ApplyBasic(model.BasicPatch{Gender: &gender, FoodIncluded: &food})

	assert.Equal(t, "Sunrise PG", draft.Basic.Name)
	assert.Equal(t, "Chennai", draft.Basic.City)
	assert.Equal(t, model.GenderWomen, draft.Basic.Gender)
	assert.True(t, draft.Basic.FoodIncluded)
}

func TestApplyBasic_NilFieldsLeaveValues(t *testing.T) {
	draft := newDraft()

	name := "Sunrise PG"
	draft.ApplyBasic(model.BasicPatch{Name: &name})
	draft.ApplyBasic(model.BasicPatch{})

	assert.Equal(t, "Sunrise PG", draft.Basic.Name)
}

func TestSetAmenities_DedupesPreservingOrder(t *testing.T) {
	draft := newDraft()

	draft.SetAmenities([]string{"wifi", "ac", "wifi", "", "laundry", "ac"})

	assert.Equal(t, []string{"wifi", "ac", "laundry"}, draft.Amenities)
}

func TestAddRule(t *testing.T) {
	tests := []struct {
		name    string
		rule    string
		wantErr bool
	}{
		{
			name: "new rule",
			rule: "No loud music after 10pm",
		},
		{
			name:    "duplicate of seeded rule",
			rule:    model.SeededRules[0],
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := newDraft()

			err := draft.AddRule(tt.rule)

			if tt.wantErr {
				_, ok := failure.IsValidation(err)
				assert.True(t, ok)
				assert.Len(t, draft.Rules, len(model.SeededRules))

				return
			}

			assert.NoError(t, err)
			assert.Contains(t, draft.Rules, tt.rule)
		})
	}
}

func TestAddRule_DuplicateOwnerRule(t *testing.T) {
	draft := newDraft()

	assert.NoError(t, draft.AddRule("No pets"))
	err := draft.AddRule("No pets")

	_, ok := failure.IsValidation(err)
	assert.True(t, ok)
}

func TestRemoveRule(t *testing.T) {
	draft := newDraft()
	assert.NoError(t, draft.AddRule("No pets"))

	t.Run("seeded rule is rejected", func(t *testing.T) {
		err := draft.RemoveRule(model.SeededRules[1])

		_, ok := failure.IsValidation(err)
		assert.True(t, ok)
		assert.Contains(t, draft.Rules, model.SeededRules[1])
	})

	t.Run("unknown rule is rejected", func(t *testing.T) {
		err := draft.RemoveRule("Never added")

		_, ok := failure.IsValidation(err)
		assert.True(t, ok)
	})

	t.Run("owner rule is removed", func(t *testing.T) {
		assert.NoError(t, draft.RemoveRule("No pets"))
		assert.NotContains(t, draft.Rules, "No pets")
	})
}

func TestToggleRoom(t *testing.T) {
	draft := newDraft()

	draft.ToggleRoom(model.RoomConfig{TypeID: "single", Count: 3, Price: 6000, Deposit: 12000})
	draft.ToggleRoom(model.RoomConfig{TypeID: "double", Count: 2, Price: 4000, Deposit: 8000})

	assert.Len(t, draft.Rooms, 2)
	assert.True(t, draft.RoomSelected("single"))

	// toggling an already selected type deselects it
	draft.ToggleRoom(model.RoomConfig{TypeID: "single"})

	assert.Len(t, draft.Rooms, 1)
	assert.False(t, draft.RoomSelected("single"))
	assert.Equal(t, "double", draft.Rooms[0].TypeID)
}

func TestToggleRoom_DeselectDropsRoomImage(t *testing.T) {
	draft := newDraft()

	draft.ToggleRoom(model.RoomConfig{TypeID: "single", Count: 1, Price: 6000})
	assert.NoError(t, draft.AddImage(model.ImageBucketRoom, "single", "https://cdn/img.jpg"))

	draft.ToggleRoom(model.RoomConfig{TypeID: "single"})

	assert.NotContains(t, draft.RoomImages, "single")
}

func TestToggleRoom_ZeroCountDefaultsToOne(t *testing.T) {
	draft := newDraft()

	draft.ToggleRoom(model.RoomConfig{TypeID: "triple", Price: 3000})

	assert.Equal(t, 1, draft.Rooms[0].Count)
}

func TestAddImage(t *testing.T) {
	tests := []struct {
		name       string
		bucket     string
		roomTypeID string
		selectRoom bool
		wantErr    bool
	}{
		{
			name:   "building bucket",
			bucket: model.ImageBucketBuilding,
		},
		{
			name:   "amenity bucket",
			bucket: model.ImageBucketAmenity,
		},
		{
			name:       "room bucket with selected type",
			bucket:     model.ImageBucketRoom,
			roomTypeID: "single",
			selectRoom: true,
		},
		{
			name:       "room bucket without selection",
			bucket:     model.ImageBucketRoom,
			roomTypeID: "single",
			wantErr:    true,
		},
		{
			name:    "unknown bucket",
			bucket:  "banner",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := newDraft()
			if tt.selectRoom {
				draft.ToggleRoom(model.RoomConfig{TypeID: tt.roomTypeID, Count: 1, Price: 6000})
			}

			err := draft.AddImage(tt.bucket, tt.roomTypeID, "https://cdn/img.jpg")

			if tt.wantErr {
				_, ok := failure.IsValidation(err)
				assert.True(t, ok)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestAddImage_RoomImageReplacesPrevious(t *testing.T) {
	draft := newDraft()
	draft.ToggleRoom(model.RoomConfig{TypeID: "single", Count: 1, Price: 6000})

	assert.NoError(t, draft.AddImage(model.ImageBucketRoom, "single", "https://cdn/first.jpg"))
	assert.NoError(t, draft.AddImage(model.ImageBucketRoom, "single", "https://cdn/second.jpg"))

	assert.Equal(t, "https://cdn/second.jpg", draft.RoomImages["single"])
}

func TestReset_KeepsIdentity(t *testing.T) {
	draft := newDraft()

	name := "Sunrise PG"
	draft.ApplyBasic(model.BasicPatch{Name: &name})
	draft.SetAmenities([]string{"wifi"})
	assert.NoError(t, draft.AddRule("No pets"))
	draft.ToggleRoom(model.RoomConfig{TypeID: "single", Count: 1, Price: 6000})
	draft.Stage = constant.StageRooms

	draft.Reset()

	assert.Equal(t, "draft-1", draft.ID)
	assert.Equal(t, "owner-1", draft.OwnerID)
	assert.Equal(t, constant.StageFirst, draft.Stage)
	assert.Empty(t, draft.Basic.Name)
	assert.Empty(t, draft.Amenities)
	assert.Equal(t, model.SeededRules, draft.Rules)
	assert.Empty(t, draft.Rooms)
	assert.Empty(t, draft.RoomImages)
}
