package model_test

import (
	"testing"

	"pgstay/internal/domains/draft/model"
	"pgstay/shared/money"
	"pgstay/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_HeadlinePriceIsMinimum(t *testing.T) {
	listing, err := model.Normalize(completeDraft())

	assert.NoError(t, err)
	assert.Equal(t, money.Amount(4000), listing.Price)
}

func TestNormalize_SafetyDepositIsFirstRoom(t *testing.T) {
	// rooms = [single 6000/12000, double 4000/8000]: the headline price
	// follows the cheaper double room but the deposit stays with the first
	// selected room.
	listing, err := model.Normalize(completeDraft())

	assert.NoError(t, err)
	assert.Equal(t, money.Amount(12000), listing.SafetyDeposit)
	assert.NotEqual(t, money.Amount(8000), listing.SafetyDeposit)
}

func TestNormalize_RoomLabelsFromCatalog(t *testing.T) {
	listing, err := model.Normalize(completeDraft())

	assert.NoError(t, err)
	assert.Equal(t, "Single Sharing", listing.Rooms[0].Label)
	assert.Equal(t, "Double Sharing", listing.Rooms[1].Label)
}

func TestNormalize_OccupancyProjection(t *testing.T) {
	listing, err := model.Normalize(completeDraft())
	assert.NoError(t, err)

	types := listing.OccupancyTypes()
	prices := listing.OccupancyPrices()

	assert.Equal(t, []string{"Single Sharing", "Double Sharing"}, types)
	assert.Len(t, prices, len(listing.Rooms))
	assert.Equal(t, money.Amount(6000), prices["Single Sharing"])
	assert.Equal(t, money.Amount(4000), prices["Double Sharing"])
}

func TestOccupancyPrices_DuplicateLabelLastWriteWins(t *testing.T) {
	listing, err := model.Normalize(completeDraft())
	assert.NoError(t, err)

	listing.Rooms = append(listing.Rooms, listing.Rooms[0])
	listing.Rooms[2].Price = 7000

	prices := listing.OccupancyPrices()

	assert.Equal(t, money.Amount(7000), prices["Single Sharing"])
}

func TestAssembleGallery_Order(t *testing.T) {
	draft := completeDraft()

	gallery := model.AssembleGallery(draft)

	expected := append([]string{}, draft.BuildingImages...)
	expected = append(expected, draft.AmenityImages...)
	expected = append(expected, draft.RoomImages["single"], draft.RoomImages["double"])

	assert.Equal(t, expected, gallery)
}

func TestNormalize_PrimaryImageIsFirstBuildingImage(t *testing.T) {
	draft := completeDraft()

	listing, err := model.Normalize(draft)

	assert.NoError(t, err)
	assert.Equal(t, draft.BuildingImages[0], listing.ImageURL)
	assert.Equal(t, draft.BuildingImages[0], listing.Images[0])
}

func TestNormalize_AmenityLabels(t *testing.T) {
	listing, err := model.Normalize(completeDraft())

	assert.NoError(t, err)
	assert.Equal(t, []string{"WiFi", "Laundry"}, []string(listing.Amenities))
}

func TestNormalize_CarriesOwnerAndBasics(t *testing.T) {
	draft := completeDraft()

	listing, err := model.Normalize(draft)

	assert.NoError(t, err)
	assert.Equal(t, "owner-1", listing.OwnerID)
	assert.Equal(t, draft.Basic.Name, listing.Title)
	assert.Equal(t, draft.Basic.City, listing.City)
	assert.Equal(t, model.GenderWomen, listing.Gender)
	assert.NotNil(t, listing.FoodIncluded)
	assert.Equal(t, draft.Basic.FoodIncluded, *listing.FoodIncluded)
}

func TestNormalize_IncompleteDraftFails(t *testing.T) {
	draft := model.New("draft-2", "owner-1", timezone.Now())

	_, err := model.Normalize(draft)

	assert.Error(t, err)
}

func TestNormalize_ReRunsAllGates(t *testing.T) {
	draft := completeDraft()
	draft.BuildingImages = draft.BuildingImages[:2]

	_, err := model.Normalize(draft)

	assert.Error(t, err)
}
