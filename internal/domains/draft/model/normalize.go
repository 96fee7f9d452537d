package model

import (
	"fmt"

	"pgstay/internal/domains/catalog"
	listingModel "pgstay/internal/domains/listing/model"
)

// AssembleGallery concatenates the three stage-5 image buckets into the
// ordered gallery: building images first, then amenity images, then one room
// image per selected room type in selection order. The first gallery entry
// becomes the listing's primary image. Bucket bounds are the stage-5 gate's
// job; this only concatenates.
func AssembleGallery(d *Draft) []string {
	gallery := make([]string, 0, len(d.BuildingImages)+len(d.AmenityImages)+len(d.Rooms))

	gallery = append(gallery, d.BuildingImages...)
	gallery = append(gallery, d.AmenityImages...)

	for _, cfg := range d.Rooms {
		if url := d.RoomImages[cfg.TypeID]; url != "" {
			gallery = append(gallery, url)
		}
	}

	return gallery
}

// Normalize transforms a gate-passing draft into the canonical listing
// record. All five gates are re-run first as defense against out-of-band
// mutation since the last stage advance.
//
// The headline price is the minimum across rooms, but the safety deposit is
// the FIRST room's deposit in selection order. The two deliberately disagree:
// the deposit has always been first-room in this product and changing it to
// track the cheapest room would silently alter every existing listing flow.
func Normalize(d *Draft) (listingModel.Listing, error) {
	var listing listingModel.Listing

	if err := RunAllGates(d); err != nil {
		return listing, fmt.Errorf("incomplete draft: %w", err)
	}

	rooms := make(listingModel.Rooms, len(d.Rooms))
	for i, cfg := range d.Rooms {
		rooms[i] = listingModel.Room{
			Label:     catalog.RoomTypeLabel(cfg.TypeID),
			Count:     cfg.Count,
			Available: cfg.Count,
			AC:        cfg.AC,
			Price:     cfg.Price,
			Deposit:   cfg.Deposit,
		}
	}

	headline := rooms[0].Price
	for _, room := range rooms[1:] {
		if room.Price < headline {
			headline = room.Price
		}
	}

	amenities := make(listingModel.StringSlice, len(d.Amenities))
	for i, id := range d.Amenities {
		amenities[i] = catalog.AmenityLabel(id)
	}

	gallery := AssembleGallery(d)

	food := d.Basic.FoodIncluded

	listing = listingModel.Listing{
		Title:              d.Basic.Name,
		Description:        d.Basic.Description,
		Gender:             d.Basic.Gender,
		RegistrationNumber: d.Basic.RegistrationNumber,
		State:              d.Basic.State,
		City:               d.Basic.City,
		Locality:           d.Basic.Locality,
		Address:            d.Basic.Address,
		Landmark:           d.Basic.Landmark,
		Latitude:           d.Basic.Latitude,
		Longitude:          d.Basic.Longitude,
		ContactPerson:      d.Basic.ContactPerson,
		Mobile:             d.Basic.Mobile,
		Email:              d.Basic.Email,
		FoodIncluded:       &food,
		NoticePeriod:       d.Basic.NoticePeriod,
		GateCloseTime:      d.Basic.GateCloseTime,
		Price:              headline,
		SafetyDeposit:      rooms[0].Deposit,
		Amenities:          amenities,
		Rules:              listingModel.StringSlice(append([]string(nil), d.Rules...)),
		Images:             listingModel.StringSlice(gallery),
		ImageURL:           gallery[0],
		Rooms:              rooms,
		OwnerID:            d.OwnerID,
	}

	return listing, nil
}
