package dto

import (
	"pgstay/internal/domains/listing/model"
	"pgstay/shared"
	gDto "pgstay/shared/dto"
	"pgstay/shared/money"
)

type RoomResponse struct {
	Label     string       `json:"label"`
	Count     int          `json:"count"`
	Available int          `json:"available"`
	AC        bool         `json:"ac"`
	Price     money.Amount `json:"price"`
	Deposit   money.Amount `json:"deposit"`
}

type ListingResponse struct {
	ID                 string                  `json:"id"`
	OwnerID            string                  `json:"owner_id"`
	OwnerName          string                  `json:"owner_name"`
	Title              string                  `json:"title"`
	Description        string                  `json:"description"`
	Gender             string                  `json:"gender"`
	RegistrationNumber string                  `json:"registration_number"`
	State              string                  `json:"state"`
	City               string                  `json:"city"`
	Locality           string                  `json:"locality"`
	Address            string                  `json:"address"`
	Landmark           string                  `json:"landmark"`
	Latitude           float64                 `json:"latitude"`
	Longitude          float64                 `json:"longitude"`
	ContactPerson      string                  `json:"contact_person"`
	Mobile             string                  `json:"mobile"`
	Email              string                  `json:"email"`
	FoodIncluded       *bool                   `json:"food_included"`
	NoticePeriod       string                  `json:"notice_period"`
	GateCloseTime      string                  `json:"gate_close_time"`
	Price              money.Amount            `json:"price"`
	SafetyDeposit      money.Amount            `json:"safety_deposit"`
	Amenities          []string                `json:"amenities"`
	Rules              []string                `json:"rules"`
	Images             []string                `json:"images"`
	ImageURL           string                  `json:"image_url"`
	Rooms              []RoomResponse          `json:"rooms"`
	OccupancyTypes     []string                `json:"occupancy_types"`
	OccupancyPrices    map[string]money.Amount `json:"occupancy_prices"`
	Rating             float64                 `json:"rating"`
	gDto.Metadata
}

func (l *ListingResponse) FromModel(model model.Listing) {
	l.ID = model.ID
	l.OwnerID = model.OwnerID
	l.OwnerName = model.OwnerName
	l.Title = model.Title
	l.Description = model.Description
	l.Gender = model.Gender
	l.RegistrationNumber = model.RegistrationNumber
	l.State = model.State
	l.City = model.City
	l.Locality = model.Locality
	l.Address = model.Address
	l.Landmark = model.Landmark
	l.Latitude = model.Latitude
	l.Longitude = model.Longitude
	l.ContactPerson = model.ContactPerson
	l.Mobile = model.Mobile
	l.Email = model.Email
	l.FoodIncluded = model.FoodIncluded
	l.NoticePeriod = model.NoticePeriod
	l.GateCloseTime = model.GateCloseTime
	l.Price = model.Price
	l.SafetyDeposit = model.SafetyDeposit
	l.Amenities = model.Amenities
	l.Rules = model.Rules
	l.Images = model.Images
	l.ImageURL = model.ImageURL
	l.OccupancyTypes = model.OccupancyTypes()
	l.OccupancyPrices = model.OccupancyPrices()
	l.Rating = model.Rating
	l.Metadata.FromModel(model.Metadata)

	l.Rooms = make([]RoomResponse, len(model.Rooms))
	for i, room := range model.Rooms {
		l.Rooms[i] = RoomResponse(room)
	}
}

type GetListingsResponse struct {
	Listings  []ListingResponse `json:"listings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (g *GetListingsResponse) FromModels(models []model.Listing, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Listings = make([]ListingResponse, len(models))
	for i, mod := range models {
		g.Listings[i].FromModel(mod)
	}
}

type SearchListingsResponse struct {
	Listings []ListingResponse `json:"listings"`
	Total    int               `json:"total"`
}

func (s *SearchListingsResponse) FromModels(models []model.Listing) {
	s.Total = len(models)

	s.Listings = make([]ListingResponse, len(models))
	for i, mod := range models {
		s.Listings[i].FromModel(mod)
	}
}

type AvailabilityResponse struct {
	ListingID string `json:"listing_id"`
	model.AvailabilitySummary
}
