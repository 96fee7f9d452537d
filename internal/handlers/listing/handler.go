package listing

import (
	"net/http"
	"pgstay/infras/otel"
	listingModel "pgstay/internal/domains/listing/model"
	"pgstay/internal/domains/listing/service"
	"pgstay/shared"
	"pgstay/shared/constant"
	gDto "pgstay/shared/dto"
	"pgstay/shared/money"
	"pgstay/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Listing
	otel    otel.Otel
}

func New(service service.Listing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/listings", func(r chi.Router) {
		r.Get("/", handler.GetListings)
		r.Get("/search", handler.SearchListings)
		r.Get("/recommended", handler.GetRecommended)
		r.Get("/{id}", handler.GetListingByID)
		r.Get("/{id}/availability", handler.GetAvailability)
	})
}

// GetListings retrieves listings with store-side filtering and pagination.
// @Summary Get all listings
// @Description Retrieve listings with optional filtering and pagination.
// @Tags Listing
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param city query string false "Filter by city"
// @Param locality query string false "Filter by locality"
// @Param gender query string false "Filter by gender"
// @Success 200 {object} response.Data[dto.GetListingsResponse] "List of listings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/listings [get]
func (handler *Handler) GetListings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetListings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if city := r.URL.Query().Get(listingModel.FieldCity); city != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    listingModel.FieldCity,
			Operator: gDto.FilterOperatorLike,
			Value:    city,
			Table:    listingModel.TableName,
		})
	}

	if locality := r.URL.Query().Get(listingModel.FieldLocality); locality != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    listingModel.FieldLocality,
			Operator: gDto.FilterOperatorLike,
			Value:    locality,
			Table:    listingModel.TableName,
		})
	}

	if gender := r.URL.Query().Get(listingModel.FieldGender); gender != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    listingModel.FieldGender,
			Operator: gDto.FilterOperatorEq,
			Value:    gender,
			Table:    listingModel.TableName,
		})
	}

	listings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get listings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Listings retrieved successfully")

	response.WithJSON(w, http.StatusOK, listings)
}

// SearchListings runs the in-memory predicate engine.
// @Summary Search listings
// @Description Filter listings by city, price range, food, gender and free text, with optional price sorting.
// @Tags Listing
// @Accept json
// @Produce json
// @Param city query string false "City, case-insensitive exact match"
// @Param min_price query number false "Minimum price, inclusive"
// @Param max_price query number false "Maximum price, inclusive"
// @Param food query string false "Food filter" Enums(any, yes, no)
// @Param gender query string false "Gender filter" Enums(any, men, women, unisex)
// @Param q query string false "Free-text query over title, city, locality and owner name"
// @Param sort query string false "Sort key" Enums(price_asc, price_desc)
// @Success 200 {object} response.Data[dto.SearchListingsResponse] "Matching listings"
// @Failure 500 {object} response.Error
// @Router /v1/listings/search [get]
func (handler *Handler) SearchListings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchListings")
	defer scope.End()

	listings, err := handler.service.Search(ctx, criteriaFromRequest(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search listings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Listings searched successfully")

	response.WithJSON(w, http.StatusOK, listings)
}

// GetRecommended returns the head of the filtered collection.
// @Summary Get recommended listings
// @Description Return the first five listings matching the filters.
// @Tags Listing
// @Accept json
// @Produce json
// @Param city query string false "City, case-insensitive exact match"
// @Param min_price query number false "Minimum price, inclusive"
// @Param max_price query number false "Maximum price, inclusive"
// @Param food query string false "Food filter" Enums(any, yes, no)
// @Param gender query string false "Gender filter" Enums(any, men, women, unisex)
// @Param sort query string false "Sort key" Enums(price_asc, price_desc)
// @Success 200 {object} response.Data[dto.SearchListingsResponse] "Recommended listings"
// @Failure 500 {object} response.Error
// @Router /v1/listings/recommended [get]
func (handler *Handler) GetRecommended(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecommended")
	defer scope.End()

	listings, err := handler.service.Recommended(ctx, criteriaFromRequest(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get recommended listings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Recommended listings retrieved successfully")

	response.WithJSON(w, http.StatusOK, listings)
}

// GetListingByID retrieves a listing by its ID.
// @Summary Get a listing by ID
// @Description Retrieve a canonical listing. Occupancy maps are derived from the rooms inventory on every read.
// @Tags Listing
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} response.Data[dto.ListingResponse] "Listing details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/listings/{id} [get]
func (handler *Handler) GetListingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetListingByID")
	defer scope.End()

	listing, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get listing by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Listing retrieved successfully")

	response.WithJSON(w, http.StatusOK, listing)
}

// GetAvailability sums the listing's room counts per sharing bucket.
// @Summary Get listing availability
// @Description Sum room counts into single, double and triple buckets. Legacy listings without a rooms inventory report zero counts.
// @Tags Listing
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Availability summary"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/listings/{id}/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	availability, err := handler.service.Availability(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get listing availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Listing availability retrieved successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

func criteriaFromRequest(r *http.Request) listingModel.SearchCriteria {
	query := r.URL.Query()

	criteria := listingModel.SearchCriteria{
		City:   query.Get("city"),
		Food:   query.Get("food"),
		Gender: query.Get("gender"),
		Query:  query.Get("q"),
		Sort:   query.Get("sort"),
	}

	if raw := query.Get("min_price"); raw != constant.Empty {
		if value, err := shared.ConvertStringToFloat(raw); err == nil {
			criteria.MinPrice = money.Amount(value)
		}
	}

	if raw := query.Get("max_price"); raw != constant.Empty {
		if value, err := shared.ConvertStringToFloat(raw); err == nil {
			criteria.MaxPrice = money.Amount(value)
		}
	}

	return criteria
}
