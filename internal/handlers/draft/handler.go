package draft

import (
	"net/http"
	"pgstay/infras/otel"
	"pgstay/internal/domains/draft/model/dto"
	"pgstay/internal/domains/draft/service"
	"pgstay/shared/constant"
	"pgstay/shared/validator"
	"pgstay/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Draft
	otel    otel.Otel
}

func New(service service.Draft, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/drafts", func(r chi.Router) {
		r.Post("/", handler.StartDraft)
		r.Get("/{id}", handler.GetDraft)
		r.Patch("/{id}/basic", handler.UpdateBasic)
		r.Put("/{id}/amenities", handler.SetAmenities)
		r.Post("/{id}/rules", handler.AddRule)
		r.Delete("/{id}/rules", handler.RemoveRule)
		r.Post("/{id}/rooms", handler.ToggleRoom)
		r.Post("/{id}/images", handler.UploadImage)
		r.Post("/{id}/advance", handler.Advance)
		r.Post("/{id}/reset", handler.ResetDraft)
		r.Delete("/{id}", handler.DiscardDraft)
		r.Post("/{id}/submit", handler.SubmitDraft)
	})
}

// StartDraft opens a new wizard session.
// @Summary Start a listing draft
// @Description Open a new five-stage listing wizard session for the authenticated owner.
// @Tags Draft
// @Produce json
// @Success 201 {object} dto.DraftResponse "Draft created"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/drafts [post]
// @Security BearerAuth
func (handler *Handler) StartDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartDraft")
	defer scope.End()

	res, err := handler.service.Start(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start draft")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Draft started successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetDraft returns the current state of a wizard session.
// @Summary Get a listing draft
// @Description Retrieve the full state of an in-progress draft.
// @Tags Draft
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} dto.DraftResponse "Draft state"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/drafts/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDraft")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get draft")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateBasic shallow-merges stage-1 fields into the draft.
// @Summary Update draft basics
// @Description Apply a partial update to the stage-1 property details.
// @Tags Draft
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body dto.UpdateBasicRequest true "Basic fields patch"
// @Success 200 {object} dto.DraftResponse "Updated draft"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/drafts/{id}/basic [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBasic(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBasic")
	defer scope.End()

	req := dto.UpdateBasicRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateBasic(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update draft basics")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SetAmenities replaces the stage-2 amenity selection.
// @Summary Set draft amenities
// @Description Replace the amenity selection whole. Duplicates are dropped, order preserved.
// @Tags Draft
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body dto.SetAmenitiesRequest true "Amenity ids"
// @Success 200 {object} dto.DraftResponse "Updated draft"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/drafts/{id}/amenities [put]
// @Security BearerAuth
func (handler *Handler) SetAmenities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetAmenities")
	defer scope.End()

	req := dto.SetAmenitiesRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SetAmenities(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set draft amenities")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AddRule appends a house rule.
// @Summary Add a house rule
// @Description Append a rule string to the draft. Duplicate rules are rejected.
// @Tags Draft
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body dto.RuleRequest true "Rule"
// @Success 200 {object} dto.DraftResponse "Updated draft"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/drafts/{id}/rules [post]
// @Security BearerAuth
func (handler *Handler) AddRule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddRule")
	defer scope.End()

	req := dto.RuleRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.AddRule(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add draft rule")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RemoveRule removes an owner-added house rule.
// @Summary Remove a house rule
// @Description Remove a previously added rule. Seeded rules cannot be removed.
// @Tags Draft
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body dto.RuleRequest true "Rule"
// @Success 200 {object} dto.DraftResponse "Updated draft"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/drafts/{id}/rules [delete]
// @Security BearerAuth
func (handler *Handler) RemoveRule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveRule")
	defer scope.End()

	req := dto.RuleRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.RemoveRule(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove draft rule")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ToggleRoom selects or deselects a stage-4 room configuration.
// @Summary Toggle a room type
// @Description Select a room configuration, or deselect the type if already selected.
// @Tags Draft
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body dto.ToggleRoomRequest true "Room configuration"
// @Success 200 {object} dto.DraftResponse "Updated draft"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/drafts/{id}/rooms [post]
// @Security BearerAuth
func (handler *Handler) ToggleRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleRoom")
	defer scope.End()

	req := dto.ToggleRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ToggleRoom(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle draft room")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UploadImage files an image into one of the stage-5 buckets.
// @Summary Upload a draft image
// @Description Upload an image into the building, amenity or room bucket. Room images require a selected room type.
// @Tags Draft
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Draft ID"
// @Param bucket formData string true "Image bucket" Enums(building, amenity, room)
// @Param room_type_id formData string false "Room type id, required for the room bucket"
// @Param image formData file true "Image file"
// @Success 200 {object} dto.DraftResponse "Updated draft"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/drafts/{id}/images [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UploadImageRequest{
		Bucket:     r.FormValue("bucket"),
		RoomTypeID: r.FormValue("room_type_id"),
	}

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadImage(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload draft image")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Advance runs the current stage's gate and moves the cursor on success.
// @Summary Advance the wizard
// @Description Validate the current stage and move the cursor to the next one.
// @Tags Draft
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} dto.AdvanceResponse "New stage"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/drafts/{id}/advance [post]
// @Security BearerAuth
func (handler *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Advance")
	defer scope.End()

	res, err := handler.service.Advance(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to advance draft")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ResetDraft restores the draft to its initial state.
// @Summary Reset a draft
// @Description Restore all fields to defaults and move the cursor back to stage 1.
// @Tags Draft
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} dto.DraftResponse "Reset draft"
// @Failure 404 {object} response.Error
// @Router /v1/drafts/{id}/reset [post]
// @Security BearerAuth
func (handler *Handler) ResetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetDraft")
	defer scope.End()

	res, err := handler.service.Reset(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reset draft")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DiscardDraft drops the draft without submitting.
// @Summary Discard a draft
// @Description Drop the wizard session. All entered data is lost.
// @Tags Draft
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Message "Draft discarded"
// @Failure 404 {object} response.Error
// @Router /v1/drafts/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DiscardDraft")
	defer scope.End()

	if err := handler.service.Discard(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to discard draft")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Draft discarded successfully")
}

// SubmitDraft normalizes and persists the draft as a canonical listing.
// @Summary Submit a draft
// @Description Run all gates, normalize the draft and persist the canonical listing. The draft is dropped on success and kept on failure.
// @Tags Draft
// @Produce json
// @Param id path string true "Draft ID"
// @Success 201 {object} dto.SubmitResponse "Created listing id"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/drafts/{id}/submit [post]
// @Security BearerAuth
func (handler *Handler) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitDraft")
	defer scope.End()

	res, err := handler.service.Submit(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit draft")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Listing submitted successfully by owner " + user)

	response.WithJSON(w, http.StatusCreated, res)
}
