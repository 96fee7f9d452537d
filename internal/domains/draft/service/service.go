package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"pgstay/config"
	"pgstay/infras/kafka"
	"pgstay/infras/otel"
	"pgstay/infras/s3"
	"pgstay/internal/domains/draft/model"
	"pgstay/internal/domains/draft/model/dto"
	"pgstay/internal/domains/draft/repository"
	listingModel "pgstay/internal/domains/listing/model"
	listingRepo "pgstay/internal/domains/listing/repository"
	ownerModel "pgstay/internal/domains/owner/model"
	ownerRepo "pgstay/internal/domains/owner/repository"
	"pgstay/shared"
	"pgstay/shared/cache"
	"pgstay/shared/constant"
	"pgstay/shared/failure"
	gModel "pgstay/shared/model"
	"pgstay/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllListing = "listing:gets"
	cacheCountListing  = "listing:count"
)

type Draft interface {
	Start(ctx context.Context) (dto.DraftResponse, error)
	Get(ctx context.Context, id string) (dto.DraftResponse, error)
	UpdateBasic(ctx context.Context, id string, req dto.UpdateBasicRequest) (dto.DraftResponse, error)
	SetAmenities(ctx context.Context, id string, req dto.SetAmenitiesRequest) (dto.DraftResponse, error)
	AddRule(ctx context.Context, id string, req dto.RuleRequest) (dto.DraftResponse, error)
	RemoveRule(ctx context.Context, id string, req dto.RuleRequest) (dto.DraftResponse, error)
	ToggleRoom(ctx context.Context, id string, req dto.ToggleRoomRequest) (dto.DraftResponse, error)
	UploadImage(ctx context.Context, id string, req dto.UploadImageRequest) (dto.DraftResponse, error)
	Advance(ctx context.Context, id string) (dto.AdvanceResponse, error)
	Reset(ctx context.Context, id string) (dto.DraftResponse, error)
	Discard(ctx context.Context, id string) error
	Submit(ctx context.Context, id string) (dto.SubmitResponse, error)
}

type serviceImpl struct {
	drafts   repository.Draft
	listings listingRepo.Listing
	owners   ownerRepo.Owner
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	s3       s3.S3
	kafka    kafka.Client
}

func New(
	drafts repository.Draft,
	listings listingRepo.Listing,
	owners ownerRepo.Owner,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
	kafka kafka.Client,
) Draft {
	return &serviceImpl{
		drafts:   drafts,
		listings: listings,
		owners:   owners,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		s3:       s3,
		kafka:    kafka,
	}
}

func (s *serviceImpl) Start(ctx context.Context) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Start")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	draft := model.New(uuid.NewString(), user, timezone.Now())

	if err = s.drafts.Create(ctx, draft); err != nil {
		log.Error().Err(err).Msg("failed to create draft")

		return res, fmt.Errorf("failed to create draft: %w", err)
	}

	res.FromModel(draft)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.ownedDraft(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(draft)

	return res, nil
}

func (s *serviceImpl) UpdateBasic(ctx context.Context, id string, req dto.UpdateBasicRequest) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBasic")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.ownedDraft(ctx, id)
	if err != nil {
		return res, err
	}

	draft.ApplyBasic(req.BasicPatch)

	res.FromModel(draft)

	return res, nil
}

func (s *serviceImpl) SetAmenities(ctx context.Context, id string, req dto.SetAmenitiesRequest) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetAmenities")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.ownedDraft(ctx, id)
	if err != nil {
		return res, err
	}

	draft.SetAmenities(req.Amenities)

	res.FromModel(draft)

	return res, nil
}

func (s *serviceImpl) AddRule(ctx context.Context, id string, req dto.RuleRequest) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddRule")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.ownedDraft(ctx, id)
	if err != nil {
		return res, err
	}

	if err = draft.AddRule(req.Rule); err != nil {
		return res, err // nolint:wrapcheck
	}

	res.FromModel(draft)

	return res, nil
}

func (s *serviceImpl) RemoveRule(ctx context.Context, id string, req dto.RuleRequest) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveRule")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.ownedDraft(ctx, id)
	if err != nil {
		return res, err
	}

	if err = draft.RemoveRule(req.Rule); err != nil {
		return res, err // nolint:wrapcheck
	}

	res.FromModel(draft)

	return res, nil
}

func (s *serviceImpl) ToggleRoom(ctx context.Context, id string, req dto.ToggleRoomRequest) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.ownedDraft(ctx, id)
	if err != nil {
		return res, err
	}

	draft.ToggleRoom(req.ToModel())

	res.FromModel(draft)

	return res, nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, id string, req dto.UploadImageRequest) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.ownedDraft(ctx, id)
	if err != nil {
		return res, err
	}

	bucketName := s.cfg.External.S3.BucketName
	filename := uuid.NewString()

	// Get original extension
	parts := strings.Split(req.Image.Filename, ".")
	if len(parts) > 1 {
		filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
	}

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload image to S3")

		return res, fmt.Errorf("failed to upload image: %w", err)
	}

	if err = draft.AddImage(req.Bucket, req.RoomTypeID, url); err != nil {
		_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, filename)

		return res, err // nolint:wrapcheck
	}

	res.FromModel(draft)

	return res, nil
}

// Advance runs the gate of the current stage and moves the cursor forward
// only on success. There is no way to move the cursor past a failing gate.
func (s *serviceImpl) Advance(ctx context.Context, id string) (res dto.AdvanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Advance")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.ownedDraft(ctx, id)
	if err != nil {
		return res, err
	}

	if err = model.Gate(draft.Stage, draft); err != nil {
		return res, err // nolint:wrapcheck
	}

	if draft.Stage < constant.StageLast {
		draft.Stage++
	}

	res.Stage = draft.Stage

	return res, nil
}

func (s *serviceImpl) Reset(ctx context.Context, id string) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reset")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.ownedDraft(ctx, id)
	if err != nil {
		return res, err
	}

	draft.Reset()

	res.FromModel(draft)

	return res, nil
}

func (s *serviceImpl) Discard(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Discard")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.ownedDraft(ctx, id); err != nil {
		return err
	}

	if err = s.drafts.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to discard draft")

		return fmt.Errorf("failed to discard draft: %w", err)
	}

	return nil
}

// Submit normalizes the draft into a canonical listing, persists it and
// drops the draft. The draft is kept verbatim on any failure so the owner
// can retry; the idempotency key is minted once per draft lifetime and
// survives retries, so a store-side duplicate insert trips the unique index
// instead of creating a second listing.
func (s *serviceImpl) Submit(ctx context.Context, id string) (res dto.SubmitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.ownedDraft(ctx, id)
	if err != nil {
		return res, err
	}

	if err = s.drafts.BeginSubmit(ctx, id); err != nil {
		return res, err // nolint:wrapcheck
	}
	defer s.drafts.EndSubmit(ctx, id)

	listing, err := model.Normalize(draft)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	owner, err := s.owners.Get(ctx, shared.FilterByID(draft.OwnerID, ownerModel.FieldID, ownerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve draft owner")

		return res, fmt.Errorf("failed to resolve draft owner: %w", err)
	}

	now := timezone.Now()
	listing.ID = uuid.NewString()
	listing.OwnerName = owner.Name
	listing.IdempotencyKey = s.idempotencyKey(draft)
	listing.Metadata = gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  draft.OwnerID,
		ModifiedBy: draft.OwnerID,
	}

	if err = s.listings.Insert(ctx, listing); err != nil {
		log.Error().Err(err).Msg("failed to persist listing")

		return res, failure.Submission(err) // nolint:wrapcheck
	}

	if deleteErr := s.drafts.Delete(ctx, id); deleteErr != nil {
		log.Error().Err(deleteErr).Msg("failed to drop submitted draft")
	}

	s.publishCreated(ctx, listing)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllListing)
		shared.InvalidateCaches(c, s.cache, cacheCountListing)
	}()

	res.ListingID = listing.ID

	return res, nil
}

// idempotencyKey is deterministic per draft so that a retried submission of
// the same draft carries the same key.
func (s *serviceImpl) idempotencyKey(draft *model.Draft) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(draft.ID)).String()
}

func (s *serviceImpl) publishCreated(ctx context.Context, listing listingModel.Listing) {
	if !s.cfg.Kafka.Enable {
		return
	}

	message := kafka.Message{
		Key:   listing.ID,
		Value: listing,
	}

	if err := s.kafka.SendMessages(ctx, constant.KafkaTopicListingCreated, message); err != nil {
		log.Error().Err(err).Msg("failed to publish listing created event")
	}
}

func (s *serviceImpl) ownedDraft(ctx context.Context, id string) (*model.Draft, error) {
	draft, err := s.drafts.Get(ctx, id)
	if err != nil {
		return nil, err // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if draft.OwnerID != user {
		return nil, failure.Forbidden("draft belongs to another owner") // nolint:wrapcheck
	}

	return draft, nil
}
