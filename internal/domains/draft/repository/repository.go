package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"sync"

	"pgstay/internal/domains/draft/model"
	"pgstay/shared/failure"
)

// Draft keeps in-progress wizard sessions. Drafts are deliberately not
// persisted: a draft that never reaches submission has no value, and one
// that does is consumed into a listing row.
type Draft interface {
	Create(ctx context.Context, draft *model.Draft) error
	Get(ctx context.Context, id string) (*model.Draft, error)
	Delete(ctx context.Context, id string) error
	BeginSubmit(ctx context.Context, id string) error
	EndSubmit(ctx context.Context, id string)
}

type repositoryImpl struct {
	mu         sync.RWMutex
	drafts     map[string]*model.Draft
	submitting map[string]bool
}

func New() Draft {
	return &repositoryImpl{
		drafts:     map[string]*model.Draft{},
		submitting: map[string]bool{},
	}
}

func (r *repositoryImpl) Create(_ context.Context, draft *model.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exist := r.drafts[draft.ID]; exist {
		return failure.Conflict("draft already exists")
	}

	r.drafts[draft.ID] = draft

	return nil
}

func (r *repositoryImpl) Get(_ context.Context, id string) (*model.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	draft, exist := r.drafts[id]
	if !exist {
		return nil, failure.NotFound(model.EntityName)
	}

	return draft, nil
}

func (r *repositoryImpl) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exist := r.drafts[id]; !exist {
		return failure.NotFound(model.EntityName)
	}

	delete(r.drafts, id)
	delete(r.submitting, id)

	return nil
}

// BeginSubmit marks the draft as being submitted so that concurrent submit
// calls for the same draft fail fast instead of racing the insert.
func (r *repositoryImpl) BeginSubmit(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exist := r.drafts[id]; !exist {
		return failure.NotFound(model.EntityName)
	}

	if r.submitting[id] {
		return failure.Conflict("submission already in progress")
	}

	r.submitting[id] = true

	return nil
}

func (r *repositoryImpl) EndSubmit(_ context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.submitting, id)
}
