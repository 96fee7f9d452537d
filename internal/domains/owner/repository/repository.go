package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"pgstay/infras/otel"
	"pgstay/infras/postgres"
	"pgstay/internal/domains/owner/model"
	gDto "pgstay/shared/dto"
	gRepo "pgstay/shared/repository"
)

type Owner interface {
	Insert(ctx context.Context, model model.Owner) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Owner, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Owner]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Owner {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Owner](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
