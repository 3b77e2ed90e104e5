package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"ecoparking/infras/database"
	"ecoparking/infras/otel"
	"ecoparking/internal/domains/citation/model"
	gDto "ecoparking/shared/dto"
	gRepo "ecoparking/shared/repository"
)

type Citation interface {
	Create(ctx context.Context, model model.Citation) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Citation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Citation, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Citation]
	db   *database.Connection
	otel otel.Otel
}

func New(db *database.Connection, otel otel.Otel) Citation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Citation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
