package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"ecoparking/infras/database"
	"ecoparking/infras/otel"
	"ecoparking/internal/domains/loyalty/model"
	gDto "ecoparking/shared/dto"
	gRepo "ecoparking/shared/repository"
)

type Loyalty interface {
	Create(ctx context.Context, model model.LoyaltyRecord) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.LoyaltyRecord, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.LoyaltyRecord, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Increment(ctx context.Context, deltas map[string]any, mod map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.LoyaltyRecord]
	db   *database.Connection
	otel otel.Otel
}

func New(db *database.Connection, otel otel.Otel) Loyalty {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.LoyaltyRecord](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
