package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"ecoparking/infras/database"
	"ecoparking/infras/otel"
	"ecoparking/internal/domains/space/model"
	gDto "ecoparking/shared/dto"
	gRepo "ecoparking/shared/repository"
)

type ParkingSpace interface {
	Create(ctx context.Context, model model.ParkingSpace) (int64, error)
	InsertBulk(ctx context.Context, models []model.ParkingSpace) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ParkingSpace, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ParkingSpace, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) (int64, error)
	Increment(ctx context.Context, deltas map[string]any, mod map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.ParkingSpace]
	db   *database.Connection
	otel otel.Otel
}

func New(db *database.Connection, otel otel.Otel) ParkingSpace {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ParkingSpace](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
