package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"ecoparking/infras/database"
	"ecoparking/infras/otel"
	"ecoparking/internal/domains/vehiclestat/model"
	gDto "ecoparking/shared/dto"
	gRepo "ecoparking/shared/repository"
)

type VehicleStat interface {
	Insert(ctx context.Context, model model.VehicleStat) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.VehicleStat, error)
	Increment(ctx context.Context, deltas map[string]any, mod map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.VehicleStat]
	db   *database.Connection
	otel otel.Otel
}

func New(db *database.Connection, otel otel.Otel) VehicleStat {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.VehicleStat](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
