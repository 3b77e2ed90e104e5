package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"ecoparking/infras/database"
	"ecoparking/infras/otel"
	"ecoparking/internal/domains/earning/model"
	gDto "ecoparking/shared/dto"
	gRepo "ecoparking/shared/repository"
)

type Earning interface {
	Insert(ctx context.Context, model model.Earning) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Earning, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Earning]
	db   *database.Connection
	otel otel.Otel
}

func New(db *database.Connection, otel otel.Otel) Earning {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Earning](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
