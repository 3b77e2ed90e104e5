package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"ecoparking/infras/database"
	"ecoparking/infras/otel"
	"ecoparking/internal/domains/visitlog/model"
	gDto "ecoparking/shared/dto"
	gRepo "ecoparking/shared/repository"
)

type VisitLog interface {
	Insert(ctx context.Context, model model.VisitLog) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.VisitLog, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.VisitLog]
	db   *database.Connection
	otel otel.Otel
}

func New(db *database.Connection, otel otel.Otel) VisitLog {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.VisitLog](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
