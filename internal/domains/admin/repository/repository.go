package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"ecoparking/infras/database"
	"ecoparking/infras/otel"
	"ecoparking/internal/domains/admin/model"
	gDto "ecoparking/shared/dto"
	gRepo "ecoparking/shared/repository"
)

type Admin interface {
	Create(ctx context.Context, model model.Admin) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Admin, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Admin]
	db   *database.Connection
	otel otel.Otel
}

func New(db *database.Connection, otel otel.Otel) Admin {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Admin](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
