package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=User=MockUserService

import (
	"context"
	"fmt"

	"ecoparking/config"
	"ecoparking/infras/otel"
	"ecoparking/internal/domains/user/model"
	"ecoparking/internal/domains/user/model/dto"
	"ecoparking/internal/domains/user/repository"
	visitDto "ecoparking/internal/domains/visitlog/model/dto"
	visitService "ecoparking/internal/domains/visitlog/service"
	"ecoparking/shared"
	"ecoparking/shared/cache"
	"ecoparking/shared/constant"
	gDto "ecoparking/shared/dto"
	"ecoparking/shared/failure"
	"ecoparking/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetUser    = "user:get"
	cacheGetAllUser = "user:gets"
)

type User interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.UserResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams) (dto.GetUsersResponse, error)
	Get(ctx context.Context, id int64) (dto.UserResponse, error)
}

type serviceImpl struct {
	repo   repository.User
	visits visitService.Visit
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(repo repository.User, visits visitService.Visit, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:   repo,
		visits: visits,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

// Register creates the user and logs the entry. A cedula or email already on file is a conflict.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.EndWithError(&err)

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	exists, err := s.repo.Exist(ctx, gDto.Or(
		gDto.NewFilter(model.FieldCedula, gDto.FilterOperatorEq, req.Cedula),
		gDto.NewFilter(model.FieldEmail, gDto.FilterOperatorEq, req.Email),
	))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.Conflict("a user with this cedula or email is already registered") // nolint:wrapcheck
	}

	user := req.ToModel(shared.Actor(ctx))

	user.ID, err = s.repo.Create(ctx, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllUser)
	}()

	s.recordVisit(ctx, user.Name)

	res.FromModel(user)

	return res, nil
}

// Login finds the user holding both the cedula and the email.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.EndWithError(&err)

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	user, err := s.repo.Get(ctx, gDto.And(
		gDto.NewFilter(model.FieldCedula, gDto.FilterOperatorEq, req.Cedula),
		gDto.NewFilter(model.FieldEmail, gDto.FilterOperatorEq, req.Email),
	))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == 0 {
		return res, failure.Unauthorized("no user matches this cedula and email") // nolint:wrapcheck
	}

	s.recordVisit(ctx, user.Name)

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.EndWithError(&err)

	if req.SortBy == "" {
		req.SortBy = model.FieldName
		req.SortDir = gDto.SortDirAsc
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllUser, req, gDto.FilterGroup{})

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for users")

		return res, nil
	}

	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count users")

		return res, fmt.Errorf("failed to count users: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save users to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.EndWithError(&err)

	cacheKey := shared.BuildCacheKey(cacheGetUser, id)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for user")

		return res, nil
	}

	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == 0 {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	res.FromModel(user)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save user to cache")
		}
	}()

	return res, nil
}

// recordVisit logs the entry; a failure here never blocks the login.
func (s *serviceImpl) recordVisit(ctx context.Context, name string) {
	err := s.visits.Record(ctx, visitDto.RecordRequest{PersonName: name, AccessType: constant.AccessTypeUser})
	if err != nil {
		log.Error().Err(err).Str("user", name).Msg("failed to record user visit")
	}
}
