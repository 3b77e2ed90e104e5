package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ecoparking/config"
	"ecoparking/infras/otel"
	"ecoparking/internal/domains/space/model"
	"ecoparking/internal/domains/space/model/dto"
	"ecoparking/internal/domains/space/repository"
	"ecoparking/shared"
	"ecoparking/shared/cache"
	"ecoparking/shared/constant"
	gDto "ecoparking/shared/dto"
	"ecoparking/shared/failure"
	"ecoparking/shared/timezone"
	"ecoparking/shared/validator"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheGetAllSpace = "space:gets"
)

type Space interface {
	Seed(ctx context.Context) error
	List(ctx context.Context) (dto.GetSpacesResponse, error)
	Get(ctx context.Context, id int64) (dto.SpaceResponse, error)
	Reserve(ctx context.Context, id int64, duration time.Duration) (dto.ReserveResponse, error)
	MarkPaid(ctx context.Context, id int64) error
	Release(ctx context.Context, id int64, open int) error
	ChangeAvailability(ctx context.Context, id int64, req dto.ChangeAvailabilityRequest) error
	UpdateRate(ctx context.Context, id int64, req dto.UpdateRateRequest) error
	RevealCode(ctx context.Context, id int64, location string) (string, error)
	ChangeCode(ctx context.Context, id int64, req dto.ChangeCodeRequest) error
}

type serviceImpl struct {
	repo  repository.ParkingSpace
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.ParkingSpace, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Space {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// DefaultSpaces are loaded into an empty store.
func DefaultSpaces() []dto.CreateSpaceRequest {
	return []dto.CreateSpaceRequest{
		{Location: "Guayaquil-Centro", VehicleType: "Auto", AvailableCount: 50, HourlyRate: decimal.RequireFromString("1.50"), Code: "GYE123"},
		{Location: "Guayaquil-Norte", VehicleType: "Moto", AvailableCount: 30, HourlyRate: decimal.RequireFromString("1.00"), Code: "GYN456"},
		{Location: "Samborondón", VehicleType: "Camioneta", AvailableCount: 20, HourlyRate: decimal.RequireFromString("2.00"), Code: "SAM789"},
	}
}

func (s *serviceImpl) Seed(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SeedSpaces")
	defer scope.EndWithError(&err)

	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count parking spaces")

		return fmt.Errorf("failed to count parking spaces: %w", err)
	}

	if total > 0 {
		return nil
	}

	defaults := DefaultSpaces()
	models := make([]model.ParkingSpace, len(defaults))

	for i, req := range defaults {
		models[i] = req.ToModel(constant.ContextSystem)
	}

	if err = s.repo.InsertBulk(ctx, models); err != nil {
		log.Error().Err(err).Msg("failed to seed parking spaces")

		return fmt.Errorf("failed to seed parking spaces: %w", err)
	}

	log.Info().Int("spaces", len(models)).Msg("Seeded default parking spaces")

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) List(ctx context.Context) (res dto.GetSpacesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListSpaces")
	defer scope.EndWithError(&err)

	params := gDto.QueryParams{SortBy: model.FieldID, SortDir: gDto.SortDirAsc}
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSpace, params, gDto.FilterGroup{})

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for parking spaces")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get parking spaces")

		return res, fmt.Errorf("failed to get parking spaces: %w", err)
	}

	for _, m := range models {
		if err = m.Check(); err != nil {
			log.Error().Err(err).Int64("space_id", m.ID).Msg("corrupted parking space")

			return res, err
		}
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save parking spaces to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) get(ctx context.Context, id int64) (model.ParkingSpace, error) {
	space, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("space_id", id).Msg("failed to get parking space")

		return space, fmt.Errorf("failed to get parking space: %w", err)
	}

	if space.ID == 0 {
		return space, failure.NotFound("parking space not found") // nolint:wrapcheck
	}

	if err = space.Check(); err != nil {
		log.Error().Err(err).Int64("space_id", id).Msg("corrupted parking space")

		return space, err
	}

	return space, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.SpaceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSpace")
	defer scope.EndWithError(&err)

	space, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(space)

	return res, nil
}

// Reserve takes one unit of the space and stamps the reservation window on it.
// The decrement only applies while the count is positive, so it can never go negative.
func (s *serviceImpl) Reserve(ctx context.Context, id int64, duration time.Duration) (res dto.ReserveResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reserve")
	defer scope.EndWithError(&err)

	if duration <= 0 {
		return res, failure.BadRequestFromString("reservation duration must be positive") // nolint:wrapcheck
	}

	space, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	noUnits := failure.BadRequestFromString(fmt.Sprintf("no spaces available at %s", space.Location))
	if space.AvailableCount == 0 {
		return res, noUnits // nolint:wrapcheck
	}

	now := timezone.Now()
	end := now.Add(duration)

	code := space.ReservationCode
	if code == constant.Empty {
		code = model.NewReservationCode(now)
	}

	affected, err := s.repo.Increment(ctx,
		map[string]any{model.FieldAvailableCount: -1},
		map[string]any{
			model.FieldReservationStart: now,
			model.FieldReservationEnd:   end,
			model.FieldReservationCode:  code,
			model.FieldPaymentCompleted: false,
			constant.FieldModifiedAt:    now,
			constant.FieldModifiedBy:    shared.Actor(ctx),
		},
		gDto.And(
			gDto.NewFilter(model.FieldID, gDto.FilterOperatorEq, id),
			gDto.NewFilter(model.FieldAvailableCount, gDto.FilterOperatorGreater, 0),
		),
	)
	if err != nil {
		log.Error().Err(err).Int64("space_id", id).Msg("failed to reserve parking space")

		return res, fmt.Errorf("failed to reserve parking space: %w", err)
	}

	if affected == 0 {
		return res, noUnits // nolint:wrapcheck
	}

	s.invalidate(ctx)

	return dto.ReserveResponse{
		SpaceID:     space.ID,
		Location:    space.Location,
		VehicleType: space.VehicleType,
		HourlyRate:  space.HourlyRate,
		Start:       now,
		End:         end,
		MaskedCode:  model.MaskCode(code),
		Code:        code,
	}, nil
}

// MarkPaid flags the space window as paid. Whether a payment is allowed is decided by the
// reservation row, since several units of one space can be held at once.
func (s *serviceImpl) MarkPaid(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkPaid")
	defer scope.EndWithError(&err)

	if _, err = s.get(ctx, id); err != nil {
		return err
	}

	_, err = s.repo.Update(ctx, map[string]any{
		model.FieldPaymentCompleted: true,
		constant.FieldModifiedAt:    timezone.Now(),
		constant.FieldModifiedBy:    shared.Actor(ctx),
	}, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("space_id", id).Msg("failed to mark parking space as paid")

		return fmt.Errorf("failed to mark parking space as paid: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// Release gives one unit back and resets the payment flag. Callers pair it with exactly one
// successful Reserve: a reservation row that just left the active state, or a Reserve whose row
// was never written. open is how many reservations still hold units of the space; the window is
// cleared only when none do.
func (s *serviceImpl) Release(ctx context.Context, id int64, open int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Release")
	defer scope.EndWithError(&err)

	if _, err = s.get(ctx, id); err != nil {
		return err
	}

	fields := map[string]any{
		model.FieldPaymentCompleted: false,
		constant.FieldModifiedAt:    timezone.Now(),
		constant.FieldModifiedBy:    shared.Actor(ctx),
	}

	if open <= 0 {
		fields[model.FieldReservationStart] = nil
		fields[model.FieldReservationEnd] = nil
	}

	_, err = s.repo.Increment(ctx,
		map[string]any{model.FieldAvailableCount: 1},
		fields,
		shared.FilterByID(id, model.FieldID, model.TableName),
	)
	if err != nil {
		log.Error().Err(err).Int64("space_id", id).Msg("failed to release parking space")

		return fmt.Errorf("failed to release parking space: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) ChangeAvailability(ctx context.Context, id int64, req dto.ChangeAvailabilityRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangeAvailability")
	defer scope.EndWithError(&err)

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	return s.update(ctx, id, map[string]any{model.FieldAvailableCount: req.AvailableCount})
}

func (s *serviceImpl) UpdateRate(ctx context.Context, id int64, req dto.UpdateRateRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRate")
	defer scope.EndWithError(&err)

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	return s.update(ctx, id, map[string]any{model.FieldHourlyRate: req.HourlyRate.Round(2)})
}

// RevealCode shows the masked reservation code to whoever knows the exact location.
func (s *serviceImpl) RevealCode(ctx context.Context, id int64, location string) (res string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RevealCode")
	defer scope.EndWithError(&err)

	space, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	if err = matchLocation(space, location); err != nil {
		return res, err
	}

	if space.ReservationCode == constant.Empty {
		return res, failure.BadRequestFromString("parking space has no reservation code") // nolint:wrapcheck
	}

	return model.MaskCode(space.ReservationCode), nil
}

func (s *serviceImpl) ChangeCode(ctx context.Context, id int64, req dto.ChangeCodeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangeCode")
	defer scope.EndWithError(&err)

	req.Code = strings.TrimSpace(req.Code)

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	space, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if err = matchLocation(space, req.Location); err != nil {
		return err
	}

	return s.update(ctx, id, map[string]any{model.FieldReservationCode: req.Code})
}

func (s *serviceImpl) update(ctx context.Context, id int64, fields map[string]any) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}

	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = shared.Actor(ctx)

	if _, err := s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Int64("space_id", id).Msg("failed to update parking space")

		return fmt.Errorf("failed to update parking space: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllSpace)
	}()
}

func matchLocation(space model.ParkingSpace, location string) error {
	if strings.TrimSpace(location) != space.Location {
		return failure.Forbidden("location does not match the parking space") // nolint:wrapcheck
	}

	return nil
}
