package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=VehicleStat=MockVehicleStatService

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ecoparking/infras/otel"
	reservationService "ecoparking/internal/domains/reservation/service"
	"ecoparking/internal/domains/vehiclestat/model"
	"ecoparking/internal/domains/vehiclestat/model/dto"
	"ecoparking/internal/domains/vehiclestat/repository"
	"ecoparking/shared"
	"ecoparking/shared/constant"
	gDto "ecoparking/shared/dto"
	"ecoparking/shared/failure"
	gModel "ecoparking/shared/model"
	"ecoparking/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const weekWindow = 7 * 24 * time.Hour

type VehicleStat interface {
	RegisterUse(ctx context.Context, vehicleType string) error
	AddCollected(ctx context.Context, vehicleType string, amount decimal.Decimal) error
	Stats(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	repo         repository.VehicleStat
	reservations reservationService.Reservation
	otel         otel.Otel
}

func New(repo repository.VehicleStat, reservations reservationService.Reservation, otel otel.Otel) VehicleStat {
	return &serviceImpl{
		repo:         repo,
		reservations: reservations,
		otel:         otel,
	}
}

// RegisterUse counts one more reservation of the vehicle type.
func (s *serviceImpl) RegisterUse(ctx context.Context, vehicleType string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RegisterVehicleUse")
	defer scope.EndWithError(&err)

	now := timezone.Now()

	return s.upsert(ctx, vehicleType,
		map[string]any{model.FieldUseCount: 1},
		map[string]any{model.FieldLastUsedAt: now},
		model.VehicleStat{UseCount: 1, TotalCollected: decimal.Zero, LastUsedAt: &now},
	)
}

// AddCollected adds a paid amount to the vehicle type's total.
func (s *serviceImpl) AddCollected(ctx context.Context, vehicleType string, amount decimal.Decimal) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddVehicleCollected")
	defer scope.EndWithError(&err)

	if amount.IsNegative() {
		return failure.BadRequestFromString("collected amount cannot be negative") // nolint:wrapcheck
	}

	amount = amount.Round(2)

	return s.upsert(ctx, vehicleType,
		map[string]any{model.FieldTotalCollected: amount},
		map[string]any{},
		model.VehicleStat{TotalCollected: amount},
	)
}

// upsert bumps the row of vehicleType, creating it from initial on first use.
func (s *serviceImpl) upsert(ctx context.Context, vehicleType string, deltas, mod map[string]any, initial model.VehicleStat) error {
	vehicleType = strings.TrimSpace(vehicleType)
	if vehicleType == constant.Empty {
		return failure.BadRequestFromString("vehicle type is required") // nolint:wrapcheck
	}

	actor := shared.Actor(ctx)
	filter := gDto.Eq(model.FieldVehicleType, vehicleType)

	mod[constant.FieldModifiedAt] = timezone.Now()
	mod[constant.FieldModifiedBy] = actor

	affected, err := s.repo.Increment(ctx, deltas, mod, filter)
	if err != nil {
		log.Error().Err(err).Str("vehicle_type", vehicleType).Msg("failed to update vehicle stat")

		return fmt.Errorf("failed to update vehicle stat: %w", err)
	}

	if affected > 0 {
		return nil
	}

	initial.VehicleType = vehicleType
	initial.Metadata = gModel.NewMetadata(actor)

	err = s.repo.Insert(ctx, initial)
	if err != nil && failure.GetCode(err) == http.StatusConflict {
		// created by a concurrent first use, retry as an update
		_, err = s.repo.Increment(ctx, deltas, mod, filter)
	}

	if err != nil {
		log.Error().Err(err).Str("vehicle_type", vehicleType).Msg("failed to create vehicle stat")

		return fmt.Errorf("failed to create vehicle stat: %w", err)
	}

	return nil
}

// Stats reports persisted counters with weekly and monthly uses counted from reservations.
func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VehicleStats")
	defer scope.EndWithError(&err)

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldUseCount, SortDir: gDto.SortDirDesc}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get vehicle stats")

		return res, fmt.Errorf("failed to get vehicle stats: %w", err)
	}

	now := timezone.Now()

	weekly, err := s.reservations.CountByVehicleSince(ctx, now.Add(-weekWindow))
	if err != nil {
		return res, fmt.Errorf("failed to count weekly uses: %w", err)
	}

	monthly, err := s.reservations.CountByVehicleSince(ctx, timezone.StartOfMonth(now))
	if err != nil {
		return res, fmt.Errorf("failed to count monthly uses: %w", err)
	}

	res.FromModels(models, weekly, monthly)

	return res, nil
}
