package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Reservation=MockReservationService

import (
	"context"
	"fmt"
	"time"

	"ecoparking/infras/otel"
	"ecoparking/internal/domains/reservation/model"
	"ecoparking/internal/domains/reservation/model/dto"
	"ecoparking/internal/domains/reservation/repository"
	"ecoparking/shared"
	"ecoparking/shared/constant"
	gDto "ecoparking/shared/dto"
	"ecoparking/shared/failure"
	"ecoparking/shared/timezone"
	"ecoparking/shared/validator"

	"github.com/rs/zerolog/log"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateRequest) (dto.ReservationResponse, error)
	Active(ctx context.Context, userID, spaceID int64) (dto.ReservationResponse, error)
	Latest(ctx context.Context, userID, spaceID int64) (dto.ReservationResponse, bool, error)
	MarkPaid(ctx context.Context, id int64, paidMinutes int) error
	Release(ctx context.Context, id int64) error
	CountActive(ctx context.Context, spaceID int64) (int, error)
	CountByVehicleSince(ctx context.Context, since time.Time) (map[string]int, error)
}

type serviceImpl struct {
	repo repository.Reservation
	otel otel.Otel
}

func New(repo repository.Reservation, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateReservation")
	defer scope.EndWithError(&err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	reservation := req.ToModel(shared.Actor(ctx))

	reservation.ID, err = s.repo.Create(ctx, reservation)
	if err != nil {
		log.Error().Err(err).Int64("space_id", req.SpaceID).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	res.FromModel(reservation)

	return res, nil
}

// Active returns the unpaid reservation the user holds on the space.
func (s *serviceImpl) Active(ctx context.Context, userID, spaceID int64) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ActiveReservation")
	defer scope.EndWithError(&err)

	reservation, err := s.latest(ctx, userID, spaceID, model.StatusActive)
	if err != nil {
		return res, err
	}

	if reservation.ID == 0 {
		return res, failure.NotFound("no active reservation on this parking space") // nolint:wrapcheck
	}

	res.FromModel(reservation)

	return res, nil
}

// Latest returns the user's most recent reservation on the space, whatever its status.
func (s *serviceImpl) Latest(ctx context.Context, userID, spaceID int64) (res dto.ReservationResponse, found bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LatestReservation")
	defer scope.EndWithError(&err)

	reservation, err := s.latest(ctx, userID, spaceID)
	if err != nil {
		return res, false, err
	}

	if reservation.ID == 0 {
		return res, false, nil
	}

	res.FromModel(reservation)

	return res, true, nil
}

func (s *serviceImpl) latest(ctx context.Context, userID, spaceID int64, statuses ...string) (model.Reservation, error) {
	filters := []any{
		gDto.NewFilter(model.FieldUserID, gDto.FilterOperatorEq, userID),
		gDto.NewFilter(model.FieldSpaceID, gDto.FilterOperatorEq, spaceID),
	}

	if len(statuses) > 0 {
		filters = append(filters, gDto.NewFilter(model.FieldStatus, gDto.FilterOperatorIn, statuses))
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{Limit: 1, SortBy: model.FieldStartAt, SortDir: gDto.SortDirDesc}, gDto.And(filters...))
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Int64("space_id", spaceID).Msg("failed to get reservation")

		return model.Reservation{}, fmt.Errorf("failed to get reservation: %w", err)
	}

	if len(models) == 0 {
		return model.Reservation{}, nil
	}

	return models[0], nil
}

// MarkPaid moves an active reservation to paid. Paying twice is a user error.
func (s *serviceImpl) MarkPaid(ctx context.Context, id int64, paidMinutes int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkReservationPaid")
	defer scope.EndWithError(&err)

	if paidMinutes < 0 {
		return failure.BadRequestFromString("paid time cannot be negative") // nolint:wrapcheck
	}

	return s.transition(ctx, id, []string{model.StatusActive}, map[string]any{
		model.FieldStatus:      model.StatusPaid,
		model.FieldPaidMinutes: paidMinutes,
	})
}

func (s *serviceImpl) Release(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReleaseReservation")
	defer scope.EndWithError(&err)

	return s.transition(ctx, id, []string{model.StatusActive, model.StatusPaid}, map[string]any{
		model.FieldStatus: model.StatusReleased,
	})
}

// transition applies fields only while the reservation is in one of the from states.
func (s *serviceImpl) transition(ctx context.Context, id int64, from []string, fields map[string]any) error {
	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = shared.Actor(ctx)

	affected, err := s.repo.Update(ctx, fields, gDto.And(
		gDto.NewFilter(model.FieldID, gDto.FilterOperatorEq, id),
		gDto.NewFilter(model.FieldStatus, gDto.FilterOperatorIn, from),
	))
	if err != nil {
		log.Error().Err(err).Int64("reservation_id", id).Msg("failed to update reservation")

		return fmt.Errorf("failed to update reservation: %w", err)
	}

	if affected == 0 {
		return failure.BadRequestFromString(fmt.Sprintf("reservation %d cannot move to %s", id, fields[model.FieldStatus])) // nolint:wrapcheck
	}

	return nil
}

// CountActive is how many units of the space are still held by unpaid reservations.
func (s *serviceImpl) CountActive(ctx context.Context, spaceID int64) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountActive")
	defer scope.EndWithError(&err)

	res, err = s.repo.Count(ctx, gDto.And(
		gDto.NewFilter(model.FieldSpaceID, gDto.FilterOperatorEq, spaceID),
		gDto.NewFilter(model.FieldStatus, gDto.FilterOperatorEq, model.StatusActive),
	))
	if err != nil {
		log.Error().Err(err).Int64("space_id", spaceID).Msg("failed to count active reservations")

		return res, fmt.Errorf("failed to count active reservations: %w", err)
	}

	return res, nil
}

// CountByVehicleSince counts reservations started at or after since, per vehicle type.
func (s *serviceImpl) CountByVehicleSince(ctx context.Context, since time.Time) (res map[string]int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountByVehicleSince")
	defer scope.EndWithError(&err)

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{},
		gDto.And(gDto.NewFilter(model.FieldStartAt, gDto.FilterOperatorGreaterEq, since)),
		model.FieldVehicleType,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res = make(map[string]int)
	for _, m := range models {
		res[m.VehicleType]++
	}

	return res, nil
}
