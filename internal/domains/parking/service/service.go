package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"strconv"

	"ecoparking/infras/kafka"
	"ecoparking/infras/otel"
	citationModel "ecoparking/internal/domains/citation/model"
	citationDto "ecoparking/internal/domains/citation/model/dto"
	citationService "ecoparking/internal/domains/citation/service"
	earningModel "ecoparking/internal/domains/earning/model"
	earningDto "ecoparking/internal/domains/earning/model/dto"
	earningService "ecoparking/internal/domains/earning/service"
	"ecoparking/internal/domains/fee"
	loyaltyDto "ecoparking/internal/domains/loyalty/model/dto"
	loyaltyService "ecoparking/internal/domains/loyalty/service"
	"ecoparking/internal/domains/notification"
	"ecoparking/internal/domains/parking/model/dto"
	reservationModel "ecoparking/internal/domains/reservation/model"
	reservationDto "ecoparking/internal/domains/reservation/model/dto"
	reservationService "ecoparking/internal/domains/reservation/service"
	spaceService "ecoparking/internal/domains/space/service"
	userDto "ecoparking/internal/domains/user/model/dto"
	vehicleStatService "ecoparking/internal/domains/vehiclestat/service"
	"ecoparking/shared/constant"
	"ecoparking/shared/failure"
	"ecoparking/shared/timezone"
	"ecoparking/shared/validator"

	"github.com/rs/zerolog/log"
)

type Parking interface {
	Reserve(ctx context.Context, user userDto.UserResponse, req dto.ReserveRequest) (dto.ReserveResponse, error)
	Checkout(ctx context.Context, user userDto.UserResponse, req dto.CheckoutRequest) (dto.ReceiptResponse, error)
	PaymentStatus(ctx context.Context, user userDto.UserResponse, spaceID int64) (dto.StatusResponse, error)
}

// Dependencies groups the services a parking session moves through.
type Dependencies struct {
	Spaces       spaceService.Space
	Reservations reservationService.Reservation
	Loyalty      loyaltyService.Loyalty
	Earnings     earningService.Earning
	VehicleStats vehicleStatService.VehicleStat
	Citations    citationService.Citation
	Notifier     notification.Notifier
	Publisher    kafka.Publisher
}

type serviceImpl struct {
	Dependencies
	otel otel.Otel
}

func New(deps Dependencies, otel otel.Otel) Parking {
	return &serviceImpl{
		Dependencies: deps,
		otel:         otel,
	}
}

func (s *serviceImpl) Reserve(ctx context.Context, user userDto.UserResponse, req dto.ReserveRequest) (res dto.ReserveResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reserve")
	defer scope.EndWithError(&err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	space, err := s.Spaces.Reserve(ctx, req.SpaceID, req.Duration())
	if err != nil {
		return res, err
	}

	reservation, err := s.Reservations.Create(ctx, reservationDto.CreateRequest{
		UserID:      user.ID,
		UserName:    user.Name,
		SpaceID:     space.SpaceID,
		Code:        space.Code,
		Location:    space.Location,
		VehicleType: space.VehicleType,
		HourlyRate:  space.HourlyRate,
		Start:       space.Start,
		End:         space.End,
	})
	if err != nil {
		s.rollbackSpace(ctx, req.SpaceID)

		return res, err
	}

	if err = s.VehicleStats.RegisterUse(ctx, space.VehicleType); err != nil {
		log.Warn().Err(err).Str("vehicle_type", space.VehicleType).Msg("failed to register vehicle use")
	}

	res = dto.ReserveResponse{
		ReservationID: reservation.ID,
		SpaceID:       space.SpaceID,
		Location:      space.Location,
		VehicleType:   space.VehicleType,
		HourlyRate:    space.HourlyRate,
		Hours:         req.Hours,
		Start:         space.Start,
		End:           space.End,
		MaskedCode:    space.MaskedCode,
	}

	s.publish(ctx, kafka.EventReservationCreated, reservation.ID, res)

	log.Info().Int64("reservation_id", reservation.ID).Int64("space_id", space.SpaceID).Msg("Parking space reserved")

	return res, nil
}

// rollbackSpace gives the unit back when the reservation row could not be written.
func (s *serviceImpl) rollbackSpace(ctx context.Context, spaceID int64) {
	if err := s.giveBack(ctx, spaceID); err != nil {
		log.Error().Err(err).Int64("space_id", spaceID).Msg("failed to release parking space after reservation error")
	}
}

// Checkout settles the user's active reservation on a space: loyalty, ledger, receipt, citation, release.
// Moving the reservation row to paid is the first write and the only gate; once it succeeds the
// unit is always given back, even when a later step fails.
func (s *serviceImpl) Checkout(ctx context.Context, user userDto.UserResponse, req dto.CheckoutRequest) (res dto.ReceiptResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Checkout")
	defer scope.EndWithError(&err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if !req.Confirm {
		return res, failure.BadRequestFromString("payment was not confirmed") // nolint:wrapcheck
	}

	reservation, err := s.Reservations.Active(ctx, user.ID, req.SpaceID)
	if err != nil {
		return res, err
	}

	if err = s.Reservations.MarkPaid(ctx, reservation.ID, req.PaidMinutes()); err != nil {
		return res, err
	}

	res, err = s.settle(ctx, user, req, reservation)

	if releaseErr := s.release(ctx, reservation); releaseErr != nil && err == nil {
		err = releaseErr
	}

	if err != nil {
		return res, err
	}

	s.publish(ctx, kafka.EventPaymentRecorded, reservation.ID, res)

	log.Info().
		Int64("reservation_id", reservation.ID).
		Str("total", res.Total.StringFixed(2)).
		Bool("discount", res.DiscountApplied).
		Bool("citation", res.Citation != nil).
		Msg("Parking payment recorded")

	return res, nil
}

// settle runs everything that follows a recorded payment, up to the citation check.
func (s *serviceImpl) settle(ctx context.Context, user userDto.UserResponse, req dto.CheckoutRequest,
	reservation reservationDto.ReservationResponse,
) (res dto.ReceiptResponse, err error) {
	if err = s.Spaces.MarkPaid(ctx, reservation.SpaceID); err != nil {
		return res, err
	}

	amount := fee.ReservationCost(reservation.HourlyRate, req.PaidDuration())
	member := loyaltyDto.Member{UserID: user.ID, Name: user.Name, Email: user.Email}

	if err = s.Loyalty.RegisterReservation(ctx, member); err != nil {
		return res, err
	}

	discount, err := s.Loyalty.ApplyDiscount(ctx, member, amount)
	if err != nil {
		return res, err
	}

	total := fee.Round2(discount.Final)

	err = s.Earnings.Record(ctx, earningDto.RecordRequest{
		Concept:       earningModel.ParkingConcept(reservation.Location),
		Amount:        total,
		PaymentMethod: req.Method,
		Location:      reservation.Location,
		VehicleType:   reservation.VehicleType,
		UserName:      user.Name,
	})
	if err != nil {
		return res, err
	}

	if err = s.VehicleStats.AddCollected(ctx, reservation.VehicleType, total); err != nil {
		log.Warn().Err(err).Str("vehicle_type", reservation.VehicleType).Msg("failed to add collected amount")
	}

	paidAt := timezone.Now()
	res = dto.ReceiptResponse{
		ReservationID:   reservation.ID,
		SpaceID:         reservation.SpaceID,
		Location:        reservation.Location,
		VehicleType:     reservation.VehicleType,
		Method:          req.Method,
		PaidHours:       req.PaidHours,
		Amount:          fee.Round2(amount),
		Discount:        fee.Round2(discount.Discount),
		Total:           total,
		DiscountApplied: discount.Applied,
		Tier:            discount.Tier,
		TransactionID:   citationModel.TransactionID(paidAt),
		PaidAt:          paidAt,
	}

	s.Notifier.Receipt(ctx, notification.Receipt{
		To:            notification.Recipient{Name: user.Name, Email: user.Email},
		Location:      reservation.Location,
		Method:        req.Method,
		Amount:        total,
		Discount:      res.Discount,
		PaidAt:        paidAt,
		TransactionID: res.TransactionID,
	})

	citation, issued, err := s.Citations.Issue(ctx, citationDto.IssueRequest{
		UserID:          user.ID,
		UserName:        user.Name,
		Email:           user.Email,
		VehicleType:     reservation.VehicleType,
		Location:        reservation.Location,
		Code:            reservation.Code,
		HourlyRate:      reservation.HourlyRate,
		Start:           reservation.Start,
		ScheduledEnd:    reservation.End,
		ReservedMinutes: reservation.ReservedMinutes,
		PaidMinutes:     req.PaidMinutes(),
	})
	if err != nil {
		return res, err
	}

	if issued {
		res.Citation = &citation
	}

	return res, nil
}

// release closes the reservation row and returns its unit. A row leaves the active and paid
// states only once, so a reservation never gives back more than the unit it took.
func (s *serviceImpl) release(ctx context.Context, reservation reservationDto.ReservationResponse) error {
	if err := s.Reservations.Release(ctx, reservation.ID); err != nil {
		return err
	}

	return s.giveBack(ctx, reservation.SpaceID)
}

// giveBack returns one unit of the space and keeps its window while other reservations hold units.
func (s *serviceImpl) giveBack(ctx context.Context, spaceID int64) error {
	open, err := s.Reservations.CountActive(ctx, spaceID)
	if err != nil {
		log.Warn().Err(err).Int64("space_id", spaceID).Msg("failed to count open reservations, keeping the space window")

		open = 1
	}

	return s.Spaces.Release(ctx, spaceID, open)
}

func (s *serviceImpl) PaymentStatus(ctx context.Context, user userDto.UserResponse, spaceID int64) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PaymentStatus")
	defer scope.EndWithError(&err)

	reservation, found, err := s.Reservations.Latest(ctx, user.ID, spaceID)
	if err != nil {
		return res, err
	}

	res = dto.StatusResponse{SpaceID: spaceID, Status: paymentStatus(reservation, found)}

	return res, nil
}

func paymentStatus(reservation reservationDto.ReservationResponse, found bool) string {
	switch {
	case !found:
		return dto.PaymentStatusNone
	case reservation.Status == reservationModel.StatusActive:
		return dto.PaymentStatusPending
	case reservation.Status == reservationModel.StatusPaid:
		return dto.PaymentStatusPaid
	case reservation.PaidMinutes > 0:
		return dto.PaymentStatusPaid
	default:
		return dto.PaymentStatusNone
	}
}

func (s *serviceImpl) publish(ctx context.Context, eventType string, id int64, payload any) {
	err := s.Publisher.Publish(ctx, kafka.Event{
		Type:       eventType,
		Key:        strconv.FormatInt(id, 10),
		OccurredAt: timezone.Now(),
		Payload:    payload,
	})
	if err != nil {
		log.Warn().Err(err).Str("type", eventType).Int64("reservation_id", id).Msg("failed to publish parking event")
	}
}
