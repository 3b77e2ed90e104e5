package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Loyalty=MockLoyaltyService

import (
	"context"
	"fmt"
	"net/http"

	"ecoparking/infras/otel"
	"ecoparking/internal/domains/fee"
	"ecoparking/internal/domains/loyalty/model"
	"ecoparking/internal/domains/loyalty/model/dto"
	"ecoparking/internal/domains/loyalty/repository"
	"ecoparking/internal/domains/notification"
	"ecoparking/shared"
	"ecoparking/shared/constant"
	gDto "ecoparking/shared/dto"
	"ecoparking/shared/failure"
	"ecoparking/shared/timezone"
	"ecoparking/shared/validator"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type Loyalty interface {
	GetOrCreate(ctx context.Context, member dto.Member) (dto.StatsResponse, error)
	RegisterReservation(ctx context.Context, member dto.Member) error
	ApplyDiscount(ctx context.Context, member dto.Member, amount decimal.Decimal) (dto.DiscountResponse, error)
	Stats(ctx context.Context, userID int64) (dto.StatsResponse, error)
	List(ctx context.Context, params gDto.QueryParams) (dto.GetRecordsResponse, error)
}

type serviceImpl struct {
	repo     repository.Loyalty
	notifier notification.Notifier
	otel     otel.Otel
}

func New(repo repository.Loyalty, notifier notification.Notifier, otel otel.Otel) Loyalty {
	return &serviceImpl{
		repo:     repo,
		notifier: notifier,
		otel:     otel,
	}
}

func (s *serviceImpl) GetOrCreate(ctx context.Context, member dto.Member) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOrCreateLoyalty")
	defer scope.EndWithError(&err)

	if err = validator.ValidateStruct(&member); err != nil {
		return res, err
	}

	record, err := s.getOrCreate(ctx, member)
	if err != nil {
		return res, err
	}

	res.FromModel(record)

	return res, nil
}

func (s *serviceImpl) getOrCreate(ctx context.Context, member dto.Member) (model.LoyaltyRecord, error) {
	record, err := s.get(ctx, member.UserID)
	if err != nil || record.ID != 0 {
		return record, err
	}

	record = member.ToModel(shared.Actor(ctx))

	record.ID, err = s.repo.Create(ctx, record)
	if err == nil {
		return record, nil
	}

	// lost a race with another first reservation, the row is there now
	if failure.GetCode(err) == http.StatusConflict {
		return s.get(ctx, member.UserID)
	}

	log.Error().Err(err).Int64("user_id", member.UserID).Msg("failed to create loyalty record")

	return record, fmt.Errorf("failed to create loyalty record: %w", err)
}

func (s *serviceImpl) get(ctx context.Context, userID int64) (model.LoyaltyRecord, error) {
	record, err := s.repo.Get(ctx, gDto.Eq(model.FieldUserID, userID))
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to get loyalty record")

		return record, fmt.Errorf("failed to get loyalty record: %w", err)
	}

	return record, nil
}

// RegisterReservation counts one more completed reservation for the member.
func (s *serviceImpl) RegisterReservation(ctx context.Context, member dto.Member) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RegisterReservation")
	defer scope.EndWithError(&err)

	if err = validator.ValidateStruct(&member); err != nil {
		return err
	}

	record, err := s.getOrCreate(ctx, member)
	if err != nil {
		return err
	}

	now := timezone.Now()

	_, err = s.repo.Increment(ctx,
		map[string]any{model.FieldReservationCount: 1},
		map[string]any{
			model.FieldLastReservationAt: now,
			model.FieldTier:              model.TierFor(record.ReservationCount + 1),
			constant.FieldModifiedAt:     now,
			constant.FieldModifiedBy:     shared.Actor(ctx),
		},
		gDto.Eq(model.FieldUserID, member.UserID),
	)
	if err != nil {
		log.Error().Err(err).Int64("user_id", member.UserID).Msg("failed to register reservation")

		return fmt.Errorf("failed to register reservation: %w", err)
	}

	return nil
}

// ApplyDiscount takes DiscountRate off amount once DiscountEvery reservations have accrued since
// the last reward, and returns amount unchanged otherwise.
func (s *serviceImpl) ApplyDiscount(ctx context.Context, member dto.Member, amount decimal.Decimal) (res dto.DiscountResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ApplyDiscount")
	defer scope.EndWithError(&err)

	if err = validator.ValidateStruct(&member); err != nil {
		return res, err
	}

	if amount.IsNegative() {
		return res, failure.BadRequestFromString("amount cannot be negative") // nolint:wrapcheck
	}

	record, err := s.getOrCreate(ctx, member)
	if err != nil {
		return res, err
	}

	res = dto.DiscountResponse{
		Original: amount,
		Discount: decimal.Zero,
		Final:    amount,
		Tier:     model.TierFor(record.ReservationCount),
	}

	if !record.Eligible() {
		return res, nil
	}

	final, discount := fee.LoyaltyDiscount(amount)
	discount = fee.Round2(discount)
	now := timezone.Now()

	// the count_at_last_discount guard makes a second apply for the same batch a no-op
	affected, err := s.repo.Increment(ctx,
		map[string]any{model.FieldCumulativeDiscount: discount},
		map[string]any{
			model.FieldCountAtLastDiscount: record.ReservationCount,
			model.FieldLastDiscountAt:      now,
			model.FieldLastDiscountAmount:  discount,
			model.FieldTier:                res.Tier,
			constant.FieldModifiedAt:       now,
			constant.FieldModifiedBy:       shared.Actor(ctx),
		},
		gDto.And(
			gDto.NewFilter(model.FieldUserID, gDto.FilterOperatorEq, member.UserID),
			gDto.NewFilter(model.FieldCountAtLastDiscount, gDto.FilterOperatorEq, record.CountAtLastDiscount),
		),
	)
	if err != nil {
		log.Error().Err(err).Int64("user_id", member.UserID).Msg("failed to apply loyalty discount")

		return res, fmt.Errorf("failed to apply loyalty discount: %w", err)
	}

	if affected == 0 {
		return res, failure.Conflict("loyalty discount was already applied") // nolint:wrapcheck
	}

	res.Applied = true
	res.Discount = discount
	res.Final = fee.Round2(final)

	log.Info().Int64("user_id", member.UserID).Str("discount", discount.String()).Msg("Loyalty discount applied")

	s.notifier.LoyaltyReward(ctx, notification.Reward{
		To:       notification.Recipient{Name: member.Name, Email: member.Email},
		Every:    model.DiscountEvery,
		Tier:     res.Tier,
		Original: amount,
		Discount: discount,
		Final:    res.Final,
	})

	return res, nil
}

// Stats reports the member's progress. A user without reservations gets an empty New record.
func (s *serviceImpl) Stats(ctx context.Context, userID int64) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LoyaltyStats")
	defer scope.EndWithError(&err)

	record, err := s.get(ctx, userID)
	if err != nil {
		return res, err
	}

	if record.ID == 0 {
		record.UserID = userID
	}

	res.FromModel(record)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams) (res dto.GetRecordsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListLoyalty")
	defer scope.EndWithError(&err)

	if params.SortBy == "" {
		params.SortBy = model.FieldReservationCount
		params.SortDir = gDto.SortDirDesc
	}

	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count loyalty records")

		return res, fmt.Errorf("failed to count loyalty records: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get loyalty records")

		return res, fmt.Errorf("failed to get loyalty records: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}
