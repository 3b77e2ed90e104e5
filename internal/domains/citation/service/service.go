package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Citation=MockCitationService

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"

	"ecoparking/infras/kafka"
	"ecoparking/infras/otel"
	"ecoparking/internal/domains/citation/model"
	"ecoparking/internal/domains/citation/model/dto"
	"ecoparking/internal/domains/citation/repository"
	"ecoparking/internal/domains/fee"
	"ecoparking/internal/domains/notification"
	userService "ecoparking/internal/domains/user/service"
	"ecoparking/shared"
	"ecoparking/shared/constant"
	gDto "ecoparking/shared/dto"
	"ecoparking/shared/failure"
	"ecoparking/shared/timezone"
	"ecoparking/shared/validator"

	"github.com/rs/zerolog/log"
)

type Citation interface {
	Issue(ctx context.Context, req dto.IssueRequest) (dto.CitationResponse, bool, error)
	Pay(ctx context.Context, req dto.PayRequest) (dto.PayResponse, error)
	List(ctx context.Context, params gDto.QueryParams) (dto.GetCitationsResponse, error)
	ListByUser(ctx context.Context, userID int64) ([]dto.CitationResponse, error)
}

type serviceImpl struct {
	repo      repository.Citation
	users     userService.User
	notifier  notification.Notifier
	publisher kafka.Publisher
	otel      otel.Otel
}

func New(repo repository.Citation, users userService.User, notifier notification.Notifier, publisher kafka.Publisher, otel otel.Otel) Citation {
	return &serviceImpl{
		repo:      repo,
		users:     users,
		notifier:  notifier,
		publisher: publisher,
		otel:      otel,
	}
}

// Issue records a citation when the customer paid for less time than reserved. The bool
// reports whether one was issued.
func (s *serviceImpl) Issue(ctx context.Context, req dto.IssueRequest) (res dto.CitationResponse, issued bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IssueCitation")
	defer scope.EndWithError(&err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, false, err
	}

	assessment := model.Evaluate(req.ReservedMinutes, req.PaidMinutes, req.HourlyRate)
	if !assessment.Triggered {
		return res, false, nil
	}

	citation := req.ToModel(shared.Actor(ctx), assessment)

	citation.ID, err = s.repo.Create(ctx, citation)
	if err != nil {
		log.Error().Err(err).Int64("user_id", req.UserID).Msg("failed to create citation")

		return res, false, fmt.Errorf("failed to create citation: %w", err)
	}

	log.Info().Int64("citation_id", citation.ID).Int("excess_minutes", citation.ExcessMinutes).Msg("Citation issued")

	s.notifier.Citation(ctx, notification.Citation{
		To:            notification.Recipient{Name: req.UserName, Email: req.Email},
		VehicleType:   req.VehicleType,
		Location:      req.Location,
		Code:          req.Code,
		Start:         req.Start,
		ScheduledEnd:  req.ScheduledEnd,
		ActualEnd:     citation.ActualEnd,
		ExcessMinutes: citation.ExcessMinutes,
		HourlyRate:    req.HourlyRate,
		Reason:        citation.Reason,
		Penalty:       citation.Penalty,
	})

	res.FromModel(citation)

	s.publish(ctx, kafka.EventCitationIssued, citation.ID, res)

	return res, true, nil
}

// Pay settles an unpaid citation and mails the taxed invoice.
func (s *serviceImpl) Pay(ctx context.Context, req dto.PayRequest) (res dto.PayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PayCitation")
	defer scope.EndWithError(&err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	citation, err := s.repo.Get(ctx, shared.FilterByID(req.CitationID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("citation_id", req.CitationID).Msg("failed to get citation")

		return res, fmt.Errorf("failed to get citation: %w", err)
	}

	if citation.ID == 0 {
		return res, failure.NotFound("citation not found") // nolint:wrapcheck
	}

	if req.UserID != 0 && citation.UserID != req.UserID {
		return res, failure.Forbidden("this citation belongs to another user") // nolint:wrapcheck
	}

	if citation.Paid {
		return res, failure.BadRequestFromString("citation is already paid") // nolint:wrapcheck
	}

	now := timezone.Now()
	invoiceNumber := model.InvoiceNumber(citation.ID)

	affected, err := s.repo.Update(ctx, map[string]any{
		model.FieldPaid:          true,
		model.FieldPaidAt:        now,
		model.FieldInvoiceNumber: invoiceNumber,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: shared.Actor(ctx),
	}, gDto.And(
		gDto.NewFilter(model.FieldID, gDto.FilterOperatorEq, citation.ID),
		gDto.NewFilter(model.FieldPaid, gDto.FilterOperatorEq, false),
	))
	if err != nil {
		log.Error().Err(err).Int64("citation_id", citation.ID).Msg("failed to pay citation")

		return res, fmt.Errorf("failed to pay citation: %w", err)
	}

	if affected == 0 {
		return res, failure.BadRequestFromString("citation is already paid") // nolint:wrapcheck
	}

	totals := fee.InvoiceTotals(citation.Penalty)

	res = dto.PayResponse{
		CitationID:    citation.ID,
		InvoiceNumber: invoiceNumber,
		TransactionID: model.TransactionID(now),
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Total:         totals.Total,
		PaidAt:        timezone.Format(now, constant.DisplayFormat),
	}

	s.notifier.CitationInvoice(ctx, notification.Invoice{
		To:            notification.Recipient{Name: citation.UserName, Email: citation.Email},
		Cedula:        s.cedula(ctx, citation.UserID),
		InvoiceNumber: invoiceNumber,
		IssuedAt:      now,
		VehicleType:   citation.VehicleType,
		Code:          citation.ReservationCode,
		Reason:        citation.Reason,
		ExcessMinutes: citation.ExcessMinutes,
		OffenceDate:   citation.CreatedAt,
		Totals:        totals,
		TransactionID: res.TransactionID,
	})

	s.publish(ctx, kafka.EventCitationPaid, citation.ID, res)

	return res, nil
}

// cedula is best effort: the invoice still goes out when the user cannot be read.
func (s *serviceImpl) cedula(ctx context.Context, userID int64) string {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Msg("failed to get citation owner")

		return constant.Empty
	}

	return user.Cedula
}

func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams) (res dto.GetCitationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListCitations")
	defer scope.EndWithError(&err)

	if params.SortBy == "" {
		params.SortBy = constant.FieldCreatedAt
		params.SortDir = gDto.SortDirDesc
	}

	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count citations")

		return res, fmt.Errorf("failed to count citations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get citations")

		return res, fmt.Errorf("failed to get citations: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

// ListByUser returns the user's citations, unpaid ones first and newest first within each group.
func (s *serviceImpl) ListByUser(ctx context.Context, userID int64) (res []dto.CitationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListUserCitations")
	defer scope.EndWithError(&err)

	models, err := s.repo.GetAll(ctx, gDto.Newest(), gDto.Eq(model.FieldUserID, userID))
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to get user citations")

		return res, fmt.Errorf("failed to get user citations: %w", err)
	}

	slices.SortStableFunc(models, func(a, b model.Citation) int {
		return cmp.Compare(paidRank(a), paidRank(b))
	})

	res = make([]dto.CitationResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res, nil
}

func paidRank(c model.Citation) int {
	if c.Paid {
		return 1
	}

	return 0
}

func (s *serviceImpl) publish(ctx context.Context, eventType string, id int64, payload any) {
	err := s.publisher.Publish(ctx, kafka.Event{
		Type:       eventType,
		Key:        strconv.FormatInt(id, 10),
		OccurredAt: timezone.Now(),
		Payload:    payload,
	})
	if err != nil {
		log.Error().Err(err).Str("event", eventType).Msg("failed to publish event")
	}
}
