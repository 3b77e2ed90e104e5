package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"ecoparking/config"
	"ecoparking/infras/otel"
	"ecoparking/internal/domains/report"
	"ecoparking/internal/domains/visitlog/model"
	"ecoparking/internal/domains/visitlog/model/dto"
	"ecoparking/internal/domains/visitlog/repository"
	"ecoparking/shared"
	"ecoparking/shared/constant"
	gDto "ecoparking/shared/dto"
	"ecoparking/shared/timezone"
	"ecoparking/shared/validator"

	"github.com/rs/zerolog/log"
)

const defaultRetentionYears = 1

type Visit interface {
	Record(ctx context.Context, req dto.RecordRequest) error
	Stats(ctx context.Context) (report.VisitSummary, error)
	History(ctx context.Context, params gDto.QueryParams) (dto.GetVisitsResponse, error)
	Range(ctx context.Context, r gDto.DateRange) ([]dto.VisitResponse, error)
	Prune(ctx context.Context) (int64, error)
}

type serviceImpl struct {
	repo repository.VisitLog
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.VisitLog, cfg *config.Config, otel otel.Otel) Visit {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Record(ctx context.Context, req dto.RecordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordVisit")
	defer scope.EndWithError(&err)

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	if err = s.repo.Insert(ctx, req.ToModel(shared.Actor(ctx), timezone.Now())); err != nil {
		log.Error().Err(err).Str("person", req.PersonName).Msg("failed to record visit")

		return fmt.Errorf("failed to record visit: %w", err)
	}

	return nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res report.VisitSummary, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VisitStats")
	defer scope.EndWithError(&err)

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{}, model.FieldAccessType, model.FieldEnteredAt)
	if err != nil {
		log.Error().Err(err).Msg("failed to get visits")

		return res, fmt.Errorf("failed to get visits: %w", err)
	}

	return report.SummarizeVisits(dto.ToVisits(models), timezone.Now()), nil
}

// History pages through the log, latest entry first.
func (s *serviceImpl) History(ctx context.Context, params gDto.QueryParams) (res dto.GetVisitsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VisitHistory")
	defer scope.EndWithError(&err)

	if params.Limit <= 0 {
		params.Limit = constant.DefaultValueLimit
	}

	params.SortBy = model.FieldEnteredAt
	params.SortDir = gDto.SortDirDesc

	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count visits")

		return res, fmt.Errorf("failed to count visits: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get visits")

		return res, fmt.Errorf("failed to get visits: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

// Range lists the entries between two dates in the order they happened.
func (s *serviceImpl) Range(ctx context.Context, r gDto.DateRange) (res []dto.VisitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VisitRange")
	defer scope.EndWithError(&err)

	if err = validator.ValidateStruct(&r); err != nil {
		return res, err
	}

	filter := gDto.And(
		gDto.NewFilter(model.FieldEnteredAt, gDto.FilterOperatorGreaterEq, r.From, "entered_from"),
		gDto.NewFilter(model.FieldEnteredAt, gDto.FilterOperatorLessEq, r.To, "entered_to"),
	)

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldEnteredAt, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get visits in range")

		return res, fmt.Errorf("failed to get visits in range: %w", err)
	}

	res = make([]dto.VisitResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res, nil
}

// Prune drops entries older than the retention period.
func (s *serviceImpl) Prune(ctx context.Context) (res int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PruneVisits")
	defer scope.EndWithError(&err)

	years := s.cfg.Retention.VisitLogYears
	if years <= 0 {
		years = defaultRetentionYears
	}

	cutoff := timezone.Now().AddDate(-years, 0, 0)

	res, err = s.repo.Delete(ctx, gDto.And(gDto.NewFilter(model.FieldEnteredAt, gDto.FilterOperatorLess, cutoff)))
	if err != nil {
		log.Error().Err(err).Msg("failed to prune visits")

		return res, fmt.Errorf("failed to prune visits: %w", err)
	}

	log.Info().Int64("deleted", res).Time("cutoff", cutoff).Msg("Pruned visit log")

	return res, nil
}
