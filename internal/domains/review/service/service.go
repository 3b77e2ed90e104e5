package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Review=MockReviewService

import (
	"context"
	"fmt"

	"ecoparking/infras/otel"
	"ecoparking/internal/domains/report"
	"ecoparking/internal/domains/review/model"
	"ecoparking/internal/domains/review/model/dto"
	"ecoparking/internal/domains/review/repository"
	"ecoparking/shared"
	"ecoparking/shared/constant"
	gDto "ecoparking/shared/dto"
	"ecoparking/shared/failure"
	"ecoparking/shared/timezone"
	"ecoparking/shared/validator"

	"github.com/rs/zerolog/log"
)

type Review interface {
	Save(ctx context.Context, req dto.SaveRequest) (dto.ReviewResponse, error)
	List(ctx context.Context, params gDto.QueryParams) (dto.GetReviewsResponse, error)
	BySpace(ctx context.Context, space string) ([]dto.ReviewResponse, error)
	Average(ctx context.Context, space string) (dto.AverageResponse, error)
	Stats(ctx context.Context) (report.ReviewSummary, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo repository.Review
	otel otel.Otel
}

func New(repo repository.Review, otel otel.Otel) Review {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Save(ctx context.Context, req dto.SaveRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SaveReview")
	defer scope.EndWithError(&err)

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	review := req.ToModel(shared.Actor(ctx), timezone.Now())

	review.ID, err = s.repo.Create(ctx, review)
	if err != nil {
		log.Error().Err(err).Str("space", req.Space).Msg("failed to save review")

		return res, fmt.Errorf("failed to save review: %w", err)
	}

	res.FromModel(review)

	return res, nil
}

// List pages through every review, latest first.
func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListReviews")
	defer scope.EndWithError(&err)

	params.SortBy = model.FieldReviewedAt
	params.SortDir = gDto.SortDirDesc

	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count reviews")

		return res, fmt.Errorf("failed to count reviews: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) BySpace(ctx context.Context, space string) (res []dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReviewsBySpace")
	defer scope.EndWithError(&err)

	models, err := s.bySpace(ctx, space)
	if err != nil {
		return res, err
	}

	res = make([]dto.ReviewResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res, nil
}

// Average is the mean rating of a space rounded to one decimal, zero when nobody rated it.
func (s *serviceImpl) Average(ctx context.Context, space string) (res dto.AverageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AverageRating")
	defer scope.EndWithError(&err)

	models, err := s.bySpace(ctx, space, model.FieldSpace, model.FieldRating)
	if err != nil {
		return res, err
	}

	res.Space = space
	res.Count = len(models)
	res.Average = report.AverageRating(dto.ToRatings(models))

	return res, nil
}

func (s *serviceImpl) bySpace(ctx context.Context, space string, columns ...string) ([]model.Review, error) {
	if err := validator.ValidateVar(space, "required,max=50"); err != nil {
		return nil, err
	}

	params := gDto.QueryParams{SortBy: model.FieldReviewedAt, SortDir: gDto.SortDirDesc}

	models, err := s.repo.GetAll(ctx, params, gDto.Eq(model.FieldSpace, space), columns...)
	if err != nil {
		log.Error().Err(err).Str("space", space).Msg("failed to get reviews")

		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}

	return models, nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res report.ReviewSummary, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReviewStats")
	defer scope.EndWithError(&err)

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{}, model.FieldSpace, model.FieldRating)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	return report.SummarizeReviews(dto.ToRatings(models)), nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteReview")
	defer scope.EndWithError(&err)

	affected, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("review_id", id).Msg("failed to delete review")

		return fmt.Errorf("failed to delete review: %w", err)
	}

	if affected == 0 {
		return failure.NotFound("review not found") // nolint:wrapcheck
	}

	return nil
}
