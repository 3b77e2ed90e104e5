package service_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"ecoparking/config"
	"ecoparking/helper"
	"ecoparking/infras/database"
	"ecoparking/infras/otel/mocks"
	reviewMocks "ecoparking/internal/domains/review/mocks"
	"ecoparking/internal/domains/review/model"
	"ecoparking/internal/domains/review/model/dto"
	"ecoparking/internal/domains/review/repository"
	"ecoparking/internal/domains/review/service"
	gDto "ecoparking/shared/dto"
	"ecoparking/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReviewService_Save(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.SaveRequest
		setupMock func(repo *reviewMocks.MockReview)
		wantErr   bool
	}{
		{
			name: "five stars",
			req:  dto.SaveRequest{Space: " Guayaquil-Centro ", UserName: "Ana Torres", Rating: 5, Comment: "Great"},
			setupMock: func(repo *reviewMocks.MockReview) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m model.Review) (int64, error) {
						assert.Equal(t, "Guayaquil-Centro", m.Space)
						assert.Equal(t, 5, m.Rating)
						assert.False(t, m.ReviewedAt.IsZero())

						return 1, nil
					})
			},
		},
		{name: "zero rating", req: dto.SaveRequest{Space: "A", UserName: "Ana", Rating: 0}, setupMock: func(_ *reviewMocks.MockReview) {}, wantErr: true},
		{name: "six stars", req: dto.SaveRequest{Space: "A", UserName: "Ana", Rating: 6}, setupMock: func(_ *reviewMocks.MockReview) {}, wantErr: true},
		{name: "space too long", req: dto.SaveRequest{Space: strings.Repeat("x", 51), UserName: "Ana", Rating: 3}, setupMock: func(_ *reviewMocks.MockReview) {}, wantErr: true},
		{name: "comment too long", req: dto.SaveRequest{Space: "A", UserName: "Ana", Rating: 3, Comment: strings.Repeat("x", 501)}, setupMock: func(_ *reviewMocks.MockReview) {}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := reviewMocks.NewMockReview(ctrl)
			tt.setupMock(repo)

			res, err := service.New(repo, mocks.NewOtel()).Save(context.Background(), tt.req)

			if tt.wantErr {
				assert.True(t, failure.IsUserError(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "★★★★★", res.Stars)
		})
	}
}

func TestReviewService_DeleteMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := reviewMocks.NewMockReview(ctrl)

	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	err := service.New(repo, mocks.NewOtel()).Delete(context.Background(), 42)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★☆☆", dto.Stars(3))
	assert.Equal(t, "☆☆☆☆☆", dto.Stars(-1))
	assert.Equal(t, "★★★★★", dto.Stars(9))
}

func TestReviewService_Store(t *testing.T) {
	conn, err := database.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, helper.Up(&config.Config{}, conn))

	ot := mocks.NewOtel()
	ctx := context.Background()
	svc := service.New(repository.New(conn, ot), ot)

	saved := make([]dto.ReviewResponse, 0, 4)

	for _, req := range []dto.SaveRequest{
		{Space: "Guayaquil-Centro", UserName: "Ana Torres", Rating: 5},
		{Space: "Guayaquil-Centro", UserName: "Luis Vera", Rating: 4},
		{Space: "Guayaquil-Centro", UserName: "Eva Ruiz", Rating: 4},
		{Space: "Samborondón", UserName: "Ana Torres", Rating: 2, Comment: "Too far"},
	} {
		res, err := svc.Save(ctx, req)
		require.NoError(t, err)

		saved = append(saved, res)
	}

	avg, err := svc.Average(ctx, "Guayaquil-Centro")
	require.NoError(t, err)
	assert.Equal(t, 3, avg.Count)
	assert.True(t, decimal.RequireFromString("4.3").Equal(avg.Average), "average %s", avg.Average)

	empty, err := svc.Average(ctx, "Guayaquil-Norte")
	require.NoError(t, err)
	assert.True(t, empty.Average.IsZero())

	bySpace, err := svc.BySpace(ctx, "Samborondón")
	require.NoError(t, err)
	require.Len(t, bySpace, 1)
	assert.Equal(t, "Too far", bySpace[0].Comment)

	list, err := svc.List(ctx, gDto.QueryParams{Page: 1, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, 4, list.TotalData)
	assert.Equal(t, 2, list.TotalPage)
	require.Len(t, list.Reviews, 3)
	assert.Equal(t, saved[3].ID, list.Reviews[0].ID)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	require.Len(t, stats.Distribution, 3)
	assert.Equal(t, "5", stats.Distribution[0].Label)
	assert.True(t, decimal.RequireFromString("50").Equal(stats.Distribution[1].Percent))

	require.NoError(t, svc.Delete(ctx, saved[3].ID))

	stats, err = svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
}
