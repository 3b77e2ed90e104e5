package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ecoparking/config"
	"ecoparking/helper"
	"ecoparking/infras/database"
	"ecoparking/infras/otel/mocks"
	visitMocks "ecoparking/internal/domains/visitlog/mocks"
	"ecoparking/internal/domains/visitlog/model"
	"ecoparking/internal/domains/visitlog/model/dto"
	"ecoparking/internal/domains/visitlog/repository"
	"ecoparking/internal/domains/visitlog/service"
	"ecoparking/shared/constant"
	gDto "ecoparking/shared/dto"
	"ecoparking/shared/failure"
	gModel "ecoparking/shared/model"
	"ecoparking/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVisitService_Record(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.RecordRequest
		setupMock func(repo *visitMocks.MockVisitLog)
		wantErr   bool
		wantUser  bool
	}{
		{
			name: "user entry",
			req:  dto.RecordRequest{PersonName: "Ana Torres", AccessType: constant.AccessTypeUser},
			setupMock: func(repo *visitMocks.MockVisitLog) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m model.VisitLog) error {
						assert.Equal(t, "Ana Torres", m.PersonName)
						assert.Equal(t, constant.AccessTypeUser, m.AccessType)
						assert.WithinDuration(t, time.Now(), m.EnteredAt, time.Minute)

						return nil
					})
			},
		},
		{
			name:      "unknown access type",
			req:       dto.RecordRequest{PersonName: "Ana Torres", AccessType: "Guest"},
			setupMock: func(_ *visitMocks.MockVisitLog) {},
			wantErr:   true,
			wantUser:  true,
		},
		{
			name:      "missing name",
			req:       dto.RecordRequest{AccessType: constant.AccessTypeAdmin},
			setupMock: func(_ *visitMocks.MockVisitLog) {},
			wantErr:   true,
			wantUser:  true,
		},
		{
			name: "store error",
			req:  dto.RecordRequest{PersonName: "Ana Torres", AccessType: constant.AccessTypeUser},
			setupMock: func(repo *visitMocks.MockVisitLog) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(failure.Unavailable(errors.New("timeout")))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := visitMocks.NewMockVisitLog(ctrl)
			tt.setupMock(repo)

			svc := service.New(repo, &config.Config{}, mocks.NewOtel())
			err := svc.Record(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantUser, failure.IsUserError(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestVisitService_PruneUsesRetention(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := visitMocks.NewMockVisitLog(ctrl)

	cfg := &config.Config{}
	cfg.Retention.VisitLogYears = 3

	repo.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int64, error) {
			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "entered_at < :entered_at")

			cutoff, ok := args[model.FieldEnteredAt].(time.Time)
			require.True(t, ok)
			assert.WithinDuration(t, time.Now().AddDate(-3, 0, 0), cutoff, time.Minute)

			return 4, nil
		})

	deleted, err := service.New(repo, cfg, mocks.NewOtel()).Prune(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
}

func TestVisitService_HistoryNewestFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := visitMocks.NewMockVisitLog(ctrl)

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(25, nil)
	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.VisitLog, error) {
			assert.Equal(t, model.FieldEnteredAt, params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)
			assert.Equal(t, constant.DefaultValueLimit, params.Limit)

			return []model.VisitLog{{ID: 9, PersonName: "Ana Torres", AccessType: constant.AccessTypeUser}}, nil
		})

	res, err := service.New(repo, &config.Config{}, mocks.NewOtel()).History(context.Background(), gDto.QueryParams{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalPage)
	assert.Equal(t, int64(9), res.Visits[0].ID)
}

func newStore(t *testing.T) (service.Visit, repository.VisitLog) {
	t.Helper()

	conn, err := database.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	cfg := &config.Config{}
	require.NoError(t, helper.Up(cfg, conn))

	ot := mocks.NewOtel()
	repo := repository.New(conn, ot)

	return service.New(repo, cfg, ot), repo
}

func TestVisitService_StoreRoundTrip(t *testing.T) {
	svc, repo := newStore(t)
	ctx := context.Background()

	require.NoError(t, svc.Record(ctx, dto.RecordRequest{PersonName: "Ana Torres", AccessType: constant.AccessTypeUser}))
	require.NoError(t, svc.Record(ctx, dto.RecordRequest{PersonName: "Admin", AccessType: constant.AccessTypeAdmin}))

	old := timezone.Now().AddDate(-2, 0, 0)
	require.NoError(t, repo.Insert(ctx, model.VisitLog{
		PersonName: "Luis Vera",
		AccessType: constant.AccessTypeUser,
		EnteredAt:  old,
		Metadata:   gModel.NewMetadata(constant.ContextSystem),
	}))

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Today)

	rangeRes, err := svc.Range(ctx, gDto.DateRange{From: old.Add(-time.Hour), To: timezone.Now().Add(time.Hour)})
	require.NoError(t, err)
	require.Len(t, rangeRes, 3)
	assert.Equal(t, "Luis Vera", rangeRes[0].PersonName)

	history, err := svc.History(ctx, gDto.QueryParams{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, history.TotalData)
	require.Len(t, history.Visits, 2)
	assert.Equal(t, "Admin", history.Visits[0].PersonName)

	deleted, err := svc.Prune(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	stats, err = svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
}

func TestVisitService_RangeRejectsInvertedDates(t *testing.T) {
	svc, _ := newStore(t)
	now := timezone.Now()

	_, err := svc.Range(context.Background(), gDto.DateRange{From: now, To: now.Add(-time.Hour)})
	assert.True(t, failure.IsUserError(err))
}
