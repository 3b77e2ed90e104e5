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
	spaceMocks "ecoparking/internal/domains/space/mocks"
	"ecoparking/internal/domains/space/model"
	"ecoparking/internal/domains/space/model/dto"
	"ecoparking/internal/domains/space/repository"
	"ecoparking/internal/domains/space/service"
	"ecoparking/shared/cache"
	cacheMocks "ecoparking/shared/cache/mocks"
	gDto "ecoparking/shared/dto"
	"ecoparking/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func centro() model.ParkingSpace {
	return model.ParkingSpace{
		ID:              1,
		Location:        "Guayaquil-Centro",
		VehicleType:     "Auto",
		AvailableCount:  50,
		HourlyRate:      decimal.RequireFromString("1.50"),
		ReservationCode: "GYE123",
	}
}

func newService(t *testing.T) (service.Space, *spaceMocks.MockParkingSpace) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := spaceMocks.NewMockParkingSpace(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo
}

func TestSpaceService_Reserve(t *testing.T) {
	tests := []struct {
		name      string
		duration  time.Duration
		setupMock func(repo *spaceMocks.MockParkingSpace)
		wantCode  string
		wantUser  bool
		wantErr   bool
	}{
		{
			name:     "decrements with a guarded update",
			duration: 3 * time.Hour,
			setupMock: func(repo *spaceMocks.MockParkingSpace) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(centro(), nil)
				repo.EXPECT().
					Increment(gomock.Any(), map[string]any{model.FieldAvailableCount: -1}, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _, mod map[string]any, filter gDto.FilterGroup) (int64, error) {
						where, args := filter.GetWhereClause()
						assert.Contains(t, where, "available_count > :available_count")
						assert.Equal(t, 0, args[model.FieldAvailableCount])
						assert.Equal(t, "GYE123", mod[model.FieldReservationCode])
						assert.Equal(t, false, mod[model.FieldPaymentCompleted])

						return 1, nil
					})
			},
			wantCode: "**123",
		},
		{
			name:     "no units left",
			duration: time.Hour,
			setupMock: func(repo *spaceMocks.MockParkingSpace) {
				full := centro()
				full.AvailableCount = 0
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(full, nil)
			},
			wantErr:  true,
			wantUser: true,
		},
		{
			name:     "last unit taken in between",
			duration: time.Hour,
			setupMock: func(repo *spaceMocks.MockParkingSpace) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(centro(), nil)
				repo.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantErr:  true,
			wantUser: true,
		},
		{
			name:     "unknown space",
			duration: time.Hour,
			setupMock: func(repo *spaceMocks.MockParkingSpace) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.ParkingSpace{}, nil)
			},
			wantErr:  true,
			wantUser: true,
		},
		{
			name:      "non-positive duration",
			duration:  0,
			setupMock: func(_ *spaceMocks.MockParkingSpace) {},
			wantErr:   true,
			wantUser:  true,
		},
		{
			name:     "corrupted row",
			duration: time.Hour,
			setupMock: func(repo *spaceMocks.MockParkingSpace) {
				broken := centro()
				broken.AvailableCount = -4
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(broken, nil)
			},
			wantErr: true,
		},
		{
			name:     "store unavailable",
			duration: time.Hour,
			setupMock: func(repo *spaceMocks.MockParkingSpace) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.ParkingSpace{}, failure.Unavailable(errors.New("connection refused")))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			tt.setupMock(repo)

			res, err := svc.Reserve(context.Background(), 1, tt.duration)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantUser, failure.IsUserError(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, res.MaskedCode)
			assert.Equal(t, tt.duration, res.End.Sub(res.Start))
		})
	}
}

func TestSpaceService_ReserveAssignsMissingCode(t *testing.T) {
	svc, repo := newService(t)

	space := centro()
	space.ReservationCode = ""

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(space, nil)
	repo.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)

	res, err := svc.Reserve(context.Background(), 1, time.Hour)
	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Regexp(t, `^EP\d{18}$`, res.Code)
	assert.Len(t, res.MaskedCode, 5)
}

func TestSpaceService_MarkPaid(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.ParkingSpace{}, nil)

	err := svc.MarkPaid(context.Background(), 9)
	assert.Equal(t, 404, failure.GetCode(err))

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(centro(), nil)
	repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mod map[string]any, _ gDto.FilterGroup) (int64, error) {
			assert.Equal(t, true, mod[model.FieldPaymentCompleted])

			return 1, nil
		})

	assert.NoError(t, svc.MarkPaid(context.Background(), 1))
	time.Sleep(10 * time.Millisecond)
}

func TestSpaceService_RevealCode(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(centro(), nil).Times(2)

	code, err := svc.RevealCode(context.Background(), 1, "Guayaquil-Centro")
	require.NoError(t, err)
	assert.Equal(t, "**123", code)

	_, err = svc.RevealCode(context.Background(), 1, "Guayaquil-Norte")
	assert.Equal(t, 403, failure.GetCode(err))
}

func TestSpaceService_ChangeCode(t *testing.T) {
	svc, repo := newService(t)

	err := svc.ChangeCode(context.Background(), 1, dto.ChangeCodeRequest{Location: "Guayaquil-Centro", Code: "   "})
	assert.True(t, failure.IsUserError(err))

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(centro(), nil).Times(2)
	repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mod map[string]any, _ gDto.FilterGroup) (int64, error) {
			assert.Equal(t, "NEW999", mod[model.FieldReservationCode])

			return 1, nil
		})

	err = svc.ChangeCode(context.Background(), 1, dto.ChangeCodeRequest{Location: "Guayaquil-Centro", Code: " NEW999 "})
	time.Sleep(10 * time.Millisecond)
	assert.NoError(t, err)
}

func TestSpaceService_UpdateRateRejectsNonPositive(t *testing.T) {
	svc, _ := newService(t)

	err := svc.UpdateRate(context.Background(), 1, dto.UpdateRateRequest{HourlyRate: decimal.Zero})
	assert.True(t, failure.IsUserError(err))

	err = svc.ChangeAvailability(context.Background(), 1, dto.ChangeAvailabilityRequest{AvailableCount: -1})
	assert.True(t, failure.IsUserError(err))
}

func TestSpaceService_ListCacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := spaceMocks.NewMockParkingSpace(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			res, _ := value.(*dto.GetSpacesResponse)
			res.TotalData = 3

			return nil
		})

	svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

	res, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalData)
}

// The remaining tests run against the real schema in an in-memory SQLite store.
func newStoreService(t *testing.T) service.Space {
	t.Helper()

	conn, err := database.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	cfg := &config.Config{}
	require.NoError(t, helper.Up(cfg, conn))

	ot := mocks.NewOtel()
	svc := service.New(repository.New(conn, ot), cfg, cache.NewRedisCache(nil, ot), ot)
	require.NoError(t, svc.Seed(context.Background()))

	return svc
}

func TestSpaceService_SeedIsIdempotent(t *testing.T) {
	svc := newStoreService(t)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))

	res, err := svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, res.TotalData)

	assert.Equal(t, "Guayaquil-Centro", res.Spaces[0].Location)
	assert.Equal(t, 50, res.Spaces[0].AvailableCount)
	assert.Equal(t, "1.50", res.Spaces[0].HourlyRate.StringFixed(2))
	assert.Equal(t, "Samborondón", res.Spaces[2].Location)
	assert.Equal(t, model.StateIdle, res.Spaces[2].State)
}

func TestSpaceService_ReserveThenReleaseRestoresCount(t *testing.T) {
	svc := newStoreService(t)
	ctx := context.Background()

	before, err := svc.Get(ctx, 2)
	require.NoError(t, err)

	reserved, err := svc.Reserve(ctx, 2, 90*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "GYN456", reserved.Code)

	during, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, before.AvailableCount-1, during.AvailableCount)
	assert.Equal(t, model.StateReserved, during.State)
	require.NotNil(t, during.ReservationEnd)
	assert.WithinDuration(t, reserved.End, *during.ReservationEnd, time.Second)

	require.NoError(t, svc.MarkPaid(ctx, 2))

	paid, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, model.StatePaid, paid.State)

	require.NoError(t, svc.Release(ctx, 2, 0))

	after, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, before.AvailableCount, after.AvailableCount)
	assert.Equal(t, model.StateIdle, after.State)
	assert.Nil(t, after.ReservationStart)
}

func TestSpaceService_ReleaseKeepsWindowWhileUnitsAreHeld(t *testing.T) {
	svc := newStoreService(t)
	ctx := context.Background()

	_, err := svc.Reserve(ctx, 1, time.Hour)
	require.NoError(t, err)

	_, err = svc.Reserve(ctx, 1, 2*time.Hour)
	require.NoError(t, err)

	require.NoError(t, svc.MarkPaid(ctx, 1))
	require.NoError(t, svc.Release(ctx, 1, 1))

	held, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 49, held.AvailableCount)
	assert.Equal(t, model.StateReserved, held.State)
	assert.NotNil(t, held.ReservationStart)

	require.NoError(t, svc.MarkPaid(ctx, 1))
	require.NoError(t, svc.Release(ctx, 1, 0))

	idle, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 50, idle.AvailableCount)
	assert.Equal(t, model.StateIdle, idle.State)
	assert.Nil(t, idle.ReservationStart)
}

func TestSpaceService_ReserveAtZeroLeavesStateUnchanged(t *testing.T) {
	svc := newStoreService(t)
	ctx := context.Background()

	require.NoError(t, svc.ChangeAvailability(ctx, 3, dto.ChangeAvailabilityRequest{AvailableCount: 0}))

	_, err := svc.Reserve(ctx, 3, time.Hour)
	require.Error(t, err)
	assert.True(t, failure.IsUserError(err))

	space, err := svc.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, space.AvailableCount)
	assert.Equal(t, model.StateIdle, space.State)
}

func TestSpaceService_UpdateRateStored(t *testing.T) {
	svc := newStoreService(t)
	ctx := context.Background()

	require.NoError(t, svc.UpdateRate(ctx, 1, dto.UpdateRateRequest{HourlyRate: decimal.RequireFromString("2.25")}))

	space, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "2.25", space.HourlyRate.StringFixed(2))
}
