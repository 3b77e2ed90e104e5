package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"ecoparking/config"
	"ecoparking/helper"
	"ecoparking/infras/database"
	"ecoparking/infras/kafka"
	kafkaMocks "ecoparking/infras/kafka/mocks"
	"ecoparking/infras/otel/mocks"
	citationMocks "ecoparking/internal/domains/citation/mocks"
	citationDto "ecoparking/internal/domains/citation/model/dto"
	citationRepository "ecoparking/internal/domains/citation/repository"
	citationService "ecoparking/internal/domains/citation/service"
	earningMocks "ecoparking/internal/domains/earning/mocks"
	earningDto "ecoparking/internal/domains/earning/model/dto"
	earningRepository "ecoparking/internal/domains/earning/repository"
	earningService "ecoparking/internal/domains/earning/service"
	loyaltyMocks "ecoparking/internal/domains/loyalty/mocks"
	loyaltyDto "ecoparking/internal/domains/loyalty/model/dto"
	loyaltyRepository "ecoparking/internal/domains/loyalty/repository"
	loyaltyService "ecoparking/internal/domains/loyalty/service"
	"ecoparking/internal/domains/notification"
	notificationMocks "ecoparking/internal/domains/notification/mocks"
	"ecoparking/internal/domains/parking/model/dto"
	"ecoparking/internal/domains/parking/service"
	reservationMocks "ecoparking/internal/domains/reservation/mocks"
	reservationModel "ecoparking/internal/domains/reservation/model"
	reservationDto "ecoparking/internal/domains/reservation/model/dto"
	reservationRepository "ecoparking/internal/domains/reservation/repository"
	reservationService "ecoparking/internal/domains/reservation/service"
	spaceMocks "ecoparking/internal/domains/space/mocks"
	spaceDto "ecoparking/internal/domains/space/model/dto"
	spaceRepository "ecoparking/internal/domains/space/repository"
	spaceService "ecoparking/internal/domains/space/service"
	userMocks "ecoparking/internal/domains/user/mocks"
	userDto "ecoparking/internal/domains/user/model/dto"
	userRepository "ecoparking/internal/domains/user/repository"
	vehicleStatMocks "ecoparking/internal/domains/vehiclestat/mocks"
	vehicleStatRepository "ecoparking/internal/domains/vehiclestat/repository"
	vehicleStatService "ecoparking/internal/domains/vehiclestat/service"
	"ecoparking/shared/cache"
	"ecoparking/shared/failure"
	"ecoparking/shared/timezone"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	spaces       *spaceMocks.MockSpace
	reservations *reservationMocks.MockReservationService
	loyalty      *loyaltyMocks.MockLoyaltyService
	earnings     *earningMocks.MockEarningService
	vehicleStats *vehicleStatMocks.MockVehicleStatService
	citations    *citationMocks.MockCitationService
	notifier     *notificationMocks.MockNotifier
	publisher    *kafkaMocks.MockPublisher
}

func newFixture(t *testing.T) (fixture, service.Parking) {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		spaces:       spaceMocks.NewMockSpace(ctrl),
		reservations: reservationMocks.NewMockReservationService(ctrl),
		loyalty:      loyaltyMocks.NewMockLoyaltyService(ctrl),
		earnings:     earningMocks.NewMockEarningService(ctrl),
		vehicleStats: vehicleStatMocks.NewMockVehicleStatService(ctrl),
		citations:    citationMocks.NewMockCitationService(ctrl),
		notifier:     notificationMocks.NewMockNotifier(ctrl),
		publisher:    kafkaMocks.NewMockPublisher(ctrl),
	}

	return f, service.New(service.Dependencies{
		Spaces:       f.spaces,
		Reservations: f.reservations,
		Loyalty:      f.loyalty,
		Earnings:     f.earnings,
		VehicleStats: f.vehicleStats,
		Citations:    f.citations,
		Notifier:     f.notifier,
		Publisher:    f.publisher,
	}, mocks.NewOtel())
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var ana = userDto.UserResponse{ID: 7, Name: "Ana Torres", Cedula: "0912345678", Email: "ana@mail.com"}

func activeReservation() reservationDto.ReservationResponse {
	start := time.Date(2025, time.March, 14, 8, 0, 0, 0, timezone.GetLocation())

	return reservationDto.ReservationResponse{
		ID:              11,
		UserID:          ana.ID,
		SpaceID:         1,
		UserName:        ana.Name,
		Code:            "GYE123",
		Location:        "Guayaquil-Centro",
		VehicleType:     "Auto",
		HourlyRate:      dec("1.50"),
		ReservedMinutes: 180,
		Start:           start,
		End:             start.Add(3 * time.Hour),
		Status:          reservationModel.StatusActive,
	}
}

// expectRelease covers closing reservation 11 and returning its unit to space 1.
func expectRelease(f fixture, open int) {
	f.reservations.EXPECT().Release(gomock.Any(), int64(11)).Return(nil)
	f.reservations.EXPECT().CountActive(gomock.Any(), int64(1)).Return(open, nil)
	f.spaces.EXPECT().Release(gomock.Any(), int64(1), open).Return(nil)
}

func noDiscount(amount decimal.Decimal) loyaltyDto.DiscountResponse {
	return loyaltyDto.DiscountResponse{Original: amount, Discount: decimal.Zero, Final: amount, Tier: "New"}
}

func TestParkingService_Reserve(t *testing.T) {
	start := time.Date(2025, time.March, 14, 8, 0, 0, 0, timezone.GetLocation())
	reserved := spaceDto.ReserveResponse{
		SpaceID:     1,
		Location:    "Guayaquil-Centro",
		VehicleType: "Auto",
		HourlyRate:  dec("1.50"),
		Start:       start,
		End:         start.Add(3 * time.Hour),
		MaskedCode:  "**123",
		Code:        "GYE123",
	}

	tests := []struct {
		name      string
		req       dto.ReserveRequest
		setupMock func(f fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "reserved",
			req:  dto.ReserveRequest{SpaceID: 1, Hours: dec("3")},
			setupMock: func(f fixture) {
				f.spaces.EXPECT().Reserve(gomock.Any(), int64(1), 3*time.Hour).Return(reserved, nil)
				f.reservations.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req reservationDto.CreateRequest) (reservationDto.ReservationResponse, error) {
						assert.Equal(t, ana.ID, req.UserID)
						assert.Equal(t, "GYE123", req.Code)
						assert.True(t, dec("1.50").Equal(req.HourlyRate))

						return reservationDto.ReservationResponse{ID: 11}, nil
					})
				f.vehicleStats.EXPECT().RegisterUse(gomock.Any(), "Auto").Return(nil)
				f.publisher.EXPECT().
					Publish(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, events ...kafka.Event) error {
						require.Len(t, events, 1)
						assert.Equal(t, kafka.EventReservationCreated, events[0].Type)
						assert.Equal(t, "11", events[0].Key)

						return nil
					})
			},
		},
		{
			name: "vehicle stat failure is not fatal",
			req:  dto.ReserveRequest{SpaceID: 1, Hours: dec("3")},
			setupMock: func(f fixture) {
				f.spaces.EXPECT().Reserve(gomock.Any(), int64(1), 3*time.Hour).Return(reserved, nil)
				f.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(reservationDto.ReservationResponse{ID: 12}, nil)
				f.vehicleStats.EXPECT().RegisterUse(gomock.Any(), "Auto").Return(errors.New("down"))
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "space full",
			req:  dto.ReserveRequest{SpaceID: 3, Hours: dec("1")},
			setupMock: func(f fixture) {
				f.spaces.EXPECT().Reserve(gomock.Any(), int64(3), time.Hour).
					Return(spaceDto.ReserveResponse{}, failure.BadRequestFromString("no units left"))
			},
			wantCode: http.StatusBadRequest,
			wantErr:  true,
		},
		{
			name: "reservation row fails and the unit is given back",
			req:  dto.ReserveRequest{SpaceID: 1, Hours: dec("3")},
			setupMock: func(f fixture) {
				f.spaces.EXPECT().Reserve(gomock.Any(), int64(1), 3*time.Hour).Return(reserved, nil)
				f.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(reservationDto.ReservationResponse{}, failure.Unavailable(errors.New("down")))
				f.reservations.EXPECT().CountActive(gomock.Any(), int64(1)).Return(2, nil)
				f.spaces.EXPECT().Release(gomock.Any(), int64(1), 2).Return(nil)
			},
			wantCode: http.StatusServiceUnavailable,
			wantErr:  true,
		},
		{
			name:      "zero hours",
			req:       dto.ReserveRequest{SpaceID: 1},
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusBadRequest,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, svc := newFixture(t)
			tt.setupMock(f)

			res, err := svc.Reserve(context.Background(), ana, tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "**123", res.MaskedCode)
			assert.Equal(t, "2025-03-14 11:00", res.ScheduledExit())
		})
	}
}

func TestParkingService_Checkout(t *testing.T) {
	tests := []struct {
		name         string
		req          dto.CheckoutRequest
		setupMock    func(f fixture)
		wantTotal    string
		wantCitation bool
		wantCode     int
		wantErr      bool
	}{
		{
			name: "paid in full with cash",
			req:  dto.CheckoutRequest{SpaceID: 1, Method: "cash", PaidHours: dec("3"), Confirm: true},
			setupMock: func(f fixture) {
				f.reservations.EXPECT().Active(gomock.Any(), ana.ID, int64(1)).Return(activeReservation(), nil)
				f.loyalty.EXPECT().RegisterReservation(gomock.Any(), gomock.Any()).Return(nil)
				f.loyalty.EXPECT().ApplyDiscount(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m loyaltyDto.Member, amount decimal.Decimal) (loyaltyDto.DiscountResponse, error) {
						assert.Equal(t, ana.Email, m.Email)
						assert.Equal(t, "4.50", amount.StringFixed(2))

						return noDiscount(amount), nil
					})
				f.reservations.EXPECT().MarkPaid(gomock.Any(), int64(11), 180).Return(nil)
				f.spaces.EXPECT().MarkPaid(gomock.Any(), int64(1)).Return(nil)
				f.earnings.EXPECT().
					Record(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req earningDto.RecordRequest) error {
						assert.Equal(t, "Pago parqueo - Guayaquil-Centro", req.Concept)
						assert.Equal(t, "cash", req.PaymentMethod)
						assert.Equal(t, "4.50", req.Amount.StringFixed(2))

						return nil
					})
				f.vehicleStats.EXPECT().AddCollected(gomock.Any(), "Auto", gomock.Any()).Return(nil)
				f.notifier.EXPECT().
					Receipt(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, data notification.Receipt) {
						assert.Equal(t, ana.Email, data.To.Email)
						assert.Contains(t, data.TransactionID, "TRANS-")
					})
				f.citations.EXPECT().
					Issue(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req citationDto.IssueRequest) (citationDto.CitationResponse, bool, error) {
						assert.Equal(t, 180, req.ReservedMinutes)
						assert.Equal(t, 180, req.PaidMinutes)

						return citationDto.CitationResponse{}, false, nil
					})
				expectRelease(f, 0)
				f.publisher.EXPECT().
					Publish(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, events ...kafka.Event) error {
						require.Len(t, events, 1)
						assert.Equal(t, kafka.EventPaymentRecorded, events[0].Type)

						return nil
					})
			},
			wantTotal: "4.50",
		},
		{
			name: "short payment with loyalty discount and citation",
			req:  dto.CheckoutRequest{SpaceID: 1, Method: "card", PaidHours: dec("2"), Confirm: true},
			setupMock: func(f fixture) {
				f.reservations.EXPECT().Active(gomock.Any(), ana.ID, int64(1)).Return(activeReservation(), nil)
				f.loyalty.EXPECT().RegisterReservation(gomock.Any(), gomock.Any()).Return(nil)
				f.loyalty.EXPECT().ApplyDiscount(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(loyaltyDto.DiscountResponse{
						Applied:  true,
						Original: dec("3.00"),
						Discount: dec("0.60"),
						Final:    dec("2.40"),
						Tier:     "Bronze",
					}, nil)
				f.reservations.EXPECT().MarkPaid(gomock.Any(), int64(11), 120).Return(nil)
				f.spaces.EXPECT().MarkPaid(gomock.Any(), int64(1)).Return(nil)
				f.earnings.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
				f.vehicleStats.EXPECT().AddCollected(gomock.Any(), "Auto", gomock.Any()).Return(nil)
				f.notifier.EXPECT().
					Receipt(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, data notification.Receipt) {
						assert.Equal(t, "0.60", data.Discount.StringFixed(2))
					})
				f.citations.EXPECT().Issue(gomock.Any(), gomock.Any()).
					Return(citationDto.CitationResponse{ID: 3, ExcessMinutes: 60, Penalty: dec("1.80")}, true, nil)
				expectRelease(f, 0)
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantTotal:    "2.40",
			wantCitation: true,
		},
		{
			name:      "not confirmed",
			req:       dto.CheckoutRequest{SpaceID: 1, Method: "cash", PaidHours: dec("3")},
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusBadRequest,
			wantErr:   true,
		},
		{
			name:      "unknown method",
			req:       dto.CheckoutRequest{SpaceID: 1, Method: "cheque", PaidHours: dec("3"), Confirm: true},
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusBadRequest,
			wantErr:   true,
		},
		{
			name: "no active reservation",
			req:  dto.CheckoutRequest{SpaceID: 2, Method: "card", PaidHours: dec("1"), Confirm: true},
			setupMock: func(f fixture) {
				f.reservations.EXPECT().Active(gomock.Any(), ana.ID, int64(2)).
					Return(reservationDto.ReservationResponse{}, failure.NotFound("no active reservation on this parking space"))
			},
			wantCode: http.StatusNotFound,
			wantErr:  true,
		},
		{
			name: "ledger failure stops before the receipt and still returns the unit",
			req:  dto.CheckoutRequest{SpaceID: 1, Method: "cash", PaidHours: dec("3"), Confirm: true},
			setupMock: func(f fixture) {
				f.reservations.EXPECT().Active(gomock.Any(), ana.ID, int64(1)).Return(activeReservation(), nil)
				f.reservations.EXPECT().MarkPaid(gomock.Any(), int64(11), 180).Return(nil)
				f.spaces.EXPECT().MarkPaid(gomock.Any(), int64(1)).Return(nil)
				f.loyalty.EXPECT().RegisterReservation(gomock.Any(), gomock.Any()).Return(nil)
				f.loyalty.EXPECT().ApplyDiscount(gomock.Any(), gomock.Any(), gomock.Any()).Return(noDiscount(dec("4.50")), nil)
				f.earnings.EXPECT().Record(gomock.Any(), gomock.Any()).Return(failure.Unavailable(errors.New("down")))
				expectRelease(f, 0)
			},
			wantCode: http.StatusServiceUnavailable,
			wantErr:  true,
		},
		{
			name: "reservation already settled stops before loyalty",
			req:  dto.CheckoutRequest{SpaceID: 1, Method: "cash", PaidHours: dec("3"), Confirm: true},
			setupMock: func(f fixture) {
				f.reservations.EXPECT().Active(gomock.Any(), ana.ID, int64(1)).Return(activeReservation(), nil)
				f.reservations.EXPECT().MarkPaid(gomock.Any(), int64(11), 180).
					Return(failure.BadRequestFromString("reservation 11 cannot move to paid"))
			},
			wantCode: http.StatusBadRequest,
			wantErr:  true,
		},
		{
			name: "half an hour while another unit stays reserved",
			req:  dto.CheckoutRequest{SpaceID: 1, Method: "card", PaidHours: dec("0.5"), Confirm: true},
			setupMock: func(f fixture) {
				reservation := activeReservation()
				reservation.ReservedMinutes = 30
				reservation.End = reservation.Start.Add(30 * time.Minute)

				f.reservations.EXPECT().Active(gomock.Any(), ana.ID, int64(1)).Return(reservation, nil)
				f.reservations.EXPECT().MarkPaid(gomock.Any(), int64(11), 30).Return(nil)
				f.spaces.EXPECT().MarkPaid(gomock.Any(), int64(1)).Return(nil)
				f.loyalty.EXPECT().RegisterReservation(gomock.Any(), gomock.Any()).Return(nil)
				f.loyalty.EXPECT().ApplyDiscount(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ loyaltyDto.Member, amount decimal.Decimal) (loyaltyDto.DiscountResponse, error) {
						assert.Equal(t, "0.75", amount.StringFixed(2))

						return noDiscount(amount), nil
					})
				f.earnings.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
				f.vehicleStats.EXPECT().AddCollected(gomock.Any(), "Auto", gomock.Any()).Return(nil)
				f.notifier.EXPECT().Receipt(gomock.Any(), gomock.Any())
				f.citations.EXPECT().
					Issue(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req citationDto.IssueRequest) (citationDto.CitationResponse, bool, error) {
						assert.Equal(t, 30, req.PaidMinutes)

						return citationDto.CitationResponse{}, false, nil
					})
				expectRelease(f, 1)
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantTotal: "0.75",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, svc := newFixture(t)
			tt.setupMock(f)

			res, err := svc.Checkout(context.Background(), ana, tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.Total.StringFixed(2))
			assert.Equal(t, tt.wantCitation, res.Citation != nil)
			assert.Contains(t, res.TransactionID, "TRANS-")
		})
	}
}

func TestParkingService_PaymentStatus(t *testing.T) {
	tests := []struct {
		name        string
		reservation reservationDto.ReservationResponse
		found       bool
		want        string
	}{
		{name: "nothing reserved", want: dto.PaymentStatusNone},
		{name: "active", reservation: reservationDto.ReservationResponse{Status: reservationModel.StatusActive}, found: true, want: dto.PaymentStatusPending},
		{name: "paid", reservation: reservationDto.ReservationResponse{Status: reservationModel.StatusPaid, PaidMinutes: 60}, found: true, want: dto.PaymentStatusPaid},
		{name: "released after payment", reservation: reservationDto.ReservationResponse{Status: reservationModel.StatusReleased, PaidMinutes: 60}, found: true, want: dto.PaymentStatusPaid},
		{name: "released unpaid", reservation: reservationDto.ReservationResponse{Status: reservationModel.StatusReleased}, found: true, want: dto.PaymentStatusNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, svc := newFixture(t)
			f.reservations.EXPECT().Latest(gomock.Any(), ana.ID, int64(1)).Return(tt.reservation, tt.found, nil)

			res, err := svc.PaymentStatus(context.Background(), ana, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Status)
		})
	}
}

// store wires the parking service to real services over an in-memory SQLite schema.
type store struct {
	svc          service.Parking
	spaces       spaceService.Space
	reservations reservationService.Reservation
	loyalty      loyaltyService.Loyalty
	earnings     earningService.Earning
	vehicleStats vehicleStatService.VehicleStat
	citations    citationService.Citation
	notifier     *notificationMocks.MockNotifier
	users        userRepository.User
}

func newStore(t *testing.T) store {
	t.Helper()

	conn, err := database.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	cfg := &config.Config{}
	require.NoError(t, helper.Up(cfg, conn))

	ot := mocks.NewOtel()
	ctrl := gomock.NewController(t)
	publisher := kafka.New(cfg, ot)

	st := store{
		notifier: notificationMocks.NewMockNotifier(ctrl),
		users:    userRepository.New(conn, ot),
	}

	st.spaces = spaceService.New(spaceRepository.New(conn, ot), cfg, cache.NewRedisCache(nil, ot), ot)
	require.NoError(t, st.spaces.Seed(context.Background()))

	st.reservations = reservationService.New(reservationRepository.New(conn, ot), ot)
	st.loyalty = loyaltyService.New(loyaltyRepository.New(conn, ot), st.notifier, ot)
	st.earnings = earningService.New(earningRepository.New(conn, ot), nil, cfg, ot)
	st.vehicleStats = vehicleStatService.New(vehicleStatRepository.New(conn, ot), st.reservations, ot)
	st.citations = citationService.New(citationRepository.New(conn, ot), userMocks.NewMockUserService(ctrl), st.notifier, publisher, ot)

	st.svc = service.New(service.Dependencies{
		Spaces:       st.spaces,
		Reservations: st.reservations,
		Loyalty:      st.loyalty,
		Earnings:     st.earnings,
		VehicleStats: st.vehicleStats,
		Citations:    st.citations,
		Notifier:     st.notifier,
		Publisher:    publisher,
	}, ot)

	return st
}

func (st store) register(t *testing.T, name, cedula, email string) userDto.UserResponse {
	t.Helper()

	req := userDto.RegisterRequest{Name: name, Cedula: cedula, Email: email}

	id, err := st.users.Create(context.Background(), req.ToModel("system"))
	require.NoError(t, err)

	return userDto.UserResponse{ID: id, Name: name, Cedula: cedula, Email: email}
}

func TestParkingService_StoreReserveAndCheckout(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()
	user := st.register(t, "Ana Torres", "0912345678", "ana@mail.com")

	st.notifier.EXPECT().Receipt(gomock.Any(), gomock.Any()).Times(1)

	before, err := st.spaces.Get(ctx, 1)
	require.NoError(t, err)

	reserved, err := st.svc.Reserve(ctx, user, dto.ReserveRequest{SpaceID: 1, Hours: dec("3")})
	require.NoError(t, err)
	assert.Equal(t, "**123", reserved.MaskedCode)

	status, err := st.svc.PaymentStatus(ctx, user, 1)
	require.NoError(t, err)
	assert.Equal(t, dto.PaymentStatusPending, status.Status)

	receipt, err := st.svc.Checkout(ctx, user, dto.CheckoutRequest{SpaceID: 1, Method: "cash", PaidHours: dec("3"), Confirm: true})
	require.NoError(t, err)
	assert.Equal(t, "4.50", receipt.Total.StringFixed(2))
	assert.False(t, receipt.DiscountApplied)
	assert.Nil(t, receipt.Citation)

	after, err := st.spaces.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, before.AvailableCount, after.AvailableCount)

	stats, err := st.loyalty.Stats(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ReservationCount)

	summary, err := st.earnings.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, "4.50", summary.Total.StringFixed(2))

	vehicles, err := st.vehicleStats.Stats(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, vehicles.Vehicles)
	assert.Equal(t, 1, vehicles.TotalUses)

	status, err = st.svc.PaymentStatus(ctx, user, 1)
	require.NoError(t, err)
	assert.Equal(t, dto.PaymentStatusPaid, status.Status)

	mine, err := st.citations.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, mine)

	_, err = st.svc.Checkout(ctx, user, dto.CheckoutRequest{SpaceID: 1, Method: "cash", PaidHours: dec("3"), Confirm: true})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestParkingService_StoreTwoHoldersOnOneSpace(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()
	ana := st.register(t, "Ana Torres", "0912345678", "ana@mail.com")
	luis := st.register(t, "Luis Vera", "0923456789", "luis@mail.com")

	st.notifier.EXPECT().Receipt(gomock.Any(), gomock.Any()).Times(2)

	before, err := st.spaces.Get(ctx, 1)
	require.NoError(t, err)

	_, err = st.svc.Reserve(ctx, ana, dto.ReserveRequest{SpaceID: 1, Hours: dec("1")})
	require.NoError(t, err)

	_, err = st.svc.Reserve(ctx, luis, dto.ReserveRequest{SpaceID: 1, Hours: dec("1")})
	require.NoError(t, err)

	_, err = st.svc.Checkout(ctx, ana, dto.CheckoutRequest{SpaceID: 1, Method: "cash", PaidHours: dec("1"), Confirm: true})
	require.NoError(t, err)

	held, err := st.spaces.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, before.AvailableCount-1, held.AvailableCount)
	assert.NotNil(t, held.ReservationStart)

	status, err := st.svc.PaymentStatus(ctx, luis, 1)
	require.NoError(t, err)
	assert.Equal(t, dto.PaymentStatusPending, status.Status)

	receipt, err := st.svc.Checkout(ctx, luis, dto.CheckoutRequest{SpaceID: 1, Method: "card", PaidHours: dec("1"), Confirm: true})
	require.NoError(t, err)
	assert.Equal(t, "1.50", receipt.Total.StringFixed(2))

	after, err := st.spaces.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, before.AvailableCount, after.AvailableCount)
	assert.Nil(t, after.ReservationStart)

	stats, err := st.loyalty.Stats(ctx, luis.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ReservationCount)

	summary, err := st.earnings.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, "3.00", summary.Total.StringFixed(2))
	assert.Equal(t, 2, summary.Payments)
}

func TestParkingService_StoreHalfHour(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()
	user := st.register(t, "Ana Torres", "0912345678", "ana@mail.com")

	st.notifier.EXPECT().Receipt(gomock.Any(), gomock.Any()).Times(1)

	reserved, err := st.svc.Reserve(ctx, user, dto.ReserveRequest{SpaceID: 1, Hours: dec("0.5")})
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, reserved.End.Sub(reserved.Start))

	receipt, err := st.svc.Checkout(ctx, user, dto.CheckoutRequest{SpaceID: 1, Method: "cash", PaidHours: dec("0.5"), Confirm: true})
	require.NoError(t, err)
	assert.Equal(t, "0.75", receipt.Total.StringFixed(2))
	assert.Nil(t, receipt.Citation)

	latest, found, err := st.reservations.Latest(ctx, user.ID, 1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 30, latest.PaidMinutes)
	assert.Equal(t, 30, latest.ReservedMinutes)
}
