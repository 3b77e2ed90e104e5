package console_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ecoparking/config"
	adminMocks "ecoparking/internal/domains/admin/mocks"
	adminDto "ecoparking/internal/domains/admin/model/dto"
	citationMocks "ecoparking/internal/domains/citation/mocks"
	citationDto "ecoparking/internal/domains/citation/model/dto"
	earningMocks "ecoparking/internal/domains/earning/mocks"
	loyaltyMocks "ecoparking/internal/domains/loyalty/mocks"
	parkingMocks "ecoparking/internal/domains/parking/mocks"
	parkingDto "ecoparking/internal/domains/parking/model/dto"
	"ecoparking/internal/domains/report"
	reviewMocks "ecoparking/internal/domains/review/mocks"
	reviewDto "ecoparking/internal/domains/review/model/dto"
	spaceMocks "ecoparking/internal/domains/space/mocks"
	spaceDto "ecoparking/internal/domains/space/model/dto"
	userMocks "ecoparking/internal/domains/user/mocks"
	userDto "ecoparking/internal/domains/user/model/dto"
	vehicleStatMocks "ecoparking/internal/domains/vehiclestat/mocks"
	visitMocks "ecoparking/internal/domains/visitlog/mocks"
	"ecoparking/shared/failure"
	"ecoparking/transport/console"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	users        *userMocks.MockUserService
	admins       *adminMocks.MockAdminService
	spaces       *spaceMocks.MockSpace
	parking      *parkingMocks.MockParking
	loyalty      *loyaltyMocks.MockLoyaltyService
	citations    *citationMocks.MockCitationService
	earnings     *earningMocks.MockEarningService
	visits       *visitMocks.MockVisit
	vehicleStats *vehicleStatMocks.MockVehicleStatService
	reviews      *reviewMocks.MockReviewService
}

func newFixture(t *testing.T) (fixture, *console.Console) {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		users:        userMocks.NewMockUserService(ctrl),
		admins:       adminMocks.NewMockAdminService(ctrl),
		spaces:       spaceMocks.NewMockSpace(ctrl),
		parking:      parkingMocks.NewMockParking(ctrl),
		loyalty:      loyaltyMocks.NewMockLoyaltyService(ctrl),
		citations:    citationMocks.NewMockCitationService(ctrl),
		earnings:     earningMocks.NewMockEarningService(ctrl),
		visits:       visitMocks.NewMockVisit(ctrl),
		vehicleStats: vehicleStatMocks.NewMockVehicleStatService(ctrl),
		reviews:      reviewMocks.NewMockReviewService(ctrl),
	}

	return f, console.New(&config.Config{}, console.Services{
		Users:        f.users,
		Admins:       f.admins,
		Spaces:       f.spaces,
		Parking:      f.parking,
		Loyalty:      f.loyalty,
		Citations:    f.citations,
		Earnings:     f.earnings,
		Visits:       f.visits,
		VehicleStats: f.vehicleStats,
		Reviews:      f.reviews,
	})
}

func script(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

var ana = userDto.UserResponse{ID: 7, Name: "Ana Torres", Cedula: "0912345678", Email: "ana@mail.com"}

var centro = spaceDto.SpaceResponse{
	ID:             1,
	Location:       "Guayaquil-Centro",
	VehicleType:    "Auto",
	AvailableCount: 50,
	HourlyRate:     decimal.RequireFromString("1.50"),
	State:          "idle",
}

func spaces() spaceDto.GetSpacesResponse {
	return spaceDto.GetSpacesResponse{Spaces: []spaceDto.SpaceResponse{centro}, TotalData: 1}
}

// loginAna expects the user login and the space picker around one parking menu visit.
func loginAna(f fixture) {
	f.users.EXPECT().
		Login(gomock.Any(), userDto.LoginRequest{Cedula: "0912345678", Email: "ana@mail.com"}).
		Return(ana, nil)
	f.spaces.EXPECT().List(gomock.Any()).Return(spaces(), nil).Times(2)
	f.spaces.EXPECT().Get(gomock.Any(), int64(1)).Return(centro, nil)
}

func TestConsole_Run(t *testing.T) {
	tests := []struct {
		name      string
		input     *strings.Reader
		setupMock func(f fixture)
		want      []string
	}{
		{
			name:      "exit",
			input:     script("5"),
			setupMock: func(_ fixture) {},
			want:      []string{"Main menu", "Goodbye"},
		},
		{
			name:      "input ends",
			input:     strings.NewReader(""),
			setupMock: func(_ fixture) {},
			want:      []string{"Welcome to EcoParking"},
		},
		{
			name:      "invalid option",
			input:     script("9", "abc", "5"),
			setupMock: func(_ fixture) {},
			want:      []string{"Invalid option, try again."},
		},
		{
			name:  "unknown user",
			input: script("1", "2", "0000000000", "nobody@mail.com", "5"),
			setupMock: func(f fixture) {
				f.users.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(userDto.UserResponse{}, failure.Unauthorized("no user matches this cedula and email"))
			},
			want: []string{"✗ no user matches this cedula and email", "Goodbye"},
		},
		{
			name:  "register then back",
			input: script("1", "1", "Ana Torres", "0912345678", "ana@mail.com", "", "0", "5"),
			setupMock: func(f fixture) {
				f.users.EXPECT().
					Register(gomock.Any(), userDto.RegisterRequest{Name: "Ana Torres", Cedula: "0912345678", Email: "ana@mail.com"}).
					Return(ana, nil)
				f.spaces.EXPECT().List(gomock.Any()).Return(spaces(), nil)
			},
			want: []string{"Welcome, Ana Torres.", "[1] Guayaquil-Centro"},
		},
		{
			name:  "reserve",
			input: script("1", "2", "0912345678", "ana@mail.com", "1", "1", "3", "8", "0", "5"),
			setupMock: func(f fixture) {
				loginAna(f)

				start := time.Date(2025, time.March, 14, 8, 0, 0, 0, time.UTC)
				f.parking.EXPECT().
					Reserve(gomock.Any(), ana, parkingDto.ReserveRequest{SpaceID: 1, Hours: decimal.NewFromInt(3)}).
					Return(parkingDto.ReserveResponse{
						SpaceID:     1,
						Location:    "Guayaquil-Centro",
						VehicleType: "Auto",
						HourlyRate:  decimal.RequireFromString("1.50"),
						Hours:       decimal.NewFromInt(3),
						Start:       start,
						End:         start.Add(3 * time.Hour),
						MaskedCode:  "**123",
					}, nil)
			},
			want: []string{"✓ Reserved Guayaquil-Centro (Auto) for 3 h at $1.50/h.", "Reservation code: **123"},
		},
		{
			name:  "reserve half an hour",
			input: script("1", "2", "0912345678", "ana@mail.com", "1", "1", "0,5", "8", "0", "5"),
			setupMock: func(f fixture) {
				loginAna(f)

				start := time.Date(2025, time.March, 14, 8, 0, 0, 0, time.UTC)
				f.parking.EXPECT().
					Reserve(gomock.Any(), ana, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ userDto.UserResponse, req parkingDto.ReserveRequest) (parkingDto.ReserveResponse, error) {
						assert.Equal(t, 30*time.Minute, req.Duration())

						return parkingDto.ReserveResponse{
							Location:    "Guayaquil-Centro",
							VehicleType: "Auto",
							HourlyRate:  decimal.RequireFromString("1.50"),
							Hours:       req.Hours,
							Start:       start,
							End:         start.Add(req.Duration()),
							MaskedCode:  "**123",
						}, nil
					})
			},
			want: []string{"✓ Reserved Guayaquil-Centro (Auto) for 0.5 h at $1.50/h."},
		},
		{
			name:  "space full is reported and the menu goes on",
			input: script("1", "2", "0912345678", "ana@mail.com", "1", "1", "2", "8", "0", "5"),
			setupMock: func(f fixture) {
				loginAna(f)
				f.parking.EXPECT().Reserve(gomock.Any(), ana, gomock.Any()).
					Return(parkingDto.ReserveResponse{}, failure.BadRequestFromString("no units left at Guayaquil-Centro"))
			},
			want: []string{"✗ no units left at Guayaquil-Centro", "Goodbye"},
		},
		{
			name:  "store down is reported as retryable",
			input: script("1", "2", "0912345678", "ana@mail.com", "1", "5", "8", "0", "5"),
			setupMock: func(f fixture) {
				loginAna(f)
				f.parking.EXPECT().PaymentStatus(gomock.Any(), ana, int64(1)).
					Return(parkingDto.StatusResponse{}, failure.Unavailable(errors.New("connection refused")))
			},
			want: []string{"The service is not available right now, please try again."},
		},
		{
			name:  "pay cash with review",
			input: script("1", "2", "0912345678", "ana@mail.com", "1", "4", "2", "3", "y", "y", "5", "Great", "8", "0", "5"),
			setupMock: func(f fixture) {
				loginAna(f)
				f.parking.EXPECT().
					Checkout(gomock.Any(), ana, parkingDto.CheckoutRequest{SpaceID: 1, Method: "cash", PaidHours: decimal.NewFromInt(3), Confirm: true}).
					Return(parkingDto.ReceiptResponse{
						Location:      "Guayaquil-Centro",
						Method:        "cash",
						PaidHours:     decimal.NewFromInt(3),
						Amount:        decimal.RequireFromString("4.50"),
						Discount:      decimal.Zero,
						Total:         decimal.RequireFromString("4.50"),
						TransactionID: "TRANS-20250314110000",
						PaidAt:        time.Date(2025, time.March, 14, 11, 0, 0, 0, time.UTC),
					}, nil)
				f.reviews.EXPECT().
					Save(gomock.Any(), reviewDto.SaveRequest{Space: "Guayaquil-Centro", UserName: "Ana Torres", Rating: 5, Comment: "Great"}).
					Return(reviewDto.ReviewResponse{Stars: "★★★★★"}, nil)
			},
			want: []string{"✓ Payment recorded", "Total:        $4.50", "TRANS-20250314110000", "★★★★★"},
		},
		{
			name:      "payment not confirmed",
			input:     script("1", "2", "0912345678", "ana@mail.com", "1", "4", "1", "3", "n", "8", "0", "5"),
			setupMock: loginAna,
			want:      []string{"Payment cancelled."},
		},
		{
			name:  "pay own citation",
			input: script("1", "2", "0912345678", "ana@mail.com", "1", "7", "4", "8", "0", "5"),
			setupMock: func(f fixture) {
				loginAna(f)
				f.citations.EXPECT().ListByUser(gomock.Any(), ana.ID).Return([]citationDto.CitationResponse{
					{ID: 4, Location: "Guayaquil-Centro", Reason: "Parking time exceeded: 60 minutes", Penalty: decimal.RequireFromString("1.80")},
				}, nil)
				f.citations.EXPECT().Pay(gomock.Any(), citationDto.PayRequest{CitationID: 4, UserID: ana.ID}).
					Return(citationDto.PayResponse{
						CitationID:    4,
						InvoiceNumber: "MULTA-0004",
						Subtotal:      decimal.RequireFromString("1.80"),
						Tax:           decimal.RequireFromString("0.22"),
						Total:         decimal.RequireFromString("2.02"),
					}, nil)
			},
			want: []string{"UNPAID", "MULTA-0004", "Total:        $2.02"},
		},
		{
			name:  "admin prunes stale data",
			input: script("2", "admin", "secret-pass", "11", "y", "12", "5"),
			setupMock: func(f fixture) {
				f.admins.EXPECT().Login(gomock.Any(), adminDto.LoginRequest{Identification: "admin", Password: "secret-pass"}).
					Return(adminDto.LoginResponse{Admin: adminDto.AdminResponse{Name: "Admin"}}, nil)
				f.earnings.EXPECT().Prune(gomock.Any()).Return(int64(3), nil)
				f.visits.EXPECT().Prune(gomock.Any()).Return(int64(8), nil)
			},
			want: []string{"Welcome, Admin.", "Removed 3 earnings entries and 8 visit entries."},
		},
		{
			name:  "admin wrong password",
			input: script("2", "admin", "nope", "5"),
			setupMock: func(f fixture) {
				f.admins.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(adminDto.LoginResponse{}, failure.Unauthorized("invalid identification or password"))
			},
			want: []string{"✗ invalid identification or password"},
		},
		{
			name:  "review statistics",
			input: script("3", "5", "6", "5"),
			setupMock: func(f fixture) {
				f.reviews.EXPECT().Stats(gomock.Any()).Return(report.ReviewSummary{
					Total:   2,
					Average: decimal.RequireFromString("4.5"),
					Distribution: []report.Share{
						{Label: "5", Count: 1, Percent: decimal.RequireFromString("50")},
						{Label: "4", Count: 1, Percent: decimal.RequireFromString("50")},
					},
				}, nil)
			},
			want: []string{"2 reviews, average 4.5 / 5", "50.0%"},
		},
		{
			name:  "system statistics",
			input: script("4", "5"),
			setupMock: func(f fixture) {
				f.spaces.EXPECT().List(gomock.Any()).Return(spaces(), nil)
				f.visits.EXPECT().Stats(gomock.Any()).Return(report.VisitSummary{Total: 3, Today: 1}, nil)
			},
			want: []string{"Visitor flow", "Total: 3  Today: 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, c := newFixture(t)
			tt.setupMock(f)

			var out bytes.Buffer

			err := c.Run(context.Background(), tt.input, &out)
			require.NoError(t, err)

			for _, want := range tt.want {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestConsole_Bootstrap(t *testing.T) {
	f, c := newFixture(t)

	gomock.InOrder(
		f.spaces.EXPECT().Seed(gomock.Any()).Return(nil),
		f.admins.EXPECT().Seed(gomock.Any()).Return(nil),
	)

	require.NoError(t, c.Bootstrap(context.Background()))
}

func TestConsole_BootstrapStopsOnSeedError(t *testing.T) {
	f, c := newFixture(t)

	f.spaces.EXPECT().Seed(gomock.Any()).Return(failure.Unavailable(errors.New("down")))

	err := c.Bootstrap(context.Background())
	require.Error(t, err)
	assert.True(t, failure.IsRetryable(err))
}

func TestConsole_RunStopsWhenCancelled(t *testing.T) {
	_, c := newFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer

	require.NoError(t, c.Run(ctx, script("1"), &out))
	assert.NotContains(t, out.String(), "Main menu")
}
