package http_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecoparking/config"
	"ecoparking/infras/jwt"
	jwtMocks "ecoparking/infras/jwt/mocks"
	"ecoparking/infras/otel/mocks"
	adminMocks "ecoparking/internal/domains/admin/mocks"
	citationMocks "ecoparking/internal/domains/citation/mocks"
	earningMocks "ecoparking/internal/domains/earning/mocks"
	earningDto "ecoparking/internal/domains/earning/model/dto"
	loyaltyMocks "ecoparking/internal/domains/loyalty/mocks"
	loyaltyDto "ecoparking/internal/domains/loyalty/model/dto"
	"ecoparking/internal/domains/report"
	reviewMocks "ecoparking/internal/domains/review/mocks"
	spaceMocks "ecoparking/internal/domains/space/mocks"
	spaceDto "ecoparking/internal/domains/space/model/dto"
	userMocks "ecoparking/internal/domains/user/mocks"
	vehicleStatMocks "ecoparking/internal/domains/vehiclestat/mocks"
	visitMocks "ecoparking/internal/domains/visitlog/mocks"
	"ecoparking/internal/handlers/auth"
	"ecoparking/internal/handlers/citation"
	"ecoparking/internal/handlers/loyalty"
	"ecoparking/internal/handlers/reports"
	"ecoparking/internal/handlers/review"
	"ecoparking/internal/handlers/space"
	"ecoparking/internal/handlers/user"
	"ecoparking/permissions"
	"ecoparking/shared/cache"
	cacheMocks "ecoparking/shared/cache/mocks"
	"ecoparking/shared/constant"
	gDto "ecoparking/shared/dto"
	"ecoparking/shared/failure"
	transportHTTP "ecoparking/transport/http"
	"ecoparking/transport/http/middleware"
	"ecoparking/transport/http/router"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const validToken = "valid-token"

type fixture struct {
	tokens       *jwtMocks.MockJWT
	cache        *cacheMocks.MockRedisCache
	admins       *adminMocks.MockAdminService
	spaces       *spaceMocks.MockSpace
	earnings     *earningMocks.MockEarningService
	visits       *visitMocks.MockVisit
	vehicleStats *vehicleStatMocks.MockVehicleStatService
	reviews      *reviewMocks.MockReviewService
	citations    *citationMocks.MockCitationService
	loyalty      *loyaltyMocks.MockLoyaltyService
	users        *userMocks.MockUserService
}

func newFixture(ctrl *gomock.Controller) fixture {
	return fixture{
		tokens:       jwtMocks.NewMockJWT(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
		admins:       adminMocks.NewMockAdminService(ctrl),
		spaces:       spaceMocks.NewMockSpace(ctrl),
		earnings:     earningMocks.NewMockEarningService(ctrl),
		visits:       visitMocks.NewMockVisit(ctrl),
		vehicleStats: vehicleStatMocks.NewMockVehicleStatService(ctrl),
		reviews:      reviewMocks.NewMockReviewService(ctrl),
		citations:    citationMocks.NewMockCitationService(ctrl),
		loyalty:      loyaltyMocks.NewMockLoyaltyService(ctrl),
		users:        userMocks.NewMockUserService(ctrl),
	}
}

func (f fixture) handler(cfg *config.Config) http.Handler {
	ot := mocks.NewOtel()

	handlers := router.DomainHandlers{
		Auth:     auth.New(f.admins, ot),
		Space:    space.New(f.spaces, ot),
		Report:   reports.New(f.earnings, f.visits, f.vehicleStats, ot),
		Review:   review.New(f.reviews, ot),
		Citation: citation.New(f.citations, ot),
		Loyalty:  loyalty.New(f.loyalty, ot),
		User:     user.New(f.users, ot),
	}

	server := transportHTTP.New(
		cfg,
		router.New(handlers),
		middleware.NewAppMiddleware(ot, cfg, f.cache),
		middleware.NewAuthRoleMiddleware(f.tokens, ot, permissions.Get(), cfg),
	)

	return server.Handler()
}

func adminClaims(f fixture) {
	f.tokens.EXPECT().ValidateToken(validToken, jwt.AccessToken).
		Return(&jwt.Claims{AdminID: 1, Name: "Administrador", Role: constant.RoleAdmin}, nil)
}

func loyaltyResponse() loyaltyDto.GetRecordsResponse {
	return loyaltyDto.GetRecordsResponse{
		Records:   []loyaltyDto.StatsResponse{{Name: "Ana Torres", ReservationCount: 10}},
		TotalPage: 1,
		TotalData: 1,
	}
}

func TestHTTP_Routes(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		target    string
		token     string
		apiKey    string
		setupMock func(f fixture)
		wantCode  int
		wantBody  string
	}{
		{
			name:     "health check",
			method:   http.MethodGet,
			target:   "/health",
			wantCode: http.StatusOK,
			wantBody: `"message":"OK"`,
		},
		{
			name:   "spaces are public",
			method: http.MethodGet,
			target: "/v1/spaces",
			setupMock: func(f fixture) {
				f.spaces.EXPECT().List(gomock.Any()).Return(spaceDto.GetSpacesResponse{
					Spaces:    []spaceDto.SpaceResponse{{ID: 1, Location: "Guayaquil-Centro"}},
					TotalData: 1,
				}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"location":"Guayaquil-Centro"`,
		},
		{
			name:     "reports need a token",
			method:   http.MethodGet,
			target:   "/v1/reports/earnings",
			wantCode: http.StatusUnauthorized,
			wantBody: "Missing authorization header",
		},
		{
			name:   "expired token",
			method: http.MethodGet,
			target: "/v1/reports/earnings",
			token:  "stale",
			setupMock: func(f fixture) {
				f.tokens.EXPECT().ValidateToken("stale", jwt.AccessToken).Return(nil, fmt.Errorf("parse: %w", jwt.ErrExpiredToken))
			},
			wantCode: http.StatusUnauthorized,
			wantBody: "Token has expired",
		},
		{
			name:   "role outside the allow list",
			method: http.MethodGet,
			target: "/v1/citations",
			token:  validToken,
			setupMock: func(f fixture) {
				f.tokens.EXPECT().ValidateToken(validToken, jwt.AccessToken).
					Return(&jwt.Claims{AdminID: 7, Name: "Driver", Role: constant.RoleUser}, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:   "earnings summary for the administrator",
			method: http.MethodGet,
			target: "/v1/reports/earnings",
			token:  validToken,
			setupMock: func(f fixture) {
				adminClaims(f)
				f.earnings.EXPECT().Summary(gomock.Any()).Return(report.EarningsSummary{
					Total:    decimal.RequireFromString("12.50"),
					Payments: 3,
				}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"payments":3`,
		},
		{
			name:   "malformed date range",
			method: http.MethodGet,
			target: "/v1/reports/earnings/range?from=2025-13-01&to=2025-01-31",
			token:  validToken,
			setupMock: func(f fixture) {
				adminClaims(f)
			},
			wantCode: http.StatusBadRequest,
			wantBody: "invalid start date",
		},
		{
			name:   "export without a range covers every entry",
			method: http.MethodGet,
			target: "/v1/reports/earnings/export",
			token:  validToken,
			setupMock: func(f fixture) {
				adminClaims(f)
				f.earnings.EXPECT().ExportCSV(gomock.Any(), (*gDto.DateRange)(nil)).
					Return(earningDto.ExportResponse{FileName: "earnings.csv", Rows: 4}, nil)
			},
			wantCode: http.StatusCreated,
			wantBody: `"rows":4`,
		},
		{
			name:   "internal failures hide their cause",
			method: http.MethodGet,
			target: "/v1/reports/visits",
			token:  validToken,
			setupMock: func(f fixture) {
				adminClaims(f)
				f.visits.EXPECT().Stats(gomock.Any()).Return(report.VisitSummary{}, failure.Unavailable(errors.New("dial tcp 10.0.0.3:5432")))
			},
			wantCode: http.StatusServiceUnavailable,
			wantBody: http.StatusText(http.StatusServiceUnavailable),
		},
		{
			name:   "api key skips the token",
			method: http.MethodGet,
			target: "/v1/loyalty",
			apiKey: "internal-key",
			setupMock: func(f fixture) {
				f.loyalty.EXPECT().List(gomock.Any(), gDto.QueryParams{Page: 1, Limit: 10}).Return(loyaltyResponse(), nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "wrong api key",
			method:   http.MethodGet,
			target:   "/v1/loyalty",
			apiKey:   "guess",
			wantCode: http.StatusForbidden,
		},
		{
			name:      "user id must be numeric",
			method:    http.MethodGet,
			target:    "/v1/users/abc",
			token:     validToken,
			setupMock: adminClaims,
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newFixture(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			cfg := &config.Config{}
			cfg.App.APIKey = "internal-key"

			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.token != "" {
				req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+tt.token)
			}

			if tt.apiKey != "" {
				req.Header.Set(constant.RequestHeaderAPIKey, tt.apiKey)
			}

			rec := httptest.NewRecorder()
			f.handler(cfg).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestHTTP_RateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(ctrl)

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 1
	cfg.App.RateLimiter.WindowSeconds = 60

	gomock.InOrder(
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(fmt.Errorf("failed to get cache value: %w", cache.Nil)),
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), 1, 60).Return(nil),
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*(value.(*int)) = 1

				return nil
			}),
	)

	handler := f.handler(cfg)

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get(constant.RequestHeaderRateLimit))
	assert.Equal(t, "0", first.Header().Get(constant.RequestHeaderRateLimitRemaining))

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestHTTP_RateLimitWithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(ctrl)

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 1

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.ErrDisabled).Times(2)

	handler := f.handler(cfg)

	for range 2 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
