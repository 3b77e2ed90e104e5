package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"ecoparking/config"
	"ecoparking/helper"
	"ecoparking/infras/database"
	"ecoparking/infras/jwt"
	jwtMocks "ecoparking/infras/jwt/mocks"
	"ecoparking/infras/otel/mocks"
	adminMocks "ecoparking/internal/domains/admin/mocks"
	"ecoparking/internal/domains/admin/model"
	"ecoparking/internal/domains/admin/model/dto"
	"ecoparking/internal/domains/admin/repository"
	"ecoparking/internal/domains/admin/service"
	visitMocks "ecoparking/internal/domains/visitlog/mocks"
	visitDto "ecoparking/internal/domains/visitlog/model/dto"
	"ecoparking/shared/constant"
	"ecoparking/shared/failure"
	"ecoparking/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func adminConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Admin.Name = "Administrador"
	cfg.Admin.Identification = "0900000001"
	cfg.Admin.Password = "s3cret-pass"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return cfg
}

func TestAdminService_Login(t *testing.T) {
	hash, err := password.Hash("s3cret-pass")
	require.NoError(t, err)

	stored := model.Admin{ID: 1, Name: "Administrador", Identification: "0900000001", PasswordHash: hash}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(repo *adminMocks.MockAdmin, tokens *jwtMocks.MockJWT, visits *visitMocks.MockVisit)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Identification: "0900000001", Password: "s3cret-pass"},
			setupMock: func(repo *adminMocks.MockAdmin, tokens *jwtMocks.MockJWT, visits *visitMocks.MockVisit) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
				tokens.EXPECT().
					GenerateTokenPair(jwt.Subject{ID: 1, Name: "Administrador", Identification: "0900000001", Role: constant.RoleAdmin}).
					Return(&jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}, nil)
				visits.EXPECT().
					Record(gomock.Any(), visitDto.RecordRequest{PersonName: "Administrador", AccessType: constant.AccessTypeAdmin}).
					Return(nil)
			},
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Identification: "0900000001", Password: "nope"},
			setupMock: func(repo *adminMocks.MockAdmin, _ *jwtMocks.MockJWT, _ *visitMocks.MockVisit) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "unknown identification",
			req:  dto.LoginRequest{Identification: "0911111111", Password: "s3cret-pass"},
			setupMock: func(repo *adminMocks.MockAdmin, _ *jwtMocks.MockJWT, _ *visitMocks.MockVisit) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Admin{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:      "missing password",
			req:       dto.LoginRequest{Identification: "0900000001"},
			setupMock: func(_ *adminMocks.MockAdmin, _ *jwtMocks.MockJWT, _ *visitMocks.MockVisit) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "token generation fails",
			req:  dto.LoginRequest{Identification: "0900000001", Password: "s3cret-pass"},
			setupMock: func(repo *adminMocks.MockAdmin, tokens *jwtMocks.MockJWT, _ *visitMocks.MockVisit) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
				tokens.EXPECT().GenerateTokenPair(gomock.Any()).Return(nil, errors.New("no secret"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := adminMocks.NewMockAdmin(ctrl)
			tokens := jwtMocks.NewMockJWT(ctrl)
			visits := visitMocks.NewMockVisit(ctrl)
			tt.setupMock(repo, tokens, visits)

			svc := service.New(repo, visits, adminConfig(), mocks.NewOtel(), tokens)

			res, err := svc.Login(context.Background(), tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, "Administrador", res.Admin.Name)
		})
	}
}

func TestAdminService_SeedSkipsWithoutCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := adminMocks.NewMockAdmin(ctrl)

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)

	svc := service.New(repo, visitMocks.NewMockVisit(ctrl), &config.Config{}, mocks.NewOtel(), jwtMocks.NewMockJWT(ctrl))
	assert.NoError(t, svc.Seed(context.Background()))
}

func TestAdminService_SeedStoresHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := adminMocks.NewMockAdmin(ctrl)

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m model.Admin) (int64, error) {
			assert.NotEqual(t, "s3cret-pass", m.PasswordHash)
			assert.NoError(t, password.Verify("s3cret-pass", m.PasswordHash))

			return 1, nil
		})

	svc := service.New(repo, visitMocks.NewMockVisit(ctrl), adminConfig(), mocks.NewOtel(), jwtMocks.NewMockJWT(ctrl))
	assert.NoError(t, svc.Seed(context.Background()))
}

func TestAdminService_StoreBacked(t *testing.T) {
	conn, err := database.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	cfg := adminConfig()
	require.NoError(t, helper.Up(cfg, conn))

	ctrl := gomock.NewController(t)
	visits := visitMocks.NewMockVisit(ctrl)
	visits.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	ot := mocks.NewOtel()
	svc := service.New(repository.New(conn, ot), visits, cfg, ot, jwt.New(cfg))
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))
	require.NoError(t, svc.Seed(ctx))

	profile, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0900000001", profile.Identification)

	login, err := svc.Login(ctx, dto.LoginRequest{Identification: "0900000001", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)

	refreshed, err := svc.RefreshToken(ctx, dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	err = svc.ChangePassword(ctx, dto.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "another-pass"})
	assert.True(t, failure.IsUserError(err))

	require.NoError(t, svc.ChangePassword(ctx, dto.ChangePasswordRequest{CurrentPassword: "s3cret-pass", NewPassword: "another-pass"}))

	_, err = svc.Login(ctx, dto.LoginRequest{Identification: "0900000001", Password: "s3cret-pass"})
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

	_, err = svc.Login(ctx, dto.LoginRequest{Identification: "0900000001", Password: "another-pass"})
	assert.NoError(t, err)
}
