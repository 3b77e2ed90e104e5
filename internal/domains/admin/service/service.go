package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Admin=MockAdminService

import (
	"context"
	"fmt"

	"ecoparking/config"
	"ecoparking/infras/jwt"
	"ecoparking/infras/otel"
	"ecoparking/internal/domains/admin/model"
	"ecoparking/internal/domains/admin/model/dto"
	"ecoparking/internal/domains/admin/repository"
	visitDto "ecoparking/internal/domains/visitlog/model/dto"
	visitService "ecoparking/internal/domains/visitlog/service"
	"ecoparking/shared"
	"ecoparking/shared/constant"
	gDto "ecoparking/shared/dto"
	"ecoparking/shared/failure"
	"ecoparking/shared/password"
	"ecoparking/shared/timezone"
	"ecoparking/shared/validator"

	"github.com/rs/zerolog/log"
)

const invalidCredentials = "invalid identification or password"

type Admin interface {
	Seed(ctx context.Context) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Profile(ctx context.Context) (dto.AdminResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	repo       repository.Admin
	visits     visitService.Visit
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(repo repository.Admin, visits visitService.Visit, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Admin {
	return &serviceImpl{
		repo:       repo,
		visits:     visits,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

// Seed creates the administrator from configuration when none exists yet.
func (s *serviceImpl) Seed(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SeedAdmin")
	defer scope.EndWithError(&err)

	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count admins")

		return fmt.Errorf("failed to count admins: %w", err)
	}

	if total > 0 {
		return nil
	}

	req := dto.SeedRequest{
		Name:           s.cfg.Admin.Name,
		Identification: s.cfg.Admin.Identification,
		Password:       s.cfg.Admin.Password,
	}

	if req.Identification == "" || req.Password == "" {
		log.Warn().Msg("No administrator configured, set ADMIN_IDENTIFICATION and ADMIN_PASSWORD to create one")

		return nil
	}

	if req.Name == "" {
		req.Name = req.Identification
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err = s.repo.Create(ctx, req.ToModel(constant.ContextSystem, hashedPassword)); err != nil {
		log.Error().Err(err).Msg("failed to seed admin")

		return fmt.Errorf("failed to seed admin: %w", err)
	}

	log.Info().Str("identification", req.Identification).Msg("Seeded administrator")

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminLogin")
	defer scope.EndWithError(&err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	admin, err := s.repo.Get(ctx, gDto.Eq(model.FieldIdentification, req.Identification))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return res, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == 0 {
		log.Warn().Str("identification", req.Identification).Msg("login attempt with unknown identification")

		return res, failure.Unauthorized(invalidCredentials) // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, admin.PasswordHash); err != nil {
		log.Warn().Str("identification", req.Identification).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(invalidCredentials) // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(jwt.Subject{
		ID:             admin.ID,
		Name:           admin.Name,
		Identification: admin.Identification,
		Role:           constant.RoleAdmin,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	err = s.visits.Record(ctx, visitDto.RecordRequest{PersonName: admin.Name, AccessType: constant.AccessTypeAdmin})
	if err != nil {
		log.Error().Err(err).Str("admin", admin.Name).Msg("failed to record admin visit")
	}

	res.FromTokenPair(tokenPair)
	res.Admin.FromModel(admin)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.EndWithError(&err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) Profile(ctx context.Context) (res dto.AdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminProfile")
	defer scope.EndWithError(&err)

	admin, err := s.get(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(admin)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.EndWithError(&err)

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	admin, err := s.get(ctx)
	if err != nil {
		return err
	}

	if err := password.Verify(req.CurrentPassword, admin.PasswordHash); err != nil {
		return failure.BadRequestFromString("current password is incorrect") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	_, err = s.repo.Update(ctx, map[string]any{
		model.FieldPasswordHash:  hashedPassword,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: shared.Actor(ctx),
	}, shared.FilterByID(admin.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// get returns the administrator; the table holds at most one row.
func (s *serviceImpl) get(ctx context.Context) (model.Admin, error) {
	admin, err := s.repo.Get(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return admin, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == 0 {
		return admin, failure.NotFound("admin not found") // nolint:wrapcheck
	}

	return admin, nil
}
