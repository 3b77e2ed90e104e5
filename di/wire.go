//go:build wireinject
// +build wireinject

package di

import (
	"ecoparking/config"
	"ecoparking/infras/jwt"
	"ecoparking/infras/kafka"
	"ecoparking/infras/mailer"
	"ecoparking/infras/redis"
	"ecoparking/infras/s3"
	"ecoparking/internal/domains/notification"
	"ecoparking/permissions"
	"ecoparking/shared/cache"
	"ecoparking/transport/console"
	"ecoparking/transport/http"
	"ecoparking/transport/http/middleware"
	"ecoparking/transport/http/router"

	adminRepository "ecoparking/internal/domains/admin/repository"
	adminService "ecoparking/internal/domains/admin/service"
	citationRepository "ecoparking/internal/domains/citation/repository"
	citationService "ecoparking/internal/domains/citation/service"
	earningRepository "ecoparking/internal/domains/earning/repository"
	earningService "ecoparking/internal/domains/earning/service"
	loyaltyRepository "ecoparking/internal/domains/loyalty/repository"
	loyaltyService "ecoparking/internal/domains/loyalty/service"
	parkingService "ecoparking/internal/domains/parking/service"
	reservationRepository "ecoparking/internal/domains/reservation/repository"
	reservationService "ecoparking/internal/domains/reservation/service"
	reviewRepository "ecoparking/internal/domains/review/repository"
	reviewService "ecoparking/internal/domains/review/service"
	spaceRepository "ecoparking/internal/domains/space/repository"
	spaceService "ecoparking/internal/domains/space/service"
	userRepository "ecoparking/internal/domains/user/repository"
	userService "ecoparking/internal/domains/user/service"
	vehicleStatRepository "ecoparking/internal/domains/vehiclestat/repository"
	vehicleStatService "ecoparking/internal/domains/vehiclestat/service"
	visitRepository "ecoparking/internal/domains/visitlog/repository"
	visitService "ecoparking/internal/domains/visitlog/service"

	authHandler "ecoparking/internal/handlers/auth"
	citationHandler "ecoparking/internal/handlers/citation"
	loyaltyHandler "ecoparking/internal/handlers/loyalty"
	reportHandler "ecoparking/internal/handlers/reports"
	reviewHandler "ecoparking/internal/handlers/review"
	spaceHandler "ecoparking/internal/handlers/space"
	userHandler "ecoparking/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	provideDatabase,
	provideOtel,
	providePublisher,
	redis.New,
	jwt.New,
	mailer.New,
	s3.New,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	notification.New,
)

var accountDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	adminRepository.New,
	adminService.New,
	visitRepository.New,
	visitService.New,
)

var parkingDomain = wire.NewSet(
	spaceRepository.New,
	spaceService.New,
	reservationRepository.New,
	reservationService.New,
	loyaltyRepository.New,
	loyaltyService.New,
	citationRepository.New,
	citationService.New,
	wire.Struct(new(parkingService.Dependencies), "*"),
	parkingService.New,
)

var reportingDomain = wire.NewSet(
	earningRepository.New,
	earningService.New,
	vehicleStatRepository.New,
	vehicleStatService.New,
	reviewRepository.New,
	reviewService.New,
)

var domains = wire.NewSet(
	accountDomain,
	parkingDomain,
	reportingDomain,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	spaceHandler.New,
	reportHandler.New,
	reviewHandler.New,
	citationHandler.New,
	loyaltyHandler.New,
	userHandler.New,
	router.New,
)

func InitializeConsole() (*console.Console, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
		wire.Struct(new(console.Services), "*"),
		console.New,
	)

	return &console.Console{}, nil, nil
}

func InitializeServer() (*http.HTTP, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
		middlewares,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil, nil
}

func InitializePublisher() (kafka.Publisher, func(), error) {
	wire.Build(
		configurations,
		provideOtel,
		providePublisher,
	)

	return nil, nil, nil
}
