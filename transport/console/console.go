package console

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"ecoparking/config"
	adminService "ecoparking/internal/domains/admin/service"
	citationService "ecoparking/internal/domains/citation/service"
	earningService "ecoparking/internal/domains/earning/service"
	loyaltyService "ecoparking/internal/domains/loyalty/service"
	parkingService "ecoparking/internal/domains/parking/service"
	reviewService "ecoparking/internal/domains/review/service"
	spaceService "ecoparking/internal/domains/space/service"
	userService "ecoparking/internal/domains/user/service"
	vehicleStatService "ecoparking/internal/domains/vehiclestat/service"
	visitService "ecoparking/internal/domains/visitlog/service"
	"ecoparking/shared/constant"
	"ecoparking/shared/failure"
	"ecoparking/shared/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Services is everything the menus route input to.
type Services struct {
	Users        userService.User
	Admins       adminService.Admin
	Spaces       spaceService.Space
	Parking      parkingService.Parking
	Loyalty      loyaltyService.Loyalty
	Citations    citationService.Citation
	Earnings     earningService.Earning
	Visits       visitService.Visit
	VehicleStats vehicleStatService.VehicleStat
	Reviews      reviewService.Review
}

// Console is the interactive front desk. It parses input into requests and prints results; it holds no rules.
type Console struct {
	Config   *config.Config
	Services Services
}

func New(cfg *config.Config, services Services) *Console {
	return &Console{
		Config:   cfg,
		Services: services,
	}
}

// Serve seeds the default data and runs a session on the process terminal until Exit, EOF or SIGTERM.
func (c *Console) Serve() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := c.Bootstrap(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare default data")
	}

	log.Info().Str("app", c.Config.App.Name).Msg("Starting console session.")

	if err := c.Run(ctx, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("Console session ended with an error")
	}

	log.Info().Msg("Console session closed.")
}

// Bootstrap seeds the default parking spaces and the administrator account.
func (c *Console) Bootstrap(ctx context.Context) error {
	if err := c.Services.Spaces.Seed(ctx); err != nil {
		return err //nolint:wrapcheck
	}

	return c.Services.Admins.Seed(ctx) //nolint:wrapcheck
}

// Run reads commands from in and writes every screen to out.
func (c *Console) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	p := newPrompt(in, out)

	p.println("Welcome to EcoParking")

	for {
		if ctx.Err() != nil {
			return nil
		}

		p.menu("Main menu", "User", "Administrator", "Reviews", "System statistics", "Exit")

		option, err := p.choice(5)
		if err != nil {
			return closed(err)
		}

		switch option {
		case 1:
			err = c.userMenu(ctx, p)
		case 2:
			err = c.adminMenu(ctx, p)
		case 3:
			err = c.reviewMenu(ctx, p)
		case 4:
			err = c.systemStats(ctx, p)
		case 5:
			p.println("Thank you for using EcoParking. Goodbye!")

			return nil
		}

		if err != nil {
			return closed(err)
		}
	}
}

// closed turns the end of input into a clean exit.
func closed(err error) error {
	if errors.Is(err, ErrInputClosed) {
		return nil
	}

	return err
}

// reportFailure prints a failure to the operator and tells the caller whether the session must stop.
func reportFailure(p *prompt, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrInputClosed) {
		return err
	}

	switch failure.GetKind(err) {
	case failure.KindUser:
		p.printf("✗ %s\n", err.Error())
	case failure.KindCorruption:
		logger.ErrorWithStack(err)
		p.println("✗ Stored data is inconsistent, please contact the administrator.")
	default:
		log.Error().Err(err).Msg("console operation failed")
		p.println("✗ The service is not available right now, please try again.")
	}

	return nil
}

// session stamps who is operating so records carry their name.
func session(ctx context.Context, name, role string) context.Context {
	id := uuid.NewString()

	log.Debug().Str("session_id", id).Str("role", role).Msg("Console session opened")

	ctx = context.WithValue(ctx, constant.ContextKeySessionID, id)
	ctx = context.WithValue(ctx, constant.ContextKeyUserName, name)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}
