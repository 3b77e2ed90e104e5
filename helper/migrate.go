package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"

	"ecoparking/config"
	"ecoparking/infras/database"
	"ecoparking/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"

	sourceName = "iofs"
)

var errUnknownAction = errors.New("unknown migration action")

// getMigrator returns the migrate instance and the function releasing it.
// SQLite migrates through the application's own handle so ":memory:" databases see the schema;
// that handle is left open on release.
func getMigrator(cfg *config.Config, conn *database.Connection) (*migrate.Migrate, func(), error) {
	driver := conn.Driver
	if driver == "" {
		driver = cfg.DB.Driver
	}

	src, err := iofs.New(migrations.FS, driver)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening %s migrations: %w", driver, err)
	}

	switch driver {
	case config.DBDriverPostgres:
		dsn, err := url.Parse(database.PostgresWriteDSN(cfg))
		if err != nil {
			return nil, nil, fmt.Errorf("error parsing connection string: %w", err)
		}

		query := dsn.Query()
		query.Set("x-migrations-table", cfg.DB.MigrationTable)
		dsn.RawQuery = query.Encode()

		mig, err := migrate.NewWithSourceInstance(sourceName, src, dsn.String())
		if err != nil {
			return nil, nil, fmt.Errorf("error creating migrate instance: %w", err)
		}

		return mig, func() {
			if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
				log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("Failed to close migrate instance")
			}
		}, nil
	case config.DBDriverSQLite:
		instance, err := sqlite.WithInstance(conn.Write.DB, &sqlite.Config{MigrationsTable: cfg.DB.MigrationTable})
		if err != nil {
			return nil, nil, fmt.Errorf("error creating sqlite migrate driver: %w", err)
		}

		mig, err := migrate.NewWithInstance(sourceName, src, config.DBDriverSQLite, instance)
		if err != nil {
			return nil, nil, fmt.Errorf("error creating migrate instance: %w", err)
		}

		return mig, func() {
			if err := src.Close(); err != nil {
				log.Warn().Err(err).Msg("Failed to close migration source")
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func Runner(cfg *config.Config, conn *database.Connection, action string) error {
	mig, release, err := getMigrator(cfg, conn)
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer release()

	switch action {
	case ActionUp:
		if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")

		return nil
	case ActionDown:
		if err := mig.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")

		return nil
	case ActionStepUp:
		if err := mig.Steps(1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")

		return nil
	case ActionDrop:
		if err := mig.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")

		return nil
	}

	return fmt.Errorf("%w: %s", errUnknownAction, action)
}

func Up(cfg *config.Config, conn *database.Connection) error {
	return Runner(cfg, conn, ActionUp)
}

func StepUp(cfg *config.Config, conn *database.Connection) error {
	return Runner(cfg, conn, ActionStepUp)
}

func Down(cfg *config.Config, conn *database.Connection) error {
	return Runner(cfg, conn, ActionDown)
}

func Drop(cfg *config.Config, conn *database.Connection) error {
	return Runner(cfg, conn, ActionDrop)
}

// AutoMigrate applies pending migrations when DB_AUTO_MIGRATE is set or the store is SQLite.
func AutoMigrate(cfg *config.Config, conn *database.Connection) error {
	if !cfg.DB.AutoMigrate && conn.Driver != config.DBDriverSQLite {
		return nil
	}

	return Up(cfg, conn)
}
