package database

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"time"

	"ecoparking/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10

	// modernc registers itself as "sqlite"; sqlx only knows "sqlite3" by default.
	sqliteDriverName = "sqlite"
	sqliteMemoryDSN  = ":memory:"
)

var errNoConnection = errors.New("could not connect to database")

func init() {
	sqlx.BindDriver(sqliteDriverName, sqlx.QUESTION)
}

// Connection splits read and write access. With SQLite both point to the same handle.
type Connection struct {
	Driver string
	Read   *sqlx.DB
	Write  *sqlx.DB
}

func New(cfg *config.Config) (*Connection, error) {
	switch cfg.DB.Driver {
	case config.DBDriverPostgres:
		return newPostgres(cfg)
	case config.DBDriverSQLite, "":
		return NewSQLite(cfg.DB.SQLite.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
}

func (c *Connection) Close() error {
	if c == nil {
		return nil
	}

	var errs []error

	if c.Write != nil {
		errs = append(errs, c.Write.Close())
	}

	if c.Read != nil && c.Read != c.Write {
		errs = append(errs, c.Read.Close())
	}

	return errors.Join(errs...)
}

// NewSQLite opens an embedded database file. Use ":memory:" for a throwaway store.
func NewSQLite(path string) (*Connection, error) {
	if path == "" {
		path = sqliteMemoryDSN
	}

	// _time_format=sqlite stores sortable "2006-01-02 15:04:05.999999999-07:00" text
	dsn := sqliteMemoryDSN + "?_pragma=foreign_keys(1)&_time_format=sqlite"
	if path != sqliteMemoryDSN {
		dsn = fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite", path)
	}

	db, err := sqlx.Connect(sqliteDriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// one writer at a time, and a single handle keeps ":memory:" databases alive
	db.SetMaxOpenConns(1)

	log.Info().Str("path", path).Msg("Connected to database")

	return &Connection{
		Driver: config.DBDriverSQLite,
		Read:   db,
		Write:  db,
	}, nil
}

func newPostgres(cfg *config.Config) (*Connection, error) {
	write := createPostgresWriteConn(cfg)
	if write == nil {
		return nil, fmt.Errorf("write: %w", errNoConnection)
	}

	read := createPostgresReadConn(cfg)
	if read == nil {
		_ = write.Close()

		return nil, fmt.Errorf("read: %w", errNoConnection)
	}

	return &Connection{
		Driver: config.DBDriverPostgres,
		Read:   read,
		Write:  write,
	}, nil
}

func getDBName(cfg *config.Config, baseName string) string {
	if cfg.DB.Postgres.Prefix != "" {
		return cfg.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// PostgresWriteDSN is the url of the primary, also used by migrations.
func PostgresWriteDSN(cfg *config.Config) string {
	w := cfg.DB.Postgres.Write

	return PostgresDSN(w.Username, w.Password, w.Host, w.Port, getDBName(cfg, w.Name), w.SSLMode)
}

func createPostgresWriteConn(cfg *config.Config) *sqlx.DB {
	return createPostgresConnection("write", PostgresWriteDSN(cfg), cfg.DB.Postgres.MaxRetry, cfg.DB.Postgres.RetryWaitTime)
}

func createPostgresReadConn(cfg *config.Config) *sqlx.DB {
	r := cfg.DB.Postgres.Read

	return createPostgresConnection("read", PostgresDSN(r.Username, r.Password, r.Host, r.Port, getDBName(cfg, r.Name), r.SSLMode),
		cfg.DB.Postgres.MaxRetry, cfg.DB.Postgres.RetryWaitTime)
}

// PostgresDSN builds a lib/pq connection url.
func PostgresDSN(username, password, host, port, dbName, sslMode string) string {
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		username,
		password,
		net.JoinHostPort(host, port),
		dbName,
		sslMode,
	)
}

func createPostgresConnection(name, descriptor string, maxRetry, waitTime int) *sqlx.DB {
	maxRetry = max(maxRetry, 1)

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.Info().Str("name", name).Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
