package postgres

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"time"

	"hotelsys/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 4
	postgresMaxOpenConnection = 4
)

var errNoConnection = errors.New("could not connect to postgres")

type Connection struct {
	DB *sqlx.DB
}

func New(config *config.Config) (*Connection, error) {
	db, err := CreatePostgresConnection(*config)
	if err != nil {
		return nil, err
	}

	return &Connection{DB: db}, nil
}

// Descriptor returns the connection URL for the configured database.
func Descriptor(config config.Config) string {
	pg := config.DB.Postgres

	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		pg.Username,
		pg.Password,
		net.JoinHostPort(pg.Host, pg.Port),
		pg.Name,
		pg.SSLMode,
	)
}

// CreatePostgresConnection creates a database connection, retrying up to MaxRetry times.
func CreatePostgresConnection(config config.Config) (*sqlx.DB, error) {
	pg := config.DB.Postgres
	descriptor := Descriptor(config)

	for retry := range max(pg.MaxRetry, 1) {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("host", pg.Host).
				Str("port", pg.Port).
				Str("dbName", pg.Name).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB, nil
		}

		log.
			Error().
			Err(err).
			Str("host", pg.Host).
			Str("port", pg.Port).
			Str("dbName", pg.Name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
	}

	return nil, errNoConnection
}
