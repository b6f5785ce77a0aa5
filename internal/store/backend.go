package store

import (
	"fmt"

	"hotelsys/config"
	"hotelsys/helper"
	"hotelsys/infras/otel"
	"hotelsys/infras/postgres"
	"hotelsys/infras/redis"
	"hotelsys/infras/s3"
	"hotelsys/shared/constant"

	"github.com/rs/zerolog/log"
)

// NewBackend builds the backend selected by STORAGE_DRIVER. Clients for the
// other drivers are never created.
func NewBackend(cfg *config.Config, otl otel.Otel) (Backend, error) {
	driver := cfg.Storage.Driver
	if driver == constant.Empty {
		driver = constant.StorageDriverFile
	}

	log.Info().Str("driver", driver).Msg("Initializing record storage")

	switch driver {
	case constant.StorageDriverFile:
		return NewFileBackend(cfg.Storage.Dir), nil
	case constant.StorageDriverMemory:
		return NewMemoryBackend(), nil
	case constant.StorageDriverRedis:
		client, err := redis.New(cfg)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		return NewRedisBackend(client, cfg.Storage.Prefix, otl), nil
	case constant.StorageDriverPostgres:
		if cfg.DB.Postgres.AutoMigrate {
			if err := helper.Up(cfg); err != nil {
				return nil, err //nolint:wrapcheck
			}
		}

		conn, err := postgres.New(cfg)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		return NewPostgresBackend(conn, cfg.Storage.Prefix, otl), nil
	case constant.StorageDriverS3:
		client, err := s3.New(cfg, otl)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		return NewS3Backend(client, cfg.S3.BucketName, cfg.Storage.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
