package postgres_test

import (
	"testing"

	"hotelsys/config"
	"hotelsys/infras/postgres"

	"github.com/stretchr/testify/assert"
)

func TestDescriptor(t *testing.T) {
	cfg := config.Config{}
	cfg.DB.Postgres.Username = "hotel"
	cfg.DB.Postgres.Password = "secret"
	cfg.DB.Postgres.Host = "::1"
	cfg.DB.Postgres.Port = "5432"
	cfg.DB.Postgres.Name = "hotelsys"
	cfg.DB.Postgres.SSLMode = "require"

	assert.Equal(t, "postgres://hotel:secret@[::1]:5432/hotelsys?sslmode=require", postgres.Descriptor(cfg))
}
