package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hotelsys/infras/otel"
	"hotelsys/infras/postgres"
	"hotelsys/shared/constant"
)

const (
	queryReadCollection  = `SELECT records FROM collections WHERE name = $1`
	queryWriteCollection = `INSERT INTO collections (name, records, modified_at) VALUES ($1, $2::jsonb, NOW())
ON CONFLICT (name) DO UPDATE SET records = EXCLUDED.records, modified_at = EXCLUDED.modified_at`
)

// PostgresBackend stores each collection as one jsonb row of the collections table.
type PostgresBackend struct {
	conn   *postgres.Connection
	prefix string
	otel   otel.Otel
}

func NewPostgresBackend(conn *postgres.Connection, prefix string, otl otel.Otel) *PostgresBackend {
	return &PostgresBackend{
		conn:   conn,
		prefix: prefix,
		otel:   otl,
	}
}

func (p *PostgresBackend) Read(ctx context.Context, name string) (data []byte, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".postgres.Read")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryReadCollection)

	var records []byte

	err = p.conn.DB.GetContext(ctx, &records, queryReadCollection, p.prefix+name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotExist
	}

	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to read collection row %s: %w", p.prefix+name, err)
	}

	return records, nil
}

func (p *PostgresBackend) Write(ctx context.Context, name string, data []byte) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".postgres.Write")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryWriteCollection)

	// jsonb must be sent as text; lib/pq would encode []byte as bytea.
	if _, err = p.conn.DB.ExecContext(ctx, queryWriteCollection, p.prefix+name, string(data)); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to write collection row %s: %w", p.prefix+name, err)
	}

	return nil
}
