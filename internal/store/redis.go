package store

import (
	"context"
	"errors"
	"fmt"

	"hotelsys/infras/otel"
	"hotelsys/shared/constant"

	goRedis "github.com/redis/go-redis/v9"
)

// RedisBackend stores each collection under the key <prefix><name>.
type RedisBackend struct {
	client *goRedis.Client
	prefix string
	otel   otel.Otel
}

func NewRedisBackend(client *goRedis.Client, prefix string, otl otel.Otel) *RedisBackend {
	return &RedisBackend{
		client: client,
		prefix: prefix,
		otel:   otl,
	}
}

func (r *RedisBackend) Read(ctx context.Context, name string) (data []byte, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".redis.Read")
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, r.prefix+name)

	data, err = r.client.Get(ctx, r.prefix+name).Bytes()
	if errors.Is(err, goRedis.Nil) {
		return nil, ErrNotExist
	}

	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get redis key %s: %w", r.prefix+name, err)
	}

	return data, nil
}

func (r *RedisBackend) Write(ctx context.Context, name string, data []byte) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".redis.Write")
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, r.prefix+name)

	if err = r.client.Set(ctx, r.prefix+name, data, 0).Err(); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to set redis key %s: %w", r.prefix+name, err)
	}

	return nil
}
