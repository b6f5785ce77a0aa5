package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"hotelsys/infras/otel"
	"hotelsys/shared/constant"
	"hotelsys/shared/failure"

	"github.com/rs/zerolog/log"
)

// ErrNotExist is returned by a Backend when the collection has never been written.
var ErrNotExist = errors.New("collection does not exist")

// Backend reads and replaces serialized collections by name.
type Backend interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
}

// Collection is the typed view over one named collection.
type Collection[T any] struct {
	name    string
	backend Backend
	otel    otel.Otel
	mu      sync.Mutex
}

func NewCollection[T any](name string, backend Backend, otl otel.Otel) *Collection[T] {
	return &Collection[T]{
		name:    name,
		backend: backend,
		otel:    otl,
	}
}

func (c *Collection[T]) Name() string {
	return c.name
}

// Load returns every record of the collection, or an empty slice when the
// collection is missing or unreadable.
func (c *Collection[T]) Load(ctx context.Context) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.load(ctx)
}

// Save replaces the whole collection with records.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.save(ctx, records)
}

// View runs fn over a consistent snapshot of the collection.
func (c *Collection[T]) View(ctx context.Context, fn func(records []T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return fn(c.load(ctx))
}

// Update runs one load-mutate-save cycle. If fn returns an error nothing is written
// and the error is returned unchanged.
func (c *Collection[T]) Update(ctx context.Context, fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := fn(c.load(ctx))
	if err != nil {
		return err
	}

	return c.save(ctx, records)
}

func (c *Collection[T]) load(ctx context.Context) []T {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Load")
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, c.name)

	records := []T{}

	data, err := c.backend.Read(ctx, c.name)
	if errors.Is(err, ErrNotExist) {
		log.Debug().Str("collection", c.name).Msg("collection does not exist yet, starting empty")

		return records
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("collection", c.name).Msg("failed to read collection, returning empty collection")

		return records
	}

	if err = json.Unmarshal(data, &records); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("collection", c.name).Msg("failed to decode collection, returning empty collection")

		return []T{}
	}

	if records == nil {
		records = []T{}
	}

	return records
}

func (c *Collection[T]) save(ctx context.Context, records []T) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		constant.OtelCollectionAttributeKey: c.name,
		"records":                           len(records),
	})

	data, err := encode(records)
	if err != nil {
		log.Error().Err(err).Str("collection", c.name).Msg("failed to encode collection")

		return failure.InternalError(fmt.Errorf("failed to encode collection %s: %w", c.name, err))
	}

	if err = c.backend.Write(ctx, c.name, data); err != nil {
		log.Error().Err(err).Str("collection", c.name).Msg("failed to write collection")

		return failure.StorageUnavailable(c.name, err)
	}

	return nil
}

// encode renders records as an indented JSON array; a nil slice becomes [].
func encode[T any](records []T) ([]byte, error) {
	if records == nil {
		records = []T{}
	}

	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", constant.JSONIndent)

	if err := encoder.Encode(records); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
