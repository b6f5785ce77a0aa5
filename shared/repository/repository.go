package repository

import (
	"context"
	"fmt"
	"slices"

	"hotelsys/infras/otel"
	"hotelsys/internal/store"
	"hotelsys/shared/constant"
	"hotelsys/shared/failure"
)

// Entity is a record addressable by a unique key within its collection.
type Entity interface {
	Key() string
}

// Repository implements keyed CRUD over one collection. Every call is a single
// load-mutate-save cycle of the underlying store.Collection.
type Repository[T Entity] struct {
	collection *store.Collection[T]
	otel       otel.Otel
	entitas    string
}

func NewRepository[T Entity](entitasName, collectionName string, backend store.Backend, otl otel.Otel) Repository[T] {
	return Repository[T]{
		collection: store.NewCollection[T](collectionName, backend, otl),
		otel:       otl,
		entitas:    entitasName,
	}
}

func (repo *Repository[T]) scope(ctx context.Context, method, id string) (context.Context, otel.Scope) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, method))
	scope.SetAttributes(map[string]any{
		constant.OtelCollectionAttributeKey: repo.collection.Name(),
		constant.OtelEntityIDAttributeKey:   id,
	})

	return ctx, scope
}

func indexOf[T Entity](records []T, id string) int {
	return slices.IndexFunc(records, func(record T) bool {
		return record.Key() == id
	})
}

// Insert appends model, failing with DuplicateKey if its key is taken.
func (repo *Repository[T]) Insert(ctx context.Context, model T) (err error) {
	ctx, scope := repo.scope(ctx, "Insert", model.Key())
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return repo.collection.Update(ctx, func(records []T) ([]T, error) {
		if indexOf(records, model.Key()) >= 0 {
			return nil, failure.DuplicateKey(repo.entitas, model.Key())
		}

		return append(records, model), nil
	})
}

func (repo *Repository[T]) Get(ctx context.Context, id string) (model T, err error) {
	ctx, scope := repo.scope(ctx, "Get", id)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = repo.collection.View(ctx, func(records []T) error {
		idx := indexOf(records, id)
		if idx < 0 {
			return failure.NotFound(repo.entitas, id)
		}

		model = records[idx]

		return nil
	})

	return model, err
}

func (repo *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	ctx, scope := repo.scope(ctx, "GetAll", constant.Empty)
	defer scope.End()

	return repo.collection.Load(ctx), nil
}

func (repo *Repository[T]) Exist(ctx context.Context, id string) (bool, error) {
	ctx, scope := repo.scope(ctx, "Exist", id)
	defer scope.End()

	return indexOf(repo.collection.Load(ctx), id) >= 0, nil
}

// Update applies mutate to the stored record with the given key and persists the
// collection. An error from mutate aborts the write and is returned unchanged.
// mutate must not change the key.
func (repo *Repository[T]) Update(ctx context.Context, id string, mutate func(model *T) error) (err error) {
	ctx, scope := repo.scope(ctx, "Update", id)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return repo.collection.Update(ctx, func(records []T) ([]T, error) {
		idx := indexOf(records, id)
		if idx < 0 {
			return nil, failure.NotFound(repo.entitas, id)
		}

		updated := records[idx]
		if err := mutate(&updated); err != nil {
			return nil, err
		}

		if updated.Key() != id {
			return nil, failure.BadRequestFromString(fmt.Sprintf("%s key cannot be changed", repo.entitas))
		}

		records[idx] = updated

		return records, nil
	})
}

func (repo *Repository[T]) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := repo.scope(ctx, "Delete", id)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return repo.collection.Update(ctx, func(records []T) ([]T, error) {
		idx := indexOf(records, id)
		if idx < 0 {
			return nil, failure.NotFound(repo.entitas, id)
		}

		return slices.Delete(records, idx, idx+1), nil
	})
}
