package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotelsys/infras/otel"
	"hotelsys/internal/domains/hotel/model"
	"hotelsys/internal/store"
	gRepo "hotelsys/shared/repository"
)

type Hotel interface {
	Insert(ctx context.Context, model model.Hotel) error
	Get(ctx context.Context, id string) (model.Hotel, error)
	GetAll(ctx context.Context) ([]model.Hotel, error)
	Exist(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, id string, mutate func(hotel *model.Hotel) error) error
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Hotel]
}

func New(backend store.Backend, otel otel.Otel) Hotel {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Hotel](model.EntityName, model.CollectionName, backend, otel),
	}
}
