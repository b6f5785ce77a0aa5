package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotelsys/infras/otel"
	"hotelsys/internal/domains/reservation/model"
	"hotelsys/internal/store"
	gRepo "hotelsys/shared/repository"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	Get(ctx context.Context, id string) (model.Reservation, error)
	GetAll(ctx context.Context) ([]model.Reservation, error)
	Exist(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, id string, mutate func(reservation *model.Reservation) error) error
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
}

func New(backend store.Backend, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.CollectionName, backend, otel),
	}
}
