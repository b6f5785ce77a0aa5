package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotelsys/infras/otel"
	"hotelsys/internal/domains/customer/model"
	"hotelsys/internal/store"
	gRepo "hotelsys/shared/repository"
)

type Customer interface {
	Insert(ctx context.Context, model model.Customer) error
	Get(ctx context.Context, id string) (model.Customer, error)
	GetAll(ctx context.Context) ([]model.Customer, error)
	Exist(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, id string, mutate func(customer *model.Customer) error) error
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Customer]
}

func New(backend store.Backend, otel otel.Otel) Customer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Customer](model.EntityName, model.CollectionName, backend, otel),
	}
}
