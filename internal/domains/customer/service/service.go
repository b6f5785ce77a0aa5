package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Customer=MockCustomerService

import (
	"context"
	"fmt"

	"hotelsys/infras/otel"
	"hotelsys/internal/domains/customer/model"
	"hotelsys/internal/domains/customer/model/dto"
	"hotelsys/internal/domains/customer/repository"
	"hotelsys/shared/constant"
	"hotelsys/shared/failure"
	"hotelsys/shared/validator"

	"github.com/rs/zerolog/log"
)

type Customer interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) error
	GetAll(ctx context.Context) (dto.GetCustomersResponse, error)
	Get(ctx context.Context, id string) (dto.CustomerResponse, error)
	Update(ctx context.Context, req dto.UpdateCustomerRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Customer
	otel otel.Otel
}

func New(repo repository.Customer, otel otel.Otel) Customer {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCustomerRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelEntityIDAttributeKey, req.CustomerID)

	if err = validator.ValidateStruct(&req); err != nil {
		log.Error().Err(err).Str("customerID", req.CustomerID).Msg("invalid customer")

		return err
	}

	if err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Str("customerID", req.CustomerID).Msg("failed to create customer")

		return fmt.Errorf("failed to create customer: %w", err)
	}

	log.Info().Str("customerID", req.CustomerID).Str("name", req.Name).Msg("customer created")

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetCustomersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customers")

		return res, fmt.Errorf("failed to get customers: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

// Get returns the customer with the given id. A missing customer is a NotFound failure.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelEntityIDAttributeKey, id)

	customer, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Debug().Err(err).Str("customerID", id).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	res.FromModel(customer)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCustomerRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelEntityIDAttributeKey, id)

	if req.IsEmpty() {
		return failure.EmptyUpdateError
	}

	if err = validator.ValidateStruct(&req); err != nil {
		log.Error().Err(err).Str("customerID", id).Msg("invalid customer update")

		return err
	}

	changes := req.ChangedFields()

	err = s.repo.Update(ctx, id, func(customer *model.Customer) error {
		req.ApplyTo(customer)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("customerID", id).Msg("failed to update customer")

		return fmt.Errorf("failed to update customer: %w", err)
	}

	log.Info().Str("customerID", id).Fields(changes).Msg("customer updated")

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelEntityIDAttributeKey, id)

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("customerID", id).Msg("failed to delete customer")

		return fmt.Errorf("failed to delete customer: %w", err)
	}

	log.Info().Str("customerID", id).Msg("customer deleted")

	return nil
}
