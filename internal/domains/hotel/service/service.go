package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Hotel=MockHotelService

import (
	"context"
	"fmt"

	"hotelsys/infras/otel"
	"hotelsys/internal/domains/hotel/model"
	"hotelsys/internal/domains/hotel/model/dto"
	"hotelsys/internal/domains/hotel/repository"
	"hotelsys/shared/constant"
	"hotelsys/shared/failure"
	"hotelsys/shared/validator"

	"github.com/rs/zerolog/log"
)

type Hotel interface {
	Create(ctx context.Context, req dto.CreateHotelRequest) error
	GetAll(ctx context.Context) (dto.GetHotelsResponse, error)
	Get(ctx context.Context, id string) (dto.HotelResponse, error)
	Update(ctx context.Context, req dto.UpdateHotelRequest, id string) error
	Delete(ctx context.Context, id string) error
	// ReserveRoom takes one available room, failing with Exhausted when none is left.
	ReserveRoom(ctx context.Context, id string) error
	// ReleaseRoom gives one room back. The count has no upper bound.
	ReleaseRoom(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Hotel
	otel otel.Otel
}

func New(repo repository.Hotel, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHotelRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelEntityIDAttributeKey, req.HotelID)

	if err = validator.ValidateStruct(&req); err != nil {
		log.Error().Err(err).Str("hotelID", req.HotelID).Msg("invalid hotel")

		return err
	}

	if err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Str("hotelID", req.HotelID).Msg("failed to create hotel")

		return fmt.Errorf("failed to create hotel: %w", err)
	}

	log.Info().Str("hotelID", req.HotelID).Str("name", req.Name).Int("rooms", req.Rooms).Msg("hotel created")

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return res, fmt.Errorf("failed to get hotels: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelEntityIDAttributeKey, id)

	hotel, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("hotelID", id).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	res.FromModel(hotel)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHotelRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelEntityIDAttributeKey, id)

	if req.IsEmpty() {
		return failure.EmptyUpdateError
	}

	if err = validator.ValidateStruct(&req); err != nil {
		log.Error().Err(err).Str("hotelID", id).Msg("invalid hotel update")

		return err
	}

	changes := req.ChangedFields()
	scope.SetAttributes(changes)

	err = s.repo.Update(ctx, id, func(hotel *model.Hotel) error {
		req.ApplyTo(hotel)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("hotelID", id).Msg("failed to update hotel")

		return fmt.Errorf("failed to update hotel: %w", err)
	}

	log.Info().Str("hotelID", id).Fields(changes).Msg("hotel updated")

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelEntityIDAttributeKey, id)

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("hotelID", id).Msg("failed to delete hotel")

		return fmt.Errorf("failed to delete hotel: %w", err)
	}

	log.Info().Str("hotelID", id).Msg("hotel deleted")

	return nil
}

func (s *serviceImpl) ReserveRoom(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.ReserveRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelEntityIDAttributeKey, id)

	remaining := 0

	err = s.repo.Update(ctx, id, func(hotel *model.Hotel) error {
		if hotel.Rooms <= 0 {
			return failure.Exhausted(id)
		}

		hotel.Rooms--
		remaining = hotel.Rooms

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("hotelID", id).Msg("failed to reserve room")

		return fmt.Errorf("failed to reserve room: %w", err)
	}

	log.Info().Str("hotelID", id).Int("rooms", remaining).Msg("room reserved")

	return nil
}

func (s *serviceImpl) ReleaseRoom(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.ReleaseRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelEntityIDAttributeKey, id)

	available := 0

	err = s.repo.Update(ctx, id, func(hotel *model.Hotel) error {
		hotel.Rooms++
		available = hotel.Rooms

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("hotelID", id).Msg("failed to release room")

		return fmt.Errorf("failed to release room: %w", err)
	}

	log.Info().Str("hotelID", id).Int("rooms", available).Msg("room released")

	return nil
}
