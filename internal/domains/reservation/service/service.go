package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Reservation=MockReservationService

import (
	"context"
	"fmt"

	"hotelsys/config"
	"hotelsys/infras/kafka"
	"hotelsys/infras/otel"
	customerService "hotelsys/internal/domains/customer/service"
	hotelService "hotelsys/internal/domains/hotel/service"
	"hotelsys/internal/domains/reservation/model"
	"hotelsys/internal/domains/reservation/model/dto"
	"hotelsys/internal/domains/reservation/repository"
	"hotelsys/shared/constant"
	"hotelsys/shared/failure"
	"hotelsys/shared/timezone"
	"hotelsys/shared/validator"

	"github.com/rs/zerolog/log"
)

// Reservation creates and cancels reservations. A create or cancel either
// applies to both the reservation and its hotel's room count or to neither.
type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	Cancel(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	GetAll(ctx context.Context) (dto.GetReservationsResponse, error)
}

type serviceImpl struct {
	repo      repository.Reservation
	hotels    hotelService.Hotel
	customers customerService.Customer
	events    kafka.Client
	config    *config.Config
	otel      otel.Otel
}

func New(
	repo repository.Reservation,
	hotels hotelService.Hotel,
	customers customerService.Customer,
	events kafka.Client,
	config *config.Config,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:      repo,
		hotels:    hotels,
		customers: customers,
		events:    events,
		config:    config,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		log.Error().Err(err).Str("reservationID", req.ReservationID).Msg("invalid reservation")

		return res, err
	}

	reservation := req.ToModel()
	logger := log.With().
		Str("reservationID", reservation.ReservationID).
		Str("customerID", reservation.CustomerID).
		Str("hotelID", reservation.HotelID).
		Logger()

	scope.SetAttributes(map[string]any{
		constant.OtelEntityIDAttributeKey: reservation.ReservationID,
		model.FieldCustomerID:             reservation.CustomerID,
		model.FieldHotelID:                reservation.HotelID,
	})

	exists, err := s.repo.Exist(ctx, reservation.ReservationID)
	if err != nil {
		logger.Error().Err(err).Msg("failed to check reservation")

		return res, fmt.Errorf("failed to check reservation: %w", err)
	}

	if exists {
		err = failure.DuplicateKey(model.EntityName, reservation.ReservationID)
		logger.Error().Err(err).Msg("reservation already exists")

		return res, err
	}

	if _, err = s.customers.Get(ctx, reservation.CustomerID); err != nil {
		logger.Error().Err(err).Msg("customer cannot reserve")

		if failure.Is(err, failure.KindNotFound) {
			return res, failure.InvalidCustomer(reservation.CustomerID)
		}

		return res, fmt.Errorf("failed to check customer: %w", err)
	}

	if err = s.hotels.ReserveRoom(ctx, reservation.HotelID); err != nil {
		logger.Error().Err(err).Msg("hotel cannot take the reservation")

		if failure.Is(err, failure.KindNotFound) || failure.Is(err, failure.KindExhausted) {
			return res, failure.InvalidHotel(reservation.HotelID, err)
		}

		return res, fmt.Errorf("failed to reserve room: %w", err)
	}

	if err = s.repo.Insert(ctx, reservation); err != nil {
		logger.Error().Err(err).Msg("failed to save reservation, releasing room")

		if releaseErr := s.hotels.ReleaseRoom(ctx, reservation.HotelID); releaseErr != nil {
			logger.Error().Err(releaseErr).Msg("failed to release room after aborted reservation")
		}

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	res.FromModel(reservation)
	s.publish(ctx, constant.EventReservationCreated, res)

	logger.Info().Msg("reservation created")

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelEntityIDAttributeKey, id)

	reservation, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("reservationID", id).Msg("failed to find reservation")

		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	logger := log.With().
		Str("reservationID", reservation.ReservationID).
		Str("hotelID", reservation.HotelID).
		Logger()

	released := true

	if err = s.hotels.ReleaseRoom(ctx, reservation.HotelID); err != nil {
		if !failure.Is(err, failure.KindNotFound) {
			logger.Error().Err(err).Msg("failed to release room")

			return fmt.Errorf("failed to cancel reservation: %w", err)
		}

		released = false

		logger.Warn().Err(err).Msg("hotel no longer exists, removing reservation anyway")
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		logger.Error().Err(err).Msg("failed to remove reservation")

		if released {
			if reserveErr := s.hotels.ReserveRoom(ctx, reservation.HotelID); reserveErr != nil {
				logger.Error().Err(reserveErr).Msg("failed to take back released room")
			}
		}

		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	var res dto.ReservationResponse
	res.FromModel(reservation)
	s.publish(ctx, constant.EventReservationCancelled, res)

	logger.Info().Msg("reservation cancelled")

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelEntityIDAttributeKey, id)

	reservation, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("reservationID", id).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

// publish is best effort. The reservation is already persisted.
func (s *serviceImpl) publish(ctx context.Context, eventType string, reservation dto.ReservationResponse) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+"."+eventType)
	defer scope.End()

	message := kafka.Message{
		Key: reservation.ReservationID,
		Value: dto.ReservationEvent{
			Type:        eventType,
			Reservation: reservation,
			OccurredAt:  timezone.Now(),
		},
	}

	if err := s.events.SendMessages(ctx, s.config.Kafka.Topic, message); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("event", eventType).Str("reservationID", reservation.ReservationID).Msg("failed to publish reservation event")
	}
}
