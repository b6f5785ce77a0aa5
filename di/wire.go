//go:build wireinject
// +build wireinject

package di

import (
	"hotelsys/config"
	"hotelsys/infras/kafka"
	"hotelsys/infras/otel"
	"hotelsys/internal/store"
	"hotelsys/transport/cli"
	"hotelsys/transport/cli/router"

	customerRepository "hotelsys/internal/domains/customer/repository"
	customerService "hotelsys/internal/domains/customer/service"
	hotelRepository "hotelsys/internal/domains/hotel/repository"
	hotelService "hotelsys/internal/domains/hotel/service"
	reservationRepository "hotelsys/internal/domains/reservation/repository"
	reservationService "hotelsys/internal/domains/reservation/service"

	customerHandler "hotelsys/internal/handlers/customer"
	eventHandler "hotelsys/internal/handlers/event"
	hotelHandler "hotelsys/internal/handlers/hotel"
	reservationHandler "hotelsys/internal/handlers/reservation"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	kafka.New,
	store.NewBackend,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var domains = wire.NewSet(
	hotelDomain,
	customerDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	hotelHandler.New,
	customerHandler.New,
	reservationHandler.New,
	eventHandler.New,
	router.New,
)

func InitializeCLI() (*cli.CLI, error) {
	wire.Build(
		configurations,
		infrastructures,
		domains,
		routing,
		cli.New,
	)

	return &cli.CLI{}, nil
}
