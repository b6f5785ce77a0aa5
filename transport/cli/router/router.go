package router

import (
	"hotelsys/internal/handlers/customer"
	"hotelsys/internal/handlers/event"
	"hotelsys/internal/handlers/hotel"
	"hotelsys/internal/handlers/reservation"

	"github.com/urfave/cli/v2"
)

type DomainHandlers struct {
	Hotel       hotel.Handler
	Customer    customer.Handler
	Reservation reservation.Handler
	Event       event.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupCommands(app *cli.App) {
	app.Commands = append(app.Commands,
		r.DomainHandlers.Hotel.Command(),
		r.DomainHandlers.Customer.Command(),
		r.DomainHandlers.Reservation.Command(),
		r.DomainHandlers.Event.Command(),
	)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
