package reservation

import (
	"hotelsys/infras/otel"
	"hotelsys/internal/domains/reservation/model/dto"
	"hotelsys/internal/domains/reservation/service"
	"hotelsys/shared/constant"
	"hotelsys/transport/cli/request"
	"hotelsys/transport/cli/response"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

const flagID = "id"

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Command() *cli.Command {
	return &cli.Command{
		Name:  constant.CommandReservation,
		Usage: "reserve and cancel hotel rooms",
		Subcommands: []*cli.Command{
			{
				Name:      "create",
				Usage:     "reserve one room of a hotel for a customer",
				ArgsUsage: "<customer_id> <hotel_id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagID, Usage: "reservation id, generated when omitted"},
				},
				Action: handler.CreateReservation,
			},
			{
				Name:      "cancel",
				Usage:     "cancel a reservation and give its room back",
				ArgsUsage: "<reservation_id>",
				Action:    handler.CancelReservation,
			},
			{
				Name:   "list",
				Usage:  "list every reservation",
				Action: handler.GetReservations,
			},
			{
				Name:      "get",
				Usage:     "show one reservation",
				ArgsUsage: "<reservation_id>",
				Action:    handler.GetReservationByID,
			},
		},
	}
}

// CreateReservation handles `reservation create [--id R1] <customer_id> <hotel_id>`
// and prints the stored reservation.
func (handler *Handler) CreateReservation(c *cli.Context) (err error) {
	ctx, scope := handler.otel.NewScope(c.Context, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	defer func() {
		if err != nil {
			response.WithError(c.App.Writer, err)
		}
	}()

	args, err := request.Args(c, 2, 2)
	if err != nil {
		return err
	}

	req := dto.CreateReservationRequest{
		ReservationID: c.String(flagID),
		CustomerID:    args[0],
		HotelID:       args[1],
	}

	reservation, err := handler.service.Create(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return err
	}

	scope.AddEvent("Reservation created")
	response.WithJSON(c.App.Writer, reservation)

	return nil
}

func (handler *Handler) CancelReservation(c *cli.Context) (err error) {
	ctx, scope := handler.otel.NewScope(c.Context, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelReservation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	defer func() {
		if err != nil {
			response.WithError(c.App.Writer, err)
		}
	}()

	args, err := request.Args(c, 1, 1)
	if err != nil {
		return err
	}

	if err = handler.service.Cancel(ctx, args[0]); err != nil {
		log.Error().Err(err).Msg("failed to cancel reservation")

		return err
	}

	scope.AddEvent("Reservation cancelled")
	response.WithMessage(c.App.Writer, constant.ResponseMessageCancelled)

	return nil
}

func (handler *Handler) GetReservations(c *cli.Context) (err error) {
	ctx, scope := handler.otel.NewScope(c.Context, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reservations, err := handler.service.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")
		response.WithError(c.App.Writer, err)

		return err
	}

	response.WithJSON(c.App.Writer, reservations)

	return nil
}

func (handler *Handler) GetReservationByID(c *cli.Context) (err error) {
	ctx, scope := handler.otel.NewScope(c.Context, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	defer func() {
		if err != nil {
			response.WithError(c.App.Writer, err)
		}
	}()

	args, err := request.Args(c, 1, 1)
	if err != nil {
		return err
	}

	reservation, err := handler.service.Get(ctx, args[0])
	if err != nil {
		return err
	}

	response.WithJSON(c.App.Writer, reservation)

	return nil
}
