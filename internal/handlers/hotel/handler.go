package hotel

import (
	"hotelsys/infras/otel"
	"hotelsys/internal/domains/hotel/model"
	"hotelsys/internal/domains/hotel/model/dto"
	"hotelsys/internal/domains/hotel/service"
	"hotelsys/shared/constant"
	"hotelsys/transport/cli/request"
	"hotelsys/transport/cli/response"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

type Handler struct {
	service service.Hotel
	otel    otel.Otel
}

func New(service service.Hotel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Command() *cli.Command {
	return &cli.Command{
		Name:  constant.CommandHotel,
		Usage: "manage hotels and their available rooms",
		Subcommands: []*cli.Command{
			{
				Name:      "create",
				Usage:     "add a hotel",
				ArgsUsage: "<hotel_id> <name> <location> <rooms>",
				Action:    handler.CreateHotel,
			},
			{
				Name:   "list",
				Usage:  "list every hotel",
				Action: handler.GetHotels,
			},
			{
				Name:      "get",
				Usage:     "show one hotel",
				ArgsUsage: "<hotel_id>",
				Action:    handler.GetHotelByID,
			},
			{
				Name:      "update",
				Usage:     "replace the given fields of a hotel",
				ArgsUsage: "<hotel_id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: model.FieldName},
					&cli.StringFlag{Name: model.FieldLocation},
					&cli.IntFlag{Name: model.FieldRooms},
				},
				Action: handler.UpdateHotel,
			},
			{
				Name:      "delete",
				Usage:     "remove a hotel",
				ArgsUsage: "<hotel_id>",
				Action:    handler.DeleteHotel,
			},
		},
	}
}

// CreateHotel handles `hotel create <hotel_id> <name> <location> <rooms>`.
func (handler *Handler) CreateHotel(c *cli.Context) (err error) {
	ctx, scope := handler.otel.NewScope(c.Context, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHotel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	defer func() {
		if err != nil {
			response.WithError(c.App.Writer, err)
		}
	}()

	args, err := request.Args(c, 4, 4)
	if err != nil {
		return err
	}

	rooms, err := request.Int(model.FieldRooms, args[3])
	if err != nil {
		return err
	}

	req := dto.CreateHotelRequest{
		HotelID:  args[0],
		Name:     args[1],
		Location: args[2],
		Rooms:    rooms,
	}

	if err = handler.service.Create(ctx, req); err != nil {
		log.Error().Err(err).Msg("failed to create hotel")

		return err
	}

	scope.AddEvent("Hotel created")
	response.WithMessage(c.App.Writer, constant.ResponseMessageCreated)

	return nil
}

func (handler *Handler) GetHotels(c *cli.Context) (err error) {
	ctx, scope := handler.otel.NewScope(c.Context, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotels")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hotels, err := handler.service.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")
		response.WithError(c.App.Writer, err)

		return err
	}

	response.WithJSON(c.App.Writer, hotels)

	return nil
}

func (handler *Handler) GetHotelByID(c *cli.Context) (err error) {
	ctx, scope := handler.otel.NewScope(c.Context, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelByID")
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

	hotel, err := handler.service.Get(ctx, args[0])
	if err != nil {
		return err
	}

	response.WithJSON(c.App.Writer, hotel)

	return nil
}

// UpdateHotel handles `hotel update [--name N] [--location L] [--rooms R] <hotel_id>`.
func (handler *Handler) UpdateHotel(c *cli.Context) (err error) {
	ctx, scope := handler.otel.NewScope(c.Context, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHotel")
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

	req := dto.UpdateHotelRequest{
		Name:     request.OptionalString(c, model.FieldName),
		Location: request.OptionalString(c, model.FieldLocation),
		Rooms:    request.OptionalInt(c, model.FieldRooms),
	}

	if err = handler.service.Update(ctx, req, args[0]); err != nil {
		log.Error().Err(err).Msg("failed to update hotel")

		return err
	}

	response.WithMessage(c.App.Writer, constant.ResponseMessageUpdated)

	return nil
}

func (handler *Handler) DeleteHotel(c *cli.Context) (err error) {
	ctx, scope := handler.otel.NewScope(c.Context, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHotel")
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

	if err = handler.service.Delete(ctx, args[0]); err != nil {
		log.Error().Err(err).Msg("failed to delete hotel")

		return err
	}

	response.WithMessage(c.App.Writer, constant.ResponseMessageDeleted)

	return nil
}
