package customer

import (
	"hotelsys/infras/otel"
	"hotelsys/internal/domains/customer/model"
	"hotelsys/internal/domains/customer/model/dto"
	"hotelsys/internal/domains/customer/service"
	"hotelsys/shared/constant"
	"hotelsys/transport/cli/request"
	"hotelsys/transport/cli/response"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

type Handler struct {
	service service.Customer
	otel    otel.Otel
}

func New(service service.Customer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Command() *cli.Command {
	return &cli.Command{
		Name:  constant.CommandCustomer,
		Usage: "manage customers",
		Subcommands: []*cli.Command{
			{
				Name:      "create",
				Usage:     "add a customer",
				ArgsUsage: "<customer_id> <name> [email]",
				Action:    handler.CreateCustomer,
			},
			{
				Name:   "list",
				Usage:  "list every customer",
				Action: handler.GetCustomers,
			},
			{
				Name:      "get",
				Usage:     "show one customer",
				ArgsUsage: "<customer_id>",
				Action:    handler.GetCustomerByID,
			},
			{
				Name:      "update",
				Usage:     "replace the given fields of a customer",
				ArgsUsage: "<customer_id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: model.FieldName},
					&cli.StringFlag{Name: model.FieldEmail},
				},
				Action: handler.UpdateCustomer,
			},
			{
				Name:      "delete",
				Usage:     "remove a customer",
				ArgsUsage: "<customer_id>",
				Action:    handler.DeleteCustomer,
			},
		},
	}
}

func (handler *Handler) CreateCustomer(c *cli.Context) (err error) {
	ctx, scope := handler.otel.NewScope(c.Context, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCustomer")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	defer func() {
		if err != nil {
			response.WithError(c.App.Writer, err)
		}
	}()

	args, err := request.Args(c, 2, 3)
	if err != nil {
		return err
	}

	req := dto.CreateCustomerRequest{
		CustomerID: args[0],
		Name:       args[1],
	}

	if len(args) == 3 {
		req.Email = args[2]
	}

	if err = handler.service.Create(ctx, req); err != nil {
		log.Error().Err(err).Msg("failed to create customer")

		return err
	}

	response.WithMessage(c.App.Writer, constant.ResponseMessageCreated)

	return nil
}

func (handler *Handler) GetCustomers(c *cli.Context) (err error) {
	ctx, scope := handler.otel.NewScope(c.Context, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomers")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customers, err := handler.service.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customers")
		response.WithError(c.App.Writer, err)

		return err
	}

	response.WithJSON(c.App.Writer, customers)

	return nil
}

func (handler *Handler) GetCustomerByID(c *cli.Context) (err error) {
	ctx, scope := handler.otel.NewScope(c.Context, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomerByID")
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

	customer, err := handler.service.Get(ctx, args[0])
	if err != nil {
		return err
	}

	response.WithJSON(c.App.Writer, customer)

	return nil
}

func (handler *Handler) UpdateCustomer(c *cli.Context) (err error) {
	ctx, scope := handler.otel.NewScope(c.Context, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCustomer")
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

	req := dto.UpdateCustomerRequest{
		Name:  request.OptionalString(c, model.FieldName),
		Email: request.OptionalString(c, model.FieldEmail),
	}

	if err = handler.service.Update(ctx, req, args[0]); err != nil {
		log.Error().Err(err).Msg("failed to update customer")

		return err
	}

	response.WithMessage(c.App.Writer, constant.ResponseMessageUpdated)

	return nil
}

func (handler *Handler) DeleteCustomer(c *cli.Context) (err error) {
	ctx, scope := handler.otel.NewScope(c.Context, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCustomer")
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
		log.Error().Err(err).Msg("failed to delete customer")

		return err
	}

	response.WithMessage(c.App.Writer, constant.ResponseMessageDeleted)

	return nil
}
