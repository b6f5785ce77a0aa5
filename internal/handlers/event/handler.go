package event

import (
	"hotelsys/config"
	"hotelsys/infras/kafka"
	"hotelsys/infras/otel"
	"hotelsys/internal/domains/reservation/model/dto"
	"hotelsys/shared/constant"
	"hotelsys/transport/cli/response"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/urfave/cli/v2"
)

const flagGroup = "group"

type Handler struct {
	client kafka.Client
	config *config.Config
	otel   otel.Otel
}

func New(client kafka.Client, config *config.Config, otel otel.Otel) Handler {
	return Handler{
		client: client,
		config: config,
		otel:   otel,
	}
}

func (handler *Handler) Command() *cli.Command {
	return &cli.Command{
		Name:  constant.CommandEvents,
		Usage: "print reservation events as they are published",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagGroup, Usage: "consumer group, defaults to KAFKA_CONSUMER_GROUP"},
		},
		Action: handler.WatchReservations,
	}
}

// WatchReservations prints one JSON line per reservation event until the
// context is cancelled.
func (handler *Handler) WatchReservations(c *cli.Context) (err error) {
	ctx, scope := handler.otel.NewScope(c.Context, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".WatchReservations")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	topic := handler.config.Kafka.Topic

	log.Info().Str("topic", topic).Msg("Watching reservation events")

	err = handler.client.Consume(ctx, c.String(flagGroup), topic, func(message kafkaGo.Message) {
		decoded, err := kafka.DecodeKafkaMessage[dto.ReservationEvent](message)
		if err != nil {
			log.Warn().Err(err).Str("key", string(message.Key)).Msg("skipping malformed reservation event")

			return
		}

		response.WithLine(c.App.Writer, decoded.Value)
	})
	if err != nil {
		response.WithError(c.App.Writer, err)

		return err
	}

	return nil
}
