package event_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"strings"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"go.uber.org/mock/gomock"

	"hotelsys/config"
	kafkaMocks "hotelsys/infras/kafka/mocks"
	otelMocks "hotelsys/infras/otel/mocks"
	"hotelsys/internal/domains/reservation/model/dto"
	"hotelsys/internal/handlers/event"
)

func newContext(out *bytes.Buffer) *cli.Context {
	app := &cli.App{Writer: out}
	ctx := cli.NewContext(app, flag.NewFlagSet("events", flag.ContinueOnError), nil)
	ctx.Context = context.Background()

	return ctx
}

func TestHandler_WatchReservations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := kafkaMocks.NewMockClient(ctrl)
	cfg := &config.Config{}
	cfg.Kafka.Topic = "hotelsys.reservations"

	handler := event.New(client, cfg, otelMocks.NewOtel())

	created, err := json.Marshal(dto.ReservationEvent{
		Type:        "reservation.created",
		Reservation: dto.ReservationResponse{ReservationID: "R1", CustomerID: "C1", HotelID: "H1"},
	})
	require.NoError(t, err)

	client.EXPECT().
		Consume(gomock.Any(), "", "hotelsys.reservations", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, handle func(kafkaGo.Message)) error {
			handle(kafkaGo.Message{Key: []byte("R1"), Value: created})
			handle(kafkaGo.Message{Key: []byte("R2"), Value: []byte("not json")})

			return nil
		})

	var out bytes.Buffer
	require.NoError(t, handler.WatchReservations(newContext(&out)))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)

	var got dto.ReservationEvent
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &got))
	assert.Equal(t, "reservation.created", got.Type)
	assert.Equal(t, "R1", got.Reservation.ReservationID)
}

func TestHandler_WatchReservationsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := kafkaMocks.NewMockClient(ctrl)
	handler := event.New(client, &config.Config{}, otelMocks.NewOtel())

	client.EXPECT().Consume(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("no brokers"))

	var out bytes.Buffer
	err := handler.WatchReservations(newContext(&out))

	assert.EqualError(t, err, "no brokers")
	assert.Contains(t, out.String(), "no brokers")
}
