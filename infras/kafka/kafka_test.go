package kafka_test

import (
	"context"
	"testing"

	"hotelsys/config"
	"hotelsys/infras/kafka"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reservationEvent struct {
	ReservationID string `json:"reservation_id"`
	HotelID       string `json:"hotel_id"`
}

func TestMessage_RoundTrip(t *testing.T) {
	msg := kafka.Message{
		Key:   "R1",
		Value: reservationEvent{ReservationID: "R1", HotelID: "H1"},
	}

	raw, err := msg.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("R1"), raw.Key)
	assert.JSONEq(t, `{"reservation_id":"R1","hotel_id":"H1"}`, string(raw.Value))

	decoded, err := kafka.DecodeKafkaMessage[reservationEvent](raw)
	require.NoError(t, err)
	assert.Equal(t, "R1", decoded.Key)
	assert.Equal(t, reservationEvent{ReservationID: "R1", HotelID: "H1"}, decoded.Value)
}

func TestDecodeKafkaMessage_Invalid(t *testing.T) {
	_, err := kafka.DecodeKafkaMessage[reservationEvent](kafkaGo.Message{Value: []byte("{")})
	assert.Error(t, err)
}

func TestNew_WithoutBrokersIsNop(t *testing.T) {
	client := kafka.New(&config.Config{})

	err := client.SendMessages(context.Background(), "hotelsys.reservations", kafka.Message{Key: "R1"})
	assert.NoError(t, err)

	err = client.Consume(context.Background(), "", "hotelsys.reservations", func(kafkaGo.Message) {})
	assert.ErrorIs(t, err, kafka.ErrDisabled)
}
