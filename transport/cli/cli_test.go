package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"hotelsys/config"
	"hotelsys/infras/kafka"
	"hotelsys/infras/otel"
	otelMocks "hotelsys/infras/otel/mocks"
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
	"hotelsys/internal/store"
	"hotelsys/shared/failure"
	"hotelsys/transport/cli"
	"hotelsys/transport/cli/router"
)

func newCLI(t *testing.T) *cli.CLI {
	t.Helper()

	return newTracedCLI(t, otelMocks.NewOtel())
}

func newTracedCLI(t *testing.T, otl otel.Otel) *cli.CLI {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Name = "hotelsys"
	cfg.Kafka.Topic = "hotelsys.reservations"

	backend := store.NewMemoryBackend()
	events := kafka.New(cfg)

	hotels := hotelService.New(hotelRepository.New(backend, otl), otl)
	customers := customerService.New(customerRepository.New(backend, otl), otl)
	reservations := reservationService.New(reservationRepository.New(backend, otl), hotels, customers, events, cfg, otl)

	return cli.New(cfg, router.New(router.DomainHandlers{
		Hotel:       hotelHandler.New(hotels, otl),
		Customer:    customerHandler.New(customers, otl),
		Reservation: reservationHandler.New(reservations, otl),
		Event:       eventHandler.New(events, cfg, otl),
	}), otl)
}

func run(t *testing.T, c *cli.CLI, args ...string) (map[string]any, error) {
	t.Helper()

	var out bytes.Buffer
	err := c.Run(context.Background(), args, &out)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &payload), "output: %s", out.String())

	return payload, err
}

func TestCLI_ReservationLifecycle(t *testing.T) {
	c := newCLI(t)

	payload, err := run(t, c, "hotel", "create", "H1", "Grand", "Paris", "5")
	require.NoError(t, err)
	assert.Equal(t, "created", payload["message"])

	_, err = run(t, c, "customer", "create", "C1", "Alice", "alice@example.com")
	require.NoError(t, err)

	payload, err = run(t, c, "reservation", "create", "--id", "R1", "C1", "H1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"reservation_id": "R1", "customer_id": "C1", "hotel_id": "H1"}, payload["data"])

	payload, err = run(t, c, "hotel", "get", "H1")
	require.NoError(t, err)
	assert.InDelta(t, 4, payload["data"].(map[string]any)["rooms"], 0)

	payload, err = run(t, c, "reservation", "list")
	require.NoError(t, err)
	assert.InDelta(t, 1, payload["data"].(map[string]any)["total_data"], 0)

	_, err = run(t, c, "reservation", "cancel", "R1")
	require.NoError(t, err)

	payload, err = run(t, c, "hotel", "get", "H1")
	require.NoError(t, err)
	assert.InDelta(t, 5, payload["data"].(map[string]any)["rooms"], 0)
}

func TestCLI_Errors(t *testing.T) {
	c := newCLI(t)

	tests := []struct {
		name     string
		args     []string
		wantKind failure.Kind
	}{
		{name: "missing arguments", args: []string{"hotel", "create", "H1"}, wantKind: failure.KindBadRequest},
		{name: "rooms not a number", args: []string{"hotel", "create", "H1", "Grand", "Paris", "many"}, wantKind: failure.KindBadRequest},
		{name: "unknown hotel", args: []string{"hotel", "get", "H404"}, wantKind: failure.KindNotFound},
		{name: "empty update", args: []string{"customer", "update", "C1"}, wantKind: failure.KindBadRequest},
		{name: "ghost customer", args: []string{"reservation", "create", "C-GHOST", "H1"}, wantKind: failure.KindInvalidCustomer},
		{name: "unknown reservation", args: []string{"reservation", "cancel", "R-FAKE"}, wantKind: failure.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := run(t, c, tt.args...)

			require.Error(t, err)
			assert.Equal(t, tt.wantKind, failure.GetCode(err))
			assert.Equal(t, string(tt.wantKind), payload["code"])
			assert.NotEmpty(t, payload["error"])
		})
	}
}

func TestCLI_UpdateHotel(t *testing.T) {
	c := newCLI(t)

	_, err := run(t, c, "hotel", "create", "H1", "Grand", "Paris", "5")
	require.NoError(t, err)

	_, err = run(t, c, "hotel", "update", "--rooms", "9", "--name", "Grander", "H1")
	require.NoError(t, err)

	payload, err := run(t, c, "hotel", "get", "H1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"hotel_id": "H1", "name": "Grander", "location": "Paris", "rooms": float64(9)}, payload["data"])
}

func TestCLI_EventsDisabled(t *testing.T) {
	c := newCLI(t)

	payload, err := run(t, c, "events")

	assert.ErrorIs(t, err, kafka.ErrDisabled)
	assert.Equal(t, kafka.ErrDisabled.Error(), payload["error"])
}

// retainingExporter keeps exported spans readable after the provider shuts it down.
type retainingExporter struct {
	*tracetest.InMemoryExporter
}

func (e *retainingExporter) Shutdown(context.Context) error {
	return nil
}

func TestCLI_ShutdownExportsCommandSpans(t *testing.T) {
	exporter := &retainingExporter{InMemoryExporter: tracetest.NewInMemoryExporter()}
	c := newTracedCLI(t, otel.NewWithExporter(&config.Config{}, exporter))

	_, err := run(t, c, "hotel", "create", "H1", "Grand", "Paris", "5")
	require.NoError(t, err)

	require.NoError(t, c.Shutdown(context.Background()))

	var names []string
	for _, span := range exporter.GetSpans() {
		names = append(names, span.Name)
	}

	assert.Contains(t, names, "handler.CreateHotel")
}
