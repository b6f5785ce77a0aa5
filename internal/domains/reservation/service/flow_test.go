package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelsys/config"
	"hotelsys/infras/kafka"
	otelMocks "hotelsys/infras/otel/mocks"
	customerDto "hotelsys/internal/domains/customer/model/dto"
	customerRepository "hotelsys/internal/domains/customer/repository"
	customerService "hotelsys/internal/domains/customer/service"
	hotelDto "hotelsys/internal/domains/hotel/model/dto"
	hotelRepository "hotelsys/internal/domains/hotel/repository"
	hotelService "hotelsys/internal/domains/hotel/service"
	"hotelsys/internal/domains/reservation/model/dto"
	"hotelsys/internal/domains/reservation/repository"
	"hotelsys/internal/domains/reservation/service"
	"hotelsys/internal/store"
	"hotelsys/shared/failure"
)

type registries struct {
	dir          string
	hotels       hotelService.Hotel
	customers    customerService.Customer
	reservations service.Reservation
}

func newRegistries(t *testing.T) *registries {
	t.Helper()

	dir := t.TempDir()
	backend := store.NewFileBackend(dir)
	otl := otelMocks.NewOtel()
	cfg := &config.Config{}

	hotels := hotelService.New(hotelRepository.New(backend, otl), otl)
	customers := customerService.New(customerRepository.New(backend, otl), otl)

	return &registries{
		dir:          dir,
		hotels:       hotels,
		customers:    customers,
		reservations: service.New(repository.New(backend, otl), hotels, customers, kafka.New(cfg), cfg, otl),
	}
}

func (r *registries) seed(t *testing.T) {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, r.hotels.Create(ctx, hotelDto.CreateHotelRequest{HotelID: "H1", Name: "Grand", Location: "Paris", Rooms: 5}))
	require.NoError(t, r.customers.Create(ctx, customerDto.CreateCustomerRequest{CustomerID: "C1", Name: "Alice", Email: "alice@example.com"}))
}

func (r *registries) rooms(t *testing.T, hotelID string) int {
	t.Helper()

	hotel, err := r.hotels.Get(context.Background(), hotelID)
	require.NoError(t, err)

	return hotel.Rooms
}

func (r *registries) reservationCount(t *testing.T) int {
	t.Helper()

	all, err := r.reservations.GetAll(context.Background())
	require.NoError(t, err)

	return all.TotalData
}

func TestFlow_CreateAndCancel(t *testing.T) {
	ctx := context.Background()
	r := newRegistries(t)
	r.seed(t)

	res, err := r.reservations.Create(ctx, dto.CreateReservationRequest{ReservationID: "R1", CustomerID: "C1", HotelID: "H1"})
	require.NoError(t, err)
	assert.Equal(t, dto.ReservationResponse{ReservationID: "R1", CustomerID: "C1", HotelID: "H1"}, res)
	assert.Equal(t, 4, r.rooms(t, "H1"))

	all, err := r.reservations.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []dto.ReservationResponse{{ReservationID: "R1", CustomerID: "C1", HotelID: "H1"}}, all.Reservations)

	require.NoError(t, r.reservations.Cancel(ctx, "R1"))
	assert.Equal(t, 5, r.rooms(t, "H1"))
	assert.Equal(t, 0, r.reservationCount(t))

	err = r.reservations.Cancel(ctx, "R-FAKE")
	assert.True(t, failure.Is(err, failure.KindNotFound))
	assert.Equal(t, 5, r.rooms(t, "H1"))
	assert.Equal(t, 0, r.reservationCount(t))
}

func TestFlow_ReferentialGuards(t *testing.T) {
	ctx := context.Background()
	r := newRegistries(t)
	r.seed(t)
	require.NoError(t, r.hotels.Create(ctx, hotelDto.CreateHotelRequest{HotelID: "H0", Name: "Full", Rooms: 0}))

	tests := []struct {
		name     string
		req      dto.CreateReservationRequest
		wantKind failure.Kind
	}{
		{
			name:     "ghost customer",
			req:      dto.CreateReservationRequest{ReservationID: "R1", CustomerID: "C-GHOST", HotelID: "H1"},
			wantKind: failure.KindInvalidCustomer,
		},
		{
			name:     "unknown hotel",
			req:      dto.CreateReservationRequest{ReservationID: "R1", CustomerID: "C1", HotelID: "H-GHOST"},
			wantKind: failure.KindInvalidHotel,
		},
		{
			name:     "hotel without rooms",
			req:      dto.CreateReservationRequest{ReservationID: "R1", CustomerID: "C1", HotelID: "H0"},
			wantKind: failure.KindInvalidHotel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.reservations.Create(ctx, tt.req)

			assert.True(t, failure.Is(err, tt.wantKind), "got %v", err)
			assert.Equal(t, 0, r.reservationCount(t))
			assert.Equal(t, 5, r.rooms(t, "H1"))
			assert.Equal(t, 0, r.rooms(t, "H0"))
		})
	}
}

func TestFlow_DuplicateReservation(t *testing.T) {
	ctx := context.Background()
	r := newRegistries(t)
	r.seed(t)

	req := dto.CreateReservationRequest{ReservationID: "R1", CustomerID: "C1", HotelID: "H1"}

	_, err := r.reservations.Create(ctx, req)
	require.NoError(t, err)

	_, err = r.reservations.Create(ctx, req)
	assert.True(t, failure.Is(err, failure.KindDuplicateKey))
	assert.Equal(t, 1, r.reservationCount(t))
	assert.Equal(t, 4, r.rooms(t, "H1"))
}

func TestFlow_CancelAfterHotelDeleted(t *testing.T) {
	ctx := context.Background()
	r := newRegistries(t)
	r.seed(t)

	_, err := r.reservations.Create(ctx, dto.CreateReservationRequest{ReservationID: "R1", CustomerID: "C1", HotelID: "H1"})
	require.NoError(t, err)
	require.NoError(t, r.hotels.Delete(ctx, "H1"))

	require.NoError(t, r.reservations.Cancel(ctx, "R1"))
	assert.Equal(t, 0, r.reservationCount(t))
}

func TestFlow_HotelAndCustomerRegistries(t *testing.T) {
	ctx := context.Background()
	r := newRegistries(t)
	r.seed(t)

	hotel, err := r.hotels.Get(ctx, "H1")
	require.NoError(t, err)
	assert.Equal(t, hotelDto.HotelResponse{HotelID: "H1", Name: "Grand", Location: "Paris", Rooms: 5}, hotel)

	customer, err := r.customers.Get(ctx, "C1")
	require.NoError(t, err)
	assert.Equal(t, customerDto.CustomerResponse{CustomerID: "C1", Name: "Alice", Email: "alice@example.com"}, customer)

	err = r.hotels.Create(ctx, hotelDto.CreateHotelRequest{HotelID: "H1", Name: "Impostor", Rooms: 1})
	assert.True(t, failure.Is(err, failure.KindDuplicateKey))

	hotels, err := r.hotels.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, hotels.TotalData)
	assert.Equal(t, "Grand", hotels.Hotels[0].Name)

	err = r.customers.Delete(ctx, "C404")
	assert.True(t, failure.Is(err, failure.KindNotFound))

	customers, err := r.customers.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, customers.TotalData)
}

func TestFlow_FreeFormFieldsRoundTrip(t *testing.T) {
	ctx := context.Background()
	r := newRegistries(t)

	require.NoError(t, r.hotels.Create(ctx, hotelDto.CreateHotelRequest{HotelID: "Hotel 1", Name: "Grand Hotel", Rooms: 2}))
	require.NoError(t, r.customers.Create(ctx, customerDto.CreateCustomerRequest{CustomerID: "C 1", Name: "Ana Maria", Email: "ana at mail"}))
	require.NoError(t, r.customers.Create(ctx, customerDto.CreateCustomerRequest{CustomerID: "C2"}))

	hotel, err := r.hotels.Get(ctx, "Hotel 1")
	require.NoError(t, err)
	assert.Equal(t, hotelDto.HotelResponse{HotelID: "Hotel 1", Name: "Grand Hotel", Rooms: 2}, hotel)

	customer, err := r.customers.Get(ctx, "C 1")
	require.NoError(t, err)
	assert.Equal(t, customerDto.CustomerResponse{CustomerID: "C 1", Name: "Ana Maria", Email: "ana at mail"}, customer)

	customer, err = r.customers.Get(ctx, "C2")
	require.NoError(t, err)
	assert.Equal(t, customerDto.CustomerResponse{CustomerID: "C2"}, customer)

	_, err = r.reservations.Create(ctx, dto.CreateReservationRequest{ReservationID: "R 1", CustomerID: "C 1", HotelID: "Hotel 1"})
	require.NoError(t, err)
	assert.Equal(t, 1, r.rooms(t, "Hotel 1"))
}

func TestFlow_PersistedLayout(t *testing.T) {
	ctx := context.Background()
	r := newRegistries(t)
	r.seed(t)

	_, err := r.reservations.Create(ctx, dto.CreateReservationRequest{ReservationID: "R1", CustomerID: "C1", HotelID: "H1"})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(r.dir, "hotels.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"hotel_id":"H1","name":"Grand","location":"Paris","rooms":4}]`, string(data))
	assert.Contains(t, string(data), "\n    {\n        \"hotel_id\": \"H1\"")

	data, err = os.ReadFile(filepath.Join(r.dir, "reservations.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"reservation_id":"R1","customer_id":"C1","hotel_id":"H1"}]`, string(data))

	data, err = os.ReadFile(filepath.Join(r.dir, "customers.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"customer_id":"C1","name":"Alice","email":"alice@example.com"}]`, string(data))
}
