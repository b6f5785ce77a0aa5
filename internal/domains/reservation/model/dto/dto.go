package dto

import (
	"time"

	"hotelsys/internal/domains/reservation/model"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ReservationID string `json:"reservation_id"`
	CustomerID    string `json:"customer_id"    validate:"required"`
	HotelID       string `json:"hotel_id"       validate:"required"`
}

// ToModel builds the reservation, assigning a random id when none was given.
func (c *CreateReservationRequest) ToModel() model.Reservation {
	if c.ReservationID == "" {
		c.ReservationID = uuid.NewString()
	}

	return model.Reservation{
		ReservationID: c.ReservationID,
		CustomerID:    c.CustomerID,
		HotelID:       c.HotelID,
	}
}

type ReservationResponse struct {
	ReservationID string `json:"reservation_id"`
	CustomerID    string `json:"customer_id"`
	HotelID       string `json:"hotel_id"`
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ReservationID = model.ReservationID
	r.CustomerID = model.CustomerID
	r.HotelID = model.HotelID
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation) {
	r.TotalData = len(models)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

// ReservationEvent is published after a reservation is created or cancelled.
type ReservationEvent struct {
	Type        string              `json:"type"`
	Reservation ReservationResponse `json:"reservation"`
	OccurredAt  time.Time           `json:"occurred_at"`
}
