package model

import "hotelsys/shared/constant"

const (
	CollectionName = constant.CollectionReservations
	EntityName     = "reservation"

	FieldID         = "reservation_id"
	FieldCustomerID = "customer_id"
	FieldHotelID    = "hotel_id"
)

// Reservation holds one room of HotelID for CustomerID. Both references are
// checked when the reservation is created and never afterwards.
type Reservation struct {
	ReservationID string `json:"reservation_id"`
	CustomerID    string `json:"customer_id"`
	HotelID       string `json:"hotel_id"`
}

func (r Reservation) Key() string {
	return r.ReservationID
}
