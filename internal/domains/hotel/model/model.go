package model

import "hotelsys/shared/constant"

const (
	CollectionName = constant.CollectionHotels
	EntityName     = "hotel"

	FieldID       = "hotel_id"
	FieldName     = "name"
	FieldLocation = "location"
	FieldRooms    = "rooms"
)

// Hotel is a stored hotel. Rooms counts the rooms currently available.
type Hotel struct {
	HotelID  string `json:"hotel_id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Rooms    int    `json:"rooms"`
}

func (h Hotel) Key() string {
	return h.HotelID
}
