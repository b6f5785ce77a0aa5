package dto

import (
	"hotelsys/internal/domains/hotel/model"
	"hotelsys/shared"
)

type CreateHotelRequest struct {
	HotelID  string `json:"hotel_id" validate:"required"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Rooms    int    `json:"rooms"    validate:"min=0"`
}

func (c *CreateHotelRequest) ToModel() model.Hotel {
	return model.Hotel{
		HotelID:  c.HotelID,
		Name:     c.Name,
		Location: c.Location,
		Rooms:    c.Rooms,
	}
}

// UpdateHotelRequest names the fields to replace; nil fields are left untouched.
type UpdateHotelRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Rooms    *int    `json:"rooms"    validate:"omitnil,min=0"`
}

func (u *UpdateHotelRequest) IsEmpty() bool {
	return u.Name == nil && u.Location == nil && u.Rooms == nil
}

func (u *UpdateHotelRequest) ApplyTo(hotel *model.Hotel) {
	if u.Name != nil {
		hotel.Name = *u.Name
	}

	if u.Location != nil {
		hotel.Location = *u.Location
	}

	if u.Rooms != nil {
		hotel.Rooms = *u.Rooms
	}
}

func (u *UpdateHotelRequest) ChangedFields() map[string]any {
	return shared.TransformFields(u)
}

type HotelResponse struct {
	HotelID  string `json:"hotel_id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Rooms    int    `json:"rooms"`
}

func (r *HotelResponse) FromModel(model model.Hotel) {
	r.HotelID = model.HotelID
	r.Name = model.Name
	r.Location = model.Location
	r.Rooms = model.Rooms
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel) {
	r.TotalData = len(models)

	r.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		r.Hotels[i].FromModel(mod)
	}
}
