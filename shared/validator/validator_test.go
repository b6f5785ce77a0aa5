package validator_test

import (
	"testing"

	"hotelsys/shared/failure"
	"hotelsys/shared/validator"

	"github.com/stretchr/testify/assert"
)

type guestForm struct {
	ID    string `json:"guest_id" validate:"required"`
	Email string `json:"email"`
	Rooms int    `json:"rooms"    validate:"min=0"`
	Code  string `json:"code"     validate:"omitempty,len=3"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    guestForm
		wantMsg string
		partial bool
	}{
		{
			name: "valid struct",
			data: guestForm{ID: "G1", Email: "ana@mail.com", Rooms: 2},
		},
		{
			name: "free-form values are accepted",
			data: guestForm{ID: "Guest 1", Email: "ana at mail"},
		},
		{
			name:    "missing id",
			data:    guestForm{Email: "ana@mail.com"},
			wantMsg: "guest_id is required",
		},
		{
			name:    "negative rooms",
			data:    guestForm{ID: "G1", Rooms: -1},
			wantMsg: "rooms must be greater than or equal to 0",
		},
		{
			name:    "every violated field is reported",
			data:    guestForm{Rooms: -2},
			wantMsg: "guest_id is required; rooms must be greater than or equal to 0",
		},
		{
			name:    "rule without a message falls back to the validator text",
			data:    guestForm{ID: "G1", Code: "ABCD"},
			wantMsg: "failed on the 'len' tag",
			partial: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			if tt.partial {
				assert.ErrorContains(t, err, tt.wantMsg)
			} else {
				assert.EqualError(t, err, tt.wantMsg)
			}

			assert.True(t, failure.Is(err, failure.KindBadRequest))
		})
	}
}
