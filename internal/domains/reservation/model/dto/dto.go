package dto

import (
	"github.com/google/uuid"

	"posada/internal/domains/reservation/model"
	"posada/shared/calendar"
)

type CreateReservationRequest struct {
	RoomID   string `json:"room_id"   validate:"required"`
	GuestID  string `json:"guest_id"  validate:"required"`
	CheckIn  string `json:"check_in"  validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
	Notes    string `json:"notes"     validate:"omitempty,max=500"`
}

func (c *CreateReservationRequest) ToModel() (model.Reservation, error) {
	checkIn, err := calendar.Parse(c.CheckIn)
	if err != nil {
		return model.Reservation{}, err
	}

	checkOut, err := calendar.Parse(c.CheckOut)
	if err != nil {
		return model.Reservation{}, err
	}

	return model.Reservation{
		ID:       uuid.NewString(),
		RoomID:   c.RoomID,
		GuestID:  c.GuestID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Notes:    c.Notes,
	}, nil
}

// UpdateReservationRequest fully replaces a reservation: room, guest, dates
// and notes are all re-validated against the same rules as creation.
type UpdateReservationRequest struct {
	RoomID   string `json:"room_id"   validate:"required"`
	GuestID  string `json:"guest_id"  validate:"required"`
	CheckIn  string `json:"check_in"  validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
	Notes    string `json:"notes"     validate:"omitempty,max=500"`
}

func (u *UpdateReservationRequest) ToModel(id string) (model.Reservation, error) {
	checkIn, err := calendar.Parse(u.CheckIn)
	if err != nil {
		return model.Reservation{}, err
	}

	checkOut, err := calendar.Parse(u.CheckOut)
	if err != nil {
		return model.Reservation{}, err
	}

	return model.Reservation{
		ID:       id,
		RoomID:   u.RoomID,
		GuestID:  u.GuestID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Notes:    u.Notes,
	}, nil
}

// ReservationResponse is the read view: the referenced room number and guest
// name are denormalized in at read time, empty when the reference is missing.
type ReservationResponse struct {
	ID         string `json:"id"`
	RoomID     string `json:"room_id"`
	RoomNumber string `json:"room_number"`
	GuestID    string `json:"guest_id"`
	GuestName  string `json:"guest_name"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Notes      string `json:"notes"`
}

func (r *ReservationResponse) FromModel(model model.Reservation, roomNumber, guestName string) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.RoomNumber = roomNumber
	r.GuestID = model.GuestID
	r.GuestName = guestName
	r.CheckIn = calendar.Format(model.CheckIn)
	r.CheckOut = calendar.Format(model.CheckOut)
	r.Notes = model.Notes
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}
