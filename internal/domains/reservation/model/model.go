package model

import (
	"time"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID       = "id"
	FieldRoomID   = "room_id"
	FieldGuestID  = "guest_id"
	FieldCheckIn  = "check_in"
	FieldCheckOut = "check_out"
	FieldNotes    = "notes"
)

// Reservation books a room for a guest over the half-open date interval
// [CheckIn, CheckOut). CheckOut is the departure day; a stay covers at least
// one night.
type Reservation struct {
	ID       string    `db:"id"`
	RoomID   string    `db:"room_id"`
	GuestID  string    `db:"guest_id"`
	CheckIn  time.Time `db:"check_in"`
	CheckOut time.Time `db:"check_out"`
	Notes    string    `db:"notes"`
}

// Overlaps reports whether the proposed range [checkIn, checkOut) intersects
// this reservation's interval: checkIn < r.CheckOut && checkOut > r.CheckIn.
// A stay ending on the day another begins does not overlap, so back-to-back
// bookings on the same day are legal.
func (r Reservation) Overlaps(checkIn, checkOut time.Time) bool {
	return checkIn.Before(r.CheckOut) && checkOut.After(r.CheckIn)
}
