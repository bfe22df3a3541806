package model_test

import (
	"testing"
	"time"

	"posada/internal/domains/reservation/model"
)

func date(day int) time.Time {
	return time.Date(2026, time.June, day, 0, 0, 0, 0, time.UTC)
}

func TestReservation_Overlaps(t *testing.T) {
	r := model.Reservation{
		CheckIn:  date(10),
		CheckOut: date(13),
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{name: "identical", checkIn: date(10), checkOut: date(13), want: true},
		{name: "starts inside", checkIn: date(12), checkOut: date(15), want: true},
		{name: "ends inside", checkIn: date(8), checkOut: date(11), want: true},
		{name: "contained", checkIn: date(11), checkOut: date(12), want: true},
		{name: "surrounds", checkIn: date(8), checkOut: date(15), want: true},
		{name: "starts on check-out day", checkIn: date(13), checkOut: date(15), want: false},
		{name: "ends on check-in day", checkIn: date(8), checkOut: date(10), want: false},
		{name: "entirely before", checkIn: date(1), checkOut: date(5), want: false},
		{name: "entirely after", checkIn: date(20), checkOut: date(25), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Overlaps(tt.checkIn, tt.checkOut); got != tt.want {
				t.Errorf("Overlaps(%s, %s) = %v, want %v", tt.checkIn, tt.checkOut, got, tt.want)
			}
		})
	}
}
