package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posada/internal/domains/reservation/model"
	"posada/internal/domains/reservation/model/dto"
)

func TestCreateReservationRequest_ToModel(t *testing.T) {
	req := dto.CreateReservationRequest{
		RoomID:   "room-1",
		GuestID:  "guest-1",
		CheckIn:  "2026-06-10",
		CheckOut: "2026-06-12",
		Notes:    "late arrival",
	}

	m, err := req.ToModel()
	require.NoError(t, err)

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "room-1", m.RoomID)
	assert.Equal(t, "guest-1", m.GuestID)
	assert.Equal(t, time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC), m.CheckIn)
	assert.Equal(t, time.Date(2026, time.June, 12, 0, 0, 0, 0, time.UTC), m.CheckOut)
	assert.Equal(t, "late arrival", m.Notes)

	req.CheckIn = "June 10th 2026"
	_, err = req.ToModel()
	assert.Error(t, err)
}

func TestUpdateReservationRequest_ToModel_KeepsID(t *testing.T) {
	req := dto.UpdateReservationRequest{
		RoomID:   "room-1",
		GuestID:  "guest-1",
		CheckIn:  "2026-06-10",
		CheckOut: "2026-06-12",
	}

	m, err := req.ToModel("existing-id")
	require.NoError(t, err)
	assert.Equal(t, "existing-id", m.ID)
}

func TestReservationResponse_FromModel(t *testing.T) {
	m := model.Reservation{
		ID:       "res-1",
		RoomID:   "room-1",
		GuestID:  "guest-1",
		CheckIn:  time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, time.June, 12, 0, 0, 0, 0, time.UTC),
	}

	var res dto.ReservationResponse
	res.FromModel(m, "101", "Juan Pérez")

	assert.Equal(t, "2026-06-10", res.CheckIn)
	assert.Equal(t, "2026-06-12", res.CheckOut)
	assert.Equal(t, "101", res.RoomNumber)
	assert.Equal(t, "Juan Pérez", res.GuestName)

	// Dangling references render as empty strings.
	res.FromModel(m, "", "")
	assert.Empty(t, res.RoomNumber)
	assert.Empty(t, res.GuestName)
}
