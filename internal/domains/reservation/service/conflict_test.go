package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"posada/infras/otel/mocks"
	"posada/internal/domains/reservation/model"
	reservationMocks "posada/internal/domains/reservation/mocks"
	"posada/internal/domains/reservation/service"
	"posada/shared/calendar"
)

func TestChecker_HasConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roomID := uuid.NewString()

	day := func(n int) string {
		return calendar.Format(calendar.Today().AddDate(0, 0, n))
	}

	existing := model.Reservation{
		ID:     uuid.NewString(),
		RoomID: roomID,
	}
	existing.CheckIn, _ = calendar.Parse(day(10))
	existing.CheckOut, _ = calendar.Parse(day(13))

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	checker := service.NewChecker(mockRepo, mocks.NewOtel())

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     bool
	}{
		{name: "overlapping", checkIn: day(11), checkOut: day(14), want: true},
		{name: "touching at check-out", checkIn: day(13), checkOut: day(15), want: false},
		{name: "touching at check-in", checkIn: day(8), checkOut: day(10), want: false},
		{name: "disjoint", checkIn: day(20), checkOut: day(21), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.EXPECT().
				ListForRoom(gomock.Any(), roomID, "").
				Return([]model.Reservation{existing}, nil)

			checkIn, err := calendar.Parse(tt.checkIn)
			require.NoError(t, err)

			checkOut, err := calendar.Parse(tt.checkOut)
			require.NoError(t, err)

			got, err := checker.HasConflict(context.Background(), roomID, checkIn, checkOut, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
