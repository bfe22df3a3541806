package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posada/config"
	"posada/infras/otel/mocks"
	"posada/internal/domains/room/model"
	"posada/internal/domains/room/repository"
	"posada/internal/domains/room/service"
	"posada/shared/cache"
	"posada/shared/failure"
)

func newService(t *testing.T) (service.Room, repository.Room) {
	t.Helper()

	cfg := &config.Config{}
	mockOtel := mocks.NewOtel()
	repo := repository.New(cfg, nil, mockOtel)

	return service.New(repo, cfg, cache.NewNoop(), mockOtel), repo
}

func TestRoomService_GetAll(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	// Insert out of order; the catalog lists by room number.
	rooms := []model.Room{
		{ID: uuid.NewString(), Number: "301", Type: "Suite", NightlyRate: 220},
		{ID: uuid.NewString(), Number: "101", Type: "Single", NightlyRate: 75},
		{ID: uuid.NewString(), Number: "201", Type: "Double", NightlyRate: 120},
	}

	for _, room := range rooms {
		require.NoError(t, repo.Insert(ctx, room))
	}

	res, err := svc.GetAll(ctx)
	require.NoError(t, err)

	require.Equal(t, 3, res.Total)
	assert.Equal(t, "101", res.Rooms[0].Number)
	assert.Equal(t, "201", res.Rooms[1].Number)
	assert.Equal(t, "301", res.Rooms[2].Number)
}

func TestRoomService_Get(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	room := model.Room{ID: uuid.NewString(), Number: "101", Type: "Single", NightlyRate: 75}
	require.NoError(t, repo.Insert(ctx, room))

	res, err := svc.Get(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, room.Number, res.Number)
	assert.Equal(t, room.NightlyRate, res.NightlyRate)

	_, err = svc.Get(ctx, uuid.NewString())
	assert.Equal(t, failure.RoomNotFound, err)
}
