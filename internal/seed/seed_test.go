package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posada/config"
	"posada/infras/otel/mocks"
	guestRepository "posada/internal/domains/guest/repository"
	roomRepository "posada/internal/domains/room/repository"
	"posada/internal/seed"
)

func TestSeeder_Run(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Seed = true

	mockOtel := mocks.NewOtel()
	rooms := roomRepository.New(cfg, nil, mockOtel)
	guests := guestRepository.New(cfg, nil, mockOtel)

	seeder := seed.New(rooms, guests, cfg)
	ctx := context.Background()

	require.NoError(t, seeder.Run(ctx))

	roomCount, err := rooms.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, roomCount)

	guestCount, err := guests.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, guestCount)

	// Running again must not duplicate the catalog.
	require.NoError(t, seeder.Run(ctx))

	roomCount, err = rooms.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, roomCount)
}

func TestSeeder_Disabled(t *testing.T) {
	cfg := &config.Config{}

	mockOtel := mocks.NewOtel()
	rooms := roomRepository.New(cfg, nil, mockOtel)
	guests := guestRepository.New(cfg, nil, mockOtel)

	seeder := seed.New(rooms, guests, cfg)

	require.NoError(t, seeder.Run(context.Background()))

	count, err := rooms.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}
