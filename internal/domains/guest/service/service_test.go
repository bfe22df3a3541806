package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posada/config"
	"posada/infras/otel/mocks"
	"posada/internal/domains/guest/model"
	"posada/internal/domains/guest/repository"
	"posada/internal/domains/guest/service"
	"posada/shared/cache"
	"posada/shared/failure"
)

func TestGuestService(t *testing.T) {
	cfg := &config.Config{}
	mockOtel := mocks.NewOtel()
	repo := repository.New(cfg, nil, mockOtel)
	svc := service.New(repo, cfg, cache.NewNoop(), mockOtel)

	ctx := context.Background()

	guests := []model.Guest{
		{ID: uuid.NewString(), FullName: "María García", Email: "maria.garcia@example.com", Phone: "+1-809-000-0002"},
		{ID: uuid.NewString(), FullName: "Carlos López", Email: "carlos.lopez@example.com", Phone: "+1-809-000-0003"},
		{ID: uuid.NewString(), FullName: "Juan Pérez", Email: "juan.perez@example.com", Phone: "+1-809-000-0001"},
	}

	for _, guest := range guests {
		require.NoError(t, repo.Insert(ctx, guest))
	}

	res, err := svc.GetAll(ctx)
	require.NoError(t, err)

	// Registry lists alphabetically by name.
	require.Equal(t, 3, res.Total)
	assert.Equal(t, "Carlos López", res.Guests[0].FullName)
	assert.Equal(t, "Juan Pérez", res.Guests[1].FullName)
	assert.Equal(t, "María García", res.Guests[2].FullName)

	got, err := svc.Get(ctx, guests[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "María García", got.FullName)

	_, err = svc.Get(ctx, uuid.NewString())
	assert.Equal(t, failure.GuestNotFound, err)
}
