package repository

import (
	"context"
	"slices"
	"strings"
	"sync"

	"posada/internal/domains/guest/model"
)

type memoryImpl struct {
	mu     sync.RWMutex
	guests map[string]model.Guest
}

func newMemory() *memoryImpl {
	return &memoryImpl{
		guests: make(map[string]model.Guest),
	}
}

func (repo *memoryImpl) Insert(_ context.Context, guest model.Guest) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.guests[guest.ID] = guest

	return nil
}

func (repo *memoryImpl) Exist(_ context.Context, id string) (bool, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	_, ok := repo.guests[id]

	return ok, nil
}

func (repo *memoryImpl) Get(_ context.Context, id string) (model.Guest, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return repo.guests[id], nil
}

func (repo *memoryImpl) List(_ context.Context) ([]model.Guest, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	guests := make([]model.Guest, 0, len(repo.guests))
	for _, guest := range repo.guests {
		guests = append(guests, guest)
	}

	slices.SortFunc(guests, func(a, b model.Guest) int {
		return strings.Compare(a.FullName, b.FullName)
	})

	return guests, nil
}

func (repo *memoryImpl) Count(_ context.Context) (int, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return len(repo.guests), nil
}
