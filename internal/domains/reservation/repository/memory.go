package repository

import (
	"context"
	"slices"
	"sync"

	"posada/internal/domains/reservation/model"
)

// memoryImpl keeps reservations in process memory. The RWMutex keeps every
// read a consistent snapshot; value-typed records mean callers never hold a
// reference into the store.
type memoryImpl struct {
	mu           sync.RWMutex
	reservations map[string]model.Reservation
}

func newMemory() *memoryImpl {
	return &memoryImpl{
		reservations: make(map[string]model.Reservation),
	}
}

func (repo *memoryImpl) Insert(_ context.Context, reservation model.Reservation) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.reservations[reservation.ID] = reservation

	return nil
}

func (repo *memoryImpl) Get(_ context.Context, id string) (model.Reservation, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return repo.reservations[id], nil
}

func (repo *memoryImpl) Exist(_ context.Context, id string) (bool, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	_, ok := repo.reservations[id]

	return ok, nil
}

func (repo *memoryImpl) List(_ context.Context) ([]model.Reservation, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	reservations := make([]model.Reservation, 0, len(repo.reservations))
	for _, reservation := range repo.reservations {
		reservations = append(reservations, reservation)
	}

	slices.SortFunc(reservations, func(a, b model.Reservation) int {
		return a.CheckIn.Compare(b.CheckIn)
	})

	return reservations, nil
}

func (repo *memoryImpl) ListForRoom(_ context.Context, roomID, excludeID string) ([]model.Reservation, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	reservations := []model.Reservation{}
	for _, reservation := range repo.reservations {
		if reservation.RoomID != roomID {
			continue
		}

		if excludeID != "" && reservation.ID == excludeID {
			continue
		}

		reservations = append(reservations, reservation)
	}

	return reservations, nil
}

func (repo *memoryImpl) Replace(_ context.Context, id string, reservation model.Reservation) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.reservations[id]; !ok {
		return ErrNotFound
	}

	reservation.ID = id
	repo.reservations[id] = reservation

	return nil
}

func (repo *memoryImpl) Delete(_ context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.reservations[id]; !ok {
		return ErrNotFound
	}

	delete(repo.reservations, id)

	return nil
}
