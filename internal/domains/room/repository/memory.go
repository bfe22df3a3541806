package repository

import (
	"context"
	"slices"
	"strings"
	"sync"

	"posada/internal/domains/room/model"
)

// memoryImpl keeps rooms in process memory, guarded by a RWMutex so readers
// always observe a consistent snapshot.
type memoryImpl struct {
	mu    sync.RWMutex
	rooms map[string]model.Room
}

func newMemory() *memoryImpl {
	return &memoryImpl{
		rooms: make(map[string]model.Room),
	}
}

func (repo *memoryImpl) Insert(_ context.Context, room model.Room) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.rooms[room.ID] = room

	return nil
}

func (repo *memoryImpl) Exist(_ context.Context, id string) (bool, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	_, ok := repo.rooms[id]

	return ok, nil
}

func (repo *memoryImpl) Get(_ context.Context, id string) (model.Room, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return repo.rooms[id], nil
}

func (repo *memoryImpl) List(_ context.Context) ([]model.Room, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	rooms := make([]model.Room, 0, len(repo.rooms))
	for _, room := range repo.rooms {
		rooms = append(rooms, room)
	}

	slices.SortFunc(rooms, func(a, b model.Room) int {
		return strings.Compare(a.Number, b.Number)
	})

	return rooms, nil
}

func (repo *memoryImpl) Count(_ context.Context) (int, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return len(repo.rooms), nil
}
