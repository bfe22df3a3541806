// Package seed loads the starter room catalog and guest registry so a fresh
// deployment is bookable without any manual data entry.
package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"posada/config"
	guestModel "posada/internal/domains/guest/model"
	guestRepo "posada/internal/domains/guest/repository"
	roomModel "posada/internal/domains/room/model"
	roomRepo "posada/internal/domains/room/repository"
)

type Seeder struct {
	rooms  roomRepo.Room
	guests guestRepo.Guest
	cfg    *config.Config
}

func New(rooms roomRepo.Room, guests guestRepo.Guest, cfg *config.Config) *Seeder {
	return &Seeder{
		rooms:  rooms,
		guests: guests,
		cfg:    cfg,
	}
}

// Run inserts the starter data once. A store that already holds rooms is
// left untouched, so restarts never duplicate the catalog.
func (s *Seeder) Run(ctx context.Context) error {
	if !s.cfg.App.Seed {
		log.Info().Msg("Seeding disabled, skipping")

		return nil
	}

	count, err := s.rooms.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count rooms: %w", err)
	}

	if count > 0 {
		log.Info().Int("rooms", count).Msg("Store already seeded, skipping")

		return nil
	}

	for _, room := range starterRooms() {
		if err := s.rooms.Insert(ctx, room); err != nil {
			return fmt.Errorf("failed to seed room %s: %w", room.Number, err)
		}
	}

	for _, guest := range starterGuests() {
		if err := s.guests.Insert(ctx, guest); err != nil {
			return fmt.Errorf("failed to seed guest %s: %w", guest.FullName, err)
		}
	}

	log.Info().Msg("Seeded starter rooms and guests")

	return nil
}

func starterRooms() []roomModel.Room {
	return []roomModel.Room{
		{ID: uuid.NewString(), Number: "101", Type: "Single", NightlyRate: 75},
		{ID: uuid.NewString(), Number: "102", Type: "Single", NightlyRate: 80},
		{ID: uuid.NewString(), Number: "201", Type: "Double", NightlyRate: 120},
		{ID: uuid.NewString(), Number: "202", Type: "Double", NightlyRate: 130},
		{ID: uuid.NewString(), Number: "301", Type: "Suite", NightlyRate: 220},
	}
}

func starterGuests() []guestModel.Guest {
	return []guestModel.Guest{
		{ID: uuid.NewString(), FullName: "Juan Pérez", Email: "juan.perez@example.com", Phone: "+1-809-000-0001"},
		{ID: uuid.NewString(), FullName: "María García", Email: "maria.garcia@example.com", Phone: "+1-809-000-0002"},
		{ID: uuid.NewString(), FullName: "Carlos López", Email: "carlos.lopez@example.com", Phone: "+1-809-000-0003"},
	}
}
