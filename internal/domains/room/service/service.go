package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"posada/config"
	"posada/infras/otel"
	"posada/internal/domains/room/model/dto"
	"posada/internal/domains/room/repository"
	"posada/shared"
	"posada/shared/cache"
	"posada/shared/constant"
	"posada/shared/failure"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
)

// Room exposes the read-only room surface. Rooms are created at bootstrap and
// never mutated through the public API.
type Room interface {
	GetAll(ctx context.Context) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.Cache
	otel  otel.Otel
}

func New(repo repository.Room, cfg *config.Config, cache cache.Cache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllRoom, &res)
	if err == nil {
		return res, nil
	}

	rooms, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list rooms")

		return res, fmt.Errorf("failed to list rooms: %w", err)
	}

	res.FromModels(rooms)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllRoom, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoom")
	defer scope.End()

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	room, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.RoomNotFound
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}
