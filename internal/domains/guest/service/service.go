package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"posada/config"
	"posada/infras/otel"
	"posada/internal/domains/guest/model/dto"
	"posada/internal/domains/guest/repository"
	"posada/shared"
	"posada/shared/cache"
	"posada/shared/constant"
	"posada/shared/failure"
)

const (
	cacheGetGuest    = "guest:get"
	cacheGetAllGuest = "guest:gets"
)

// Guest exposes the read-only guest surface.
type Guest interface {
	GetAll(ctx context.Context) (dto.GetGuestsResponse, error)
	Get(ctx context.Context, id string) (dto.GuestResponse, error)
}

type serviceImpl struct {
	repo  repository.Guest
	cfg   *config.Config
	cache cache.Cache
	otel  otel.Otel
}

func New(repo repository.Guest, cfg *config.Config, cache cache.Cache, otel otel.Otel) Guest {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllGuests")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllGuest, &res)
	if err == nil {
		return res, nil
	}

	guests, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list guests")

		return res, fmt.Errorf("failed to list guests: %w", err)
	}

	res.FromModels(guests)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllGuest, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guests to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetGuest")
	defer scope.End()

	cacheKey := shared.BuildCacheKey(cacheGetGuest, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	guest, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return res, failure.GuestNotFound
	}

	res.FromModel(guest)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest to cache")
		}
	}()

	return res, nil
}
