package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"posada/config"
	"posada/infras/otel"
	guestRepo "posada/internal/domains/guest/repository"
	"posada/internal/domains/reservation/model"
	"posada/internal/domains/reservation/model/dto"
	"posada/internal/domains/reservation/repository"
	roomRepo "posada/internal/domains/room/repository"
	"posada/shared"
	"posada/shared/cache"
	"posada/shared/calendar"
	"posada/shared/constant"
	"posada/shared/failure"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
)

// Reservation owns the reservation lifecycle: non-existent, active, deleted.
// Create and Update run the full validation chain and hold the room lock
// across the conflict check and the write. Validations run in order and the
// first failure wins.
type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context) (dto.GetReservationsResponse, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (dto.ReservationResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Reservation
	roomRepo  roomRepo.Room
	guestRepo guestRepo.Guest
	checker   *Checker
	locks     *roomLocks
	cfg       *config.Config
	cache     cache.Cache
	otel      otel.Otel
}

func New(
	repo repository.Reservation,
	rooms roomRepo.Room,
	guests guestRepo.Guest,
	checker *Checker,
	cfg *config.Config,
	cache cache.Cache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  rooms,
		guestRepo: guests,
		checker:   checker,
		locks:     newRoomLocks(),
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse reservation request")

		return res, failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
	}

	unlock := s.locks.Lock(reservation.RoomID)
	defer unlock()

	if err = s.validate(ctx, reservation, constant.Empty); err != nil {
		return res, err
	}

	// An aborted request must leave the store unchanged.
	if err = ctx.Err(); err != nil {
		return res, fmt.Errorf("request aborted before persist: %w", err)
	}

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	res = s.view(ctx, reservation)

	s.invalidate(ctx, reservation.ID)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllReservations")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllReservation, &res)
	if err == nil {
		return res, nil
	}

	reservations, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list reservations")

		return res, fmt.Errorf("failed to list reservations: %w", err)
	}

	res.Total = len(reservations)
	res.Reservations = make([]dto.ReservationResponse, len(reservations))

	for i, reservation := range reservations {
		res.Reservations[i] = s.view(ctx, reservation)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllReservation, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetReservation")
	defer scope.End()

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	reservation, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.ReservationNotFound
	}

	res = s.view(ctx, reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if reservation exists")

		return res, fmt.Errorf("failed to check if reservation exists: %w", err)
	}

	if !exist {
		return res, failure.ReservationNotFound
	}

	reservation, err := req.ToModel(id)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse reservation request")

		return res, failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
	}

	unlock := s.locks.Lock(reservation.RoomID)
	defer unlock()

	// The update sees past itself in the overlap check, so keeping the
	// same room and dates never double-books.
	if err = s.validate(ctx, reservation, id); err != nil {
		return res, err
	}

	if err = ctx.Err(); err != nil {
		return res, fmt.Errorf("request aborted before persist: %w", err)
	}

	if err = s.repo.Replace(ctx, id, reservation); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return res, failure.ReservationNotFound
		}

		log.Error().Err(err).Msg("failed to update reservation")

		return res, fmt.Errorf("failed to update reservation: %w", err)
	}

	res = s.view(ctx, reservation)

	s.invalidate(ctx, id)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteReservation")
	defer scope.End()

	// Deletion is unconditional once the reservation is found; nothing
	// references a reservation, so there is nothing to cascade.
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return failure.ReservationNotFound
		}

		log.Error().Err(err).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// validate runs the creation rules in order and returns the first failure:
// date range, past check-in, room existence, guest existence, then overlap.
func (s *serviceImpl) validate(ctx context.Context, r model.Reservation, excludeID string) error {
	if !r.CheckOut.After(r.CheckIn) {
		return failure.InvalidDateRange
	}

	if r.CheckIn.Before(calendar.Today()) {
		return failure.PastCheckIn
	}

	roomExists, err := s.roomRepo.Exist(ctx, r.RoomID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return failure.RoomNotFound
	}

	guestExists, err := s.guestRepo.Exist(ctx, r.GuestID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !guestExists {
		return failure.GuestNotFound
	}

	conflict, err := s.checker.HasConflict(ctx, r.RoomID, r.CheckIn, r.CheckOut, excludeID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check for conflicting reservations")

		return fmt.Errorf("failed to check for conflicting reservations: %w", err)
	}

	if conflict {
		return failure.DoubleBooked
	}

	return nil
}

// view builds the denormalized read projection. A dangling room or guest
// reference renders as an empty string rather than failing the read.
func (s *serviceImpl) view(ctx context.Context, reservation model.Reservation) dto.ReservationResponse {
	roomNumber := constant.Empty
	guestName := constant.Empty

	if room, err := s.roomRepo.Get(ctx, reservation.RoomID); err == nil {
		roomNumber = room.Number
	}

	if guest, err := s.guestRepo.Get(ctx, reservation.GuestID); err == nil {
		guestName = guest.FullName
	}

	res := dto.ReservationResponse{}
	res.FromModel(reservation, roomNumber, guestName)

	return res
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
	}()
}
