package service

import (
	"context"
	"fmt"
	"time"

	"posada/infras/otel"
	"posada/internal/domains/reservation/repository"
	"posada/shared/constant"
)

// Checker decides whether a proposed stay collides with an existing
// reservation for the same room. It always reads the record store directly,
// never a cache, so the decision reflects committed state.
type Checker struct {
	repo repository.Reservation
	otel otel.Otel
}

func NewChecker(repo repository.Reservation, ot otel.Otel) *Checker {
	return &Checker{
		repo: repo,
		otel: ot,
	}
}

// HasConflict reports whether any reservation holding roomID overlaps the
// half-open range [checkIn, checkOut). excludeID lets an update see past the
// reservation it is replacing. The scan is linear in the room's reservations;
// inverted and empty ranges are rejected by the caller before this runs.
func (c *Checker) HasConflict(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeID string) (bool, error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HasConflict")
	defer scope.End()

	others, err := c.repo.ListForRoom(ctx, roomID, excludeID)
	if err != nil {
		return false, fmt.Errorf("failed to list reservations for room: %w", err)
	}

	for _, other := range others {
		if other.Overlaps(checkIn, checkOut) {
			return true, nil
		}
	}

	return false, nil
}
