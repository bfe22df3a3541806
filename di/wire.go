//go:build wireinject
// +build wireinject

package di

import (
	"posada/config"
	"posada/infras/otel"
	"posada/infras/postgres"
	"posada/internal/seed"
	"posada/shared/cache"
	"posada/transport/http"
	"posada/transport/http/middleware"
	"posada/transport/http/router"

	"github.com/google/wire"

	guestRepository "posada/internal/domains/guest/repository"
	guestService "posada/internal/domains/guest/service"
	reservationRepository "posada/internal/domains/reservation/repository"
	reservationService "posada/internal/domains/reservation/service"
	roomRepository "posada/internal/domains/room/repository"
	roomService "posada/internal/domains/room/service"

	guestHandler "posada/internal/handlers/guest"
	reservationHandler "posada/internal/handlers/reservation"
	roomHandler "posada/internal/handlers/room"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.NewChecker,
	reservationService.New,
)

var domains = wire.NewSet(
	roomDomain,
	guestDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	guestHandler.New,
	reservationHandler.New,
	router.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		seed.New,
		NewApp,
	)

	return &App{}
}
