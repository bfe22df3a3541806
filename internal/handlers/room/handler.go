package room

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"posada/infras/otel"
	"posada/internal/domains/room/service"
	"posada/shared/constant"
	"posada/transport/http/response"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
	})
}

// GetRooms retrieves the room catalog.
// @Summary Get all rooms
// @Description Retrieve all rooms ordered by room number.
// @Tags Room
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	rooms, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Description Retrieve a room by its unique identifier.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}
