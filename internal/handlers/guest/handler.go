package guest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"posada/infras/otel"
	"posada/internal/domains/guest/service"
	"posada/shared/constant"
	"posada/transport/http/response"
)

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetGuests)
		routerGroup.Get("/{id}", handler.GetGuestByID)
	})
}

// GetGuests retrieves the guest registry.
// @Summary Get all guests
// @Description Retrieve all guests ordered by full name.
// @Tags Guest
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetGuestsResponse] "List of guests"
// @Failure 500 {object} response.Error
// @Router /v1/guests [get]
func (handler *Handler) GetGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuests")
	defer scope.End()

	guests, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, guests)
}

// GetGuestByID retrieves a guest by its ID.
// @Summary Get a guest by ID
// @Description Retrieve a guest by its unique identifier.
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} response.Data[dto.GuestResponse] "Guest details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests/{id} [get]
func (handler *Handler) GetGuestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	guest, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, guest)
}
