package reservation

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"posada/infras/otel"
	"posada/internal/domains/reservation/model/dto"
	"posada/internal/domains/reservation/service"
	"posada/shared/constant"
	"posada/shared/validator"
	"posada/transport/http/response"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Get("/{id}", handler.GetReservationByID)
		routerGroup.Put("/{id}", handler.UpdateReservation)
		routerGroup.Delete("/{id}", handler.DeleteReservation)
	})
}

// CreateReservation books a room for a guest.
// @Summary Create a new reservation
// @Description Book a room for a guest over a date range. The check-out day is
// @Description not occupied, so back-to-back stays on the same room are allowed.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param reservation body dto.CreateReservationRequest true "Reservation details"
// @Success 201 {object} response.Data[dto.ReservationResponse] "Created reservation"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [post]
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	var req dto.CreateReservationRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	reservation, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation created successfully")

	response.WithJSON(w, http.StatusCreated, reservation)
}

// GetReservations retrieves all reservations.
// @Summary Get all reservations
// @Description Retrieve all reservations ordered by check-in date, each with
// @Description the room number and guest name denormalized in.
// @Tags Reservation
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "List of reservations"
// @Failure 500 {object} response.Error
// @Router /v1/reservations [get]
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	reservations, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetReservationByID retrieves a reservation by its ID.
// @Summary Get a reservation by ID
// @Description Retrieve a reservation by its unique identifier.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [get]
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	reservation, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reservation)
}

// UpdateReservation replaces an existing reservation.
// @Summary Update a reservation
// @Description Replace a reservation's room, guest, dates and notes. The new
// @Description dates are validated against every other reservation on the room.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param reservation body dto.UpdateReservationRequest true "Reservation details"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Updated reservation"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [put]
func (handler *Handler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateReservationRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	reservation, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation updated successfully")

	response.WithJSON(w, http.StatusOK, reservation)
}

// DeleteReservation cancels a reservation.
// @Summary Delete a reservation
// @Description Delete a reservation by its unique identifier.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 204 "Reservation deleted"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [delete]
func (handler *Handler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation deleted successfully")

	response.WithNoContent(w)
}
