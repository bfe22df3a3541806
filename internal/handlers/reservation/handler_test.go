package reservation_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posada/config"
	"posada/infras/otel/mocks"
	guestModel "posada/internal/domains/guest/model"
	guestRepository "posada/internal/domains/guest/repository"
	"posada/internal/domains/reservation/model/dto"
	reservationRepository "posada/internal/domains/reservation/repository"
	reservationService "posada/internal/domains/reservation/service"
	roomModel "posada/internal/domains/room/model"
	roomRepository "posada/internal/domains/room/repository"
	"posada/internal/handlers/reservation"
	"posada/shared/cache"
	"posada/shared/calendar"
)

type testServer struct {
	server  *httptest.Server
	roomID  string
	guestID string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{}
	mockOtel := mocks.NewOtel()

	rooms := roomRepository.New(cfg, nil, mockOtel)
	guests := guestRepository.New(cfg, nil, mockOtel)
	reservations := reservationRepository.New(cfg, nil, mockOtel)

	ts := &testServer{
		roomID:  uuid.NewString(),
		guestID: uuid.NewString(),
	}

	ctx := context.Background()

	require.NoError(t, rooms.Insert(ctx, roomModel.Room{ID: ts.roomID, Number: "101", Type: "Single", NightlyRate: 75}))
	require.NoError(t, guests.Insert(ctx, guestModel.Guest{ID: ts.guestID, FullName: "Juan Pérez", Email: "juan.perez@example.com", Phone: "+1-809-000-0001"}))

	checker := reservationService.NewChecker(reservations, mockOtel)
	svc := reservationService.New(reservations, rooms, guests, checker, cfg, cache.NewNoop(), mockOtel)

	handler := reservation.New(svc, mockOtel)

	router := chi.NewRouter()
	router.Route("/v1", func(routerGroup chi.Router) {
		handler.Router(routerGroup)
	})

	ts.server = httptest.NewServer(router)
	t.Cleanup(ts.server.Close)

	return ts
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ts.server.URL+path, &buf)
	require.NoError(t, err)

	resp, err := ts.server.Client().Do(req)
	require.NoError(t, err)

	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	defer resp.Body.Close()

	var envelope struct {
		Data T `json:"data"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	return envelope.Data
}

func day(n int) string {
	return calendar.Format(calendar.Today().AddDate(0, 0, n))
}

func TestReservationHandler_Create(t *testing.T) {
	ts := newTestServer(t)

	body := dto.CreateReservationRequest{
		RoomID:   ts.roomID,
		GuestID:  ts.guestID,
		CheckIn:  day(10),
		CheckOut: day(12),
		Notes:    "sea view if possible",
	}

	resp := ts.do(t, http.MethodPost, "/v1/reservations", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	created := decode[dto.ReservationResponse](t, resp)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "101", created.RoomNumber)
	assert.Equal(t, "Juan Pérez", created.GuestName)
	assert.Equal(t, day(10), created.CheckIn)
	assert.Equal(t, "sea view if possible", created.Notes)
}

func TestReservationHandler_Create_Invalid(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name     string
		body     dto.CreateReservationRequest
		wantCode int
	}{
		{
			name: "missing room id",
			body: dto.CreateReservationRequest{
				GuestID:  ts.guestID,
				CheckIn:  day(10),
				CheckOut: day(12),
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "inverted dates",
			body: dto.CreateReservationRequest{
				RoomID:   ts.roomID,
				GuestID:  ts.guestID,
				CheckIn:  day(12),
				CheckOut: day(10),
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown room",
			body: dto.CreateReservationRequest{
				RoomID:   uuid.NewString(),
				GuestID:  ts.guestID,
				CheckIn:  day(10),
				CheckOut: day(12),
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.do(t, http.MethodPost, "/v1/reservations", tt.body)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantCode, resp.StatusCode)
		})
	}
}

func TestReservationHandler_Create_Conflict(t *testing.T) {
	ts := newTestServer(t)

	body := dto.CreateReservationRequest{
		RoomID:   ts.roomID,
		GuestID:  ts.guestID,
		CheckIn:  day(10),
		CheckOut: day(13),
	}

	resp := ts.do(t, http.MethodPost, "/v1/reservations", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	body.CheckIn = day(11)
	body.CheckOut = day(14)

	resp = ts.do(t, http.MethodPost, "/v1/reservations", body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var envelope struct {
		Error string `json:"error"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "room is already reserved for the selected date range", envelope.Error)
}

func TestReservationHandler_GetAndList(t *testing.T) {
	ts := newTestServer(t)

	body := dto.CreateReservationRequest{
		RoomID:   ts.roomID,
		GuestID:  ts.guestID,
		CheckIn:  day(10),
		CheckOut: day(12),
	}

	created := decode[dto.ReservationResponse](t, ts.do(t, http.MethodPost, "/v1/reservations", body))

	resp := ts.do(t, http.MethodGet, "/v1/reservations/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decode[dto.ReservationResponse](t, resp)
	assert.Equal(t, created, got)

	resp = ts.do(t, http.MethodGet, "/v1/reservations", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	listed := decode[dto.GetReservationsResponse](t, resp)
	assert.Equal(t, 1, listed.Total)

	resp = ts.do(t, http.MethodGet, "/v1/reservations/"+uuid.NewString(), nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReservationHandler_Update(t *testing.T) {
	ts := newTestServer(t)

	body := dto.CreateReservationRequest{
		RoomID:   ts.roomID,
		GuestID:  ts.guestID,
		CheckIn:  day(10),
		CheckOut: day(12),
	}

	created := decode[dto.ReservationResponse](t, ts.do(t, http.MethodPost, "/v1/reservations", body))

	update := dto.UpdateReservationRequest{
		RoomID:   ts.roomID,
		GuestID:  ts.guestID,
		CheckIn:  day(11),
		CheckOut: day(13),
		Notes:    "extended stay",
	}

	resp := ts.do(t, http.MethodPut, "/v1/reservations/"+created.ID, update)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	updated := decode[dto.ReservationResponse](t, resp)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, day(11), updated.CheckIn)
	assert.Equal(t, "extended stay", updated.Notes)

	resp = ts.do(t, http.MethodPut, fmt.Sprintf("/v1/reservations/%s", uuid.NewString()), update)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReservationHandler_Delete(t *testing.T) {
	ts := newTestServer(t)

	body := dto.CreateReservationRequest{
		RoomID:   ts.roomID,
		GuestID:  ts.guestID,
		CheckIn:  day(10),
		CheckOut: day(12),
	}

	created := decode[dto.ReservationResponse](t, ts.do(t, http.MethodPost, "/v1/reservations", body))

	resp := ts.do(t, http.MethodDelete, "/v1/reservations/"+created.ID, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = ts.do(t, http.MethodDelete, "/v1/reservations/"+created.ID, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
