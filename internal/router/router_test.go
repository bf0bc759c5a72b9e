package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boarding-gate/internal/handler"
	"boarding-gate/internal/model"
	"boarding-gate/internal/monitoring"
	"boarding-gate/internal/reservation"
)

func noLimit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error { return next(c) }
}

func newApp(t *testing.T) *echo.Echo {
	t.Helper()
	table, err := reservation.ValidateAndIndex([]map[string]string{
		{
			model.ColPassengerName:   "Jane Doe",
			model.ColFlightNumber:    "AA123",
			model.ColReservationCode: "ABC123",
			model.ColTicketType:      "ECONOMY",
			model.ColSeat:            "12A",
		},
	})
	require.NoError(t, err)

	e := echo.New()
	RegisterRoutes(e)
	RegisterGate(e, handler.NewGateHandler(table, monitoring.NewMonitor(), nil), noLimit)
	return e
}

func TestHealthz(t *testing.T) {
	e := newApp(t)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestMetricsExposed(t *testing.T) {
	e := newApp(t)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gate_reservations_loaded")
}

func TestSessionRoutesWired(t *testing.T) {
	e := newApp(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/sessions", strings.NewReader(`{"flight_number":"AA123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sessions/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
