package handler

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"boarding-gate/internal/gate"
	"boarding-gate/internal/model"
	"boarding-gate/internal/monitoring"
	"boarding-gate/internal/queue"
	"boarding-gate/internal/reservation"
)

// ScanPublisher publishes scan events to the message broker. The handler
// treats publishing as best-effort: failures are logged by the publisher
// and never affect the scan verdict.
type ScanPublisher interface {
	PublishScan(ctx context.Context, event queue.ScanEvent) error
}

// GateHandler exposes the boarding gate over HTTP. It owns the open
// sessions; the reservations table is shared read-only with every session.
// The mutex only guards the sessions map and the session being scanned —
// the table itself needs no locking after validation.
type GateHandler struct {
	table     *reservation.Table
	monitor   *monitoring.Monitor
	publisher ScanPublisher // may be nil when events are disabled

	mu       sync.Mutex
	sessions map[string]*gate.Session
}

// NewGateHandler constructs a GateHandler. The table and monitor must be
// non-nil; the publisher may be nil to disable scan events.
func NewGateHandler(table *reservation.Table, monitor *monitoring.Monitor, publisher ScanPublisher) *GateHandler {
	if table == nil || monitor == nil {
		panic("nil dependency passed to NewGateHandler")
	}
	return &GateHandler{
		table:     table,
		monitor:   monitor,
		publisher: publisher,
		sessions:  make(map[string]*gate.Session),
	}
}

// CreateSession handles POST /v1/sessions. The request body must contain a
// JSON object with a "flight_number" string; lowercase input is accepted
// and upcased. It returns 201 with the session ID and the number of
// reservations on the flight. A flight with zero reservations still gets a
// session, flagged with a warning so the agent can spot a typo before
// scanning starts.
func (h *GateHandler) CreateSession(c echo.Context) error {
	var body struct {
		FlightNumber string `json:"flight_number"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	flight := strings.ToUpper(strings.TrimSpace(body.FlightNumber))
	if !reservation.ValidFlightNumber(flight) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "flight number must be 4-6 uppercase alphanumeric characters"})
	}

	s := gate.NewSession(h.table, flight)

	h.mu.Lock()
	h.sessions[s.ID()] = s
	open := len(h.sessions)
	h.mu.Unlock()
	h.monitor.SetActiveSessions(open)

	resp := echo.Map{
		"session_id":    s.ID(),
		"flight_number": s.Flight(),
		"reservations":  s.ReservationCount(),
	}
	if s.ReservationCount() == 0 {
		resp["warning"] = "no reservations for this flight"
	}
	return c.JSON(http.StatusCreated, resp)
}

// GetSession handles GET /v1/sessions/:id and reports boarding progress.
func (h *GateHandler) GetSession(c echo.Context) error {
	h.mu.Lock()
	s, ok := h.sessions[c.Param("id")]
	h.mu.Unlock()
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"session_id":    s.ID(),
		"flight_number": s.Flight(),
		"reservations":  s.ReservationCount(),
		"boarded":       s.BoardedCount(),
		"started_at":    s.StartedAt(),
	})
}

// ScanCode handles POST /v1/sessions/:id/scan. The body must contain a
// JSON object with a "code" string. Every scan gets a 200 response with
// the structured verdict; a rejection is a normal outcome, not an HTTP
// error. The scan is also counted in the metrics and, when a publisher is
// configured, emitted as a gate.scanned event.
func (h *GateHandler) ScanCode(c echo.Context) error {
	var body struct {
		Code string `json:"code"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	code := strings.TrimSpace(body.Code)
	if code == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "code is required"})
	}

	h.mu.Lock()
	s, ok := h.sessions[c.Param("id")]
	if !ok {
		h.mu.Unlock()
		return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
	}
	result := s.Scan(code)
	h.mu.Unlock()

	h.monitor.TrackScan(string(result.Verdict), s.Flight())
	if h.publisher != nil {
		ev := queue.ScanEvent{
			SessionID:     s.ID(),
			FlightNumber:  s.Flight(),
			Code:          result.Code,
			Verdict:       string(result.Verdict),
			PassengerName: result.PassengerName,
			Seat:          result.Seat,
			ActualFlight:  result.ActualFlight,
			ScannedAt:     time.Now().UTC().Format(time.RFC3339),
		}
		// Publish off the request path; a slow broker must not hold up the gate.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = h.publisher.PublishScan(ctx, ev)
		}()
	}

	return c.JSON(http.StatusOK, scanResponse(result))
}

// EndSession handles DELETE /v1/sessions/:id. Boarding for the flight is
// over; the used-codes set is discarded with the session.
func (h *GateHandler) EndSession(c echo.Context) error {
	h.mu.Lock()
	_, ok := h.sessions[c.Param("id")]
	if ok {
		delete(h.sessions, c.Param("id"))
	}
	open := len(h.sessions)
	h.mu.Unlock()
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
	}
	h.monitor.SetActiveSessions(open)
	return c.NoContent(http.StatusNoContent)
}

func scanResponse(r model.ScanResult) echo.Map {
	resp := echo.Map{
		"code":    r.Code,
		"verdict": r.Verdict,
		"allowed": r.Verdict.Allowed(),
	}
	switch r.Verdict {
	case model.VerdictAccepted:
		resp["passenger_name"] = r.PassengerName
		resp["seat"] = r.Seat
	case model.VerdictWrongFlight:
		resp["actual_flight"] = r.ActualFlight
	}
	return resp
}
