// Package gate implements the boarding session: the stateful context that
// tracks which reservation codes have already been used while boarding one
// flight.
package gate

import (
	"time"

	"github.com/google/uuid"

	"boarding-gate/internal/model"
	"boarding-gate/internal/reservation"
)

// Session tracks boarding progress for a single flight. It owns its
// used-codes set exclusively; the reservations table is shared read-only.
// A session lives for one boarding process and is discarded afterwards.
type Session struct {
	id        string
	flight    string
	table     *reservation.Table
	used      map[string]struct{}
	startedAt time.Time
}

// NewSession starts a boarding session for the given flight against the
// validated table. A flight with zero reservations yields a valid session;
// callers should check ReservationCount and warn the operator rather than
// treat it as an error.
func NewSession(table *reservation.Table, flightNumber string) *Session {
	return &Session{
		id:        uuid.NewString(),
		flight:    flightNumber,
		table:     table,
		used:      make(map[string]struct{}),
		startedAt: time.Now().UTC(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Flight returns the flight number being boarded.
func (s *Session) Flight() string { return s.flight }

// StartedAt returns when the session was created.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// ReservationCount returns how many reservations exist for the session's
// flight.
func (s *Session) ReservationCount() int {
	return s.table.ReservationsForFlight(s.flight)
}

// BoardedCount returns how many codes have been accepted so far.
func (s *Session) BoardedCount() int { return len(s.used) }

// Scan evaluates one boarding pass scan. The rules apply in a fixed
// precedence order and the first failing rule decides the verdict:
//
//  1. unknown code  -> REJECTED_UNKNOWN_CODE
//  2. wrong flight  -> REJECTED_WRONG_FLIGHT (result carries the actual flight)
//  3. already used  -> REJECTED_DUPLICATE_SCAN
//  4. otherwise     -> ACCEPTED (result carries passenger name and seat)
//
// Only an accepted scan mutates the session: rejections leave the used set
// untouched, so a code denied here for the wrong flight can still board
// through a session for its own flight.
func (s *Session) Scan(code string) model.ScanResult {
	res, ok := s.table.Lookup(code)
	if !ok {
		return model.ScanResult{Code: code, Verdict: model.VerdictUnknownCode}
	}
	if res.FlightNumber != s.flight {
		return model.ScanResult{
			Code:         code,
			Verdict:      model.VerdictWrongFlight,
			ActualFlight: res.FlightNumber,
		}
	}
	if _, used := s.used[code]; used {
		return model.ScanResult{Code: code, Verdict: model.VerdictDuplicateScan}
	}
	s.used[code] = struct{}{}
	return model.ScanResult{
		Code:          code,
		Verdict:       model.VerdictAccepted,
		PassengerName: res.PassengerName,
		Seat:          res.Seat,
	}
}
