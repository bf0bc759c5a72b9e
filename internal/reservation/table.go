package reservation

import (
	"github.com/go-playground/validator/v10"

	"boarding-gate/internal/model"
)

// validate enforces the format rules declared on model.Reservation.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Table is the validated, immutable reservations index. It is built once at
// startup by ValidateAndIndex and is read-only afterwards, so it may be
// shared by reference across any number of boarding sessions without
// locking.
type Table struct {
	byCode  map[string]model.Reservation
	flights map[string]int // reservations per flight number
}

// ValidateAndIndex checks the raw records against the load-time invariants
// and builds the code-indexed table. Records are maps from column name to
// string value, as produced by the loader. The checks run in a fixed order
// and fail on the first violation:
//
//  1. every record carries all required columns (SchemaError)
//  2. no reservation code appears twice (DuplicateCodeError)
//  3. every reservation code is 6 uppercase alphanumerics (InvalidCodeFormatError)
//  4. every flight number is 4-6 uppercase alphanumerics (InvalidFlightNumberError)
//  5. within one flight no seat is assigned twice (DuplicateSeatError)
//
// The caller-supplied records are never mutated.
func ValidateAndIndex(records []map[string]string) (*Table, error) {
	for i, raw := range records {
		for _, col := range model.RequiredColumns {
			if raw[col] == "" {
				return nil, &SchemaError{Record: i, Column: col}
			}
		}
	}

	rows := make([]model.Reservation, len(records))
	for i, raw := range records {
		rows[i] = model.Reservation{
			PassengerName:   raw[model.ColPassengerName],
			FlightNumber:    raw[model.ColFlightNumber],
			ReservationCode: raw[model.ColReservationCode],
			TicketType:      raw[model.ColTicketType],
			Seat:            raw[model.ColSeat],
		}
	}

	byCode := make(map[string]model.Reservation, len(rows))
	for i, r := range rows {
		if _, seen := byCode[r.ReservationCode]; seen {
			return nil, &DuplicateCodeError{Code: r.ReservationCode, Record: i}
		}
		byCode[r.ReservationCode] = r
	}

	for i, r := range rows {
		if err := validate.StructPartial(r, "ReservationCode"); err != nil {
			return nil, &InvalidCodeFormatError{Code: r.ReservationCode, Record: i}
		}
	}
	for i, r := range rows {
		if err := validate.StructPartial(r, "FlightNumber"); err != nil {
			return nil, &InvalidFlightNumberError{FlightNumber: r.FlightNumber, Record: i}
		}
	}

	flights := make(map[string]int)
	seats := make(map[string]map[string]string) // flight -> seat -> first code
	for _, r := range rows {
		taken, ok := seats[r.FlightNumber]
		if !ok {
			taken = make(map[string]string)
			seats[r.FlightNumber] = taken
		}
		if first, dup := taken[r.Seat]; dup {
			return nil, &DuplicateSeatError{
				FlightNumber: r.FlightNumber,
				Seat:         r.Seat,
				FirstCode:    first,
				SecondCode:   r.ReservationCode,
			}
		}
		taken[r.Seat] = r.ReservationCode
		flights[r.FlightNumber]++
	}

	return &Table{byCode: byCode, flights: flights}, nil
}

// Lookup returns the reservation stored under code, if any.
func (t *Table) Lookup(code string) (model.Reservation, bool) {
	r, ok := t.byCode[code]
	return r, ok
}

// ExistsForFlight reports whether code belongs to a reservation on the
// given flight.
func (t *Table) ExistsForFlight(code, flightNumber string) bool {
	r, ok := t.byCode[code]
	return ok && r.FlightNumber == flightNumber
}

// HasFlight reports whether at least one reservation exists for the flight.
func (t *Table) HasFlight(flightNumber string) bool {
	return t.flights[flightNumber] > 0
}

// ReservationsForFlight returns the number of reservations on the flight.
func (t *Table) ReservationsForFlight(flightNumber string) int {
	return t.flights[flightNumber]
}

// Len returns the total number of reservations in the table.
func (t *Table) Len() int { return len(t.byCode) }

// ValidFlightNumber reports whether s satisfies the flight number format
// rule (4-6 uppercase alphanumerics). Front ends use it to reject a target
// flight before starting a session.
func ValidFlightNumber(s string) bool {
	return validate.StructPartial(model.Reservation{FlightNumber: s}, "FlightNumber") == nil
}
