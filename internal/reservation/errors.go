// Package reservation builds the validated in-memory reservations table.
// This file defines the error types raised when the raw input violates one
// of the load-time invariants. All of them are fatal: callers are expected
// to surface the message verbatim to the operator and halt, since the
// source data must be fixed before boarding can start. Record positions
// are zero-based indexes into the raw input.
package reservation

import "fmt"

// SchemaError is returned when a record is missing one of the required
// columns, or carries it with an empty value.
type SchemaError struct {
	Record int
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("record %d: missing required column %q", e.Record, e.Column)
}

// DuplicateCodeError is returned when two records share a reservation code.
// Record is the position of the second occurrence.
type DuplicateCodeError struct {
	Code   string
	Record int
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("record %d: duplicate reservation code %q", e.Record, e.Code)
}

// InvalidCodeFormatError is returned when a reservation code is not a
// 6 character uppercase alphanumeric string.
type InvalidCodeFormatError struct {
	Code   string
	Record int
}

func (e *InvalidCodeFormatError) Error() string {
	return fmt.Sprintf("record %d: reservation code %q is not a 6 character uppercase alphanumeric string", e.Record, e.Code)
}

// InvalidFlightNumberError is returned when a flight number is not a
// 4-6 character uppercase alphanumeric string.
type InvalidFlightNumberError struct {
	FlightNumber string
	Record       int
}

func (e *InvalidFlightNumberError) Error() string {
	return fmt.Sprintf("record %d: flight number %q is not a 4-6 character uppercase alphanumeric string", e.Record, e.FlightNumber)
}

// DuplicateSeatError is returned when two reservations on the same flight
// are assigned the same seat. Both offending codes are included so the
// operator can locate the rows.
type DuplicateSeatError struct {
	FlightNumber string
	Seat         string
	FirstCode    string
	SecondCode   string
}

func (e *DuplicateSeatError) Error() string {
	return fmt.Sprintf("flight %s: seat %q assigned to both %s and %s", e.FlightNumber, e.Seat, e.FirstCode, e.SecondCode)
}
