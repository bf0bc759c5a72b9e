// Package model defines the data types shared between the loader, the
// reservation table and the boarding gate session.
package model

// Column names required on every raw record supplied by the loader.
const (
	ColPassengerName   = "passenger_name"
	ColFlightNumber    = "flight_number"
	ColReservationCode = "reservation_code"
	ColTicketType      = "ticket_type"
	ColSeat            = "seat"
)

// RequiredColumns lists the five columns a raw record must carry, in the
// order they are reported when missing.
var RequiredColumns = []string{
	ColPassengerName,
	ColFlightNumber,
	ColReservationCode,
	ColTicketType,
	ColSeat,
}

// Reservation is one row of the reservations table.
//
// Fields:
//
//	PassengerName   – free-text passenger name.
//	FlightNumber    – 4–6 character uppercase alphanumeric flight identifier.
//	ReservationCode – 6 character uppercase alphanumeric code, unique per
//	                  reservation and used as the table's primary key.
//	TicketType      – ticket category (e.g. "General", "ECONOMY"); not
//	                  constrained beyond being present.
//	Seat            – seat label, unique within one flight.
//
// The validate tags carry the format rules enforced at load time.
type Reservation struct {
	PassengerName   string `json:"passenger_name" validate:"required"`
	FlightNumber    string `json:"flight_number" validate:"required,min=4,max=6,alphanum,uppercase"`
	ReservationCode string `json:"reservation_code" validate:"required,len=6,alphanum,uppercase"`
	TicketType      string `json:"ticket_type" validate:"required"`
	Seat            string `json:"seat" validate:"required"`
}
