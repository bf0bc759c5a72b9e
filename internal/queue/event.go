// Package queue defines message payloads exchanged over the message broker.
package queue

// ScanEvent is published for every boarding pass scan, accepted or
// rejected. It carries enough context for downstream consumers to log or
// feed an operations dashboard without access to the reservations table.
type ScanEvent struct {
	SessionID     string `json:"session_id"`
	FlightNumber  string `json:"flight_number"`
	Code          string `json:"code"`
	Verdict       string `json:"verdict"`
	PassengerName string `json:"passenger_name,omitempty"`
	Seat          string `json:"seat,omitempty"`
	ActualFlight  string `json:"actual_flight,omitempty"`
	ScannedAt     string `json:"scanned_at"`
}
