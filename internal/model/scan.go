package model

// Verdict is the outcome of evaluating one boarding pass scan.
type Verdict string

const (
	// VerdictAccepted means the passenger may board. The code is now
	// marked as used for the session's flight.
	VerdictAccepted Verdict = "ACCEPTED"
	// VerdictUnknownCode means the code does not appear in the
	// reservations table at all.
	VerdictUnknownCode Verdict = "REJECTED_UNKNOWN_CODE"
	// VerdictWrongFlight means the code belongs to a reservation on a
	// different flight than the one being boarded.
	VerdictWrongFlight Verdict = "REJECTED_WRONG_FLIGHT"
	// VerdictDuplicateScan means the code was already accepted earlier in
	// the same session.
	VerdictDuplicateScan Verdict = "REJECTED_DUPLICATE_SCAN"
)

// Allowed reports whether the verdict lets the passenger through the gate.
func (v Verdict) Allowed() bool { return v == VerdictAccepted }

// ScanResult is the structured verdict returned for a single scan, with the
// display fields a front end needs to render one line per scan. Only the
// fields relevant to the verdict are populated: PassengerName and Seat on
// accept, ActualFlight on a wrong-flight rejection.
type ScanResult struct {
	Code          string  `json:"code"`
	Verdict       Verdict `json:"verdict"`
	PassengerName string  `json:"passenger_name,omitempty"`
	Seat          string  `json:"seat,omitempty"`
	ActualFlight  string  `json:"actual_flight,omitempty"`
}
