package gate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boarding-gate/internal/model"
	"boarding-gate/internal/reservation"
)

func testTable(t *testing.T) *reservation.Table {
	t.Helper()
	table, err := reservation.ValidateAndIndex([]map[string]string{
		{
			model.ColPassengerName:   "Jane Doe",
			model.ColFlightNumber:    "AA123",
			model.ColReservationCode: "ABC123",
			model.ColTicketType:      "ECONOMY",
			model.ColSeat:            "12A",
		},
		{
			model.ColPassengerName:   "Chris Knight",
			model.ColFlightNumber:    "AA123",
			model.ColReservationCode: "ACIWMY",
			model.ColTicketType:      "ECONOMY",
			model.ColSeat:            "13D",
		},
	})
	require.NoError(t, err)
	return table
}

func TestNewSession(t *testing.T) {
	table := testTable(t)
	s := NewSession(table, "AA123")

	assert.NotEmpty(t, s.ID())
	assert.Equal(t, "AA123", s.Flight())
	assert.Equal(t, 2, s.ReservationCount())
	assert.Equal(t, 0, s.BoardedCount())
	assert.False(t, s.StartedAt().IsZero())

	// Session IDs are unique per session.
	assert.NotEqual(t, s.ID(), NewSession(table, "AA123").ID())
}

func TestScan_AcceptThenDuplicate(t *testing.T) {
	s := NewSession(testTable(t), "AA123")

	first := s.Scan("ABC123")
	assert.Equal(t, model.VerdictAccepted, first.Verdict)
	assert.True(t, first.Verdict.Allowed())
	assert.Equal(t, "Jane Doe", first.PassengerName)
	assert.Equal(t, "12A", first.Seat)
	assert.Equal(t, 1, s.BoardedCount())

	second := s.Scan("ABC123")
	assert.Equal(t, model.VerdictDuplicateScan, second.Verdict)
	assert.False(t, second.Verdict.Allowed())
	assert.Equal(t, 1, s.BoardedCount())
}

func TestScan_WrongFlight(t *testing.T) {
	s := NewSession(testTable(t), "BB999")

	res := s.Scan("ABC123")
	assert.Equal(t, model.VerdictWrongFlight, res.Verdict)
	assert.Equal(t, "AA123", res.ActualFlight)
	assert.Empty(t, res.PassengerName)
	assert.Equal(t, 0, s.BoardedCount())
}

func TestScan_UnknownCode(t *testing.T) {
	s := NewSession(testTable(t), "AA123")

	res := s.Scan("ZZZ000")
	assert.Equal(t, model.VerdictUnknownCode, res.Verdict)
	assert.Equal(t, 0, s.BoardedCount())

	// An unknown code stays rejectable; nothing was recorded for it.
	res = s.Scan("ZZZ000")
	assert.Equal(t, model.VerdictUnknownCode, res.Verdict)
}

func TestScan_DuplicateRegardlessOfInterveningScans(t *testing.T) {
	s := NewSession(testTable(t), "AA123")

	require.Equal(t, model.VerdictAccepted, s.Scan("ABC123").Verdict)
	require.Equal(t, model.VerdictUnknownCode, s.Scan("ZZZ000").Verdict)
	require.Equal(t, model.VerdictAccepted, s.Scan("ACIWMY").Verdict)

	assert.Equal(t, model.VerdictDuplicateScan, s.Scan("ABC123").Verdict)
	assert.Equal(t, 2, s.BoardedCount())
}

func TestScan_WrongFlightDoesNotConsumeCode(t *testing.T) {
	table := testTable(t)

	wrong := NewSession(table, "BB999")
	require.Equal(t, model.VerdictWrongFlight, wrong.Scan("ABC123").Verdict)

	// Boarding switches to the correct flight; the code must still work.
	right := NewSession(table, "AA123")
	assert.Equal(t, model.VerdictAccepted, right.Scan("ABC123").Verdict)
}

func TestSessions_IndependentUsedSets(t *testing.T) {
	table := testTable(t)
	a := NewSession(table, "AA123")
	b := NewSession(table, "AA123")

	require.Equal(t, model.VerdictAccepted, a.Scan("ABC123").Verdict)

	// A parallel session for the same flight owns its own used set.
	assert.Equal(t, model.VerdictAccepted, b.Scan("ABC123").Verdict)
	assert.Equal(t, model.VerdictDuplicateScan, b.Scan("ABC123").Verdict)
}

func TestSession_EmptyFlight(t *testing.T) {
	s := NewSession(testTable(t), "UA0001")

	assert.Equal(t, 0, s.ReservationCount())
	assert.Equal(t, model.VerdictUnknownCode, s.Scan("ZZZ000").Verdict)
	assert.Equal(t, model.VerdictWrongFlight, s.Scan("ABC123").Verdict)
}

func TestScan_FullFlightBoarding(t *testing.T) {
	table, err := reservation.ValidateAndIndex(bigFlight(40))
	require.NoError(t, err)
	s := NewSession(table, "UA4000")
	require.Equal(t, 40, s.ReservationCount())

	for i := 0; i < 40; i++ {
		code := fmt.Sprintf("CODE%02d", i)
		require.Equal(t, model.VerdictAccepted, s.Scan(code).Verdict, "code %s", code)
	}
	assert.Equal(t, 40, s.BoardedCount())

	for i := 0; i < 40; i++ {
		code := fmt.Sprintf("CODE%02d", i)
		assert.Equal(t, model.VerdictDuplicateScan, s.Scan(code).Verdict)
	}
	assert.Equal(t, 40, s.BoardedCount())
}

func bigFlight(n int) []map[string]string {
	records := make([]map[string]string, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, map[string]string{
			model.ColPassengerName:   fmt.Sprintf("Passenger %d", i),
			model.ColFlightNumber:    "UA4000",
			model.ColReservationCode: fmt.Sprintf("CODE%02d", i),
			model.ColTicketType:      "General",
			model.ColSeat:            fmt.Sprintf("%d-A", i),
		})
	}
	return records
}
