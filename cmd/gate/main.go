// Command gate is the interactive boarding gate simulator. An agent loads
// a JSONL file of reservations, sets the flight being boarded and scans
// boarding passes one at a time; every scan prints an ALLOW or DENY line.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"boarding-gate/internal/gate"
	"boarding-gate/internal/loader"
	"boarding-gate/internal/model"
	"boarding-gate/internal/reservation"
)

const intro = "Welcome to the Boarding Gate Simulator. To start, use the load " +
	"command to input a JSONL file of reservation information. Type help " +
	"or ? to see all commands."

const usage = `Commands:
  load <path>      load reservations from a JSONL file
  flight <NUMBER>  set the flight to board (e.g. AA311)
  scan <CODE>      scan a boarding pass reservation code
  status           show boarding progress for the current flight
  help             show this help
  quit             end the session`

type repl struct {
	table   *reservation.Table
	session *gate.Session
}

func main() {
	fmt.Println(intro)
	r := &repl{}
	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("gate> ")
		if !sc.Scan() {
			fmt.Println("Goodbye.")
			return
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, arg := fields[0], strings.Join(fields[1:], " ")
		switch cmd {
		case "load":
			r.load(arg)
		case "flight":
			r.flight(arg)
		case "scan":
			r.scan(arg)
		case "status":
			r.status()
		case "help", "?":
			fmt.Println(usage)
		case "quit", "exit":
			fmt.Println("Goodbye.")
			return
		default:
			fmt.Printf("Unknown command %q. Type help to see all commands.\n", cmd)
		}
	}
}

func (r *repl) load(path string) {
	if path == "" {
		fmt.Println("Usage: load <path>")
		return
	}
	records, err := loader.ReadFile(path)
	if err != nil {
		fmt.Printf("Unable to load reservations from %s. Please check the path.\n", path)
		return
	}
	table, err := reservation.ValidateAndIndex(records)
	if err != nil {
		fmt.Printf("Reservations data failed validation: %v\n", err)
		return
	}
	r.table = table
	r.session = nil // a fresh table invalidates any boarding in progress
	fmt.Printf("Loaded %d reservations.\n", table.Len())
}

func (r *repl) flight(arg string) {
	if arg == "" || !isAlnumWord(arg) {
		fmt.Println("Expected flight number to be a single alphanumeric word, e.g. AA311.")
		return
	}
	if r.table == nil {
		fmt.Println("Please load in the reservation information first with the load command.")
		return
	}
	flight := strings.ToUpper(arg)
	r.session = gate.NewSession(r.table, flight)
	fmt.Println("OK")
	if r.session.ReservationCount() == 0 {
		fmt.Printf("Warning: no reservations found for flight %s.\n", flight)
	}
}

func (r *repl) scan(code string) {
	if r.table == nil {
		fmt.Println("Please load in the reservation information first with the load command.")
		return
	}
	if r.session == nil {
		fmt.Println("Please set the flight number to board guests for with the flight command.")
		return
	}
	result := r.session.Scan(code)
	switch result.Verdict {
	case model.VerdictAccepted:
		fmt.Printf("ALLOW  %s, seat %s\n", result.PassengerName, result.Seat)
	case model.VerdictWrongFlight:
		fmt.Printf("DENY   reservation is for flight %s\n", result.ActualFlight)
	case model.VerdictDuplicateScan:
		fmt.Println("DENY   boarding pass already scanned")
	default:
		fmt.Println("DENY   unknown reservation code")
	}
}

func (r *repl) status() {
	if r.session == nil {
		fmt.Println("No flight is being boarded. Use the flight command first.")
		return
	}
	fmt.Printf("Flight %s: %d of %d boarded.\n",
		r.session.Flight(), r.session.BoardedCount(), r.session.ReservationCount())
}

func isAlnumWord(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		default:
			return false
		}
	}
	return true
}
