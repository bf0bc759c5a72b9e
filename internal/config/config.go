package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration values for the gate server. Each
// field corresponds to an environment variable. The reservations path is
// the only required value: the table must be loaded before the server can
// accept sessions.
type Config struct {
	Env              string // application environment (e.g. "dev", "prod")
	Port             string // HTTP port to listen on
	ReservationsPath string // path to the JSONL reservations file
	QueueURL         string // AMQP broker URL for scan events (empty uses the local default)
	EventsEnabled    bool   // publish a scan event for every scan
	ConsumerEnabled  bool   // run the scan log consumer inside this process
}

// Load reads configuration values from environment variables and returns a
// Config. RESERVATIONS_PATH is enforced by must() and a missing value
// causes the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:              envStr("APP_ENV", "dev"),
		Port:             envStr("APP_PORT", "8080"),
		ReservationsPath: must("RESERVATIONS_PATH"),
		QueueURL:         os.Getenv("RABBITMQ_URL"),
		EventsEnabled:    envBool("GATE_EVENTS_ENABLED", false),
		ConsumerEnabled:  envBool("GATE_EVENTS_CONSUMER", false),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
