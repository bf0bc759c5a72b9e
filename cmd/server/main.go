package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"boarding-gate/internal/config"
	"boarding-gate/internal/handler"
	"boarding-gate/internal/loader"
	"boarding-gate/internal/middleware"
	"boarding-gate/internal/monitoring"
	"boarding-gate/internal/queue"
	"boarding-gate/internal/reservation"
	"boarding-gate/internal/router"
	queue_publisher "boarding-gate/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; deployments configure the environment directly
	cfg := config.Load()

	// Invalid reservations data is fatal at startup: the operator must fix
	// the source file before boarding can begin.
	records, err := loader.ReadFile(cfg.ReservationsPath)
	if err != nil {
		log.Fatalf("load reservations: %v", err)
	}
	table, err := reservation.ValidateAndIndex(records)
	if err != nil {
		log.Fatalf("invalid reservations data: %v", err)
	}
	log.Printf("loaded %d reservations from %s", table.Len(), cfg.ReservationsPath)

	monitor := monitoring.NewMonitor()
	monitor.SetReservationsLoaded(table.Len())

	var publisher handler.ScanPublisher
	if cfg.EventsEnabled {
		publisher = queue_publisher.New(cfg.QueueURL)
	}
	if cfg.ConsumerEnabled {
		go func() {
			if err := queue.StartScanConsumer(cfg.QueueURL); err != nil {
				log.Printf("scan consumer stopped: %v", err)
			}
		}()
	}

	rlCfg := config.LoadRateLimitConfig()
	var rdb *redis.Client
	if rlCfg.Enabled {
		if rdb = config.NewRedisClient(); rdb == nil {
			log.Printf("redis unavailable; rate limiting disabled")
		}
	}

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e)
	router.RegisterGate(e, handler.NewGateHandler(table, monitor, publisher), middleware.RateLimit(rlCfg, rdb))

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
