package main

import (
	"ambulance-dispatch-service/internal/adapters/cache"
	"ambulance-dispatch-service/internal/adapters/events"
	"ambulance-dispatch-service/internal/adapters/geocode"
	"ambulance-dispatch-service/internal/adapters/repositories"
	"ambulance-dispatch-service/internal/api"
	"ambulance-dispatch-service/internal/config"
	"ambulance-dispatch-service/internal/dispatch"
	"ambulance-dispatch-service/internal/intake"
	"ambulance-dispatch-service/internal/platform/db"
	"ambulance-dispatch-service/internal/ports"
	"ambulance-dispatch-service/internal/sim"
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

// main is the application composition root.
// It wires concrete adapters (Nominatim, Redis/Postgres, NATS) behind ports,
// starts the dispatch store with its simulation loops, and serves HTTP.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	roster, err := repositories.LoadRoster(cfg.RosterPath, time.Now())
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	seed := cfg.SimSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	resolver, closeResolver, err := newResolver(ctx, cfg)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	defer closeResolver()

	publisher, closePublisher, err := newPublisher(cfg)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	defer closePublisher()

	// The store and the detector each own their random source; neither is
	// shared across goroutines.
	store := dispatch.NewStore(
		dispatch.NewState(roster.Calls, roster.Ambulances, roster.Hospitals, roster.CongestionZones),
		dispatch.Env{Now: time.Now, Rand: rand.New(rand.NewSource(seed)), IDPrefix: cfg.IDPrefix},
		publisher,
	)
	detector := intake.NewDetector(cfg.LocateDelay, resolver, roster.AccidentZones, rand.New(rand.NewSource(seed+1)))
	defer detector.Shutdown()

	runner := sim.NewRunner(store, cfg.SimTick)
	wall := sim.NewWallClock(cfg.ClockTick)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(store, detector, wall),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return store.Run(gctx) })
	g.Go(func() error { return runner.Run(gctx) })
	g.Go(func() error { return wall.Run(gctx) })
	g.Go(func() error {
		log.Printf("Server listening addr=:%s hospitals=%d ambulances=%d calls=%d seed=%d",
			cfg.Port, len(roster.Hospitals), len(roster.Ambulances), len(roster.Calls), seed)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newResolver builds the reverse-geocoding chain. Redis is preferred as the
// address cache, then Postgres; without either, lookups go straight out.
func newResolver(ctx context.Context, cfg config.Config) (ports.AddressResolver, func(), error) {
	noop := func() {}
	if cfg.GeocodeURL == "" {
		log.Println("Reverse geocoding disabled")
		return nil, noop, nil
	}

	nominatim, err := geocode.NewNominatimResolver(cfg.GeocodeURL, cfg.GeocodeUserAgent, cfg.GeocodeTimeout)
	if err != nil {
		return nil, noop, fmt.Errorf("new resolver: %w", err)
	}

	switch {
	case cfg.RedisURL != "":
		rdb, err := cache.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, noop, fmt.Errorf("new resolver: %w", err)
		}
		log.Printf("Address cache backend=redis ttl=%s", cfg.AddressCacheTTL)
		return geocode.NewCachedResolver(nominatim, cache.NewRedisAddressCache(rdb, cfg.AddressCacheTTL)),
			func() { _ = rdb.Close() }, nil

	case cfg.DatabaseURL != "":
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, fmt.Errorf("new resolver: %w", err)
		}
		if err := repositories.InitSchema(conn); err != nil {
			conn.Close()
			return nil, noop, fmt.Errorf("new resolver: %w", err)
		}
		log.Println("Address cache backend=postgres")
		return geocode.NewCachedResolver(nominatim, cache.NewSQLAddressCache(conn)),
			func() { _ = conn.Close() }, nil
	}

	log.Println("Address cache disabled")
	return nominatim, noop, nil
}

func newPublisher(cfg config.Config) (ports.EventPublisher, func(), error) {
	if cfg.NATSURL == "" {
		return events.NewLogPublisher(log.Default()), func() {}, nil
	}

	pub, err := events.NewNATSPublisher(cfg.NATSURL)
	if err != nil {
		return nil, nil, fmt.Errorf("new publisher: %w", err)
	}
	log.Printf("Publishing lifecycle events to NATS url=%s", cfg.NATSURL)
	return pub, func() {
		if err := pub.Close(); err != nil {
			log.Printf("nats close failed: %v", err)
		}
	}, nil
}
