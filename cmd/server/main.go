package main

import (
	"context"
	"database/sql"
	"flight-info-service/internal/adapters/airportapi"
	"flight-info-service/internal/adapters/cache"
	"flight-info-service/internal/adapters/repositories"
	"flight-info-service/internal/api"
	"flight-info-service/internal/config"
	"flight-info-service/internal/platform/db"
	"flight-info-service/internal/ports"
	"flight-info-service/internal/services"
	"fmt"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQL, Redis, remote API) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	conn, repo, err := openRepository(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	// Initialize schema and seed airports on startup for local runs.
	if err := initAndSeed(conn, repo, cfg.SeedPath); err != nil {
		log.Fatal(err)
	}

	var airportCache ports.AirportCache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("redis unreachable, continuing without it: addr=%s err=%v", cfg.RedisAddr, err)
		}
		cancel()

		airportCache = cache.NewRedisAirportCache(client, cfg.CacheTTL)
	}

	var remote ports.AirportResolver
	if cfg.AirportAPIURL != "" {
		client, err := airportapi.NewClient(cfg.AirportAPIURL, cfg.AirportAPIKey, cfg.HTTPTimeout)
		if err != nil {
			log.Fatal(err)
		}
		remote = client
	}

	resolver, err := services.NewChainResolver(airportCache, repo, remote)
	if err != nil {
		log.Fatal(err)
	}

	svc, err := services.NewAirportService(resolver)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(svc, cfg.CORSOrigins)

	// Write timeout covers a cold lookup that falls through to the remote API with retries.
	log.Printf("Server listening addr=:%s driver=%s redis=%t remote=%t",
		cfg.Port, cfg.DBDriver, airportCache != nil, remote != nil)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.HTTPTimeout*4 + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openRepository(cfg *config.Config) (*sql.DB, ports.AirportRepository, error) {
	switch cfg.DBDriver {
	case "pgx", "postgres":
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return conn, repositories.NewSQLAirportRepository(conn), nil
	default:
		conn, err := db.OpenSqlite(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return conn, repositories.NewSqliteAirportRepository(conn), nil
	}
}

func initAndSeed(conn *sql.DB, repo ports.AirportRepository, seedPath string) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(context.Background(), repo, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
