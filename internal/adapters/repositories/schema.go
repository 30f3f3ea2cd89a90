package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"flight-info-service/internal/domain"
	"flight-info-service/internal/ports"
	"fmt"
	"os"
	"strings"
)

// Initialize the airports schema. The statements are valid for both SQLite and Postgres.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createAirportsQuery := `
	CREATE TABLE IF NOT EXISTS airports (
		code TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		city TEXT NOT NULL DEFAULT '',
		country TEXT NOT NULL DEFAULT '',
		icao TEXT NOT NULL DEFAULT '',
		timezone TEXT NOT NULL DEFAULT '',
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_airports_icao
	ON airports(icao);
	`

	statements := []string{
		createAirportsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type AirportSeed struct {
	IATA     string  `json:"iata"`
	Name     string  `json:"name"`
	City     string  `json:"city"`
	Country  string  `json:"country"`
	ICAO     string  `json:"icao"`
	Timezone string  `json:"timezone"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

// Populate the repository with airport data from a JSON file.
// Every row is validated before anything is written.
func SeedFromJSON(ctx context.Context, repo ports.AirportRepository, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed airports: read %q: %w", jsonPath, err)
	}

	var data []AirportSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed airports: parse json: %w", err)
	}

	airports := make([]domain.Airport, 0, len(data))
	for i, item := range data {
		code, err := domain.NormalizeCode(item.IATA)
		if err != nil {
			return fmt.Errorf("seed airports: item at index %d: %w", i+1, err)
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return fmt.Errorf("seed airports: item %s at index %d: name cannot be empty", code, i+1)
		}

		loc, err := domain.NewGeoCoordinate(item.Lat, item.Lon)
		if err != nil {
			return fmt.Errorf("seed airports: item %s at index %d: %w", code, i+1, err)
		}

		airports = append(airports, domain.Airport{
			Code:     code,
			Name:     name,
			City:     strings.TrimSpace(item.City),
			Country:  strings.TrimSpace(item.Country),
			ICAO:     strings.ToUpper(strings.TrimSpace(item.ICAO)),
			Timezone: strings.TrimSpace(item.Timezone),
			Location: loc,
		})
	}

	if err := repo.PutMany(ctx, airports); err != nil {
		return fmt.Errorf("seed airports: %w", err)
	}

	return nil
}
