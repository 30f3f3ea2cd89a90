package repositories

import (
	"context"
	"database/sql"
	"errors"
	"flight-info-service/internal/domain"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func TestSqliteAirportRepositoryPutAndResolve(t *testing.T) {
	ctx := context.Background()
	repo := NewSqliteAirportRepository(openTestDB(t))

	ams := domain.Airport{
		Code:     "AMS",
		Name:     "Amsterdam Airport Schiphol",
		City:     "Amsterdam",
		Country:  "Netherlands",
		ICAO:     "EHAM",
		Timezone: "Europe/Amsterdam",
		Location: domain.GeoCoordinate{Lat: 52.309069, Lon: 4.763385},
	}

	if err := repo.PutMany(ctx, []domain.Airport{ams}); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := repo.Resolve(ctx, "AMS")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != ams {
		t.Fatalf("resolve = %+v, want %+v", got, ams)
	}

	byICAO, err := repo.Resolve(ctx, "EHAM")
	if err != nil {
		t.Fatalf("resolve by icao: %v", err)
	}
	if byICAO.Code != "AMS" {
		t.Fatalf("resolve by icao code = %q, want AMS", byICAO.Code)
	}

	// Replacing a row must update it in place.
	ams.Name = "Schiphol"
	if err := repo.PutMany(ctx, []domain.Airport{ams}); err != nil {
		t.Fatalf("put again: %v", err)
	}
	got, err = repo.Resolve(ctx, "AMS")
	if err != nil {
		t.Fatalf("resolve after update: %v", err)
	}
	if got.Name != "Schiphol" {
		t.Fatalf("name = %q, want Schiphol", got.Name)
	}
}

func TestSqliteAirportRepositoryNotFound(t *testing.T) {
	repo := NewSqliteAirportRepository(openTestDB(t))

	_, err := repo.Resolve(context.Background(), "XXX")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSqliteAirportRepositoryRejectsCorruptLocation(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.Exec(`INSERT INTO airports (code, name, lat, lon) VALUES ('BAD', 'Broken', 95, 0)`); err != nil {
		t.Fatalf("insert: %v", err)
	}

	_, err := NewSqliteAirportRepository(db).Resolve(context.Background(), "BAD")
	if !errors.Is(err, domain.ErrInvalidCoordinate) {
		t.Fatalf("err = %v, want ErrInvalidCoordinate", err)
	}
}

func TestSeedFromJSON(t *testing.T) {
	ctx := context.Background()
	repo := NewSqliteAirportRepository(openTestDB(t))

	path := filepath.Join(t.TempDir(), "airports.json")
	seed := `[
		{"iata": "lhr", "name": "Heathrow", "city": "London", "country": "United Kingdom", "icao": "egll", "timezone": "Europe/London", "lat": 51.4700, "lon": -0.4543},
		{"iata": "JFK", "name": "John F. Kennedy International", "city": "New York", "country": "United States", "icao": "KJFK", "timezone": "America/New_York", "lat": 40.6413, "lon": -73.7781}
	]`
	if err := os.WriteFile(path, []byte(seed), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	if err := SeedFromJSON(ctx, repo, path); err != nil {
		t.Fatalf("seed: %v", err)
	}

	lhr, err := repo.Resolve(ctx, "LHR")
	if err != nil {
		t.Fatalf("resolve LHR: %v", err)
	}
	if lhr.ICAO != "EGLL" || lhr.City != "London" {
		t.Fatalf("LHR = %+v, want normalized ICAO EGLL in London", lhr)
	}
}

func TestSeedFromJSONRejectsInvalidRows(t *testing.T) {
	ctx := context.Background()
	repo := NewSqliteAirportRepository(openTestDB(t))

	tests := []struct {
		name string
		body string
		want error
	}{
		{"bad latitude", `[{"iata": "AAA", "name": "A", "lat": 91, "lon": 0}]`, domain.ErrInvalidCoordinate},
		{"bad code", `[{"iata": "A", "name": "A", "lat": 1, "lon": 0}]`, domain.ErrInvalidIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "airports.json")
			if err := os.WriteFile(path, []byte(tt.body), 0o600); err != nil {
				t.Fatalf("write seed: %v", err)
			}

			err := SeedFromJSON(ctx, repo, path)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := repo.Resolve(ctx, "AAA"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("invalid seed row was written: err = %v", err)
	}
}
