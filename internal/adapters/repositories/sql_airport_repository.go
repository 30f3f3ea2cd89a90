package repositories

import (
	"context"
	"database/sql"
	"errors"
	"flight-info-service/internal/domain"
	"flight-info-service/internal/platform/obs"
	"fmt"
	"strings"
)

// Postgres-backed implementation of the AirportRepository port (pgx stdlib driver).
type SQLAirportRepository struct{ DB *sql.DB }

func NewSQLAirportRepository(db *sql.DB) *SQLAirportRepository {
	return &SQLAirportRepository{DB: db}
}

// Look up an airport by IATA code, falling back to the ICAO column.
func (s *SQLAirportRepository) Resolve(ctx context.Context, code string) (_ domain.Airport, err error) {
	defer obs.Time(ctx, "airport.repo.Resolve")(&err)

	if s.DB == nil {
		return domain.Airport{}, errors.New("sql airport repository: DB is nil")
	}

	if strings.TrimSpace(code) == "" {
		return domain.Airport{}, fmt.Errorf("resolve airport: %w: empty code", domain.ErrInvalidIdentifier)
	}

	q := `
	SELECT code, name, city, country, icao, timezone, lat, lon
	FROM airports
	WHERE code = $1 OR icao = $1
	ORDER BY code = $1 DESC
	LIMIT 1;
	`

	row := s.DB.QueryRowContext(ctx, q, code)
	return scanAirport(row, code)
}

// Insert or update airports in a single transaction.
func (s *SQLAirportRepository) PutMany(ctx context.Context, airports []domain.Airport) error {
	if s.DB == nil {
		return errors.New("sql airport repository: DB is nil")
	}

	if len(airports) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert airports: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO airports (code, name, city, country, icao, timezone, lat, lon)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (code) DO UPDATE
	SET name = EXCLUDED.name,
		city = EXCLUDED.city,
		country = EXCLUDED.country,
		icao = EXCLUDED.icao,
		timezone = EXCLUDED.timezone,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon;
	`)
	if err != nil {
		return fmt.Errorf("insert airports: db prepare: %w", err)
	}
	defer stmt.Close()

	for _, a := range airports {
		if strings.TrimSpace(a.Code) == "" {
			return errors.New("insert airports: empty code")
		}

		if _, err := stmt.ExecContext(ctx, a.Code, a.Name, a.City, a.Country, a.ICAO, a.Timezone, a.Location.Lat, a.Location.Lon); err != nil {
			return fmt.Errorf("insert airport code=%q: %w", a.Code, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert airports commit: %w", err)
	}

	return nil
}

// scanAirport maps a single airports row, validating the stored coordinates.
func scanAirport(row *sql.Row, code string) (domain.Airport, error) {
	var a domain.Airport
	var lat, lon float64
	err := row.Scan(&a.Code, &a.Name, &a.City, &a.Country, &a.ICAO, &a.Timezone, &lat, &lon)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Airport{}, fmt.Errorf("resolve airport %q: %w", code, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Airport{}, fmt.Errorf("resolve airport %q: scan row: %w", code, err)
	}

	loc, err := domain.NewGeoCoordinate(lat, lon)
	if err != nil {
		return domain.Airport{}, fmt.Errorf("resolve airport %q: stored location: %w", code, err)
	}
	a.Location = loc

	return a, nil
}
