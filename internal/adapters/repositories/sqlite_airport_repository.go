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

// SQLite-backed implementation of the AirportRepository port.
// Used for local runs and tests (modernc.org/sqlite).
type SqliteAirportRepository struct{ DB *sql.DB }

func NewSqliteAirportRepository(db *sql.DB) *SqliteAirportRepository {
	return &SqliteAirportRepository{DB: db}
}

// Look up an airport by IATA code, falling back to the ICAO column.
func (s *SqliteAirportRepository) Resolve(ctx context.Context, code string) (_ domain.Airport, err error) {
	defer obs.Time(ctx, "airport.sqlite.Resolve")(&err)

	if s.DB == nil {
		return domain.Airport{}, errors.New("sqlite airport repository: DB is nil")
	}

	if strings.TrimSpace(code) == "" {
		return domain.Airport{}, fmt.Errorf("resolve airport: %w: empty code", domain.ErrInvalidIdentifier)
	}

	q := `
	SELECT
		code,
		name,
		city,
		country,
		icao,
		timezone,
		lat,
		lon
	FROM airports
	WHERE code = ? OR icao = ?
	ORDER BY code = ? DESC
	LIMIT 1;
	`

	row := s.DB.QueryRowContext(ctx, q, code, code, code)
	return scanAirport(row, code)
}

// Insert or replace airports in a single transaction.
func (s *SqliteAirportRepository) PutMany(ctx context.Context, airports []domain.Airport) error {
	if s.DB == nil {
		return errors.New("sqlite airport repository: DB is nil")
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
	INSERT OR REPLACE INTO airports (
		code,
		name,
		city,
		country,
		icao,
		timezone,
		lat,
		lon
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
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
