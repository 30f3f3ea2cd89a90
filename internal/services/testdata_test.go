package services

import "flight-info-service/internal/domain"

func mustAirport(code, icao string, lat, lon float64) domain.Airport {
	loc, err := domain.NewGeoCoordinate(lat, lon)
	if err != nil {
		panic(err)
	}
	return domain.Airport{Code: code, ICAO: icao, Name: code + " airport", Location: loc}
}

var (
	lhr = mustAirport("LHR", "EGLL", 51.4700, -0.4543)
	jfk = mustAirport("JFK", "KJFK", 40.6413, -73.7781)
	ams = mustAirport("AMS", "EHAM", 52.3105, 4.7683)
)
