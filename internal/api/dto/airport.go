package dto

import "flight-info-service/internal/domain"

type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type AirportResponse struct {
	IATA     string           `json:"iata"`
	Name     string           `json:"name"`
	City     string           `json:"city"`
	Country  string           `json:"country"`
	ICAO     string           `json:"icao"`
	Timezone string           `json:"timezone"`
	Location LocationResponse `json:"location"`
}

func NewAirportResponse(a domain.Airport) AirportResponse {
	return AirportResponse{
		IATA:     a.Code,
		Name:     a.Name,
		City:     a.City,
		Country:  a.Country,
		ICAO:     a.ICAO,
		Timezone: a.Timezone,
		Location: LocationResponse{Lat: a.Location.Lat, Lon: a.Location.Lon},
	}
}
