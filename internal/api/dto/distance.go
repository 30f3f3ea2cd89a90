package dto

type DistanceResponse struct {
	From     AirportResponse `json:"from"`
	To       AirportResponse `json:"to"`
	Distance float64         `json:"distance"`
	Unit     string          `json:"unit"`
}
