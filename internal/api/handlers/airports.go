package handlers

import (
	"flight-info-service/internal/api/dto"
	"flight-info-service/internal/domain"
	"flight-info-service/internal/services"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// AirportHandler exposes airport info and distance endpoints.
type AirportHandler struct {
	Service *services.AirportService
}

func (h *AirportHandler) Info(w http.ResponseWriter, r *http.Request) {
	a, err := h.Service.GetAirportInfo(r.Context(), chi.URLParam(r, "iata"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewAirportResponse(a))
}

// Distance returns the great-circle distance between two airports.
// The unit is accepted by name (km, miles, nmi, ...) or ordinal (0, 1, 2).
func (h *AirportHandler) Distance(w http.ResponseWriter, r *http.Request) {
	unit, err := domain.ParseDistanceUnit(chi.URLParam(r, "unitMeasure"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res, err := h.Service.GetAirportsDistance(
		r.Context(),
		chi.URLParam(r, "iataFrom"),
		chi.URLParam(r, "iataTo"),
		unit,
	)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DistanceResponse{
		From:     dto.NewAirportResponse(res.From),
		To:       dto.NewAirportResponse(res.To),
		Distance: res.Distance.Value,
		Unit:     res.Distance.Unit.String(),
	})
}
