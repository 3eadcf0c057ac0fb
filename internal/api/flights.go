package api

import (
	"net/http"
	"strings"

	"airline-ops/tower/internal/common"
	"airline-ops/tower/internal/metrics"
)

// SearchFlightsHandler handles GET /flights/search, open to unauthenticated
// callers. Both origin/destination and from/to parameter namings are
// accepted so older clients need no retry shim.
func SearchFlightsHandler(fltSvc FlightsService, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		origin := strings.TrimSpace(q.Get("origin"))
		if origin == "" {
			origin = strings.TrimSpace(q.Get("from"))
		}
		destination := strings.TrimSpace(q.Get("destination"))
		if destination == "" {
			destination = strings.TrimSpace(q.Get("to"))
		}
		date := strings.TrimSpace(q.Get("date"))

		metricsReg.FlightSearchesTotal.Inc()

		flights, err := fltSvc.Search(r.Context(), origin, destination, date)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		common.RespondSuccess(w, http.StatusOK, &flights)
	}
}
