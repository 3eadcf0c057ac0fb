package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"airline-ops/tower/internal/auth"
	"airline-ops/tower/internal/common"
	"airline-ops/tower/internal/constants"
	"airline-ops/tower/internal/metrics"
	"airline-ops/tower/internal/models/dtos"
)

// CrewScheduleHandler handles GET /crew/schedule.
func CrewScheduleHandler(crewSvc CrewService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())

		flights, err := crewSvc.Schedule(r.Context(), strings.TrimSpace(claims.EmployeeID()))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		common.RespondSuccess(w, http.StatusOK, &flights)
	}
}

// UpdateFlightStatusHandler handles POST /crew/flights/{flightNum}/status.
// The status must belong to the closed enumeration.
func UpdateFlightStatusHandler(fltSvc FlightsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flightNum := strings.TrimSpace(chi.URLParam(r, "flightNum"))

		var req dtos.UpdateFlightStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if strings.TrimSpace(req.Status) == "" {
			common.RespondError(w, http.StatusBadRequest, "status is required.")
			return
		}

		status, ok := constants.ParseFlightStatus(req.Status)
		if !ok {
			common.RespondError(w, http.StatusBadRequest, "invalid status: "+req.Status)
			return
		}

		if err := fltSvc.UpdateStatus(r.Context(), flightNum, status); err != nil {
			respondServiceError(w, r, err)
			return
		}

		common.RespondMessage(w, http.StatusOK, "Flight status updated.")
	}
}

// ReportIncidentHandler handles POST /crew/incidents.
func ReportIncidentHandler(crewSvc CrewService, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.ReportIncidentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		tailNumber := strings.TrimSpace(req.TailNumber)
		description := strings.TrimSpace(req.Description)
		if tailNumber == "" || description == "" {
			common.RespondError(w, http.StatusBadRequest, "tail_number and description are required.")
			return
		}

		incident, err := crewSvc.ReportIncident(r.Context(), tailNumber, description)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		metricsReg.IncidentsFiledTotal.Inc()
		common.RespondSuccess(w, http.StatusCreated, incident)
	}
}
