package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"airline-ops/tower/internal/common"
	"airline-ops/tower/internal/models/dtos"
)

// ListFlightsHandler handles GET /admin/flights.
func ListFlightsHandler(fltSvc FlightsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flights, err := fltSvc.List(r.Context())
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		common.RespondSuccess(w, http.StatusOK, &flights)
	}
}

// CreateFlightHandler handles POST /admin/flights.
func CreateFlightHandler(fltSvc FlightsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreateFlightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		req.FlightNum = strings.TrimSpace(req.FlightNum)
		req.Origin = strings.TrimSpace(req.Origin)
		req.Destination = strings.TrimSpace(req.Destination)
		req.TailNumber = strings.TrimSpace(req.TailNumber)

		if req.FlightNum == "" || req.DepartTime == "" || req.ArrivalTime == "" ||
			req.Origin == "" || req.Destination == "" || req.TailNumber == "" {
			common.RespondError(w, http.StatusBadRequest,
				"flight_num, depart_time, arrival_time, origin, destination, and tail_number are required.")
			return
		}

		flight, err := fltSvc.Create(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		common.RespondSuccess(w, http.StatusCreated, flight)
	}
}

// ListAircraftHandler handles GET /admin/aircraft.
func ListAircraftHandler(acSvc AircraftService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		aircraft, err := acSvc.ListAircraft(r.Context())
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		common.RespondSuccess(w, http.StatusOK, &aircraft)
	}
}
