package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"airline-ops/tower/internal/common"
	"airline-ops/tower/internal/constants"
	"airline-ops/tower/internal/metrics"
	"airline-ops/tower/internal/models/dtos"
)

// SearchPassengersHandler handles GET /agent/passengers/search.
func SearchPassengersHandler(paxSvc PassengersService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))

		passengers, err := paxSvc.Search(r.Context(), query)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		common.RespondSuccess(w, http.StatusOK, &passengers)
	}
}

// AgentBookTicketHandler handles POST /agent/tickets, booking on behalf of
// a passenger resolved by fuzzy lookup.
func AgentBookTicketHandler(ticketSvc TicketsService, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.AgentBookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		passengerQuery := strings.TrimSpace(req.PassengerQuery)
		flightNum := strings.TrimSpace(req.FlightNum)
		seatNum := strings.TrimSpace(req.SeatNum)
		class, classOK := constants.ParseCabinClass(req.Class)
		if passengerQuery == "" || flightNum == "" || seatNum == "" || !classOK {
			common.RespondError(w, http.StatusBadRequest, "passenger_query, flight_num, seat_num, and class are required.")
			return
		}

		ticket, err := ticketSvc.BookFor(r.Context(), passengerQuery, flightNum, seatNum, class)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		metricsReg.TicketsBookedTotal.WithLabelValues("agent").Inc()
		common.RespondSuccess(w, http.StatusCreated, ticket)
	}
}

// RefundTicketHandler handles POST /agent/tickets/{ticketNum}/refund. Any
// ticket can be refunded, there is no ownership scoping for agents.
func RefundTicketHandler(ticketSvc TicketsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ticketNum := strings.TrimSpace(chi.URLParam(r, "ticketNum"))

		if err := ticketSvc.Refund(r.Context(), ticketNum); err != nil {
			respondServiceError(w, r, err)
			return
		}

		common.RespondMessage(w, http.StatusOK, "Refund requested.")
	}
}
