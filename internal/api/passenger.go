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

// ListMyTicketsHandler handles GET /passenger/tickets.
func ListMyTicketsHandler(ticketSvc TicketsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())

		ssn, err := ticketSvc.ResolvePassengerSSN(r.Context(), claims)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		tickets, err := ticketSvc.ListForPassenger(r.Context(), ssn)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		common.RespondSuccess(w, http.StatusOK, &tickets)
	}
}

// BookTicketHandler handles POST /passenger/tickets.
func BookTicketHandler(ticketSvc TicketsService, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())

		var req dtos.BookTicketRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		flightNum := strings.TrimSpace(req.FlightNum)
		seatNum := strings.TrimSpace(req.SeatNum)
		class, classOK := constants.ParseCabinClass(req.Class)
		if flightNum == "" || seatNum == "" || !classOK {
			common.RespondError(w, http.StatusBadRequest, "flight_num, seat_num, and class are required.")
			return
		}

		ssn, err := ticketSvc.ResolvePassengerSSN(r.Context(), claims)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		ticket, err := ticketSvc.Book(r.Context(), ssn, flightNum, seatNum, class)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		metricsReg.TicketsBookedTotal.WithLabelValues("passenger").Inc()
		common.RespondSuccess(w, http.StatusCreated, ticket)
	}
}

// CancelTicketHandler handles POST /passenger/tickets/{ticketNum}/cancel,
// scoped to the caller's own tickets.
func CancelTicketHandler(ticketSvc TicketsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		ticketNum := strings.TrimSpace(chi.URLParam(r, "ticketNum"))

		ssn, err := ticketSvc.ResolvePassengerSSN(r.Context(), claims)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		if err := ticketSvc.Cancel(r.Context(), ssn, ticketNum); err != nil {
			respondServiceError(w, r, err)
			return
		}

		common.RespondMessage(w, http.StatusOK, "Ticket cancelled.")
	}
}
