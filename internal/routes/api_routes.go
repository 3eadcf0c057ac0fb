package routes

import (
	"github.com/go-chi/chi/v5"

	"airline-ops/tower/internal/api"
	"airline-ops/tower/internal/middleware"
)

// RegisterAPIRoutes registers all API routes and handlers.
// This keeps route registration separate from the main router setup.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {

	svcs := deps.Services

	// Public routes
	r.Group(func(public chi.Router) {
		public.Use(middleware.RateLimitMiddleware)
		public.Post("/auth/login", api.LoginHandler(svcs.Registry, deps.Issuer, deps.Metrics))
		public.Post("/auth/register", api.RegisterHandler(svcs.Registry))
	})
	r.Get("/flights/search", api.SearchFlightsHandler(svcs.Flights, deps.Metrics))

	// Passenger-only group
	r.Route("/passenger", func(passenger chi.Router) {
		passenger.Use(middleware.AuthMiddleware(deps.Issuer))
		passenger.Use(middleware.IsPassengerMiddleware())

		passenger.Get("/tickets", api.ListMyTicketsHandler(svcs.Tickets))
		passenger.Post("/tickets", api.BookTicketHandler(svcs.Tickets, deps.Metrics))
		passenger.Post("/tickets/{ticketNum}/cancel", api.CancelTicketHandler(svcs.Tickets))
	})

	// Agent-only group
	r.Route("/agent", func(agent chi.Router) {
		agent.Use(middleware.AuthMiddleware(deps.Issuer))
		agent.Use(middleware.IsAgentMiddleware())

		agent.Get("/passengers/search", api.SearchPassengersHandler(svcs.Passengers))
		agent.Post("/tickets", api.AgentBookTicketHandler(svcs.Tickets, deps.Metrics))
		agent.Post("/tickets/{ticketNum}/refund", api.RefundTicketHandler(svcs.Tickets))
	})

	// Crew-only group
	r.Route("/crew", func(crew chi.Router) {
		crew.Use(middleware.AuthMiddleware(deps.Issuer))
		crew.Use(middleware.IsCrewMiddleware())

		crew.Get("/schedule", api.CrewScheduleHandler(svcs.Crew))
		crew.Post("/flights/{flightNum}/status", api.UpdateFlightStatusHandler(svcs.Flights))
		crew.Post("/incidents", api.ReportIncidentHandler(svcs.Crew, deps.Metrics))
	})

	// Admin-only group
	r.Route("/admin", func(admin chi.Router) {
		admin.Use(middleware.AuthMiddleware(deps.Issuer))
		admin.Use(middleware.IsAdminMiddleware())

		admin.Get("/flights", api.ListFlightsHandler(svcs.Flights))
		admin.Post("/flights", api.CreateFlightHandler(svcs.Flights))
		admin.Get("/aircraft", api.ListAircraftHandler(svcs.Flights))
	})
}
