package api

import (
	"context"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"airline-ops/tower/internal/auth"
	"airline-ops/tower/internal/common"
	"airline-ops/tower/internal/config"
	"airline-ops/tower/internal/constants"
	"airline-ops/tower/internal/db/repositories"
	"airline-ops/tower/internal/metrics"
	"airline-ops/tower/internal/models/dtos"
	"airline-ops/tower/internal/services"
)

// Consumer-side service contracts so handler tests can swap in mocks.

type FlightsService interface {
	Search(ctx context.Context, origin, destination, date string) ([]dtos.FlightResponse, error)
	List(ctx context.Context) ([]dtos.FlightResponse, error)
	Create(ctx context.Context, req dtos.CreateFlightRequest) (*dtos.FlightResponse, error)
	UpdateStatus(ctx context.Context, flightNum string, status constants.FlightStatus) error
}

type TicketsService interface {
	ResolvePassengerSSN(ctx context.Context, claims auth.UserClaims) (string, error)
	ListForPassenger(ctx context.Context, ssn string) ([]dtos.TicketResponse, error)
	Book(ctx context.Context, ssn, flightNum, seatNum string, class constants.CabinClass) (*dtos.TicketResponse, error)
	BookFor(ctx context.Context, passengerQuery, flightNum, seatNum string, class constants.CabinClass) (*dtos.TicketResponse, error)
	Cancel(ctx context.Context, ssn, ticketNum string) error
	Refund(ctx context.Context, ticketNum string) error
}

type PassengersService interface {
	Search(ctx context.Context, query string) ([]dtos.PassengerResponse, error)
}

type CrewService interface {
	Schedule(ctx context.Context, employeeID string) ([]dtos.FlightResponse, error)
	ReportIncident(ctx context.Context, tailNumber, description string) (*dtos.IncidentResponse, error)
}

type AircraftService interface {
	ListAircraft(ctx context.Context) ([]dtos.AircraftResponse, error)
}

type Repositories struct {
	Flights    *repositories.FlightRepository
	Tickets    *repositories.TicketRepository
	Passengers *repositories.PassengerRepository
	Aircraft   *repositories.AircraftRepository
	Incidents  *repositories.IncidentRepository
	Crew       *repositories.CrewRepository
}

type Services struct {
	Registry   *services.UserRegistry
	Flights    *services.FlightsService
	Tickets    *services.TicketsService
	Passengers *services.PassengersService
	Crew       *services.CrewService
	Cache      common.CacheInterface
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Issuer   *auth.TokenIssuer
	Metrics  *metrics.MetricsRegistry
	Config   *config.Config
}

// InitDependencies wires repositories and services from the shared database
// handles. The cache backend follows configuration: Redis when enabled,
// in-memory otherwise.
func InitDependencies(cfg *config.Config, sqlxDB *sqlx.DB, gormDB *gorm.DB, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	repos := &Repositories{
		Flights:    repositories.NewFlightRepository(gormDB),
		Tickets:    repositories.NewTicketRepository(gormDB),
		Passengers: repositories.NewPassengerRepository(gormDB),
		Aircraft:   repositories.NewAircraftRepository(sqlxDB),
		Incidents:  repositories.NewIncidentRepository(sqlxDB),
		Crew:       repositories.NewCrewRepository(sqlxDB),
	}

	var cache common.CacheInterface
	if cfg.Redis.Enabled {
		redisCache, err := common.NewRedisCacheService(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password)
		if err != nil {
			return nil, err
		}
		cache = redisCache
	} else {
		cache = common.NewCacheService(60, 600)
	}

	svcs := &Services{
		Registry:   services.NewUserRegistry(cfg.DemoUsers),
		Flights:    services.NewFlightsService(repos.Flights, repos.Aircraft, cache),
		Tickets:    services.NewTicketsService(repos.Tickets, repos.Passengers, cfg.Booking.DefaultTicketPrice),
		Passengers: services.NewPassengersService(repos.Passengers),
		Crew:       services.NewCrewService(repos.Crew, repos.Flights, repos.Incidents),
		Cache:      cache,
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Issuer:   auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		Metrics:  metricsReg,
		Config:   cfg,
	}, nil
}
