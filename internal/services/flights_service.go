package services

import (
	"context"
	"fmt"
	"time"

	"airline-ops/tower/internal/common"
	"airline-ops/tower/internal/constants"
	"airline-ops/tower/internal/db/repositories"
	"airline-ops/tower/internal/models/dtos"
	gormModels "airline-ops/tower/internal/models/gorm"
)

const (
	flightSearchCacheTTL = 30 * time.Second
	aircraftCacheTTL     = 60 * time.Second
)

type FlightsService struct {
	flights  *repositories.FlightRepository
	aircraft *repositories.AircraftRepository
	cache    common.CacheInterface
}

func NewFlightsService(flights *repositories.FlightRepository, aircraft *repositories.AircraftRepository, cache common.CacheInterface) *FlightsService {
	return &FlightsService{
		flights:  flights,
		aircraft: aircraft,
		cache:    cache,
	}
}

// Search serves the public flight search, caching result sets briefly since
// the listing is hit far more often than the catalog changes.
func (s *FlightsService) Search(ctx context.Context, origin, destination, date string) ([]dtos.FlightResponse, error) {
	key := fmt.Sprintf("%s%s|%s|%s", constants.CachePrefixFlightSearch, origin, destination, date)

	return common.GetOrSetTyped(s.cache, key, flightSearchCacheTTL, func() ([]dtos.FlightResponse, error) {
		return s.loadSearch(ctx, origin, destination, date)
	})
}

func (s *FlightsService) loadSearch(ctx context.Context, origin, destination, date string) ([]dtos.FlightResponse, error) {
	rows, err := s.flights.Search(ctx, origin, destination, date)
	if err != nil {
		return nil, err
	}
	flights := make([]dtos.FlightResponse, 0, len(rows))
	for _, f := range rows {
		flights = append(flights, flightModelToDTO(f))
	}
	return flights, nil
}

func (s *FlightsService) List(ctx context.Context) ([]dtos.FlightResponse, error) {
	rows, err := s.flights.List(ctx)
	if err != nil {
		return nil, err
	}
	flights := make([]dtos.FlightResponse, 0, len(rows))
	for _, f := range rows {
		flights = append(flights, flightModelToDTO(f))
	}
	return flights, nil
}

// Create inserts a new flight into the catalog. The tail number is checked
// up front so a bad reference reads as a client error, not a driver one.
func (s *FlightsService) Create(ctx context.Context, req dtos.CreateFlightRequest) (*dtos.FlightResponse, error) {
	departTime, err := parseTimestamp(req.DepartTime)
	if err != nil {
		return nil, err
	}
	arrivalTime, err := parseTimestamp(req.ArrivalTime)
	if err != nil {
		return nil, err
	}

	status := constants.FlightScheduled
	if req.Status != "" {
		parsed, ok := constants.ParseFlightStatus(req.Status)
		if !ok {
			return nil, common.BadRequest("invalid status: " + req.Status)
		}
		status = parsed
	}

	exists, err := s.aircraft.Exists(ctx, req.TailNumber)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.BadRequest(constants.MsgRelatedRecord)
	}

	flight := gormModels.Flight{
		FlightNum:   req.FlightNum,
		DepartTime:  departTime,
		ArrivalTime: arrivalTime,
		Origin:      req.Origin,
		Destination: req.Destination,
		Status:      status,
		Gate:        optionalString(req.Gate),
		Terminal:    optionalString(req.Terminal),
		TailNumber:  req.TailNumber,
	}

	if err := s.flights.Insert(ctx, &flight); err != nil {
		return nil, common.MapStoreError(err)
	}

	dto := flightModelToDTO(flight)
	return &dto, nil
}

// ListAircraft reads the aircraft catalog, ascending by tail number. The
// catalog changes rarely, so it is cached like the search results.
func (s *FlightsService) ListAircraft(ctx context.Context) ([]dtos.AircraftResponse, error) {
	key := string(constants.CachePrefixAircraft) + "all"

	return common.GetOrSetTyped(s.cache, key, aircraftCacheTTL, func() ([]dtos.AircraftResponse, error) {
		return s.loadAircraft(ctx)
	})
}

func (s *FlightsService) loadAircraft(ctx context.Context) ([]dtos.AircraftResponse, error) {
	rows, err := s.aircraft.List(ctx)
	if err != nil {
		return nil, err
	}
	aircraft := make([]dtos.AircraftResponse, 0, len(rows))
	for _, a := range rows {
		aircraft = append(aircraft, dtos.AircraftResponse{
			TailNumber: a.TailNumber,
			ID:         a.ID,
			Model:      a.Model,
			Capacity:   a.Capacity,
			Status:     a.Status,
		})
	}
	return aircraft, nil
}

// UpdateStatus moves a flight to a new status from the closed enumeration.
func (s *FlightsService) UpdateStatus(ctx context.Context, flightNum string, status constants.FlightStatus) error {
	rows, err := s.flights.UpdateStatus(ctx, flightNum, status)
	if err != nil {
		return common.MapStoreError(err)
	}
	if rows == 0 {
		return common.NotFound(constants.MsgFlightNotFound)
	}
	return nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
