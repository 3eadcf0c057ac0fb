package services

import (
	"context"
	"time"

	"airline-ops/tower/internal/common"
	"airline-ops/tower/internal/db/repositories"
	"airline-ops/tower/internal/models/dtos"
	"airline-ops/tower/internal/models/entities"
)

type CrewService struct {
	crew      *repositories.CrewRepository
	flights   *repositories.FlightRepository
	incidents *repositories.IncidentRepository
}

func NewCrewService(crew *repositories.CrewRepository, flights *repositories.FlightRepository, incidents *repositories.IncidentRepository) *CrewService {
	return &CrewService{
		crew:      crew,
		flights:   flights,
		incidents: incidents,
	}
}

// Schedule returns the employee's assigned flights. Tokens without an
// employee id fall back to the full flight list.
func (s *CrewService) Schedule(ctx context.Context, employeeID string) ([]dtos.FlightResponse, error) {
	if employeeID == "" {
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

	rows, err := s.crew.GetSchedule(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	flights := make([]dtos.FlightResponse, 0, len(rows))
	for _, f := range rows {
		flights = append(flights, flightEntityToDTO(f))
	}
	return flights, nil
}

// ReportIncident files an incident against an aircraft, timestamped at
// insertion time.
func (s *CrewService) ReportIncident(ctx context.Context, tailNumber, description string) (*dtos.IncidentResponse, error) {
	incident := entities.Incident{
		IncidentNum:  common.NewIncidentNum(),
		TimeOccurred: time.Now().UTC(),
		Description:  description,
		TailNumber:   tailNumber,
	}

	if err := s.incidents.Insert(ctx, &incident); err != nil {
		return nil, common.MapStoreError(err)
	}

	return &dtos.IncidentResponse{
		IncidentNum:  incident.IncidentNum,
		TimeOccurred: incident.TimeOccurred,
		Description:  incident.Description,
		TailNumber:   incident.TailNumber,
	}, nil
}
