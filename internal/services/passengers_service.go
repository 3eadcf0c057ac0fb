package services

import (
	"context"

	"airline-ops/tower/internal/db/repositories"
	"airline-ops/tower/internal/models/dtos"
)

// passengerSearchCap bounds an agent lookup so a broad query cannot pull
// the whole table.
const passengerSearchCap = 50

type PassengersService struct {
	passengers *repositories.PassengerRepository
}

func NewPassengersService(passengers *repositories.PassengerRepository) *PassengersService {
	return &PassengersService{passengers: passengers}
}

// Search runs the agent's fuzzy lookup. An empty query returns an empty
// result rather than the whole table.
func (s *PassengersService) Search(ctx context.Context, query string) ([]dtos.PassengerResponse, error) {
	if query == "" {
		return []dtos.PassengerResponse{}, nil
	}

	rows, err := s.passengers.Search(ctx, query, passengerSearchCap)
	if err != nil {
		return nil, err
	}

	results := make([]dtos.PassengerResponse, 0, len(rows))
	for _, row := range rows {
		results = append(results, dtos.PassengerResponse{
			SSN:         row.SSN,
			FirstName:   row.FirstName,
			LastName:    row.LastName,
			PassportNum: row.PassportNum,
			Email:       row.Email,
			Phone:       row.Phone,
		})
	}
	return results, nil
}
