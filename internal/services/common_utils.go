package services

import (
	"time"

	"airline-ops/tower/internal/common"
	"airline-ops/tower/internal/models/dtos"
	"airline-ops/tower/internal/models/entities"
	gormModels "airline-ops/tower/internal/models/gorm"
)

// Timestamp layouts accepted on flight creation, in order of preference.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

func parseTimestamp(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, common.BadRequest("invalid timestamp: " + value + ": " + lastErr.Error())
}

func flightModelToDTO(f gormModels.Flight) dtos.FlightResponse {
	return dtos.FlightResponse{
		FlightNum:   f.FlightNum,
		DepartTime:  f.DepartTime,
		ArrivalTime: f.ArrivalTime,
		Origin:      f.Origin,
		Destination: f.Destination,
		Status:      f.Status.String(),
		Gate:        f.Gate,
		Terminal:    f.Terminal,
		TailNumber:  f.TailNumber,
	}
}

func flightEntityToDTO(f entities.Flight) dtos.FlightResponse {
	return dtos.FlightResponse{
		FlightNum:   f.FlightNum,
		DepartTime:  f.DepartTime,
		ArrivalTime: f.ArrivalTime,
		Origin:      f.Origin,
		Destination: f.Destination,
		Status:      f.Status.String(),
		Gate:        f.Gate,
		Terminal:    f.Terminal,
		TailNumber:  f.TailNumber,
	}
}

func ticketToDTO(t gormModels.Ticket) dtos.TicketResponse {
	return dtos.TicketResponse{
		TicketNum:  t.TicketNum,
		FlightNum:  t.FlightNum,
		SeatNum:    t.SeatNum,
		Class:      t.Class.String(),
		Status:     t.Status.String(),
		Price:      t.Price,
		DateBooked: t.DateBooked,
	}
}
