package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"airline-ops/tower/internal/auth"
	"airline-ops/tower/internal/common"
	"airline-ops/tower/internal/constants"
	"airline-ops/tower/internal/db/repositories"
	"airline-ops/tower/internal/models/dtos"
	gormModels "airline-ops/tower/internal/models/gorm"
)

type TicketsService struct {
	tickets      *repositories.TicketRepository
	passengers   *repositories.PassengerRepository
	defaultPrice float64
}

func NewTicketsService(tickets *repositories.TicketRepository, passengers *repositories.PassengerRepository, defaultPrice float64) *TicketsService {
	return &TicketsService{
		tickets:      tickets,
		passengers:   passengers,
		defaultPrice: defaultPrice,
	}
}

// ResolvePassengerSSN extracts the caller's passenger identity from the
// session token, falling back to an email lookup for tokens issued without
// an ssn claim.
func (s *TicketsService) ResolvePassengerSSN(ctx context.Context, claims auth.UserClaims) (string, error) {
	if ssn := claims.PassengerSSN(); ssn != "" {
		return ssn, nil
	}

	email := claims.Email()
	if email == "" {
		return "", common.BadRequest(constants.MsgPassengerIdentity)
	}

	ssn, err := s.passengers.FindSSNByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", common.NotFound(constants.MsgPassengerProfile)
		}
		return "", err
	}
	return ssn, nil
}

func (s *TicketsService) ListForPassenger(ctx context.Context, ssn string) ([]dtos.TicketResponse, error) {
	rows, err := s.tickets.ListByPassenger(ctx, ssn)
	if err != nil {
		return nil, err
	}
	tickets := make([]dtos.TicketResponse, 0, len(rows))
	for _, t := range rows {
		tickets = append(tickets, ticketToDTO(t))
	}
	return tickets, nil
}

// Book creates a CONFIRMED ticket at the default price.
func (s *TicketsService) Book(ctx context.Context, ssn, flightNum, seatNum string, class constants.CabinClass) (*dtos.TicketResponse, error) {
	ticket := gormModels.Ticket{
		TicketNum:    common.NewTicketNum(),
		Price:        s.defaultPrice,
		SeatNum:      seatNum,
		Class:        class,
		DateBooked:   time.Now(),
		Status:       constants.TicketConfirmed,
		PassengerSSN: ssn,
		FlightNum:    flightNum,
	}

	if err := s.tickets.Insert(ctx, &ticket); err != nil {
		return nil, common.MapStoreError(err)
	}

	dto := ticketToDTO(ticket)
	return &dto, nil
}

// BookFor resolves exactly one passenger by the agent's fuzzy query and
// books on their behalf.
func (s *TicketsService) BookFor(ctx context.Context, passengerQuery, flightNum, seatNum string, class constants.CabinClass) (*dtos.TicketResponse, error) {
	ssn, err := s.passengers.FindSSNByQuery(ctx, passengerQuery)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFound(constants.MsgPassengerNotFound)
		}
		return nil, err
	}

	dto, err := s.Book(ctx, ssn, flightNum, seatNum, class)
	if err != nil {
		return nil, err
	}
	dto.PassengerSSN = ssn
	return dto, nil
}

// Cancel flips the caller's own ticket to CANCELLED. A foreign ticket and a
// missing ticket produce the same 404, leaking nothing.
func (s *TicketsService) Cancel(ctx context.Context, ssn, ticketNum string) error {
	rows, err := s.tickets.UpdateStatusOwned(ctx, ticketNum, ssn, constants.TicketCancelled)
	if err != nil {
		return common.MapStoreError(err)
	}
	if rows == 0 {
		return common.NotFound(constants.MsgTicketNotOwned)
	}
	return nil
}

// Refund flips any ticket to REFUNDED with no ownership scoping.
func (s *TicketsService) Refund(ctx context.Context, ticketNum string) error {
	rows, err := s.tickets.UpdateStatus(ctx, ticketNum, constants.TicketRefunded)
	if err != nil {
		return common.MapStoreError(err)
	}
	if rows == 0 {
		return common.NotFound(constants.MsgTicketNotFound)
	}
	return nil
}
