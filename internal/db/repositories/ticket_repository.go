package repositories

import (
	"context"

	"gorm.io/gorm"

	"airline-ops/tower/internal/constants"
	gormModels "airline-ops/tower/internal/models/gorm"
)

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) ListByPassenger(ctx context.Context, ssn string) ([]gormModels.Ticket, error) {
	var tickets []gormModels.Ticket
	err := r.db.WithContext(ctx).
		Where("passenger_ssn = ?", ssn).
		Order("date_booked DESC").
		Order("ticket_num DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *TicketRepository) Insert(ctx context.Context, ticket *gormModels.Ticket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

// UpdateStatusOwned flips the status only where the ticket belongs to the
// given passenger. A wrong owner and a wrong id both match zero rows.
func (r *TicketRepository) UpdateStatusOwned(ctx context.Context, ticketNum, ssn string, status constants.TicketStatus) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&gormModels.Ticket{}).
		Where("ticket_num = ? AND passenger_ssn = ?", ticketNum, ssn).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// UpdateStatus flips the status with no ownership scoping (agent refunds).
func (r *TicketRepository) UpdateStatus(ctx context.Context, ticketNum string, status constants.TicketStatus) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&gormModels.Ticket{}).
		Where("ticket_num = ?", ticketNum).
		Update("status", status)
	return res.RowsAffected, res.Error
}
