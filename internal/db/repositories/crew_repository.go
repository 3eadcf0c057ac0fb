package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"airline-ops/tower/internal/constants"
	"airline-ops/tower/internal/models/entities"
)

type CrewRepository struct {
	db *sqlx.DB
}

func NewCrewRepository(db *sqlx.DB) *CrewRepository {
	return &CrewRepository{db: db}
}

// GetSchedule returns the flights where the employee appears as pilot or
// ground staff, deduplicated and ordered by departure time.
func (r *CrewRepository) GetSchedule(ctx context.Context, employeeID string) ([]entities.Flight, error) {
	var flights []entities.Flight
	query := r.db.Rebind(constants.GetCrewSchedule)
	err := r.db.SelectContext(ctx, &flights, query, employeeID, employeeID)
	if err != nil {
		return nil, err
	}
	return flights, nil
}
