package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"airline-ops/tower/internal/constants"
	"airline-ops/tower/internal/models/entities"
)

type IncidentRepository struct {
	db *sqlx.DB
}

func NewIncidentRepository(db *sqlx.DB) *IncidentRepository {
	return &IncidentRepository{db: db}
}

func (r *IncidentRepository) Insert(ctx context.Context, incident *entities.Incident) error {
	query := r.db.Rebind(constants.InsertIncident)
	_, err := r.db.ExecContext(ctx, query,
		incident.IncidentNum,
		incident.TimeOccurred,
		incident.Description,
		incident.TailNumber,
	)
	return err
}
