package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"airline-ops/tower/internal/constants"
	"airline-ops/tower/internal/models/entities"
)

type AircraftRepository struct {
	db *sqlx.DB
}

func NewAircraftRepository(db *sqlx.DB) *AircraftRepository {
	return &AircraftRepository{db: db}
}

func (r *AircraftRepository) List(ctx context.Context) ([]entities.Aircraft, error) {
	var aircraft []entities.Aircraft
	err := r.db.SelectContext(ctx, &aircraft, constants.ListAircraft)
	if err != nil {
		return nil, err
	}
	return aircraft, nil
}

// Exists reports whether the tail number references a known aircraft.
func (r *AircraftRepository) Exists(ctx context.Context, tailNumber string) (bool, error) {
	var count int
	query := r.db.Rebind(constants.CountAircraftByTailNumber)
	if err := r.db.GetContext(ctx, &count, query, tailNumber); err != nil {
		return false, err
	}
	return count > 0, nil
}
