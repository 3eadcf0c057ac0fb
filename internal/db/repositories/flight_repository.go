package repositories

import (
	"context"

	"gorm.io/gorm"

	"airline-ops/tower/internal/constants"
	gormModels "airline-ops/tower/internal/models/gorm"
)

type FlightRepository struct {
	db *gorm.DB
}

func NewFlightRepository(db *gorm.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// Search applies the optional filters ANDed together, ordered by departure
// time ascending. The date filter compares calendar dates, not instants.
func (r *FlightRepository) Search(ctx context.Context, origin, destination, date string) ([]gormModels.Flight, error) {
	q := r.db.WithContext(ctx).Model(&gormModels.Flight{})
	if origin != "" {
		q = q.Where("origin = ?", origin)
	}
	if destination != "" {
		q = q.Where("destination = ?", destination)
	}
	if date != "" {
		q = q.Where("DATE(depart_time) = ?", date)
	}

	var flights []gormModels.Flight
	if err := q.Order("depart_time ASC").Find(&flights).Error; err != nil {
		return nil, err
	}
	return flights, nil
}

func (r *FlightRepository) List(ctx context.Context) ([]gormModels.Flight, error) {
	var flights []gormModels.Flight
	err := r.db.WithContext(ctx).
		Order("depart_time ASC").
		Find(&flights).Error
	if err != nil {
		return nil, err
	}
	return flights, nil
}

func (r *FlightRepository) Insert(ctx context.Context, flight *gormModels.Flight) error {
	return r.db.WithContext(ctx).Create(flight).Error
}

// UpdateStatus returns the number of rows matched so callers can distinguish
// a missing flight from a successful update.
func (r *FlightRepository) UpdateStatus(ctx context.Context, flightNum string, status constants.FlightStatus) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&gormModels.Flight{}).
		Where("flight_num = ?", flightNum).
		Update("status", status)
	return res.RowsAffected, res.Error
}
