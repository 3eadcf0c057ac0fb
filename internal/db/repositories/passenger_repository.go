package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	gormModels "airline-ops/tower/internal/models/gorm"
)

// PassengerSearchRow is the joined passenger+person projection returned by
// the fuzzy lookup.
type PassengerSearchRow struct {
	SSN         string
	FirstName   string
	LastName    string
	PassportNum string
	Email       string
	Phone       string
}

type PassengerRepository struct {
	db *gorm.DB
}

func NewPassengerRepository(db *gorm.DB) *PassengerRepository {
	return &PassengerRepository{db: db}
}

// fuzzyMatch is the shared predicate: case-insensitive partial match across
// identifier, passport number, email, first/last name and full name.
func fuzzyMatch(q *gorm.DB, query string) *gorm.DB {
	like := "%" + strings.ToLower(query) + "%"
	return q.Where(
		`LOWER(passenger.ssn) LIKE ?
		OR LOWER(passenger.passport_num) LIKE ?
		OR LOWER(passenger.email) LIKE ?
		OR LOWER(person.first_name) LIKE ?
		OR LOWER(person.last_name) LIKE ?
		OR LOWER(person.first_name || ' ' || person.last_name) LIKE ?`,
		like, like, like, like, like, like,
	)
}

// Search returns up to limit matches ordered by last then first name.
func (r *PassengerRepository) Search(ctx context.Context, query string, limit int) ([]PassengerSearchRow, error) {
	var rows []PassengerSearchRow
	q := r.db.WithContext(ctx).
		Model(&gormModels.Passenger{}).
		Select(`passenger.ssn AS ssn, person.first_name AS first_name, person.last_name AS last_name,
			passenger.passport_num AS passport_num, passenger.email AS email, passenger.phone AS phone`).
		Joins("JOIN person ON person.ssn = passenger.ssn")
	q = fuzzyMatch(q, query).
		Order("person.last_name").
		Order("person.first_name").
		Limit(limit)
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindSSNByQuery resolves the first fuzzy match by the same ordering, or
// gorm.ErrRecordNotFound when nothing matches.
func (r *PassengerRepository) FindSSNByQuery(ctx context.Context, query string) (string, error) {
	rows, err := r.Search(ctx, query, 1)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", gorm.ErrRecordNotFound
	}
	return rows[0].SSN, nil
}

// FindSSNByEmail backs the token-identity fallback for passengers whose
// session carries only an email claim.
func (r *PassengerRepository) FindSSNByEmail(ctx context.Context, email string) (string, error) {
	var passenger gormModels.Passenger
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Take(&passenger).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", gorm.ErrRecordNotFound
		}
		return "", err
	}
	return passenger.SSN, nil
}
