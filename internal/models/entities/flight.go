package entities

import (
	"time"

	"airline-ops/tower/internal/constants"
)

type Flight struct {
	FlightNum   string                 `db:"flight_num"`
	DepartTime  time.Time              `db:"depart_time"`
	ArrivalTime time.Time              `db:"arrival_time"`
	Origin      string                 `db:"origin"`
	Destination string                 `db:"destination"`
	Status      constants.FlightStatus `db:"status"`
	Gate        *string                `db:"gate"`
	Terminal    *string                `db:"terminal"`
	TailNumber  string                 `db:"tail_number"`
}
