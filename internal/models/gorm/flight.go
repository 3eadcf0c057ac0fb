package gorm

import (
	"time"

	"airline-ops/tower/internal/constants"
)

type Flight struct {
	FlightNum   string                 `gorm:"column:flight_num;primaryKey"`
	DepartTime  time.Time              `gorm:"column:depart_time;not null"`
	ArrivalTime time.Time              `gorm:"column:arrival_time;not null"`
	Origin      string                 `gorm:"column:origin;not null"`
	Destination string                 `gorm:"column:destination;not null"`
	Status      constants.FlightStatus `gorm:"column:status;not null"`
	Gate        *string                `gorm:"column:gate"`
	Terminal    *string                `gorm:"column:terminal"`
	TailNumber  string                 `gorm:"column:tail_number;not null"`

	// Relationships
	Aircraft Aircraft `gorm:"foreignKey:TailNumber;references:TailNumber"`
}

// TableName specifies the table name for GORM
func (Flight) TableName() string {
	return "flight"
}
