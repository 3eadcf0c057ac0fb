package gorm

import (
	"time"

	"airline-ops/tower/internal/constants"
)

type Ticket struct {
	TicketNum    string                 `gorm:"column:ticket_num;primaryKey"`
	Price        float64                `gorm:"column:price;not null"`
	SeatNum      string                 `gorm:"column:seat_num;not null"`
	Class        constants.CabinClass   `gorm:"column:class;not null"`
	DateBooked   time.Time              `gorm:"column:date_booked;not null"`
	Status       constants.TicketStatus `gorm:"column:status;not null"`
	PassengerSSN string                 `gorm:"column:passenger_ssn;not null"`
	FlightNum    string                 `gorm:"column:flight_num;not null"`

	// Relationships
	Passenger Passenger `gorm:"foreignKey:PassengerSSN;references:SSN"`
	Flight    Flight    `gorm:"foreignKey:FlightNum;references:FlightNum"`
}

// TableName specifies the table name for GORM
func (Ticket) TableName() string {
	return "ticket"
}
