package constants

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// FlightStatus mirrors the flight.status column
type FlightStatus string

const (
	FlightScheduled FlightStatus = "SCHEDULED"
	FlightBoarding  FlightStatus = "BOARDING"
	FlightDelayed   FlightStatus = "DELAYED"
	FlightInAir     FlightStatus = "IN_AIR"
	FlightLanded    FlightStatus = "LANDED"
	FlightCancelled FlightStatus = "CANCELLED"
)

func (s FlightStatus) String() string { return string(s) }

// ParseFlightStatus validates a status string against the closed set.
// Status updates are rejected at the boundary rather than threaded
// through to storage as free-form strings.
func ParseFlightStatus(s string) (FlightStatus, bool) {
	switch FlightStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case FlightScheduled:
		return FlightScheduled, true
	case FlightBoarding:
		return FlightBoarding, true
	case FlightDelayed:
		return FlightDelayed, true
	case FlightInAir:
		return FlightInAir, true
	case FlightLanded:
		return FlightLanded, true
	case FlightCancelled:
		return FlightCancelled, true
	}
	return "", false
}

func (s *FlightStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = FlightStatus(v)
	case []byte:
		*s = FlightStatus(v)
	default:
		return fmt.Errorf("FlightStatus: cannot scan type %T", src)
	}
	return nil
}

func (s FlightStatus) Value() (driver.Value, error) { return string(s), nil }

// TicketStatus mirrors the ticket.status column
type TicketStatus string

const (
	TicketConfirmed TicketStatus = "CONFIRMED"
	TicketCancelled TicketStatus = "CANCELLED"
	TicketRefunded  TicketStatus = "REFUNDED"
)

func (s TicketStatus) String() string { return string(s) }

func (s *TicketStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = TicketStatus(v)
	case []byte:
		*s = TicketStatus(v)
	default:
		return fmt.Errorf("TicketStatus: cannot scan type %T", src)
	}
	return nil
}

func (s TicketStatus) Value() (driver.Value, error) { return string(s), nil }

// CabinClass mirrors the ticket.class column
type CabinClass string

const (
	CabinEconomy  CabinClass = "ECONOMY"
	CabinBusiness CabinClass = "BUSINESS"
	CabinFirst    CabinClass = "FIRST"
)

func (c CabinClass) String() string { return string(c) }

// ParseCabinClass normalizes and validates a cabin class string
func ParseCabinClass(s string) (CabinClass, bool) {
	switch CabinClass(strings.ToUpper(strings.TrimSpace(s))) {
	case CabinEconomy:
		return CabinEconomy, true
	case CabinBusiness:
		return CabinBusiness, true
	case CabinFirst:
		return CabinFirst, true
	}
	return "", false
}

func (c *CabinClass) Scan(src interface{}) error {
	if src == nil {
		*c = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*c = CabinClass(v)
	case []byte:
		*c = CabinClass(v)
	default:
		return fmt.Errorf("CabinClass: cannot scan type %T", src)
	}
	return nil
}

func (c CabinClass) Value() (driver.Value, error) { return string(c), nil }
