package dtos

import "time"

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RegisterResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type FlightResponse struct {
	FlightNum   string    `json:"flight_num"`
	DepartTime  time.Time `json:"depart_time"`
	ArrivalTime time.Time `json:"arrival_time"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Status      string    `json:"status"`
	Gate        *string   `json:"gate"`
	Terminal    *string   `json:"terminal"`
	TailNumber  string    `json:"tail_number"`
}

type TicketResponse struct {
	TicketNum    string    `json:"ticket_num"`
	FlightNum    string    `json:"flight_num"`
	SeatNum      string    `json:"seat_num"`
	Class        string    `json:"class"`
	Status       string    `json:"status"`
	Price        float64   `json:"price"`
	DateBooked   time.Time `json:"date_booked"`
	PassengerSSN string    `json:"passenger_ssn,omitempty"`
}

type PassengerResponse struct {
	SSN         string `json:"ssn"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PassportNum string `json:"passport_num"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

type AircraftResponse struct {
	TailNumber string `json:"tail_number"`
	ID         string `json:"id"`
	Model      string `json:"model"`
	Capacity   int    `json:"capacity"`
	Status     string `json:"status"`
}

type IncidentResponse struct {
	IncidentNum  string    `json:"incident_num"`
	TimeOccurred time.Time `json:"time_occurred"`
	Description  string    `json:"description"`
	TailNumber   string    `json:"tail_number"`
}
