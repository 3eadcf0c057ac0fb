package dtos

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type BookTicketRequest struct {
	FlightNum string `json:"flight_num"`
	SeatNum   string `json:"seat_num"`
	Class     string `json:"class"`
}

// AgentBookRequest books on behalf of a passenger resolved by fuzzy lookup.
type AgentBookRequest struct {
	PassengerQuery string `json:"passenger_query"`
	FlightNum      string `json:"flight_num"`
	SeatNum        string `json:"seat_num"`
	Class          string `json:"class"`
}

type CreateFlightRequest struct {
	FlightNum   string `json:"flight_num"`
	DepartTime  string `json:"depart_time"`
	ArrivalTime string `json:"arrival_time"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Status      string `json:"status"`
	Gate        string `json:"gate"`
	Terminal    string `json:"terminal"`
	TailNumber  string `json:"tail_number"`
}

type UpdateFlightStatusRequest struct {
	Status string `json:"status"`
}

type ReportIncidentRequest struct {
	TailNumber  string `json:"tail_number"`
	Description string `json:"description"`
}
