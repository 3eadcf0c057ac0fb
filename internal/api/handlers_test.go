package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"airline-ops/tower/internal/auth"
	"airline-ops/tower/internal/common"
	"airline-ops/tower/internal/config"
	"airline-ops/tower/internal/constants"
	"airline-ops/tower/internal/metrics"
	"airline-ops/tower/internal/models/dtos"
	"airline-ops/tower/internal/services"
)

// promauto registers against the default registerer, so the test binary gets
// exactly one registry.
var testMetrics = metrics.NewMetricsRegistry()

// Mock services

type mockTicketsService struct {
	resolveFunc func(ctx context.Context, claims auth.UserClaims) (string, error)
	listFunc    func(ctx context.Context, ssn string) ([]dtos.TicketResponse, error)
	bookFunc    func(ctx context.Context, ssn, flightNum, seatNum string, class constants.CabinClass) (*dtos.TicketResponse, error)
	bookForFunc func(ctx context.Context, passengerQuery, flightNum, seatNum string, class constants.CabinClass) (*dtos.TicketResponse, error)
	cancelFunc  func(ctx context.Context, ssn, ticketNum string) error
	refundFunc  func(ctx context.Context, ticketNum string) error
}

func (m *mockTicketsService) ResolvePassengerSSN(ctx context.Context, claims auth.UserClaims) (string, error) {
	return m.resolveFunc(ctx, claims)
}

func (m *mockTicketsService) ListForPassenger(ctx context.Context, ssn string) ([]dtos.TicketResponse, error) {
	return m.listFunc(ctx, ssn)
}

func (m *mockTicketsService) Book(ctx context.Context, ssn, flightNum, seatNum string, class constants.CabinClass) (*dtos.TicketResponse, error) {
	return m.bookFunc(ctx, ssn, flightNum, seatNum, class)
}

func (m *mockTicketsService) BookFor(ctx context.Context, passengerQuery, flightNum, seatNum string, class constants.CabinClass) (*dtos.TicketResponse, error) {
	return m.bookForFunc(ctx, passengerQuery, flightNum, seatNum, class)
}

func (m *mockTicketsService) Cancel(ctx context.Context, ssn, ticketNum string) error {
	return m.cancelFunc(ctx, ssn, ticketNum)
}

func (m *mockTicketsService) Refund(ctx context.Context, ticketNum string) error {
	return m.refundFunc(ctx, ticketNum)
}

type mockFlightsService struct {
	searchFunc       func(ctx context.Context, origin, destination, date string) ([]dtos.FlightResponse, error)
	listFunc         func(ctx context.Context) ([]dtos.FlightResponse, error)
	createFunc       func(ctx context.Context, req dtos.CreateFlightRequest) (*dtos.FlightResponse, error)
	updateStatusFunc func(ctx context.Context, flightNum string, status constants.FlightStatus) error
}

func (m *mockFlightsService) Search(ctx context.Context, origin, destination, date string) ([]dtos.FlightResponse, error) {
	return m.searchFunc(ctx, origin, destination, date)
}

func (m *mockFlightsService) List(ctx context.Context) ([]dtos.FlightResponse, error) {
	return m.listFunc(ctx)
}

func (m *mockFlightsService) Create(ctx context.Context, req dtos.CreateFlightRequest) (*dtos.FlightResponse, error) {
	return m.createFunc(ctx, req)
}

func (m *mockFlightsService) UpdateStatus(ctx context.Context, flightNum string, status constants.FlightStatus) error {
	return m.updateStatusFunc(ctx, flightNum, status)
}

type mockCrewService struct {
	scheduleFunc func(ctx context.Context, employeeID string) ([]dtos.FlightResponse, error)
	incidentFunc func(ctx context.Context, tailNumber, description string) (*dtos.IncidentResponse, error)
}

func (m *mockCrewService) Schedule(ctx context.Context, employeeID string) ([]dtos.FlightResponse, error) {
	return m.scheduleFunc(ctx, employeeID)
}

func (m *mockCrewService) ReportIncident(ctx context.Context, tailNumber, description string) (*dtos.IncidentResponse, error) {
	return m.incidentFunc(ctx, tailNumber, description)
}

// Helpers

func postJSON(t *testing.T, handler http.HandlerFunc, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return body
}

func withClaims(req *http.Request, claims *auth.SessionClaims) *http.Request {
	return req.WithContext(auth.SetUserClaims(req.Context(), claims))
}

// Login / register

func TestLoginHandler_Success(t *testing.T) {
	registry := services.NewUserRegistry(config.DefaultDemoUsers())
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	handler := LoginHandler(registry, issuer, testMetrics)

	rec := postJSON(t, handler, "/auth/login", dtos.LoginRequest{Username: "admin", Password: "admin123"})

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected data object, got %v", body)
	}
	if data["role"] != "admin" {
		t.Errorf("Expected role admin, got %v", data["role"])
	}
	token, _ := data["token"].(string)
	if token == "" {
		t.Fatal("Expected a token")
	}
	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Issued token failed verification: %v", err)
	}
	if claims.Username() != "admin" {
		t.Errorf("Expected subject admin, got %s", claims.Username())
	}
}

func TestLoginHandler_BadCredentials(t *testing.T) {
	registry := services.NewUserRegistry(config.DefaultDemoUsers())
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	handler := LoginHandler(registry, issuer, testMetrics)

	rec := postJSON(t, handler, "/auth/login", dtos.LoginRequest{Username: "admin", Password: "nope"})

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["message"] != constants.MsgInvalidCredentials {
		t.Errorf("Unexpected message: %v", body["message"])
	}
}

func TestLoginHandler_MissingFields(t *testing.T) {
	registry := services.NewUserRegistry(config.DefaultDemoUsers())
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	handler := LoginHandler(registry, issuer, testMetrics)

	rec := postJSON(t, handler, "/auth/login", dtos.LoginRequest{Username: "admin"})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestRegisterHandler_CreatedAndForbidden(t *testing.T) {
	registry := services.NewUserRegistry(config.DefaultDemoUsers())
	handler := RegisterHandler(registry)

	rec := postJSON(t, handler, "/auth/register", dtos.RegisterRequest{
		Username: "newpax", Password: "pw", Name: "New Pax", Email: "newpax@example.com", Role: "passenger",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = postJSON(t, handler, "/auth/register", dtos.RegisterRequest{
		Username: "newadmin", Password: "pw", Name: "New Admin", Email: "na@example.com", Role: "admin",
	})
	if rec.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for admin registration, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["message"] != constants.MsgCannotRegisterAdmin {
		t.Errorf("Unexpected message: %v", body["message"])
	}
}

// Flight search

func TestSearchFlightsHandler_ParamAliases(t *testing.T) {
	var gotOrigin, gotDestination string
	svc := &mockFlightsService{
		searchFunc: func(ctx context.Context, origin, destination, date string) ([]dtos.FlightResponse, error) {
			gotOrigin, gotDestination = origin, destination
			return []dtos.FlightResponse{}, nil
		},
	}
	handler := SearchFlightsHandler(svc, testMetrics)

	req := httptest.NewRequest(http.MethodGet, "/flights/search?from=JFK&to=LAX", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if gotOrigin != "JFK" || gotDestination != "LAX" {
		t.Errorf("Expected from/to aliases to map, got %q/%q", gotOrigin, gotDestination)
	}

	// Canonical names win over aliases.
	req = httptest.NewRequest(http.MethodGet, "/flights/search?origin=ORD&from=JFK", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if gotOrigin != "ORD" {
		t.Errorf("Expected origin param to win, got %q", gotOrigin)
	}
}

// Passenger booking

func TestBookTicketHandler_Validation(t *testing.T) {
	svc := &mockTicketsService{}
	handler := BookTicketHandler(svc, testMetrics)

	rec := postJSON(t, handler, "/passenger/tickets", dtos.BookTicketRequest{FlightNum: "AA101", SeatNum: "12A", Class: "luxury"})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown class, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["message"] != "flight_num, seat_num, and class are required." {
		t.Errorf("Unexpected message: %v", body["message"])
	}
}

func TestBookTicketHandler_Success(t *testing.T) {
	svc := &mockTicketsService{
		resolveFunc: func(ctx context.Context, claims auth.UserClaims) (string, error) {
			return "111-11-1111", nil
		},
		bookFunc: func(ctx context.Context, ssn, flightNum, seatNum string, class constants.CabinClass) (*dtos.TicketResponse, error) {
			if ssn != "111-11-1111" || class != constants.CabinEconomy {
				t.Errorf("Unexpected booking args: ssn=%s class=%s", ssn, class)
			}
			return &dtos.TicketResponse{TicketNum: "T123", Status: "CONFIRMED"}, nil
		},
	}
	handler := BookTicketHandler(svc, testMetrics)

	body, _ := json.Marshal(dtos.BookTicketRequest{FlightNum: "AA101", SeatNum: "12A", Class: "economy"})
	req := httptest.NewRequest(http.MethodPost, "/passenger/tickets", bytes.NewReader(body))
	req = withClaims(req, &auth.SessionClaims{RoleValue: "passenger", SSNValue: "111-11-1111"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCancelTicketHandler_NotOwned(t *testing.T) {
	svc := &mockTicketsService{
		resolveFunc: func(ctx context.Context, claims auth.UserClaims) (string, error) {
			return "111-11-1111", nil
		},
		cancelFunc: func(ctx context.Context, ssn, ticketNum string) error {
			return common.NotFound(constants.MsgTicketNotOwned)
		},
	}

	r := chi.NewRouter()
	r.Post("/passenger/tickets/{ticketNum}/cancel", CancelTicketHandler(svc))

	req := httptest.NewRequest(http.MethodPost, "/passenger/tickets/T999/cancel", nil)
	req = withClaims(req, &auth.SessionClaims{RoleValue: "passenger", SSNValue: "111-11-1111"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["message"] != constants.MsgTicketNotOwned {
		t.Errorf("Unexpected message: %v", body["message"])
	}
}

// Agent booking

func TestAgentBookTicketHandler_Validation(t *testing.T) {
	handler := AgentBookTicketHandler(&mockTicketsService{}, testMetrics)

	rec := postJSON(t, handler, "/agent/tickets", dtos.AgentBookRequest{FlightNum: "AA101", SeatNum: "1A", Class: "first"})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 without passenger_query, got %d", rec.Code)
	}
}

func TestRefundTicketHandler_NotFound(t *testing.T) {
	svc := &mockTicketsService{
		refundFunc: func(ctx context.Context, ticketNum string) error {
			return common.NotFound(constants.MsgTicketNotFound)
		},
	}

	r := chi.NewRouter()
	r.Post("/agent/tickets/{ticketNum}/refund", RefundTicketHandler(svc))

	req := httptest.NewRequest(http.MethodPost, "/agent/tickets/T999/refund", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}

// Crew

func TestCrewScheduleHandler_PassesEmployeeID(t *testing.T) {
	var gotEmployeeID string
	svc := &mockCrewService{
		scheduleFunc: func(ctx context.Context, employeeID string) ([]dtos.FlightResponse, error) {
			gotEmployeeID = employeeID
			return []dtos.FlightResponse{}, nil
		},
	}
	handler := CrewScheduleHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/crew/schedule", nil)
	req = withClaims(req, &auth.SessionClaims{RoleValue: "crew", EmployeeIDVal: "E100"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if gotEmployeeID != "E100" {
		t.Errorf("Expected employee id E100, got %q", gotEmployeeID)
	}
}

func TestUpdateFlightStatusHandler(t *testing.T) {
	var gotStatus constants.FlightStatus
	svc := &mockFlightsService{
		updateStatusFunc: func(ctx context.Context, flightNum string, status constants.FlightStatus) error {
			gotStatus = status
			return nil
		},
	}

	r := chi.NewRouter()
	r.Post("/crew/flights/{flightNum}/status", UpdateFlightStatusHandler(svc))

	send := func(payload any) *httptest.ResponseRecorder {
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, "/crew/flights/AA101/status", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	rec := send(dtos.UpdateFlightStatusRequest{Status: "delayed"})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotStatus != constants.FlightDelayed {
		t.Errorf("Expected normalized DELAYED, got %s", gotStatus)
	}

	rec = send(dtos.UpdateFlightStatusRequest{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 without status, got %d", rec.Code)
	}
	if decodeBody(t, rec)["message"] != "status is required." {
		t.Error("Unexpected message for missing status")
	}

	rec = send(dtos.UpdateFlightStatusRequest{Status: "TAXIING"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown status, got %d", rec.Code)
	}
}

func TestReportIncidentHandler(t *testing.T) {
	svc := &mockCrewService{
		incidentFunc: func(ctx context.Context, tailNumber, description string) (*dtos.IncidentResponse, error) {
			return &dtos.IncidentResponse{
				IncidentNum: "I0AF31B29C44",
				TailNumber:  tailNumber, Description: description,
				TimeOccurred: time.Now().UTC(),
			}, nil
		},
	}
	handler := ReportIncidentHandler(svc, testMetrics)

	rec := postJSON(t, handler, "/crew/incidents", dtos.ReportIncidentRequest{
		TailNumber: "N100AA", Description: "Hydraulic leak",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = postJSON(t, handler, "/crew/incidents", dtos.ReportIncidentRequest{TailNumber: "N100AA"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 without description, got %d", rec.Code)
	}
	if decodeBody(t, rec)["message"] != "tail_number and description are required." {
		t.Error("Unexpected message for missing description")
	}
}

// Admin

func TestCreateFlightHandler_Validation(t *testing.T) {
	handler := CreateFlightHandler(&mockFlightsService{})

	rec := postJSON(t, handler, "/admin/flights", dtos.CreateFlightRequest{
		FlightNum: "AA500", Origin: "JFK", Destination: "LAX",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing fields, got %d", rec.Code)
	}
	if decodeBody(t, rec)["message"] != "flight_num, depart_time, arrival_time, origin, destination, and tail_number are required." {
		t.Error("Unexpected message for missing fields")
	}
}

func TestCreateFlightHandler_Success(t *testing.T) {
	svc := &mockFlightsService{
		createFunc: func(ctx context.Context, req dtos.CreateFlightRequest) (*dtos.FlightResponse, error) {
			return &dtos.FlightResponse{FlightNum: req.FlightNum, Status: "SCHEDULED"}, nil
		},
	}
	handler := CreateFlightHandler(svc)

	rec := postJSON(t, handler, "/admin/flights", dtos.CreateFlightRequest{
		FlightNum: "AA500", DepartTime: "2026-09-10T08:00:00Z", ArrivalTime: "2026-09-10T11:00:00Z",
		Origin: "JFK", Destination: "LAX", TailNumber: "N100AA",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["status"] != "success" {
		t.Errorf("Expected success envelope, got %v", body["status"])
	}
}
