package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"airline-ops/tower/internal/models/entities"
)

// Setup sqlx test database
func setupSqlxDB(t *testing.T) *sqlx.DB {
	db, err := sqlx.Connect("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A fresh pool connection would see an empty in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	schema := `
	CREATE TABLE aircraft (
		tail_number TEXT PRIMARY KEY,
		id TEXT NOT NULL DEFAULT '',
		model TEXT NOT NULL DEFAULT '',
		capacity INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT ''
	);
	CREATE TABLE flight (
		flight_num TEXT PRIMARY KEY,
		depart_time TIMESTAMP NOT NULL,
		arrival_time TIMESTAMP NOT NULL,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		status TEXT NOT NULL,
		gate TEXT,
		terminal TEXT,
		tail_number TEXT NOT NULL
	);
	CREATE TABLE incident (
		incident_num TEXT PRIMARY KEY,
		time_occurred TIMESTAMP NOT NULL,
		description TEXT NOT NULL,
		tail_number TEXT NOT NULL
	);
	CREATE TABLE pilot_of (
		pilot_id TEXT NOT NULL,
		flight_num TEXT NOT NULL,
		PRIMARY KEY (pilot_id, flight_num)
	);
	CREATE TABLE staff_of (
		plane_host_id TEXT NOT NULL,
		flight_num TEXT NOT NULL,
		PRIMARY KEY (plane_host_id, flight_num)
	);`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return db
}

func seedCrewSchedule(t *testing.T, db *sqlx.DB) {
	t.Helper()

	day := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	flights := []struct {
		num    string
		depart time.Time
	}{
		{"AA101", day.Add(6 * time.Hour)},
		{"AA102", day},
		{"BB201", day.Add(3 * time.Hour)},
	}
	for _, f := range flights {
		_, err := db.Exec(
			`INSERT INTO flight (flight_num, depart_time, arrival_time, origin, destination, status, tail_number)
			 VALUES (?, ?, ?, 'JFK', 'LAX', 'SCHEDULED', 'N100AA')`,
			f.num, f.depart, f.depart.Add(2*time.Hour))
		if err != nil {
			t.Fatalf("Failed to seed flight: %v", err)
		}
	}

	// E100 pilots AA101 and also hosts AA102. The overlap row on AA101
	// checks that the UNION deduplicates.
	seed := []struct {
		table, idCol, id, flight string
	}{
		{"pilot_of", "pilot_id", "E100", "AA101"},
		{"staff_of", "plane_host_id", "E100", "AA101"},
		{"staff_of", "plane_host_id", "E100", "AA102"},
		{"pilot_of", "pilot_id", "E200", "BB201"},
	}
	for _, s := range seed {
		_, err := db.Exec("INSERT INTO "+s.table+" ("+s.idCol+", flight_num) VALUES (?, ?)", s.id, s.flight)
		if err != nil {
			t.Fatalf("Failed to seed assignment: %v", err)
		}
	}
}

func TestCrewRepository_GetSchedule(t *testing.T) {
	db := setupSqlxDB(t)
	seedCrewSchedule(t, db)
	repo := NewCrewRepository(db)

	flights, err := repo.GetSchedule(context.Background(), "E100")
	if err != nil {
		t.Fatalf("GetSchedule failed: %v", err)
	}
	if len(flights) != 2 {
		t.Fatalf("Expected 2 distinct flights, got %d", len(flights))
	}
	// Ordered by departure time ascending.
	if flights[0].FlightNum != "AA102" || flights[1].FlightNum != "AA101" {
		t.Errorf("Unexpected order: %s, %s", flights[0].FlightNum, flights[1].FlightNum)
	}
}

func TestCrewRepository_GetSchedule_NoAssignments(t *testing.T) {
	db := setupSqlxDB(t)
	seedCrewSchedule(t, db)
	repo := NewCrewRepository(db)

	flights, err := repo.GetSchedule(context.Background(), "E999")
	if err != nil {
		t.Fatalf("GetSchedule failed: %v", err)
	}
	if len(flights) != 0 {
		t.Errorf("Expected no flights, got %d", len(flights))
	}
}

func TestAircraftRepository_ListAndExists(t *testing.T) {
	db := setupSqlxDB(t)
	repo := NewAircraftRepository(db)
	ctx := context.Background()

	for _, tail := range []string{"N200BB", "N100AA"} {
		if _, err := db.Exec(
			"INSERT INTO aircraft (tail_number, model, capacity, status) VALUES (?, 'A320', 180, 'ACTIVE')",
			tail); err != nil {
			t.Fatalf("Failed to seed aircraft: %v", err)
		}
	}

	aircraft, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(aircraft) != 2 {
		t.Fatalf("Expected 2 aircraft, got %d", len(aircraft))
	}
	if aircraft[0].TailNumber != "N100AA" {
		t.Errorf("Expected tail_number order, got %s first", aircraft[0].TailNumber)
	}

	ok, err := repo.Exists(ctx, "N100AA")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !ok {
		t.Error("Expected N100AA to exist")
	}

	ok, err = repo.Exists(ctx, "N999ZZ")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if ok {
		t.Error("Expected N999ZZ to be absent")
	}
}

func TestIncidentRepository_Insert(t *testing.T) {
	db := setupSqlxDB(t)
	repo := NewIncidentRepository(db)

	incident := &entities.Incident{
		IncidentNum:  "I0AF31B29C44",
		TimeOccurred: time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC),
		Description:  "Bird strike on approach",
		TailNumber:   "N100AA",
	}
	if err := repo.Insert(context.Background(), incident); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	var count int
	if err := db.Get(&count, "SELECT COUNT(1) FROM incident WHERE incident_num = ?", incident.IncidentNum); err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 incident row, got %d", count)
	}
}
