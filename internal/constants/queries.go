package constants

// Raw SQL used by the sqlx repositories. Placeholders are written in the
// `?` form and rebound per driver with sqlx.Rebind.
const (
	ListAircraft = `
	SELECT tail_number, id, model, capacity, status
	FROM aircraft
	ORDER BY tail_number ASC
	`

	CountAircraftByTailNumber = `
	SELECT COUNT(1) FROM aircraft WHERE tail_number = ?
	`

	InsertIncident = `
	INSERT INTO incident (incident_num, time_occurred, description, tail_number)
	VALUES (?, ?, ?, ?)
	`

	// Flights where the employee appears as pilot or ground staff,
	// deduplicated by the UNION itself.
	GetCrewSchedule = `
	SELECT DISTINCT f.flight_num, f.depart_time, f.arrival_time, f.origin, f.destination,
	                f.status, f.gate, f.terminal, f.tail_number
	FROM flight f
	WHERE f.flight_num IN (
		SELECT flight_num FROM pilot_of WHERE pilot_id = ?
		UNION
		SELECT flight_num FROM staff_of WHERE plane_host_id = ?
	)
	ORDER BY f.depart_time ASC
	`
)
