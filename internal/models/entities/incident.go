package entities

import "time"

type Incident struct {
	IncidentNum  string    `db:"incident_num"`
	TimeOccurred time.Time `db:"time_occurred"`
	Description  string    `db:"description"`
	TailNumber   string    `db:"tail_number"`
}
