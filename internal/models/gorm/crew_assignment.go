package gorm

// PilotAssignment maps a pilot to a flight they operate.
type PilotAssignment struct {
	PilotID   string `gorm:"column:pilot_id;primaryKey"`
	FlightNum string `gorm:"column:flight_num;primaryKey"`
}

// TableName specifies the table name for GORM
func (PilotAssignment) TableName() string {
	return "pilot_of"
}

// StaffAssignment maps a ground staff member to a flight they host.
type StaffAssignment struct {
	PlaneHostID string `gorm:"column:plane_host_id;primaryKey"`
	FlightNum   string `gorm:"column:flight_num;primaryKey"`
}

// TableName specifies the table name for GORM
func (StaffAssignment) TableName() string {
	return "staff_of"
}
