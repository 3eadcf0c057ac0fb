package gorm

import "time"

type Incident struct {
	IncidentNum  string    `gorm:"column:incident_num;primaryKey"`
	TimeOccurred time.Time `gorm:"column:time_occurred;not null"`
	Description  string    `gorm:"column:description;not null"`
	TailNumber   string    `gorm:"column:tail_number;not null"`

	// Relationships
	Aircraft Aircraft `gorm:"foreignKey:TailNumber;references:TailNumber"`
}

// TableName specifies the table name for GORM
func (Incident) TableName() string {
	return "incident"
}
