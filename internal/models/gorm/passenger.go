package gorm

// Passenger extends a Person with travel document and contact details.
type Passenger struct {
	SSN         string `gorm:"column:ssn;primaryKey"`
	PassportNum string `gorm:"column:passport_num"`
	Email       string `gorm:"column:email"`
	Phone       string `gorm:"column:phone"`

	// Relationships
	Person Person `gorm:"foreignKey:SSN;references:SSN"`
}

// TableName specifies the table name for GORM
func (Passenger) TableName() string {
	return "passenger"
}
