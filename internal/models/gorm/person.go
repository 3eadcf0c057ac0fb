package gorm

// Person is the identity row passengers hang off.
type Person struct {
	SSN       string `gorm:"column:ssn;primaryKey"`
	FirstName string `gorm:"column:first_name;not null"`
	LastName  string `gorm:"column:last_name;not null"`
}

// TableName specifies the table name for GORM
func (Person) TableName() string {
	return "person"
}
