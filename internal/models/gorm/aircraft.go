package gorm

type Aircraft struct {
	TailNumber string `gorm:"column:tail_number;primaryKey"`
	ID         string `gorm:"column:id"`
	Model      string `gorm:"column:model"`
	Capacity   int    `gorm:"column:capacity"`
	Status     string `gorm:"column:status"`
}

// TableName specifies the table name for GORM
func (Aircraft) TableName() string {
	return "aircraft"
}
