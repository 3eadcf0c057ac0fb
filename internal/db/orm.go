package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	gormModels "airline-ops/tower/internal/models/gorm"
)

// InitPostgresORM opens the GORM handle used by the model-mapped
// repositories. TranslateError lets constraint violations surface as
// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated regardless of driver.
func InitPostgresORM(dsn string) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return conn, nil
}

// Migrate creates or updates the relational schema.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&gormModels.Person{},
		&gormModels.Passenger{},
		&gormModels.Aircraft{},
		&gormModels.Flight{},
		&gormModels.Ticket{},
		&gormModels.Incident{},
		&gormModels.PilotAssignment{},
		&gormModels.StaffAssignment{},
	)
}
