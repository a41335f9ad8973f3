package database

import (
	"court_manager/config"
	"court_manager/model"
	"fmt"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres connection and migrates the schema. The handle is
// returned to the caller; nothing here keeps package-level state.
// TranslateError makes constraint failures surface as gorm.ErrDuplicatedKey /
// gorm.ErrForeignKeyViolated so the repositories can map them to outcome kinds.
func Connect() (*gorm.DB, error) {
	p := config.Config("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database port %q: %w", p, err)
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	fmt.Println("Connection Opened to Database")
	err = db.AutoMigrate(
		&model.Customer{},
		&model.Court{},
		&model.Rental{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	fmt.Println("Database Migrated")

	return db, nil
}
