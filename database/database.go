package database

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Leerling-hub/Booking/domain"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the database of the given driver (sqlite, mysql or postgres).
// Driver specific constraint errors are translated to gorm.ErrDuplicatedKey and
// gorm.ErrForeignKeyViolated.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "mysql":
		// without it the server reports changed rows, and a PUT that changes
		// nothing would look like an unknown id
		if !strings.Contains(dsn, "clientFoundRows") {
			dsn += separator(dsn) + "clientFoundRows=true"
		}
		if !strings.Contains(dsn, "parseTime") {
			dsn += "&parseTime=True"
		}
		dialector = mysql.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", driver, err)
	}

	if driver == "sqlite" {
		// sqlite serializes writers; a single connection also keeps ":memory:" databases alive
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

func separator(dsn string) string {
	if strings.Contains(dsn, "?") {
		return "&"
	}
	return "?"
}

// Migrate creates or updates the tables of every entity
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(domain.Models()...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Teardown deletes every row, children before parents
func Teardown(ctx context.Context, db *gorm.DB) error {
	log.Println("Tearing down database...")

	tables := []struct {
		name  string
		model interface{}
	}{
		{"Reviews", &domain.Review{}},
		{"Bookings", &domain.Booking{}},
		{"Properties", &domain.Property{}},
		{"Amenities", &domain.Amenity{}},
		{"Hosts", &domain.Host{}},
		{"Users", &domain.User{}},
	}

	for _, table := range tables {
		result := db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table.model)
		if result.Error != nil {
			return fmt.Errorf("delete %s: %w", strings.ToLower(table.name), result.Error)
		}
		log.Printf("%s deleted: %d", table.name, result.RowsAffected)
	}

	log.Println("Database teardown completed")
	return nil
}
