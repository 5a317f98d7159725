package domain

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base holds the string primary key shared by every entity
type Base struct {
	ID string `gorm:"primaryKey;type:varchar(36)" json:"id"`
}

// BeforeCreate assigns a UUID when the caller did not choose an id
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// Models returns every entity in foreign key order, for migrations
func Models() []interface{} {
	return []interface{}{
		&User{},
		&Host{},
		&Property{},
		&Booking{},
		&Review{},
		&Amenity{},
	}
}
