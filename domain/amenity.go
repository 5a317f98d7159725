package domain

// Amenity is a standalone feature such as "WiFi"
type Amenity struct {
	Base
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"`
}

func (Amenity) TableName() string {
	return "amenities"
}
