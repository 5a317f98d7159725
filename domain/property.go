package domain

// Property is a rental listing owned by a Host
type Property struct {
	Base
	Title         string  `gorm:"not null" json:"title"`
	Description   string  `gorm:"type:text;not null" json:"description"`
	Location      string  `gorm:"not null" json:"location"`
	PricePerNight float64 `gorm:"type:decimal(10,2);not null" json:"pricePerNight"`
	BedroomCount  int     `gorm:"not null" json:"bedroomCount"`
	BathroomCount int     `gorm:"not null" json:"bathroomCount"`
	MaxGuestCount int     `gorm:"not null" json:"maxGuestCount"`
	Rating        float64 `gorm:"type:decimal(3,2);not null" json:"rating"`
	HostID        string  `gorm:"type:varchar(36);index;not null" json:"hostId"`
	Host          *Host   `gorm:"foreignKey:HostID" json:"-"`
}

func (Property) TableName() string {
	return "properties"
}
