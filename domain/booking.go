package domain

import "time"

// Booking is a stay of a User at a Property
type Booking struct {
	Base
	CheckinDate    time.Time `gorm:"not null" json:"checkinDate"`
	CheckoutDate   time.Time `gorm:"not null" json:"checkoutDate"`
	NumberOfGuests int       `gorm:"not null" json:"numberOfGuests"`
	TotalPrice     float64   `gorm:"type:decimal(10,2);not null" json:"totalPrice"`
	BookingStatus  string    `gorm:"not null" json:"bookingStatus"` // free text, e.g. "confirmed"
	UserID         string    `gorm:"type:varchar(36);index;not null" json:"userId"`
	User           *User     `gorm:"foreignKey:UserID" json:"-"`
	PropertyID     string    `gorm:"type:varchar(36);index;not null" json:"propertyId"`
	Property       *Property `gorm:"foreignKey:PropertyID" json:"-"`
}

func (Booking) TableName() string {
	return "bookings"
}
