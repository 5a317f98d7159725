package dto

import "time"

// LoginRequest is the body of POST /login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserRequest is the body of POST and PUT /users
type UserRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber"`
	ProfilePicture string `json:"profilePicture"`
}

// HostRequest is the body of POST and PUT /hosts.
// UserID is only read on create.
type HostRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber"`
	ProfilePicture string `json:"profilePicture"`
	AboutMe        string `json:"aboutMe"`
	UserID         string `json:"userId"`
}

type PropertyRequest struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"pricePerNight"`
	BedroomCount  int     `json:"bedroomCount"`
	BathroomCount int     `json:"bathroomCount"`
	MaxGuestCount int     `json:"maxGuestCount"`
	Rating        float64 `json:"rating"`
	HostID        string  `json:"hostId"`
}

// BookingRequest dates are RFC 3339 timestamps, e.g. "2025-07-01T14:00:00Z"
type BookingRequest struct {
	CheckinDate    time.Time `json:"checkinDate"`
	CheckoutDate   time.Time `json:"checkoutDate"`
	NumberOfGuests int       `json:"numberOfGuests"`
	TotalPrice     float64   `json:"totalPrice"`
	BookingStatus  string    `json:"bookingStatus"`
	UserID         string    `json:"userId"`
	PropertyID     string    `json:"propertyId"`
}

type ReviewRequest struct {
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	UserID     string `json:"userId"`
	PropertyID string `json:"propertyId"`
}

type AmenityRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
