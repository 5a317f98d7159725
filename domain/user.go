package domain

// User is a guest account. It is also the identity the API authenticates.
type User struct {
	Base
	Username       string `gorm:"type:varchar(191);uniqueIndex;not null" json:"username"`
	Password       string `gorm:"not null" json:"-"` // the "-" keeps the hash out of every response
	Name           string `gorm:"not null" json:"name"`
	Email          string `gorm:"type:varchar(191);uniqueIndex;not null" json:"email"`
	PhoneNumber    string `gorm:"not null" json:"phoneNumber"`
	ProfilePicture string `gorm:"not null" json:"profilePicture"`
}

// TableName sets the table name
func (User) TableName() string {
	return "users"
}
