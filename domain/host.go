package domain

// Host offers properties. It carries its own credentials and is linked to exactly one User.
type Host struct {
	Base
	Username       string `gorm:"type:varchar(191);uniqueIndex;not null" json:"username"`
	Password       string `gorm:"not null" json:"-"`
	Name           string `gorm:"not null" json:"name"`
	Email          string `gorm:"type:varchar(191);uniqueIndex;not null" json:"email"`
	PhoneNumber    string `gorm:"not null" json:"phoneNumber"`
	ProfilePicture string `gorm:"not null" json:"profilePicture"`
	AboutMe        string `gorm:"type:text;not null" json:"aboutMe"`
	UserID         string `gorm:"type:varchar(36);uniqueIndex;not null" json:"userId"`
	User           *User  `gorm:"foreignKey:UserID" json:"-"`
}

func (Host) TableName() string {
	return "hosts"
}
