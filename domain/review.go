package domain

type Review struct {
	Base
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `gorm:"type:text;not null" json:"comment"`
	UserID     string    `gorm:"type:varchar(36);index;not null" json:"userId"`
	User       *User     `gorm:"foreignKey:UserID" json:"-"`
	PropertyID string    `gorm:"type:varchar(36);index;not null" json:"propertyId"`
	Property   *Property `gorm:"foreignKey:PropertyID" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}
