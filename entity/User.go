package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`

	// staff accounts may delete orders; seeded at startup, never set via API
	IsStaff bool `gorm:"not null;default:false" json:"-"`

	// relations, preload only when needed
	Profile *Profile `gorm:"foreignKey:UserID" json:"-"`
	Offers  []Offer  `gorm:"foreignKey:UserID" json:"-"`

	OrdersReceived []Order  `gorm:"foreignKey:BusinessUserID" json:"-"`
	OrdersPlaced   []Order  `gorm:"foreignKey:CustomerUserID" json:"-"`
	ReviewsGot     []Review `gorm:"foreignKey:BusinessUserID" json:"-"`
	ReviewsWritten []Review `gorm:"foreignKey:ReviewerID" json:"-"`
}
