package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating      int    `gorm:"not null" json:"rating"`
	Description string `json:"description"`

	BusinessUserID uint `gorm:"not null;index" json:"businessUserId"` // reviewed user
	BusinessUser   User `json:"-"`
	ReviewerID     uint `gorm:"not null;index" json:"reviewerId"`
	Reviewer       User `json:"-"`
}
