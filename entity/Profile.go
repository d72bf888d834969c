package entity

import (
	"gorm.io/gorm"
)

// ProfileType is the closed set of roles a profile can have.
type ProfileType string

const (
	ProfileBusiness ProfileType = "business"
	ProfileCustomer ProfileType = "customer"
)

func (t ProfileType) Valid() bool {
	return t == ProfileBusiness || t == ProfileCustomer
}

type Profile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `json:"-"`

	// immutable after registration
	Type ProfileType `gorm:"not null" json:"type"`

	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Location     string `json:"location"`
	Tel          string `json:"tel"`
	Description  string `json:"description"`
	WorkingHours string `json:"workingHours"`
	File         string `json:"file"` // stored profile picture path
}
