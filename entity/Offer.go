package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Offer struct {
	gorm.Model
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"` // stored image path, optional

	UserID uint `gorm:"not null" json:"userId"` // business owner
	User   User `json:"-"`

	Details []OfferDetail `gorm:"constraint:OnDelete:CASCADE" json:"details"`
}

// MinPrice is the cheapest variant price, zero when the offer has no details.
func (o *Offer) MinPrice() decimal.Decimal {
	if len(o.Details) == 0 {
		return decimal.Zero
	}
	min := o.Details[0].Price
	for _, d := range o.Details[1:] {
		if d.Price.LessThan(min) {
			min = d.Price
		}
	}
	return min
}

// MinDeliveryTime is the shortest variant delivery time in days, zero when
// the offer has no details.
func (o *Offer) MinDeliveryTime() int {
	if len(o.Details) == 0 {
		return 0
	}
	min := o.Details[0].DeliveryTimeInDays
	for _, d := range o.Details[1:] {
		if d.DeliveryTimeInDays < min {
			min = d.DeliveryTimeInDays
		}
	}
	return min
}
