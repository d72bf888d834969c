package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus is the closed set of order states.
type OrderStatus string

const (
	OrderInProgress OrderStatus = "in_progress"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	return s == OrderInProgress || s == OrderCompleted || s == OrderCancelled
}

// Order is a customer's purchase of one offer variant. ProductName and Price
// are snapshots taken at creation; later catalog edits never touch them.
type Order struct {
	gorm.Model
	BusinessUserID uint `gorm:"not null;index" json:"businessUserId"`
	BusinessUser   User `json:"-"`
	CustomerUserID uint `gorm:"not null;index" json:"customerUserId"`
	CustomerUser   User `json:"-"`

	OfferDetailID uint        `gorm:"not null" json:"offerDetailId"`
	OfferDetail   OfferDetail `json:"-"`

	ProductName string          `gorm:"not null" json:"productName"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`

	Status OrderStatus `gorm:"not null;default:in_progress" json:"status"`
}
