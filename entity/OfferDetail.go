package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FeatureList is an ordered list of feature strings, stored as a JSON text column.
type FeatureList []string

func (f FeatureList) Value() (driver.Value, error) {
	if f == nil {
		f = FeatureList{}
	}
	b, err := json.Marshal(f)
	return string(b), err
}

func (f *FeatureList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*f = FeatureList{}
		return nil
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	default:
		return errors.New("unsupported feature list source")
	}
}

// OfferDetail is one priced tier of an Offer. OfferType acts as the stable
// variant key within an offer, so it is unique per offer.
type OfferDetail struct {
	gorm.Model
	OfferID uint  `gorm:"not null;uniqueIndex:idx_offer_type" json:"offerId"`
	Offer   Offer `json:"-"`

	Title              string          `gorm:"not null" json:"title"`
	OfferType          string          `gorm:"not null;uniqueIndex:idx_offer_type" json:"offerType"`
	Revisions          int             `json:"revisions"`
	DeliveryTimeInDays int             `gorm:"not null" json:"deliveryTimeInDays"`
	Price              decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Features           FeatureList     `gorm:"type:text" json:"features"`
}
