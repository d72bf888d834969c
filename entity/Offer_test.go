package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func detail(price string, days int) OfferDetail {
	return OfferDetail{Price: decimal.RequireFromString(price), DeliveryTimeInDays: days}
}

func TestOfferMinPrice(t *testing.T) {
	tests := []struct {
		name     string
		details  []OfferDetail
		expected string
	}{
		{name: "no details yields zero", details: nil, expected: "0"},
		{name: "single detail", details: []OfferDetail{detail("49.99", 3)}, expected: "49.99"},
		{
			name:     "minimum across variants",
			details:  []OfferDetail{detail("100.00", 7), detail("25.50", 3), detail("250.00", 14)},
			expected: "25.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Offer{Details: tt.details}
			got := o.MinPrice()
			if got.String() != tt.expected {
				t.Errorf("MinPrice() = %s; want %s", got, tt.expected)
			}
		})
	}
}

func TestOfferMinDeliveryTime(t *testing.T) {
	tests := []struct {
		name     string
		details  []OfferDetail
		expected int
	}{
		{name: "no details yields zero", details: nil, expected: 0},
		{name: "single detail", details: []OfferDetail{detail("10.00", 5)}, expected: 5},
		{
			name:     "minimum across variants",
			details:  []OfferDetail{detail("100.00", 7), detail("25.50", 3), detail("250.00", 14)},
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Offer{Details: tt.details}
			if got := o.MinDeliveryTime(); got != tt.expected {
				t.Errorf("MinDeliveryTime() = %d; want %d", got, tt.expected)
			}
		})
	}
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderInProgress, OrderCompleted, OrderCancelled} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if OrderStatus("pending").Valid() {
		t.Error("pending should not be a valid status")
	}
}

func TestProfileTypeValid(t *testing.T) {
	if !ProfileBusiness.Valid() || !ProfileCustomer.Valid() {
		t.Error("business and customer must be valid profile types")
	}
	if ProfileType("admin").Valid() {
		t.Error("admin is not a profile type")
	}
}
