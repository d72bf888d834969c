package services

import (
	"fmt"
	"testing"

	"github.com/cyborg-s/coderr-backend/entity"
	"github.com/cyborg-s/coderr-backend/repository"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// one named in-memory database per test, shared across pooled connections
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&entity.User{}, &entity.Profile{},
		&entity.Offer{}, &entity.OfferDetail{},
		&entity.Order{}, &entity.Review{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, ptype entity.ProfileType) *entity.User {
	t.Helper()
	u := entity.User{Username: username, Email: username + "@example.com", Password: "x"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	if ptype != "" {
		p := entity.Profile{UserID: u.ID, Type: ptype}
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("create profile for %s: %v", username, err)
		}
	}
	return &u
}

func createStaff(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()
	u := entity.User{Username: username, Email: username + "@example.com", Password: "x", IsStaff: true}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create staff %s: %v", username, err)
	}
	return &u
}

func createOffer(t *testing.T, db *gorm.DB, ownerID uint, title string, details ...entity.OfferDetail) *entity.Offer {
	t.Helper()
	o := entity.Offer{Title: title, Description: "test offer", UserID: ownerID, Details: details}
	if err := db.Create(&o).Error; err != nil {
		t.Fatalf("create offer %s: %v", title, err)
	}
	return &o
}

func variant(offerType, title, price string, days int) entity.OfferDetail {
	return entity.OfferDetail{
		Title:              title,
		OfferType:          offerType,
		Revisions:          2,
		DeliveryTimeInDays: days,
		Price:              decimal.RequireFromString(price),
		Features:           entity.FeatureList{"Logo", "Source files"},
	}
}

func newOfferService(db *gorm.DB) *OfferService {
	return NewOfferService(db, repository.NewOfferRepository(db), repository.NewUserRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewOfferRepository(db), repository.NewUserRepository(db))
}

func newReviewService(db *gorm.DB) *ReviewService {
	return NewReviewService(repository.NewReviewRepository(db), repository.NewUserRepository(db))
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func decPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}
