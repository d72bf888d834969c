package services

import (
	"errors"
	"testing"

	"github.com/cyborg-s/coderr-backend/entity"
	"github.com/cyborg-s/coderr-backend/repository"
)

func TestReviewCreateRules(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	business := createUser(t, db, "studio", entity.ProfileBusiness)
	customer := createUser(t, db, "buyer", entity.ProfileCustomer)

	t.Run("business user may not review", func(t *testing.T) {
		_, err := svc.Create(business.ID, &CreateReviewReq{BusinessUserID: business.ID, Rating: 5, Description: "self praise"})
		if !errors.Is(err, ErrForbidden) {
			t.Errorf("got %v; want ErrForbidden", err)
		}
	})

	t.Run("target must be a business user", func(t *testing.T) {
		_, err := svc.Create(customer.ID, &CreateReviewReq{BusinessUserID: customer.ID, Rating: 4, Description: "nope"})
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("got %v; want ErrInvalid", err)
		}
	})

	t.Run("reviewer is always the caller", func(t *testing.T) {
		rev, err := svc.Create(customer.ID, &CreateReviewReq{BusinessUserID: business.ID, Rating: 4, Description: "good work"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if rev.ReviewerID != customer.ID {
			t.Errorf("reviewerId = %d; want caller %d", rev.ReviewerID, customer.ID)
		}
	})
}

func TestReviewMutationReviewerOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	business := createUser(t, db, "studio", entity.ProfileBusiness)
	reviewer := createUser(t, db, "buyer", entity.ProfileCustomer)
	other := createUser(t, db, "other", entity.ProfileCustomer)

	rev, err := svc.Create(reviewer.ID, &CreateReviewReq{BusinessUserID: business.ID, Rating: 4, Description: "good"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Patch(other.ID, rev.ID, &PatchReviewReq{Rating: intPtr(1)}); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign patch: got %v; want ErrForbidden", err)
	}
	if err := svc.Delete(other.ID, rev.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign delete: got %v; want ErrForbidden", err)
	}

	got, err := svc.Patch(reviewer.ID, rev.ID, &PatchReviewReq{Rating: intPtr(2), Description: strPtr("revised")})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if got.Rating != 2 || got.Description != "revised" {
		t.Errorf("patched review = %+v", got)
	}

	if err := svc.Delete(reviewer.ID, rev.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(rev.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete: got %v; want ErrNotFound", err)
	}
}

func TestReviewListFilterAndOrdering(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	b1 := createUser(t, db, "studio1", entity.ProfileBusiness)
	b2 := createUser(t, db, "studio2", entity.ProfileBusiness)
	c1 := createUser(t, db, "buyer1", entity.ProfileCustomer)
	c2 := createUser(t, db, "buyer2", entity.ProfileCustomer)

	mustCreate := func(reviewer uint, business uint, rating int) {
		t.Helper()
		if _, err := svc.Create(reviewer, &CreateReviewReq{BusinessUserID: business, Rating: rating, Description: "r"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	mustCreate(c1.ID, b1.ID, 5)
	mustCreate(c1.ID, b2.ID, 2)
	mustCreate(c2.ID, b1.ID, 3)

	t.Run("filter by business user", func(t *testing.T) {
		got, err := svc.List(b1.ID, 0, "")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("len = %d; want 2", len(got))
		}
	})

	t.Run("filter by reviewer", func(t *testing.T) {
		got, err := svc.List(0, c1.ID, "")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("len = %d; want 2", len(got))
		}
	})

	t.Run("order by rating descending", func(t *testing.T) {
		got, err := svc.List(0, 0, "-rating")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(got) != 3 || got[0].Rating != 5 || got[2].Rating != 2 {
			t.Errorf("ratings = %v; want descending", got)
		}
	})

	t.Run("unknown ordering is silently ignored", func(t *testing.T) {
		got, err := svc.List(0, 0, "description")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(got) != 3 {
			t.Errorf("len = %d; want 3", len(got))
		}
	})
}

func TestBaseInfoAggregates(t *testing.T) {
	db := newTestDB(t)
	reviewSvc := newReviewService(db)
	infoSvc := NewBaseInfoService(db, repository.NewReviewRepository(db), repository.NewOfferRepository(db))

	t.Run("empty platform", func(t *testing.T) {
		out, err := infoSvc.Get()
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if out.ReviewCount != 0 || out.AverageRating != 0 || out.BusinessProfileCount != 0 || out.OfferCount != 0 {
			t.Errorf("empty platform stats = %+v; want all zero", out)
		}
	})

	business := createUser(t, db, "studio", entity.ProfileBusiness)
	customer := createUser(t, db, "buyer", entity.ProfileCustomer)
	createOffer(t, db, business.ID, "Logo", variant("basic", "Basic", "100.00", 5))

	for _, rating := range []int{4, 5, 3} {
		if _, err := reviewSvc.Create(customer.ID, &CreateReviewReq{BusinessUserID: business.ID, Rating: rating, Description: "r"}); err != nil {
			t.Fatalf("create review: %v", err)
		}
	}

	t.Run("populated platform", func(t *testing.T) {
		out, err := infoSvc.Get()
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if out.ReviewCount != 3 {
			t.Errorf("reviewCount = %d; want 3", out.ReviewCount)
		}
		if out.AverageRating != 4.0 {
			t.Errorf("averageRating = %v; want 4.0", out.AverageRating)
		}
		if out.BusinessProfileCount != 1 {
			t.Errorf("businessProfileCount = %d; want 1", out.BusinessProfileCount)
		}
		if out.OfferCount != 1 {
			t.Errorf("offerCount = %d; want 1", out.OfferCount)
		}
	})
}

func TestRoundRating(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{0, 0},
		{4.0, 4.0},
		{4.25, 4.3},
		{4.333333, 4.3},
		{2.96, 3.0},
	}
	for _, tt := range tests {
		if got := RoundRating(tt.in); got != tt.expected {
			t.Errorf("RoundRating(%v) = %v; want %v", tt.in, got, tt.expected)
		}
	}
}
