package services

import (
	"errors"

	"github.com/cyborg-s/coderr-backend/entity"
	"github.com/cyborg-s/coderr-backend/repository"
	"gorm.io/gorm"
)

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	OfferRepo *repository.OfferRepository
	UserRepo  *repository.UserRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, offerRepo *repository.OfferRepository, userRepo *repository.UserRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, OfferRepo: offerRepo, UserRepo: userRepo}
}

// ----- DTOs from Controller -----

type CreateOrderReq struct {
	OfferDetailID uint `json:"offerDetailId" binding:"required"`
}

// ----- Create -----

// Create places an order for one offer variant. Product name and price are
// snapshotted from the detail; the order stays unchanged when the catalog
// is edited later.
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*entity.Order, error) {
	profile, err := s.UserRepo.FindProfileByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	if profile.Type != entity.ProfileCustomer {
		return nil, ErrForbidden
	}

	detail, err := s.OfferRepo.FindDetailByID(req.OfferDetailID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	offer, err := s.OfferRepo.FindByID(detail.OfferID)
	if err != nil {
		return nil, err
	}

	order := entity.Order{
		BusinessUserID: offer.UserID,
		CustomerUserID: userID,
		OfferDetailID:  detail.ID,
		ProductName:    detail.Title,
		Price:          detail.Price,
		Status:         entity.OrderInProgress,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, &order)
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ----- List & Detail -----

// List returns the caller's orders: business profiles see orders they
// receive, customers see orders they placed.
func (s *OrderService) List(userID uint) ([]entity.Order, error) {
	profile, err := s.UserRepo.FindProfileByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// staff and other profile-less accounts hold no orders
			return nil, ErrForbidden
		}
		return nil, err
	}
	if profile.Type == entity.ProfileBusiness {
		return s.Repo.ListForBusinessUser(userID)
	}
	return s.Repo.ListForCustomer(userID)
}

// Get returns the order when the caller is one of its two parties.
func (s *OrderService) Get(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if o.BusinessUserID != userID && o.CustomerUserID != userID {
		return nil, ErrForbidden
	}
	return o, nil
}

// ----- Delete -----

// Delete is restricted to staff accounts.
func (s *OrderService) Delete(userID, orderID uint, staff bool) error {
	if !staff {
		return ErrForbidden
	}
	if _, err := s.Repo.FindByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Delete(tx, orderID)
	})
}

// ----- Counts -----

// CountByStatus counts a business user's orders in one status. Unknown or
// non-business users yield not-found; a zero count is a valid result.
func (s *OrderService) CountByStatus(businessUserID uint, status entity.OrderStatus) (int64, error) {
	isBusiness, err := s.UserRepo.IsBusinessUser(businessUserID)
	if err != nil {
		return 0, err
	}
	if !isBusiness {
		return 0, ErrNotFound
	}
	return s.Repo.CountByBusinessAndStatus(businessUserID, status)
}
