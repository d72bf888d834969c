package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/cyborg-s/coderr-backend/entity"
	"github.com/cyborg-s/coderr-backend/repository"
	"github.com/cyborg-s/coderr-backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OfferService struct {
	DB       *gorm.DB
	Repo     *repository.OfferRepository
	UserRepo *repository.UserRepository
}

func NewOfferService(db *gorm.DB, repo *repository.OfferRepository, userRepo *repository.UserRepository) *OfferService {
	return &OfferService{DB: db, Repo: repo, UserRepo: userRepo}
}

// ----- DTOs from Controller -----

type OfferDetailIn struct {
	Title              string          `json:"title" binding:"required"`
	OfferType          string          `json:"offerType" binding:"required"`
	Revisions          *int            `json:"revisions" binding:"required"`
	DeliveryTimeInDays int             `json:"deliveryTimeInDays" binding:"required,gt=0"`
	Price              decimal.Decimal `json:"price" binding:"required"`
	Features           []string        `json:"features" binding:"required"`
}

type CreateOfferReq struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Image       string          `json:"image"` // base64, optional
	Details     []OfferDetailIn `json:"details" binding:"omitempty,dive"`
}

// OfferDetailPatch updates an existing variant matched by OfferType; only
// provided fields are replaced.
type OfferDetailPatch struct {
	OfferType          string           `json:"offerType" binding:"required"`
	Title              *string          `json:"title"`
	Revisions          *int             `json:"revisions"`
	DeliveryTimeInDays *int             `json:"deliveryTimeInDays" binding:"omitempty,gt=0"`
	Price              *decimal.Decimal `json:"price"`
	Features           []string         `json:"features"`
}

type PatchOfferReq struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Image       *string            `json:"image"`
	Details     []OfferDetailPatch `json:"details" binding:"omitempty,dive"`
}

// OfferOut is the list/detail representation including the derived minimums.
type OfferOut struct {
	ID              uint                 `json:"id"`
	UserID          uint                 `json:"userId"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	Image           string               `json:"image"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
	Details         []entity.OfferDetail `json:"details"`
	MinPrice        decimal.Decimal      `json:"minPrice"`
	MinDeliveryTime int                  `json:"minDeliveryTime"`
	UserDetails     OfferUserOut         `json:"userDetails"`
}

type OfferUserOut struct {
	Username string `json:"username"`
}

func toOfferOut(o *entity.Offer) OfferOut {
	if o.Details == nil {
		o.Details = []entity.OfferDetail{}
	}
	return OfferOut{
		ID:              o.ID,
		UserID:          o.UserID,
		Title:           o.Title,
		Description:     o.Description,
		Image:           o.Image,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		Details:         o.Details,
		MinPrice:        o.MinPrice(),
		MinDeliveryTime: o.MinDeliveryTime(),
		UserDetails:     OfferUserOut{Username: o.User.Username},
	}
}

// ----- List -----

type OfferListOut struct {
	Items    []OfferOut `json:"items"`
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"pageSize"`
}

const defaultPageSize = 6
const maxPageSize = 100

func (s *OfferService) List(f repository.OfferFilter) (*OfferListOut, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = defaultPageSize
	}
	if f.PageSize > maxPageSize {
		f.PageSize = maxPageSize
	}

	offers, total, err := s.Repo.List(f)
	if err != nil {
		return nil, err
	}

	items := make([]OfferOut, 0, len(offers))
	for i := range offers {
		items = append(items, toOfferOut(&offers[i]))
	}
	return &OfferListOut{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize}, nil
}

func (s *OfferService) Get(id uint) (*OfferOut, error) {
	o, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	out := toOfferOut(o)
	return &out, nil
}

func (s *OfferService) GetDetail(id uint) (*entity.OfferDetail, error) {
	d, err := s.Repo.FindDetailByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

// ----- Create -----

func (s *OfferService) Create(userID uint, req *CreateOfferReq) (*OfferOut, error) {
	isBusiness, err := s.UserRepo.IsBusinessUser(userID)
	if err != nil {
		return nil, err
	}
	if !isBusiness {
		return nil, ErrForbidden
	}

	types := make(map[string]bool, len(req.Details))
	for _, d := range req.Details {
		if types[d.OfferType] {
			return nil, fmt.Errorf("duplicate offer type %q: %w", d.OfferType, ErrInvalid)
		}
		types[d.OfferType] = true
		if d.Revisions == nil {
			return nil, fmt.Errorf("detail %q missing revisions: %w", d.OfferType, ErrInvalid)
		}
		if d.DeliveryTimeInDays <= 0 {
			return nil, fmt.Errorf("detail %q needs a positive delivery time: %w", d.OfferType, ErrInvalid)
		}
	}

	imagePath := ""
	if req.Image != "" {
		imagePath, err = utils.SaveBase64Image(req.Image, "uploads/offers")
		if err != nil {
			return nil, err
		}
	}

	offer := entity.Offer{
		Title:       req.Title,
		Description: req.Description,
		Image:       imagePath,
		UserID:      userID,
	}
	for _, d := range req.Details {
		offer.Details = append(offer.Details, entity.OfferDetail{
			Title:              d.Title,
			OfferType:          d.OfferType,
			Revisions:          *d.Revisions,
			DeliveryTimeInDays: d.DeliveryTimeInDays,
			Price:              d.Price,
			Features:           d.Features,
		})
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, &offer)
	})
	if err != nil {
		return nil, err
	}

	out, err := s.Get(offer.ID)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ----- Patch -----

// Patch replaces provided scalar fields and updates details matched by their
// OfferType. An unmatched OfferType fails the whole request, nothing is
// applied.
func (s *OfferService) Patch(userID, offerID uint, req *PatchOfferReq) (*OfferOut, error) {
	offer, err := s.Repo.FindByID(offerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if offer.UserID != userID {
		return nil, ErrForbidden
	}

	// match incoming details before writing anything
	byType := make(map[string]*entity.OfferDetail, len(offer.Details))
	for i := range offer.Details {
		byType[offer.Details[i].OfferType] = &offer.Details[i]
	}
	for _, in := range req.Details {
		if _, ok := byType[in.OfferType]; !ok {
			return nil, fmt.Errorf("no detail with offer type %q: %w", in.OfferType, ErrInvalid)
		}
	}

	if req.Title != nil {
		offer.Title = *req.Title
	}
	if req.Description != nil {
		offer.Description = *req.Description
	}
	if req.Image != nil {
		path, err := utils.SaveBase64Image(*req.Image, "uploads/offers")
		if err != nil {
			return nil, err
		}
		offer.Image = path
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Save(tx, offer); err != nil {
			return err
		}
		for _, in := range req.Details {
			d := byType[in.OfferType]
			if in.Title != nil {
				d.Title = *in.Title
			}
			if in.Revisions != nil {
				d.Revisions = *in.Revisions
			}
			if in.DeliveryTimeInDays != nil {
				d.DeliveryTimeInDays = *in.DeliveryTimeInDays
			}
			if in.Price != nil {
				d.Price = *in.Price
			}
			if in.Features != nil {
				d.Features = in.Features
			}
			if err := s.Repo.SaveDetail(tx, d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(offerID)
}

// ----- Delete -----

// Delete removes the offer and its details. Offers whose details carry
// orders are refused: orders are historical records and must survive
// catalog edits.
func (s *OfferService) Delete(userID, offerID uint) error {
	offer, err := s.Repo.FindByID(offerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if offer.UserID != userID {
		return ErrForbidden
	}

	cnt, err := s.Repo.CountOrdersForOffer(offerID)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrConflict
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.DeleteWithDetails(tx, offerID)
	})
}
