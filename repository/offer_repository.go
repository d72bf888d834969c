package repository

import (
	"github.com/cyborg-s/coderr-backend/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OfferRepository struct {
	DB *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{DB: db}
}

// OfferFilter carries the list query parameters.
type OfferFilter struct {
	CreatorID       uint
	MinPrice        *decimal.Decimal
	MaxDeliveryTime *int
	Search          string
	Ordering        string
	Page            int
	PageSize        int
}

const minPriceExpr = "(SELECT MIN(d.price) FROM offer_details d WHERE d.offer_id = offers.id AND d.deleted_at IS NULL)"
const maxPriceExpr = "(SELECT MAX(d.price) FROM offer_details d WHERE d.offer_id = offers.id AND d.deleted_at IS NULL)"

// orderExprs is the allow-list of ordering values; anything else falls back
// to the default id ordering.
var orderExprs = map[string]string{
	"updated_at":  "offers.updated_at ASC",
	"-updated_at": "offers.updated_at DESC",
	"min_price":   minPriceExpr + " ASC",
	"-min_price":  minPriceExpr + " DESC",
	"max_price":   maxPriceExpr + " ASC",
	"-max_price":  maxPriceExpr + " DESC",
}

func (r *OfferRepository) List(f OfferFilter) ([]entity.Offer, int64, error) {
	q := r.DB.Model(&entity.Offer{})

	if f.CreatorID != 0 {
		q = q.Where("offers.user_id = ?", f.CreatorID)
	}
	if f.MinPrice != nil {
		q = q.Where("EXISTS (SELECT 1 FROM offer_details d WHERE d.offer_id = offers.id AND d.deleted_at IS NULL AND d.price >= ?)", f.MinPrice)
	}
	if f.MaxDeliveryTime != nil {
		q = q.Where("EXISTS (SELECT 1 FROM offer_details d WHERE d.offer_id = offers.id AND d.deleted_at IS NULL AND d.delivery_time_in_days <= ?)", *f.MaxDeliveryTime)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("offers.title LIKE ? OR offers.description LIKE ?", like, like)
	}
	// shareable chain: counted once, then paged
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, ok := orderExprs[f.Ordering]
	if !ok {
		order = "offers.id ASC"
	}

	offset := (f.Page - 1) * f.PageSize

	var offers []entity.Offer
	err := q.Preload("Details").Preload("User").
		Order(order).Limit(f.PageSize).Offset(offset).
		Find(&offers).Error
	return offers, total, err
}

func (r *OfferRepository) FindByID(id uint) (*entity.Offer, error) {
	var o entity.Offer
	if err := r.DB.Preload("Details").Preload("User").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OfferRepository) Create(tx *gorm.DB, o *entity.Offer) error {
	return tx.Create(o).Error
}

// Save writes offer scalars only; details are saved individually.
func (r *OfferRepository) Save(tx *gorm.DB, o *entity.Offer) error {
	return tx.Omit(clause.Associations).Save(o).Error
}

func (r *OfferRepository) SaveDetail(tx *gorm.DB, d *entity.OfferDetail) error {
	return tx.Omit(clause.Associations).Save(d).Error
}

func (r *OfferRepository) FindDetailByID(id uint) (*entity.OfferDetail, error) {
	var d entity.OfferDetail
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// DeleteWithDetails removes the offer and all its details.
func (r *OfferRepository) DeleteWithDetails(tx *gorm.DB, offerID uint) error {
	if err := tx.Where("offer_id = ?", offerID).Delete(&entity.OfferDetail{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Offer{}, offerID).Error
}

// CountOrdersForOffer counts orders referencing any detail of the offer.
// Offers with ordered details must not be deleted.
func (r *OfferRepository) CountOrdersForOffer(offerID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).
		Where("offer_detail_id IN (?)",
			r.DB.Model(&entity.OfferDetail{}).Select("id").Where("offer_id = ?", offerID)).
		Count(&cnt).Error
	return cnt, err
}

func (r *OfferRepository) CountOffers() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Offer{}).Count(&cnt).Error
	return cnt, err
}
