package repository

import (
	"github.com/cyborg-s/coderr-backend/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListForBusinessUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("business_user_id = ?", userID).Order("id DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListForCustomer(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("customer_user_id = ?", userID).Order("id DESC").Find(&orders).Error
	return orders, err
}

// UpdateStatusGuard flips the status only when the order is still in the
// expected state, so concurrent transitions cannot double-fire.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) Delete(tx *gorm.DB, orderID uint) error {
	return tx.Delete(&entity.Order{}, orderID).Error
}

func (r *OrderRepository) CountByBusinessAndStatus(businessUserID uint, status entity.OrderStatus) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).
		Where("business_user_id = ? AND status = ?", businessUserID, status).
		Count(&cnt).Error
	return cnt, err
}
