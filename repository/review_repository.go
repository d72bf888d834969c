package repository

import (
	"github.com/cyborg-s/coderr-backend/entity"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

// reviewOrderings is the allow-list of ordering values; anything else is
// silently ignored.
var reviewOrderings = map[string]string{
	"rating":      "rating ASC",
	"-rating":     "rating DESC",
	"updated_at":  "updated_at ASC",
	"-updated_at": "updated_at DESC",
}

func (r *ReviewRepository) List(businessUserID, reviewerID uint, ordering string) ([]entity.Review, error) {
	q := r.DB.Model(&entity.Review{})
	if businessUserID != 0 {
		q = q.Where("business_user_id = ?", businessUserID)
	}
	if reviewerID != 0 {
		q = q.Where("reviewer_id = ?", reviewerID)
	}
	if expr, ok := reviewOrderings[ordering]; ok {
		q = q.Order(expr)
	}

	var reviews []entity.Review
	err := q.Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) FindByID(id uint) (*entity.Review, error) {
	var rev entity.Review
	if err := r.DB.First(&rev, id).Error; err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *ReviewRepository) Create(rev *entity.Review) error {
	return r.DB.Create(rev).Error
}

func (r *ReviewRepository) Save(rev *entity.Review) error {
	return r.DB.Save(rev).Error
}

func (r *ReviewRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Review{}, id).Error
}

// ---------------- Aggregates ----------------

func (r *ReviewRepository) Count() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Review{}).Count(&cnt).Error
	return cnt, err
}

// AverageRating is the mean rating across all reviews, 0 when there are none.
func (r *ReviewRepository) AverageRating() (float64, error) {
	var row struct{ Avg *float64 }
	err := r.DB.Model(&entity.Review{}).Select("AVG(rating) AS avg").Scan(&row).Error
	if err != nil || row.Avg == nil {
		return 0, err
	}
	return *row.Avg, nil
}
