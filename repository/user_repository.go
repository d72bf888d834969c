package repository

import (
	"github.com/cyborg-s/coderr-backend/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(tx *gorm.DB, u *entity.User) error {
	return tx.Create(u).Error
}

// ---------------- Profiles ----------------

func (r *UserRepository) FindProfileByUserID(userID uint) (*entity.Profile, error) {
	var p entity.Profile
	if err := r.DB.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *UserRepository) CreateProfile(tx *gorm.DB, p *entity.Profile) error {
	return tx.Create(p).Error
}

func (r *UserRepository) SaveProfile(p *entity.Profile) error {
	return r.DB.Save(p).Error
}

func (r *UserRepository) ListProfilesByType(t entity.ProfileType) ([]entity.Profile, error) {
	var profiles []entity.Profile
	err := r.DB.Where("type = ?", t).Find(&profiles).Error
	return profiles, err
}

// IsBusinessUser reports whether the user has a business profile.
func (r *UserRepository) IsBusinessUser(userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Profile{}).
		Where("user_id = ? AND type = ?", userID, entity.ProfileBusiness).
		Count(&cnt).Error
	return cnt > 0, err
}
