package services

import (
	"math"

	"github.com/cyborg-s/coderr-backend/entity"
	"github.com/cyborg-s/coderr-backend/repository"
	"gorm.io/gorm"
)

type BaseInfoService struct {
	DB         *gorm.DB
	ReviewRepo *repository.ReviewRepository
	OfferRepo  *repository.OfferRepository
}

func NewBaseInfoService(db *gorm.DB, reviewRepo *repository.ReviewRepository, offerRepo *repository.OfferRepository) *BaseInfoService {
	return &BaseInfoService{DB: db, ReviewRepo: reviewRepo, OfferRepo: offerRepo}
}

type BaseInfoOut struct {
	ReviewCount          int64   `json:"reviewCount"`
	AverageRating        float64 `json:"averageRating"`
	BusinessProfileCount int64   `json:"businessProfileCount"`
	OfferCount           int64   `json:"offerCount"`
}

// RoundRating rounds a mean rating to one decimal place.
func RoundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}

func (s *BaseInfoService) Get() (*BaseInfoOut, error) {
	reviewCount, err := s.ReviewRepo.Count()
	if err != nil {
		return nil, err
	}
	avg, err := s.ReviewRepo.AverageRating()
	if err != nil {
		return nil, err
	}

	var businessCount int64
	if err := s.DB.Model(&entity.Profile{}).
		Where("type = ?", entity.ProfileBusiness).
		Count(&businessCount).Error; err != nil {
		return nil, err
	}

	offerCount, err := s.OfferRepo.CountOffers()
	if err != nil {
		return nil, err
	}

	return &BaseInfoOut{
		ReviewCount:          reviewCount,
		AverageRating:        RoundRating(avg),
		BusinessProfileCount: businessCount,
		OfferCount:           offerCount,
	}, nil
}
