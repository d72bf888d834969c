package services

import (
	"errors"
	"fmt"

	"github.com/cyborg-s/coderr-backend/entity"
	"github.com/cyborg-s/coderr-backend/repository"
	"gorm.io/gorm"
)

type ReviewService struct {
	Repo     *repository.ReviewRepository
	UserRepo *repository.UserRepository
}

func NewReviewService(repo *repository.ReviewRepository, userRepo *repository.UserRepository) *ReviewService {
	return &ReviewService{Repo: repo, UserRepo: userRepo}
}

// ----- DTOs from Controller -----

type CreateReviewReq struct {
	BusinessUserID uint   `json:"businessUserId" binding:"required"`
	Rating         int    `json:"rating" binding:"required,min=1,max=5"`
	Description    string `json:"description" binding:"required"`
}

type PatchReviewReq struct {
	Rating      *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Description *string `json:"description"`
}

func (s *ReviewService) List(businessUserID, reviewerID uint, ordering string) ([]entity.Review, error) {
	return s.Repo.List(businessUserID, reviewerID, ordering)
}

func (s *ReviewService) Get(id uint) (*entity.Review, error) {
	rev, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rev, nil
}

// Create writes a review. Only customers may review, the reviewer is always
// the caller, and the reviewed user must be a business profile.
func (s *ReviewService) Create(reviewerID uint, req *CreateReviewReq) (*entity.Review, error) {
	profile, err := s.UserRepo.FindProfileByUserID(reviewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	if profile.Type != entity.ProfileCustomer {
		return nil, ErrForbidden
	}

	isBusiness, err := s.UserRepo.IsBusinessUser(req.BusinessUserID)
	if err != nil {
		return nil, err
	}
	if !isBusiness {
		return nil, fmt.Errorf("user %d is not a business user: %w", req.BusinessUserID, ErrInvalid)
	}

	rev := entity.Review{
		BusinessUserID: req.BusinessUserID,
		ReviewerID:     reviewerID,
		Rating:         req.Rating,
		Description:    req.Description,
	}
	if err := s.Repo.Create(&rev); err != nil {
		return nil, err
	}
	return &rev, nil
}

// Patch updates a review; only the original reviewer may do so.
func (s *ReviewService) Patch(userID, reviewID uint, req *PatchReviewReq) (*entity.Review, error) {
	rev, err := s.Get(reviewID)
	if err != nil {
		return nil, err
	}
	if rev.ReviewerID != userID {
		return nil, ErrForbidden
	}

	if req.Rating != nil {
		rev.Rating = *req.Rating
	}
	if req.Description != nil {
		rev.Description = *req.Description
	}
	if err := s.Repo.Save(rev); err != nil {
		return nil, err
	}
	return rev, nil
}

// Delete removes a review; only the original reviewer may do so.
func (s *ReviewService) Delete(userID, reviewID uint) error {
	rev, err := s.Get(reviewID)
	if err != nil {
		return err
	}
	if rev.ReviewerID != userID {
		return ErrForbidden
	}
	return s.Repo.Delete(reviewID)
}
