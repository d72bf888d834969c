package services

import (
	"errors"

	"github.com/cyborg-s/coderr-backend/entity"
	"github.com/cyborg-s/coderr-backend/repository"
	"github.com/cyborg-s/coderr-backend/utils"
	"gorm.io/gorm"
)

type ProfileService struct {
	Repo *repository.UserRepository
}

func NewProfileService(repo *repository.UserRepository) *ProfileService {
	return &ProfileService{Repo: repo}
}

// PatchProfileReq carries the editable profile fields. Type is immutable
// after registration and deliberately absent.
type PatchProfileReq struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Location     *string `json:"location"`
	Tel          *string `json:"tel"`
	Description  *string `json:"description"`
	WorkingHours *string `json:"workingHours"`
	File         *string `json:"file"` // base64 profile picture
}

func (s *ProfileService) Get(userID uint) (*entity.Profile, error) {
	p, err := s.Repo.FindProfileByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Patch updates a profile; only its owner may do so.
func (s *ProfileService) Patch(callerID, userID uint, req *PatchProfileReq) (*entity.Profile, error) {
	p, err := s.Get(userID)
	if err != nil {
		return nil, err
	}
	if p.UserID != callerID {
		return nil, ErrForbidden
	}

	if req.FirstName != nil {
		p.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		p.LastName = *req.LastName
	}
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.Tel != nil {
		p.Tel = *req.Tel
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.WorkingHours != nil {
		p.WorkingHours = *req.WorkingHours
	}
	if req.File != nil {
		path, err := utils.SaveBase64Image(*req.File, "uploads/profiles")
		if err != nil {
			return nil, err
		}
		p.File = path
	}

	if err := s.Repo.SaveProfile(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProfileService) ListByType(t entity.ProfileType) ([]entity.Profile, error) {
	return s.Repo.ListProfilesByType(t)
}
