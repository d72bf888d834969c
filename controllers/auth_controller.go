package controllers

import (
	"strings"

	"github.com/cyborg-s/coderr-backend/configs"
	"github.com/cyborg-s/coderr-backend/entity"
	"github.com/cyborg-s/coderr-backend/pkg/resp"
	"github.com/cyborg-s/coderr-backend/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Username  string             `json:"username" binding:"required"`
	Email     string             `json:"email" binding:"required,email"`
	Password  string             `json:"password" binding:"required,min=6"`
	Type      entity.ProfileType `json:"type" binding:"required,oneof=business customer"`
	FirstName string             `json:"firstName"`
	LastName  string             `json:"lastName"`
}
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	DB  *gorm.DB
	Cfg *configs.Config
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

// POST /registration
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var exist entity.User
	if err := a.DB.Where("username = ? OR email = ?", req.Username, strings.ToLower(req.Email)).
		First(&exist).Error; err == nil {
		resp.BadRequest(c, "username or email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	user := entity.User{
		Username: req.Username,
		Email:    strings.ToLower(req.Email),
		Password: string(hashed),
	}

	// user and profile are created together or not at all
	err = a.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := entity.Profile{
			UserID:    user.ID,
			Type:      req.Type,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, string(req.Type), false, a.Cfg.JWTSecret, a.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{
		"token": token, "username": user.Username, "email": user.Email, "userId": user.ID,
	})
}

// POST /login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var user entity.User
	if err := a.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	role := ""
	var profile entity.Profile
	if err := a.DB.Where("user_id = ?", user.ID).First(&profile).Error; err == nil {
		role = string(profile.Type)
	}

	token, err := utils.GenerateToken(user.ID, role, user.IsStaff, a.Cfg.JWTSecret, a.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"token":    token,
		"username": user.Username,
		"email":    user.Email,
		"userId":   user.ID,
	})
}
