package configs

import (
	"log"

	"github.com/cyborg-s/coderr-backend/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedStaff creates the staff account on first start. Staff users are the
// only ones allowed to delete orders.
func SeedStaff() error {
	db := DB()
	username := getEnv("STAFF_USERNAME", "")
	pass := getEnv("STAFF_PASSWORD", "")
	if username == "" || pass == "" {
		log.Println("skip seeding staff: missing STAFF_USERNAME/STAFF_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		log.Println("staff already exists:", username)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	staff := entity.User{
		Username: username,
		Email:    getEnv("STAFF_EMAIL", username+"@localhost"),
		Password: string(hash),
		IsStaff:  true,
	}
	return db.Create(&staff).Error
}
