package seeds

import (
	"log"
	"os"
	"strings"

	"gorm.io/gorm"

	"eduarchive_backend/internals/constants"
	authHelper "eduarchive_backend/internals/features/users/auth/helper"
	userModel "eduarchive_backend/internals/features/users/user/model"
)

// SeedAdminUser membuat akun admin pertama dari env
// (ADMIN_EMAIL / ADMIN_PASSWORD / ADMIN_USER_NAME). No-op jika sudah ada.
func SeedAdminUser(db *gorm.DB) {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("[SEED] ADMIN_EMAIL/ADMIN_PASSWORD tidak diset, skip seeding admin")
		return
	}

	var count int64
	if err := db.Model(&userModel.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		log.Printf("[SEED ERROR] Gagal cek admin: %v", err)
		return
	}
	if count > 0 {
		return
	}

	userName := strings.TrimSpace(os.Getenv("ADMIN_USER_NAME"))
	if userName == "" {
		userName = "admin"
	}

	hash, err := authHelper.HashPassword(password)
	if err != nil {
		log.Printf("[SEED ERROR] Gagal hash password admin: %v", err)
		return
	}

	admin := userModel.UserModel{
		UserName:  userName,
		FirstName: "Admin",
		Email:     email,
		Password:  hash,
		Role:      constants.RoleAdmin,
		IsActive:  true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[SEED ERROR] Gagal membuat admin: %v", err)
		return
	}
	log.Printf("[SEED] Admin %s berhasil dibuat", email)
}

func RunAllSeeds(db *gorm.DB) {
	SeedAdminUser(db)
}
