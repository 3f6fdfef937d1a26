package service

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authRepo "eduarchive_backend/internals/features/users/auth/repository"
	helpers "eduarchive_backend/internals/helpers"
)

/* ==========================
   REFRESH TOKEN — rotasi token
========================== */

func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshToken := helpers.GetRefreshTokenFromCookie(c)
	if refreshToken == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		if err := c.BodyParser(&body); err == nil {
			refreshToken = body.RefreshToken
		}
	}
	if refreshToken == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ditemukan")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Metode signing tidak valid")
		}
		return []byte(refreshSecret), nil
	})
	if err != nil || !token.Valid {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak valid atau kadaluarsa")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak valid")
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak valid")
	}
	idStr, _ := claims["id"].(string)
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak valid")
	}

	// Token harus masih terdaftar di DB (hash) dan belum di-revoke
	tokenHash := computeRefreshHash(refreshToken, refreshSecret)
	exists, err := authRepo.RefreshTokenHashExists(db, tokenHash)
	if err != nil {
		log.Printf("[ERROR] RefreshToken lookup: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa refresh token")
	}
	if !exists {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token sudah tidak berlaku")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	// Rotasi: token lama dihapus, token baru diterbitkan
	if err := authRepo.DeleteRefreshTokenByHash(db, tokenHash); err != nil {
		log.Printf("[WARN] Failed to delete old refresh token: %v", err)
	}

	return issueTokens(c, db, user)
}
