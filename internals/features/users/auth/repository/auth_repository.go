package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "eduarchive_backend/internals/features/users/auth/model"
	userModel "eduarchive_backend/internals/features/users/user/model"
	helper "eduarchive_backend/internals/helpers"
)

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

func FindUserByID(db *gorm.DB, id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByIdentifier mencari user aktif (belum soft-delete) by email atau username.
func FindUserByIdentifier(db *gorm.DB, identifier string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.
		Where("email = ? OR user_name = ?", identifier, identifier).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindDeletedUserByIdentifier mencari user yang SUDAH soft-delete, untuk
// menampilkan alasan penghapusan di response login.
func FindDeletedUserByIdentifier(db *gorm.DB, identifier string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Unscoped().
		Where("(email = ? OR user_name = ?) AND deleted_at IS NOT NULL", identifier, identifier).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdateUserPassword(db *gorm.DB, userID uuid.UUID, hashed string) error {
	return db.Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Update("password", hashed).Error
}

/* ========== Refresh token & blacklist ========== */

func CreateRefreshToken(db *gorm.DB, rt *authModel.RefreshToken) error {
	return db.Create(rt).Error
}

func DeleteRefreshTokenByHash(db *gorm.DB, tokenHash []byte) error {
	return db.Where("token = ?", tokenHash).Delete(&authModel.RefreshToken{}).Error
}

func RefreshTokenHashExists(db *gorm.DB, tokenHash []byte) (bool, error) {
	var cnt int64
	err := db.Model(&authModel.RefreshToken{}).
		Where("token = ? AND expires_at > ? AND revoked_at IS NULL", tokenHash, time.Now().UTC()).
		Count(&cnt).Error
	return cnt > 0, err
}

// BlacklistToken memasukkan access token ke blacklist (idempotent).
func BlacklistToken(db *gorm.DB, token string, ttl time.Duration) error {
	entry := authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: time.Now().UTC().Add(ttl),
	}
	err := db.Create(&entry).Error
	if err != nil && helper.IsUniqueViolation(err) {
		return nil
	}
	return err
}

// CleanupExpiredBlacklist menghapus entri blacklist yang sudah kadaluarsa.
func CleanupExpiredBlacklist(db *gorm.DB, before time.Time) (int64, error) {
	res := db.Where("expired_at < ?", before).Delete(&authModel.TokenBlacklist{})
	return res.RowsAffected, res.Error
}

// CleanupExpiredRefreshTokens menghapus refresh token yang kadaluarsa/di-revoke.
func CleanupExpiredRefreshTokens(db *gorm.DB, before time.Time) (int64, error) {
	res := db.Where("expires_at < ? OR revoked_at IS NOT NULL", before).
		Delete(&authModel.RefreshToken{})
	return res.RowsAffected, res.Error
}
