package database

import (
	"log"

	"gorm.io/gorm"

	requestModel "eduarchive_backend/internals/features/channels/access_requests/model"
	channelModel "eduarchive_backend/internals/features/channels/channels/model"
	memberModel "eduarchive_backend/internals/features/channels/members/model"
	materialModel "eduarchive_backend/internals/features/channels/materials/model"
	authModel "eduarchive_backend/internals/features/users/auth/model"
	verifModel "eduarchive_backend/internals/features/users/teacher_verifications/model"
	userModel "eduarchive_backend/internals/features/users/user/model"
)

// MigrateAll menjalankan AutoMigrate untuk semua tabel aplikasi.
// Dipakai saat boot dan oleh test setup (sqlite in-memory).
func MigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},
		&userModel.UserWarningModel{},
		&verifModel.TeacherVerificationModel{},
		&authModel.RefreshToken{},
		&authModel.TokenBlacklist{},
		&channelModel.ChannelModel{},
		&memberModel.ChannelMemberModel{},
		&requestModel.ChannelAccessRequestModel{},
		&materialModel.MaterialModel{},
		&materialModel.MaterialDownloadModel{},
	)
}

// Migrate: wrapper yang log fatal saat gagal (dipanggil dari main).
func Migrate() {
	if err := MigrateAll(DB); err != nil {
		log.Fatalf("❌ Gagal migrasi schema: %v", err)
	}
	log.Println("✅ Schema migrated.")
}
