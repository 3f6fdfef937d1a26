package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	authRepo "eduarchive_backend/internals/features/users/auth/repository"
)

func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		// Ambil TTL dari env (default: 7 hari)
		ttlDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				ttlDays = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Menjalankan pembersihan token_blacklist...")

			deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

			if n, err := authRepo.CleanupExpiredBlacklist(db, deleteBefore); err != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus token blacklist: %v", err)
			} else if n > 0 {
				log.Printf("[CLEANUP] %d token kadaluarsa dihapus", n)
			} else {
				log.Println("[CLEANUP] Tidak ada token yang memenuhi syarat dihapus")
			}

			if n, err := authRepo.CleanupExpiredRefreshTokens(db, time.Now()); err != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus refresh token: %v", err)
			} else if n > 0 {
				log.Printf("[CLEANUP] %d refresh token kadaluarsa dihapus", n)
			}

			// Jalankan tiap 24 jam
			time.Sleep(24 * time.Hour)
		}
	}()
}
