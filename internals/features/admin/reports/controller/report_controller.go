package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	requestModel "eduarchive_backend/internals/features/channels/access_requests/model"
	channelModel "eduarchive_backend/internals/features/channels/channels/model"
	materialModel "eduarchive_backend/internals/features/channels/materials/model"
	memberModel "eduarchive_backend/internals/features/channels/members/model"
	userModel "eduarchive_backend/internals/features/users/user/model"
	helpers "eduarchive_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

func countGroupBy(db *gorm.DB, model any, column string) (map[string]int64, error) {
	type row struct {
		Key   string
		Total int64
	}
	var rows []row
	if err := db.Model(model).
		Select(column + " AS key, COUNT(*) AS total").
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Total
	}
	return out, nil
}

/* ==========================
   GET /api/a/reports/summary
========================== */

func (rc *ReportController) Summary(c *fiber.Ctx) error {
	usersPerRole, err := countGroupBy(rc.DB, &userModel.UserModel{}, "role")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung user")
	}
	channelsPerStatus, err := countGroupBy(rc.DB, &channelModel.ChannelModel{}, "channel_status")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung channel")
	}
	materialsPerStatus, err := countGroupBy(rc.DB, &materialModel.MaterialModel{}, "material_status")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung materi")
	}

	var totalDownloads, totalMemberships, pendingRequests int64
	if err := rc.DB.Model(&materialModel.MaterialDownloadModel{}).Count(&totalDownloads).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung download")
	}
	if err := rc.DB.Model(&memberModel.ChannelMemberModel{}).Count(&totalMemberships).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung membership")
	}
	if err := rc.DB.Model(&requestModel.ChannelAccessRequestModel{}).
		Where("channel_access_request_status = ?", "pending").
		Count(&pendingRequests).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung permintaan akses")
	}

	return helpers.JsonOK(c, "Berhasil mengambil ringkasan", fiber.Map{
		"users_per_role":          usersPerRole,
		"channels_per_status":     channelsPerStatus,
		"materials_per_status":    materialsPerStatus,
		"total_downloads":         totalDownloads,
		"total_memberships":       totalMemberships,
		"pending_access_requests": pendingRequests,
	})
}

/* ==========================
   GET /api/a/reports/downloads — history, terbaru dulu
========================== */

func (rc *ReportController) Downloads(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)

	var total int64
	if err := rc.DB.Model(&materialModel.MaterialDownloadModel{}).Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung download")
	}

	type downloadRow struct {
		MaterialDownloadID        uuid.UUID `json:"id"`
		MaterialID                uuid.UUID `json:"material_id" gorm:"column:material_download_material_id"`
		UserID                    uuid.UUID `json:"user_id" gorm:"column:material_download_user_id"`
		UserName                  string    `json:"user_name"`
		MaterialTitle             string    `json:"material_title"`
		MaterialDownloadCreatedAt time.Time `json:"downloaded_at"`
	}

	var rows []downloadRow
	if err := rc.DB.Model(&materialModel.MaterialDownloadModel{}).
		Select(`material_downloads.material_download_id,
			material_downloads.material_download_material_id,
			material_downloads.material_download_user_id,
			users.user_name,
			materials.material_title,
			material_downloads.material_download_created_at`).
		Joins("LEFT JOIN users ON users.id = material_downloads.material_download_user_id").
		Joins("LEFT JOIN materials ON materials.material_id = material_downloads.material_download_material_id").
		Order("material_downloads.material_download_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Scan(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat download")
	}

	return helpers.JsonList(c, "Berhasil mengambil riwayat download",
		rows, helpers.BuildPagination(paging, total, len(rows)))
}
