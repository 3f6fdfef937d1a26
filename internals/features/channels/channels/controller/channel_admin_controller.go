package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduarchive_backend/internals/constants"
	"eduarchive_backend/internals/features/channels/channels/dto"
	channelModel "eduarchive_backend/internals/features/channels/channels/model"
	helpers "eduarchive_backend/internals/helpers"
)

type ChannelAdminController struct {
	DB *gorm.DB
}

func NewChannelAdminController(db *gorm.DB) *ChannelAdminController {
	return &ChannelAdminController{DB: db}
}

/* ==========================
   GET /api/a/channels/pending
========================== */

func (ac *ChannelAdminController) ListPending(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)

	q := ac.DB.Model(&channelModel.ChannelModel{}).
		Where("channel_status = ?", constants.StatusPending)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data channel")
	}

	var channels []channelModel.ChannelModel
	if err := q.
		Order("channel_created_at ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&channels).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data channel")
	}

	return helpers.JsonList(c, "Berhasil mengambil data channel",
		dto.ToChannelResponses(channels),
		helpers.BuildPagination(paging, total, len(channels)))
}

// moderateChannel: conditional update status pending -> target, idempotent
// terhadap request ganda karena hanya baris pending yang ter-update.
func (ac *ChannelAdminController) moderateChannel(c *fiber.Ctx, target string) error {
	channelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID channel tidak valid")
	}
	adminID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	updates := map[string]any{"channel_status": target}
	if target == constants.StatusApproved {
		updates["channel_approved_by"] = adminID
		updates["channel_approved_at"] = time.Now().UTC()
	}

	res := ac.DB.Model(&channelModel.ChannelModel{}).
		Where("channel_id = ? AND channel_status = ?", channelID, constants.StatusPending).
		Updates(updates)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui status channel")
	}
	if res.RowsAffected == 0 {
		var exists int64
		ac.DB.Model(&channelModel.ChannelModel{}).
			Where("channel_id = ?", channelID).Count(&exists)
		if exists == 0 {
			return helpers.JsonError(c, fiber.StatusNotFound, "Channel tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusConflict, "Channel sudah direview")
	}

	message := "Channel disetujui"
	if target == constants.StatusRejected {
		message = "Channel ditolak"
	}
	return helpers.JsonUpdated(c, message, fiber.Map{
		"id":     channelID,
		"status": target,
	})
}

// PUT /api/a/channels/:id/approve
func (ac *ChannelAdminController) Approve(c *fiber.Ctx) error {
	return ac.moderateChannel(c, constants.StatusApproved)
}

// PUT /api/a/channels/:id/reject
func (ac *ChannelAdminController) Reject(c *fiber.Ctx) error {
	return ac.moderateChannel(c, constants.StatusRejected)
}
