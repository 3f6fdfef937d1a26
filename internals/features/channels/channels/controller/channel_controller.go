package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduarchive_backend/internals/constants"
	"eduarchive_backend/internals/features/channels/channels/dto"
	channelModel "eduarchive_backend/internals/features/channels/channels/model"
	helpers "eduarchive_backend/internals/helpers"
)

type ChannelController struct {
	DB *gorm.DB
}

func NewChannelController(db *gorm.DB) *ChannelController {
	return &ChannelController{DB: db}
}

/* ==========================
   POST /api/u/channels — teacher only, status dipaksa pending
========================== */

func (cc *ChannelController) CreateChannel(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	if !helpers.IsTeacher(c) {
		return helpers.JsonError(c, fiber.StatusForbidden, "Hanya teacher yang dapat membuat channel")
	}

	var req dto.CreateChannelRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return helpers.JsonError(c, fiber.StatusUnprocessableEntity, "Judul channel (title) wajib diisi")
	}

	slug, err := helpers.EnsureUniqueSlug(cc.DB, helpers.GenerateSlug(title), "channels", "channel_slug", "channel_deleted_at")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug channel")
	}
	accessCode, err := helpers.GenerateAccessCode()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kode akses")
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	channel := channelModel.ChannelModel{
		ChannelOwnerUserID: userID,
		ChannelTitle:       title,
		ChannelSlug:        slug,
		ChannelDescription: strings.TrimSpace(req.Description),
		ChannelAccessCode:  accessCode,
		ChannelIsPublic:    isPublic,
		ChannelStatus:      constants.StatusPending,
	}
	if err := cc.DB.Create(&channel).Error; err != nil {
		if helpers.IsUniqueViolation(err) {
			return helpers.JsonError(c, fiber.StatusConflict, "Channel dengan slug tersebut sudah ada")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat channel")
	}

	return helpers.JsonCreated(c, "Channel berhasil dibuat, menunggu persetujuan admin",
		dto.ToOwnerChannelResponse(&channel))
}

/* ==========================
   GET /api/u/channels/mine
========================== */

func (cc *ChannelController) GetMyChannels(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var channels []channelModel.ChannelModel
	if err := cc.DB.
		Where("channel_owner_user_id = ?", userID).
		Order("channel_created_at DESC").
		Find(&channels).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data channel")
	}

	return helpers.JsonOK(c, "Berhasil mengambil data channel", dto.ToOwnerChannelResponses(channels))
}

/* ==========================
   PUT /api/u/channels/:id — owner atau admin
========================== */

func (cc *ChannelController) UpdateChannel(c *fiber.Ctx) error {
	channelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID channel tidak valid")
	}
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var channel channelModel.ChannelModel
	if err := cc.DB.First(&channel, "channel_id = ?", channelID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Channel tidak ditemukan")
	}
	if channel.ChannelOwnerUserID != userID && !helpers.IsAdmin(c) {
		return helpers.JsonError(c, fiber.StatusForbidden, "Anda tidak memiliki akses ke channel ini")
	}

	var req dto.UpdateChannelRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]any{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return helpers.JsonError(c, fiber.StatusUnprocessableEntity, "Judul channel (title) tidak boleh kosong")
		}
		updates["channel_title"] = title
		// Slug mengikuti judul baru; baris sendiri tidak dihitung bentrok
		if title != channel.ChannelTitle {
			slug, err := helpers.EnsureUniqueSlugExcept(cc.DB, helpers.GenerateSlug(title), "channels", "channel_slug", "channel_deleted_at", "channel_id", channel.ChannelID)
			if err != nil {
				return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug channel")
			}
			updates["channel_slug"] = slug
		}
	}
	if req.Description != nil {
		updates["channel_description"] = strings.TrimSpace(*req.Description)
	}
	if req.IsPublic != nil {
		updates["channel_is_public"] = *req.IsPublic
	}
	if len(updates) == 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := cc.DB.Model(&channel).Updates(updates).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui channel")
	}
	if err := cc.DB.First(&channel, "channel_id = ?", channelID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat channel")
	}

	return helpers.JsonUpdated(c, "Channel berhasil diperbarui", dto.ToOwnerChannelResponse(&channel))
}

/* ==========================
   DELETE /api/u/channels/:id — soft delete, owner atau admin
========================== */

func (cc *ChannelController) DeleteChannel(c *fiber.Ctx) error {
	channelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID channel tidak valid")
	}
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var channel channelModel.ChannelModel
	if err := cc.DB.First(&channel, "channel_id = ?", channelID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Channel tidak ditemukan")
	}
	if channel.ChannelOwnerUserID != userID && !helpers.IsAdmin(c) {
		return helpers.JsonError(c, fiber.StatusForbidden, "Anda tidak memiliki akses ke channel ini")
	}

	if err := cc.DB.Delete(&channel).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus channel")
	}
	return helpers.JsonDeleted(c, "Channel berhasil dihapus", fiber.Map{"id": channel.ChannelID})
}
