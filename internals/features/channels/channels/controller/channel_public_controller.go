package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduarchive_backend/internals/constants"
	"eduarchive_backend/internals/features/channels/channels/dto"
	channelModel "eduarchive_backend/internals/features/channels/channels/model"
	helpers "eduarchive_backend/internals/helpers"
)

type ChannelPublicController struct {
	DB *gorm.DB
}

func NewChannelPublicController(db *gorm.DB) *ChannelPublicController {
	return &ChannelPublicController{DB: db}
}

/* ==========================
   GET /api/public/channels — hanya approved, ?search= opsional
========================== */

func (pc *ChannelPublicController) ListChannels(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)

	q := pc.DB.Model(&channelModel.ChannelModel{}).
		Where("channel_status = ?", constants.StatusApproved)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where("lower(channel_title) LIKE ? OR lower(channel_description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data channel")
	}

	var channels []channelModel.ChannelModel
	if err := q.
		Order("channel_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&channels).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data channel")
	}

	return helpers.JsonList(c, "Berhasil mengambil data channel",
		dto.ToChannelResponses(channels),
		helpers.BuildPagination(paging, total, len(channels)))
}

/* ==========================
   GET /api/public/channels/:slug
   Channel belum approved hanya terlihat oleh owner / admin.
========================== */

func (pc *ChannelPublicController) GetChannelBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Slug channel tidak valid")
	}

	var channel channelModel.ChannelModel
	if err := pc.DB.First(&channel, "channel_slug = ?", slug).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Channel tidak ditemukan")
	}

	if !channel.IsApproved() {
		viewerID, err := helpers.GetUserIDFromToken(c)
		isOwner := err == nil && viewerID == channel.ChannelOwnerUserID
		if !isOwner && !helpers.IsAdmin(c) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Channel tidak ditemukan")
		}
	}

	return helpers.JsonOK(c, "Berhasil mengambil data channel", dto.ToChannelResponse(&channel))
}
