package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	channelModel "eduarchive_backend/internals/features/channels/channels/model"
	memberModel "eduarchive_backend/internals/features/channels/members/model"
	"eduarchive_backend/internals/features/channels/members/service"
	userModel "eduarchive_backend/internals/features/users/user/model"
	helpers "eduarchive_backend/internals/helpers"
)

type MembershipController struct {
	DB *gorm.DB
}

func NewMembershipController(db *gorm.DB) *MembershipController {
	return &MembershipController{DB: db}
}

func membershipErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrChannelNotFound):
		return helpers.JsonError(c, fiber.StatusNotFound, "Channel tidak ditemukan")
	case errors.Is(err, service.ErrChannelNotApproved):
		return helpers.JsonError(c, fiber.StatusConflict, "Channel belum disetujui admin")
	case errors.Is(err, service.ErrChannelNotPublic):
		return helpers.JsonError(c, fiber.StatusForbidden, "Channel ini private, ajukan permintaan akses")
	case errors.Is(err, service.ErrNotMember):
		return helpers.JsonError(c, fiber.StatusConflict, "Anda bukan member channel ini")
	default:
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada membership")
	}
}

/* ==========================
   POST /api/u/channels/join-by-code
========================== */

func (mc *MembershipController) JoinByCode(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var req struct {
		AccessCode string `json:"access_code"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	code := strings.ToUpper(strings.TrimSpace(req.AccessCode))
	if code == "" {
		return helpers.JsonError(c, fiber.StatusUnprocessableEntity, "Kode akses (access_code) wajib diisi")
	}

	result, err := service.JoinByCode(mc.DB, userID, code)
	if err != nil {
		return membershipErrorResponse(c, err)
	}

	message := "Berhasil join channel"
	if result.AlreadyMember {
		message = "Anda sudah menjadi member channel ini"
	}
	return helpers.JsonOK(c, message, fiber.Map{
		"channel_id":     result.Channel.ChannelID,
		"channel_title":  result.Channel.ChannelTitle,
		"already_member": result.AlreadyMember,
	})
}

/* ==========================
   POST /api/u/channels/:id/join — channel public
========================== */

func (mc *MembershipController) JoinPublic(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	channelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID channel tidak valid")
	}

	result, err := service.JoinPublic(mc.DB, userID, channelID)
	if err != nil {
		return membershipErrorResponse(c, err)
	}

	message := "Berhasil join channel"
	if result.AlreadyMember {
		message = "Anda sudah menjadi member channel ini"
	}
	return helpers.JsonOK(c, message, fiber.Map{
		"channel_id":     result.Channel.ChannelID,
		"channel_title":  result.Channel.ChannelTitle,
		"already_member": result.AlreadyMember,
	})
}

/* ==========================
   POST /api/u/channels/:id/leave
========================== */

func (mc *MembershipController) Leave(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	channelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID channel tidak valid")
	}

	if err := service.Leave(mc.DB, userID, channelID); err != nil {
		return membershipErrorResponse(c, err)
	}
	return helpers.JsonOK(c, "Berhasil keluar dari channel", fiber.Map{"channel_id": channelID})
}

/* ==========================
   GET /api/u/channels/:id/members — owner only, terbaru dulu
========================== */

func (mc *MembershipController) ListMembers(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	channelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID channel tidak valid")
	}

	var channel channelModel.ChannelModel
	if err := mc.DB.First(&channel, "channel_id = ?", channelID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Channel tidak ditemukan")
	}
	if channel.ChannelOwnerUserID != userID && !helpers.IsAdmin(c) {
		return helpers.JsonError(c, fiber.StatusForbidden, "Hanya pemilik channel yang dapat melihat member")
	}

	paging := helpers.ResolvePaging(c, 20, 100)

	q := mc.DB.Model(&memberModel.ChannelMemberModel{}).
		Where("channel_member_channel_id = ?", channelID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung member")
	}

	var members []memberModel.ChannelMemberModel
	if err := q.
		Order("channel_member_joined_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&members).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data member")
	}

	type memberItem struct {
		UserID   uuid.UUID `json:"user_id"`
		UserName string    `json:"user_name"`
		JoinedAt string    `json:"joined_at"`
	}
	out := make([]memberItem, 0, len(members))
	for i := range members {
		item := memberItem{
			UserID:   members[i].ChannelMemberUserID,
			JoinedAt: members[i].ChannelMemberJoinedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
		var user userModel.UserModel
		if err := mc.DB.Select("user_name").First(&user, "id = ?", item.UserID).Error; err == nil {
			item.UserName = user.UserName
		}
		out = append(out, item)
	}

	return helpers.JsonList(c, "Berhasil mengambil data member",
		out, helpers.BuildPagination(paging, total, len(out)))
}
