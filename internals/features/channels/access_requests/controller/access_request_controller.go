package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduarchive_backend/internals/constants"
	"eduarchive_backend/internals/features/channels/access_requests/dto"
	requestModel "eduarchive_backend/internals/features/channels/access_requests/model"
	channelModel "eduarchive_backend/internals/features/channels/channels/model"
	memberService "eduarchive_backend/internals/features/channels/members/service"
	userModel "eduarchive_backend/internals/features/users/user/model"
	helpers "eduarchive_backend/internals/helpers"
)

type AccessRequestController struct {
	DB *gorm.DB
}

func NewAccessRequestController(db *gorm.DB) *AccessRequestController {
	return &AccessRequestController{DB: db}
}

/* ==========================
   POST /api/u/channels/:id/access-requests — channel private saja
========================== */

func (ac *AccessRequestController) CreateRequest(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	channelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID channel tidak valid")
	}

	var channel channelModel.ChannelModel
	if err := ac.DB.First(&channel, "channel_id = ?", channelID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Channel tidak ditemukan")
	}
	if !channel.IsApproved() {
		return helpers.JsonError(c, fiber.StatusConflict, "Channel belum disetujui admin")
	}
	if channel.ChannelIsPublic {
		return helpers.JsonError(c, fiber.StatusConflict, "Channel ini public, langsung join saja")
	}

	if isMember, err := memberService.IsMember(ac.DB, channelID, userID); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa membership")
	} else if isMember {
		return helpers.JsonError(c, fiber.StatusConflict, "Anda sudah menjadi member channel ini")
	}

	// Satu request pending per (channel, user); history rejected/approved
	// tidak memblokir request baru
	var pendingCount int64
	if err := ac.DB.Model(&requestModel.ChannelAccessRequestModel{}).
		Where("channel_access_request_channel_id = ? AND channel_access_request_user_id = ? AND channel_access_request_status = ?",
			channelID, userID, constants.StatusPending).
		Count(&pendingCount).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa permintaan akses")
	}
	if pendingCount > 0 {
		return helpers.JsonError(c, fiber.StatusConflict, "Permintaan akses Anda masih menunggu review")
	}

	request := requestModel.ChannelAccessRequestModel{
		ChannelAccessRequestChannelID: channelID,
		ChannelAccessRequestUserID:    userID,
		ChannelAccessRequestStatus:    constants.StatusPending,
	}
	if err := ac.DB.Create(&request).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat permintaan akses")
	}

	return helpers.JsonCreated(c, "Permintaan akses berhasil dikirim", dto.ToAccessRequestResponse(&request))
}

/* ==========================
   GET /api/u/channels/:id/access-requests — owner/admin, pending terbaru dulu
========================== */

func (ac *AccessRequestController) ListPending(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	channelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID channel tidak valid")
	}

	var channel channelModel.ChannelModel
	if err := ac.DB.First(&channel, "channel_id = ?", channelID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Channel tidak ditemukan")
	}
	if channel.ChannelOwnerUserID != userID && !helpers.IsAdmin(c) {
		return helpers.JsonError(c, fiber.StatusForbidden, "Anda tidak memiliki akses ke channel ini")
	}

	paging := helpers.ResolvePaging(c, 20, 100)

	q := ac.DB.Model(&requestModel.ChannelAccessRequestModel{}).
		Where("channel_access_request_channel_id = ? AND channel_access_request_status = ?",
			channelID, constants.StatusPending)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung permintaan akses")
	}

	var rows []requestModel.ChannelAccessRequestModel
	if err := q.
		Order("channel_access_request_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil permintaan akses")
	}

	out := make([]dto.AccessRequestResponse, 0, len(rows))
	for i := range rows {
		resp := dto.ToAccessRequestResponse(&rows[i])
		var user userModel.UserModel
		if err := ac.DB.Select("user_name").
			First(&user, "id = ?", rows[i].ChannelAccessRequestUserID).Error; err == nil {
			resp.UserName = user.UserName
		}
		out = append(out, resp)
	}

	return helpers.JsonList(c, "Berhasil mengambil permintaan akses",
		out, helpers.BuildPagination(paging, total, len(out)))
}

// loadRequestForReview memuat request + channel dan cek kepemilikan.
// Error dikembalikan sebagai *fiber.Error; caller yang menulis response
// (JsonError mengembalikan nil setelah menulis, jadi tidak bisa jadi sentinel).
func (ac *AccessRequestController) loadRequestForReview(c *fiber.Ctx) (*requestModel.ChannelAccessRequestModel, *channelModel.ChannelModel, uuid.UUID, error) {
	reviewerID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return nil, nil, uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID permintaan tidak valid")
	}

	var request requestModel.ChannelAccessRequestModel
	if err := ac.DB.First(&request, "channel_access_request_id = ?", requestID).Error; err != nil {
		return nil, nil, uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Permintaan akses tidak ditemukan")
	}
	var channel channelModel.ChannelModel
	if err := ac.DB.First(&channel, "channel_id = ?", request.ChannelAccessRequestChannelID).Error; err != nil {
		return nil, nil, uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Channel tidak ditemukan")
	}
	if channel.ChannelOwnerUserID != reviewerID && !helpers.IsAdmin(c) {
		return nil, nil, uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Anda tidak memiliki akses ke channel ini")
	}
	return &request, &channel, reviewerID, nil
}

func reviewErrorResponse(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return helpers.JsonError(c, fe.Code, fe.Message)
	}
	return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat permintaan akses")
}

/* ==========================
   PUT /api/u/access-requests/:id/approve
   Flip pending + insert membership + increment, satu transaksi.
========================== */

func (ac *AccessRequestController) Approve(c *fiber.Ctx) error {
	request, channel, reviewerID, err := ac.loadRequestForReview(c)
	if err != nil {
		return reviewErrorResponse(c, err)
	}

	txErr := ac.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&requestModel.ChannelAccessRequestModel{}).
			Where("channel_access_request_id = ? AND channel_access_request_status = ?",
				request.ChannelAccessRequestID, constants.StatusPending).
			Updates(map[string]any{
				"channel_access_request_status":      constants.StatusApproved,
				"channel_access_request_reviewed_by": reviewerID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusConflict, "Permintaan akses sudah direview")
		}

		_, err := memberService.AddMember(tx, channel.ChannelID, request.ChannelAccessRequestUserID)
		return err
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return helpers.JsonError(c, fe.Code, fe.Message)
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyetujui permintaan akses")
	}

	return helpers.JsonUpdated(c, "Permintaan akses disetujui", fiber.Map{
		"id":         request.ChannelAccessRequestID,
		"channel_id": channel.ChannelID,
		"user_id":    request.ChannelAccessRequestUserID,
		"status":     constants.StatusApproved,
	})
}

/* ==========================
   PUT /api/u/access-requests/:id/reject — alasan disimpan
========================== */

func (ac *AccessRequestController) Reject(c *fiber.Ctx) error {
	request, _, reviewerID, err := ac.loadRequestForReview(c)
	if err != nil {
		return reviewErrorResponse(c, err)
	}

	var req dto.RejectAccessRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	reason := strings.TrimSpace(req.Reason)

	updates := map[string]any{
		"channel_access_request_status":      constants.StatusRejected,
		"channel_access_request_reviewed_by": reviewerID,
	}
	if reason != "" {
		updates["channel_access_request_reason"] = reason
	}

	res := ac.DB.Model(&requestModel.ChannelAccessRequestModel{}).
		Where("channel_access_request_id = ? AND channel_access_request_status = ?",
			request.ChannelAccessRequestID, constants.StatusPending).
		Updates(updates)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menolak permintaan akses")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusConflict, "Permintaan akses sudah direview")
	}

	return helpers.JsonUpdated(c, "Permintaan akses ditolak", fiber.Map{
		"id":     request.ChannelAccessRequestID,
		"status": constants.StatusRejected,
		"reason": reason,
	})
}
