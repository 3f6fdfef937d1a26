package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduarchive_backend/internals/constants"
	channelModel "eduarchive_backend/internals/features/channels/channels/model"
	"eduarchive_backend/internals/features/channels/materials/dto"
	materialModel "eduarchive_backend/internals/features/channels/materials/model"
	helpers "eduarchive_backend/internals/helpers"
)

type MaterialController struct {
	DB *gorm.DB
}

func NewMaterialController(db *gorm.DB) *MaterialController {
	return &MaterialController{DB: db}
}

/* ==========================
   POST /api/u/channels/:id/materials — multipart, owner only
========================== */

func (mc *MaterialController) UploadMaterial(c *fiber.Ctx) error {
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
	// uploaded_by selalu owner channel
	if channel.ChannelOwnerUserID != userID {
		return helpers.JsonError(c, fiber.StatusForbidden, "Hanya pemilik channel yang dapat mengupload materi")
	}

	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return helpers.JsonError(c, fiber.StatusUnprocessableEntity, "Judul materi (title) wajib diisi")
	}
	description := strings.TrimSpace(c.FormValue("description"))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnprocessableEntity, "File materi (file) wajib diupload")
	}
	saved, err := helpers.SaveUploadedFile(constants.UploadDirMaterials, fileHeader, constants.MaxMaterialSize)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	material := materialModel.MaterialModel{
		MaterialChannelID:   channel.ChannelID,
		MaterialUploadedBy:  channel.ChannelOwnerUserID,
		MaterialTitle:       title,
		MaterialDescription: description,
		MaterialFileURL:     saved.RelativePath,
		MaterialFileName:    saved.FileName,
		MaterialFileMime:    saved.Mime,
		MaterialFileSize:    saved.Size,
		MaterialStatus:      constants.StatusPending,
	}
	if err := mc.DB.Create(&material).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan materi")
	}

	return helpers.JsonCreated(c, "Materi berhasil diupload, menunggu persetujuan admin",
		dto.ToMaterialResponse(&material))
}

/* ==========================
   PUT /api/u/materials/:id — metadata dan/atau ganti file
========================== */

func (mc *MaterialController) UpdateMaterial(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	materialID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID materi tidak valid")
	}

	var material materialModel.MaterialModel
	if err := mc.DB.First(&material, "material_id = ?", materialID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Materi tidak ditemukan")
	}
	if material.MaterialUploadedBy != userID && !helpers.IsAdmin(c) {
		return helpers.JsonError(c, fiber.StatusForbidden, "Anda tidak memiliki akses ke materi ini")
	}

	updates := map[string]any{}
	if title := strings.TrimSpace(c.FormValue("title")); title != "" {
		updates["material_title"] = title
	}
	if c.FormValue("description") != "" {
		updates["material_description"] = strings.TrimSpace(c.FormValue("description"))
	}

	if fileHeader, err := c.FormFile("file"); err == nil {
		saved, err := helpers.SaveUploadedFile(constants.UploadDirMaterials, fileHeader, constants.MaxMaterialSize)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		updates["material_file_url"] = saved.RelativePath
		updates["material_file_name"] = saved.FileName
		updates["material_file_mime"] = saved.Mime
		updates["material_file_size"] = saved.Size
	}

	if len(updates) == 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := mc.DB.Model(&material).Updates(updates).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui materi")
	}
	if err := mc.DB.First(&material, "material_id = ?", materialID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat materi")
	}

	return helpers.JsonUpdated(c, "Materi berhasil diperbarui", dto.ToMaterialResponse(&material))
}

/* ==========================
   DELETE /api/u/materials/:id — soft delete, owner atau admin
========================== */

func (mc *MaterialController) DeleteMaterial(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	materialID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID materi tidak valid")
	}

	var material materialModel.MaterialModel
	if err := mc.DB.First(&material, "material_id = ?", materialID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Materi tidak ditemukan")
	}
	if material.MaterialUploadedBy != userID && !helpers.IsAdmin(c) {
		return helpers.JsonError(c, fiber.StatusForbidden, "Anda tidak memiliki akses ke materi ini")
	}

	if err := mc.DB.Delete(&material).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus materi")
	}
	return helpers.JsonDeleted(c, "Materi berhasil dihapus", fiber.Map{"id": material.MaterialID})
}

/* ==========================
   GET /api/u/channels/:id/materials
   Owner/admin melihat semua status; selain itu hanya approved.
========================== */

func (mc *MaterialController) ListChannelMaterials(c *fiber.Ctx) error {
	channelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID channel tidak valid")
	}

	var channel channelModel.ChannelModel
	if err := mc.DB.First(&channel, "channel_id = ?", channelID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Channel tidak ditemukan")
	}

	viewerID, err := helpers.GetUserIDFromToken(c)
	privileged := (err == nil && viewerID == channel.ChannelOwnerUserID) || helpers.IsAdmin(c)

	paging := helpers.ResolvePaging(c, 20, 100)

	q := mc.DB.Model(&materialModel.MaterialModel{}).
		Where("material_channel_id = ?", channelID)
	if !privileged {
		q = q.Where("material_status = ?", constants.StatusApproved)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung materi")
	}

	var materials []materialModel.MaterialModel
	if err := q.
		Order("material_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&materials).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data materi")
	}

	return helpers.JsonList(c, "Berhasil mengambil data materi",
		dto.ToMaterialResponses(materials),
		helpers.BuildPagination(paging, total, len(materials)))
}
