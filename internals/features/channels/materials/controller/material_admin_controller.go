package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduarchive_backend/internals/constants"
	"eduarchive_backend/internals/features/channels/materials/dto"
	materialModel "eduarchive_backend/internals/features/channels/materials/model"
	helpers "eduarchive_backend/internals/helpers"
)

type MaterialAdminController struct {
	DB *gorm.DB
}

func NewMaterialAdminController(db *gorm.DB) *MaterialAdminController {
	return &MaterialAdminController{DB: db}
}

/* ==========================
   GET /api/a/materials/pending
========================== */

func (ac *MaterialAdminController) ListPending(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)

	q := ac.DB.Model(&materialModel.MaterialModel{}).
		Where("material_status = ?", constants.StatusPending)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung materi")
	}

	var materials []materialModel.MaterialModel
	if err := q.
		Order("material_created_at ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&materials).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data materi")
	}

	return helpers.JsonList(c, "Berhasil mengambil data materi",
		dto.ToMaterialResponses(materials),
		helpers.BuildPagination(paging, total, len(materials)))
}

// moderateMaterial: conditional update, hanya baris pending yang berubah.
func (ac *MaterialAdminController) moderateMaterial(c *fiber.Ctx, target string) error {
	materialID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID materi tidak valid")
	}
	adminID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	updates := map[string]any{"material_status": target}
	if target == constants.StatusApproved {
		updates["material_approved_by"] = adminID
		updates["material_approved_at"] = time.Now().UTC()
	}

	res := ac.DB.Model(&materialModel.MaterialModel{}).
		Where("material_id = ? AND material_status = ?", materialID, constants.StatusPending).
		Updates(updates)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui status materi")
	}
	if res.RowsAffected == 0 {
		var exists int64
		ac.DB.Model(&materialModel.MaterialModel{}).
			Where("material_id = ?", materialID).Count(&exists)
		if exists == 0 {
			return helpers.JsonError(c, fiber.StatusNotFound, "Materi tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusConflict, "Materi sudah direview")
	}

	message := "Materi disetujui"
	if target == constants.StatusRejected {
		message = "Materi ditolak"
	}
	return helpers.JsonUpdated(c, message, fiber.Map{
		"id":     materialID,
		"status": target,
	})
}

// PUT /api/a/materials/:id/approve
func (ac *MaterialAdminController) Approve(c *fiber.Ctx) error {
	return ac.moderateMaterial(c, constants.StatusApproved)
}

// PUT /api/a/materials/:id/reject
func (ac *MaterialAdminController) Reject(c *fiber.Ctx) error {
	return ac.moderateMaterial(c, constants.StatusRejected)
}
