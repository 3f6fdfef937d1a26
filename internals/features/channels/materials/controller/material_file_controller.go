package controller

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	materialModel "eduarchive_backend/internals/features/channels/materials/model"
	helpers "eduarchive_backend/internals/helpers"
)

/* ==========================
   Download & preview — stream dari disk
========================== */

// loadMaterialForViewer: approved-only untuk viewer biasa, semua status
// untuk uploader/admin. Error dikembalikan sebagai *fiber.Error; caller yang
// menulis response (JsonError mengembalikan nil setelah menulis).
func (mc *MaterialController) loadMaterialForViewer(c *fiber.Ctx) (*materialModel.MaterialModel, uuid.UUID, error) {
	viewerID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return nil, uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	materialID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID materi tidak valid")
	}

	var material materialModel.MaterialModel
	if err := mc.DB.First(&material, "material_id = ?", materialID).Error; err != nil {
		return nil, uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Materi tidak ditemukan")
	}

	if !material.IsApproved() {
		if material.MaterialUploadedBy != viewerID && !helpers.IsAdmin(c) {
			return nil, uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Materi tidak ditemukan")
		}
	}
	return &material, viewerID, nil
}

func viewerErrorResponse(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return helpers.JsonError(c, fe.Code, fe.Message)
	}
	return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat materi")
}

// recordDownload: audit log best-effort, error ditelan
func (mc *MaterialController) recordDownload(materialID, userID uuid.UUID) {
	entry := materialModel.MaterialDownloadModel{
		MaterialDownloadMaterialID: materialID,
		MaterialDownloadUserID:     userID,
	}
	if err := mc.DB.Create(&entry).Error; err != nil {
		log.Printf("[WARN] Gagal mencatat download materi %s: %v", materialID, err)
	}
}

/* ==========================
   GET /api/u/materials/:id/download
========================== */

func (mc *MaterialController) DownloadMaterial(c *fiber.Ctx) error {
	material, viewerID, err := mc.loadMaterialForViewer(c)
	if err != nil {
		return viewerErrorResponse(c, err)
	}

	absPath := helpers.AbsoluteUploadPath(material.MaterialFileURL)
	if _, err := os.Stat(absPath); err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "File materi tidak ditemukan di server")
	}

	mc.recordDownload(material.MaterialID, viewerID)
	return c.Download(absPath, material.MaterialFileName)
}

/* ==========================
   GET /api/u/materials/:id/preview — inline
========================== */

func (mc *MaterialController) PreviewMaterial(c *fiber.Ctx) error {
	material, viewerID, err := mc.loadMaterialForViewer(c)
	if err != nil {
		return viewerErrorResponse(c, err)
	}

	absPath := helpers.AbsoluteUploadPath(material.MaterialFileURL)
	if _, err := os.Stat(absPath); err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "File materi tidak ditemukan di server")
	}

	mc.recordDownload(material.MaterialID, viewerID)
	if material.MaterialFileMime != "" {
		c.Set(fiber.HeaderContentType, material.MaterialFileMime)
	}
	return c.SendFile(absPath)
}
