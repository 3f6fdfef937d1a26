package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduarchive_backend/internals/constants"
	"eduarchive_backend/internals/features/users/teacher_verifications/dto"
	verifModel "eduarchive_backend/internals/features/users/teacher_verifications/model"
	userModel "eduarchive_backend/internals/features/users/user/model"
	helpers "eduarchive_backend/internals/helpers"
)

type TeacherVerificationController struct {
	DB *gorm.DB
}

func NewTeacherVerificationController(db *gorm.DB) *TeacherVerificationController {
	return &TeacherVerificationController{DB: db}
}

/* ==========================
   GET /api/a/teacher-verifications/pending
========================== */

func (tc *TeacherVerificationController) ListPending(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)

	q := tc.DB.Model(&verifModel.TeacherVerificationModel{}).
		Where("teacher_verification_status = ?", constants.StatusPending)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data verifikasi")
	}

	var rows []verifModel.TeacherVerificationModel
	if err := q.
		Order("teacher_verification_created_at ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data verifikasi")
	}

	// Lengkapi identitas pendaftar agar admin tidak perlu query terpisah
	out := make([]dto.TeacherVerificationResponse, 0, len(rows))
	for i := range rows {
		resp := dto.ToTeacherVerificationResponse(&rows[i])
		var user userModel.UserModel
		if err := tc.DB.Select("user_name", "email").
			First(&user, "id = ?", rows[i].TeacherVerificationUserID).Error; err == nil {
			resp.UserName = user.UserName
			resp.Email = user.Email
		}
		out = append(out, resp)
	}

	return helpers.JsonList(c, "Berhasil mengambil data verifikasi",
		out, helpers.BuildPagination(paging, total, len(out)))
}

/* ==========================
   PUT /api/a/teacher-verifications/:id/approve
   Flip pending -> approved + promosi role dalam satu transaksi.
========================== */

func (tc *TeacherVerificationController) Approve(c *fiber.Ctx) error {
	verifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID verifikasi tidak valid")
	}
	adminID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var verification verifModel.TeacherVerificationModel
	if err := tc.DB.First(&verification, "teacher_verification_id = ?", verifID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Data verifikasi tidak ditemukan")
	}

	now := time.Now().UTC()
	txErr := tc.DB.Transaction(func(tx *gorm.DB) error {
		// Conditional update: hanya yang masih pending yang boleh di-approve
		res := tx.Model(&verifModel.TeacherVerificationModel{}).
			Where("teacher_verification_id = ? AND teacher_verification_status = ?",
				verifID, constants.StatusPending).
			Updates(map[string]any{
				"teacher_verification_status":      constants.StatusApproved,
				"teacher_verification_reviewed_by": adminID,
				"teacher_verification_reviewed_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusConflict, "Verifikasi sudah direview")
		}

		return tx.Model(&userModel.UserModel{}).
			Where("id = ? AND role = ?", verification.TeacherVerificationUserID, constants.RoleTeacherPending).
			Update("role", constants.RoleTeacher).Error
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return helpers.JsonError(c, fe.Code, fe.Message)
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyetujui verifikasi")
	}

	return helpers.JsonUpdated(c, "Verifikasi teacher disetujui", fiber.Map{
		"id":      verifID,
		"user_id": verification.TeacherVerificationUserID,
		"status":  constants.StatusApproved,
	})
}

/* ==========================
   PUT /api/a/teacher-verifications/:id/reject — alasan wajib
========================== */

func (tc *TeacherVerificationController) Reject(c *fiber.Ctx) error {
	verifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID verifikasi tidak valid")
	}
	adminID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var req dto.RejectVerificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return helpers.JsonError(c, fiber.StatusUnprocessableEntity, "Alasan penolakan (reason) wajib diisi")
	}

	res := tc.DB.Model(&verifModel.TeacherVerificationModel{}).
		Where("teacher_verification_id = ? AND teacher_verification_status = ?",
			verifID, constants.StatusPending).
		Updates(map[string]any{
			"teacher_verification_status":      constants.StatusRejected,
			"teacher_verification_reason":      reason,
			"teacher_verification_reviewed_by": adminID,
			"teacher_verification_reviewed_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menolak verifikasi")
	}
	if res.RowsAffected == 0 {
		var exists int64
		tc.DB.Model(&verifModel.TeacherVerificationModel{}).
			Where("teacher_verification_id = ?", verifID).Count(&exists)
		if exists == 0 {
			return helpers.JsonError(c, fiber.StatusNotFound, "Data verifikasi tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusConflict, "Verifikasi sudah direview")
	}

	return helpers.JsonUpdated(c, "Verifikasi teacher ditolak", fiber.Map{
		"id":     verifID,
		"status": constants.StatusRejected,
		"reason": reason,
	})
}
