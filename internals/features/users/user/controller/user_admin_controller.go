package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduarchive_backend/internals/constants"
	"eduarchive_backend/internals/features/users/user/dto"
	userModel "eduarchive_backend/internals/features/users/user/model"
	helpers "eduarchive_backend/internals/helpers"
)

type UserAdminController struct {
	DB *gorm.DB
}

func NewUserAdminController(db *gorm.DB) *UserAdminController {
	return &UserAdminController{DB: db}
}

/* ==========================
   GET /api/a/users — filter role/search/active + pagination
========================== */

func (ac *UserAdminController) ListUsers(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)

	q := ac.DB.Model(&userModel.UserModel{})

	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("role = ?", role)
	}
	if active := strings.TrimSpace(c.Query("active")); active != "" {
		q = q.Where("is_active = ?", active == "true")
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"lower(user_name) LIKE ? OR lower(email) LIKE ? OR lower(first_name) LIKE ? OR lower(last_name) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data user")
	}

	var users []userModel.UserModel
	if err := q.
		Order("created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&users).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	return helpers.JsonList(c, "Berhasil mengambil data user",
		dto.ToUserResponses(users),
		helpers.BuildPagination(paging, total, len(users)))
}

/* ==========================
   GET /api/a/users/:id
========================== */

func (ac *UserAdminController) GetUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helpers.JsonOK(c, "Berhasil mengambil data user", dto.ToUserResponse(&user))
}

/* ==========================
   DELETE /api/a/users/:id — soft delete, alasan wajib
========================== */

func (ac *UserAdminController) DeleteUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	var req dto.DeleteUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return helpers.JsonError(c, fiber.StatusUnprocessableEntity, "Alasan penghapusan (reason) wajib diisi")
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if user.Role == constants.RoleAdmin {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun admin tidak dapat dihapus")
	}

	// Simpan alasan dulu, baru soft delete — alasan ini yang tampil saat user
	// mencoba login kembali
	txErr := ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Update("deleted_reason", reason).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if txErr != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus user")
	}

	return helpers.JsonDeleted(c, "User berhasil dihapus", fiber.Map{
		"id":     user.ID,
		"reason": reason,
	})
}

/* ==========================
   POST /api/a/users/:id/warnings
========================== */

func (ac *UserAdminController) AddWarning(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	var req dto.AddWarningRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return helpers.JsonError(c, fiber.StatusUnprocessableEntity, "Pesan peringatan (message) wajib diisi")
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	warning := userModel.UserWarningModel{
		UserWarningUserID:  user.ID,
		UserWarningMessage: message,
	}
	if err := ac.DB.Create(&warning).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menambahkan peringatan")
	}

	return helpers.JsonCreated(c, "Peringatan berhasil ditambahkan", dto.ToWarningResponse(&warning))
}

/* ==========================
   GET /api/a/users/:id/warnings
========================== */

func (ac *UserAdminController) ListWarnings(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	var warnings []userModel.UserWarningModel
	if err := ac.DB.
		Where("user_warning_user_id = ?", userID).
		Order("user_warning_created_at DESC").
		Find(&warnings).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data peringatan")
	}

	out := make([]dto.WarningResponse, 0, len(warnings))
	for i := range warnings {
		out = append(out, dto.ToWarningResponse(&warnings[i]))
	}
	return helpers.JsonOK(c, "Berhasil mengambil data peringatan", out)
}
