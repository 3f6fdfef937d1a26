package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduarchive_backend/internals/constants"
	"eduarchive_backend/internals/features/users/user/dto"
	userModel "eduarchive_backend/internals/features/users/user/model"
	helpers "eduarchive_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

/* ==========================
   GET /api/u/users/me
========================== */

func (uc *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var user userModel.UserModel
	if err := uc.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helpers.JsonOK(c, "Berhasil mengambil profil", dto.ToUserResponse(&user))
}

/* ==========================
   PUT /api/u/users/me
========================== */

func (uc *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var user userModel.UserModel
	if err := uc.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	updates := map[string]any{}
	if req.FirstName != nil {
		if *req.FirstName == "" {
			return helpers.JsonError(c, fiber.StatusUnprocessableEntity, "first_name tidak boleh kosong")
		}
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.School != nil {
		updates["school"] = *req.School
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.BirthDate != nil {
		updates["birth_date"] = *req.BirthDate
	}
	if len(updates) == 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := uc.DB.Model(&user).Updates(updates).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui profil")
	}

	if err := uc.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat profil")
	}
	return helpers.JsonUpdated(c, "Profil berhasil diperbarui", dto.ToUserResponse(&user))
}

/* ==========================
   POST /api/u/users/me/profile-image — multipart, dikonversi ke WebP
========================== */

func (uc *UserController) UploadProfileImage(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnprocessableEntity, "File gambar (image) wajib diupload")
	}

	saved, err := helpers.SaveProfileImage(constants.UploadDirProfileImages, fileHeader, constants.MaxProfileImageSize)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := uc.DB.Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Update("profile_image_url", saved.RelativePath).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan foto profil")
	}

	return helpers.JsonUpdated(c, "Foto profil berhasil diperbarui", fiber.Map{
		"profile_image_url": saved.RelativePath,
	})
}

/* ==========================
   GET /api/u/users/me/warnings — peringatan untuk user login
========================== */

func (uc *UserController) GetMyWarnings(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var warnings []userModel.UserWarningModel
	if err := uc.DB.
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
