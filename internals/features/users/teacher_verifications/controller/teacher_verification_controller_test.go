package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eduarchive_backend/internals/constants"
	database "eduarchive_backend/internals/databases"
	verifModel "eduarchive_backend/internals/features/users/teacher_verifications/model"
	userModel "eduarchive_backend/internals/features/users/user/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.MigrateAll(db))
	return db
}

func newAdminApp(db *gorm.DB, adminID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", adminID)
		c.Locals("userRole", constants.RoleAdmin)
		return c.Next()
	})
	ctrl := NewTeacherVerificationController(db)
	app.Get("/teacher-verifications/pending", ctrl.ListPending)
	app.Put("/teacher-verifications/:id/approve", ctrl.Approve)
	app.Put("/teacher-verifications/:id/reject", ctrl.Reject)
	return app
}

func createPendingTeacher(t *testing.T, db *gorm.DB) (*userModel.UserModel, *verifModel.TeacherVerificationModel) {
	t.Helper()
	user := userModel.UserModel{
		UserName:  "guru_" + uuid.NewString()[:8],
		FirstName: "Guru",
		Email:     uuid.NewString()[:8] + "@sekolah.id",
		Password:  "x-hash-x",
		Role:      constants.RoleTeacherPending,
		IsActive:  true,
	}
	require.NoError(t, db.Create(&user).Error)

	verification := verifModel.TeacherVerificationModel{
		TeacherVerificationUserID:   user.ID,
		TeacherVerificationProofURL: "teacher_proofs/bukti.pdf",
		TeacherVerificationStatus:   constants.StatusPending,
	}
	require.NoError(t, db.Create(&verification).Error)
	return &user, &verification
}

func putJSON(t *testing.T, app *fiber.App, path string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest("PUT", path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestApprovePromotesRole(t *testing.T) {
	db := newTestDB(t)
	adminID := uuid.New()
	user, verification := createPendingTeacher(t, db)

	app := newAdminApp(db, adminID)
	status, _ := putJSON(t, app,
		fmt.Sprintf("/teacher-verifications/%s/approve", verification.TeacherVerificationID), nil)
	assert.Equal(t, fiber.StatusOK, status)

	var updated userModel.UserModel
	require.NoError(t, db.First(&updated, "id = ?", user.ID).Error)
	assert.Equal(t, constants.RoleTeacher, updated.Role)

	var v verifModel.TeacherVerificationModel
	require.NoError(t, db.First(&v,
		"teacher_verification_id = ?", verification.TeacherVerificationID).Error)
	assert.Equal(t, constants.StatusApproved, v.TeacherVerificationStatus)
	require.NotNil(t, v.TeacherVerificationReviewedBy)
	assert.Equal(t, adminID, *v.TeacherVerificationReviewedBy)
}

func TestApproveNonPendingFailsRoleUnchanged(t *testing.T) {
	db := newTestDB(t)
	user, verification := createPendingTeacher(t, db)

	// Sudah rejected sebelumnya
	require.NoError(t, db.Model(verification).
		UpdateColumn("teacher_verification_status", constants.StatusRejected).Error)

	app := newAdminApp(db, uuid.New())
	status, _ := putJSON(t, app,
		fmt.Sprintf("/teacher-verifications/%s/approve", verification.TeacherVerificationID), nil)
	assert.Equal(t, fiber.StatusConflict, status)

	var updated userModel.UserModel
	require.NoError(t, db.First(&updated, "id = ?", user.ID).Error)
	assert.Equal(t, constants.RoleTeacherPending, updated.Role)
}

func TestRejectRequiresReason(t *testing.T) {
	db := newTestDB(t)
	_, verification := createPendingTeacher(t, db)

	app := newAdminApp(db, uuid.New())
	status, _ := putJSON(t, app,
		fmt.Sprintf("/teacher-verifications/%s/reject", verification.TeacherVerificationID),
		fiber.Map{"reason": "   "})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	var v verifModel.TeacherVerificationModel
	require.NoError(t, db.First(&v,
		"teacher_verification_id = ?", verification.TeacherVerificationID).Error)
	assert.Equal(t, constants.StatusPending, v.TeacherVerificationStatus)
}

func TestRejectStoresReason(t *testing.T) {
	db := newTestDB(t)
	user, verification := createPendingTeacher(t, db)

	app := newAdminApp(db, uuid.New())
	status, _ := putJSON(t, app,
		fmt.Sprintf("/teacher-verifications/%s/reject", verification.TeacherVerificationID),
		fiber.Map{"reason": "Bukti mengajar tidak terbaca"})
	assert.Equal(t, fiber.StatusOK, status)

	var v verifModel.TeacherVerificationModel
	require.NoError(t, db.First(&v,
		"teacher_verification_id = ?", verification.TeacherVerificationID).Error)
	assert.Equal(t, constants.StatusRejected, v.TeacherVerificationStatus)
	require.NotNil(t, v.TeacherVerificationReason)
	assert.Equal(t, "Bukti mengajar tidak terbaca", *v.TeacherVerificationReason)

	// Role tidak berubah
	var updated userModel.UserModel
	require.NoError(t, db.First(&updated, "id = ?", user.ID).Error)
	assert.Equal(t, constants.RoleTeacherPending, updated.Role)
}
