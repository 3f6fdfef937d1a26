package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eduarchive_backend/internals/configs"
	"eduarchive_backend/internals/constants"
	database "eduarchive_backend/internals/databases"
	channelModel "eduarchive_backend/internals/features/channels/channels/model"
	materialModel "eduarchive_backend/internals/features/channels/materials/model"
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

func newMaterialApp(db *gorm.DB, userID uuid.UUID, role string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		c.Locals("userRole", role)
		return c.Next()
	})
	ctrl := NewMaterialController(db)
	app.Post("/channels/:id/materials", ctrl.UploadMaterial)
	app.Get("/channels/:id/materials", ctrl.ListChannelMaterials)
	app.Put("/materials/:id", ctrl.UpdateMaterial)
	app.Get("/materials/:id/download", ctrl.DownloadMaterial)
	app.Get("/materials/:id/preview", ctrl.PreviewMaterial)

	adminCtrl := NewMaterialAdminController(db)
	app.Get("/admin/materials/pending", adminCtrl.ListPending)
	app.Put("/admin/materials/:id/approve", adminCtrl.Approve)
	app.Put("/admin/materials/:id/reject", adminCtrl.Reject)
	return app
}

func createApprovedChannel(t *testing.T, db *gorm.DB, ownerID uuid.UUID) *channelModel.ChannelModel {
	t.Helper()
	ch := channelModel.ChannelModel{
		ChannelOwnerUserID: ownerID,
		ChannelTitle:       "Bahasa Indonesia",
		ChannelSlug:        "bahasa-indonesia-" + uuid.NewString()[:8],
		ChannelAccessCode:  uuid.NewString()[:8],
		ChannelIsPublic:    true,
		ChannelStatus:      constants.StatusApproved,
	}
	require.NoError(t, db.Create(&ch).Error)
	return &ch
}

func uploadMaterial(t *testing.T, app *fiber.App, channelID uuid.UUID, title string) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("title", title))
	fw, err := w.CreateFormFile("file", "materi.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("isi materi pelajaran"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST",
		fmt.Sprintf("/channels/%s/materials", channelID), &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestUploadMaterialOwnerOnly(t *testing.T) {
	configs.UploadDir = t.TempDir()
	db := newTestDB(t)
	ownerID := uuid.New()
	ch := createApprovedChannel(t, db, ownerID)

	// Bukan owner -> forbidden
	otherApp := newMaterialApp(db, uuid.New(), constants.RoleTeacher)
	status, _ := uploadMaterial(t, otherApp, ch.ChannelID, "Bab 1")
	assert.Equal(t, fiber.StatusForbidden, status)

	ownerApp := newMaterialApp(db, ownerID, constants.RoleTeacher)
	status, body := uploadMaterial(t, ownerApp, ch.ChannelID, "Bab 1")
	require.Equal(t, fiber.StatusCreated, status)

	data := body["data"].(map[string]any)
	assert.Equal(t, constants.StatusPending, data["status"])
	assert.Equal(t, ownerID.String(), data["uploaded_by"])

	var material materialModel.MaterialModel
	require.NoError(t, db.First(&material, "material_channel_id = ?", ch.ChannelID).Error)
	assert.Equal(t, ch.ChannelOwnerUserID, material.MaterialUploadedBy)
	assert.NotZero(t, material.MaterialFileSize)
}

func TestMaterialVisibilityByStatus(t *testing.T) {
	configs.UploadDir = t.TempDir()
	db := newTestDB(t)
	ownerID := uuid.New()
	ch := createApprovedChannel(t, db, ownerID)

	ownerApp := newMaterialApp(db, ownerID, constants.RoleTeacher)
	status, _ := uploadMaterial(t, ownerApp, ch.ChannelID, "Bab 1")
	require.Equal(t, fiber.StatusCreated, status)

	// Student hanya melihat approved -> kosong
	studentApp := newMaterialApp(db, uuid.New(), constants.RoleStudent)
	status, body := getJSON(t, studentApp,
		fmt.Sprintf("/channels/%s/materials", ch.ChannelID))
	require.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, body["data"])

	// Owner melihat semua status
	status, body = getJSON(t, ownerApp,
		fmt.Sprintf("/channels/%s/materials", ch.ChannelID))
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"], 1)

	// Approve -> student ikut melihat
	var material materialModel.MaterialModel
	require.NoError(t, db.First(&material, "material_channel_id = ?", ch.ChannelID).Error)

	adminApp := newMaterialApp(db, uuid.New(), constants.RoleAdmin)
	req := httptest.NewRequest("PUT",
		fmt.Sprintf("/admin/materials/%s/approve", material.MaterialID), nil)
	resp, err := adminApp.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	status, body = getJSON(t, studentApp,
		fmt.Sprintf("/channels/%s/materials", ch.ChannelID))
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"], 1)
}

func TestDownloadRecordsAuditRow(t *testing.T) {
	configs.UploadDir = t.TempDir()
	db := newTestDB(t)
	ownerID := uuid.New()
	ch := createApprovedChannel(t, db, ownerID)

	ownerApp := newMaterialApp(db, ownerID, constants.RoleTeacher)
	status, _ := uploadMaterial(t, ownerApp, ch.ChannelID, "Bab 1")
	require.Equal(t, fiber.StatusCreated, status)

	var material materialModel.MaterialModel
	require.NoError(t, db.First(&material, "material_channel_id = ?", ch.ChannelID).Error)
	require.NoError(t, db.Model(&material).
		UpdateColumn("material_status", constants.StatusApproved).Error)

	studentID := uuid.New()
	studentApp := newMaterialApp(db, studentID, constants.RoleStudent)
	req := httptest.NewRequest("GET",
		fmt.Sprintf("/materials/%s/download", material.MaterialID), nil)
	resp, err := studentApp.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	content, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "isi materi pelajaran", string(content))

	var cnt int64
	require.NoError(t, db.Model(&materialModel.MaterialDownloadModel{}).
		Where("material_download_material_id = ? AND material_download_user_id = ?",
			material.MaterialID, studentID).
		Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)
}

func TestDownloadPendingMaterialHiddenFromStudent(t *testing.T) {
	configs.UploadDir = t.TempDir()
	db := newTestDB(t)
	ownerID := uuid.New()
	ch := createApprovedChannel(t, db, ownerID)

	ownerApp := newMaterialApp(db, ownerID, constants.RoleTeacher)
	status, _ := uploadMaterial(t, ownerApp, ch.ChannelID, "Bab 1")
	require.Equal(t, fiber.StatusCreated, status)

	var material materialModel.MaterialModel
	require.NoError(t, db.First(&material, "material_channel_id = ?", ch.ChannelID).Error)

	studentApp := newMaterialApp(db, uuid.New(), constants.RoleStudent)
	req := httptest.NewRequest("GET",
		fmt.Sprintf("/materials/%s/download", material.MaterialID), nil)
	resp, err := studentApp.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Preview ikut tersembunyi
	req = httptest.NewRequest("GET",
		fmt.Sprintf("/materials/%s/preview", material.MaterialID), nil)
	resp, err = studentApp.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// ID tak dikenal -> 404, bukan error server
	req = httptest.NewRequest("GET",
		fmt.Sprintf("/materials/%s/download", uuid.New()), nil)
	resp, err = studentApp.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRejectedMaterialStaysHidden(t *testing.T) {
	configs.UploadDir = t.TempDir()
	db := newTestDB(t)
	ownerID := uuid.New()
	ch := createApprovedChannel(t, db, ownerID)

	ownerApp := newMaterialApp(db, ownerID, constants.RoleTeacher)
	status, _ := uploadMaterial(t, ownerApp, ch.ChannelID, "Bab 2")
	require.Equal(t, fiber.StatusCreated, status)

	var material materialModel.MaterialModel
	require.NoError(t, db.First(&material, "material_channel_id = ?", ch.ChannelID).Error)

	adminApp := newMaterialApp(db, uuid.New(), constants.RoleAdmin)
	req := httptest.NewRequest("PUT",
		fmt.Sprintf("/admin/materials/%s/reject", material.MaterialID), nil)
	resp, err := adminApp.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Approve setelah rejected -> conflict (status terminal)
	req = httptest.NewRequest("PUT",
		fmt.Sprintf("/admin/materials/%s/approve", material.MaterialID), nil)
	resp, err = adminApp.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	studentApp := newMaterialApp(db, uuid.New(), constants.RoleStudent)
	status, body := getJSON(t, studentApp,
		fmt.Sprintf("/channels/%s/materials", ch.ChannelID))
	require.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, body["data"])
}
