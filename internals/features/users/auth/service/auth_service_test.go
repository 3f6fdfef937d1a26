package service

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eduarchive_backend/internals/configs"
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

func newAuthApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	app.Post("/register", func(c *fiber.Ctx) error { return Register(db, c) })
	app.Post("/register-teacher", func(c *fiber.Ctx) error { return RegisterTeacher(db, c) })
	app.Post("/login", func(c *fiber.Ctx) error { return Login(db, c) })
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func setJWTEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "test-refresh-secret")
}

func TestRegisterAndLogin(t *testing.T) {
	setJWTEnv(t)
	db := newTestDB(t)
	app := newAuthApp(db)

	status, body := postJSON(t, app, "/register", fiber.Map{
		"user_name":  "siswa01",
		"first_name": "Siswa",
		"email":      "siswa01@sekolah.id",
		"password":   "rahasia123",
	})
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, true, body["success"])

	var user userModel.UserModel
	require.NoError(t, db.First(&user, "email = ?", "siswa01@sekolah.id").Error)
	assert.Equal(t, constants.RoleStudent, user.Role)
	assert.NotEqual(t, "rahasia123", user.Password) // tersimpan sebagai hash

	// Login pakai email
	status, body = postJSON(t, app, "/login", fiber.Map{
		"identifier": "siswa01@sekolah.id",
		"password":   "rahasia123",
	})
	require.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.NotEmpty(t, data["access_token"])

	// Login pakai username
	status, _ = postJSON(t, app, "/login", fiber.Map{
		"identifier": "siswa01",
		"password":   "rahasia123",
	})
	assert.Equal(t, fiber.StatusOK, status)
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	setJWTEnv(t)
	db := newTestDB(t)
	app := newAuthApp(db)

	payload := fiber.Map{
		"user_name":  "siswa02",
		"first_name": "Siswa",
		"email":      "siswa02@sekolah.id",
		"password":   "rahasia123",
	}
	status, _ := postJSON(t, app, "/register", payload)
	require.Equal(t, fiber.StatusCreated, status)

	payload["user_name"] = "siswa02b"
	status, body := postJSON(t, app, "/register", payload)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, false, body["success"])
}

func TestLoginWrongPassword(t *testing.T) {
	setJWTEnv(t)
	db := newTestDB(t)
	app := newAuthApp(db)

	status, _ := postJSON(t, app, "/register", fiber.Map{
		"user_name":  "siswa03",
		"first_name": "Siswa",
		"email":      "siswa03@sekolah.id",
		"password":   "rahasia123",
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, _ = postJSON(t, app, "/login", fiber.Map{
		"identifier": "siswa03@sekolah.id",
		"password":   "salahtotal",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestLoginSoftDeletedReturnsStoredReason(t *testing.T) {
	setJWTEnv(t)
	db := newTestDB(t)
	app := newAuthApp(db)

	status, _ := postJSON(t, app, "/register", fiber.Map{
		"user_name":  "siswa04",
		"first_name": "Siswa",
		"email":      "siswa04@sekolah.id",
		"password":   "rahasia123",
	})
	require.Equal(t, fiber.StatusCreated, status)

	var user userModel.UserModel
	require.NoError(t, db.First(&user, "email = ?", "siswa04@sekolah.id").Error)

	reason := "Melanggar aturan komunitas"
	require.NoError(t, db.Model(&user).Update("deleted_reason", reason).Error)
	require.NoError(t, db.Delete(&user).Error)

	status, body := postJSON(t, app, "/login", fiber.Map{
		"identifier": "siswa04@sekolah.id",
		"password":   "rahasia123",
	})
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, reason, body["message"])
}

func TestLoginInactiveAccountForbidden(t *testing.T) {
	setJWTEnv(t)
	db := newTestDB(t)
	app := newAuthApp(db)

	status, _ := postJSON(t, app, "/register", fiber.Map{
		"user_name":  "siswa05",
		"first_name": "Siswa",
		"email":      "siswa05@sekolah.id",
		"password":   "rahasia123",
	})
	require.Equal(t, fiber.StatusCreated, status)

	require.NoError(t, db.Model(&userModel.UserModel{}).
		Where("email = ?", "siswa05@sekolah.id").
		UpdateColumn("is_active", false).Error)

	status, _ = postJSON(t, app, "/login", fiber.Map{
		"identifier": "siswa05@sekolah.id",
		"password":   "rahasia123",
	})
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestLoginStoresHashedRefreshToken(t *testing.T) {
	setJWTEnv(t)
	db := newTestDB(t)
	app := newAuthApp(db)

	status, _ := postJSON(t, app, "/register", fiber.Map{
		"user_name":  "siswa06",
		"first_name": "Siswa",
		"email":      "siswa06@sekolah.id",
		"password":   "rahasia123",
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, _ = postJSON(t, app, "/login", fiber.Map{
		"identifier": "siswa06@sekolah.id",
		"password":   "rahasia123",
	})
	require.Equal(t, fiber.StatusOK, status)

	var cnt int64
	require.NoError(t, db.Table("refresh_tokens").Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)
}

func postRegisterTeacher(t *testing.T, app *fiber.App, fields map[string]string) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	fw, err := w.CreateFormFile("proof_document", "sk-mengajar.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("%PDF-1.4 bukti mengajar"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/register-teacher", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestRegisterTeacherCreatesPendingVerification(t *testing.T) {
	setJWTEnv(t)
	configs.UploadDir = t.TempDir()
	db := newTestDB(t)
	app := newAuthApp(db)

	status, body := postRegisterTeacher(t, app, map[string]string{
		"user_name":  "guru01",
		"first_name": "Guru",
		"email":      "guru01@sekolah.id",
		"password":   "rahasia123",
		"school":     "SMA 1",
	})
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, true, body["success"])

	var user userModel.UserModel
	require.NoError(t, db.First(&user, "email = ?", "guru01@sekolah.id").Error)
	assert.Equal(t, constants.RoleTeacherPending, user.Role)

	var verification verifModel.TeacherVerificationModel
	require.NoError(t, db.First(&verification,
		"teacher_verification_user_id = ?", user.ID).Error)
	assert.Equal(t, constants.StatusPending, verification.TeacherVerificationStatus)
	assert.NotEmpty(t, verification.TeacherVerificationProofURL)
}

func TestRegisterTeacherRollsBackUserOnVerificationFailure(t *testing.T) {
	setJWTEnv(t)
	configs.UploadDir = t.TempDir()
	db := newTestDB(t)
	app := newAuthApp(db)

	// Insert verifikasi dipaksa gagal: user + verifikasi harus satu transaksi
	require.NoError(t, db.Migrator().DropTable(&verifModel.TeacherVerificationModel{}))

	status, _ := postRegisterTeacher(t, app, map[string]string{
		"user_name":  "guru02",
		"first_name": "Guru",
		"email":      "guru02@sekolah.id",
		"password":   "rahasia123",
	})
	require.Equal(t, fiber.StatusInternalServerError, status)

	var cnt int64
	require.NoError(t, db.Model(&userModel.UserModel{}).
		Where("email = ?", "guru02@sekolah.id").Count(&cnt).Error)
	assert.EqualValues(t, 0, cnt)
}
