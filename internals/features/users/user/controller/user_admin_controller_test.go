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

func newAdminUserApp(db *gorm.DB, adminID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", adminID)
		c.Locals("userRole", constants.RoleAdmin)
		return c.Next()
	})
	ctrl := NewUserAdminController(db)
	app.Get("/users", ctrl.ListUsers)
	app.Delete("/users/:id", ctrl.DeleteUser)
	app.Post("/users/:id/warnings", ctrl.AddWarning)
	app.Get("/users/:id/warnings", ctrl.ListWarnings)
	return app
}

func createUser(t *testing.T, db *gorm.DB, role string) *userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		UserName:  "user_" + uuid.NewString()[:8],
		FirstName: "Test",
		Email:     uuid.NewString()[:8] + "@sekolah.id",
		Password:  "x-hash-x",
		Role:      role,
		IsActive:  true,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func sendJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestDeleteUserRequiresReason(t *testing.T) {
	db := newTestDB(t)
	app := newAdminUserApp(db, uuid.New())
	target := createUser(t, db, constants.RoleStudent)

	// Tanpa reason -> 422, user tidak terhapus
	status, _ := sendJSON(t, app, "DELETE",
		fmt.Sprintf("/users/%s", target.ID), fiber.Map{"reason": ""})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	var cnt int64
	require.NoError(t, db.Model(&userModel.UserModel{}).
		Where("id = ?", target.ID).Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)
}

func TestDeleteUserStoresReason(t *testing.T) {
	db := newTestDB(t)
	app := newAdminUserApp(db, uuid.New())
	target := createUser(t, db, constants.RoleStudent)

	reason := "Spam berulang kali"
	status, _ := sendJSON(t, app, "DELETE",
		fmt.Sprintf("/users/%s", target.ID), fiber.Map{"reason": reason})
	assert.Equal(t, fiber.StatusOK, status)

	// Soft delete + alasan tersimpan
	var cnt int64
	require.NoError(t, db.Model(&userModel.UserModel{}).
		Where("id = ?", target.ID).Count(&cnt).Error)
	assert.EqualValues(t, 0, cnt)

	var deleted userModel.UserModel
	require.NoError(t, db.Unscoped().First(&deleted, "id = ?", target.ID).Error)
	require.NotNil(t, deleted.DeletedReason)
	assert.Equal(t, reason, *deleted.DeletedReason)
}

func TestDeleteAdminForbidden(t *testing.T) {
	db := newTestDB(t)
	app := newAdminUserApp(db, uuid.New())
	target := createUser(t, db, constants.RoleAdmin)

	status, _ := sendJSON(t, app, "DELETE",
		fmt.Sprintf("/users/%s", target.ID), fiber.Map{"reason": "coba hapus admin"})
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestWarningsAppendAndList(t *testing.T) {
	db := newTestDB(t)
	app := newAdminUserApp(db, uuid.New())
	target := createUser(t, db, constants.RoleStudent)

	for _, msg := range []string{"Peringatan pertama", "Peringatan kedua"} {
		status, _ := sendJSON(t, app, "POST",
			fmt.Sprintf("/users/%s/warnings", target.ID), fiber.Map{"message": msg})
		require.Equal(t, fiber.StatusCreated, status)
	}

	// Pesan kosong ditolak
	status, _ := sendJSON(t, app, "POST",
		fmt.Sprintf("/users/%s/warnings", target.ID), fiber.Map{"message": "  "})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	status, body := sendJSON(t, app, "GET",
		fmt.Sprintf("/users/%s/warnings", target.ID), nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"], 2)
}

func TestListUsersFilterByRole(t *testing.T) {
	db := newTestDB(t)
	app := newAdminUserApp(db, uuid.New())

	createUser(t, db, constants.RoleStudent)
	createUser(t, db, constants.RoleStudent)
	createUser(t, db, constants.RoleTeacher)

	status, body := sendJSON(t, app, "GET", "/users?role=teacher", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"], 1)

	status, body = sendJSON(t, app, "GET", "/users?role=student", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"], 2)
}
