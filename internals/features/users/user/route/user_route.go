package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "eduarchive_backend/internals/features/users/user/controller"
)

// UserUserRoutes — profil user login. Base: /api/u
func UserUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	me := router.Group("/users/me")
	me.Get("/", ctrl.GetMe)
	me.Put("/", ctrl.UpdateMe)
	me.Post("/profile-image", ctrl.UploadProfileImage)
	me.Get("/warnings", ctrl.GetMyWarnings)
}

// UserAdminRoutes — manajemen user oleh admin. Base: /api/a
func UserAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserAdminController(db)

	users := router.Group("/users")
	users.Get("/", ctrl.ListUsers)
	users.Get("/:id", ctrl.GetUser)
	users.Delete("/:id", ctrl.DeleteUser)
	users.Post("/:id/warnings", ctrl.AddWarning)
	users.Get("/:id/warnings", ctrl.ListWarnings)
}
