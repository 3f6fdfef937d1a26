package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "eduarchive_backend/internals/features/users/auth/service"
	rateLimiter "eduarchive_backend/internals/middlewares"
)

// AuthRoutes memasang semua endpoint autentikasi.
// Base: /api/auth
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	auth := app.Group("/api/auth")

	// 🔓 Public
	auth.Post("/register", rateLimiter.RegisterRateLimiter(), func(c *fiber.Ctx) error {
		return authService.Register(db, c)
	})
	auth.Post("/register-teacher", rateLimiter.RegisterRateLimiter(), func(c *fiber.Ctx) error {
		return authService.RegisterTeacher(db, c)
	})
	auth.Post("/login", rateLimiter.LoginRateLimiter(), func(c *fiber.Ctx) error {
		return authService.Login(db, c)
	})
	auth.Post("/refresh-token", func(c *fiber.Ctx) error {
		return authService.RefreshToken(db, c)
	})
	auth.Post("/logout", func(c *fiber.Ctx) error {
		return authService.Logout(db, c)
	})
}

// AuthProtectedRoutes memasang endpoint auth yang butuh login.
// Di-mount di group /api/u (sudah lewat AuthMiddleware).
func AuthProtectedRoutes(router fiber.Router, db *gorm.DB) {
	router.Put("/change-password", func(c *fiber.Ctx) error {
		return authService.ChangePassword(db, c)
	})
}
