package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduarchive_backend/internals/constants"
	reportRoute "eduarchive_backend/internals/features/admin/reports/route"
	accessRequestRoute "eduarchive_backend/internals/features/channels/access_requests/route"
	channelRoute "eduarchive_backend/internals/features/channels/channels/route"
	memberRoute "eduarchive_backend/internals/features/channels/members/route"
	materialRoute "eduarchive_backend/internals/features/channels/materials/route"
	authRoute "eduarchive_backend/internals/features/users/auth/route"
	verifRoute "eduarchive_backend/internals/features/users/teacher_verifications/route"
	userRoute "eduarchive_backend/internals/features/users/user/route"
	authMiddleware "eduarchive_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → JWT opsional (owner/admin tetap dikenali untuk channel pending)
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public", authMiddleware.OptionalAuthMiddleware(db))

	// PRIVATE (user login)
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	// ADMIN
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("admin"), constants.RoleAdmin),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting User routes...")
	authRoute.AuthProtectedRoutes(private, db)
	userRoute.UserUserRoutes(private, db)
	userRoute.UserAdminRoutes(admin, db)
	verifRoute.TeacherVerificationAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Channel routes...")
	channelRoute.ChannelPublicRoutes(public, db)
	channelRoute.ChannelUserRoutes(private, db)
	channelRoute.ChannelAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Membership routes...")
	memberRoute.MembershipUserRoutes(private, db)
	accessRequestRoute.AccessRequestUserRoutes(private, db)

	log.Println("[INFO] Mounting Material routes...")
	materialRoute.MaterialUserRoutes(private, db)
	materialRoute.MaterialAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Report routes...")
	reportRoute.ReportAdminRoutes(admin, db)
}
