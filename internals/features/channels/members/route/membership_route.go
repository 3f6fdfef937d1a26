package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	memberController "eduarchive_backend/internals/features/channels/members/controller"
)

// MembershipUserRoutes — join/leave channel. Base: /api/u
func MembershipUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := memberController.NewMembershipController(db)

	channels := router.Group("/channels")
	channels.Post("/join-by-code", ctrl.JoinByCode)
	channels.Post("/:id/join", ctrl.JoinPublic)
	channels.Post("/:id/leave", ctrl.Leave)
	channels.Get("/:id/members", ctrl.ListMembers)
}
