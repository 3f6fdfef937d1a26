package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	requestController "eduarchive_backend/internals/features/channels/access_requests/controller"
)

// AccessRequestUserRoutes — permintaan akses channel private. Base: /api/u
func AccessRequestUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := requestController.NewAccessRequestController(db)

	channels := router.Group("/channels")
	channels.Post("/:id/access-requests", ctrl.CreateRequest)
	channels.Get("/:id/access-requests", ctrl.ListPending)

	requests := router.Group("/access-requests")
	requests.Put("/:id/approve", ctrl.Approve)
	requests.Put("/:id/reject", ctrl.Reject)
}
