package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	channelController "eduarchive_backend/internals/features/channels/channels/controller"
)

// ChannelUserRoutes — kelola channel milik sendiri. Base: /api/u
func ChannelUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := channelController.NewChannelController(db)

	channels := router.Group("/channels")
	channels.Post("/", ctrl.CreateChannel)
	channels.Get("/mine", ctrl.GetMyChannels)
	channels.Put("/:id", ctrl.UpdateChannel)
	channels.Delete("/:id", ctrl.DeleteChannel)
}

// ChannelPublicRoutes — katalog channel approved. Base: /api/public
func ChannelPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := channelController.NewChannelPublicController(db)

	channels := router.Group("/channels")
	channels.Get("/", ctrl.ListChannels)
	channels.Get("/:slug", ctrl.GetChannelBySlug)
}

// ChannelAdminRoutes — moderasi channel. Base: /api/a
func ChannelAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := channelController.NewChannelAdminController(db)

	channels := router.Group("/channels")
	channels.Get("/pending", ctrl.ListPending)
	channels.Put("/:id/approve", ctrl.Approve)
	channels.Put("/:id/reject", ctrl.Reject)
}
