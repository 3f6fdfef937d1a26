package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	materialController "eduarchive_backend/internals/features/channels/materials/controller"
)

// MaterialUserRoutes — upload, kelola, download materi. Base: /api/u
func MaterialUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := materialController.NewMaterialController(db)

	channels := router.Group("/channels")
	channels.Post("/:id/materials", ctrl.UploadMaterial)
	channels.Get("/:id/materials", ctrl.ListChannelMaterials)

	materials := router.Group("/materials")
	materials.Put("/:id", ctrl.UpdateMaterial)
	materials.Delete("/:id", ctrl.DeleteMaterial)
	materials.Get("/:id/download", ctrl.DownloadMaterial)
	materials.Get("/:id/preview", ctrl.PreviewMaterial)
}

// MaterialAdminRoutes — moderasi materi. Base: /api/a
func MaterialAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := materialController.NewMaterialAdminController(db)

	materials := router.Group("/materials")
	materials.Get("/pending", ctrl.ListPending)
	materials.Put("/:id/approve", ctrl.Approve)
	materials.Put("/:id/reject", ctrl.Reject)
}
