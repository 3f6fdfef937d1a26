package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportController "eduarchive_backend/internals/features/admin/reports/controller"
)

// ReportAdminRoutes — ringkasan & riwayat download. Base: /api/a
func ReportAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := reportController.NewReportController(db)

	reports := router.Group("/reports")
	reports.Get("/summary", ctrl.Summary)
	reports.Get("/downloads", ctrl.Downloads)
}
