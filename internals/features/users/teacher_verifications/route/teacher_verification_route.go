package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	verifController "eduarchive_backend/internals/features/users/teacher_verifications/controller"
)

// TeacherVerificationAdminRoutes — review bukti mengajar. Base: /api/a
func TeacherVerificationAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := verifController.NewTeacherVerificationController(db)

	verifications := router.Group("/teacher-verifications")
	verifications.Get("/pending", ctrl.ListPending)
	verifications.Put("/:id/approve", ctrl.Approve)
	verifications.Put("/:id/reject", ctrl.Reject)
}
