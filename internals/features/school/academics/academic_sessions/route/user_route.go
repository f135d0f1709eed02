// file: internals/features/school/academics/academic_sessions/route/user_route.go
package route

import (
	sessionController "schoolku_backend/internals/features/school/academics/academic_sessions/controller"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AcademicSessionUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := sessionController.New(db, validator.New())

	s := r.Group("/academic-sessions")
	s.Get("/active", ctl.GetActive) // GET /api/u/academic-sessions/active
}
