// file: internals/features/school/academics/academic_sessions/route/admin_route.go
package route

import (
	sessionController "schoolku_backend/internals/features/school/academics/academic_sessions/controller"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AcademicSessionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := sessionController.New(db, validator.New())

	s := r.Group("/academic-sessions")
	s.Post("/", ctl.Create)              // POST  /api/a/:school_id/academic-sessions
	s.Get("/", ctl.List)                 // GET   /api/a/:school_id/academic-sessions
	s.Patch("/:id", ctl.Patch)           // PATCH /api/a/:school_id/academic-sessions/:id
	s.Post("/:id/activate", ctl.Activate) // satu aktif per school
}
