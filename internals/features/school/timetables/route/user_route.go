// file: internals/features/school/timetables/route/user_route.go
package route

import (
	timetableController "schoolku_backend/internals/features/school/timetables/controller"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
User routes: read-only (murid/guru lihat jadwal kelasnya)
*/
func TimetableUserRoutes(r fiber.Router, db *gorm.DB) {
	v := validator.New()

	ttCtl := timetableController.New(db, v)
	viewCtl := timetableController.NewView(db)

	tt := r.Group("/timetables")
	tt.Get("/structure/active", ttCtl.GetActive)            // GET /api/u/timetables/structure/active
	tt.Get("/sections/:section_id/view", viewCtl.ClassView) // GET /api/u/timetables/sections/:section_id/view
}
