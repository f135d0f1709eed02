// file: internals/features/school/timetables/route/admin_route.go
package route

import (
	timetableController "schoolku_backend/internals/features/school/timetables/controller"
	middlewares "schoolku_backend/internals/middlewares"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Admin routes: bangun & simpan struktur + isi grid
Mount contoh: TimetableAdminRoutes(app.Group("/api/a/:school_id"), db)
*/
func TimetableAdminRoutes(r fiber.Router, db *gorm.DB) {
	v := validator.New()

	ttCtl := timetableController.New(db, v)
	tt := r.Group("/timetables")
	// replace-on-save itu operasi berat; kasih limiter khusus
	tt.Post("/structure", middlewares.StructureSaveRateLimiter(), ttCtl.SaveStructure)
	tt.Post("/structure/preview", ttCtl.Preview)      // POST /api/a/:school_id/timetables/structure/preview
	tt.Get("/structure/active", ttCtl.GetActive)      // GET  /api/a/:school_id/timetables/structure/active

	entryCtl := timetableController.NewEntry(db, v)
	grid := tt.Group("/:timetable_id/sections/:section_id")
	grid.Get("/entries", entryCtl.ListEntries) // GET /api/a/:school_id/timetables/:timetable_id/sections/:section_id/entries
	grid.Put("/entries", entryCtl.Assign)      // PUT (upsert satu sel)
}
