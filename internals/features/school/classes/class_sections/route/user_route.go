// file: internals/features/school/classes/class_sections/route/user_route.go
package route

import (
	sectionController "schoolku_backend/internals/features/school/classes/class_sections/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ClassSectionUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := sectionController.New(db)
	r.Get("/class-sections", ctl.List) // picker kelas
}
