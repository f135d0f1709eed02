// file: internals/features/school/academics/teachers/route/user_route.go
package route

import (
	teacherController "schoolku_backend/internals/features/school/academics/teachers/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SchoolTeacherUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := teacherController.New(db)
	r.Get("/teachers", ctl.List) // dropdown picker
}
