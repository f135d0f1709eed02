// file: internals/features/school/academics/subjects/route/user_route.go
package route

import (
	subjectController "schoolku_backend/internals/features/school/academics/subjects/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SubjectUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := subjectController.New(db)
	r.Get("/subjects", ctl.List) // dropdown picker
}
