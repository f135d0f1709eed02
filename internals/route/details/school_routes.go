// internals/route/details/school_routes.go
package details

import (
	AcademicSessionRoutes "schoolku_backend/internals/features/school/academics/academic_sessions/route"
	SubjectRoutes "schoolku_backend/internals/features/school/academics/subjects/route"
	TeacherRoutes "schoolku_backend/internals/features/school/academics/teachers/route"
	ClassSectionRoutes "schoolku_backend/internals/features/school/classes/class_sections/route"
	TimetableRoutes "schoolku_backend/internals/features/school/timetables/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* ===================== USER (PRIVATE) ===================== */
// Endpoint yang butuh login user biasa (token user)
func SchoolUserRoutes(r fiber.Router, db *gorm.DB) {
	TimetableRoutes.TimetableUserRoutes(r, db)
	AcademicSessionRoutes.AcademicSessionUserRoutes(r, db)
	SubjectRoutes.SubjectUserRoutes(r, db)
	TeacherRoutes.SchoolTeacherUserRoutes(r, db)
	ClassSectionRoutes.ClassSectionUserRoutes(r, db)
}

/* ===================== ADMIN (per school) ===================== */
func SchoolAdminRoutes(r fiber.Router, db *gorm.DB) {
	TimetableRoutes.TimetableAdminRoutes(r, db)
	AcademicSessionRoutes.AcademicSessionAdminRoutes(r, db)
}
