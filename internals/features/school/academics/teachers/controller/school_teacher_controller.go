// file: internals/features/school/academics/teachers/controller/school_teacher_controller.go
package controller

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"

	m "schoolku_backend/internals/features/school/academics/teachers/model"
)

// Directory guru read-only (dropdown assignment); data aslinya dikelola
// layanan kepegawaian di luar subsistem ini.
type SchoolTeacherController struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *SchoolTeacherController { return &SchoolTeacherController{DB: db} }

func (ctl *SchoolTeacherController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []m.SchoolTeacherModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("school_teacher_school_id = ? AND school_teacher_is_active = TRUE", schoolID).
		Order("school_teacher_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", rows)
}
