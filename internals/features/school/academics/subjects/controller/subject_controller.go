// file: internals/features/school/academics/subjects/controller/subject_controller.go
package controller

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"

	m "schoolku_backend/internals/features/school/academics/subjects/model"
)

// Directory mapel bersifat read-only dari sisi subsistem timetable;
// CRUD-nya milik layanan lain. Di sini cuma list untuk dropdown.
type SubjectController struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *SubjectController { return &SubjectController{DB: db} }

func (ctl *SubjectController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []m.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("subject_school_id = ? AND subject_is_active = TRUE", schoolID).
		Order("subject_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", rows)
}
