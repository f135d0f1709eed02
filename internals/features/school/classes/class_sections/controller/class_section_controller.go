// file: internals/features/school/classes/class_sections/controller/class_section_controller.go
package controller

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"

	m "schoolku_backend/internals/features/school/classes/class_sections/model"
)

type ClassSectionController struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *ClassSectionController { return &ClassSectionController{DB: db} }

func (ctl *ClassSectionController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []m.ClassSectionModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_section_school_id = ? AND class_section_is_active = TRUE", schoolID).
		Order("class_section_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", rows)
}
