// file: internals/features/school/timetables/controller/view_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"

	svc "schoolku_backend/internals/features/school/timetables/service"
)

type ViewController struct {
	DB *gorm.DB
}

func NewView(db *gorm.DB) *ViewController { return &ViewController{DB: db} }

// ClassView merender grid penuh satu kelas (read-only): slot terurut ×
// hari aktif, nama mapel & label guru sudah di-resolve.
func (ctl *ViewController) ClassView(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	sectionID, err := parseUUIDParam(c, "section_id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "section_id tidak valid")
	}
	userID, _ := helperAuth.GetUserIDFromToken(c)

	store := svc.NewGormStore(ctl.DB)
	view, err := svc.BuildClassView(c.UserContext(), store, store,
		svc.TenantScope{SchoolID: schoolID, UserID: userID}, sectionID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "", view)
}
