// file: internals/features/school/timetables/controller/entry_controller.go
package controller

import (
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"

	d "schoolku_backend/internals/features/school/timetables/dto"
	svc "schoolku_backend/internals/features/school/timetables/service"
)

type EntryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEntry(db *gorm.DB, v *validator.Validate) *EntryController {
	return &EntryController{DB: db, Validate: v}
}

func (ctl *EntryController) grid(c *fiber.Ctx) (*svc.Grid, error) {
	schoolID, err := helperAuth.ResolveSchoolID(c)
	if err != nil {
		return nil, err
	}
	timetableID, err := parseUUIDParam(c, "timetable_id")
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "timetable_id tidak valid")
	}
	sectionID, err := parseUUIDParam(c, "section_id")
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "section_id tidak valid")
	}
	userID, _ := helperAuth.GetUserIDFromToken(c)

	g := svc.NewGrid(svc.NewGormStore(ctl.DB),
		svc.TenantScope{SchoolID: schoolID, UserID: userID},
		timetableID, sectionID)
	if err := g.Load(c.UserContext()); err != nil {
		return nil, err
	}
	return g, nil
}

/*
========================= List entries =========================
*/

// ListEntries memuat seluruh sel grid satu kelas sekali jalan
// (dipanggil saat admin memilih kelas).
func (ctl *EntryController) ListEntries(c *fiber.Ctx) error {
	g, err := ctl.grid(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return fe
		}
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "", d.FromCells(g.Cells()))
}

/*
========================= Assign =========================
*/

// Assign meng-upsert satu sel (subject dan/atau teacher). Tiap edit sel
// adalah satu round trip sendiri; tidak ada batching.
func (ctl *EntryController) Assign(c *fiber.Ctx) error {
	// --- guard
	if !(helperAuth.IsSchoolAdmin(c) || helperAuth.IsTeacher(c)) {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak")
	}

	var req d.AssignEntryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Entry.Assign] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	g, err := ctl.grid(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return fe
		}
		return writeServiceError(c, err)
	}

	cell, err := g.Assign(c.UserContext(),
		req.TimetableEntryDayID, req.TimetableEntrySlotID,
		req.TimetableEntrySubjectID, req.TimetableEntryTeacherID)
	key := svc.CellKey{DayID: req.TimetableEntryDayID, SlotID: req.TimetableEntrySlotID}
	if err != nil {
		log.Printf("[Entry.Assign] assign error: %v", err)
		if cell != nil && cell.Dirty {
			// cache lokal sudah bergeser optimistis; kirim state dirty-nya
			// supaya klien tahu sel mana yang belum tembus ke store
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"success": false,
				"message": "gagal menyimpan entry; coba ulangi",
				"data":    d.FromCell(key, *cell),
			})
		}
		return writeServiceError(c, err)
	}

	return helper.JsonUpdated(c, "entry tersimpan", d.FromCell(key, *cell))
}
