// file: internals/features/school/timetables/controller/timetable_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"

	d "schoolku_backend/internals/features/school/timetables/dto"
	svc "schoolku_backend/internals/features/school/timetables/service"
)

/* =========================
   Controller & Constructor
   ========================= */

type TimetableController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *TimetableController {
	return &TimetableController{DB: db, Validate: v}
}

/* =========================
   Helpers
   ========================= */

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// --- PG error mapping ---

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func mapPGError(err error) (int, string) {
	// 23503 = foreign_key_violation
	// 23505 = unique_violation
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23503":
			return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
		case "23505":
			return http.StatusConflict, "Data duplikat (unique violation)."
		}
	}
	return http.StatusInternalServerError, err.Error()
}

// writeServiceError memetakan error layer service/store ke status HTTP.
func writeServiceError(c *fiber.Ctx, err error) error {
	if ve, ok := svc.AsValidationError(err); ok {
		return helper.JsonError(c, http.StatusUnprocessableEntity, ve.Msg)
	}
	if errors.Is(err, svc.ErrStaleReference) {
		return helper.JsonError(c, http.StatusConflict, err.Error())
	}
	if errors.Is(err, svc.ErrNoTemplate) {
		return helper.JsonError(c, http.StatusNotFound, err.Error())
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, http.StatusNotFound, "data tidak ditemukan")
	}
	code, msg := mapPGError(err)
	return helper.JsonError(c, code, msg)
}

func (ctl *TimetableController) scope(c *fiber.Ctx) (svc.TenantScope, error) {
	schoolID, err := helperAuth.ResolveSchoolID(c)
	if err != nil {
		return svc.TenantScope{}, err
	}
	userID, _ := helperAuth.GetUserIDFromToken(c)
	return svc.TenantScope{SchoolID: schoolID, UserID: userID}, nil
}

/*
========================= Save structure =========================
*/

// SaveStructure menerima draft builder utuh dan menyimpannya dengan
// strategi replace-on-save (satu transaksi di service).
func (ctl *TimetableController) SaveStructure(c *fiber.Ctx) error {
	// --- guard
	if !helperAuth.IsSchoolAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak")
	}

	scope, err := ctl.scope(c)
	if err != nil {
		return err
	}

	// --- body
	var req d.SaveStructureRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Timetable.SaveStructure] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	// --- validate
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			log.Printf("[Timetable.SaveStructure] Validation error: %v", err)
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	builder, err := req.ToBuilder()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	store := svc.NewGormStore(ctl.DB)
	saved, err := svc.SaveStructure(c.UserContext(), store, scope, builder)
	if err != nil {
		log.Printf("[Timetable.SaveStructure] save error: %v", err)
		return writeServiceError(c, err)
	}

	return helper.JsonOK(c, "struktur timetable tersimpan", d.FromSavedStructure(saved))
}

/*
========================= Preview =========================
*/

// Preview menjalankan recompute atas draft tanpa menulis apa pun.
// Dipakai UI untuk menampilkan jam turunan selagi admin mengedit.
func (ctl *TimetableController) Preview(c *fiber.Ctx) error {
	var req d.SaveStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}
	builder, err := req.ToBuilder()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	return helper.JsonOK(c, "", d.FromBuilderPreview(builder))
}

/*
========================= Get active structure =========================
*/

func (ctl *TimetableController) GetActive(c *fiber.Ctx) error {
	scope, err := ctl.scope(c)
	if err != nil {
		return err
	}

	store := svc.NewGormStore(ctl.DB)
	st, err := svc.LoadActiveStructure(c.UserContext(), store, scope)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "", d.FromSavedStructure(st))
}
