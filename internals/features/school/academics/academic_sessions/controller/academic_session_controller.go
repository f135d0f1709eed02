// file: internals/features/school/academics/academic_sessions/controller/academic_session_controller.go
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

	d "schoolku_backend/internals/features/school/academics/academic_sessions/dto"
	m "schoolku_backend/internals/features/school/academics/academic_sessions/model"
)

type AcademicSessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AcademicSessionController {
	return &AcademicSessionController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/*
========================= Create =========================
*/

func (ctl *AcademicSessionController) Create(c *fiber.Ctx) error {
	// --- guard
	if !helperAuth.IsSchoolAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak")
	}
	schoolID, err := helperAuth.ResolveSchoolID(c)
	if err != nil {
		return err
	}

	var req d.CreateAcademicSessionRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[AcademicSession.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	row := req.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		log.Printf("[AcademicSession.Create] DB.Create error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "academic session dibuat", d.FromModel(row))
}

/*
========================= List =========================
*/

func (ctl *AcademicSessionController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ResolveSchoolID(c)
	if err != nil {
		return err
	}

	pg := helper.ResolvePaging(c, 20, 100)

	var total int64
	q := ctl.DB.WithContext(c.UserContext()).
		Model(&m.AcademicSessionModel{}).
		Where("academic_session_school_id = ?", schoolID)
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []m.AcademicSessionModel
	if err := q.Order("academic_session_start_date DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage)
	return helper.JsonList(c, "", d.FromModels(rows), &p)
}

/*
========================= Get active =========================
*/

func (ctl *AcademicSessionController) GetActive(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var row m.AcademicSessionModel
	err = ctl.DB.WithContext(c.UserContext()).
		Where("academic_session_school_id = ? AND academic_session_is_active = TRUE", schoolID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, http.StatusNotFound, "belum ada session aktif")
	}
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", d.FromModel(row))
}

/*
========================= Patch =========================
*/

func (ctl *AcademicSessionController) Patch(c *fiber.Ctx) error {
	if !helperAuth.IsSchoolAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak")
	}
	schoolID, err := helperAuth.ResolveSchoolID(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id tidak valid")
	}

	var req d.UpdateAcademicSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	var row m.AcademicSessionModel
	err = ctl.DB.WithContext(c.UserContext()).
		Where("academic_session_id = ? AND academic_session_school_id = ?", id, schoolID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, http.StatusNotFound, "session tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	req.Apply(&row)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "", d.FromModel(row))
}

/*
========================= Activate =========================
*/

// Activate menjadikan satu session aktif dan menonaktifkan yang lain.
// Dua update dalam satu transaksi supaya invariant "satu aktif" terjaga.
func (ctl *AcademicSessionController) Activate(c *fiber.Ctx) error {
	if !helperAuth.IsSchoolAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak")
	}
	schoolID, err := helperAuth.ResolveSchoolID(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id tidak valid")
	}

	var row m.AcademicSessionModel
	if err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("academic_session_id = ? AND academic_session_school_id = ?", id, schoolID).
			Take(&row).Error; err != nil {
			return err
		}
		if err := tx.Model(&m.AcademicSessionModel{}).
			Where("academic_session_school_id = ? AND academic_session_is_active = TRUE", schoolID).
			Update("academic_session_is_active", false).Error; err != nil {
			return err
		}
		row.AcademicSessionIsActive = true
		return tx.Model(&m.AcademicSessionModel{}).
			Where("academic_session_id = ?", row.AcademicSessionID).
			Update("academic_session_is_active", true).Error
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "session tidak ditemukan")
		}
		log.Printf("[AcademicSession.Activate] TX error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "session diaktifkan", d.FromModel(row))
}
