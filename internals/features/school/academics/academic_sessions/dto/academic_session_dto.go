// internals/features/school/academics/academic_sessions/dto/academic_session_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/academics/academic_sessions/model"
)

func parseDateYYYYMMDD(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

/* =========================================================
   1) REQUESTS
   ========================================================= */

// Create: school_id dipaksa dari controller (parameter ToModel)
type CreateAcademicSessionRequest struct {
	AcademicSessionName      string `json:"academic_session_name" validate:"required,max=100"`
	AcademicSessionStartDate string `json:"academic_session_start_date" validate:"required,datetime=2006-01-02"`
	AcademicSessionEndDate   string `json:"academic_session_end_date"   validate:"required,datetime=2006-01-02"`
}

func (r CreateAcademicSessionRequest) ToModel(schoolID uuid.UUID) model.AcademicSessionModel {
	start, _ := parseDateYYYYMMDD(r.AcademicSessionStartDate)
	end, _ := parseDateYYYYMMDD(r.AcademicSessionEndDate)
	return model.AcademicSessionModel{
		AcademicSessionSchoolID:  schoolID,
		AcademicSessionName:      strings.TrimSpace(r.AcademicSessionName),
		AcademicSessionStartDate: start,
		AcademicSessionEndDate:   end,
	}
}

// Update (partial)
type UpdateAcademicSessionRequest struct {
	AcademicSessionName      *string `json:"academic_session_name" validate:"omitempty,max=100"`
	AcademicSessionStartDate *string `json:"academic_session_start_date" validate:"omitempty,datetime=2006-01-02"`
	AcademicSessionEndDate   *string `json:"academic_session_end_date"   validate:"omitempty,datetime=2006-01-02"`
}

func (r UpdateAcademicSessionRequest) Apply(m *model.AcademicSessionModel) {
	if r.AcademicSessionName != nil {
		m.AcademicSessionName = strings.TrimSpace(*r.AcademicSessionName)
	}
	if r.AcademicSessionStartDate != nil {
		if t, ok := parseDateYYYYMMDD(*r.AcademicSessionStartDate); ok {
			m.AcademicSessionStartDate = t
		}
	}
	if r.AcademicSessionEndDate != nil {
		if t, ok := parseDateYYYYMMDD(*r.AcademicSessionEndDate); ok {
			m.AcademicSessionEndDate = t
		}
	}
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type AcademicSessionResponse struct {
	AcademicSessionID        uuid.UUID `json:"academic_session_id"`
	AcademicSessionSchoolID  uuid.UUID `json:"academic_session_school_id"`
	AcademicSessionName      string    `json:"academic_session_name"`
	AcademicSessionStartDate string    `json:"academic_session_start_date"`
	AcademicSessionEndDate   string    `json:"academic_session_end_date"`
	AcademicSessionIsActive  bool      `json:"academic_session_is_active"`
}

func FromModel(m model.AcademicSessionModel) AcademicSessionResponse {
	return AcademicSessionResponse{
		AcademicSessionID:        m.AcademicSessionID,
		AcademicSessionSchoolID:  m.AcademicSessionSchoolID,
		AcademicSessionName:      m.AcademicSessionName,
		AcademicSessionStartDate: m.AcademicSessionStartDate.Format("2006-01-02"),
		AcademicSessionEndDate:   m.AcademicSessionEndDate.Format("2006-01-02"),
		AcademicSessionIsActive:  m.AcademicSessionIsActive,
	}
}

func FromModels(ms []model.AcademicSessionModel) []AcademicSessionResponse {
	out := make([]AcademicSessionResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
