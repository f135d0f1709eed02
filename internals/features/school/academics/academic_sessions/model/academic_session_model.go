// internals/features/school/academics/academic_sessions/model/academic_session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AcademicSessionModel struct {
	AcademicSessionID uuid.UUID `gorm:"column:academic_session_id;type:uuid;default:gen_random_uuid();primaryKey" json:"academic_session_id"`

	// tenant scope
	AcademicSessionSchoolID uuid.UUID `gorm:"column:academic_session_school_id;type:uuid;not null;index" json:"academic_session_school_id"`

	AcademicSessionName      string    `gorm:"column:academic_session_name;type:varchar(100);not null" json:"academic_session_name"`
	AcademicSessionStartDate time.Time `gorm:"column:academic_session_start_date;type:date;not null" json:"academic_session_start_date"`
	AcademicSessionEndDate   time.Time `gorm:"column:academic_session_end_date;type:date;not null" json:"academic_session_end_date"`

	// satu session aktif per sekolah (partial unique index di migration)
	AcademicSessionIsActive bool `gorm:"column:academic_session_is_active;not null;default:false" json:"academic_session_is_active"`

	AcademicSessionCreatedAt time.Time      `gorm:"column:academic_session_created_at;type:timestamptz;not null;autoCreateTime" json:"academic_session_created_at"`
	AcademicSessionUpdatedAt time.Time      `gorm:"column:academic_session_updated_at;type:timestamptz;not null;autoUpdateTime" json:"academic_session_updated_at"`
	AcademicSessionDeletedAt gorm.DeletedAt `gorm:"column:academic_session_deleted_at;index" json:"academic_session_deleted_at,omitempty"`
}

func (AcademicSessionModel) TableName() string { return "academic_sessions" }
