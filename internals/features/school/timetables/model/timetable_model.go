// internals/features/school/timetables/model/timetable_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/helpers/dbtime"
)

type TimetableModel struct {
	TimetableID uuid.UUID `gorm:"column:timetable_id;type:uuid;default:gen_random_uuid();primaryKey" json:"timetable_id"`

	// tenant scope
	TimetableSchoolID  uuid.UUID `gorm:"column:timetable_school_id;type:uuid;not null" json:"timetable_school_id"`
	TimetableSessionID uuid.UUID `gorm:"column:timetable_session_id;type:uuid;not null" json:"timetable_session_id"`

	TimetableName string `gorm:"column:timetable_name;type:varchar(120);not null" json:"timetable_name"`

	// jam masuk sekolah; slot pertama selalu mulai dari sini
	TimetableStartTime dbtime.Tod `gorm:"column:timetable_start_time;type:time;not null" json:"timetable_start_time"`

	// paling banyak satu template aktif per session
	TimetableIsActive bool `gorm:"column:timetable_is_active;not null;default:true" json:"timetable_is_active"`

	// audit
	TimetableCreatedAt time.Time      `gorm:"column:timetable_created_at;type:timestamptz;not null;autoCreateTime" json:"timetable_created_at"`
	TimetableUpdatedAt time.Time      `gorm:"column:timetable_updated_at;type:timestamptz;not null;autoUpdateTime" json:"timetable_updated_at"`
	TimetableDeletedAt gorm.DeletedAt `gorm:"column:timetable_deleted_at;index" json:"timetable_deleted_at,omitempty"`
}

func (TimetableModel) TableName() string { return "timetables" }
