// internals/features/school/timetables/model/timetable_day_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Enam hari tetap (Senin..Sabtu), index 0..5.
// Semua enam baris ditulis ulang setiap kali struktur disimpan.
const WeekdayCount = 6

var WeekdayNames = [WeekdayCount]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

type TimetableDayModel struct {
	TimetableDayID uuid.UUID `gorm:"column:timetable_day_id;type:uuid;default:gen_random_uuid();primaryKey" json:"timetable_day_id"`

	TimetableDayTimetableID uuid.UUID `gorm:"column:timetable_day_timetable_id;type:uuid;not null;index" json:"timetable_day_timetable_id"`
	TimetableDaySchoolID    uuid.UUID `gorm:"column:timetable_day_school_id;type:uuid;not null" json:"timetable_day_school_id"`

	TimetableDayIndex    int  `gorm:"column:timetable_day_index;type:smallint;not null" json:"timetable_day_index"` // 0..5
	TimetableDayIsActive bool `gorm:"column:timetable_day_is_active;not null;default:false" json:"timetable_day_is_active"`

	TimetableDayCreatedAt time.Time `gorm:"column:timetable_day_created_at;type:timestamptz;not null;autoCreateTime" json:"timetable_day_created_at"`
}

func (TimetableDayModel) TableName() string { return "timetable_days" }
