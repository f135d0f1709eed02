// internals/features/school/timetables/model/timetable_slot_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/helpers/dbtime"
)

// SlotTypeEnum merepresentasikan enum timetable_slot_type_enum di Postgres.
type SlotTypeEnum string

const (
	SlotPeriod     SlotTypeEnum = "period"
	SlotShortBreak SlotTypeEnum = "short_break"
	SlotLunchBreak SlotTypeEnum = "lunch_break"
)

func (t SlotTypeEnum) IsBreak() bool {
	return t == SlotShortBreak || t == SlotLunchBreak
}

func (t SlotTypeEnum) Valid() bool {
	switch t {
	case SlotPeriod, SlotShortBreak, SlotLunchBreak:
		return true
	}
	return false
}

type TimetableSlotModel struct {
	TimetableSlotID uuid.UUID `gorm:"column:timetable_slot_id;type:uuid;default:gen_random_uuid();primaryKey" json:"timetable_slot_id"`

	TimetableSlotTimetableID uuid.UUID `gorm:"column:timetable_slot_timetable_id;type:uuid;not null;index" json:"timetable_slot_timetable_id"`
	TimetableSlotSchoolID    uuid.UUID `gorm:"column:timetable_slot_school_id;type:uuid;not null" json:"timetable_slot_school_id"`

	// urutan 1-based, rapat tanpa lubang
	TimetableSlotOrder int          `gorm:"column:timetable_slot_order;type:smallint;not null" json:"timetable_slot_order"`
	TimetableSlotType  SlotTypeEnum `gorm:"column:timetable_slot_type;type:timetable_slot_type_enum;not null" json:"timetable_slot_type"`
	TimetableSlotLabel string       `gorm:"column:timetable_slot_label;type:varchar(80);not null" json:"timetable_slot_label"`

	TimetableSlotDurationMinutes int `gorm:"column:timetable_slot_duration_minutes;type:smallint;not null" json:"timetable_slot_duration_minutes"`

	// jam turunan hasil recompute (bukan input user)
	TimetableSlotStartTime dbtime.Tod `gorm:"column:timetable_slot_start_time;type:time;not null" json:"timetable_slot_start_time"`
	TimetableSlotEndTime   dbtime.Tod `gorm:"column:timetable_slot_end_time;type:time;not null" json:"timetable_slot_end_time"`

	TimetableSlotCreatedAt time.Time `gorm:"column:timetable_slot_created_at;type:timestamptz;not null;autoCreateTime" json:"timetable_slot_created_at"`
}

func (TimetableSlotModel) TableName() string { return "timetable_slots" }
