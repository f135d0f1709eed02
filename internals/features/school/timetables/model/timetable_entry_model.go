// internals/features/school/timetables/model/timetable_entry_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Satu entry per (timetable, day, slot, class_section) — ditegakkan lewat
// semantik upsert-by-key di service, plus unique index partial alive di migration.
type TimetableEntryModel struct {
	TimetableEntryID uuid.UUID `gorm:"column:timetable_entry_id;type:uuid;default:gen_random_uuid();primaryKey" json:"timetable_entry_id"`

	TimetableEntryTimetableID uuid.UUID `gorm:"column:timetable_entry_timetable_id;type:uuid;not null;index" json:"timetable_entry_timetable_id"`
	TimetableEntrySchoolID    uuid.UUID `gorm:"column:timetable_entry_school_id;type:uuid;not null" json:"timetable_entry_school_id"`

	TimetableEntryDayID          uuid.UUID `gorm:"column:timetable_entry_day_id;type:uuid;not null" json:"timetable_entry_day_id"`
	TimetableEntrySlotID         uuid.UUID `gorm:"column:timetable_entry_slot_id;type:uuid;not null" json:"timetable_entry_slot_id"`
	TimetableEntryClassSectionID uuid.UUID `gorm:"column:timetable_entry_class_section_id;type:uuid;not null;index" json:"timetable_entry_class_section_id"`

	// keduanya nullable; subject & teacher di-set lewat dua aksi terpisah di UI
	TimetableEntrySubjectID *uuid.UUID `gorm:"column:timetable_entry_subject_id;type:uuid" json:"timetable_entry_subject_id,omitempty"`
	TimetableEntryTeacherID *uuid.UUID `gorm:"column:timetable_entry_teacher_id;type:uuid" json:"timetable_entry_teacher_id,omitempty"`

	TimetableEntryCreatedAt time.Time      `gorm:"column:timetable_entry_created_at;type:timestamptz;not null;autoCreateTime" json:"timetable_entry_created_at"`
	TimetableEntryUpdatedAt time.Time      `gorm:"column:timetable_entry_updated_at;type:timestamptz;not null;autoUpdateTime" json:"timetable_entry_updated_at"`
	TimetableEntryDeletedAt gorm.DeletedAt `gorm:"column:timetable_entry_deleted_at;index" json:"timetable_entry_deleted_at,omitempty"`
}

func (TimetableEntryModel) TableName() string { return "timetable_entries" }
