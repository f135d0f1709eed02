// internals/features/school/timetables/dto/entry_dto.go
package dto

import (
	"github.com/google/uuid"

	svc "schoolku_backend/internals/features/school/timetables/service"
)

/* =========================================================
   REQUESTS
   ========================================================= */

// AssignEntryRequest = satu edit sel. subject/teacher boleh dikirim sendiri-
// sendiri (dua dropdown, dua aksi); field yang tidak dikirim tidak diubah.
type AssignEntryRequest struct {
	TimetableEntryDayID     uuid.UUID  `json:"timetable_entry_day_id" validate:"required"`
	TimetableEntrySlotID    uuid.UUID  `json:"timetable_entry_slot_id" validate:"required"`
	TimetableEntrySubjectID *uuid.UUID `json:"timetable_entry_subject_id"`
	TimetableEntryTeacherID *uuid.UUID `json:"timetable_entry_teacher_id"`
}

/* =========================================================
   RESPONSES
   ========================================================= */

type EntryCellResponse struct {
	TimetableEntryDayID     uuid.UUID  `json:"timetable_entry_day_id"`
	TimetableEntrySlotID    uuid.UUID  `json:"timetable_entry_slot_id"`
	TimetableEntryID        *uuid.UUID `json:"timetable_entry_id,omitempty"`
	TimetableEntrySubjectID *uuid.UUID `json:"timetable_entry_subject_id,omitempty"`
	TimetableEntryTeacherID *uuid.UUID `json:"timetable_entry_teacher_id,omitempty"`
	Dirty                   bool       `json:"dirty,omitempty"`
}

func FromCell(key svc.CellKey, cell svc.CellState) EntryCellResponse {
	return EntryCellResponse{
		TimetableEntryDayID:     key.DayID,
		TimetableEntrySlotID:    key.SlotID,
		TimetableEntryID:        cell.EntryID,
		TimetableEntrySubjectID: cell.SubjectID,
		TimetableEntryTeacherID: cell.TeacherID,
		Dirty:                   cell.Dirty,
	}
}

func FromCells(cells map[svc.CellKey]svc.CellState) []EntryCellResponse {
	out := make([]EntryCellResponse, 0, len(cells))
	for k, v := range cells {
		out = append(out, FromCell(k, v))
	}
	return out
}
