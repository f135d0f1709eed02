// file: internals/features/school/timetables/service/projection.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/timetables/model"
)

const NotAssignedLabel = "Not Assigned"

// ViewCell = satu sel grid kelas yang sudah dirender: nama, bukan ID.
type ViewCell struct {
	DayIndex    int    `json:"day_index"`
	DayName     string `json:"day_name"`
	SubjectName string `json:"subject_name"`
	TeacherName string `json:"teacher_name,omitempty"`
	Assigned    bool   `json:"assigned"`
}

// ViewRow = satu baris grid (slot) beserta sel per hari aktif.
// Slot break tidak punya Cells; dia dirender sebagai placeholder tetap.
type ViewRow struct {
	SlotLabel string         `json:"slot_label"`
	SlotType  m.SlotTypeEnum `json:"slot_type"`
	StartTime string         `json:"start_time"` // "h:mm AM/PM"
	EndTime   string         `json:"end_time"`
	IsBreak   bool           `json:"is_break"`
	Cells     []ViewCell     `json:"cells,omitempty"`
}

type ClassView struct {
	TimetableID   uuid.UUID `json:"timetable_id"`
	TimetableName string    `json:"timetable_name"`
	SectionID     uuid.UUID `json:"section_id"`
	ActiveDays    []int     `json:"active_days"`
	Rows          []ViewRow `json:"rows"`
}

// BuildClassView merender grid penuh satu kelas: slot period terurut ×
// hari aktif, digabung dengan nama mapel dan label guru dari directory.
// Label guru = nama + mapel pertama yang dia ampu di session ini (join
// sekunder, tidak disimpan). Murni baca; aman dipanggil berulang.
func BuildClassView(ctx context.Context, store Store, dir Directory, scope TenantScope, sectionID uuid.UUID) (*ClassView, error) {
	st, err := LoadActiveStructure(ctx, store, scope)
	if err != nil {
		return nil, err
	}
	scope.SessionID = st.Template.TimetableSessionID

	entries, err := store.ListEntries(ctx, st.Template.TimetableID, sectionID)
	if err != nil {
		return nil, err
	}

	subjects, err := dir.ListSubjects(ctx, scope.SchoolID)
	if err != nil {
		return nil, err
	}
	teachers, err := dir.ListTeachers(ctx, scope.SchoolID)
	if err != nil {
		return nil, err
	}
	teacherSubjects, err := dir.ListTeacherSubjects(ctx, scope.SchoolID, scope.SessionID)
	if err != nil {
		return nil, err
	}

	subjectName := make(map[uuid.UUID]string, len(subjects))
	for _, s := range subjects {
		subjectName[s.SubjectID] = s.SubjectName
	}
	teacherName := make(map[uuid.UUID]string, len(teachers))
	for _, t := range teachers {
		teacherName[t.SchoolTeacherID] = t.SchoolTeacherName
	}
	// mapel pertama per guru, urutan assignment di session
	firstSubjectOf := make(map[uuid.UUID]string)
	for _, ts := range teacherSubjects {
		if _, seen := firstSubjectOf[ts.TeacherSubjectTeacherID]; seen {
			continue
		}
		if name, ok := subjectName[ts.TeacherSubjectSubjectID]; ok {
			firstSubjectOf[ts.TeacherSubjectTeacherID] = name
		}
	}

	cellOf := make(map[CellKey]m.TimetableEntryModel, len(entries))
	for _, e := range entries {
		cellOf[CellKey{DayID: e.TimetableEntryDayID, SlotID: e.TimetableEntrySlotID}] = e
	}

	view := &ClassView{
		TimetableID:   st.Template.TimetableID,
		TimetableName: st.Template.TimetableName,
		SectionID:     sectionID,
	}
	activeDays := make([]m.TimetableDayModel, 0, len(st.Days))
	for _, d := range st.Days {
		if d.TimetableDayIsActive {
			activeDays = append(activeDays, d)
			view.ActiveDays = append(view.ActiveDays, d.TimetableDayIndex)
		}
	}

	for _, slot := range st.Slots {
		row := ViewRow{
			SlotLabel: slot.TimetableSlotLabel,
			SlotType:  slot.TimetableSlotType,
			StartTime: Format12h(slot.TimetableSlotStartTime.Clock()),
			EndTime:   Format12h(slot.TimetableSlotEndTime.Clock()),
			IsBreak:   slot.TimetableSlotType.IsBreak(),
		}
		if !row.IsBreak {
			for _, d := range activeDays {
				cell := ViewCell{
					DayIndex:    d.TimetableDayIndex,
					DayName:     m.WeekdayNames[d.TimetableDayIndex],
					SubjectName: NotAssignedLabel,
				}
				if e, ok := cellOf[CellKey{DayID: d.TimetableDayID, SlotID: slot.TimetableSlotID}]; ok {
					if e.TimetableEntrySubjectID != nil {
						if name, ok := subjectName[*e.TimetableEntrySubjectID]; ok {
							cell.SubjectName = name
							cell.Assigned = true
						}
					}
					if e.TimetableEntryTeacherID != nil {
						if name, ok := teacherName[*e.TimetableEntryTeacherID]; ok {
							if subj, ok := firstSubjectOf[*e.TimetableEntryTeacherID]; ok {
								cell.TeacherName = fmt.Sprintf("%s (%s)", name, subj)
							} else {
								cell.TeacherName = name
							}
						}
					}
				}
				row.Cells = append(row.Cells, cell)
			}
		}
		view.Rows = append(view.Rows, row)
	}

	return view, nil
}
