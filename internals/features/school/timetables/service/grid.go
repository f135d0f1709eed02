// file: internals/features/school/timetables/service/grid.go
package service

import (
	"context"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/timetables/model"
)

// CellKey mengalamati satu sel grid per (day, slot).
type CellKey struct {
	DayID  uuid.UUID
	SlotID uuid.UUID
}

// CellState = isi cache lokal satu sel. Dirty berarti tulisan terakhir ke
// store gagal dan nilai optimistis di cache menyimpang dari DB.
type CellState struct {
	EntryID   *uuid.UUID `json:"entry_id,omitempty"`
	SubjectID *uuid.UUID `json:"subject_id,omitempty"`
	TeacherID *uuid.UUID `json:"teacher_id,omitempty"`
	Dirty     bool       `json:"dirty,omitempty"`
}

// Grid = cache write-through sel assignment satu (template, class_section).
// Tanpa locking; dua sesi yang mengedit sel yang sama = last-write-wins.
type Grid struct {
	store     Store
	scope     TenantScope
	Timetable uuid.UUID
	SectionID uuid.UUID

	cells     map[CellKey]*CellState
	validDays map[uuid.UUID]bool
	slotType  map[uuid.UUID]m.SlotTypeEnum
}

func NewGrid(store Store, scope TenantScope, timetableID, sectionID uuid.UUID) *Grid {
	return &Grid{
		store:     store,
		scope:     scope,
		Timetable: timetableID,
		SectionID: sectionID,
		cells:     map[CellKey]*CellState{},
		validDays: map[uuid.UUID]bool{},
		slotType:  map[uuid.UUID]m.SlotTypeEnum{},
	}
}

// Load menarik semua entry section ini sekaligus dan merekam day yang sah
// plus tipe tiap slot dari struktur tersimpan saat ini.
func (g *Grid) Load(ctx context.Context) error {
	days, err := g.store.ListDays(ctx, g.Timetable)
	if err != nil {
		return err
	}
	slots, err := g.store.ListSlots(ctx, g.Timetable)
	if err != nil {
		return err
	}
	entries, err := g.store.ListEntries(ctx, g.Timetable, g.SectionID)
	if err != nil {
		return err
	}

	g.cells = make(map[CellKey]*CellState, len(entries))
	g.validDays = make(map[uuid.UUID]bool, len(days))
	g.slotType = make(map[uuid.UUID]m.SlotTypeEnum, len(slots))
	for _, d := range days {
		g.validDays[d.TimetableDayID] = true
	}
	for _, s := range slots {
		g.slotType[s.TimetableSlotID] = s.TimetableSlotType
	}
	for _, e := range entries {
		id := e.TimetableEntryID
		g.cells[CellKey{DayID: e.TimetableEntryDayID, SlotID: e.TimetableEntrySlotID}] = &CellState{
			EntryID:   &id,
			SubjectID: e.TimetableEntrySubjectID,
			TeacherID: e.TimetableEntryTeacherID,
		}
	}
	return nil
}

// Cells mengembalikan snapshot cache (key → state) untuk response.
func (g *Grid) Cells() map[CellKey]CellState {
	out := make(map[CellKey]CellState, len(g.cells))
	for k, v := range g.cells {
		out[k] = *v
	}
	return out
}

// Assign meng-upsert satu sel: entry pertama di sel itu lahir lewat insert,
// selanjutnya update in place. subjectID / teacherID yang nil membiarkan
// field kembarannya apa adanya (UI mengirim dua aksi terpisah, satu per
// dropdown, masing-masing membawa nilai terakhir field satunya).
//
// Cache lokal di-update optimistis; kalau store gagal, sel ditandai Dirty
// dan error diteruskan tanpa rollback cache.
func (g *Grid) Assign(ctx context.Context, dayID, slotID uuid.UUID, subjectID, teacherID *uuid.UUID) (*CellState, error) {
	st, known := g.slotType[slotID]
	if !g.validDays[dayID] || !known {
		return nil, ErrStaleReference
	}
	// slot break tidak pernah membawa entry; hanya slot period yang bisa diisi
	if st.IsBreak() {
		return nil, ErrBreakSlotEntry
	}

	key := CellKey{DayID: dayID, SlotID: slotID}
	cell, ok := g.cells[key]
	if !ok {
		cell = &CellState{}
		g.cells[key] = cell
	}

	// merge: field yang dikirim menimpa, field nil mempertahankan yang lama
	if subjectID != nil {
		cell.SubjectID = subjectID
	}
	if teacherID != nil {
		cell.TeacherID = teacherID
	}

	if cell.EntryID != nil {
		err := g.store.UpdateEntry(ctx, &m.TimetableEntryModel{
			TimetableEntryID:        *cell.EntryID,
			TimetableEntrySubjectID: cell.SubjectID,
			TimetableEntryTeacherID: cell.TeacherID,
		})
		if err != nil {
			cell.Dirty = true
			return cell, err
		}
		cell.Dirty = false
		return cell, nil
	}

	e := m.TimetableEntryModel{
		TimetableEntryTimetableID:    g.Timetable,
		TimetableEntrySchoolID:       g.scope.SchoolID,
		TimetableEntryDayID:          dayID,
		TimetableEntrySlotID:         slotID,
		TimetableEntryClassSectionID: g.SectionID,
		TimetableEntrySubjectID:      cell.SubjectID,
		TimetableEntryTeacherID:      cell.TeacherID,
	}
	if err := g.store.InsertEntry(ctx, &e); err != nil {
		cell.Dirty = true
		return cell, err
	}
	id := e.TimetableEntryID
	cell.EntryID = &id
	cell.Dirty = false
	return cell, nil
}
