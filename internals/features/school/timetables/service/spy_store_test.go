// file: internals/features/school/timetables/service/spy_store_test.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	sessmodel "schoolku_backend/internals/features/school/academics/academic_sessions/model"
	submodel "schoolku_backend/internals/features/school/academics/subjects/model"
	tchmodel "schoolku_backend/internals/features/school/academics/teachers/model"
	m "schoolku_backend/internals/features/school/timetables/model"
)

var errStoreDown = errors.New("store down")

// spyStore = Store + Directory in-memory untuk test service.
// Menghitung semua mutasi supaya test bisa assert "nol tulisan".
type spyStore struct {
	session  *sessmodel.AcademicSessionModel
	template *m.TimetableModel
	days     []m.TimetableDayModel
	slots    []m.TimetableSlotModel
	entries  []m.TimetableEntryModel

	subjects        []submodel.SubjectModel
	teachers        []tchmodel.SchoolTeacherModel
	teacherSubjects []tchmodel.TeacherSubjectModel

	writes       int // total mutasi (delete/insert/update)
	entryInserts int
	entryUpdates int

	failInsertSlots bool
	failInsertEntry bool
	failUpdateEntry bool
}

func newSpyStore() *spyStore { return &spyStore{} }

func (s *spyStore) withActiveSession(schoolID uuid.UUID) *spyStore {
	s.session = &sessmodel.AcademicSessionModel{
		AcademicSessionID:       uuid.New(),
		AcademicSessionSchoolID: schoolID,
		AcademicSessionName:     "2026/2027 Ganjil",
		AcademicSessionIsActive: true,
	}
	return s
}

type spySnapshot struct {
	template *m.TimetableModel
	days     []m.TimetableDayModel
	slots    []m.TimetableSlotModel
	entries  []m.TimetableEntryModel
}

func (s *spyStore) snapshot() spySnapshot {
	snap := spySnapshot{
		days:    append([]m.TimetableDayModel(nil), s.days...),
		slots:   append([]m.TimetableSlotModel(nil), s.slots...),
		entries: append([]m.TimetableEntryModel(nil), s.entries...),
	}
	if s.template != nil {
		cp := *s.template
		snap.template = &cp
	}
	return snap
}

func (s *spyStore) restore(snap spySnapshot) {
	s.template = snap.template
	s.days = snap.days
	s.slots = snap.slots
	s.entries = snap.entries
}

// WithinTx meniru semantik transaksi: error dari fn mengembalikan state
// ke snapshot sebelum fn jalan.
func (s *spyStore) WithinTx(_ context.Context, fn func(tx Store) error) error {
	snap := s.snapshot()
	if err := fn(s); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *spyStore) FindActiveSession(_ context.Context, schoolID uuid.UUID) (*sessmodel.AcademicSessionModel, error) {
	if s.session == nil || s.session.AcademicSessionSchoolID != schoolID {
		return nil, nil
	}
	return s.session, nil
}

func (s *spyStore) FindTemplate(_ context.Context, scope TenantScope) (*m.TimetableModel, error) {
	if s.template == nil ||
		s.template.TimetableSchoolID != scope.SchoolID ||
		s.template.TimetableSessionID != scope.SessionID {
		return nil, nil
	}
	cp := *s.template
	return &cp, nil
}

func (s *spyStore) InsertTemplate(_ context.Context, t *m.TimetableModel) error {
	s.writes++
	t.TimetableID = uuid.New()
	cp := *t
	s.template = &cp
	return nil
}

func (s *spyStore) UpdateTemplate(_ context.Context, t *m.TimetableModel) error {
	s.writes++
	cp := *t
	s.template = &cp
	return nil
}

func (s *spyStore) DeleteDays(_ context.Context, timetableID uuid.UUID) error {
	s.writes++
	kept := s.days[:0]
	for _, d := range s.days {
		if d.TimetableDayTimetableID != timetableID {
			kept = append(kept, d)
		}
	}
	s.days = kept
	return nil
}

func (s *spyStore) InsertDays(_ context.Context, days []m.TimetableDayModel) ([]m.TimetableDayModel, error) {
	s.writes++
	for i := range days {
		days[i].TimetableDayID = uuid.New()
	}
	s.days = append(s.days, days...)
	return days, nil
}

func (s *spyStore) ListDays(_ context.Context, timetableID uuid.UUID) ([]m.TimetableDayModel, error) {
	out := []m.TimetableDayModel{}
	for _, d := range s.days {
		if d.TimetableDayTimetableID == timetableID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *spyStore) DeleteSlots(_ context.Context, timetableID uuid.UUID) error {
	s.writes++
	kept := s.slots[:0]
	for _, sl := range s.slots {
		if sl.TimetableSlotTimetableID != timetableID {
			kept = append(kept, sl)
		}
	}
	s.slots = kept
	return nil
}

func (s *spyStore) InsertSlots(_ context.Context, slots []m.TimetableSlotModel) ([]m.TimetableSlotModel, error) {
	if s.failInsertSlots {
		return nil, errStoreDown
	}
	s.writes++
	for i := range slots {
		slots[i].TimetableSlotID = uuid.New()
	}
	s.slots = append(s.slots, slots...)
	return slots, nil
}

func (s *spyStore) ListSlots(_ context.Context, timetableID uuid.UUID) ([]m.TimetableSlotModel, error) {
	out := []m.TimetableSlotModel{}
	for _, sl := range s.slots {
		if sl.TimetableSlotTimetableID == timetableID {
			out = append(out, sl)
		}
	}
	return out, nil
}

func (s *spyStore) DeleteEntriesByTimetable(_ context.Context, timetableID uuid.UUID) error {
	s.writes++
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.TimetableEntryTimetableID != timetableID {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	return nil
}

func (s *spyStore) ListEntries(_ context.Context, timetableID, sectionID uuid.UUID) ([]m.TimetableEntryModel, error) {
	out := []m.TimetableEntryModel{}
	for _, e := range s.entries {
		if e.TimetableEntryTimetableID == timetableID && e.TimetableEntryClassSectionID == sectionID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *spyStore) InsertEntry(_ context.Context, e *m.TimetableEntryModel) error {
	if s.failInsertEntry {
		return errStoreDown
	}
	s.writes++
	s.entryInserts++
	e.TimetableEntryID = uuid.New()
	s.entries = append(s.entries, *e)
	return nil
}

func (s *spyStore) UpdateEntry(_ context.Context, e *m.TimetableEntryModel) error {
	if s.failUpdateEntry {
		return errStoreDown
	}
	s.writes++
	s.entryUpdates++
	for i := range s.entries {
		if s.entries[i].TimetableEntryID == e.TimetableEntryID {
			s.entries[i].TimetableEntrySubjectID = e.TimetableEntrySubjectID
			s.entries[i].TimetableEntryTeacherID = e.TimetableEntryTeacherID
			return nil
		}
	}
	return errors.New("entry tidak ditemukan")
}

func (s *spyStore) ListSubjects(_ context.Context, schoolID uuid.UUID) ([]submodel.SubjectModel, error) {
	out := []submodel.SubjectModel{}
	for _, x := range s.subjects {
		if x.SubjectSchoolID == schoolID {
			out = append(out, x)
		}
	}
	return out, nil
}

func (s *spyStore) ListTeachers(_ context.Context, schoolID uuid.UUID) ([]tchmodel.SchoolTeacherModel, error) {
	out := []tchmodel.SchoolTeacherModel{}
	for _, x := range s.teachers {
		if x.SchoolTeacherSchoolID == schoolID {
			out = append(out, x)
		}
	}
	return out, nil
}

func (s *spyStore) ListTeacherSubjects(_ context.Context, schoolID, sessionID uuid.UUID) ([]tchmodel.TeacherSubjectModel, error) {
	out := []tchmodel.TeacherSubjectModel{}
	for _, x := range s.teacherSubjects {
		if x.TeacherSubjectSchoolID == schoolID && x.TeacherSubjectSessionID == sessionID {
			out = append(out, x)
		}
	}
	return out, nil
}

var (
	_ Store     = (*spyStore)(nil)
	_ Directory = (*spyStore)(nil)
)
