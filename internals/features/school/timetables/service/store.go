// file: internals/features/school/timetables/service/store.go
package service

import (
	"context"

	"github.com/google/uuid"

	sessmodel "schoolku_backend/internals/features/school/academics/academic_sessions/model"
	submodel "schoolku_backend/internals/features/school/academics/subjects/model"
	tchmodel "schoolku_backend/internals/features/school/academics/teachers/model"
	m "schoolku_backend/internals/features/school/timetables/model"
)

// Store = akses persisten ke empat koleksi timetable. Insert mengisi ID
// pada model yang di-pass (gen_random_uuid di sisi DB), delete menerima
// filter per template — itu saja kontraknya; test pakai spy in-memory.
type Store interface {
	// WithinTx menjalankan fn dalam satu transaksi; fn menerima Store
	// yang terikat ke transaksi tersebut.
	WithinTx(ctx context.Context, fn func(tx Store) error) error

	FindActiveSession(ctx context.Context, schoolID uuid.UUID) (*sessmodel.AcademicSessionModel, error)

	FindTemplate(ctx context.Context, scope TenantScope) (*m.TimetableModel, error)
	InsertTemplate(ctx context.Context, t *m.TimetableModel) error
	UpdateTemplate(ctx context.Context, t *m.TimetableModel) error

	DeleteDays(ctx context.Context, timetableID uuid.UUID) error
	InsertDays(ctx context.Context, days []m.TimetableDayModel) ([]m.TimetableDayModel, error)
	ListDays(ctx context.Context, timetableID uuid.UUID) ([]m.TimetableDayModel, error)

	DeleteSlots(ctx context.Context, timetableID uuid.UUID) error
	InsertSlots(ctx context.Context, slots []m.TimetableSlotModel) ([]m.TimetableSlotModel, error)
	ListSlots(ctx context.Context, timetableID uuid.UUID) ([]m.TimetableSlotModel, error)

	DeleteEntriesByTimetable(ctx context.Context, timetableID uuid.UUID) error
	ListEntries(ctx context.Context, timetableID, sectionID uuid.UUID) ([]m.TimetableEntryModel, error)
	InsertEntry(ctx context.Context, e *m.TimetableEntryModel) error
	UpdateEntry(ctx context.Context, e *m.TimetableEntryModel) error
}

// Directory = kolaborator read-only untuk label tampilan (nama mapel,
// nama guru, index guru→mapel per session).
type Directory interface {
	ListSubjects(ctx context.Context, schoolID uuid.UUID) ([]submodel.SubjectModel, error)
	ListTeachers(ctx context.Context, schoolID uuid.UUID) ([]tchmodel.SchoolTeacherModel, error)
	ListTeacherSubjects(ctx context.Context, schoolID, sessionID uuid.UUID) ([]tchmodel.TeacherSubjectModel, error)
}
