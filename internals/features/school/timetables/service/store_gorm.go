// file: internals/features/school/timetables/service/store_gorm.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	sessmodel "schoolku_backend/internals/features/school/academics/academic_sessions/model"
	submodel "schoolku_backend/internals/features/school/academics/subjects/model"
	tchmodel "schoolku_backend/internals/features/school/academics/teachers/model"
	m "schoolku_backend/internals/features/school/timetables/model"
)

// GormStore mengimplementasikan Store + Directory di atas *gorm.DB.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

var _ Store = (*GormStore)(nil)
var _ Directory = (*GormStore)(nil)

func (s *GormStore) WithinTx(ctx context.Context, fn func(tx Store) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{DB: tx})
	})
}

func (s *GormStore) FindActiveSession(ctx context.Context, schoolID uuid.UUID) (*sessmodel.AcademicSessionModel, error) {
	var row sessmodel.AcademicSessionModel
	err := s.DB.WithContext(ctx).
		Where("academic_session_school_id = ? AND academic_session_is_active = TRUE", schoolID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *GormStore) FindTemplate(ctx context.Context, scope TenantScope) (*m.TimetableModel, error) {
	var row m.TimetableModel
	err := s.DB.WithContext(ctx).
		Where("timetable_school_id = ? AND timetable_session_id = ? AND timetable_is_active = TRUE",
			scope.SchoolID, scope.SessionID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *GormStore) InsertTemplate(ctx context.Context, t *m.TimetableModel) error {
	return s.DB.WithContext(ctx).Create(t).Error
}

func (s *GormStore) UpdateTemplate(ctx context.Context, t *m.TimetableModel) error {
	return s.DB.WithContext(ctx).
		Model(&m.TimetableModel{}).
		Where("timetable_id = ?", t.TimetableID).
		Updates(map[string]any{
			"timetable_name":       t.TimetableName,
			"timetable_start_time": t.TimetableStartTime,
			"timetable_is_active":  t.TimetableIsActive,
		}).Error
}

func (s *GormStore) DeleteDays(ctx context.Context, timetableID uuid.UUID) error {
	// hard delete: baris day memang ditulis ulang utuh tiap save
	return s.DB.WithContext(ctx).
		Where("timetable_day_timetable_id = ?", timetableID).
		Delete(&m.TimetableDayModel{}).Error
}

func (s *GormStore) InsertDays(ctx context.Context, days []m.TimetableDayModel) ([]m.TimetableDayModel, error) {
	if len(days) == 0 {
		return days, nil
	}
	if err := s.DB.WithContext(ctx).Create(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

func (s *GormStore) ListDays(ctx context.Context, timetableID uuid.UUID) ([]m.TimetableDayModel, error) {
	var rows []m.TimetableDayModel
	err := s.DB.WithContext(ctx).
		Where("timetable_day_timetable_id = ?", timetableID).
		Order("timetable_day_index ASC").
		Find(&rows).Error
	return rows, err
}

func (s *GormStore) DeleteSlots(ctx context.Context, timetableID uuid.UUID) error {
	return s.DB.WithContext(ctx).
		Where("timetable_slot_timetable_id = ?", timetableID).
		Delete(&m.TimetableSlotModel{}).Error
}

func (s *GormStore) InsertSlots(ctx context.Context, slots []m.TimetableSlotModel) ([]m.TimetableSlotModel, error) {
	if len(slots) == 0 {
		return slots, nil
	}
	if err := s.DB.WithContext(ctx).Create(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (s *GormStore) ListSlots(ctx context.Context, timetableID uuid.UUID) ([]m.TimetableSlotModel, error) {
	var rows []m.TimetableSlotModel
	err := s.DB.WithContext(ctx).
		Where("timetable_slot_timetable_id = ?", timetableID).
		Order("timetable_slot_order ASC").
		Find(&rows).Error
	return rows, err
}

func (s *GormStore) DeleteEntriesByTimetable(ctx context.Context, timetableID uuid.UUID) error {
	// ikut kebijakan cascade: entry yang key-nya mati dihapus sekalian
	return s.DB.WithContext(ctx).
		Where("timetable_entry_timetable_id = ?", timetableID).
		Delete(&m.TimetableEntryModel{}).Error
}

func (s *GormStore) ListEntries(ctx context.Context, timetableID, sectionID uuid.UUID) ([]m.TimetableEntryModel, error) {
	var rows []m.TimetableEntryModel
	err := s.DB.WithContext(ctx).
		Where("timetable_entry_timetable_id = ? AND timetable_entry_class_section_id = ?", timetableID, sectionID).
		Find(&rows).Error
	return rows, err
}

func (s *GormStore) InsertEntry(ctx context.Context, e *m.TimetableEntryModel) error {
	return s.DB.WithContext(ctx).Create(e).Error
}

func (s *GormStore) UpdateEntry(ctx context.Context, e *m.TimetableEntryModel) error {
	return s.DB.WithContext(ctx).
		Model(&m.TimetableEntryModel{}).
		Where("timetable_entry_id = ?", e.TimetableEntryID).
		Updates(map[string]any{
			"timetable_entry_subject_id": e.TimetableEntrySubjectID,
			"timetable_entry_teacher_id": e.TimetableEntryTeacherID,
		}).Error
}

/* =========================
   Directory (read-only)
   ========================= */

func (s *GormStore) ListSubjects(ctx context.Context, schoolID uuid.UUID) ([]submodel.SubjectModel, error) {
	var rows []submodel.SubjectModel
	err := s.DB.WithContext(ctx).
		Where("subject_school_id = ? AND subject_is_active = TRUE", schoolID).
		Order("subject_name ASC").
		Find(&rows).Error
	return rows, err
}

func (s *GormStore) ListTeachers(ctx context.Context, schoolID uuid.UUID) ([]tchmodel.SchoolTeacherModel, error) {
	var rows []tchmodel.SchoolTeacherModel
	err := s.DB.WithContext(ctx).
		Where("school_teacher_school_id = ? AND school_teacher_is_active = TRUE", schoolID).
		Order("school_teacher_name ASC").
		Find(&rows).Error
	return rows, err
}

func (s *GormStore) ListTeacherSubjects(ctx context.Context, schoolID, sessionID uuid.UUID) ([]tchmodel.TeacherSubjectModel, error) {
	var rows []tchmodel.TeacherSubjectModel
	err := s.DB.WithContext(ctx).
		Where("teacher_subject_school_id = ? AND teacher_subject_session_id = ?", schoolID, sessionID).
		Order("teacher_subject_created_at ASC").
		Find(&rows).Error
	return rows, err
}
