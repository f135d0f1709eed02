// internals/features/school/academics/teachers/model/teacher_subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Index guru→mapel per session; hanya dipakai untuk label tampilan guru
// di proyeksi timetable (nama + mapel pertama yang dia ampu).
type TeacherSubjectModel struct {
	TeacherSubjectID uuid.UUID `gorm:"column:teacher_subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_subject_id"`

	TeacherSubjectSchoolID  uuid.UUID `gorm:"column:teacher_subject_school_id;type:uuid;not null;index" json:"teacher_subject_school_id"`
	TeacherSubjectSessionID uuid.UUID `gorm:"column:teacher_subject_session_id;type:uuid;not null;index" json:"teacher_subject_session_id"`

	TeacherSubjectTeacherID uuid.UUID `gorm:"column:teacher_subject_teacher_id;type:uuid;not null;index" json:"teacher_subject_teacher_id"`
	TeacherSubjectSubjectID uuid.UUID `gorm:"column:teacher_subject_subject_id;type:uuid;not null" json:"teacher_subject_subject_id"`

	TeacherSubjectCreatedAt time.Time `gorm:"column:teacher_subject_created_at;type:timestamptz;not null;autoCreateTime" json:"teacher_subject_created_at"`
}

func (TeacherSubjectModel) TableName() string { return "teacher_subjects" }
