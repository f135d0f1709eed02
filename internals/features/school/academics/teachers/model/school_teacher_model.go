// internals/features/school/academics/teachers/model/school_teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SchoolTeacherModel struct {
	SchoolTeacherID uuid.UUID `gorm:"column:school_teacher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"school_teacher_id"`

	SchoolTeacherSchoolID uuid.UUID  `gorm:"column:school_teacher_school_id;type:uuid;not null;index" json:"school_teacher_school_id"`
	SchoolTeacherUserID   *uuid.UUID `gorm:"column:school_teacher_user_id;type:uuid" json:"school_teacher_user_id,omitempty"`

	SchoolTeacherName string `gorm:"column:school_teacher_name;type:varchar(120);not null" json:"school_teacher_name"`

	SchoolTeacherIsActive bool `gorm:"column:school_teacher_is_active;not null;default:true" json:"school_teacher_is_active"`

	SchoolTeacherCreatedAt time.Time      `gorm:"column:school_teacher_created_at;type:timestamptz;not null;autoCreateTime" json:"school_teacher_created_at"`
	SchoolTeacherUpdatedAt time.Time      `gorm:"column:school_teacher_updated_at;type:timestamptz;not null;autoUpdateTime" json:"school_teacher_updated_at"`
	SchoolTeacherDeletedAt gorm.DeletedAt `gorm:"column:school_teacher_deleted_at;index" json:"school_teacher_deleted_at,omitempty"`
}

func (SchoolTeacherModel) TableName() string { return "school_teachers" }
