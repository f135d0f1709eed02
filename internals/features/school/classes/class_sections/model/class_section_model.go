// internals/features/school/classes/class_sections/model/class_section_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassSectionModel struct {
	ClassSectionID uuid.UUID `gorm:"column:class_section_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_section_id"`

	ClassSectionSchoolID uuid.UUID `gorm:"column:class_section_school_id;type:uuid;not null;index" json:"class_section_school_id"`

	ClassSectionName string  `gorm:"column:class_section_name;type:varchar(80);not null" json:"class_section_name"`
	ClassSectionSlug *string `gorm:"column:class_section_slug;type:varchar(120)" json:"class_section_slug,omitempty"`

	ClassSectionIsActive bool `gorm:"column:class_section_is_active;not null;default:true" json:"class_section_is_active"`

	ClassSectionCreatedAt time.Time      `gorm:"column:class_section_created_at;type:timestamptz;not null;autoCreateTime" json:"class_section_created_at"`
	ClassSectionUpdatedAt time.Time      `gorm:"column:class_section_updated_at;type:timestamptz;not null;autoUpdateTime" json:"class_section_updated_at"`
	ClassSectionDeletedAt gorm.DeletedAt `gorm:"column:class_section_deleted_at;index" json:"class_section_deleted_at,omitempty"`
}

func (ClassSectionModel) TableName() string { return "class_sections" }
